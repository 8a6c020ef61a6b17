package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: logger}
}

type productListResponse struct {
	Products   []productView      `json:"products"`
	Pagination usecase.Pagination `json:"pagination"`
}

// ListProducts returns one catalog page. Reads are public.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	input := usecase.ListProductsInput{
		Search: c.QueryParam("search"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}
	if raw := c.QueryParam("category"); raw != "" {
		category := entity.Category(raw)
		input.Category = &category
	}
	if raw := c.QueryParam("seller"); raw != "" {
		sellerID, err := uuid.Parse(raw)
		if err != nil {
			return response.BindingError(c, "Invalid seller ID")
		}
		input.SellerID = &sellerID
	}

	output, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, productListResponse{
		Products:   newProductViews(output.Products),
		Pagination: output.Pagination,
	})
}

// GetProduct returns a single product.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid product ID")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product))
}

type createProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" validate:"min=0"`
	Category    string `json:"category" validate:"required,oneof=clothing accessories footwear"`
	Stock       int    `json:"stock" validate:"min=0"`
}

// CreateProduct lists a new product owned by the acting seller.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), actor, usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    entity.Category(req.Category),
		Stock:       req.Stock,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProductView(product))
}

type updateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Category    *string `json:"category"`
	Stock       *int    `json:"stock"`
	Status      *string `json:"status"`
}

// UpdateProduct applies field changes to a product owned by the actor.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid product ID")
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	input := usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}
	if req.Category != nil {
		category := entity.Category(*req.Category)
		input.Category = &category
	}
	if req.Status != nil {
		status := entity.ProductStatus(*req.Status)
		input.Status = &status
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), actor, productID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product))
}

// DeleteProduct removes or delists a product owned by the actor.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid product ID")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), actor, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product removed"})
}

// queryInt parses an integer query parameter, defaulting to zero.
func queryInt(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return value
}
