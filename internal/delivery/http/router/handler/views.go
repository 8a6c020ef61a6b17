package handler

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

// The view types are the JSON projections of the domain entities. They keep
// internal fields such as the password hash out of the responses.

type userView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserView(user *entity.User) userView {
	return userView{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
	}
}

type productView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	Status      string    `json:"status"`
	SellerID    uuid.UUID `json:"sellerId"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"reviewCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newProductView(product *entity.Product) productView {
	return productView{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category.String(),
		Stock:       product.Stock,
		Status:      product.Status.String(),
		SellerID:    product.SellerID,
		Rating:      product.Rating,
		ReviewCount: product.ReviewCount,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func newProductViews(products []*entity.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, product := range products {
		views = append(views, newProductView(product))
	}

	return views
}

type addressView struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"fullName"`
	Phone      string    `json:"phone"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postalCode"`
	Country    string    `json:"country"`
	IsDefault  bool      `json:"isDefault"`
	CreatedAt  time.Time `json:"createdAt"`
}

func newAddressView(address *entity.Address) addressView {
	return addressView{
		ID:         address.ID,
		FullName:   address.FullName,
		Phone:      address.Phone,
		Street:     address.Street,
		City:       address.City,
		State:      address.State,
		PostalCode: address.PostalCode,
		Country:    address.Country,
		IsDefault:  address.IsDefault,
		CreatedAt:  address.CreatedAt,
	}
}

func newAddressViews(addresses []*entity.Address) []addressView {
	views := make([]addressView, 0, len(addresses))
	for _, address := range addresses {
		views = append(views, newAddressView(address))
	}

	return views
}

type cartItemView struct {
	Product   productView `json:"product"`
	Quantity  int         `json:"quantity"`
	LineTotal int64       `json:"lineTotal"`
}

type cartView struct {
	Items    []cartItemView `json:"items"`
	Subtotal int64          `json:"subtotal"`
}

func newCartView(view *usecase.CartView) cartView {
	items := make([]cartItemView, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, cartItemView{
			Product:   newProductView(item.Product),
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
		})
	}

	return cartView{Items: items, Subtotal: view.Subtotal}
}

type orderView struct {
	ID                uuid.UUID           `json:"id"`
	OrderNumber       string              `json:"orderNumber"`
	Items             []entity.OrderItem  `json:"items"`
	Address           entity.OrderAddress `json:"address"`
	Delivery          string              `json:"delivery"`
	Payment           string              `json:"payment"`
	Subtotal          int64               `json:"subtotal"`
	Shipping          int64               `json:"shipping"`
	Tax               int64               `json:"tax"`
	Discount          int64               `json:"discount"`
	Total             int64               `json:"total"`
	Status            string              `json:"status"`
	CustomerName      string              `json:"customerName"`
	CustomerEmail     string              `json:"customerEmail"`
	CreatedAt         time.Time           `json:"createdAt"`
	EstimatedDelivery time.Time           `json:"estimatedDelivery"`
	DeliveredAt       *time.Time          `json:"deliveredAt,omitempty"`
}

func newOrderView(order *entity.Order) orderView {
	return orderView{
		ID:                order.ID,
		OrderNumber:       order.OrderNumber,
		Items:             order.Items,
		Address:           order.Address,
		Delivery:          order.Delivery.String(),
		Payment:           order.Payment.String(),
		Subtotal:          order.Subtotal,
		Shipping:          order.Shipping,
		Tax:               order.Tax,
		Discount:          order.Discount,
		Total:             order.Total,
		Status:            order.Status.String(),
		CustomerName:      order.CustomerName,
		CustomerEmail:     order.CustomerEmail,
		CreatedAt:         order.CreatedAt,
		EstimatedDelivery: order.EstimatedDelivery,
		DeliveredAt:       order.DeliveredAt,
	}
}

func newOrderViews(orders []*entity.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order))
	}

	return views
}
