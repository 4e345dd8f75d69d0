package orders

import (
	"time"

	"github.com/themosthappypiano/thewoofingoven/pkg/db/models"
)

// OrderDTO is the order payload returned to the storefront.
type OrderDTO struct {
	ID                    int64          `json:"id"`
	CustomerName          string         `json:"customerName"`
	CustomerEmail         string         `json:"customerEmail"`
	CustomerPhone         *string        `json:"customerPhone,omitempty"`
	TotalAmount           string         `json:"totalAmount"`
	Status                string         `json:"status"`
	DeliveryType          string         `json:"deliveryType"`
	ShippingAddress       map[string]any `json:"shippingAddress,omitempty"`
	SpecialInstructions   *string        `json:"specialInstructions,omitempty"`
	StripePaymentIntentID *string        `json:"stripePaymentIntentId,omitempty"`
	Items                 []OrderItemDTO `json:"items"`
	CreatedAt             time.Time      `json:"createdAt"`
	UpdatedAt             time.Time      `json:"updatedAt"`
}

// OrderItemDTO is one purchased line.
type OrderItemDTO struct {
	ID               int64  `json:"id"`
	ProductVariantID int64  `json:"productVariantId"`
	Quantity         int    `json:"quantity"`
	Price            string `json:"price"`
	Customization    any    `json:"customization,omitempty"`
}

// NewOrderDTO builds a DTO from the persisted model.
func NewOrderDTO(order *models.Order) *OrderDTO {
	dto := &OrderDTO{
		ID:                    order.ID,
		CustomerName:          order.CustomerName,
		CustomerEmail:         order.CustomerEmail,
		CustomerPhone:         order.CustomerPhone,
		TotalAmount:           order.TotalAmount,
		Status:                order.Status,
		DeliveryType:          order.DeliveryType,
		ShippingAddress:       order.ShippingAddress,
		SpecialInstructions:   order.SpecialInstructions,
		StripePaymentIntentID: order.StripePaymentIntentID,
		Items:                 make([]OrderItemDTO, 0, len(order.Items)),
		CreatedAt:             order.CreatedAt,
		UpdatedAt:             order.UpdatedAt,
	}
	for _, item := range order.Items {
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:               item.ID,
			ProductVariantID: item.ProductVariantID,
			Quantity:         item.Quantity,
			Price:            item.Price,
			Customization:    item.Customization,
		})
	}
	return dto
}
