package checkout

import (
	"github.com/themosthappypiano/thewoofingoven/internal/shipping"
)

// CreateSessionRequest is the checkout payload.
type CreateSessionRequest struct {
	CustomerName        string        `json:"customerName" validate:"required"`
	CustomerEmail       string        `json:"customerEmail" validate:"required,email"`
	CustomerPhone       string        `json:"customerPhone"`
	DeliveryType        string        `json:"deliveryType" validate:"required,oneof=collection delivery"`
	ShippingAddress     *AddressInput `json:"shippingAddress"`
	SpecialInstructions string        `json:"specialInstructions"`
	Items               []ItemInput   `json:"items" validate:"required,min=1,dive"`
}

// AddressInput is the delivery address as entered by the shopper.
type AddressInput struct {
	Address    string   `json:"address"`
	City       string   `json:"city"`
	PostalCode string   `json:"postalCode"`
	Country    string   `json:"country"`
	DistanceKm *float64 `json:"distanceKm"`
}

// ItemInput is one cart line at checkout. ProductVariantID arrives as a
// string or a number; synthesized fallback variants carry non-numeric ids
// and resolve through the inline VariantData snapshot instead.
type ItemInput struct {
	ProductVariantID any            `json:"productVariantId"`
	ProductID        any            `json:"productId"`
	ProductName      string         `json:"productName"`
	ProductCategory  string         `json:"productCategory"`
	Price            any            `json:"price"`
	ImageURL         string         `json:"imageUrl"`
	ShippingRequired *bool          `json:"shippingRequired"`
	VariantData      *InlineVariant `json:"variantData"`
	Quantity         int            `json:"quantity" validate:"required,min=1"`
	Customization    any            `json:"customization"`
}

// InlineVariant is the caller-supplied variant snapshot used when the id
// cannot be resolved against the catalog.
type InlineVariant struct {
	ID               any    `json:"id"`
	SKU              string `json:"sku"`
	Name             string `json:"name"`
	Price            any    `json:"price"`
	ImageURL         string `json:"imageUrl"`
	ShippingRequired *bool  `json:"shippingRequired"`
}

// ShippingRatesRequest asks for a fulfillment quote without checking out.
type ShippingRatesRequest struct {
	DeliveryType string         `json:"deliveryType" validate:"required,oneof=collection delivery"`
	Location     *LocationInput `json:"location"`
	Items        []ItemInput    `json:"items"`
}

// LocationInput is the address subset the rule engine needs.
type LocationInput struct {
	PostalCode string   `json:"postalCode"`
	City       string   `json:"city"`
	DistanceKm *float64 `json:"distanceKm"`
}

// SessionResponse is returned from create-session. Order is only embedded
// in synthetic mode, mirroring the legacy dev flow.
type SessionResponse struct {
	SessionID   string        `json:"sessionId"`
	CheckoutURL string        `json:"checkoutUrl"`
	Order       *OrderSummary `json:"order,omitempty"`
}

// OrderSummary is the synthetic-mode order echo.
type OrderSummary struct {
	ID            int64  `json:"id"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	TotalAmount   string `json:"totalAmount"`
	Status        string `json:"status"`
	DeliveryType  string `json:"deliveryType"`
	CheckoutURL   string `json:"checkoutUrl"`
}

func (a *AddressInput) location() shipping.Location {
	if a == nil {
		return shipping.Location{}
	}
	return shipping.Location{
		PostalCode: a.PostalCode,
		City:       a.City,
		DistanceKm: a.DistanceKm,
	}
}

func (l *LocationInput) location() shipping.Location {
	if l == nil {
		return shipping.Location{}
	}
	return shipping.Location{
		PostalCode: l.PostalCode,
		City:       l.City,
		DistanceKm: l.DistanceKm,
	}
}
