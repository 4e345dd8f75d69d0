package cart

import (
	"encoding/json"
	"fmt"
)

// ProductSnapshot is the product data frozen into a cart line at add time.
type ProductSnapshot struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Category   string `json:"category"`
	ImageURL   string `json:"imageUrl,omitempty"`
}

// VariantSnapshot is the chosen variant frozen into a cart line.
type VariantSnapshot struct {
	ID               int64  `json:"id"`
	SKU              string `json:"sku"`
	Name             string `json:"name"`
	PriceCents       int64  `json:"priceCents"`
	ShippingRequired bool   `json:"shippingRequired"`
	ImageURL         string `json:"imageUrl,omitempty"`
	VariantData      any    `json:"variantData,omitempty"`
}

// Line is one cart entry. Key identifies the line: same variant with the
// same customization merges, anything else stays distinct.
type Line struct {
	Key           string          `json:"key"`
	Product       ProductSnapshot `json:"product"`
	Variant       VariantSnapshot `json:"variant"`
	Quantity      int             `json:"quantity"`
	Customization any             `json:"customization,omitempty"`
}

// UnitPriceCents is the effective per-unit price for the line.
func (l Line) UnitPriceCents() int64 {
	if l.Variant.ID != 0 {
		return l.Variant.PriceCents
	}
	return l.Product.PriceCents
}

// Cart is an ordered set of lines. Aggregates are always recomputed from
// the lines, never stored. JustAdded flags the most recent mutation as an
// add so the storefront can open its drawer.
type Cart struct {
	Lines     []Line `json:"lines"`
	JustAdded bool   `json:"justAdded"`
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{Lines: []Line{}}
}

// LineKey builds the merge identity for a variant + customization pair.
// Customization is serialized canonically (JSON with sorted map keys) so
// equal values always collide.
func LineKey(variantID int64, customization any) string {
	if customization == nil {
		return fmt.Sprintf("%d", variantID)
	}
	serialized, err := json.Marshal(customization)
	if err != nil {
		return fmt.Sprintf("%d", variantID)
	}
	return fmt.Sprintf("%d|%s", variantID, serialized)
}

// DefaultVariant synthesizes the implicit variant used when a product is
// added without picking one.
func DefaultVariant(product ProductSnapshot) VariantSnapshot {
	return VariantSnapshot{
		ID:               product.ID,
		SKU:              fmt.Sprintf("default-%d", product.ID),
		Name:             "Default",
		PriceCents:       product.PriceCents,
		ShippingRequired: true,
	}
}

// AddItem merges the item into the cart, clamping quantity to at least 1.
// The line list is rebuilt on every write so concurrent readers observe
// either the previous or the new cart, never a partial update.
func (c *Cart) AddItem(product ProductSnapshot, variant *VariantSnapshot, quantity int, customization any) {
	if quantity < 1 {
		quantity = 1
	}
	chosen := DefaultVariant(product)
	if variant != nil {
		chosen = *variant
	}
	key := LineKey(chosen.ID, customization)

	next := make([]Line, 0, len(c.Lines)+1)
	merged := false
	for _, line := range c.Lines {
		if line.Key == key {
			line.Quantity += quantity
			merged = true
		}
		next = append(next, line)
	}
	if !merged {
		next = append(next, Line{
			Key:           key,
			Product:       product,
			Variant:       chosen,
			Quantity:      quantity,
			Customization: customization,
		})
	}
	c.Lines = next
	c.JustAdded = true
}

// RemoveItem drops every line for the variant, regardless of customization.
func (c *Cart) RemoveItem(variantID int64) {
	next := make([]Line, 0, len(c.Lines))
	for _, line := range c.Lines {
		if line.Variant.ID == variantID {
			continue
		}
		next = append(next, line)
	}
	c.Lines = next
	c.JustAdded = false
}

// RemoveLine drops the single line with the given key.
func (c *Cart) RemoveLine(key string) {
	next := make([]Line, 0, len(c.Lines))
	for _, line := range c.Lines {
		if line.Key == key {
			continue
		}
		next = append(next, line)
	}
	c.Lines = next
	c.JustAdded = false
}

// UpdateLineQuantity sets the quantity on the line with the given key; zero
// or negative removes it.
func (c *Cart) UpdateLineQuantity(key string, quantity int) {
	if quantity <= 0 {
		c.RemoveLine(key)
		return
	}
	next := make([]Line, 0, len(c.Lines))
	for _, line := range c.Lines {
		if line.Key == key {
			line.Quantity = quantity
		}
		next = append(next, line)
	}
	c.Lines = next
	c.JustAdded = false
}

// UpdateQuantity sets the quantity on every line for the variant; zero or
// negative removes the line entirely.
func (c *Cart) UpdateQuantity(variantID int64, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(variantID)
		return
	}
	next := make([]Line, 0, len(c.Lines))
	for _, line := range c.Lines {
		if line.Variant.ID == variantID {
			line.Quantity = quantity
		}
		next = append(next, line)
	}
	c.Lines = next
	c.JustAdded = false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = []Line{}
	c.JustAdded = false
}

// TotalCents sums unit price times quantity over all lines.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.UnitPriceCents() * int64(line.Quantity)
	}
	return total
}

// Count sums the quantities over all lines.
func (c *Cart) Count() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// RequiresShipping reports whether any line needs delivery.
func (c *Cart) RequiresShipping() bool {
	for _, line := range c.Lines {
		if line.Variant.ShippingRequired {
			return true
		}
	}
	return false
}

// CollectionOnlyLines returns the lines that cannot be delivered.
func (c *Cart) CollectionOnlyLines() []Line {
	out := []Line{}
	for _, line := range c.Lines {
		if !line.Variant.ShippingRequired {
			out = append(out, line)
		}
	}
	return out
}
