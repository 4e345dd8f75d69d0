package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// sqlite's NUMERIC affinity strips trailing zeros on read ("65.00" comes
// back as "65"), so every amount column is re-formatted to two decimals
// after a find. Unparsable values pass through untouched.
func normalizeAmount(value string) string {
	if value == "" {
		return value
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return value
	}
	return d.StringFixed(2)
}

func (p *Product) AfterFind(*gorm.DB) error {
	p.BasePrice = normalizeAmount(p.BasePrice)
	return nil
}

func (v *ProductVariant) AfterFind(*gorm.DB) error {
	v.Price = normalizeAmount(v.Price)
	v.PriceAdjustment = normalizeAmount(v.PriceAdjustment)
	return nil
}

func (o *Order) AfterFind(*gorm.DB) error {
	o.TotalAmount = normalizeAmount(o.TotalAmount)
	return nil
}

func (i *OrderItem) AfterFind(*gorm.DB) error {
	i.Price = normalizeAmount(i.Price)
	return nil
}
