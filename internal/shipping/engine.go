package shipping

import (
	"math"
	"strconv"
	"strings"

	"github.com/themosthappypiano/thewoofingoven/pkg/config"
	"github.com/themosthappypiano/thewoofingoven/pkg/db/models"
	pkgerrors "github.com/themosthappypiano/thewoofingoven/pkg/errors"
	"github.com/themosthappypiano/thewoofingoven/pkg/money"
)

// Quote identifiers.
const (
	QuoteIDCollection       = "collection"
	QuoteIDDeliveryIncluded = "delivery_included"
	QuoteIDCakeDelivery     = "cake_delivery"
	etaNextDay              = "Next day"
	etaOneToTwoBusinessDays = "1-2 business days"
	barkdayBoxProductName   = "Barkday Box"
	collectionQuoteName     = "Collection (Dublin 24)"
	deliveryIncludedName    = "Delivery Included (Barkday Box)"
	deliveryVariantHint     = "delivery"
)

// User-facing failure reasons, returned verbatim in error bodies.
const (
	MsgCollectionOnlyItems = "Some items in your cart are collection only."
	MsgNotEligible         = "Only cakes (and Barkday Box delivery) are eligible for delivery."
	MsgOutsideRegion       = "Cake delivery is available for Dublin addresses only."
	MsgDistanceRequired    = "Please provide the delivery distance in kilometers for cake delivery."
)

// Quote is a priced fulfillment option. Field names match the storefront's
// legacy payloads.
type Quote struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PriceCents   int64  `json:"price"`
	DeliveryTime string `json:"delivery_time"`
}

// Item is the slice of a cart line the rule engine inspects.
type Item struct {
	ProductName      string
	ProductCategory  string
	VariantName      string
	ShippingRequired bool
}

// Location is the delivery address subset that matters for eligibility.
// DistanceKm is nil when the caller did not supply one.
type Location struct {
	PostalCode string
	City       string
	DistanceKm *float64
}

// Engine computes fulfillment quotes. It is a pure decision function;
// every call evaluates the rules fresh against its inputs.
type Engine struct {
	ratePerKmCents int
	regionPrefix   string
	regionCity     string
}

// NewEngine builds an engine from shipping configuration.
func NewEngine(cfg config.ShippingConfig) *Engine {
	return &Engine{
		ratePerKmCents: cfg.RatePerKmCents,
		regionPrefix:   cfg.RegionPrefix,
		regionCity:     strings.ToLower(cfg.RegionCity),
	}
}

// Quote applies the fulfillment rules in order and returns the first
// matching quote, or a coded failure carrying the user-facing reason.
// Collection-only items are an absolute prohibition, so that check runs
// before any pricing.
func (e *Engine) Quote(deliveryType string, location Location, items []Item) (*Quote, error) {
	if deliveryType == models.DeliveryTypeCollection {
		return &Quote{
			ID:           QuoteIDCollection,
			Name:         collectionQuoteName,
			PriceCents:   0,
			DeliveryTime: etaNextDay,
		}, nil
	}

	for _, item := range items {
		if !item.ShippingRequired {
			return nil, pkgerrors.New(pkgerrors.CodeFulfillment, MsgCollectionOnlyItems)
		}
	}

	if len(items) > 0 && allDeliveryIncluded(items) {
		return &Quote{
			ID:           QuoteIDDeliveryIncluded,
			Name:         deliveryIncludedName,
			PriceCents:   0,
			DeliveryTime: etaOneToTwoBusinessDays,
		}, nil
	}

	for _, item := range items {
		if !isCakeItem(item) && !isDeliveryIncluded(item) {
			return nil, pkgerrors.New(pkgerrors.CodeFulfillment, MsgNotEligible)
		}
	}

	if !e.inRegion(location) {
		return nil, pkgerrors.New(pkgerrors.CodeFulfillment, MsgOutsideRegion)
	}

	if location.DistanceKm == nil {
		return nil, pkgerrors.New(pkgerrors.CodeFulfillment, MsgDistanceRequired)
	}
	distanceKm := *location.DistanceKm
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeFulfillment, MsgDistanceRequired)
	}

	return &Quote{
		ID:           QuoteIDCakeDelivery,
		Name:         "Cake Delivery (" + formatKm(distanceKm) + " km)",
		PriceCents:   money.RoundKmRate(distanceKm, e.ratePerKmCents),
		DeliveryTime: etaOneToTwoBusinessDays,
	}, nil
}

// isDeliveryIncluded recognizes the Barkday Box variant whose price already
// covers delivery.
func isDeliveryIncluded(item Item) bool {
	return item.ProductName == barkdayBoxProductName &&
		strings.Contains(strings.ToLower(item.VariantName), deliveryVariantHint)
}

func allDeliveryIncluded(items []Item) bool {
	for _, item := range items {
		if !isDeliveryIncluded(item) {
			return false
		}
	}
	return true
}

func isCakeItem(item Item) bool {
	return item.ProductCategory == models.CategoryCake ||
		strings.Contains(strings.ToLower(item.ProductName), models.CategoryCake)
}

func (e *Engine) inRegion(location Location) bool {
	if e.regionPrefix != "" && strings.HasPrefix(location.PostalCode, e.regionPrefix) {
		return true
	}
	return e.regionCity != "" && strings.Contains(strings.ToLower(location.City), e.regionCity)
}

// formatKm renders the distance the way it was entered: no trailing zeros.
func formatKm(distanceKm float64) string {
	return strconv.FormatFloat(distanceKm, 'f', -1, 64)
}
