package checkout

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v84"

	"github.com/themosthappypiano/thewoofingoven/internal/shipping"
	"github.com/themosthappypiano/thewoofingoven/pkg/db/models"
	pkgerrors "github.com/themosthappypiano/thewoofingoven/pkg/errors"
	"github.com/themosthappypiano/thewoofingoven/pkg/logger"
	"github.com/themosthappypiano/thewoofingoven/pkg/metrics"
	"github.com/themosthappypiano/thewoofingoven/pkg/money"
)

// Synthetic session values returned when no payment backend is configured.
const (
	SyntheticSessionID   = "mock_session_id"
	syntheticCheckoutURL = "https://checkout.stripe.com/pay/mock_session_id#fidkdWxOYHwnPyd1blpxYHZxWjA0VDVhSUo0VTdEU"
)

const currencyEUR = "eur"

var numericID = regexp.MustCompile(`^\d+$`)

type variantLookup interface {
	FindVariantByID(ctx context.Context, id int64) (*models.ProductVariant, error)
}

type orderRecorder interface {
	Create(ctx context.Context, order *models.Order) error
}

type sessionCreator interface {
	CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// Service assembles checkouts: resolves cart lines against the catalog,
// prices the order, quotes fulfillment, and requests a payment session.
// A nil payments collaborator switches the whole flow to synthetic mode.
type Service struct {
	variants variantLookup
	orders   orderRecorder
	payments sessionCreator
	engine   *shipping.Engine
	metrics  *metrics.CheckoutMetrics
	baseURL  string
	logg     *logger.Logger
}

// NewService wires the checkout assembler.
func NewService(
	variants variantLookup,
	orders orderRecorder,
	payments sessionCreator,
	engine *shipping.Engine,
	checkoutMetrics *metrics.CheckoutMetrics,
	baseURL string,
	logg *logger.Logger,
) (*Service, error) {
	if variants == nil {
		return nil, fmt.Errorf("variant lookup required")
	}
	if orders == nil {
		return nil, fmt.Errorf("order recorder required")
	}
	if engine == nil {
		return nil, fmt.Errorf("shipping engine required")
	}
	return &Service{
		variants: variants,
		orders:   orders,
		payments: payments,
		engine:   engine,
		metrics:  checkoutMetrics,
		baseURL:  baseURL,
		logg:     logg,
	}, nil
}

// resolvedLine is a cart line after catalog resolution, priced in cents.
type resolvedLine struct {
	rawVariantID     string
	variantID        int64
	productID        string
	name             string
	sku              string
	imageURL         string
	priceCents       int64
	shippingRequired bool
	quantity         int
	productName      string
	productCategory  string
	customization    any
}

// ShippingRates quotes fulfillment for the given delivery selection without
// touching the catalog or the payment backend.
func (s *Service) ShippingRates(ctx context.Context, req ShippingRatesRequest) (*shipping.Quote, error) {
	items := make([]shipping.Item, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, shippingItemFromInput(item))
	}
	quote, err := s.engine.Quote(req.DeliveryType, req.Location.location(), items)
	if err != nil {
		s.metrics.IncQuoteFailure(quoteRule(err))
		return nil, err
	}
	return quote, nil
}

// CreateSession runs the full checkout flow. Every failure happens before
// the payment call and before any order row is written.
func (s *Service) CreateSession(ctx context.Context, req CreateSessionRequest, origin string) (*SessionResponse, error) {
	start := time.Now()
	mode := "synthetic"
	if s.payments != nil {
		mode = "live"
	}
	defer func() {
		s.metrics.ObserveDuration(mode, time.Since(start))
	}()

	resp, err := s.createSession(ctx, req, origin, mode)
	if err != nil {
		s.metrics.IncSession("failed")
		return nil, err
	}
	s.metrics.IncSession("created")
	return resp, nil
}

func (s *Service) createSession(ctx context.Context, req CreateSessionRequest, origin, mode string) (*SessionResponse, error) {
	lines, err := s.resolveLines(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	var subtotalCents int64
	for _, line := range lines {
		subtotalCents += line.priceCents * int64(line.quantity)
	}

	shipItems := make([]shipping.Item, 0, len(lines))
	for _, line := range lines {
		shipItems = append(shipItems, shipping.Item{
			ProductName:      line.productName,
			ProductCategory:  line.productCategory,
			VariantName:      line.name,
			ShippingRequired: line.shippingRequired,
		})
	}
	quote, err := s.engine.Quote(req.DeliveryType, req.ShippingAddress.location(), shipItems)
	if err != nil {
		s.metrics.IncQuoteFailure(quoteRule(err))
		return nil, err
	}

	totalCents := subtotalCents + quote.PriceCents

	if mode == "synthetic" {
		order, err := s.recordOrder(ctx, req, lines, totalCents, SyntheticSessionID)
		if err != nil {
			return nil, err
		}
		return &SessionResponse{
			SessionID:   SyntheticSessionID,
			CheckoutURL: syntheticCheckoutURL,
			Order: &OrderSummary{
				ID:            order.ID,
				CustomerName:  order.CustomerName,
				CustomerEmail: order.CustomerEmail,
				TotalAmount:   order.TotalAmount,
				Status:        order.Status,
				DeliveryType:  order.DeliveryType,
				CheckoutURL:   syntheticCheckoutURL,
			},
		}, nil
	}

	params := s.sessionParams(req, lines, quote, origin)
	session, err := s.payments.CreateCheckoutSession(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "creating checkout session")
	}
	if _, err := s.recordOrder(ctx, req, lines, totalCents, session.ID); err != nil {
		// The payment session exists; losing the pending row is logged,
		// not surfaced as a checkout failure.
		if s.logg != nil {
			s.logg.Error(ctx, "recording order after session creation", err)
		}
	}
	return &SessionResponse{
		SessionID:   session.ID,
		CheckoutURL: session.URL,
	}, nil
}

// resolveLines maps each checkout item to a priced variant: authoritative
// catalog lookup by numeric id first, then the caller's inline snapshot.
func (s *Service) resolveLines(ctx context.Context, items []ItemInput) ([]resolvedLine, error) {
	lines := make([]resolvedLine, 0, len(items))
	for _, item := range items {
		line, err := s.resolveLine(ctx, item)
		if err != nil {
			return nil, err
		}
		lines = append(lines, *line)
	}
	return lines, nil
}

func (s *Service) resolveLine(ctx context.Context, item ItemInput) (*resolvedLine, error) {
	rawID := stringifyID(item.ProductVariantID)
	quantity := item.Quantity
	if quantity < 1 {
		quantity = 1
	}

	line := resolvedLine{
		rawVariantID:    rawID,
		quantity:        quantity,
		productName:     item.ProductName,
		productCategory: item.ProductCategory,
		customization:   item.Customization,
	}

	if id, ok := numericVariantID(item.ProductVariantID); ok {
		variant, err := s.variants.FindVariantByID(ctx, id)
		switch {
		case err == nil:
			priceCents, perr := money.ParseCents(variant.Price)
			if perr != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, perr, fmt.Sprintf("variant %d has an unparsable price", id))
			}
			line.variantID = variant.ID
			line.productID = fmt.Sprintf("%d", variant.ProductID)
			line.name = variant.Name
			line.sku = variant.SKU
			line.priceCents = priceCents
			line.shippingRequired = variant.ShippingRequired
			if variant.ImageURL != nil {
				line.imageURL = *variant.ImageURL
			}
			return &line, nil
		case pkgerrors.As(err) != nil && pkgerrors.As(err).Code() == pkgerrors.CodeNotFound:
			// Fall through to the inline snapshot.
		default:
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "looking up variant")
		}
	}

	if item.VariantData == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("Variant %s not found", rawID))
	}

	snapshot := item.VariantData
	name := snapshot.Name
	if name == "" {
		name = item.ProductName
	}
	priceCents, ok := parsePriceCents(snapshot.Price)
	if !ok {
		priceCents, ok = parsePriceCents(item.Price)
	}
	if name == "" || !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("Variant %s not found", rawID))
	}

	line.name = name
	line.sku = snapshot.SKU
	line.priceCents = priceCents
	line.productID = stringifyID(item.ProductID)
	line.imageURL = snapshot.ImageURL
	if line.imageURL == "" {
		line.imageURL = item.ImageURL
	}
	line.shippingRequired = true
	if snapshot.ShippingRequired != nil {
		line.shippingRequired = *snapshot.ShippingRequired
	} else if item.ShippingRequired != nil {
		line.shippingRequired = *item.ShippingRequired
	}
	return &line, nil
}

// sessionParams builds the payment request: one line per cart line plus a
// shipping line when the quote is priced.
func (s *Service) sessionParams(req CreateSessionRequest, lines []resolvedLine, quote *shipping.Quote, origin string) *stripe.CheckoutSessionParams {
	if origin == "" {
		origin = s.baseURL
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(lines)+1)
	for _, line := range lines {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name:        stripe.String(line.name),
			Description: stripe.String(fmt.Sprintf("SKU: %s", line.sku)),
			Metadata: map[string]string{
				"variant_id":        line.rawVariantID,
				"product_id":        line.productID,
				"shipping_required": fmt.Sprintf("%t", line.shippingRequired),
			},
		}
		if line.imageURL != "" {
			productData.Images = stripe.StringSlice([]string{line.imageURL})
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(currencyEUR),
				ProductData: productData,
				UnitAmount:  stripe.Int64(line.priceCents),
			},
			Quantity: stripe.Int64(int64(line.quantity)),
		})
	}
	if quote.PriceCents > 0 {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(currencyEUR),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(quote.Name),
					Description: stripe.String(fmt.Sprintf("Delivery time: %s", quote.DeliveryTime)),
				},
				UnitAmount: stripe.Int64(quote.PriceCents),
			},
			Quantity: stripe.Int64(1),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes:       stripe.StringSlice([]string{"card"}),
		Mode:                     stripe.String(string(stripe.CheckoutSessionModePayment)),
		Currency:                 stripe.String(currencyEUR),
		Locale:                   stripe.String("en"),
		SuccessURL:               stripe.String(origin + "/checkout/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:                stripe.String(origin + "/checkout/cancel"),
		CustomerEmail:            stripe.String(req.CustomerEmail),
		LineItems:                lineItems,
		BillingAddressCollection: stripe.String("required"),
	}
	if req.DeliveryType == models.DeliveryTypeDelivery {
		params.ShippingAddressCollection = &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice([]string{"IE"}),
		}
	}
	params.AddMetadata("customer_name", req.CustomerName)
	params.AddMetadata("customer_phone", req.CustomerPhone)
	params.AddMetadata("delivery_type", req.DeliveryType)
	params.AddMetadata("special_instructions", req.SpecialInstructions)
	return params
}

// recordOrder writes the pending order row with its line snapshots.
func (s *Service) recordOrder(ctx context.Context, req CreateSessionRequest, lines []resolvedLine, totalCents int64, sessionID string) (*models.Order, error) {
	order := &models.Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		TotalAmount:   money.FormatEuros(totalCents),
		Status:        models.OrderStatusPending,
		DeliveryType:  req.DeliveryType,
	}
	if req.CustomerPhone != "" {
		phone := req.CustomerPhone
		order.CustomerPhone = &phone
	}
	if req.SpecialInstructions != "" {
		instructions := req.SpecialInstructions
		order.SpecialInstructions = &instructions
	}
	if sessionID != "" {
		session := sessionID
		order.StripePaymentIntentID = &session
	}
	if req.ShippingAddress != nil {
		order.ShippingAddress = map[string]any{
			"address":    req.ShippingAddress.Address,
			"city":       req.ShippingAddress.City,
			"postalCode": req.ShippingAddress.PostalCode,
			"country":    req.ShippingAddress.Country,
		}
	}
	for _, line := range lines {
		order.Items = append(order.Items, models.OrderItem{
			ProductVariantID: line.variantID,
			Quantity:         line.quantity,
			Price:            money.FormatEuros(line.priceCents),
			Customization:    line.customization,
		})
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "recording order")
	}
	return order, nil
}

// shippingItemFromInput derives rule-engine facts from a raw request item
// (shipping-rates is quoted before checkout resolution happens).
func shippingItemFromInput(item ItemInput) shipping.Item {
	out := shipping.Item{
		ProductName:      item.ProductName,
		ProductCategory:  item.ProductCategory,
		ShippingRequired: true,
	}
	if item.VariantData != nil {
		out.VariantName = item.VariantData.Name
	}
	if item.ShippingRequired != nil {
		out.ShippingRequired = *item.ShippingRequired
	} else if item.VariantData != nil && item.VariantData.ShippingRequired != nil {
		out.ShippingRequired = *item.VariantData.ShippingRequired
	}
	return out
}

// numericVariantID accepts ids that are whole numbers or all-digit strings;
// anything else (e.g. "default-7") skips the catalog lookup.
func numericVariantID(raw any) (int64, bool) {
	switch v := raw.(type) {
	case float64:
		id := int64(v)
		if float64(id) == v && id > 0 {
			return id, true
		}
		return 0, false
	case int64:
		if v > 0 {
			return v, true
		}
		return 0, false
	case int:
		if v > 0 {
			return int64(v), true
		}
		return 0, false
	case string:
		if !numericID.MatchString(v) {
			return 0, false
		}
		var id int64
		if _, err := fmt.Sscan(v, &id); err != nil {
			return 0, false
		}
		return id, id > 0
	default:
		return 0, false
	}
}

func stringifyID(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if float64(int64(v)) == v {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// parsePriceCents accepts decimal strings and JSON numbers. Zero is a valid
// price only when explicitly present; negative amounts are rejected.
func parsePriceCents(raw any) (int64, bool) {
	var cents int64
	switch v := raw.(type) {
	case string:
		parsed, err := money.ParseCents(v)
		if err != nil {
			return 0, false
		}
		cents = parsed
	case float64:
		cents = decimal.NewFromFloat(v).Shift(2).Round(0).IntPart()
	case int:
		cents = int64(v) * 100
	case int64:
		cents = v * 100
	default:
		return 0, false
	}
	if cents < 0 {
		return 0, false
	}
	return cents, true
}

func quoteRule(err error) string {
	typed := pkgerrors.As(err)
	if typed == nil {
		return "unknown"
	}
	switch typed.Message() {
	case shipping.MsgCollectionOnlyItems:
		return "collection_only"
	case shipping.MsgNotEligible:
		return "category"
	case shipping.MsgOutsideRegion:
		return "region"
	case shipping.MsgDistanceRequired:
		return "distance"
	default:
		return "unknown"
	}
}
