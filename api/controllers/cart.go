package controllers

import (
	"net/http"
	"strings"

	"github.com/themosthappypiano/thewoofingoven/api/responses"
	"github.com/themosthappypiano/thewoofingoven/api/validators"
	"github.com/themosthappypiano/thewoofingoven/internal/cart"
	"github.com/themosthappypiano/thewoofingoven/internal/catalog"
	pkgerrors "github.com/themosthappypiano/thewoofingoven/pkg/errors"
	"github.com/themosthappypiano/thewoofingoven/pkg/logger"
	"github.com/themosthappypiano/thewoofingoven/pkg/money"
)

const cartTokenHeader = "X-Cart-Token"

// cartView is the cart payload returned on every cart mutation. Aggregates
// are recomputed so the storefront never caches a stale total.
type cartView struct {
	Lines            []cart.Line `json:"lines"`
	Count            int         `json:"count"`
	TotalCents       int64       `json:"totalCents"`
	Total            string      `json:"total"`
	RequiresShipping bool        `json:"requiresShipping"`
	JustAdded        bool        `json:"justAdded"`
}

func newCartView(c *cart.Cart) cartView {
	return cartView{
		Lines:            c.Lines,
		Count:            c.Count(),
		TotalCents:       c.TotalCents(),
		Total:            money.FormatEuros(c.TotalCents()),
		RequiresShipping: c.RequiresShipping(),
		JustAdded:        c.JustAdded,
	}
}

// cartToken returns the shopper's session token, minting one when the
// request carries none. The token is always echoed back so the storefront
// can persist it.
func cartToken(w http.ResponseWriter, r *http.Request) string {
	token := strings.TrimSpace(r.Header.Get(cartTokenHeader))
	if token == "" {
		token = cart.NewToken()
	}
	w.Header().Set(cartTokenHeader, token)
	return token
}

func GetCart(store *cart.SessionStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := cartToken(w, r)
		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithCartToken(ctx, token)
		}

		current := store.Load(ctx, token)
		current.JustAdded = false
		responses.WriteSuccess(w, newCartView(current))
	}
}

type addCartItemRequest struct {
	ProductID     int64 `json:"productId" validate:"required,min=1"`
	VariantID     int64 `json:"variantId" validate:"omitempty,min=1"`
	Quantity      int   `json:"quantity" validate:"omitempty,min=1"`
	Customization any   `json:"customization"`
}

// AddCartItem merges an item into the session cart. A missing variant id
// falls back to the product's implicit default variant.
func AddCartItem(store *cart.SessionStore, repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := cartToken(w, r)
		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithCartToken(ctx, token)
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, err := repo.FindProductByID(ctx, payload.ProductID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		basePriceCents, err := money.ParseCents(product.BasePrice)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "invalid product price"))
			return
		}

		snapshot := cart.ProductSnapshot{
			ID:         product.ID,
			Name:       product.Name,
			PriceCents: basePriceCents,
			Category:   product.Category,
			ImageURL:   product.ImageURL,
		}

		var chosen *cart.VariantSnapshot
		if payload.VariantID != 0 {
			variant, err := repo.FindVariantByID(ctx, payload.VariantID)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			if variant.ProductID != product.ID {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "variant does not belong to product"))
				return
			}
			priceCents, err := money.ParseCents(variant.Price)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "invalid variant price"))
				return
			}
			imageURL := ""
			if variant.ImageURL != nil {
				imageURL = *variant.ImageURL
			}
			chosen = &cart.VariantSnapshot{
				ID:               variant.ID,
				SKU:              variant.SKU,
				Name:             variant.Name,
				PriceCents:       priceCents,
				ShippingRequired: variant.ShippingRequired,
				ImageURL:         imageURL,
				VariantData:      variant.VariantData,
			}
		}

		current := store.Load(ctx, token)
		current.AddItem(snapshot, chosen, payload.Quantity, payload.Customization)
		store.Save(ctx, token, current)

		responses.WriteSuccessStatus(w, http.StatusCreated, newCartView(current))
	}
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem sets the quantity for a variant's lines; zero or negative
// removes them. A key query parameter narrows the change to one line when
// the variant appears with several customizations.
func UpdateCartItem(store *cart.SessionStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := cartToken(w, r)
		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithCartToken(ctx, token)
		}

		variantID, err := pathID(r, "variantID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		current := store.Load(ctx, token)
		if key := strings.TrimSpace(r.URL.Query().Get("key")); key != "" {
			current.UpdateLineQuantity(key, payload.Quantity)
		} else {
			current.UpdateQuantity(variantID, payload.Quantity)
		}
		store.Save(ctx, token, current)

		responses.WriteSuccess(w, newCartView(current))
	}
}

// RemoveCartItem drops every line for the variant, or just the line named
// by the key query parameter.
func RemoveCartItem(store *cart.SessionStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := cartToken(w, r)
		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithCartToken(ctx, token)
		}

		variantID, err := pathID(r, "variantID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		current := store.Load(ctx, token)
		if key := strings.TrimSpace(r.URL.Query().Get("key")); key != "" {
			current.RemoveLine(key)
		} else {
			current.RemoveItem(variantID)
		}
		store.Save(ctx, token, current)

		responses.WriteSuccess(w, newCartView(current))
	}
}

func ClearCart(store *cart.SessionStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := cartToken(w, r)
		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithCartToken(ctx, token)
		}

		store.Delete(ctx, token)
		responses.WriteSuccess(w, newCartView(cart.New()))
	}
}
