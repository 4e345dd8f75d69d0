package controllers

import (
	"net/http"

	"github.com/themosthappypiano/thewoofingoven/api/responses"
	"github.com/themosthappypiano/thewoofingoven/api/validators"
	"github.com/themosthappypiano/thewoofingoven/internal/checkout"
	"github.com/themosthappypiano/thewoofingoven/pkg/logger"
)

// CreateCheckoutSession runs the full checkout pipeline: resolve items,
// quote fulfillment, open the payment session, record the order.
func CreateCheckoutSession(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload checkout.CreateSessionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.CreateSession(r.Context(), payload, r.Header.Get("Origin"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, session)
	}
}

// ShippingRates quotes fulfillment for a cart without starting checkout.
func ShippingRates(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload checkout.ShippingRatesRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quote, err := svc.ShippingRates(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, quote)
	}
}
