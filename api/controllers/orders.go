package controllers

import (
	"net/http"

	"github.com/themosthappypiano/thewoofingoven/api/responses"
	"github.com/themosthappypiano/thewoofingoven/internal/orders"
	"github.com/themosthappypiano/thewoofingoven/pkg/logger"
)

func GetOrder(repo *orders.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := repo.FindByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, orders.NewOrderDTO(order))
	}
}
