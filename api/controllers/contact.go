package controllers

import (
	"net/http"

	"github.com/themosthappypiano/thewoofingoven/api/responses"
	"github.com/themosthappypiano/thewoofingoven/api/validators"
	"github.com/themosthappypiano/thewoofingoven/internal/contact"
	"github.com/themosthappypiano/thewoofingoven/pkg/logger"
)

type contactMessageDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func SubmitContactMessage(repo *contact.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload contact.Message
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := repo.Create(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, contactMessageDTO{
			ID:      row.ID,
			Name:    row.Name,
			Email:   row.Email,
			Message: row.Message,
		})
	}
}
