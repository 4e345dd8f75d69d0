package controllers

import (
	"net/http"

	"github.com/themosthappypiano/thewoofingoven/api/responses"
	"github.com/themosthappypiano/thewoofingoven/internal/reviews"
	"github.com/themosthappypiano/thewoofingoven/pkg/logger"
)

type reviewDTO struct {
	ID       int64   `json:"id"`
	DogName  string  `json:"dogName"`
	Rating   int     `json:"rating"`
	Content  string  `json:"content"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

func ListReviews(repo *reviews.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := repo.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dtos := make([]reviewDTO, 0, len(rows))
		for _, row := range rows {
			dtos = append(dtos, reviewDTO{
				ID:       row.ID,
				DogName:  row.DogName,
				Rating:   row.Rating,
				Content:  row.Content,
				ImageURL: row.ImageURL,
			})
		}
		responses.WriteSuccess(w, dtos)
	}
}
