package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/themosthappypiano/thewoofingoven/api/responses"
	"github.com/themosthappypiano/thewoofingoven/internal/catalog"
	"github.com/themosthappypiano/thewoofingoven/internal/variants"
	pkgerrors "github.com/themosthappypiano/thewoofingoven/pkg/errors"
	"github.com/themosthappypiano/thewoofingoven/pkg/logger"
)

// ListProducts returns the full catalog with active variants.
func ListProducts(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := repo.ListProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dtos := make([]catalog.ProductDTO, 0, len(products))
		for i := range products {
			dtos = append(dtos, *catalog.NewProductDTO(&products[i]))
		}
		responses.WriteSuccess(w, dtos)
	}
}

func GetProduct(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := repo.FindProductByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalog.NewProductDTO(product))
	}
}

// productOptionsResponse carries the cascading option axes for one product
// plus the variant matching the current selection.
type productOptionsResponse struct {
	Designs   []string            `json:"designs"`
	Bases     []string            `json:"bases"`
	Sizes     []string            `json:"sizes"`
	Selection productSelection    `json:"selection"`
	Variant   *catalog.VariantDTO `json:"variant,omitempty"`
}

type productSelection struct {
	Design string `json:"design"`
	Base   string `json:"base"`
	Size   string `json:"size"`
}

// GetProductOptions derives the design/base/size axes for a product and
// resolves the variant for the selection passed in the query string. Absent
// query values fall back to the first option on each axis.
func GetProductOptions(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := repo.FindProductByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resolver := variants.NewResolver(product.Variants)

		sel := variants.Selection{
			Design: strings.TrimSpace(r.URL.Query().Get("design")),
			Base:   strings.TrimSpace(r.URL.Query().Get("base")),
			Size:   strings.TrimSpace(r.URL.Query().Get("size")),
		}
		if sel.Design == "" && sel.Base == "" && sel.Size == "" {
			sel = resolver.DefaultSelection()
		}

		resp := productOptionsResponse{
			Designs: resolver.Designs(),
			Bases:   resolver.Bases(sel.Design),
			Sizes:   resolver.Sizes(sel.Design, sel.Base),
		}
		if resolved := resolver.Resolve(sel); resolved != nil {
			resp.Variant = catalog.NewVariantDTO(&resolved.Variant)
			resp.Selection = productSelection{
				Design: resolved.Design,
				Base:   resolved.Base,
				Size:   resolved.Size,
			}
		} else {
			resp.Selection = productSelection{Design: sel.Design, Base: sel.Base, Size: sel.Size}
		}

		responses.WriteSuccess(w, resp)
	}
}

func GetVariant(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		variant, err := repo.FindVariantByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalog.NewVariantDTO(variant))
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid id").WithDetails(map[string]string{name: "must be a positive integer"})
	}
	return id, nil
}
