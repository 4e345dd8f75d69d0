package variants

import (
	"reflect"
	"testing"

	"github.com/themosthappypiano/thewoofingoven/pkg/db/models"
)

func cakeVariants() []models.ProductVariant {
	return []models.ProductVariant{
		{ID: 1, Name: "Standard Non-Personalised - Non-Protein - 3 inch", VariantData: map[string]any{"Design": "Standard Non-Personalised", "Base": "Non-Protein", "Size": "3 inch"}},
		{ID: 2, Name: "Standard Non-Personalised - Protein - 3 inch", VariantData: map[string]any{"Design": "Standard Non-Personalised", "Base": "Protein", "Size": "3 inch"}},
		{ID: 3, Name: "Standard Non-Personalised - Non-Protein - 6 inch", VariantData: map[string]any{"Design": "Standard Non-Personalised", "Base": "Non-Protein", "Size": "6 inch"}},
		{ID: 4, Name: "Drip Cake - Protein - 4 inch", VariantData: map[string]any{"Design": "Drip Cake", "Base": "Protein", "Size": "4 inch"}},
	}
}

func TestParseFromName(t *testing.T) {
	t.Parallel()

	got := Parse(models.ProductVariant{Name: "Woofles - 1 Pack - Standard"})
	if got.Design != "Woofles" || got.Base != "1 Pack" || got.Size != "Standard" {
		t.Fatalf("unexpected axes: %+v", got)
	}
}

func TestParseDefaultsMissingSegments(t *testing.T) {
	t.Parallel()

	got := Parse(models.ProductVariant{Name: "Delivery - Barkday Box"})
	if got.Design != "Delivery" || got.Base != "Barkday Box" || got.Size != DefaultSize {
		t.Fatalf("unexpected axes: %+v", got)
	}

	bare := Parse(models.ProductVariant{Name: "Solo"})
	if bare.Design != "Solo" || bare.Base != DefaultBase || bare.Size != DefaultSize {
		t.Fatalf("unexpected axes: %+v", bare)
	}
}

func TestParseFoldsExtraSegmentsIntoSize(t *testing.T) {
	t.Parallel()

	got := Parse(models.ProductVariant{Name: "Drip Cake - Protein - 6 inch - Deluxe"})
	if got.Size != "6 inch - Deluxe" {
		t.Fatalf("unexpected size %q", got.Size)
	}
}

func TestParsePrefersStructuredData(t *testing.T) {
	t.Parallel()

	got := Parse(models.ProductVariant{
		Name:        "whatever",
		VariantData: map[string]any{"Design": "Drip Cake", "Base": "Protein", "Size": "4 inch"},
	})
	if got.Design != "Drip Design" || got.Base != "Protein" || got.Size != "4 inch" {
		t.Fatalf("unexpected axes: %+v", got)
	}
}

func TestParseToleratesStringAndMalformedData(t *testing.T) {
	t.Parallel()

	fromString := Parse(models.ProductVariant{
		Name:        "X - Y - Z",
		VariantData: `{"Design":"Standard Personalised","Base":"Protein","Size":"3 inch"}`,
	})
	if fromString.Design != "Standard Personalised" || fromString.Size != "3 inch" {
		t.Fatalf("unexpected axes: %+v", fromString)
	}

	malformed := Parse(models.ProductVariant{Name: "A - B - C", VariantData: "{not json"})
	if malformed.Design != "A" || malformed.Base != "B" || malformed.Size != "C" {
		t.Fatalf("malformed data should fall back to the name: %+v", malformed)
	}
}

func TestParseNormalizesLegacyDesigns(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Drip Cake":         "Drip Design",
		"Non-Personalised":  "Standard Non-Personalised",
		"Personalised Name": "Standard Personalised",
		"Drip Design":       "Drip Design",
	}
	for raw, want := range cases {
		got := Parse(models.ProductVariant{Name: raw + " - Protein - 4 inch"})
		if got.Design != want {
			t.Fatalf("design %q: got %q, want %q", raw, got.Design, want)
		}
	}
}

func TestCascadingOptionSets(t *testing.T) {
	t.Parallel()

	r := NewResolver(cakeVariants())

	designs := r.Designs()
	want := []string{"Standard Non-Personalised", "Drip Design"}
	if !reflect.DeepEqual(designs, want) {
		t.Fatalf("designs = %v, want %v", designs, want)
	}

	bases := r.Bases("Drip Design")
	if !reflect.DeepEqual(bases, []string{"Protein"}) {
		t.Fatalf("bases = %v", bases)
	}

	all := r.Bases("")
	if !reflect.DeepEqual(all, []string{"Non-Protein", "Protein"}) {
		t.Fatalf("unfiltered bases = %v", all)
	}
}

func TestSizesSortNumerically(t *testing.T) {
	t.Parallel()

	r := NewResolver([]models.ProductVariant{
		{ID: 1, Name: "Cake - Protein - 6 inch"},
		{ID: 2, Name: "Cake - Protein - 3 inch"},
		{ID: 3, Name: "Cake - Protein - 10 inch"},
	})
	sizes := r.Sizes("Cake", "Protein")
	want := []string{"3 inch", "6 inch", "10 inch"}
	if !reflect.DeepEqual(sizes, want) {
		t.Fatalf("sizes = %v, want %v", sizes, want)
	}
}

func TestSizesSortLexicallyWhenNotNumeric(t *testing.T) {
	t.Parallel()

	r := NewResolver([]models.ProductVariant{
		{ID: 1, Name: "Treats - Pack - Small"},
		{ID: 2, Name: "Treats - Pack - Large"},
	})
	sizes := r.Sizes("Treats", "Pack")
	want := []string{"Large", "Small"}
	if !reflect.DeepEqual(sizes, want) {
		t.Fatalf("sizes = %v, want %v", sizes, want)
	}
}

func TestResolveProgressiveFallback(t *testing.T) {
	t.Parallel()

	r := NewResolver(cakeVariants())

	exact := r.Resolve(Selection{Design: "Standard Non-Personalised", Base: "Protein", Size: "3 inch"})
	if exact.Variant.ID != 2 {
		t.Fatalf("exact match = %d", exact.Variant.ID)
	}

	dropSize := r.Resolve(Selection{Design: "Standard Non-Personalised", Base: "Protein", Size: "9 inch"})
	if dropSize.Variant.ID != 2 {
		t.Fatalf("size fallback = %d", dropSize.Variant.ID)
	}

	dropBase := r.Resolve(Selection{Design: "Drip Design", Base: "Non-Protein", Size: "9 inch"})
	if dropBase.Variant.ID != 4 {
		t.Fatalf("base fallback = %d", dropBase.Variant.ID)
	}

	first := r.Resolve(Selection{Design: "Unknown"})
	if first.Variant.ID != 1 {
		t.Fatalf("first fallback = %d", first.Variant.ID)
	}
}

func TestResolveEmpty(t *testing.T) {
	t.Parallel()

	r := NewResolver(nil)
	if got := r.Resolve(Selection{}); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestDefaultSelection(t *testing.T) {
	t.Parallel()

	r := NewResolver(cakeVariants())
	sel := r.DefaultSelection()
	want := Selection{Design: "Standard Non-Personalised", Base: "Non-Protein", Size: "3 inch"}
	if sel != want {
		t.Fatalf("default selection = %+v, want %+v", sel, want)
	}
}
