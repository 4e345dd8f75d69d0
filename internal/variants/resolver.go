package variants

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/themosthappypiano/thewoofingoven/pkg/db/models"
)

// Axis defaults when a variant name carries fewer segments than expected.
const (
	DefaultDesign = "Standard"
	DefaultBase   = "Default"
	DefaultSize   = "Standard"
)

const nameSeparator = " - "

// Parsed is a catalog variant with its option axes resolved.
type Parsed struct {
	Variant models.ProductVariant
	Design  string
	Base    string
	Size    string
}

// Selection holds the shopper's current axis choices. Empty values mean
// "any" for option-set derivation and loosen the match during resolution.
type Selection struct {
	Design string
	Base   string
	Size   string
}

// Resolver exposes cascading option sets and variant resolution for one
// product's variants.
type Resolver struct {
	parsed []Parsed
}

// NewResolver parses the provided variants in order.
func NewResolver(variants []models.ProductVariant) *Resolver {
	parsed := make([]Parsed, 0, len(variants))
	for _, v := range variants {
		parsed = append(parsed, Parse(v))
	}
	return &Resolver{parsed: parsed}
}

// Parse derives the design/base/size axes for a single variant. Structured
// option data wins when present; otherwise the display name is split on
// " - " with any extra tail folded into the size axis.
func Parse(variant models.ProductVariant) Parsed {
	parts := strings.Split(variant.Name, nameSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	p := Parsed{
		Variant: variant,
		Design:  DefaultDesign,
		Base:    DefaultBase,
		Size:    DefaultSize,
	}
	if len(parts) > 0 && parts[0] != "" {
		p.Design = parts[0]
	}
	if len(parts) > 1 && parts[1] != "" {
		p.Base = parts[1]
	}
	if len(parts) > 2 {
		if tail := strings.Join(parts[2:], nameSeparator); tail != "" {
			p.Size = tail
		}
	}

	data := optionData(variant.VariantData)
	if v := stringOption(data, "Design"); v != "" {
		p.Design = v
	}
	if v := stringOption(data, "Base"); v != "" {
		p.Base = v
	}
	if v := stringOption(data, "Size"); v != "" {
		p.Size = v
	}
	p.Design = normalizeDesign(p.Design)
	return p
}

// optionData tolerates structured data arriving as a JSON string (the legacy
// sqlite rows stored it that way). Malformed payloads are ignored.
func optionData(raw any) map[string]any {
	switch data := raw.(type) {
	case map[string]any:
		return data
	case string:
		var decoded map[string]any
		if err := json.Unmarshal([]byte(data), &decoded); err != nil {
			return nil
		}
		return decoded
	default:
		return nil
	}
}

func stringOption(data map[string]any, key string) string {
	if data == nil {
		return ""
	}
	if v, ok := data[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// normalizeDesign folds legacy design labels into their current names.
func normalizeDesign(design string) string {
	switch strings.TrimSpace(design) {
	case "Drip Cake":
		return "Drip Design"
	case "Non-Personalised":
		return "Standard Non-Personalised"
	case "Personalised Name":
		return "Standard Personalised"
	default:
		return strings.TrimSpace(design)
	}
}

// Parsed returns every parsed variant in catalog order.
func (r *Resolver) Parsed() []Parsed {
	return r.parsed
}

// Designs lists the unique design values in catalog order.
func (r *Resolver) Designs() []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, p := range r.parsed {
		if _, ok := seen[p.Design]; ok {
			continue
		}
		seen[p.Design] = struct{}{}
		out = append(out, p.Design)
	}
	return out
}

// Bases lists the unique base values among variants matching the chosen
// design (all variants when design is empty).
func (r *Resolver) Bases(design string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, p := range r.parsed {
		if design != "" && p.Design != design {
			continue
		}
		if _, ok := seen[p.Base]; ok {
			continue
		}
		seen[p.Base] = struct{}{}
		out = append(out, p.Base)
	}
	return out
}

// Sizes lists the unique size values among variants matching the chosen
// design and base, sorted numerically when both values lead with a number.
func (r *Resolver) Sizes(design, base string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, p := range r.parsed {
		if design != "" && p.Design != design {
			continue
		}
		if base != "" && p.Base != base {
			continue
		}
		if _, ok := seen[p.Size]; ok {
			continue
		}
		seen[p.Size] = struct{}{}
		out = append(out, p.Size)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, aOK := leadingNumber(out[i])
		b, bOK := leadingNumber(out[j])
		if aOK && bOK {
			return a < b
		}
		return out[i] < out[j]
	})
	return out
}

// leadingNumber parses the numeric prefix of a size like "3 inch".
func leadingNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		c := s[end]
		if (c >= '0' && c <= '9') || c == '.' || (end == 0 && (c == '-' || c == '+')) {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Resolve picks the variant for the given selection, loosening the match
// one axis at a time (size first, then base) and finally falling back to
// the first variant. Returns nil only when there are no variants at all.
func (r *Resolver) Resolve(sel Selection) *Parsed {
	if len(r.parsed) == 0 {
		return nil
	}
	if p := r.find(func(p Parsed) bool {
		return p.Design == sel.Design && p.Base == sel.Base && p.Size == sel.Size
	}); p != nil {
		return p
	}
	if p := r.find(func(p Parsed) bool {
		return p.Design == sel.Design && p.Base == sel.Base
	}); p != nil {
		return p
	}
	if p := r.find(func(p Parsed) bool {
		return p.Design == sel.Design
	}); p != nil {
		return p
	}
	return &r.parsed[0]
}

// DefaultSelection is the initial pick: first design, then the first valid
// value for each dependent axis.
func (r *Resolver) DefaultSelection() Selection {
	var sel Selection
	if designs := r.Designs(); len(designs) > 0 {
		sel.Design = designs[0]
	}
	if bases := r.Bases(sel.Design); len(bases) > 0 {
		sel.Base = bases[0]
	}
	if sizes := r.Sizes(sel.Design, sel.Base); len(sizes) > 0 {
		sel.Size = sizes[0]
	}
	return sel
}

func (r *Resolver) find(match func(Parsed) bool) *Parsed {
	for i := range r.parsed {
		if match(r.parsed[i]) {
			return &r.parsed[i]
		}
	}
	return nil
}
