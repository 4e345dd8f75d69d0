package cart

import (
	"testing"
)

func pawProduct() ProductSnapshot {
	return ProductSnapshot{ID: 7, Name: "Doggy Birthday Cake", PriceCents: 3500, Category: "cake"}
}

func cakeVariant() VariantSnapshot {
	return VariantSnapshot{ID: 42, SKU: "CAKE-STD-P-4", Name: "Standard Non-Personalised - Protein - 4 inch", PriceCents: 4500, ShippingRequired: true}
}

func TestAddItemMergesSameKey(t *testing.T) {
	t.Parallel()

	c := New()
	v := cakeVariant()
	c.AddItem(pawProduct(), &v, 1, nil)
	c.AddItem(pawProduct(), &v, 2, nil)

	if len(c.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(c.Lines))
	}
	if c.Lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", c.Lines[0].Quantity)
	}
}

func TestAddItemDistinctCustomizationStaysDistinct(t *testing.T) {
	t.Parallel()

	c := New()
	v := cakeVariant()
	c.AddItem(pawProduct(), &v, 1, map[string]any{"message": "Happy Barkday Rex"})
	c.AddItem(pawProduct(), &v, 1, map[string]any{"message": "Happy Barkday Luna"})
	c.AddItem(pawProduct(), &v, 1, map[string]any{"message": "Happy Barkday Rex"})

	if len(c.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(c.Lines))
	}
	if c.Lines[0].Quantity != 2 || c.Lines[1].Quantity != 1 {
		t.Fatalf("unexpected quantities: %d, %d", c.Lines[0].Quantity, c.Lines[1].Quantity)
	}
}

func TestLineKeyIsOrderInsensitive(t *testing.T) {
	t.Parallel()

	a := LineKey(5, map[string]any{"color": "red", "size": "big"})
	b := LineKey(5, map[string]any{"size": "big", "color": "red"})
	if a != b {
		t.Fatalf("keys differ: %q vs %q", a, b)
	}
	if a == LineKey(5, map[string]any{"color": "blue", "size": "big"}) {
		t.Fatal("different customization must not collide")
	}
	if a == LineKey(6, map[string]any{"color": "red", "size": "big"}) {
		t.Fatal("different variants must not collide")
	}
}

func TestAddItemSynthesizesDefaultVariant(t *testing.T) {
	t.Parallel()

	c := New()
	c.AddItem(pawProduct(), nil, 1, nil)

	line := c.Lines[0]
	if line.Variant.ID != 7 {
		t.Fatalf("default variant id = %d", line.Variant.ID)
	}
	if line.Variant.SKU != "default-7" {
		t.Fatalf("default variant sku = %q", line.Variant.SKU)
	}
	if line.Variant.Name != "Default" {
		t.Fatalf("default variant name = %q", line.Variant.Name)
	}
	if line.Variant.PriceCents != 3500 {
		t.Fatalf("default variant price = %d", line.Variant.PriceCents)
	}
	if !line.Variant.ShippingRequired {
		t.Fatal("default variant must require shipping")
	}
}

func TestAddItemClampsQuantity(t *testing.T) {
	t.Parallel()

	c := New()
	c.AddItem(pawProduct(), nil, 0, nil)
	if c.Lines[0].Quantity != 1 {
		t.Fatalf("quantity = %d, want 1", c.Lines[0].Quantity)
	}

	c.AddItem(pawProduct(), nil, -5, nil)
	if c.Lines[0].Quantity != 2 {
		t.Fatalf("quantity = %d, want 2", c.Lines[0].Quantity)
	}
}

func TestAddItemSetsJustAdded(t *testing.T) {
	t.Parallel()

	c := New()
	c.AddItem(pawProduct(), nil, 1, nil)
	if !c.JustAdded {
		t.Fatal("JustAdded should be set after add")
	}
	c.UpdateQuantity(7, 3)
	if c.JustAdded {
		t.Fatal("JustAdded should clear after a non-add mutation")
	}
}

func TestRemoveItemDropsAllCustomizations(t *testing.T) {
	t.Parallel()

	c := New()
	v := cakeVariant()
	other := VariantSnapshot{ID: 9, SKU: "WOOF-1PACK", Name: "Woofles", PriceCents: 700}
	c.AddItem(pawProduct(), &v, 1, map[string]any{"message": "A"})
	c.AddItem(pawProduct(), &v, 1, map[string]any{"message": "B"})
	c.AddItem(ProductSnapshot{ID: 2, Name: "Woofles", PriceCents: 700}, &other, 1, nil)

	c.RemoveItem(42)

	if len(c.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(c.Lines))
	}
	if c.Lines[0].Variant.ID != 9 {
		t.Fatalf("wrong survivor: %d", c.Lines[0].Variant.ID)
	}
}

func TestRemoveLineTargetsOneCustomization(t *testing.T) {
	t.Parallel()

	c := New()
	v := cakeVariant()
	c.AddItem(pawProduct(), &v, 1, map[string]any{"message": "Happy Barkday Rex"})
	c.AddItem(pawProduct(), &v, 1, map[string]any{"message": "Happy Barkday Luna"})

	c.RemoveLine(LineKey(v.ID, map[string]any{"message": "Happy Barkday Rex"}))

	if len(c.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(c.Lines))
	}
	if c.Lines[0].Key != LineKey(v.ID, map[string]any{"message": "Happy Barkday Luna"}) {
		t.Fatalf("wrong line removed: %q", c.Lines[0].Key)
	}
}

func TestUpdateLineQuantityByKey(t *testing.T) {
	t.Parallel()

	c := New()
	v := cakeVariant()
	c.AddItem(pawProduct(), &v, 1, map[string]any{"message": "Happy Barkday Rex"})
	c.AddItem(pawProduct(), &v, 1, nil)

	key := LineKey(v.ID, map[string]any{"message": "Happy Barkday Rex"})
	c.UpdateLineQuantity(key, 4)

	if c.Lines[0].Quantity != 4 || c.Lines[1].Quantity != 1 {
		t.Fatalf("unexpected quantities: %d, %d", c.Lines[0].Quantity, c.Lines[1].Quantity)
	}

	c.UpdateLineQuantity(key, 0)
	if len(c.Lines) != 1 {
		t.Fatalf("expected zero quantity to remove the line, got %d lines", len(c.Lines))
	}
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	t.Parallel()

	c := New()
	v := cakeVariant()
	c.AddItem(pawProduct(), &v, 2, nil)

	c.UpdateQuantity(42, 0)
	if len(c.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(c.Lines))
	}

	c.AddItem(pawProduct(), &v, 2, nil)
	c.UpdateQuantity(42, -1)
	if len(c.Lines) != 0 {
		t.Fatalf("negative quantity should remove, got %d lines", len(c.Lines))
	}
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	t.Parallel()

	c := New()
	v := cakeVariant()
	c.AddItem(pawProduct(), &v, 2, nil)
	c.UpdateQuantity(42, 5)

	if c.Lines[0].Quantity != 5 {
		t.Fatalf("quantity = %d, want 5", c.Lines[0].Quantity)
	}
}

func TestAggregatesRecomputed(t *testing.T) {
	t.Parallel()

	c := New()
	cake := cakeVariant()
	collect := VariantSnapshot{ID: 11, SKU: "BOX-COLLECT", Name: "Collection - Barkday Box - Standard", PriceCents: 3000, ShippingRequired: false}

	c.AddItem(pawProduct(), &cake, 2, nil)
	c.AddItem(ProductSnapshot{ID: 3, Name: "Barkday Box", PriceCents: 3000, Category: "box"}, &collect, 1, nil)

	if got := c.TotalCents(); got != 2*4500+3000 {
		t.Fatalf("total = %d", got)
	}
	if got := c.Count(); got != 3 {
		t.Fatalf("count = %d", got)
	}
	if !c.RequiresShipping() {
		t.Fatal("cart with a shipped line must require shipping")
	}
	collectionOnly := c.CollectionOnlyLines()
	if len(collectionOnly) != 1 || collectionOnly[0].Variant.ID != 11 {
		t.Fatalf("unexpected collection-only lines: %+v", collectionOnly)
	}

	c.RemoveItem(42)
	if c.RequiresShipping() {
		t.Fatal("aggregates must track current lines")
	}
	if got := c.TotalCents(); got != 3000 {
		t.Fatalf("total after removal = %d", got)
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	c := New()
	c.AddItem(pawProduct(), nil, 3, nil)
	c.Clear()

	if len(c.Lines) != 0 || c.TotalCents() != 0 || c.Count() != 0 {
		t.Fatalf("cart not empty after clear: %+v", c)
	}
}

func TestWritesReplaceTheLineList(t *testing.T) {
	t.Parallel()

	c := New()
	v := cakeVariant()
	c.AddItem(pawProduct(), &v, 1, nil)
	before := c.Lines

	c.AddItem(pawProduct(), &v, 1, nil)
	if before[0].Quantity != 1 {
		t.Fatal("mutation leaked into the previous line list")
	}
}

func TestUnitPriceFallsBackToProduct(t *testing.T) {
	t.Parallel()

	line := Line{Product: ProductSnapshot{ID: 1, PriceCents: 720}}
	if got := line.UnitPriceCents(); got != 720 {
		t.Fatalf("unit price = %d", got)
	}
}
