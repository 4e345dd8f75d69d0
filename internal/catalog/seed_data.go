package catalog

import "github.com/shopspring/decimal"

// priceAdjustment is the variant price delta against the product base price,
// rendered as a two-decimal string like the legacy data.
func priceAdjustment(price, basePrice string) string {
	p, err := decimal.NewFromString(price)
	if err != nil {
		return "0"
	}
	b, err := decimal.NewFromString(basePrice)
	if err != nil {
		return "0"
	}
	return p.Sub(b).StringFixed(2)
}

func catalogSeeds() []productSeed {
	const (
		defaultImage        = "https://placehold.co/800x800?text=The+Woofing+Oven"
		cakeImage           = "https://cdn.shopify.com/s/files/1/0970/6799/1383/files/WhatsAppImage2025-10-15at21.35.32_4.jpg?v=1765216387"
		wooflesImage        = "https://cdn.shopify.com/s/files/1/0970/6799/1383/files/hmmmm.jpg?v=1765216392"
		barkdayBoxImage     = "https://i.ibb.co/0gpzNsx/image.png"
		trainingTreatsImage = "https://cdn.shopify.com/s/files/1/0970/6799/1383/files/WhatsAppImage2025-10-15at22.00.56_3_eed392a1-7628-4abb-be3b-7ecc65ce2f51.jpg?v=1765216389"
	)

	return []productSeed{
		{
			Name:        "Doggy Birthday Cake",
			Description: "Birthday cakes in 3, 4, and 6 inch sizes with protein or non-protein bases. Standard, personalised, and drip designs available. Delivery is Dublin-only for cakes, or collection.",
			BasePrice:   "35.00",
			ImageURL:    cakeImage,
			Category:    "cake",
			IsFeatured:  true,
			Tags:        []string{"birthday cake", "celebration", "dog cake", "custom", "pawty"},
			Variants: []variantSeed{
				{SKU: "CAKE-STD-NP-3", Name: "Standard Non-Personalised - Non-Protein - 3 inch", Price: "35.00", VariantData: map[string]any{"Design": "Standard Non-Personalised", "Base": "Non-Protein", "Size": "3 inch"}, ShippingRequired: boolPtr(true), WeightGrams: 300},
				{SKU: "CAKE-STD-P-3", Name: "Standard Non-Personalised - Protein - 3 inch", Price: "40.00", VariantData: map[string]any{"Design": "Standard Non-Personalised", "Base": "Protein", "Size": "3 inch"}, ShippingRequired: boolPtr(true), WeightGrams: 300},
				{SKU: "CAKE-STD-NP-4", Name: "Standard Non-Personalised - Non-Protein - 4 inch", Price: "40.00", VariantData: map[string]any{"Design": "Standard Non-Personalised", "Base": "Non-Protein", "Size": "4 inch"}, ShippingRequired: boolPtr(true), WeightGrams: 450},
				{SKU: "CAKE-STD-P-4", Name: "Standard Non-Personalised - Protein - 4 inch", Price: "45.00", VariantData: map[string]any{"Design": "Standard Non-Personalised", "Base": "Protein", "Size": "4 inch"}, ShippingRequired: boolPtr(true), WeightGrams: 450},
				{SKU: "CAKE-STD-NP-6", Name: "Standard Non-Personalised - Non-Protein - 6 inch", Price: "50.00", VariantData: map[string]any{"Design": "Standard Non-Personalised", "Base": "Non-Protein", "Size": "6 inch"}, ShippingRequired: boolPtr(true), WeightGrams: 700},
				{SKU: "CAKE-STD-P-6", Name: "Standard Non-Personalised - Protein - 6 inch", Price: "55.00", VariantData: map[string]any{"Design": "Standard Non-Personalised", "Base": "Protein", "Size": "6 inch"}, ShippingRequired: boolPtr(true), WeightGrams: 700},
				{SKU: "CAKE-PERS-NP-3", Name: "Standard Personalised - Non-Protein - 3 inch", Price: "40.00", VariantData: map[string]any{"Design": "Standard Personalised", "Base": "Non-Protein", "Size": "3 inch"}, ShippingRequired: boolPtr(true), WeightGrams: 300},
				{SKU: "CAKE-PERS-P-3", Name: "Standard Personalised - Protein - 3 inch", Price: "42.00", VariantData: map[string]any{"Design": "Standard Personalised", "Base": "Protein", "Size": "3 inch"}, ShippingRequired: boolPtr(true), WeightGrams: 300},
				{SKU: "CAKE-PERS-NP-4", Name: "Standard Personalised - Non-Protein - 4 inch", Price: "45.00", VariantData: map[string]any{"Design": "Standard Personalised", "Base": "Non-Protein", "Size": "4 inch"}, ShippingRequired: boolPtr(true), WeightGrams: 450},
				{SKU: "CAKE-PERS-P-4", Name: "Standard Personalised - Protein - 4 inch", Price: "50.00", VariantData: map[string]any{"Design": "Standard Personalised", "Base": "Protein", "Size": "4 inch"}, ShippingRequired: boolPtr(true), WeightGrams: 450},
				{SKU: "CAKE-PERS-NP-6", Name: "Standard Personalised - Non-Protein - 6 inch", Price: "50.00", VariantData: map[string]any{"Design": "Standard Personalised", "Base": "Non-Protein", "Size": "6 inch"}, ShippingRequired: boolPtr(true), WeightGrams: 700},
				{SKU: "CAKE-PERS-P-6", Name: "Standard Personalised - Protein - 6 inch", Price: "55.00", VariantData: map[string]any{"Design": "Standard Personalised", "Base": "Protein", "Size": "6 inch"}, ShippingRequired: boolPtr(true), WeightGrams: 700},
				{SKU: "CAKE-DRIP-NP-4", Name: "Drip Cake - Non-Protein - 4 inch", Price: "55.00", VariantData: map[string]any{"Design": "Drip Cake", "Base": "Non-Protein", "Size": "4 inch"}, ShippingRequired: boolPtr(true), WeightGrams: 450},
				{SKU: "CAKE-DRIP-P-4", Name: "Drip Cake - Protein - 4 inch", Price: "60.00", VariantData: map[string]any{"Design": "Drip Cake", "Base": "Protein", "Size": "4 inch"}, ShippingRequired: boolPtr(true), WeightGrams: 450},
				{SKU: "CAKE-DRIP-NP-6", Name: "Drip Cake - Non-Protein - 6 inch", Price: "60.00", VariantData: map[string]any{"Design": "Drip Cake", "Base": "Non-Protein", "Size": "6 inch"}, ShippingRequired: boolPtr(true), WeightGrams: 700},
				{SKU: "CAKE-DRIP-P-6", Name: "Drip Cake - Protein - 6 inch", Price: "65.00", VariantData: map[string]any{"Design": "Drip Cake", "Base": "Protein", "Size": "6 inch"}, ShippingRequired: boolPtr(true), WeightGrams: 700},
			},
		},
		{
			Name:        "Training Treats",
			Description: "Pee-Nutz, Tuna Puffs, and Cheesy Bites training treats. 120g packs with multi-pack savings.",
			BasePrice:   "7.00",
			ImageURL:    trainingTreatsImage,
			Category:    "treat",
			Tags:        []string{"training", "treats", "packs"},
			Variants: []variantSeed{
				{SKU: "TRAIN-PEE-1PACK", Name: "Pee-Nutz - 1 Pack - 120g", Price: "7.00", VariantData: map[string]any{"Type": "Pee-Nutz", "Pack": "1 Pack", "Weight": "120g"}},
				{SKU: "TRAIN-PEE-4PACK", Name: "Pee-Nutz - 4 Packs - 120g", Price: "25.00", VariantData: map[string]any{"Type": "Pee-Nutz", "Pack": "4 Packs", "Weight": "120g"}},
				{SKU: "TRAIN-TUNA-1PACK", Name: "Tuna Puffs - 1 Pack - 120g", Price: "7.00", VariantData: map[string]any{"Type": "Tuna Puffs", "Pack": "1 Pack", "Weight": "120g"}},
				{SKU: "TRAIN-TUNA-4PACK", Name: "Tuna Puffs - 4 Packs - 120g", Price: "25.00", VariantData: map[string]any{"Type": "Tuna Puffs", "Pack": "4 Packs", "Weight": "120g"}},
				{SKU: "TRAIN-CHEESE-1PACK", Name: "Cheesy Bites - 1 Pack - 120g", Price: "7.00", VariantData: map[string]any{"Type": "Cheesy Bites", "Pack": "1 Pack", "Weight": "120g"}},
				{SKU: "TRAIN-CHEESE-4PACK", Name: "Cheesy Bites - 4 Packs - 120g", Price: "25.00", VariantData: map[string]any{"Type": "Cheesy Bites", "Pack": "4 Packs", "Weight": "120g"}},
			},
		},
		{
			Name:        "Pupcakes",
			Description: "Apple & Carrot pupcakes in celebration box sizes. Collection only.",
			BasePrice:   "7.20",
			ImageURL:    defaultImage,
			Category:    "cake",
			Tags:        []string{"pupcakes", "apple", "carrot"},
			Variants: []variantSeed{
				{SKU: "PUP-2", Name: "Apple & Carrot - Box of 2 - Pack", Price: "7.20", VariantData: map[string]any{"Flavor": "Apple & Carrot", "Box": "2"}, ShippingRequired: boolPtr(false)},
				{SKU: "PUP-4", Name: "Apple & Carrot - Box of 4 - Pack", Price: "14.00", VariantData: map[string]any{"Flavor": "Apple & Carrot", "Box": "4"}, ShippingRequired: boolPtr(false)},
				{SKU: "PUP-6", Name: "Apple & Carrot - Box of 6 - Pack", Price: "20.00", VariantData: map[string]any{"Flavor": "Apple & Carrot", "Box": "6"}, ShippingRequired: boolPtr(false)},
				{SKU: "PUP-12", Name: "Apple & Carrot - Box of 12 - Pack", Price: "40.00", VariantData: map[string]any{"Flavor": "Apple & Carrot", "Box": "12"}, ShippingRequired: boolPtr(false)},
				{SKU: "PUP-24", Name: "Apple & Carrot - Box of 24 - Pack", Price: "80.00", VariantData: map[string]any{"Flavor": "Apple & Carrot", "Box": "24"}, ShippingRequired: boolPtr(false)},
			},
		},
		{
			Name:        "Barkday Box",
			Description: "Apple & Peanut Butter biscuit barkday box. Collection or delivery option available.",
			BasePrice:   "30.00",
			ImageURL:    barkdayBoxImage,
			ImageURLs: []string{
				"https://i.ibb.co/0gpzNsx/image.png",
				"https://i.ibb.co/x8PrBc28/image.png",
				"https://i.ibb.co/jPy7JDvm/image.png",
			},
			Category:   "box",
			IsFeatured: true,
			Tags:       []string{"barkday", "box", "gift"},
			Variants: []variantSeed{
				{SKU: "BOX-COLLECT", Name: "Collection - Barkday Box - Standard", Price: "30.00", VariantData: map[string]any{"Delivery": "Collection"}, ShippingRequired: boolPtr(false), ImageURL: "https://i.ibb.co/x8PrBc28/image.png"},
				{SKU: "BOX-DELIVER", Name: "Delivery - Barkday Box", Price: "40.00", VariantData: map[string]any{"Delivery": "Delivery", "DeliveryIncluded": true}, ShippingRequired: boolPtr(true), ImageURL: "https://i.ibb.co/jPy7JDvm/image.png"},
			},
		},
		{
			Name:        "Woofles",
			Description: "Grain-free carrot waffles. Choose single pack or multi-pack.",
			BasePrice:   "7.00",
			ImageURL:    wooflesImage,
			ImageURLs: []string{
				"https://i.ibb.co/sTX4gCq/image.png",
				"https://i.ibb.co/S4sd2DGB/image.png",
				"https://i.ibb.co/VYfcVtXy/image.png",
				"https://i.ibb.co/bj4YCFwx/image.png",
			},
			Category:   "treat",
			IsFeatured: true,
			Tags:       []string{"woofles", "waffles", "carrot"},
			Variants: []variantSeed{
				{SKU: "WOOF-1PACK", Name: "Woofles - 1 Pack - Standard", Price: "7.00", VariantData: map[string]any{"Pack": "1 Pack"}},
				{SKU: "WOOF-4PACK", Name: "Woofles - 4 Packs - Standard", Price: "40.00", VariantData: map[string]any{"Pack": "4 Packs"}},
			},
		},
		{
			Name:        "Dognuts",
			Description: "Banana & peanut butter dognuts. Price is per dognut. Minimum order 6.",
			BasePrice:   "3.30",
			ImageURL:    defaultImage,
			Category:    "treat",
			Tags:        []string{"dognuts", "donuts", "banana", "peanut butter"},
			Variants: []variantSeed{
				{SKU: "DOGNUT-6", Name: "Dognuts - Box of 6", Price: "19.80", VariantData: map[string]any{"Box": "6"}, ShippingRequired: boolPtr(false)},
				{SKU: "DOGNUT-12", Name: "Dognuts - Box of 12", Price: "39.60", VariantData: map[string]any{"Box": "12"}, ShippingRequired: boolPtr(false)},
			},
		},
	}
}
