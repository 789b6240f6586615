package routine

// catalog maps skin type and concern to the ordered steps for that pair.
// Every cell is Cleanser, Toner, Moisturizer, Treatment.
var catalog = map[SkinType]map[Concern][]ProductStep{
	Oily: {
		Acne:              {"Cleanser: Salicylic Acid Wash", "Toner: Witch Hazel", "Moisturizer: Oil-Free Gel", "Treatment: Benzoyl Peroxide"},
		Dryness:           {"Cleanser: Gentle Foam", "Toner: Hydrating Mist", "Moisturizer: Lightweight Cream", "Treatment: Niacinamide Serum"},
		Aging:             {"Cleanser: Gentle Foam", "Toner: Rose Water", "Moisturizer: Anti-Aging Cream", "Treatment: Retinol Serum"},
		Wrinkles:          {"Cleanser: Micellar Water", "Toner: Hydrating Mist", "Moisturizer: Anti-Wrinkle Cream", "Treatment: Peptide Serum"},
		Hyperpigmentation: {"Cleanser: Salicylic Acid Wash", "Toner: Green Tea", "Moisturizer: Oil-Free Gel", "Treatment: Vitamin C Serum"},
		Dullness:          {"Cleanser: Gentle Foam", "Toner: Exfoliating Toner", "Moisturizer: Lightweight Cream", "Treatment: Glycolic Acid Serum"},
		SunDamage:         {"Cleanser: Gentle Foam", "Toner: Rose Water", "Moisturizer: SPF Cream", "Treatment: Antioxidant Serum"},
		Others:            {"Cleanser: Basic Wash", "Toner: Basic Toner", "Moisturizer: Basic Cream", "Treatment: Basic Serum"},
	},
	Dry: {
		Acne:              {"Cleanser: Creamy Wash", "Toner: Rose Water", "Moisturizer: Rich Cream", "Treatment: Retinol Serum"},
		Dryness:           {"Cleanser: Micellar Water", "Toner: Hyaluronic Acid", "Moisturizer: Heavy Cream", "Treatment: Ceramide Serum"},
		Aging:             {"Cleanser: Creamy Wash", "Toner: Rose Water", "Moisturizer: Anti-Aging Cream", "Treatment: Retinol Serum"},
		Wrinkles:          {"Cleanser: Micellar Water", "Toner: Hyaluronic Acid", "Moisturizer: Anti-Wrinkle Cream", "Treatment: Peptide Serum"},
		Hyperpigmentation: {"Cleanser: Creamy Wash", "Toner: Rose Water", "Moisturizer: Rich Cream", "Treatment: Vitamin C Serum"},
		Dullness:          {"Cleanser: Micellar Water", "Toner: Exfoliating Toner", "Moisturizer: Heavy Cream", "Treatment: Glycolic Acid Serum"},
		SunDamage:         {"Cleanser: Creamy Wash", "Toner: Rose Water", "Moisturizer: SPF Cream", "Treatment: Antioxidant Serum"},
		Others:            {"Cleanser: Basic Wash", "Toner: Basic Toner", "Moisturizer: Basic Cream", "Treatment: Basic Serum"},
	},
	Combination: {
		Acne:              {"Cleanser: Gel Wash", "Toner: Green Tea", "Moisturizer: Light Lotion", "Treatment: Tea Tree Oil"},
		Dryness:           {"Cleanser: Milky Cleanser", "Toner: Aloe Vera", "Moisturizer: Balanced Cream", "Treatment: Vitamin C Serum"},
		Aging:             {"Cleanser: Gel Wash", "Toner: Green Tea", "Moisturizer: Anti-Aging Cream", "Treatment: Retinol Serum"},
		Wrinkles:          {"Cleanser: Milky Cleanser", "Toner: Aloe Vera", "Moisturizer: Anti-Wrinkle Cream", "Treatment: Peptide Serum"},
		Hyperpigmentation: {"Cleanser: Gel Wash", "Toner: Green Tea", "Moisturizer: Light Lotion", "Treatment: Vitamin C Serum"},
		Dullness:          {"Cleanser: Milky Cleanser", "Toner: Exfoliating Toner", "Moisturizer: Balanced Cream", "Treatment: Glycolic Acid Serum"},
		SunDamage:         {"Cleanser: Gel Wash", "Toner: Green Tea", "Moisturizer: SPF Cream", "Treatment: Antioxidant Serum"},
		Others:            {"Cleanser: Basic Wash", "Toner: Basic Toner", "Moisturizer: Basic Cream", "Treatment: Basic Serum"},
	},
}

// Lookup returns a copy of the steps for the pair. ok is false when the table
// has no entry for it.
func Lookup(skin SkinType, concern Concern) (steps []ProductStep, ok bool) {
	row, ok := catalog[skin]
	if !ok {
		return nil, false
	}
	cell, ok := row[concern]
	if !ok {
		return nil, false
	}
	return append([]ProductStep(nil), cell...), true
}
