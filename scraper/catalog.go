package scraper

// CatalogItem is one entry of a static market catalog. BasePrice is in KES;
// the static source perturbs it per run to simulate market fluctuation.
type CatalogItem struct {
	Name      string
	BasePrice float64
	Unit      string
	Category  string
}

// DefaultCatalog lists the staple foods and common groceries used when a
// market has no catalog configured.
func DefaultCatalog() []CatalogItem {
	return []CatalogItem{
		// Grains
		{Name: "Maize", BasePrice: 85.50, Unit: "kg", Category: "grains"},
		{Name: "Rice", BasePrice: 150.00, Unit: "kg", Category: "grains"},
		{Name: "Wheat Flour", BasePrice: 120.00, Unit: "kg", Category: "grains"},
		// Vegetables
		{Name: "Tomatoes", BasePrice: 60.00, Unit: "kg", Category: "vegetables"},
		{Name: "Onions", BasePrice: 70.00, Unit: "kg", Category: "vegetables"},
		{Name: "Cabbage", BasePrice: 35.00, Unit: "piece", Category: "vegetables"},
		{Name: "Carrots", BasePrice: 80.00, Unit: "kg", Category: "vegetables"},
		// Fruits
		{Name: "Bananas", BasePrice: 90.00, Unit: "bunch", Category: "fruits"},
		{Name: "Oranges", BasePrice: 120.00, Unit: "kg", Category: "fruits"},
		{Name: "Mangoes", BasePrice: 150.00, Unit: "kg", Category: "fruits"},
		{Name: "Papaya", BasePrice: 80.00, Unit: "kg", Category: "fruits"},
		// Dairy
		{Name: "Milk", BasePrice: 60.00, Unit: "liter", Category: "dairy"},
		{Name: "Cheese", BasePrice: 450.00, Unit: "kg", Category: "dairy"},
		// Proteins
		{Name: "Beef", BasePrice: 650.00, Unit: "kg", Category: "proteins"},
		{Name: "Chicken", BasePrice: 320.00, Unit: "kg", Category: "proteins"},
		{Name: "Fish", BasePrice: 400.00, Unit: "kg", Category: "proteins"},
		{Name: "Beans", BasePrice: 160.00, Unit: "kg", Category: "proteins"},
		{Name: "Green Grams", BasePrice: 180.00, Unit: "kg", Category: "proteins"},
		// Other staples
		{Name: "Cooking Oil", BasePrice: 350.00, Unit: "liter", Category: "other"},
		{Name: "Sugar", BasePrice: 145.00, Unit: "kg", Category: "other"},
	}
}
