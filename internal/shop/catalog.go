package shop

import "github.com/shopspring/decimal"

// Product is a catalog entry available for purchase.
type Product struct {
	Name  string
	Price decimal.Decimal
}

// LineItem is a product with a purchased quantity.
type LineItem struct {
	Product  Product
	Quantity int
}

// Subtotal returns price times quantity.
func (i LineItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// DefaultCatalog returns the built-in product list.
func DefaultCatalog() []Product {
	return []Product{
		{Name: "Milk", Price: decimal.NewFromFloat(50.00)},
		{Name: "Bread", Price: decimal.NewFromFloat(35.00)},
		{Name: "Eggs", Price: decimal.NewFromFloat(90.00)},
		{Name: "Rice", Price: decimal.NewFromFloat(45.00)},
		{Name: "Coffee", Price: decimal.NewFromFloat(120.00)},
	}
}

// Total sums the subtotals of the purchased items.
func Total(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
