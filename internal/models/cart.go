package models

// Product is the subset of the catalog record the cart and checkout views
// need. Prices are VND, so whole numbers throughout.
type Product struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Slug            string  `json:"slug"`
	ImageURL        string  `json:"image_url"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent"`
}

// LineItem is one product-and-quantity entry in a user's cart.
// Quantity is at least 1 for any item the backend returns.
type LineItem struct {
	ID       int64   `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type PriceBreakdown struct {
	Subtotal      float64 `json:"subtotal"`
	DiscountTotal float64 `json:"discount_total"`
	ShippingFee   float64 `json:"shipping_fee"`
	GrandTotal    float64 `json:"grand_total"`
}

// CartView is what the gateway serves to the storefront: the mirrored items
// plus the breakdown recomputed from them.
type CartView struct {
	Items     []LineItem     `json:"items"`
	Breakdown PriceBreakdown `json:"breakdown"`
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity"   validate:"required,min=1"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}
