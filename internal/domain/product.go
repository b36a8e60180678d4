package domain

// Product is a catalog product as returned by the backend. Fields vary by
// source endpoint: purchase_count is set only for most-bought results, and
// category is absent from some sources.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category,omitempty"`
	Price         float64 `json:"price"`
	ImageURL      string  `json:"image_url"`
	PurchaseCount int     `json:"purchase_count,omitempty"`
}
