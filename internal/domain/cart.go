package domain

// CartItem represents a single line item in the cart.
type CartItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"total_price"`
}

// Cart is an ordered sequence of line items, one per product, in first-add
// order. It is persisted as a bare JSON array under the client's cart key.
type Cart []CartItem

// FindIndex returns the index of the cart item matching the given product ID.
// Returns -1 if not found.
func (c Cart) FindIndex(productID string) int {
	for i := range c {
		if c[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Add records one unit of the given product. An existing line item is merged
// by incrementing its quantity and adding the unit price to its running
// total; otherwise a new item is appended. TotalPrice accumulates the unit
// prices actually added, so it diverges from quantity times price when the
// unit price changes between adds.
func (c *Cart) Add(productID, productName string, unitPrice float64) {
	if i := c.FindIndex(productID); i >= 0 {
		(*c)[i].Quantity++
		(*c)[i].TotalPrice += unitPrice
		return
	}
	*c = append(*c, CartItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    1,
		TotalPrice:  unitPrice,
	})
}

// TotalAmount returns the sum of all line item totals.
func (c Cart) TotalAmount() float64 {
	var total float64
	for _, item := range c {
		total += item.TotalPrice
	}
	return total
}

// ItemCount returns the total number of units across all line items.
func (c Cart) ItemCount() int {
	var count int
	for _, item := range c {
		count += item.Quantity
	}
	return count
}

// Transaction is the outbound checkout payload. The client keeps no local
// record of past transactions after submission.
type Transaction struct {
	UserEmail string `json:"user_email"`
	Items     Cart   `json:"items"`
}

// CheckoutResult carries the backend's acknowledgment of a saved transaction.
type CheckoutResult struct {
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id"`
}
