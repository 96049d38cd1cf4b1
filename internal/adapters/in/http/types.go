package http

// Request and response bodies for the delivery-note API. Kept as plain
// structs with JSON tags; validation happens in the command constructors,
// not here.

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message"`
}

// NewDeliveryNote is the body for creating a draft note.
type NewDeliveryNote struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
}

// DeliveryNoteCreated is returned after a successful note creation.
type DeliveryNoteCreated struct {
	ID string `json:"id"`
}

// NewLineItem is the body for adding a piece to a draft note.
// Zero dimensions mean "not provided"; length and area are mutually
// exclusive.
type NewLineItem struct {
	Name      string  `json:"name"`
	Color     string  `json:"color"`
	Quantity  int     `json:"quantity"`
	Length    float64 `json:"length,omitempty"`
	Area      float64 `json:"area,omitempty"`
	Thickness float64 `json:"thickness,omitempty"`
}

// LineItemCreated is returned after a successful item addition.
type LineItemCreated struct {
	ID string `json:"id"`
}

// ItemPrice is the body for a manual price override.
type ItemPrice struct {
	Price float64 `json:"price"`
}

// DeliveryNote is the full note representation, items included.
type DeliveryNote struct {
	ID           string     `json:"id"`
	Number       string     `json:"number"`
	CustomerID   string     `json:"customerId"`
	CustomerName string     `json:"customerName"`
	Date         string     `json:"date"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes,omitempty"`
	Items        []LineItem `json:"items"`
	TotalAmount  *float64   `json:"totalAmount"`
}

// LineItem is one piece on a note. UnitPrice and TotalPrice are null while
// the piece is unpriced.
type LineItem struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Color      string   `json:"color"`
	ColorType  string   `json:"colorType"`
	Quantity   int      `json:"quantity"`
	Length     *float64 `json:"length,omitempty"`
	Area       *float64 `json:"area,omitempty"`
	Thickness  *float64 `json:"thickness,omitempty"`
	UnitPrice  *float64 `json:"unitPrice"`
	TotalPrice *float64 `json:"totalPrice"`
}

// DeliveryNoteSummary is one row in the open-notes listing.
type DeliveryNoteSummary struct {
	ID           string `json:"id"`
	Number       string `json:"number"`
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	ItemCount    int    `json:"itemCount"`
}

// NewPricingProfile is the body for creating a customer pricing profile.
type NewPricingProfile struct {
	CustomerID    string         `json:"customerId"`
	LinearRate    float64        `json:"linearRate"`
	AreaRate      float64        `json:"areaRate"`
	MinimumCharge float64        `json:"minimumCharge"`
	SpecialPrices []SpecialPrice `json:"specialPrices,omitempty"`
}

// PricingProfileCreated is returned after a successful profile creation.
type PricingProfileCreated struct {
	ID string `json:"id"`
}

// PricingRates is the body for updating a profile's rates and floor.
type PricingRates struct {
	LinearRate    float64 `json:"linearRate"`
	AreaRate      float64 `json:"areaRate"`
	MinimumCharge float64 `json:"minimumCharge"`
}

// SpecialPrice is one fixed-price override by item name.
type SpecialPrice struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// SpecialPrices is the body for replacing a profile's override list.
type SpecialPrices struct {
	SpecialPrices []SpecialPrice `json:"specialPrices"`
}
