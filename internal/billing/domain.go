package billing

import (
	"time"

	"github.com/google/uuid"
)

// Currency enumerates the currencies bills can be raised in.
type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyBHD Currency = "BHD"
)

// Default rates applied when a bill carries no usable percentage, and
// when reconstruction of a stored bill cannot derive one.
const (
	DefaultMakingChargesPercent = "12"
	DefaultGSTPercent           = "3"
	DefaultVATPercent           = "10"
)

// PaymentMethodCash is the only settlement method the counter flow records.
const PaymentMethodCash = "CASH"

// Config carries the admin-controlled inputs of a bill computation.
// All numeric fields are decimal strings and parse leniently: anything
// unparsable behaves as zero, so bad input never blocks the admin.
type Config struct {
	Currency             Currency `json:"currency"`
	MakingChargesPercent string   `json:"makingChargesPercent"`
	GSTPercent           string   `json:"gstPercent"`
	VATPercent           string   `json:"vatPercent"`

	// AmountINR / AmountBHD are the manually entered aggregate subtotals
	// that supersede the sum of catalog line prices.
	AmountINR string `json:"amountInr"`
	AmountBHD string `json:"amountBhd"`
}

// DefaultConfig returns a fresh configuration for the given currency.
func DefaultConfig(cur Currency) Config {
	return Config{
		Currency:             cur,
		MakingChargesPercent: DefaultMakingChargesPercent,
		GSTPercent:           DefaultGSTPercent,
		VATPercent:           DefaultVATPercent,
	}
}

// overrideAmount picks the override string for the active currency.
func (c Config) overrideAmount() string {
	if c.Currency == CurrencyBHD {
		return c.AmountBHD
	}
	return c.AmountINR
}

// LineItem is one computed bill line. Monetary fields are decimal
// strings fixed to two decimals; the inactive tax branch and the
// discount are the literal "0".
type LineItem struct {
	ProductID     int64  `json:"productId"`
	ProductName   string `json:"productName"`
	Quantity      int    `json:"quantity"`
	PriceINR      string `json:"priceInr"`
	PriceBHD      string `json:"priceBhd"`
	GrossWeight   string `json:"grossWeight"`
	NetWeight     string `json:"netWeight"`
	MakingCharges string `json:"makingCharges"`
	Discount      string `json:"discount"`
	SGST          string `json:"sgst"`
	CGST          string `json:"cgst"`
	VAT           string `json:"vat"`
	Total         string `json:"total"`
}

// Totals is the bill-level aggregate. It is computed independently from
// the override subtotal, not by summing line items, so the two may
// differ by a rounding epsilon.
type Totals struct {
	Subtotal      string `json:"subtotal"`
	MakingCharges string `json:"makingCharges"`
	GST           string `json:"gst"`
	VAT           string `json:"vat"`
	Total         string `json:"total"`
}

// Bill is a persisted invoice.
type Bill struct {
	ID              uuid.UUID  `json:"id"`
	Number          string     `json:"number"`
	CustomerName    string     `json:"customerName"`
	CustomerEmail   string     `json:"customerEmail"`
	CustomerPhone   string     `json:"customerPhone"`
	CustomerAddress string     `json:"customerAddress"`
	Currency        Currency   `json:"currency"`
	Subtotal        string     `json:"subtotal"`
	MakingCharges   string     `json:"makingCharges"`
	GST             string     `json:"gst"`
	VAT             string     `json:"vat"`
	Discount        string     `json:"discount"`
	Total           string     `json:"total"`
	PaidAmount      string     `json:"paidAmount"`
	PaymentMethod   string     `json:"paymentMethod"`
	Items           []LineItem `json:"items"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
