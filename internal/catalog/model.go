package catalog

import (
	"time"
)

// Product is a catalog entry. Unit prices and weights are kept as decimal
// strings end to end: they are displayed and persisted verbatim, and the
// billing engine applies its own lenient parsing.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	ProductCode string    `json:"productCode"`
	Barcode     string    `json:"barcode"`
	Category    string    `json:"category"`
	PriceINR    string    `json:"priceInr"`
	PriceBHD    string    `json:"priceBhd"`
	GrossWeight string    `json:"grossWeight"`
	NetWeight   string    `json:"netWeight"`
	Stock       int       `json:"stock"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DisplayCode is the identity shown next to the product name on bills:
// the product code when present, else the barcode, else "N/A".
func (p Product) DisplayCode() string {
	if p.ProductCode != "" {
		return p.ProductCode
	}
	if p.Barcode != "" {
		return p.Barcode
	}
	return "N/A"
}
