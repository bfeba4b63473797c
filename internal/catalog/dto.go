package catalog

// ProductForm is the create/update request body.
type ProductForm struct {
	Name        string `json:"name" validate:"required"`
	ProductCode string `json:"productCode"`
	Barcode     string `json:"barcode"`
	Category    string `json:"category"`
	PriceINR    string `json:"priceInr" validate:"required"`
	PriceBHD    string `json:"priceBhd" validate:"required"`
	GrossWeight string `json:"grossWeight"`
	NetWeight   string `json:"netWeight"`
	Stock       int    `json:"stock" validate:"min=0"`
	IsActive    bool   `json:"isActive"`
}

func (f ProductForm) toProduct() Product {
	return Product{
		Name:        f.Name,
		ProductCode: f.ProductCode,
		Barcode:     f.Barcode,
		Category:    f.Category,
		PriceINR:    f.PriceINR,
		PriceBHD:    f.PriceBHD,
		GrossWeight: f.GrossWeight,
		NetWeight:   f.NetWeight,
		Stock:       f.Stock,
		IsActive:    f.IsActive,
	}
}

// ProductView decorates a product with display prices for the storefront.
type ProductView struct {
	Product
	PriceINRDisplay string `json:"priceInrDisplay"`
	PriceBHDDisplay string `json:"priceBhdDisplay"`
}
