package billing

// ItemInput selects one product onto a bill.
type ItemInput struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

// BillInput is the create/update request body. Numeric fields arrive as
// decimal strings and are deliberately not validated for parseability;
// the calculator coerces junk to zero rather than blocking the admin.
type BillInput struct {
	CustomerName    string      `json:"customerName" validate:"required"`
	CustomerEmail   string      `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerAddress string      `json:"customerAddress"`
	Currency        Currency    `json:"currency" validate:"required,oneof=INR BHD"`
	Items           []ItemInput `json:"items" validate:"dive"`

	AmountINR            string `json:"amountInr"`
	AmountBHD            string `json:"amountBhd"`
	MakingChargesPercent string `json:"makingChargesPercent"`
	GSTPercent           string `json:"gstPercent"`
	VATPercent           string `json:"vatPercent"`
}

// config assembles the calculator configuration, falling back to the
// documented defaults for percentages that were omitted entirely.
func (in BillInput) config() Config {
	cfg := Config{
		Currency:             in.Currency,
		MakingChargesPercent: in.MakingChargesPercent,
		GSTPercent:           in.GSTPercent,
		VATPercent:           in.VATPercent,
		AmountINR:            in.AmountINR,
		AmountBHD:            in.AmountBHD,
	}
	if cfg.MakingChargesPercent == "" {
		cfg.MakingChargesPercent = DefaultMakingChargesPercent
	}
	if cfg.GSTPercent == "" {
		cfg.GSTPercent = DefaultGSTPercent
	}
	if cfg.VATPercent == "" {
		cfg.VATPercent = DefaultVATPercent
	}
	return cfg
}

// BillDetail is the single-bill response: the stored record plus the
// reconstructed configuration the edit form hydrates from.
type BillDetail struct {
	Bill
	Configuration Config `json:"configuration"`
	TotalDisplay  string `json:"totalDisplay"`
}

// BillList is the paged history response.
type BillList struct {
	Bills []Bill `json:"bills"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}
