// Command seed creates the schema and loads a starter jewellery catalog
// for local development.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/palaniappa-jewellers/backoffice/internal/app"
	"github.com/palaniappa-jewellers/backoffice/internal/platform/db"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id           BIGSERIAL PRIMARY KEY,
	name         TEXT NOT NULL,
	product_code TEXT NOT NULL DEFAULT '',
	barcode      TEXT NOT NULL DEFAULT '',
	category     TEXT NOT NULL DEFAULT '',
	price_inr    NUMERIC(14,2) NOT NULL DEFAULT 0,
	price_bhd    NUMERIC(14,3) NOT NULL DEFAULT 0,
	gross_weight NUMERIC(10,3) NOT NULL DEFAULT 0,
	net_weight   NUMERIC(10,3) NOT NULL DEFAULT 0,
	stock        INTEGER NOT NULL DEFAULT 0,
	is_active    BOOLEAN NOT NULL DEFAULT TRUE,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS products_code_uq ON products (product_code) WHERE product_code <> '';

CREATE SEQUENCE IF NOT EXISTS bill_number_seq;

CREATE TABLE IF NOT EXISTS bills (
	id               UUID PRIMARY KEY,
	number           TEXT NOT NULL UNIQUE,
	customer_name    TEXT NOT NULL,
	customer_email   TEXT NOT NULL DEFAULT '',
	customer_phone   TEXT NOT NULL DEFAULT '',
	customer_address TEXT NOT NULL DEFAULT '',
	currency         TEXT NOT NULL,
	subtotal         NUMERIC(14,2) NOT NULL DEFAULT 0,
	making_charges   NUMERIC(14,2) NOT NULL DEFAULT 0,
	gst              NUMERIC(14,2) NOT NULL DEFAULT 0,
	vat              NUMERIC(14,2) NOT NULL DEFAULT 0,
	discount         NUMERIC(14,2) NOT NULL DEFAULT 0,
	total            NUMERIC(14,2) NOT NULL DEFAULT 0,
	paid_amount      NUMERIC(14,2) NOT NULL DEFAULT 0,
	payment_method   TEXT NOT NULL DEFAULT 'CASH',
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS bill_items (
	id             BIGSERIAL PRIMARY KEY,
	bill_id        UUID NOT NULL REFERENCES bills(id) ON DELETE CASCADE,
	position       INTEGER NOT NULL DEFAULT 0,
	product_id     BIGINT NOT NULL,
	product_name   TEXT NOT NULL,
	quantity       INTEGER NOT NULL,
	price_inr      NUMERIC(14,2) NOT NULL DEFAULT 0,
	price_bhd      NUMERIC(14,3) NOT NULL DEFAULT 0,
	gross_weight   NUMERIC(10,3) NOT NULL DEFAULT 0,
	net_weight     NUMERIC(10,3) NOT NULL DEFAULT 0,
	making_charges NUMERIC(14,2) NOT NULL DEFAULT 0,
	discount       NUMERIC(14,2) NOT NULL DEFAULT 0,
	sgst           NUMERIC(14,2) NOT NULL DEFAULT 0,
	cgst           NUMERIC(14,2) NOT NULL DEFAULT 0,
	vat            NUMERIC(14,2) NOT NULL DEFAULT 0,
	total          NUMERIC(14,2) NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS bill_items_bill_idx ON bill_items (bill_id, position);
`

type seedProduct struct {
	name, code, category                       string
	priceINR, priceBHD, grossWeight, netWeight string
	stock                                      int
}

var products = []seedProduct{
	{"Antique Gold Necklace", "PJ-NK-001", "necklaces", "185000.00", "845.500", "42.300", "38.100", 3},
	{"Diamond Stud Earrings", "PJ-ER-014", "earrings", "64500.00", "294.750", "4.120", "3.980", 8},
	{"Kada Bangle 22K", "PJ-BG-007", "bangles", "98250.00", "449.000", "22.500", "22.500", 5},
	{"Temple Jhumka", "PJ-ER-021", "earrings", "41800.00", "191.000", "8.640", "8.200", 12},
	{"Solitaire Ring", "PJ-RG-003", "rings", "125000.00", "571.250", "3.850", "3.850", 4},
	{"Silver Anklet Pair", "PJ-AK-002", "anklets", "5600.00", "25.600", "31.000", "31.000", 20},
}

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	ctx := context.Background()
	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		logger.Error("apply schema", slog.Any("error", err))
		os.Exit(1)
	}

	const upsert = `INSERT INTO products
		(name, product_code, category, price_inr, price_bhd, gross_weight, net_weight, stock)
		VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6::numeric, $7::numeric, $8)
		ON CONFLICT (product_code) WHERE product_code <> '' DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			price_inr = EXCLUDED.price_inr,
			price_bhd = EXCLUDED.price_bhd,
			gross_weight = EXCLUDED.gross_weight,
			net_weight = EXCLUDED.net_weight,
			stock = EXCLUDED.stock,
			updated_at = now()`
	for _, p := range products {
		if _, err := pool.Exec(ctx, upsert,
			p.name, p.code, p.category, p.priceINR, p.priceBHD,
			p.grossWeight, p.netWeight, p.stock); err != nil {
			logger.Error("seed product", slog.String("code", p.code), slog.Any("error", err))
			os.Exit(1)
		}
	}
	logger.Info("seed complete", slog.Int("products", len(products)))
}
