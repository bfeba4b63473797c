package billing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Calculate turns a configuration and a selection into bill totals and
// one line item per entry. It is pure and deterministic: no I/O, no
// state, identical inputs produce byte-identical output.
//
// The subtotal is whatever the admin typed as the override amount for
// the active currency. Each item receives a share of that subtotal
// proportional to its catalog-price extension relative to the sum of
// all extensions, so an overridden aggregate (a negotiated discount,
// usually) is redistributed across items without re-entering every
// line. When every catalog price is zero the shares are all zero, never
// an error.
//
// Bill-level making charges and tax are computed from the aggregate
// subtotal directly, not by summing the redistributed lines; the sum of
// line totals may therefore differ from the bill total by a rounding
// epsilon and the two are intentionally not reconciled.
func Calculate(cfg Config, sel *Selection) (Totals, []LineItem) {
	subtotal := parseAmount(cfg.overrideAmount())
	makingPct := parseAmount(cfg.MakingChargesPercent)
	gstPct := parseAmount(cfg.GSTPercent)
	vatPct := parseAmount(cfg.VATPercent)

	entries := sel.Entries()

	var originalSubtotal float64
	for _, e := range entries {
		originalSubtotal += catalogUnitPrice(e, cfg.Currency) * float64(e.Quantity)
	}

	items := make([]LineItem, 0, len(entries))
	for _, e := range entries {
		originalItemTotal := catalogUnitPrice(e, cfg.Currency) * float64(e.Quantity)

		var itemTotal float64
		if originalSubtotal > 0 {
			itemTotal = originalItemTotal / originalSubtotal * subtotal
		}

		making := itemTotal * makingPct / 100

		item := LineItem{
			ProductID:     e.Product.ID,
			ProductName:   fmt.Sprintf("%s (%s)", e.Product.Name, e.Product.DisplayCode()),
			Quantity:      e.Quantity,
			PriceINR:      e.Product.PriceINR,
			PriceBHD:      e.Product.PriceBHD,
			GrossWeight:   e.Product.GrossWeight,
			NetWeight:     e.Product.NetWeight,
			MakingCharges: formatAmount(making),
			Discount:      "0",
			SGST:          "0",
			CGST:          "0",
			VAT:           "0",
		}

		var tax float64
		if cfg.Currency == CurrencyBHD {
			tax = (itemTotal + making) * vatPct / 100
			item.VAT = formatAmount(tax)
		} else {
			tax = (itemTotal + making) * gstPct / 100
			item.SGST = formatAmount(tax / 2)
			item.CGST = formatAmount(tax / 2)
		}
		item.Total = formatAmount(itemTotal + making + tax)

		items = append(items, item)
	}

	makingTotal := subtotal * makingPct / 100
	totals := Totals{
		Subtotal:      formatAmount(subtotal),
		MakingCharges: formatAmount(makingTotal),
		GST:           "0",
		VAT:           "0",
	}
	var taxTotal float64
	if cfg.Currency == CurrencyBHD {
		taxTotal = (subtotal + makingTotal) * vatPct / 100
		totals.VAT = formatAmount(taxTotal)
	} else {
		taxTotal = (subtotal + makingTotal) * gstPct / 100
		totals.GST = formatAmount(taxTotal)
	}
	totals.Total = formatAmount(subtotal + makingTotal + taxTotal)

	return totals, items
}

// ReconstructConfig reverse-derives a configuration from a stored bill
// for edit mode. Percentages are not persisted, only the derived
// amounts, so the derivation is lossy: a rate recovered from 2-decimal
// rounded amounts can differ from the one originally entered. That
// round-trip degradation is part of the persisted format's contract.
func ReconstructConfig(b Bill) Config {
	cfg := DefaultConfig(b.Currency)

	subtotal := parseAmount(b.Subtotal)
	making := parseAmount(b.MakingCharges)
	if subtotal > 0 {
		cfg.MakingChargesPercent = formatRate(making / subtotal * 100)
	}

	taxBase := subtotal + making
	if taxBase > 0 {
		cfg.GSTPercent = formatRate(parseAmount(b.GST) / taxBase * 100)
		cfg.VATPercent = formatRate(parseAmount(b.VAT) / taxBase * 100)
	}

	if b.Currency == CurrencyBHD {
		cfg.AmountBHD = b.Subtotal
	} else {
		cfg.AmountINR = b.Subtotal
	}
	return cfg
}

// catalogUnitPrice picks the unit price for the active currency.
func catalogUnitPrice(e Entry, cur Currency) float64 {
	if cur == CurrencyBHD {
		return parseAmount(e.Product.PriceBHD)
	}
	return parseAmount(e.Product.PriceINR)
}

// parseAmount parses a decimal string leniently. Empty strings, junk,
// NaN and infinities all come back as 0 so that malformed admin input
// degrades instead of failing.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// formatAmount fixes a monetary value to two decimals.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// formatRate keeps every significant digit of a reconstructed
// percentage; rounding here would compound the reconstruction loss.
func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
