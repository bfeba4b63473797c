package catalog

import (
	"fmt"
	"strings"

	"github.com/palaniappa-jewellers/backoffice/internal/platform/httpx"
)

func (s *Service) validate(p Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product name is required", httpx.ErrValidation)
	}
	if strings.TrimSpace(p.ProductCode) == "" && strings.TrimSpace(p.Barcode) == "" {
		return fmt.Errorf("%w: product code or barcode is required", httpx.ErrValidation)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", httpx.ErrValidation)
	}
	return nil
}
