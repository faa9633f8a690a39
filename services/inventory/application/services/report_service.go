package services

import (
	"context"
	"fmt"

	"github.com/ghuser/stitchstock/services/inventory/domain/models"
	"github.com/ghuser/stitchstock/services/inventory/domain/repositories"
)

// ReportService serves read-only aggregations over the product store.
// Summaries are recomputed on demand; there is no cached state to invalidate.
type ReportService struct {
	products repositories.ProductRepository
}

// NewReportService returns a ReportService over the given repository.
func NewReportService(products repositories.ProductRepository) *ReportService {
	return &ReportService{products: products}
}

// Summarize returns per-(type, size) totals plus the grand total.
func (s *ReportService) Summarize(ctx context.Context) (*models.Summary, error) {
	summary, err := s.products.Summarize(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarize inventory: %w", err)
	}
	return summary, nil
}
