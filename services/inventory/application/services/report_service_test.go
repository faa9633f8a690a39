package services

import (
	"context"
	"testing"

	"github.com/ghuser/stitchstock/services/inventory/domain/models"
)

func TestReportService_Summarize(t *testing.T) {
	repo := newFakeRepo()
	inv := newTestService(repo)
	report := NewReportService(repo)

	seed := []models.Descriptor{
		{Name: "Linen Shirt", Type: "Shirt", Size: "M", Quantity: 10},
		{Name: "Cotton Shirt", Type: "Shirt", Size: "M", Quantity: 5},
		{Name: "Oxford Shirt", Type: "Shirt", Size: "L", Quantity: 7},
		{Name: "Silk Kurta", Type: "Kurta", Size: "M", Quantity: 3},
	}
	for _, d := range seed {
		if _, _, err := inv.CreateProduct(context.Background(), d, "admin"); err != nil {
			t.Fatalf("seed %q: %v", d.Name, err)
		}
	}

	summary, err := report.Summarize(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TotalItems != 25 {
		t.Errorf("expected grand total 25, got %d", summary.TotalItems)
	}
	if len(summary.Groups) != 3 {
		t.Fatalf("expected 3 (type, size) groups, got %d", len(summary.Groups))
	}

	want := map[string]struct{ qty, count int }{
		"Kurta/M": {3, 1},
		"Shirt/L": {7, 1},
		"Shirt/M": {15, 2},
	}
	for _, g := range summary.Groups {
		key := g.Type + "/" + g.Size
		w, ok := want[key]
		if !ok {
			t.Errorf("unexpected group %q", key)
			continue
		}
		if g.TotalQuantity != w.qty || g.ProductCount != w.count {
			t.Errorf("group %q: expected qty=%d count=%d, got qty=%d count=%d",
				key, w.qty, w.count, g.TotalQuantity, g.ProductCount)
		}
	}
}

func TestReportService_SummarizeEmpty(t *testing.T) {
	report := NewReportService(newFakeRepo())

	summary, err := report.Summarize(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalItems != 0 {
		t.Errorf("expected zero total, got %d", summary.TotalItems)
	}
	if len(summary.Groups) != 0 {
		t.Errorf("expected no groups, got %d", len(summary.Groups))
	}
}
