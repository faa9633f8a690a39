package models

// SummaryGroup aggregates all products sharing a (type, size) pair.
type SummaryGroup struct {
	Type          string
	Size          string
	TotalQuantity int
	ProductCount  int
}

// Summary is the on-demand inventory aggregation: per-group totals ordered by
// type then size, plus the grand total across all products.
type Summary struct {
	Groups     []SummaryGroup
	TotalItems int
}
