package order

import "godown/pkg/numerator"

const (
	// NumberPrefix for generated order numbers (ORD-2026-000001).
	NumberPrefix = "ORD"

	// NumeratorStrategy defines the numbering strategy for orders.
	// Orders tolerate gaps, so the cheaper cached strategy is fine.
	NumeratorStrategy = numerator.StrategyCached
)
