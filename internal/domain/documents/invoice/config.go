package invoice

import "godown/pkg/numerator"

const (
	// NumberPrefix for generated invoice numbers (INV-2026-000001).
	NumberPrefix = "INV"

	// NumeratorStrategy defines the numbering strategy for invoices.
	// Invoice numbers must be gapless for GST filing, so we use Strict.
	NumeratorStrategy = numerator.StrategyStrict
)
