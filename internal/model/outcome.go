package model

// Outcome is a human-friendly label for a single day's profit.
// Keep these values stable; they are intended for CSV output.
type Outcome string

const (
	OutcomeGain Outcome = "GAIN"
	OutcomeFlat Outcome = "FLAT"
	OutcomeLoss Outcome = "LOSS"
)

func OutcomeFromProfit(profit int) Outcome {
	switch {
	case profit < 0:
		return OutcomeLoss
	case profit > 0:
		return OutcomeGain
	default:
		return OutcomeFlat
	}
}
