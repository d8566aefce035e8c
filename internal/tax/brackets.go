package tax

import "fmt"

// FBR salaried-individual slabs on annualized taxable income in PKR.
type bracket struct {
	upTo float64
	rate float64
}

var brackets = []bracket{
	{upTo: 600_000, rate: 0},
	{upTo: 1_200_000, rate: 2.5},
	{upTo: 2_400_000, rate: 12.5},
	{upTo: 3_600_000, rate: 22.5},
	{upTo: 6_000_000, rate: 27.5},
}

const topRate = 35.0

// BracketFor returns the marginal rate and a display label for an annualized
// taxable income.
func BracketFor(annualIncome float64) (float64, string) {
	lower := 0.0
	for _, b := range brackets {
		if annualIncome <= b.upTo {
			return b.rate, bracketLabel(lower, b.upTo)
		}
		lower = b.upTo
	}
	return topRate, fmt.Sprintf("above %.0f", lower)
}

func bracketLabel(lower, upper float64) string {
	if lower == 0 {
		return fmt.Sprintf("up to %.0f", upper)
	}
	return fmt.Sprintf("%.0f to %.0f", lower, upper)
}
