package utils

import "github.com/shopspring/decimal"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}

func RoundWithFourDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return decimal.NewFromFloat(f).Round(4).InexactFloat64()
}
