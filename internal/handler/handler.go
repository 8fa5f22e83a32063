package handler

import "math"

// roundMoney normalizes a currency value to 2 decimal places
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
