// Package money holds helpers for NUMERIC(12,2) amounts.
package money

import "math"

// Round rounds v to whole cents the way the database stores it.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}
