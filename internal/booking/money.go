package booking

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var colombia = language.MustParse("es-CO")

// Money formats a price in Colombian pesos without decimals: "$ 25.000".
func Money(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return message.NewPrinter(colombia).Sprintf("$ %d", int64(math.Round(v)))
}
