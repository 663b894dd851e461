package model

import (
	"strings"

	"cartera-go/internal/providers/common"
)

// MontoScale converts the sheet's "MM$" (millions of pesos) into pesos.
const MontoScale float64 = 1_000_000

// ParseMonto reads an amount expressed in millions. Strings may use a comma
// as decimal separator; anything unparseable counts as zero.
func ParseMonto(value any) float64 {
	if s, ok := value.(string); ok {
		value = strings.ReplaceAll(s, ",", ".")
	}
	return common.ToFloat64(value) * MontoScale
}
