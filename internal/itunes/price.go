package itunes

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/dustin/go-humanize"
)

// FormatPrice renders a store price. Zero and negative prices are "Free".
// Known ISO currencies use their symbol; anything else falls back to a plain
// number followed by the code.
func FormatPrice(price float64, currency string) string {
	if price <= 0 {
		return "Free"
	}
	code := strings.ToUpper(strings.TrimSpace(currency))
	if cur := money.GetCurrency(code); code != "" && cur != nil {
		minor := int64(math.Round(price * math.Pow10(cur.Fraction)))
		return money.New(minor, code).Display()
	}
	s := humanize.FormatFloat("#,###.##", price)
	if code == "" {
		return s
	}
	return s + " " + code
}
