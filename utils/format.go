// File: utils/format.go
package utils

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatPrice renders an integer amount with Turkish digit grouping and a
// currency suffix, e.g. 25400 -> "25.400 TL".
func FormatPrice(amount int, currency string) string {
	p := message.NewPrinter(language.Turkish)
	s := p.Sprintf("%d", amount)
	if currency = strings.TrimSpace(currency); currency != "" {
		s += " " + currency
	}
	return s
}
