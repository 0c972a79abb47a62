// File: services/parser/nights.go
package parser

// Nights reads "4 gece" / "iki gece" literally. A count given in days
// ("3 gün") spans that many calendar days, so it is one night less.
// Zero and anything above the night limit are misses.
func (e *Extractor) Nights(text string) (int, bool) {
	m := e.nightRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, ok := e.lex.Number(m[1])
	if !ok {
		return 0, false
	}
	if m[2] == "gün" && n > 1 {
		n--
	}
	if n <= 0 || n > e.maxNights {
		return 0, false
	}
	return n, true
}
