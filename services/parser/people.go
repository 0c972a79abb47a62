// File: services/parser/people.go
package parser

import (
	"regexp"
	"strings"
)

// PersonInfo is what the person/child extractor found in one piece of text.
type PersonInfo struct {
	Adults   *int
	Children *int
	Ages     []int
}

// People extracts adult count, declared child count and child ages.
// Later count patterns override earlier ones in the same pass:
// "çocuk yok", "N yetişkin", "N çocuk", "N+M", "N kişi".
func (e *Extractor) People(text string) PersonInfo {
	var info PersonInfo

	if e.noChildRe.MatchString(text) {
		info.Children = intPtr(0)
	}
	if n, ok := e.countBefore(e.adultRe, text); ok {
		info.Adults = intPtr(n)
	}
	if n, ok := e.countBefore(e.childRe, text); ok {
		info.Children = intPtr(n)
	}
	if m := e.plusRe.FindStringSubmatch(text); m != nil {
		adults, okA := atoi(m[1])
		children, okC := atoi(m[2])
		if okA && okC {
			info.Adults = intPtr(adults)
			info.Children = intPtr(children)
		}
	}
	if n, ok := e.countBefore(e.personRe, text); ok {
		info.Adults = intPtr(n)
	}
	// a stay needs at least one adult; "sıfır yetişkin" tells us nothing
	if info.Adults != nil && *info.Adults < 1 {
		info.Adults = nil
	}

	info.Ages = e.Ages(text)
	return info
}

// Ages applies the age patterns by specificity: a labeled list
// ("yaşları: 5, 8") wins, then a list directly before "yaş" ("5 ve 8 yaşında"),
// then every standalone "N yaş" mention. Returns nil when nothing matched.
func (e *Extractor) Ages(text string) []int {
	if ages := e.labeledAges(text); len(ages) > 0 {
		return ages
	}
	if m := e.ageListRe.FindStringSubmatch(text); m != nil {
		var ages []int
		for _, part := range e.listSepRe.Split(strings.TrimSpace(m[1]), -1) {
			if n, ok := atoi(part); ok {
				ages = append(ages, n)
			}
		}
		if len(ages) > 0 {
			return ages
		}
	}
	var ages []int
	for _, m := range e.ageScanRe.FindAllStringSubmatch(text, -1) {
		if n, ok := atoi(m[1]); ok {
			ages = append(ages, n)
		}
	}
	return ages
}

// labeledAges reads the list after a "yaş/yaşları/yaşı" label. A number that
// is followed by a month or unit word ("14 temmuz", "4 gece") or by a day
// suffix ("25'inde", "20sinde") belongs to another field and ends the list.
func (e *Extractor) labeledAges(text string) []int {
	for _, loc := range e.ageLabelRe.FindAllStringIndex(text, -1) {
		// "5 yaş" is a standalone mention, not a label.
		if before := strings.TrimSpace(text[:loc[0]]); before != "" && isDigit(before[len(before)-1]) {
			continue
		}
		rest := text[loc[1]:]
		var ages []int
		re := e.ageFirstRe
		for {
			m := re.FindStringSubmatchIndex(rest)
			if m == nil {
				break
			}
			n, _ := atoi(rest[m[2]:m[3]])
			rest = rest[m[1]:]
			if e.followedByUnit(rest) {
				break
			}
			ages = append(ages, n)
			re = e.ageNextRe
		}
		if len(ages) > 0 {
			return ages
		}
	}
	return nil
}

func (e *Extractor) followedByUnit(rest string) bool {
	if e.ageDayRe.MatchString(rest) {
		return true
	}
	m := e.ageWordRe.FindStringSubmatch(rest)
	if m == nil {
		return false
	}
	for _, w := range e.unitWords {
		if strings.HasPrefix(m[1], w) {
			return true
		}
	}
	return false
}

func (e *Extractor) countBefore(re *regexp.Regexp, text string) (int, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	return e.lex.Number(m[1])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func intPtr(v int) *int {
	return &v
}
