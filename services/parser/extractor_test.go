package parser

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staycalc/models"
)

// 2025-06-20 is a Friday.
func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestLexicon_NormalizeUsesTurkishCasing(t *testing.T) {
	lex := DefaultLexicon()
	assert.Equal(t, "iki yetişkin, ışıl ışıl", lex.Normalize("İKİ YETİŞKİN, IŞIL IŞIL"))
}

func TestLexicon_Number(t *testing.T) {
	lex := DefaultLexicon()

	n, ok := lex.Number("üç")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	n, ok = lex.Number("12")
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	_, ok = lex.Number("çok")
	assert.False(t, ok)
}

func TestExtractor_Date(t *testing.T) {
	ext := NewExtractor(DefaultLexicon())

	tests := []struct {
		name  string
		today string
		text  string
		want  string
	}{
		{"day and month", "2025-06-20", "14 temmuz", "2025-07-14"},
		{"day and month with suffix", "2025-06-20", "15 ağustosta geleceğiz", "2025-08-15"},
		{"passed month rolls to next year", "2025-06-20", "10 mart", "2026-03-10"},
		{"earlier day in same month rolls to next year", "2025-06-20", "10 haziran", "2026-06-10"},
		{"same day is not in the past", "2025-06-20", "20 haziran", "2025-06-20"},
		{"tomorrow", "2025-06-20", "yarın giriş", "2025-06-21"},
		{"today", "2025-06-20", "bugün", "2025-06-20"},
		{"weekday ahead", "2025-06-20", "pazartesi", "2025-06-23"},
		{"same weekday means next week", "2025-06-20", "cuma", "2025-06-27"},
		{"next qualifier adds a week", "2025-06-20", "gelecek cuma", "2025-07-04"},
		{"haftaya qualifier", "2025-06-20", "haftaya salı", "2025-07-01"},
		{"cumartesi is not cuma", "2025-06-20", "cumartesi", "2025-06-21"},
		{"pazar", "2025-06-20", "pazar günü", "2025-06-22"},
		{"ordinal later this month", "2025-06-20", "25'inde", "2025-06-25"},
		{"ordinal passed rolls to next month", "2025-06-20", "14'ünde", "2025-07-14"},
		{"ordinal with buffer letter", "2025-06-20", "30'unda", "2025-06-30"},
		{"ordinal rolls into next year", "2025-12-20", "5'inde", "2026-01-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ext.Date(tt.text, mustDate(t, tt.today))
			require.True(t, ok)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestExtractor_DateMisses(t *testing.T) {
	ext := NewExtractor(DefaultLexicon())
	today := mustDate(t, "2025-06-20")

	for _, text := range []string{"merhaba", "31 şubat", "2 yetişkin 4 gece"} {
		_, ok := ext.Date(text, today)
		assert.False(t, ok, text)
	}
}

func TestExtractor_Range(t *testing.T) {
	ext := NewExtractor(DefaultLexicon())
	today := mustDate(t, "2025-06-20")

	r, ok := ext.Range("14-19 temmuz", today)
	require.True(t, ok)
	assert.Equal(t, "2025-07-14", r.Checkin.String())
	assert.Equal(t, "2025-07-19", r.Checkout.String())
	assert.Equal(t, 5, r.Nights)

	r, ok = ext.Range("15 - 20 temmuz arası", today)
	require.True(t, ok)
	assert.Equal(t, "2025-07-15", r.Checkin.String())
	assert.Equal(t, 5, r.Nights)

	r, ok = ext.Range("10-12 mart", today)
	require.True(t, ok)
	assert.Equal(t, "2026-03-10", r.Checkin.String())
	assert.Equal(t, 2, r.Nights)

	_, ok = ext.Range("19-14 temmuz", today)
	assert.False(t, ok)

	_, ok = ext.Range("14 temmuz", today)
	assert.False(t, ok)
}

func TestExtractor_RangeNightsEqualDayDifference(t *testing.T) {
	ext := NewExtractor(DefaultLexicon())
	today := mustDate(t, "2025-06-20")

	for first := 1; first < 31; first++ {
		for second := first + 1; second <= 31; second++ {
			text := fmt.Sprintf("%d-%d ağustos", first, second)
			r, ok := ext.Range(text, today)
			require.True(t, ok, text)
			assert.Equal(t, second-first, r.Nights, text)

			want, _ := models.NewDate(2025, time.August, first)
			assert.Equal(t, want, r.Checkin, text)
		}
	}
}

func TestExtractor_Nights(t *testing.T) {
	ext := NewExtractor(DefaultLexicon())

	tests := []struct {
		text string
		want int
		ok   bool
	}{
		{"4 gece", 4, true},
		{"iki gece kalacağız", 2, true},
		{"on gece", 10, true},
		{"5 gecelik", 5, true},
		{"3-gece", 3, true},
		{"3 gün", 2, true},
		{"beş gün", 4, true},
		{"1 gün", 1, true},
		{"bir gün", 1, true},
		{"0 gece", 0, false},
		{"365 gece", 365, true},
		{"366 gece", 0, false},
		{"20000000 gece", 0, false},
		{"bugün geliyoruz", 0, false},
		{"sezon gece", 0, false},
		{"2 yetişkin", 0, false},
	}

	for _, tt := range tests {
		got, ok := ext.Nights(tt.text)
		assert.Equal(t, tt.ok, ok, tt.text)
		assert.Equal(t, tt.want, got, tt.text)
	}
}

func TestExtractor_PeopleCounts(t *testing.T) {
	ext := NewExtractor(DefaultLexicon())

	tests := []struct {
		name         string
		text         string
		wantAdults   *int
		wantChildren *int
	}{
		{"adults and children", "3 yetişkin 2 çocuk", models.IntPtr(3), models.IntPtr(2)},
		{"big and small", "2 büyük 1 küçük", models.IntPtr(2), models.IntPtr(1)},
		{"spelled out", "iki yetişkin bir çocuk", models.IntPtr(2), models.IntPtr(1)},
		{"plus shorthand", "2+1 oda", models.IntPtr(2), models.IntPtr(1)},
		{"plus overrides earlier counts", "3 yetişkin 2 çocuk, yani 2+1", models.IntPtr(2), models.IntPtr(1)},
		{"person count overrides adults", "2 yetişkin 1 çocuk toplam 4 kişi", models.IntPtr(4), models.IntPtr(1)},
		{"no children phrase", "2 yetişkin, çocuk yok", models.IntPtr(2), models.IntPtr(0)},
		{"childless", "çocuksuz geleceğiz", nil, models.IntPtr(0)},
		{"child possessive", "çocuğumuz yok", nil, models.IntPtr(0)},
		{"zero adults is no count", "sıfır yetişkin", nil, nil},
		{"zero adults in shorthand", "0+2", nil, models.IntPtr(2)},
		{"nothing", "merhaba", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ext.People(tt.text)
			assert.Equal(t, tt.wantAdults, got.Adults)
			assert.Equal(t, tt.wantChildren, got.Children)
		})
	}
}

func TestExtractor_Ages(t *testing.T) {
	ext := NewExtractor(DefaultLexicon())

	tests := []struct {
		name string
		text string
		want []int
	}{
		{"labeled with colon", "çocuk yaşları: 5, 8", []int{5, 8}},
		{"labeled with ve", "yaşları 5 ve 8", []int{5, 8}},
		{"labeled list stops at a date", "yaşları 5 ve 8, 14 temmuz, 4 gece", []int{5, 8}},
		{"labeled list stops at nights", "yaşı 7, 3 gece", []int{7}},
		{"labeled wins over standalone", "yaşları 5 ve 8, kızım 12 yaşında", []int{5, 8}},
		{"list before yaş", "5 ve 8 yaşında", []int{5, 8}},
		{"comma list before yaş", "5,8 yaş", []int{5, 8}},
		{"longer list before yaş", "5, 8 ve 10 yaşında", []int{5, 8, 10}},
		{"standalone mentions", "biri 4 yaşında diğeri 9 yaşında", []int{4, 9}},
		{"single standalone", "oğlum 1 yaşında", []int{1}},
		{"standalone yaş is not a label", "5 yaş 8 yaş", []int{5, 8}},
		{"labeled list stops at day suffix", "çocuğun yaşı 7, 20'sinde geliyoruz", []int{7}},
		{"labeled list stops at typographic apostrophe", "yaşları 5 ve 8, 25’inde giriş", []int{5, 8}},
		{"labeled list stops at bare day suffix", "yaşı 7, 20sinde", []int{7}},
		{"plus shorthand digits are not ages", "1+2, 5 ve 8 yaşında", []int{5, 8}},
		{"plus shorthand before standalone age", "1+1 4 yaşında", []int{4}},
		{"no ages", "2 yetişkin", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ext.Ages(tt.text))
		})
	}
}
