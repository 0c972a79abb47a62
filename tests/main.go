// Command tests replays scripted conversations through the quote service with
// an in-memory session store and prints every turn. Useful for eyeballing
// extraction changes without running the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"staycalc/models"
	"staycalc/services/parser"
	"staycalc/services/pricing"
	"staycalc/services/quote"
	"staycalc/services/session"
	"staycalc/utils"
)

type conversation struct {
	Name  string
	Turns []string
}

var conversations = []conversation{
	{
		Name:  "one-shot",
		Turns: []string{"2 yetişkin, 15 temmuz, 4 gece"},
	},
	{
		Name: "step-by-step",
		Turns: []string{
			"merhaba, 1 yetişkin 1 çocuk",
			"25 haziran'dan itibaren 2 gece",
			"çocuk 5 yaşında",
		},
	},
	{
		Name: "multi-line",
		Turns: []string{
			"14-19 ağustos\n2+1\nçocuğun yaşı 7",
		},
	},
	{
		Name:  "unsupported",
		Turns: []string{"3 yetişkin 2 çocuk yaşları 5 ve 8, 14 temmuz, 4 gece"},
	},
	{
		Name: "changed-mind",
		Turns: []string{
			"iki kişi gelecek cuma, üç gece",
			"aslında 5 gece kalalım",
			"bir çocuk da var, yaşı 4",
		},
	},
}

func main() {
	logger := utils.GetLogger()
	tz, err := time.LoadLocation("Europe/Istanbul")
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}
	// pin "today" so the relative dates in the scripts stay inside the seasons
	today := time.Date(2025, time.June, 20, 12, 0, 0, 0, tz)

	analyzer := parser.NewAnalyzer(parser.DefaultLexicon(),
		parser.WithLocation(tz),
		parser.WithClock(func() time.Time { return today }))
	svc := quote.NewQuoteService(session.NewMemoryStore(0), analyzer,
		pricing.NewCalculator(pricing.DefaultTables()),
		quote.Options{CurrencySuffix: "TL", Logger: logger})

	ctx := context.Background()
	for _, conv := range conversations {
		fmt.Printf("=== %s ===\n", conv.Name)
		for i, msg := range conv.Turns {
			resp, err := svc.Process(ctx, models.QuoteRequest{SessionID: conv.Name, Message: msg})
			if err != nil {
				log.Fatalf("%s turn %d: %v", conv.Name, i+1, err)
			}
			out, _ := json.MarshalIndent(resp, "", "  ")
			fmt.Printf("> %q\n%s\n", msg, out)
		}
	}
}
