// Command updates dumps every booking session held in Redis, or deletes them
// all with -purge. Connection settings come from the same config as the server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"staycalc/config"
	"staycalc/services/quote"
	"staycalc/services/session"
	"staycalc/utils"
)

func main() {
	purge := flag.Bool("purge", false, "delete every stored session")
	flag.Parse()

	config.LoadConfig()
	if err := utils.InitSessionCache(); err != nil {
		log.Fatalf("Error connecting to Redis: %v", err)
	}
	client := utils.GetSessionCacheClient()
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store := session.NewRedisStore(client, config.AppConfig.SessionTTL)
	ids, err := store.SessionIDs(ctx)
	if err != nil {
		log.Fatalf("Error listing sessions: %v", err)
	}

	for _, id := range ids {
		if *purge {
			if err := store.Delete(ctx, id); err != nil {
				log.Printf("Error deleting session %s: %v", id, err)
				continue
			}
			fmt.Printf("Deleted session %s\n", id)
			continue
		}

		fields, err := store.Get(ctx, id)
		if err != nil {
			log.Printf("Error decoding session %s: %v", id, err)
			continue
		}
		out, _ := json.Marshal(fields)
		fmt.Printf("Session %s: %s missing=%v\n", id, out, quote.MissingFields(*fields))
	}
	fmt.Printf("%d session(s)\n", len(ids))
}
