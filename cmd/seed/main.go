// Command seed prints the dashboard's demo data as PostgreSQL statements.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"attendance/dashboard/internal/commands"
	"attendance/dashboard/internal/store"
)

func main() {
	today := flag.String("today", "", "day the demo attendance ends on (YYYY-MM-DD), defaults to now")
	flag.Parse()

	day := time.Now()
	if *today != "" {
		t, err := time.Parse("2006-01-02", *today)
		if err != nil {
			log.Fatalf("invalid -today: %v", err)
		}
		day = t
	}

	if err := commands.WriteSeedSQL(os.Stdout, store.DefaultSeed(day)); err != nil {
		log.Fatalf("writing seed sql: %v", err)
	}
}
