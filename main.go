package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/getsentry/sentry-go"

	"phrasebot/cmd"
)

func main() {
	log.SetLevel(log.InfoLevel)
	if os.Getenv("ENVIRONMENT") != "production" {
		log.SetLevel(log.DebugLevel)
	} else {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              os.Getenv("SENTRY_DSN"),
			TracesSampleRate: 1.0,
		})
		if err != nil {
			log.Fatalf("sentry.Init: %s", err)
		}
	}
	if err := cmd.Execute(); err != nil {
		log.Error(err)
		sentry.CaptureException(err)
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}
	sentry.Flush(2 * time.Second)
}
