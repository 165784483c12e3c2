package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"travelbooking/client"
	"travelbooking/ui"
)

func main() {
	logger := slog.Default().With("component", "client")

	godotenv.Load()

	endpoint := flag.String("endpoint", "", "booking API endpoint URL")
	flag.Parse()

	url := *endpoint
	if url == "" {
		url = os.Getenv("API_URL")
	}
	if url == "" {
		url = "http://localhost:4000/query"
	}

	c := client.New(url)
	form := ui.NewForm(c, os.Stdout)

	if _, err := c.Refresh(context.Background()); err != nil {
		logger.Error("initial fetch failed", "err", err)
	}

	form.RenderList()

	if err := form.Run(context.Background(), os.Stdin); err != nil {
		logger.Error("session ended with error", "err", err)
		os.Exit(1)
	}
}
