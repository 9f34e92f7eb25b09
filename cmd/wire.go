package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/solenne/whittle/internal/adapters/gameapi"
	tomlrepo "github.com/solenne/whittle/internal/adapters/repo/toml"
	"github.com/solenne/whittle/internal/application"
	"github.com/solenne/whittle/internal/ports"
)

type app struct {
	controller *application.Controller
	results    ports.ResultRepository
	now        func() time.Time
}

func wireApp() (*app, error) {
	results, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire result repository: %w", err)
	}

	client := &gameapi.Client{
		BaseURL:        envOrDefault("WHITTLE_API_BASE_URL", "https://api.whittle.dev"),
		HTTPClient:     http.DefaultClient,
		RequestTimeout: 30 * time.Second,
	}

	return &app{
		controller: application.NewController(client, results, ports.SystemClock{}),
		results:    results,
		now:        time.Now,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
