package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	vegeta "github.com/tsenart/vegeta/v12/lib"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	BaseURL      string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	Rate         int           `env:"RATE" envDefault:"50"`
	Duration     time.Duration `env:"DURATION" envDefault:"15s"`
	ProfileRatio float64       `env:"PROFILE_RATIO" envDefault:"0.5"`
	QueryParam   string        `env:"PROFILER_QUERY_PARAM" envDefault:"profile"`
	WarmupItems  int           `env:"WARMUP_ITEMS" envDefault:"20"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := warmup(cfg.BaseURL, cfg.WarmupItems); err != nil {
		return fmt.Errorf("warmup failed: %w", err)
	}

	if err := attack(&cfg); err != nil {
		return fmt.Errorf("attack failed: %w", err)
	}

	return report(cfg.BaseURL)
}

// warmup populates the demo item cache so the attack sees a mix of cached and
// uncached timings.
func warmup(baseURL string, items int) error {
	fmt.Printf("Warming up %d items...\n", items)
	client := &http.Client{Timeout: 10 * time.Second}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(8)

	for i := 0; i < items; i++ {
		i := i
		g.Go(func() error {
			resp, err := client.Get(fmt.Sprintf("%s/items/%d", baseURL, i))
			if err != nil {
				return err
			}
			defer func() { _ = resp.Body.Close() }()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("unexpected status for item %d: %d", i, resp.StatusCode)
			}
			return nil
		})
	}
	return g.Wait()
}

func targeter(cfg *Config) vegeta.Targeter {
	paths := []string{"/", "/slow", "/cpu-intensive", "/items"}

	return func(t *vegeta.Target) error {
		path := paths[rand.Intn(len(paths))]
		if path == "/items" {
			path = fmt.Sprintf("/items/%d", rand.Intn(40))
		}

		url := cfg.BaseURL + path
		if rand.Float64() < cfg.ProfileRatio {
			url += "?" + cfg.QueryParam + "=true"
		}

		t.Method = http.MethodGet
		t.URL = url
		return nil
	}
}

func attack(cfg *Config) error {
	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	attacker := vegeta.NewAttacker(
		vegeta.KeepAlive(true),
		vegeta.Timeout(10*time.Second),
		vegeta.MaxBody(0),
	)

	fmt.Printf("Starting attack: rate=%d/s duration=%s profile_ratio=%.2f\n",
		cfg.Rate, cfg.Duration, cfg.ProfileRatio)

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter(cfg), rate, cfg.Duration, "profiled-load") {
		metrics.Add(res)
	}
	metrics.Close()

	reporter := vegeta.NewTextReporter(&metrics)
	return reporter.Report(os.Stdout)
}

// report downloads the profiler CSV and prints how many rows were retained.
func report(baseURL string) error {
	resp, err := http.Get(baseURL + "/profiler/metrics.csv")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status fetching csv: %d", resp.StatusCode)
	}

	rows, err := csv.NewReader(resp.Body).ReadAll()
	if err != nil {
		return err
	}
	fmt.Printf("Profiler retained %d records\n", len(rows)-1)
	return nil
}
