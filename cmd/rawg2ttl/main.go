// Command rawg2ttl converts a RAWG CSV export into an RDF Turtle artifact.
// It runs one batch conversion per invocation: load the source, collect the
// unique entities, and write the declarations followed by one block per game.
//
// Example:
//
//	rawg2ttl -input=game_info.csv -output=games.ttl
//
// A config file can replace or supplement the flags; flags win when both are
// given.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"rawg2ttl/internal/config"
	"rawg2ttl/internal/generate"
	"rawg2ttl/internal/metrics"
	"rawg2ttl/internal/metrics/datadog"
	"rawg2ttl/internal/metrics/prompush"

	// register all backends with the storage factory.
	// config specifies which to use but we need to build in support for all of them.
	_ "rawg2ttl/internal/storage/all"
)

func main() {
	var (
		cfgPath           string
		inputPath         string
		outputPath        string
		limit             int
		metricsBackendFlg string
		pushGatewayURLFlg string
		validate          bool
	)

	flag.StringVar(&cfgPath, "config", "", "pipeline config JSON path (optional)")
	flag.StringVar(&inputPath, "input", "", "source CSV path (overrides config)")
	flag.StringVar(&outputPath, "output", "", "destination TTL path (overrides config)")
	flag.IntVar(&limit, "limit", 0, "max rows to convert, 0 = all (overrides config)")
	flag.StringVar(&metricsBackendFlg, "metrics-backend", "none", "metrics backend to use (pushgateway, datadog, none)")
	flag.StringVar(&pushGatewayURLFlg, "pushgateway-url", "", "Pushgateway base URL (overrides env PUSHGATEWAY_URL)")
	flag.BoolVar(&validate, "validate", false, "validate the configuration and exit")
	verbose := flag.Bool("v", false, "enable verbose logs")

	flag.Parse()

	var p config.Pipeline
	if cfgPath != "" {
		var err error
		p, err = config.LoadFile(cfgPath)
		if err != nil {
			fatalf("load config: %v", err)
		}
	}
	if inputPath != "" {
		p.Source.Path = inputPath
	}
	if outputPath != "" {
		p.Output.Path = outputPath
	}
	if limit > 0 {
		p.Source.Limit = limit
	}
	p.ApplyDefaults()

	issues := config.ValidatePipeline(p)
	hasError := false
	for _, iss := range issues {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
		if iss.Severity == config.SeverityError {
			hasError = true
		}
	}
	if hasError {
		log.Printf("configuration is invalid")
		os.Exit(1)
	}
	if validate {
		log.Printf("configuration is valid")
		os.Exit(0)
	}

	// Decide metrics backend: flag, then env, then default.
	backendName := metricsBackendFlg
	if backendName == "" {
		backendName = os.Getenv("METRICS_BACKEND")
	}
	switch backendName {
	case "pushgateway":
		gwURL := pushGatewayURLFlg
		if gwURL == "" {
			gwURL = os.Getenv("PUSHGATEWAY_URL")
		}
		if gwURL == "" {
			gwURL = "http://localhost:9091"
		}

		b, err := prompush.NewBackend(p.Job, gwURL)
		if err != nil {
			log.Printf("metrics: failed to init prom push backend: %v; using nop", err)
		} else {
			log.Printf("metrics: url=%v, backend=%v, job=%v", gwURL, backendName, p.Job)
			metrics.SetBackend(b)
			defer func() {
				if err := metrics.Flush(); err != nil {
					log.Printf("metrics: flush error: %v", err)
				}
			}()
		}

	case "datadog":
		b, err := datadog.NewBackend(datadog.Config{
			Addr:      os.Getenv("DD_AGENT_ADDR"),
			Namespace: p.Job,
		})
		if err != nil {
			log.Printf("metrics: failed to init datadog backend: %v; using nop", err)
		} else {
			metrics.SetBackend(b)
			defer func() {
				if err := metrics.Flush(); err != nil {
					log.Printf("metrics: flush error: %v", err)
				}
			}()
		}

	case "", "none":
		if *verbose {
			log.Printf("metrics: disabled (backend=%q)", backendName)
		}

	default:
		log.Printf("metrics: unknown backend %q; metrics disabled", backendName)
	}

	ctx := context.Background()
	start := time.Now()

	if *verbose {
		log.Printf("pipeline: source=%s output=%s limit=%d storage=%s",
			p.Source.Path, p.Output.Path, p.Source.Limit, p.Storage.Kind)
	}

	sum, err := generate.Run(ctx, p)
	if err != nil {
		log.Fatalf("%v", err)
	}

	log.Printf("done: %d rows, %d game blocks (%d skipped) in %s",
		sum.RowsLoaded, sum.GamesEmitted, sum.GamesSkipped,
		time.Since(start).Truncate(time.Millisecond))
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
