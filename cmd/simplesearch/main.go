package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	simplifiedsearch "github.com/gcbaptista/go-simplified-search"
	"github.com/gcbaptista/go-simplified-search/api"
	"github.com/gcbaptista/go-simplified-search/config"
	"github.com/gcbaptista/go-simplified-search/internal/engine"
	"github.com/gcbaptista/go-simplified-search/internal/search"
	"github.com/gcbaptista/go-simplified-search/model"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "simplesearch",
		Usage: "Fuzzy prefix search over in-memory collections",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				EnvVars: []string{"SIMPLESEARCH_LOG_LEVEL"},
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP search server",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Usage:   "Port to run the server on (default from SIMPLESEARCH_PORT or 8080)",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of workers scoring large collections (0 means one per CPU)",
					},
					&cli.IntFlag{
						Name:  "parallel-threshold",
						Usage: "Candidate count from which scoring runs in parallel",
					},
				},
			},
			{
				Name:   "query",
				Usage:  "Rank the documents of a JSON file against a search term",
				Action: queryCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to a JSON array of documents",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "term",
						Aliases:  []string{"t"},
						Usage:    "Search term",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:  "field",
						Usage: "Document field to search (repeatable, all fields when omitted)",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results (0 means all)",
						Value: 10,
					},
				},
			},
		},
	}
}

func setupLogger(c *cli.Context) error {
	level, err := logrus.ParseLevel(c.String("log-level"))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.String("log-level"), err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}

func serveCommand(c *cli.Context) error {
	cfg := config.Load()
	if c.IsSet("port") {
		cfg.Port = c.String("port")
	}
	if c.IsSet("workers") {
		cfg.Search.Workers = c.Int("workers")
	}
	if c.IsSet("parallel-threshold") {
		cfg.Search.ParallelThreshold = c.Int("parallel-threshold")
	}
	if problems := cfg.Search.Validate(); len(problems) > 0 {
		return fmt.Errorf("invalid search settings: %s", strings.Join(problems, "; "))
	}
	cfg.Search.ApplyDefaults()

	logger := logrus.WithField("service", "simplesearch")
	searcher, err := search.NewServiceFromSettings(cfg.Search, search.WithLogger(logger.WithField("component", "search")))
	if err != nil {
		return fmt.Errorf("failed to create search service: %w", err)
	}
	defer searcher.Release()

	if logrus.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
	api.SetupRoutes(router, engine.NewEngine(searcher, logger), logger)

	logger.WithFields(logrus.Fields{
		"port":               cfg.Port,
		"workers":            cfg.Search.Workers,
		"parallel_threshold": cfg.Search.ParallelThreshold,
		"filters":            cfg.Search.Filters,
	}).Info("starting server")
	return router.Run(":" + cfg.Port)
}

func queryCommand(c *cli.Context) error {
	data, err := os.ReadFile(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to read documents: %w", err)
	}

	var docs []model.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return fmt.Errorf("failed to parse documents in %s: %w", c.String("file"), err)
	}
	if docs == nil {
		docs = []model.Document{}
	}

	limit := c.Int("limit")
	if limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}

	hits, err := simplifiedsearch.Rank(context.Background(), docs, c.String("term"), model.FieldSelector(c.StringSlice("field")))
	if err != nil {
		return err
	}

	out := c.App.Writer
	fmt.Fprintf(out, "Found %d hits\n", len(hits))
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	for i, hit := range hits {
		encoded, err := json.Marshal(hit.Item)
		if err != nil {
			return fmt.Errorf("failed to encode result %d: %w", i, err)
		}
		fmt.Fprintf(out, "%d: %s [%0.3f]\n", i, encoded, hit.Score)
	}
	return nil
}
