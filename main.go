package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"uae-chat/internal/chat"
	"uae-chat/internal/common"
	"uae-chat/internal/config"
	"uae-chat/internal/history"
	"uae-chat/internal/matcher"
	"uae-chat/internal/router"
	"uae-chat/internal/search"
	"uae-chat/internal/server"
	"uae-chat/internal/suggestions"
	"uae-chat/internal/terminal"
	"uae-chat/internal/ui"
)

const reapInterval = time.Minute

func main() {
	// Set the GetEnv function for config
	config.GetEnv = os.Getenv

	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	logger := common.NewLogger("uae-chat", cfg.Verbose)
	display := ui.NewDisplay(os.Stdout, !cfg.Serve && terminal.IsTerminal())

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize components
	loader := suggestions.NewLoader(cfg.SearchTimeout, cfg.UserAgent)
	corpus := loader.LoadOrEmpty(ctx, cfg.SuggestionsSource, logger)
	if corpus.Len() == 0 {
		display.PrintWarning("No suggestions loaded; every question will go to web search")
	}

	m := matcher.New(corpus, matcher.Options{Dedupe: cfg.DedupeCorpus})
	searcher := search.NewClient(search.Options{
		WikipediaURL:  cfg.WikipediaURL,
		NewsAPIURL:    cfg.NewsAPIURL,
		NewsAPIKey:    cfg.NewsAPIKey,
		WeatherAPIURL: cfg.WeatherAPIURL,
		WeatherAPIKey: cfg.WeatherAPIKey,
		Timeout:       cfg.SearchTimeout,
		MaxResults:    cfg.MaxResults,
		UserAgent:     cfg.UserAgent,
		Logger:        logger,
	})
	rt := router.New(m, searcher, logger)

	// Transcript archive (non-fatal)
	var store history.Store
	var archiver chat.Archiver
	store, err = history.Open(strings.ToLower(cfg.HistoryBackend), cfg.HistoryFile(), cfg.MaxHistorySize, logger)
	if err != nil {
		display.PrintWarning(fmt.Sprintf("Failed to open history: %v", err))
		store = nil
	} else {
		defer store.Close()
		archiver = store
	}

	if cfg.Serve {
		if err := serve(ctx, cfg, rt, store, archiver, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runREPL(ctx, cfg, rt, store, archiver, display, logger)
}

// serve runs the HTTP API until ctx is cancelled, then archives live sessions
func serve(ctx context.Context, cfg *config.Config, rt *router.Router, store history.Store, archiver chat.Archiver, logger *log.Logger) error {
	registry := chat.NewRegistry(rt, archiver, cfg.SessionIdle, logger)
	go registry.Run(ctx, reapInterval)

	srv := server.New(registry, rt, store, cfg.Language, logger)
	err := srv.Run(ctx, cfg.ListenAddr)

	if cerr := registry.Close(context.Background()); cerr != nil {
		logger.Printf("error archiving sessions on shutdown: %v", cerr)
	}
	return err
}

// loadConfig layers defaults, the TOML file, .env, UAECHAT_* variables and flags
func loadConfig(args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := cfg.LoadFile(configPath(args)); err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()

	fs := flag.NewFlagSet("uae-chat", flag.ExitOnError)
	fs.String("config", "", "Path to a TOML config file")
	fs.StringVar(&cfg.SuggestionsSource, "suggestions", cfg.SuggestionsSource, "Suggestions corpus file or URL (default: embedded)")
	fs.BoolVar(&cfg.DedupeCorpus, "dedupe", cfg.DedupeCorpus, "Drop duplicate corpus questions")
	fs.StringVar(&cfg.WikipediaURL, "wikipedia-url", cfg.WikipediaURL, "Wikipedia base URL")
	fs.StringVar(&cfg.NewsAPIKey, "news-api-key", cfg.NewsAPIKey, "News API key")
	fs.StringVar(&cfg.WeatherAPIKey, "weather-api-key", cfg.WeatherAPIKey, "Weather API key")
	fs.IntVar(&cfg.MaxResults, "max-results", cfg.MaxResults, "Maximum search results per answer")
	fs.DurationVar(&cfg.SearchTimeout, "timeout", cfg.SearchTimeout, "Per-request search timeout")
	fs.StringVar(&cfg.HistoryBackend, "history-backend", cfg.HistoryBackend, "Transcript store: json or sqlite")
	fs.StringVar(&cfg.HistoryPath, "history", cfg.HistoryPath, "Transcript store path (default: ~/.uae-chat/history.json, or history.db for sqlite)")
	fs.StringVar(&cfg.Language, "lang", cfg.Language, "Interface language: en, ar or pa")
	fs.BoolVar(&cfg.Serve, "serve", cfg.Serve, "Run the HTTP/WebSocket server instead of the REPL")
	fs.StringVar(&cfg.ListenAddr, "addr", cfg.ListenAddr, "Server listen address")
	fs.DurationVar(&cfg.SessionIdle, "session-idle", cfg.SessionIdle, "Archive server sessions idle for this long")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Enable verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configPath finds -config ahead of the full flag parse so the file can
// supply defaults that flags then override
func configPath(args []string) string {
	for i, arg := range args {
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if v, ok := strings.CutPrefix(name, "config="); ok {
			return v
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
