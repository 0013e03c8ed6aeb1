package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/JiYeong0127/paperdeck/internal/adapters/api"
	"github.com/JiYeong0127/paperdeck/internal/adapters/cache/memory"
	"github.com/JiYeong0127/paperdeck/internal/adapters/notify/term"
	papersadapter "github.com/JiYeong0127/paperdeck/internal/adapters/render/papers"
	tomlrepo "github.com/JiYeong0127/paperdeck/internal/adapters/repo/toml"
	chainstore "github.com/JiYeong0127/paperdeck/internal/adapters/secrets/chain"
	"github.com/JiYeong0127/paperdeck/internal/adapters/session"
	"github.com/JiYeong0127/paperdeck/internal/application"
	"github.com/JiYeong0127/paperdeck/internal/domain"
	"github.com/JiYeong0127/paperdeck/internal/logger"
	"github.com/JiYeong0127/paperdeck/internal/ports"
	"github.com/JiYeong0127/paperdeck/internal/version"
)

const (
	apiURLKey       = "api.base_url"
	apiTimeoutKey   = "api.timeout"
	cacheTTLKey     = "cache.ttl"
	secretsPathKey  = "secrets.path"
	logLevelKey     = "log.level"
	historyLimitKey = "history.limit"

	defaultAPIURL   = "https://api.paperdeck.dev/v1"
	defaultCacheTTL = 5 * time.Minute
)

type app struct {
	search    *application.SearchService
	bookmarks *application.BookmarkService
	accounts  *application.AccountService
	history   *application.HistoryService

	searchRenderer    func(domain.SearchPage, domain.SearchQuery) (string, error)
	paperRenderer     func(domain.Paper) (string, error)
	bookmarksRenderer func([]domain.Bookmark, papersadapter.RenderOptions) (string, error)
	historyRenderer   func([]domain.PaperView, papersadapter.RenderOptions) (string, error)
	now               func() time.Time
}

func wireApp(rootCmd *cobra.Command) (*app, error) {
	cfg := viper.New()
	cfg.SetDefault(apiURLKey, defaultAPIURL)
	cfg.SetDefault(cacheTTLKey, defaultCacheTTL)
	cfg.SetDefault(logLevelKey, "warn")

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire state repository: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	secretsPath := envOrDefault("PAPERDECK_SECRETS_PATH", cfg.GetString(secretsPathKey))
	if secretsPath == "" {
		secretsPath = filepath.Join(homeDir, ".paperdeck", "secrets")
	}
	secretStore, err := chainstore.NewPassFirstWithFileFallback(secretsPath)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	log := logger.New(envOrDefault("PAPERDECK_LOG_LEVEL", cfg.GetString(logLevelKey)), false)
	clock := ports.SystemClock{}
	sessions := session.NewStore(repo, secretStore, clock)

	client := api.NewClient(api.Config{
		BaseURL:   envOrDefault("PAPERDECK_API_URL", cfg.GetString(apiURLKey)),
		Timeout:   cfg.GetDuration(apiTimeoutKey),
		UserAgent: "pd/" + version.Version,
		Token:     sessionToken(sessions),
		Logger:    log,
	})

	cache := memory.New(cfg.GetDuration(cacheTTLKey), clock, log)
	notifier := term.NewNotifierTo(commandStderr{cmd: rootCmd})

	history := application.NewHistoryService(repo, clock, cfg.GetInt(historyLimitKey))

	return &app{
		search:    application.NewSearchService(client, cache, history, log),
		bookmarks: application.NewBookmarkService(client, cache, sessions, notifier, clock, log),
		accounts:  application.NewAccountService(client, cache, sessions, clock, log),
		history:   history,

		searchRenderer:    papersadapter.RenderSearchPage,
		paperRenderer:     papersadapter.RenderPaper,
		bookmarksRenderer: papersadapter.RenderBookmarks,
		historyRenderer:   papersadapter.RenderHistory,
		now:               time.Now,
	}, nil
}

// sessionToken adapts the session store into the API client's token source.
// A load error reads as signed out and the request goes without a bearer.
func sessionToken(sessions *session.Store) api.TokenSource {
	return func(ctx context.Context) string {
		current, err := sessions.Load(ctx)
		if err != nil {
			return ""
		}

		return current.Token
	}
}

// commandStderr resolves the command's error stream at write time, so
// SetErr calls made after wiring still take effect.
type commandStderr struct {
	cmd *cobra.Command
}

func (w commandStderr) Write(p []byte) (int, error) {
	return w.cmd.ErrOrStderr().Write(p)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
