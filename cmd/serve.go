package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rgarhwal/intern-advisor/internal/engine"
	"github.com/rgarhwal/intern-advisor/internal/history"
	"github.com/rgarhwal/intern-advisor/internal/logger"
	"github.com/rgarhwal/intern-advisor/internal/match"
	"github.com/rgarhwal/intern-advisor/internal/model"
	"github.com/rgarhwal/intern-advisor/internal/rank"
	"github.com/rgarhwal/intern-advisor/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the recommendation and chat API over HTTP",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "listen address (default :8080)")

	viper.BindPFlag("server.address", serveCmd.Flags().Lookup("address"))
}

func serve() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the intern-advisor", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	store, err := newHistoryStore(ctx, config.History, logger)
	if err != nil {
		logger.Fatal("creating the history store", zap.Error(err))
	}

	handle := model.New(config.Model, logger)
	eng := engine.New(handle, rank.New(match.New()), config.Engine, logger)
	srv := server.New(eng, store, config.Server, logger)

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}
}

// newHistoryStore selects the chat history backend. Redis keeps sessions
// across restarts and replicas; the in-process store is the default.
func newHistoryStore(ctx context.Context, cfg *HistoryConfig, logger *zap.Logger) (history.Store, error) {
	backend := "memory"
	if cfg != nil && cfg.Backend != "" {
		backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	}

	switch backend {
	case "memory":
		logger.Info("using in-memory chat history")
		return history.NewMemoryStore(), nil
	case "redis":
		if cfg == nil || cfg.Redis == nil {
			return nil, fmt.Errorf("redis configuration is required when history backend is redis")
		}
		store, err := history.NewRedisStore(ctx, *cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		logger.Info("using redis chat history", zap.String("address", cfg.Redis.Address))
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported history backend: %s", backend)
	}
}
