// Command newsimpactd serves the news-impact MCP gateway over HTTP or stdio.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/jonwraymond/newsimpact/config"
	"github.com/jonwraymond/newsimpact/gateway"
	"github.com/jonwraymond/newsimpact/logging"
	"github.com/jonwraymond/newsimpact/store"
	"github.com/jonwraymond/newsimpact/widget"
)

const version = "1.0.0"

func main() {
	stdio := flag.Bool("stdio", false, "serve MCP over stdio instead of HTTP")
	flag.Parse()

	cfg := config.FromEnv()
	log := logging.New(logging.Config{
		Level:    cfg.LogLevel,
		Console:  true,
		FilePath: cfg.LogFile,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	openCtx, cancelOpen := context.WithTimeout(ctx, 10*time.Second)
	st, err := store.Open(openCtx, store.Config{
		URI:        cfg.MongoURI,
		Database:   cfg.MongoDatabase,
		Collection: cfg.MongoCollection,
	}, log)
	cancelOpen()
	if err != nil {
		log.Fatal().Err(err).Msg("store open failed")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("store close failed")
		}
	}()

	gw := gateway.New(st, gateway.Config{
		ServerInfo: gateway.ServerInfo{Name: "newsimpact", Version: version},
		Widget:     widget.Default(cfg.WidgetHTMLPath),
		Logger:     log,
	})

	if *stdio {
		if err := gateway.ServeStdio(ctx, gw); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("stdio serve failed")
		}
		return
	}

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/mcp", gateway.ServeHTTP(gw))
	router.Handle("/mcp/sse", gateway.ServeSSE(gw))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", cfg.Addr).Msg("http listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("http serve failed")
		os.Exit(1)
	}
}
