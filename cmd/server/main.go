package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/sony/gobreaker/v2"
	"gopkg.in/yaml.v3"

	"github.com/okanes/bankcore"

	"github.com/rs/zerolog"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg bankcore.Config
	cfp := flag.String("config", "config.yml", "path to configuration file")
	flag.Parse()
	cfgfl, err := os.Open(*cfp)
	if err != nil {
		logger.Fatal().Err(err).Msg("error opening config file")
	}
	if err = yaml.NewDecoder(cfgfl).Decode(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("error decoding config file")
	}

	pgendpt, err := bankcore.NewPostgresEndpoint(cfg.Database.ConnStr, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting database")
	}
	defer pgendpt.Close()

	node, err := snowflake.NewNode(cfg.Snowflake.Node)
	if err != nil {
		logger.Fatal().Err(err).Msg("error creating snowflake node")
	}

	maxInflight := cfg.Limits.MaxInflight
	if maxInflight == 0 {
		maxInflight = 64
	}
	acquireTimeout := time.Duration(cfg.Limits.AcquireTimeoutMS) * time.Millisecond
	if acquireTimeout == 0 {
		acquireTimeout = 500 * time.Millisecond
	}

	var svc bankcore.Service = bankcore.NewService(pgendpt, node, &logger)
	svc = bankcore.NewLimitMiddleware(bankcore.NewServiceLimits(maxInflight), acquireTimeout)(svc)
	svc = bankcore.NewCircuitBreakMiddleware(bankcore.NewServiceBreaker(gobreaker.Settings{}))(svc)
	hndlr := bankcore.NewHTTPHandler(svc, &logger)

	addr := cfg.Server.ListenAddr
	if addr == "" {
		addr = ":3000"
	}
	srv := &http.Server{
		Addr:    addr,
		Handler: hndlr,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		logger.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Err(err).Msg("server shutdown")
	}
}
