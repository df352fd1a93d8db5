package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"nabaztag/config"
	"nabaztag/internal/application"
	"nabaztag/internal/domain"
	"nabaztag/internal/infra"
	"nabaztag/internal/infra/violet"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	say := flag.String("say", "", "text for the rabbit to speak")
	left := flag.Int("left", -1, "left ear position (0-16)")
	right := flag.Int("right", -1, "right ear position (0-16)")
	message := flag.String("message", "", "predefined message id to send")
	app := flag.String("app", "", "application id for predefined messages")
	nabcast := flag.String("nabcast", "", "nabcast id to publish the spoken text to")
	positions := flag.Bool("positions", false, "query the current ear positions")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.Log)

	codec, err := violet.CodecForCharset(cfg.API.Charset)
	if err != nil {
		logger.Error("configuring charset", "error", err)
		os.Exit(1)
	}

	rabbit := application.NewRabbit(
		domain.Identity{
			Serial: cfg.API.Serial,
			Token:  cfg.API.Token,
			Voice:  cfg.API.Voice,
		},
		violet.NewClient(cfg.API.BaseURL),
		codec,
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	retryCfg := infra.DefaultRetryConfig()
	retryCfg.MaxAttempts = cfg.Retry.MaxAttempts

	queued := false
	if *say != "" {
		rabbit.Say(*say)
		queued = true
	}
	if *left >= 0 || *right >= 0 {
		rabbit.MoveEars(earArg(*left), earArg(*right))
		queued = true
	}
	if *message != "" {
		rabbit.SendMessage(*message)
		queued = true
	}
	if *app != "" {
		rabbit.SetApplication(*app)
	}
	if *nabcast != "" {
		rabbit.Nabcast(*nabcast)
		queued = true
	}

	if queued {
		err := infra.WithRetry(ctx, retryCfg, func() error {
			return rabbit.Send(ctx)
		})
		if err != nil {
			logger.Error("sending batch", "error", err)
			os.Exit(1)
		}
		logger.Info("batch acknowledged")
	}

	if *positions {
		var pos *domain.EarPositions
		err := infra.WithRetry(ctx, retryCfg, func() error {
			var queryErr error
			pos, queryErr = rabbit.EarPositions(ctx)
			return queryErr
		})
		if err != nil {
			logger.Error("querying ear positions", "error", err)
			os.Exit(1)
		}
		if pos == nil {
			fmt.Println("ear positions unavailable (rabbit asleep?)")
		} else {
			fmt.Printf("left=%d right=%d\n", pos.Left, pos.Right)
		}
	}

	if !queued && !*positions {
		flag.Usage()
	}
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

func earArg(v int) *int {
	if v < 0 {
		return nil
	}
	return &v
}
