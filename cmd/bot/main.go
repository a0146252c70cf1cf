package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/crackalamoo/futhorc/internal/bot"
	"github.com/crackalamoo/futhorc/internal/db/sqlite"
	"github.com/crackalamoo/futhorc/internal/health"
	"github.com/crackalamoo/futhorc/internal/logger"
	"github.com/crackalamoo/futhorc/internal/runic"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("futhorc-bot")

	var (
		discordToken = fs.StringLong("discord-token", "", "Discord bot token")
		guildID      = fs.StringLong("discord-guild-id", "", "Guild ID for scoped command registration (empty = global)")
		dbPath       = fs.StringLong("database-path", "./futhorc.db", "SQLite database path")
		healthPort   = fs.Int64Long("health-port", 8081, "Health check server port")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	if *discordToken == "" {
		return fmt.Errorf("discord-token is required")
	}

	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer repo.Close()
	log.InfoContext(ctx, "opened database", "path", *dbPath)

	translator, err := runic.New()
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}

	session, err := discordgo.New("Bot " + *discordToken)
	if err != nil {
		return fmt.Errorf("creating Discord session: %w", err)
	}

	healthServer := health.New(int(*healthPort))
	go func() {
		if err := healthServer.Start(); err != nil {
			log.Error("health server error", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := healthServer.Shutdown(shutdownCtx); err != nil {
			log.Error("health server shutdown error", "error", err)
		}
	}()

	b := bot.New(log, session, repo, translator, bot.Config{GuildID: *guildID})
	return b.Run(ctx)
}
