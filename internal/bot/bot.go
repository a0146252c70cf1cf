// Package bot runs the Discord bot: slash commands for translating text
// into runes and browsing recent translations.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"

	"github.com/crackalamoo/futhorc/internal/db"
	"github.com/crackalamoo/futhorc/internal/metrics"
	"github.com/crackalamoo/futhorc/internal/runic"
)

const maxCommandTextLength = 1000

type Config struct {
	// GuildID scopes command registration to one server for faster
	// iteration; empty registers globally.
	GuildID string
}

type Bot struct {
	log        *slog.Logger
	session    *discordgo.Session
	repo       db.Repository
	translator *runic.Translator
	limiter    *RateLimiter
	config     Config
}

func New(
	log *slog.Logger,
	session *discordgo.Session,
	repo db.Repository,
	translator *runic.Translator,
	config Config,
) *Bot {
	return &Bot{
		log:        log,
		session:    session,
		repo:       repo,
		translator: translator,
		limiter:    NewRateLimiter(rateLimitMaxCommands, rateLimitWindow),
		config:     config,
	}
}

func (b *Bot) Run(ctx context.Context) error {
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		b.log.InfoContext(ctx, "connected to Discord", "username", r.User.Username, "discriminator", r.User.Discriminator)
	})

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening Discord connection: %w", err)
	}

	if err := b.registerCommands(ctx); err != nil {
		return fmt.Errorf("registering commands: %w", err)
	}

	b.log.InfoContext(ctx, "bot is running, press Ctrl+C to stop")

	<-ctx.Done()
	b.log.Info("shutdown signal received")
	b.session.Close()
	b.log.InfoContext(ctx, "shut down complete")

	return nil
}

func (b *Bot) registerCommands(ctx context.Context) error {
	guildID := b.config.GuildID
	if guildID != "" {
		b.log.InfoContext(ctx, "registering commands to guild", "guild_id", guildID)
	} else {
		b.log.InfoContext(ctx, "registering commands globally (may take up to 1 hour to propagate)")
	}

	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, guildID, commands)
	if err != nil {
		return fmt.Errorf("bulk overwrite commands: %w", err)
	}
	b.log.InfoContext(ctx, "registered commands", "count", len(commands))
	return nil
}

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "runes",
		Description: "Translate English text into Anglo-Saxon runes",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "text",
				Description: "The text to translate",
				Required:    true,
			},
		},
	},
	{
		Name:        "recent",
		Description: "Show recent rune translations",
	},
}

type handlerResult struct {
	Response string
	Embed    *discordgo.MessageEmbed
	Err      error
}

type userError struct {
	Err error
}

func (e *userError) Error() string {
	return e.Err.Error()
}

func (e *userError) Unwrap() error {
	return e.Err
}

func newUserError(err error) *userError {
	return &userError{Err: err}
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()
	var result handlerResult
	cmd := i.ApplicationCommandData().Name

	switch cmd {
	case "runes":
		result = b.handleRunes(ctx, i)
	case "recent":
		result = b.handleRecent(ctx, i)
	}

	b.respond(s, i, result)

	if result.Err == nil {
		return
	}

	var uerr *userError
	if errors.As(result.Err, &uerr) {
		b.log.WarnContext(ctx, "user error", "command", cmd, "error", result.Err, "channel_id", i.ChannelID)
	} else {
		b.log.ErrorContext(ctx, "command failed", "command", cmd, "error", result.Err, "channel_id", i.ChannelID)
	}
}

func getOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func (b *Bot) handleRunes(ctx context.Context, i *discordgo.InteractionCreate) handlerResult {
	text := getOption(i.ApplicationCommandData().Options, "text")
	if text == "" {
		return handlerResult{
			Response: "❌ Give me some text to translate.",
			Err:      newUserError(errors.New("empty text option")),
		}
	}
	if utf8.RuneCountInString(text) > maxCommandTextLength {
		return handlerResult{
			Response: fmt.Sprintf("❌ Text too long (max %d characters).", maxCommandTextLength),
			Err:      newUserError(errors.New("text over length limit")),
		}
	}

	userID := interactionUserID(i)
	if !b.limiter.Allow(userID) {
		return handlerResult{
			Response: "⏳ Slow down! Try again in a minute.",
			Err:      newUserError(fmt.Errorf("rate limited user %s", userID)),
		}
	}

	output := b.translator.Translate(text)
	metrics.TranslationsTotal.WithLabelValues("bot").Inc()

	if _, err := b.repo.CreateTranslation(ctx, db.CreateTranslationParams{
		Source: "bot",
		Input:  text,
		Output: output,
	}); err != nil {
		// History is best-effort.
		b.log.ErrorContext(ctx, "recording translation", "error", err)
		metrics.HistoryWrites.WithLabelValues("error").Inc()
	} else {
		metrics.HistoryWrites.WithLabelValues("ok").Inc()
	}

	return handlerResult{Embed: formatRunesEmbed(text, output)}
}

func (b *Bot) handleRecent(ctx context.Context, i *discordgo.InteractionCreate) handlerResult {
	translations, err := b.repo.ListTranslations(ctx, 10)
	if err != nil {
		return handlerResult{
			Response: "❌ Failed to fetch recent translations. Please try again later.",
			Err:      fmt.Errorf("list translations: %w", err),
		}
	}

	if len(translations) == 0 {
		return handlerResult{Response: "No translations yet. Use `/runes text` to make one!"}
	}

	lines := lo.Map(translations, func(t db.Translation, _ int) string {
		return fmt.Sprintf("• %s → %s", truncate(t.Input, 40), t.Output)
	})

	content := "**Recent translations:**\n"
	for _, line := range lines {
		content += line + "\n"
	}
	return handlerResult{Response: content}
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "…"
}

func formatRunesEmbed(input, output string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "ᚠᚢᚦᚩᚱᚳ",
		Color: 0x8B5A2B,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "English", Value: input},
			{Name: "Runes", Value: output},
		},
	}
}

func (b *Bot) respond(s *discordgo.Session, i *discordgo.InteractionCreate, result handlerResult) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	data := &discordgo.InteractionResponseData{Content: result.Response}
	if result.Embed != nil {
		data.Embeds = []*discordgo.MessageEmbed{result.Embed}
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		b.log.ErrorContext(ctx, "failed to respond to interaction", "error", err)
	}
}
