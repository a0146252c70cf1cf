package bot

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crackalamoo/futhorc/internal/db"
	"github.com/crackalamoo/futhorc/internal/runic"
)

type fakeRepo struct {
	translations []db.Translation
	createErr    error
	listErr      error
}

func (f *fakeRepo) CreateTranslation(ctx context.Context, params db.CreateTranslationParams) (db.Translation, error) {
	if f.createErr != nil {
		return db.Translation{}, f.createErr
	}
	t := db.Translation{
		ID:        int64(len(f.translations) + 1),
		Source:    params.Source,
		Input:     params.Input,
		Output:    params.Output,
		CreatedAt: time.Now(),
	}
	f.translations = append([]db.Translation{t}, f.translations...)
	return t, nil
}

func (f *fakeRepo) GetTranslation(ctx context.Context, id int64) (db.Translation, error) {
	for _, t := range f.translations {
		if t.ID == id {
			return t, nil
		}
	}
	return db.Translation{}, db.ErrNoRows
}

func (f *fakeRepo) ListTranslations(ctx context.Context, limit int) ([]db.Translation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if limit > len(f.translations) {
		limit = len(f.translations)
	}
	return f.translations[:limit], nil
}

func (f *fakeRepo) Close() error { return nil }

func newTestBot(t *testing.T, repo db.Repository) *Bot {
	t.Helper()
	translator, err := runic.New()
	require.NoError(t, err)
	return &Bot{
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		repo:       repo,
		translator: translator,
		limiter:    NewRateLimiter(rateLimitMaxCommands, rateLimitWindow),
	}
}

func commandInteraction(name string, options map[string]string) *discordgo.InteractionCreate {
	var opts []*discordgo.ApplicationCommandInteractionDataOption
	for k, v := range options {
		opts = append(opts, &discordgo.ApplicationCommandInteractionDataOption{
			Name:  k,
			Type:  discordgo.ApplicationCommandOptionString,
			Value: v,
		})
	}
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: opts,
			},
			User: &discordgo.User{ID: "user-1"},
		},
	}
}

func TestHandleRunesTranslatesAndRecords(t *testing.T) {
	repo := &fakeRepo{}
	b := newTestBot(t, repo)

	result := b.handleRunes(context.Background(), commandInteraction("runes", map[string]string{"text": "stone"}))
	require.NoError(t, result.Err)
	require.NotNil(t, result.Embed)
	assert.Equal(t, "stone", result.Embed.Fields[0].Value)
	assert.Equal(t, "ᛥᚩᚾ", result.Embed.Fields[1].Value)

	require.Len(t, repo.translations, 1)
	assert.Equal(t, "bot", repo.translations[0].Source)
	assert.Equal(t, "stone", repo.translations[0].Input)
}

func TestHandleRunesEmptyText(t *testing.T) {
	b := newTestBot(t, &fakeRepo{})

	result := b.handleRunes(context.Background(), commandInteraction("runes", nil))
	require.Error(t, result.Err)
	var uerr *userError
	assert.ErrorAs(t, result.Err, &uerr)
	assert.Contains(t, result.Response, "text")
}

func TestHandleRunesTooLong(t *testing.T) {
	b := newTestBot(t, &fakeRepo{})

	long := strings.Repeat("a", maxCommandTextLength+1)
	result := b.handleRunes(context.Background(), commandInteraction("runes", map[string]string{"text": long}))
	require.Error(t, result.Err)
	assert.Contains(t, result.Response, "too long")
}

func TestHandleRunesRateLimited(t *testing.T) {
	repo := &fakeRepo{}
	b := newTestBot(t, repo)
	b.limiter = NewRateLimiter(1, time.Minute)

	i := commandInteraction("runes", map[string]string{"text": "dog"})
	first := b.handleRunes(context.Background(), i)
	require.NoError(t, first.Err)

	second := b.handleRunes(context.Background(), i)
	require.Error(t, second.Err)
	assert.Contains(t, second.Response, "Slow down")
	assert.Len(t, repo.translations, 1)
}

func TestHandleRunesHistoryFailureStillResponds(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("disk full")}
	b := newTestBot(t, repo)

	result := b.handleRunes(context.Background(), commandInteraction("runes", map[string]string{"text": "dog"}))
	require.NoError(t, result.Err)
	require.NotNil(t, result.Embed)
}

func TestHandleRecent(t *testing.T) {
	repo := &fakeRepo{}
	b := newTestBot(t, repo)

	b.handleRunes(context.Background(), commandInteraction("runes", map[string]string{"text": "dog"}))
	b.handleRunes(context.Background(), commandInteraction("runes", map[string]string{"text": "house"}))

	result := b.handleRecent(context.Background(), commandInteraction("recent", nil))
	require.NoError(t, result.Err)
	assert.Contains(t, result.Response, "house")
	assert.Contains(t, result.Response, "dog")
}

func TestHandleRecentEmpty(t *testing.T) {
	b := newTestBot(t, &fakeRepo{})

	result := b.handleRecent(context.Background(), commandInteraction("recent", nil))
	require.NoError(t, result.Err)
	assert.Contains(t, result.Response, "No translations yet")
}

func TestHandleRecentRepoError(t *testing.T) {
	b := newTestBot(t, &fakeRepo{listErr: errors.New("db down")})

	result := b.handleRecent(context.Background(), commandInteraction("recent", nil))
	require.Error(t, result.Err)
	var uerr *userError
	assert.False(t, errors.As(result.Err, &uerr), "repo failure is not a user error")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcde…", truncate("abcdefgh", 5))
	assert.Equal(t, "ᚠᚢᚦ…", truncate("ᚠᚢᚦᚩᚱᚳ", 3))
}
