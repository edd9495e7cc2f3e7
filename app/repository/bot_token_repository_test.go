package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telecloudhq/telecloud/app/models"
)

func TestCreateBotTokenRequiresExplicitValue(t *testing.T) {
	db := newTestDB(t)
	repo := NewBotTokenRepository(db)
	user := seedUser(t, db, "botless")

	// no silent fallback to a shared default
	err := repo.Create(&models.BotToken{UserID: user.ID})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBotTokensAreDistinctPerRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewBotTokenRepository(db)
	user := seedUser(t, db, "botowner")

	t1, err := models.NewBotToken(user.ID)
	require.NoError(t, err)
	t2, err := models.NewBotToken(user.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Create(t1))
	require.NoError(t, repo.Create(t2))
	assert.NotEqual(t, t1.Token, t2.Token)

	tokens, err := repo.ListByUserID(user.ID)
	require.NoError(t, err)
	assert.Len(t, tokens, 2)
}

func TestBotTokenRateLimitWindow(t *testing.T) {
	db := newTestDB(t)
	repo := NewBotTokenRepository(db)
	user := seedUser(t, db, "limited")

	token, err := models.NewBotToken(user.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(token))

	until := time.Now().Add(time.Minute)
	require.NoError(t, repo.SetRateLimitedUntil(token.ID, &until))

	got, err := repo.GetByID(token.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRateLimited(time.Now()))
	assert.False(t, got.IsRateLimited(time.Now().Add(2*time.Minute)))

	require.NoError(t, repo.SetRateLimitedUntil(token.ID, nil))
	got, err = repo.GetByID(token.ID)
	require.NoError(t, err)
	assert.False(t, got.IsRateLimited(time.Now()))

	assert.ErrorIs(t, repo.SetRateLimitedUntil("missing", &until), ErrNotFound)
}

func TestGetBotTokenByToken(t *testing.T) {
	db := newTestDB(t)
	repo := NewBotTokenRepository(db)
	user := seedUser(t, db, "resolver")

	token, err := models.NewBotToken(user.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(token))

	got, err := repo.GetByToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, token.ID, got.ID)

	_, err = repo.GetByToken("unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}
