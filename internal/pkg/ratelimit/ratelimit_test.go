package ratelimit

import (
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/telecloudhq/telecloud/app/models"
	"github.com/telecloudhq/telecloud/app/repository"
	"github.com/telecloudhq/telecloud/internal/pkg/database"
)

// No Redis in tests: the cache client stays nil, so every check exercises the
// database fall-through path.
func newBotTokenRepo(t *testing.T) (repository.BotTokenRepository, string) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "ratelimit_test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	owner := &models.User{Name: "bot owner", Email: "owner@example.com"}
	require.NoError(t, repository.NewUserRepository(db).Create(owner))

	repo := repository.NewBotTokenRepository(db)
	token, err := models.NewBotToken(owner.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(token))

	return repo, token.ID
}

func TestLimitStampsWindowAndClearLiftsIt(t *testing.T) {
	repo, tokenID := newBotTokenRepo(t)

	limited, err := IsLimited(repo, tokenID, time.Now())
	require.NoError(t, err)
	assert.False(t, limited)

	require.NoError(t, Limit(repo, tokenID, time.Minute))

	limited, err = IsLimited(repo, tokenID, time.Now())
	require.NoError(t, err)
	assert.True(t, limited, "token must be limited inside the window")

	require.NoError(t, Clear(repo, tokenID))

	limited, err = IsLimited(repo, tokenID, time.Now())
	require.NoError(t, err)
	assert.False(t, limited, "cleared token must not be limited")
}

func TestIsLimitedExpiredWindow(t *testing.T) {
	repo, tokenID := newBotTokenRepo(t)

	past := time.Now().Add(-time.Minute)
	require.NoError(t, repo.SetRateLimitedUntil(tokenID, &past))

	limited, err := IsLimited(repo, tokenID, time.Now())
	require.NoError(t, err)
	assert.False(t, limited, "an elapsed window no longer limits")
}

func TestLimitRejectsNonPositiveDuration(t *testing.T) {
	repo, tokenID := newBotTokenRepo(t)

	assert.Error(t, Limit(repo, tokenID, 0))
	assert.Error(t, Limit(repo, tokenID, -time.Second))
}

func TestIsLimitedUnknownToken(t *testing.T) {
	repo, _ := newBotTokenRepo(t)

	_, err := IsLimited(repo, "no-such-token", time.Now())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
