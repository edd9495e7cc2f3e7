package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telecloudhq/telecloud/app/models"
)

// Deleting a user must leave zero rows in any owned table.
func TestDeleteUserCascadesToAllOwnedRows(t *testing.T) {
	db := newTestDB(t)
	repos := NewRepositories(db)

	user := seedUser(t, db, "alice")
	keeper := seedUser(t, db, "bob") // must survive untouched

	token, err := models.NewBotToken(user.ID)
	require.NoError(t, err)
	require.NoError(t, repos.BotToken.Create(token))

	expires := time.Now().Add(time.Hour)
	require.NoError(t, repos.Session.Create(&models.Session{
		UserID: user.ID, Token: "sess-token-1", ExpiresAt: &expires,
	}))
	require.NoError(t, repos.Account.Create(&models.Account{
		UserID: user.ID, ProviderID: "google", ProviderAccountID: "g-123",
	}))
	require.NoError(t, repos.Payment.Create(&models.Payment{
		UserID: user.ID, Amount: "9.99", Currency: "USD", TxRef: "tx-1", Plan: models.PLAN_MONTHLY,
	}))

	folder := seedFolder(t, db, user.ID, "docs", nil)
	file := seedFile(t, db, user.ID, &folder.ID, "a.pdf")
	_, err = repos.File.Share(user.ID, file.ID)
	require.NoError(t, err)

	keeperToken, err := models.NewBotToken(keeper.ID)
	require.NoError(t, err)
	require.NoError(t, repos.BotToken.Create(keeperToken))

	require.NoError(t, repos.User.Delete(user.ID))

	for _, probe := range []struct {
		name  string
		model interface{}
	}{
		{"bot_tokens", &models.BotToken{}},
		{"sessions", &models.Session{}},
		{"accounts", &models.Account{}},
		{"shared_files", &models.SharedFile{}},
		{"payments", &models.Payment{}},
		{"folders", &models.Folder{}},
		{"user_files", &models.UserFile{}},
	} {
		var count int64
		require.NoError(t, db.Model(probe.model).Where("user_id = ?", user.ID).Count(&count).Error)
		assert.Zerof(t, count, "%s still references deleted user", probe.name)
	}

	// The other tenant is untouched.
	var keeperTokens int64
	require.NoError(t, db.Model(&models.BotToken{}).Where("user_id = ?", keeper.ID).Count(&keeperTokens).Error)
	assert.EqualValues(t, 1, keeperTokens)
	_, err = repos.User.GetByID(keeper.ID)
	assert.NoError(t, err)
}

// Deleting a folder must take the whole subtree and the files inside it,
// while the owning user survives.
func TestDeleteFolderCascadesSubtreeAndFiles(t *testing.T) {
	db := newTestDB(t)
	repos := NewRepositories(db)

	user := seedUser(t, db, "carol")

	f1 := seedFolder(t, db, user.ID, "F1", nil)
	f2 := seedFolder(t, db, user.ID, "F2", &f1.ID)
	f3 := seedFolder(t, db, user.ID, "F3", &f2.ID)
	outside := seedFolder(t, db, user.ID, "outside", nil)

	inF2 := seedFile(t, db, user.ID, &f2.ID, "in-f2.txt")
	inF3 := seedFile(t, db, user.ID, &f3.ID, "in-f3.txt")
	inOutside := seedFile(t, db, user.ID, &outside.ID, "kept.txt")

	require.NoError(t, repos.Folder.Delete(f1.ID))

	for _, id := range []string{f1.ID, f2.ID, f3.ID} {
		_, err := repos.Folder.GetByID(id)
		assert.ErrorIs(t, err, ErrNotFound)
	}
	for _, id := range []uint{inF2.ID, inF3.ID} {
		_, err := repos.File.GetByID(id)
		assert.ErrorIs(t, err, ErrNotFound)
	}

	// Sibling tree and its file survive, and so does the user.
	_, err := repos.Folder.GetByID(outside.ID)
	assert.NoError(t, err)
	_, err = repos.File.GetByID(inOutside.ID)
	assert.NoError(t, err)
	_, err = repos.User.GetByID(user.ID)
	assert.NoError(t, err)
}

// Deleting a file removes its sharing grants via the FileID FK.
func TestDeleteFileCascadesShares(t *testing.T) {
	db := newTestDB(t)
	repos := NewRepositories(db)

	user := seedUser(t, db, "dave")
	file := seedFile(t, db, user.ID, nil, "shared.bin")
	share, err := repos.File.Share(user.ID, file.ID)
	require.NoError(t, err)

	require.NoError(t, repos.File.Delete(file.ID))

	_, err = repos.File.GetShare(share.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

// Referencing a missing row fails with ErrForeignKeyViolation.
func TestForeignKeyViolations(t *testing.T) {
	db := newTestDB(t)
	repos := NewRepositories(db)

	token, err := models.NewBotToken("no-such-user")
	require.NoError(t, err)
	assert.ErrorIs(t, repos.BotToken.Create(token), ErrForeignKeyViolation)

	user := seedUser(t, db, "erin")
	missing := "no-such-folder"
	err = repos.File.Create(&models.UserFile{
		UserID:   user.ID,
		FolderID: &missing,
		FileName: "orphan.txt",
		MimeType: "text/plain",
		Size:     1,
		URL:      "https://files.telecloud.test/orphan.txt",
	})
	assert.ErrorIs(t, err, ErrForeignKeyViolation)

	_, err = repos.File.Share(user.ID, 99999)
	assert.ErrorIs(t, err, ErrForeignKeyViolation)
}
