package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telecloudhq/telecloud/app/models"
)

// Round-trip: a fully populated file row reads back with identical values.
func TestFileRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewFileRepository(db)
	user := seedUser(t, db, "roundtrip")
	folder := seedFolder(t, db, user.ID, "inbox", nil)

	channelFileID := "msg-42"
	file := &models.UserFile{
		UserID:        user.ID,
		FolderID:      &folder.ID,
		FileName:      "report.pdf",
		MimeType:      "application/pdf",
		Size:          1<<31 + 7, // larger than int32 on purpose
		URL:           "https://files.telecloud.test/report.pdf",
		ChannelFileID: &channelFileID,
		Category:      models.FILE_CATEGORY_DOCUMENT,
	}
	require.NoError(t, repo.Create(file))
	require.NotZero(t, file.ID)

	got, err := repo.GetByID(file.ID)
	require.NoError(t, err)

	assert.Equal(t, file.UserID, got.UserID)
	require.NotNil(t, got.FolderID)
	assert.Equal(t, folder.ID, *got.FolderID)
	assert.Equal(t, "report.pdf", got.FileName)
	assert.Equal(t, "application/pdf", got.MimeType)
	assert.EqualValues(t, 1<<31+7, got.Size)
	assert.Equal(t, file.URL, got.URL)
	require.NotNil(t, got.ChannelFileID)
	assert.Equal(t, channelFileID, *got.ChannelFileID)
	assert.Equal(t, models.FILE_CATEGORY_DOCUMENT, got.Category)
	assert.WithinDuration(t, time.Now(), got.CreatedAt, time.Minute)
}

func TestFileValidation(t *testing.T) {
	db := newTestDB(t)
	repo := NewFileRepository(db)
	user := seedUser(t, db, "filevalid")

	// missing file name
	err := repo.Create(&models.UserFile{
		UserID: user.ID, MimeType: "text/plain", Size: 1, URL: "https://x/y",
	})
	assert.ErrorIs(t, err, ErrValidation)

	// unknown category
	err = repo.Create(&models.UserFile{
		UserID: user.ID, FileName: "x", MimeType: "text/plain", Size: 1,
		URL: "https://x/y", Category: "spreadsheet",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStorageUsage(t *testing.T) {
	db := newTestDB(t)
	repo := NewFileRepository(db)
	user := seedUser(t, db, "hoarder")
	other := seedUser(t, db, "minimalist")

	seedFile(t, db, user.ID, nil, "one.bin")
	seedFile(t, db, user.ID, nil, "two.bin")

	usage, err := repo.StorageUsage(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2048, usage)

	usage, err = repo.StorageUsage(other.ID)
	require.NoError(t, err)
	assert.Zero(t, usage)
}

func TestShareRequiresOwnership(t *testing.T) {
	db := newTestDB(t)
	repo := NewFileRepository(db)
	owner := seedUser(t, db, "shareowner")
	stranger := seedUser(t, db, "stranger")

	file := seedFile(t, db, owner.ID, nil, "secret.txt")

	_, err := repo.Share(stranger.ID, file.ID)
	assert.ErrorIs(t, err, ErrForeignKeyViolation)

	share, err := repo.Share(owner.ID, file.ID)
	require.NoError(t, err)

	got, err := repo.GetShare(share.ID)
	require.NoError(t, err)
	assert.Equal(t, file.ID, got.FileID)
	assert.Equal(t, file.FileName, got.File.FileName)

	require.NoError(t, repo.Unshare(share.ID))
	assert.ErrorIs(t, repo.Unshare(share.ID), ErrNotFound)
}

// End-to-end scenario from the data model: nested folders, a file deep in the
// tree, then the root folder is deleted.
func TestScenarioNestedFolderDelete(t *testing.T) {
	db := newTestDB(t)
	repos := NewRepositories(db)

	userA := &models.User{Name: "A", Email: "a@x.com"}
	require.NoError(t, repos.User.Create(userA))

	f1 := seedFolder(t, db, userA.ID, "F1", nil)
	f2 := seedFolder(t, db, userA.ID, "F2", &f1.ID)
	file := seedFile(t, db, userA.ID, &f2.ID, "deep.dat")

	require.NoError(t, repos.Folder.Delete(f1.ID))

	_, err := repos.Folder.GetByID(f2.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repos.File.GetByID(file.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// User A remains.
	got, err := repos.User.GetByID(userA.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)
}
