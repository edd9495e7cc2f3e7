package repository

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/telecloudhq/telecloud/app/models"
	"github.com/telecloudhq/telecloud/internal/pkg/database"
)

// newTestDB opens a file-backed SQLite database with FK enforcement on and
// the full schema migrated. A single connection keeps the PRAGMA effective
// for every statement.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA foreign_keys=ON;").Error)
	require.NoError(t, database.Migrate(db))

	return db
}

// seedUser inserts a user with a unique email derived from name.
func seedUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	u := &models.User{
		Name:  name,
		Email: fmt.Sprintf("%s@example.com", name),
	}
	require.NoError(t, NewUserRepository(db).Create(u))
	return u
}

// seedFolder inserts a folder via the repository so paths are maintained.
func seedFolder(t *testing.T, db *gorm.DB, userID, name string, parentID *string) *models.Folder {
	t.Helper()

	f := &models.Folder{
		Name:     name,
		UserID:   userID,
		ParentID: parentID,
	}
	require.NoError(t, NewFolderRepository(db).Create(f))
	return f
}

// seedFile inserts a file row with sane defaults.
func seedFile(t *testing.T, db *gorm.DB, userID string, folderID *string, name string) *models.UserFile {
	t.Helper()

	f := &models.UserFile{
		UserID:   userID,
		FolderID: folderID,
		FileName: name,
		MimeType: "application/octet-stream",
		Size:     1024,
		URL:      "https://files.telecloud.test/" + name,
	}
	require.NoError(t, NewFileRepository(db).Create(f))
	return f
}
