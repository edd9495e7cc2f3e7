package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/telecloudhq/telecloud/app/models"
	"github.com/telecloudhq/telecloud/app/repository"
	"github.com/telecloudhq/telecloud/internal/pkg/middleware"
)

type createFileRequest struct {
	FolderID      *string `json:"folder_id"`
	FileName      string  `json:"file_name"`
	MimeType      string  `json:"mime_type"`
	Size          int64   `json:"size"`
	URL           string  `json:"url"`
	ChannelFileID *string `json:"channel_file_id"`
	Category      string  `json:"category"`
}

// HandleCreateFile records the metadata of an uploaded file. The upload
// itself happens against the user's channel before this endpoint is called.
func HandleCreateFile(c *fiber.Ctx) error {
	var req createFileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	file := &models.UserFile{
		UserID:        middleware.UserID(c),
		FolderID:      req.FolderID,
		FileName:      req.FileName,
		MimeType:      req.MimeType,
		Size:          req.Size,
		URL:           req.URL,
		ChannelFileID: req.ChannelFileID,
		Category:      req.Category,
	}
	if err := repository.GetGlobalRepositories().File.Create(file); err != nil {
		return repoErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(file)
}

// HandleListFiles returns a page of the user's files.
func HandleListFiles(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	files, err := repository.GetGlobalRepositories().File.ListByUserID(middleware.UserID(c), offset, limit)
	if err != nil {
		return repoErrorResponse(c, err)
	}
	return c.JSON(files)
}

// HandleGetFile returns one file's metadata.
func HandleGetFile(c *fiber.Ctx) error {
	file, err := getOwnedFile(c)
	if err != nil {
		return repoErrorResponse(c, err)
	}
	return c.JSON(file)
}

// HandleDeleteFile removes a file record (and its shares, via cascade).
func HandleDeleteFile(c *fiber.Ctx) error {
	file, err := getOwnedFile(c)
	if err != nil {
		return repoErrorResponse(c, err)
	}
	if err := repository.GetGlobalRepositories().File.Delete(file.ID); err != nil {
		return repoErrorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleShareFile issues a public sharing grant for a file the user owns.
func HandleShareFile(c *fiber.Ctx) error {
	file, err := getOwnedFile(c)
	if err != nil {
		return repoErrorResponse(c, err)
	}
	share, err := repository.GetGlobalRepositories().File.Share(middleware.UserID(c), file.ID)
	if err != nil {
		return repoErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(share)
}

// HandleListShares returns the user's sharing grants.
func HandleListShares(c *fiber.Ctx) error {
	shares, err := repository.GetGlobalRepositories().File.ListShares(middleware.UserID(c))
	if err != nil {
		return repoErrorResponse(c, err)
	}
	return c.JSON(shares)
}

// HandleGetSharedFile resolves a share id to the shared file. Public route.
func HandleGetSharedFile(c *fiber.Ctx) error {
	share, err := repository.GetGlobalRepositories().File.GetShare(c.Params("id"))
	if err != nil {
		return repoErrorResponse(c, err)
	}
	return c.JSON(share)
}

// HandleUnshareFile revokes a sharing grant.
func HandleUnshareFile(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	share, err := repos.File.GetShare(c.Params("id"))
	if err != nil {
		return repoErrorResponse(c, err)
	}
	if share.UserID != middleware.UserID(c) {
		return repoErrorResponse(c, repository.ErrNotFound)
	}
	if err := repos.File.Unshare(share.ID); err != nil {
		return repoErrorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func getOwnedFile(c *fiber.Ctx) (*models.UserFile, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	file, err := repository.GetGlobalRepositories().File.GetByID(uint(id))
	if err != nil {
		return nil, err
	}
	if file.UserID != middleware.UserID(c) {
		return nil, repository.ErrNotFound
	}
	return file, nil
}
