package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/telecloudhq/telecloud/app/models"
	"github.com/telecloudhq/telecloud/app/repository"
	"github.com/telecloudhq/telecloud/internal/pkg/middleware"
)

type createFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
}

type moveFolderRequest struct {
	ParentID *string `json:"parent_id"`
}

type renameFolderRequest struct {
	Name string `json:"name"`
}

// HandleCreateFolder creates a folder for the authenticated user.
func HandleCreateFolder(c *fiber.Ctx) error {
	var req createFolderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	folder := &models.Folder{
		Name:     req.Name,
		UserID:   middleware.UserID(c),
		ParentID: req.ParentID,
	}
	if err := repository.GetGlobalRepositories().Folder.Create(folder); err != nil {
		return repoErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(folder)
}

// HandleListFolders returns all folders of the authenticated user, parents first.
func HandleListFolders(c *fiber.Ctx) error {
	folders, err := repository.GetGlobalRepositories().Folder.ListByUserID(middleware.UserID(c))
	if err != nil {
		return repoErrorResponse(c, err)
	}
	return c.JSON(folders)
}

// HandleGetFolder returns one folder with its direct children and files.
func HandleGetFolder(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	folder, err := getOwnedFolder(c, c.Params("id"))
	if err != nil {
		return repoErrorResponse(c, err)
	}
	children, err := repos.Folder.ListChildren(folder.ID)
	if err != nil {
		return repoErrorResponse(c, err)
	}
	files, err := repos.File.ListByFolderID(folder.ID)
	if err != nil {
		return repoErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"folder":   folder,
		"children": children,
		"files":    files,
	})
}

// HandleRenameFolder renames a folder.
func HandleRenameFolder(c *fiber.Ctx) error {
	var req renameFolderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	folder, err := getOwnedFolder(c, c.Params("id"))
	if err != nil {
		return repoErrorResponse(c, err)
	}
	if err := repository.GetGlobalRepositories().Folder.Rename(folder.ID, req.Name); err != nil {
		return repoErrorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleMoveFolder reparents a folder. Moves that would create a cycle are
// rejected with 422.
func HandleMoveFolder(c *fiber.Ctx) error {
	var req moveFolderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	folder, err := getOwnedFolder(c, c.Params("id"))
	if err != nil {
		return repoErrorResponse(c, err)
	}
	if err := repository.GetGlobalRepositories().Folder.Move(folder.ID, req.ParentID); err != nil {
		return repoErrorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteFolder deletes a folder and, via cascade, its subtree and files.
func HandleDeleteFolder(c *fiber.Ctx) error {
	folder, err := getOwnedFolder(c, c.Params("id"))
	if err != nil {
		return repoErrorResponse(c, err)
	}
	if err := repository.GetGlobalRepositories().Folder.Delete(folder.ID); err != nil {
		return repoErrorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// getOwnedFolder loads a folder and hides other users' folders behind 404.
func getOwnedFolder(c *fiber.Ctx, id string) (*models.Folder, error) {
	folder, err := repository.GetGlobalRepositories().Folder.GetByID(id)
	if err != nil {
		return nil, err
	}
	if folder.UserID != middleware.UserID(c) {
		return nil, repository.ErrNotFound
	}
	return folder, nil
}
