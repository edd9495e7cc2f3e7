package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	gothfiber "github.com/shareed2k/goth_fiber"

	"github.com/telecloudhq/telecloud/app/models"
	"github.com/telecloudhq/telecloud/app/repository"
	"github.com/telecloudhq/telecloud/internal/pkg/middleware"
	"github.com/telecloudhq/telecloud/internal/pkg/session"
)

const sessionLifetime = 24 * time.Hour

// HandleBeginAuth starts the provider flow (e.g. GET /auth/google).
func HandleBeginAuth(c *fiber.Ctx) error {
	return gothfiber.BeginAuthHandler(c)
}

// HandleOAuthCallback completes the provider flow and logs the user in.
// It upserts the provider Account, creates the User on first login, issues a
// persisted Session row and mirrors it into the cookie session.
func HandleOAuthCallback(c *fiber.Ctx) error {
	u, err := gothfiber.CompleteUserAuth(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "oauth failed",
			"message": err.Error(),
		})
	}

	repos := repository.GetGlobalRepositories()

	var appUser *models.User
	account, err := repos.Account.GetByProvider(u.Provider, u.UserID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		// First login with this provider. Attach to an existing user by
		// email when possible, otherwise create one.
		if u.Email != "" {
			appUser, _ = repos.User.GetByEmail(u.Email)
		}
		if appUser == nil {
			appUser = &models.User{
				Name:          firstNonEmpty(u.Name, u.NickName, u.Email, "User"),
				Email:         u.Email,
				ImageURL:      u.AvatarURL,
				EmailVerified: u.Email != "",
			}
			if err := repos.User.Create(appUser); err != nil {
				return repoErrorResponse(c, err)
			}
		}
		account = &models.Account{
			UserID:            appUser.ID,
			ProviderID:        u.Provider,
			ProviderAccountID: u.UserID,
			AccessToken:       u.AccessToken,
			RefreshToken:      u.RefreshToken,
			IDToken:           u.IDToken,
		}
		if !u.ExpiresAt.IsZero() {
			t := u.ExpiresAt
			account.AccessTokenExpiresAt = &t
		}
		if err := repos.Account.Create(account); err != nil {
			return repoErrorResponse(c, err)
		}
	case err == nil:
		// Known account: refresh tokens and load the linked user.
		account.AccessToken = u.AccessToken
		account.RefreshToken = u.RefreshToken
		account.IDToken = u.IDToken
		if !u.ExpiresAt.IsZero() {
			t := u.ExpiresAt
			account.AccessTokenExpiresAt = &t
		} else {
			account.AccessTokenExpiresAt = nil
		}
		if err := repos.Account.Update(account); err != nil {
			return repoErrorResponse(c, err)
		}
		appUser, err = repos.User.GetByID(account.UserID)
		if err != nil {
			return repoErrorResponse(c, err)
		}
	default:
		return repoErrorResponse(c, err)
	}

	// Persist the login as a Session row; the cookie session references it.
	token, err := generateSessionToken()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "token generation failed"})
	}
	expiresAt := time.Now().Add(sessionLifetime)
	dbSession := &models.Session{
		UserID:    appUser.ID,
		Token:     token,
		ExpiresAt: &expiresAt,
		IPAddress: c.IP(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
	}
	if err := repos.Session.Create(dbSession); err != nil {
		return repoErrorResponse(c, err)
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session init failed"})
	}
	// Both keys go through one handle so the session saves exactly once.
	sess.Set(middleware.SessionUserID, appUser.ID)
	sess.Set(middleware.SessionTokenKey, token)
	if err := sess.Save(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session save failed"})
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleLogout revokes the persisted session and clears the cookie session.
func HandleLogout(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	if token := session.GetSessionValue(c, middleware.SessionTokenKey); token != "" {
		_ = repos.Session.DeleteByToken(token)
	}
	if store := session.GetSessionStore(); store != nil {
		if sess, err := store.Get(c); err == nil {
			_ = sess.Destroy()
		}
	}
	_ = gothfiber.Logout(c)

	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleGetMe returns the authenticated user.
func HandleGetMe(c *fiber.Ctx) error {
	user, err := repository.GetGlobalRepositories().User.GetByID(middleware.UserID(c))
	if err != nil {
		return repoErrorResponse(c, err)
	}
	return c.JSON(user)
}

func generateSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
