package controllers

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telecloudhq/telecloud/app/repository"
)

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", firstNonEmpty("a", "b"))
	assert.Equal(t, "b", firstNonEmpty("", "b"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}

func TestRepoErrorResponseStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{repository.ErrNotFound, fiber.StatusNotFound},
		{fmt.Errorf("%w: users.email", repository.ErrConstraintViolation), fiber.StatusConflict},
		{fmt.Errorf("%w: missing user", repository.ErrForeignKeyViolation), fiber.StatusUnprocessableEntity},
		{fmt.Errorf("%w: folder f1", repository.ErrCycleDetected), fiber.StatusUnprocessableEntity},
		{fmt.Errorf("%w: name required", repository.ErrValidation), fiber.StatusBadRequest},
		{fmt.Errorf("disk on fire"), fiber.StatusInternalServerError},
	}

	for i, tc := range cases {
		app := fiber.New()
		err := tc.err
		app.Get("/", func(c *fiber.Ctx) error {
			return repoErrorResponse(c, err)
		})

		resp, errTest := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, errTest)
		assert.Equalf(t, tc.status, resp.StatusCode, "case %d (%v)", i, tc.err)
	}
}
