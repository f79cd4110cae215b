package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skilllink/cmd/api/dto"
	"skilllink/cmd/api/services"
)

// postIDParam parses the path-carried post id. An unparseable id maps to 0,
// which matches no canonical post, so the request falls through to the
// regular not-found path after validation has had its turn.
func postIDParam(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponseDTO{Success: false, Message: message})
}

// mutationFailureMessages holds the per-operation texts for gate denials and
// server faults; update and delete share status mapping but not wording.
type mutationFailureMessages struct {
	missingOwner string
	notOwner     string
	serverError  string
}

// respondMutationError maps a post mutation error onto the exact status/body
// contract: 400 for validation, 401/403 for gate denials, 404 for a missing
// post, 500 for storage faults.
func respondMutationError(c *gin.Context, err error, msgs mutationFailureMessages) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		fail(c, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, services.ErrNotLoggedIn):
		fail(c, http.StatusUnauthorized, "Please log in.")
	case errors.Is(err, services.ErrMissingOwner):
		fail(c, http.StatusForbidden, msgs.missingOwner)
	case errors.Is(err, services.ErrNotOwner):
		fail(c, http.StatusForbidden, msgs.notOwner)
	case errors.Is(err, services.ErrPostNotFound):
		fail(c, http.StatusNotFound, "Post not found.")
	default:
		fail(c, http.StatusInternalServerError, msgs.serverError)
	}
}
