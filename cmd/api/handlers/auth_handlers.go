package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skilllink/cmd/api/auth"
	"skilllink/cmd/api/dto"
	"skilllink/cmd/api/services"
)

// RegisterHandler godoc
// @Summary      Register an account
// @Description  Creates a user and returns a login token for it
// @Tags         auth
// @Param        body  body  dto.CredentialsDTO  true  "Credentials"
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.AuthResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /register [post]
func RegisterHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CredentialsDTO
		_ = c.ShouldBindJSON(&body)

		identity, token, err := svc.Register(body.Username, body.Password)
		if err != nil {
			var validationErr *services.ValidationError
			switch {
			case errors.As(err, &validationErr):
				fail(c, http.StatusBadRequest, validationErr.Message)
			case errors.Is(err, services.ErrUsernameTaken):
				fail(c, http.StatusConflict, "Username is already taken.")
			default:
				fail(c, http.StatusInternalServerError, "Server error while registering.")
			}
			return
		}

		c.JSON(http.StatusCreated, dto.AuthResponseDTO{
			Success: true,
			Token:   token,
			User:    dto.UserDTO{ID: identity.ID, Username: identity.Username},
		})
	}
}

// LoginHandler godoc
// @Summary      Log in
// @Description  Checks credentials and returns a login token
// @Tags         auth
// @Param        body  body  dto.CredentialsDTO  true  "Credentials"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.AuthResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /login [post]
func LoginHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CredentialsDTO
		_ = c.ShouldBindJSON(&body)

		identity, token, err := svc.Login(body.Username, body.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				fail(c, http.StatusUnauthorized, "Invalid username or password.")
				return
			}
			fail(c, http.StatusInternalServerError, "Server error while logging in.")
			return
		}

		c.JSON(http.StatusOK, dto.AuthResponseDTO{
			Success: true,
			Token:   token,
			User:    dto.UserDTO{ID: identity.ID, Username: identity.Username},
		})
	}
}

// MeHandler godoc
// @Summary      Current user
// @Description  Resolves the Bearer token against the user store
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.AuthResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /me [get]
func MeHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			fail(c, http.StatusUnauthorized, "Please log in.")
			return
		}
		identity, err := auth.Parse(token)
		if err != nil {
			fail(c, http.StatusUnauthorized, "Please log in.")
			return
		}

		user, err := svc.Profile(identity)
		if err != nil {
			fail(c, http.StatusUnauthorized, "Please log in.")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"user":    dto.UserDTO{ID: user.ID, Username: user.Username},
		})
	}
}
