package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skilllink/cmd/api/auth"
	"skilllink/cmd/api/dto"
	"skilllink/cmd/api/services"
	"skilllink/models"
)

// ViewPostsHandler godoc
// @Summary      List posts
// @Description  Returns both collections (offers, requests) in canonical shape
// @Tags         posts
// @Produce      json
// @Success      200  {object}  dto.BoardResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /posts [get]
func ViewPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		board, err := svc.View()
		if err != nil {
			fail(c, http.StatusInternalServerError, "Server error while loading posts.")
			return
		}
		offers := board.Offers
		if offers == nil {
			offers = []models.Post{}
		}
		requests := board.Requests
		if requests == nil {
			requests = []models.Post{}
		}
		c.JSON(http.StatusOK, dto.BoardResponseDTO{Success: true, Offers: offers, Requests: requests})
	}
}

// UpdatePostHandler godoc
// @Summary      Update a post
// @Description  Overwrites skill/category/description of the caller's own post
// @Tags         posts
// @Security     BearerAuth
// @Param        id    path  int               true  "Post id"
// @Param        body  body  dto.PostInputDTO  true  "New field values"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /posts/{id} [put]
func UpdatePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := postIDParam(c)
		identity, _ := auth.IdentityFromHeader(c)

		// A malformed body degrades to empty fields so validation produces
		// the regular field-required responses.
		var body dto.PostInputDTO
		_ = c.ShouldBindJSON(&body)

		err := svc.Update(id, identity.ID, services.PostInput{
			Skill:       body.Skill,
			Category:    body.Category,
			Description: body.Description,
		})
		if err != nil {
			respondMutationError(c, err, mutationFailureMessages{
				missingOwner: "This post cannot be edited (missing owner id).",
				notOwner:     "You are not allowed to edit this post.",
				serverError:  "Server error while updating post.",
			})
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Success: true, Message: "Post updated successfully."})
	}
}

// DeletePostHandler godoc
// @Summary      Delete a post
// @Description  Removes the caller's own post from its collection
// @Tags         posts
// @Security     BearerAuth
// @Param        id  path  int  true  "Post id"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /posts/{id} [delete]
func DeletePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := postIDParam(c)
		identity, _ := auth.IdentityFromHeader(c)

		if err := svc.Delete(id, identity.ID); err != nil {
			respondMutationError(c, err, mutationFailureMessages{
				missingOwner: "This post cannot be deleted (missing owner id).",
				notOwner:     "You are not allowed to delete this post.",
				serverError:  "Server error while deleting post.",
			})
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Success: true, Message: "Post deleted successfully."})
	}
}

// CreateOfferHandler godoc
// @Summary      Create an offer
// @Description  Adds a new offer; anonymous posts are allowed but stay immutable
// @Tags         posts
// @Param        body  body  dto.PostInputDTO  true  "Offer fields"
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /offers [post]
func CreateOfferHandler(svc *services.PostService) gin.HandlerFunc {
	return createPostHandler(svc, models.CollectionOffers, "Offer added.")
}

// CreateRequestHandler godoc
// @Summary      Create a request
// @Description  Adds a new request; anonymous posts are allowed but stay immutable
// @Tags         posts
// @Param        body  body  dto.PostInputDTO  true  "Request fields"
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /requests [post]
func CreateRequestHandler(svc *services.PostService) gin.HandlerFunc {
	return createPostHandler(svc, models.CollectionRequests, "Request added.")
}

func createPostHandler(svc *services.PostService, collection models.Collection, successMsg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, _ := auth.IdentityFromHeader(c)

		var body dto.PostInputDTO
		_ = c.ShouldBindJSON(&body)

		err := svc.Create(collection, identity.ID, identity.Username, services.PostInput{
			Skill:       body.Skill,
			Category:    body.Category,
			Description: body.Description,
		})
		if err != nil {
			var validationErr *services.ValidationError
			if errors.As(err, &validationErr) {
				fail(c, http.StatusBadRequest, validationErr.Message)
				return
			}
			fail(c, http.StatusInternalServerError, "Server error while adding post.")
			return
		}
		c.JSON(http.StatusCreated, dto.MessageResponseDTO{Success: true, Message: successMsg})
	}
}
