package services

import (
	"errors"
	"strings"

	"skilllink/cmd/internal/logger"
	"skilllink/models"
	"skilllink/repositories"
)

var ErrPostNotFound = errors.New("post_not_found")

// ValidationError is a user-fixable input problem. Message is the exact text
// shown to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// PostInput carries the mutable fields of a post.
type PostInput struct {
	Skill       string
	Category    string
	Description string
}

const maxSkillLen = 30
const minDescriptionLen = 10

// PostService orchestrates the post mutation operations: normalize+load,
// locate the target across both collections, run the ownership gate, apply
// the change, and persist only the collection that holds the post. State is
// loaded from disk on every call; there is no process-wide cache.
type PostService struct {
	repo *repositories.PostRepository
}

func NewPostService(repo *repositories.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// View returns both canonical collections. No authentication required.
func (s *PostService) View() (models.Board, error) {
	return s.repo.NormalizeAndLoad()
}

// validatePostInput checks the mutation payload in a fixed order, first
// failure wins. Returned values are trimmed.
func validatePostInput(in PostInput) (PostInput, error) {
	if strings.TrimSpace(in.Skill) == "" {
		return PostInput{}, &ValidationError{Message: "Skill is required."}
	}
	if strings.TrimSpace(in.Category) == "" {
		return PostInput{}, &ValidationError{Message: "Category is required."}
	}
	if strings.TrimSpace(in.Description) == "" {
		return PostInput{}, &ValidationError{Message: "Description is required."}
	}

	clean := PostInput{
		Skill:       strings.TrimSpace(in.Skill),
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
	}

	if len([]rune(clean.Skill)) > maxSkillLen {
		return PostInput{}, &ValidationError{Message: "Skill must be 30 characters or less."}
	}
	if len([]rune(clean.Description)) < minDescriptionLen {
		return PostInput{}, &ValidationError{Message: "Description must be at least 10 characters."}
	}
	return clean, nil
}

// Update overwrites skill/category/description of the post with the given id.
// Validation runs before any disk access; the ownership gate runs only after
// the post is located, so a missing post reports not-found even to anonymous
// callers. Id, owner and collection never change.
func (s *PostService) Update(id int64, requesterID string, in PostInput) error {
	clean, err := validatePostInput(in)
	if err != nil {
		logger.WarnWithFields("update_post validation failed", logger.Fields{"id": id, "reason": err.Error()})
		return err
	}

	board, err := s.repo.NormalizeAndLoad()
	if err != nil {
		return err
	}

	for _, col := range []struct {
		name models.Collection
		list []models.Post
	}{
		{models.CollectionOffers, board.Offers},
		{models.CollectionRequests, board.Requests},
	} {
		for i := range col.list {
			if col.list[i].ID != id {
				continue
			}

			if err := authorizeOwner(col.list[i], requesterID); err != nil {
				logger.WarnWithFields("update_post denied", logger.Fields{"id": id, "reason": err.Error()})
				return err
			}

			col.list[i].Skill = clean.Skill
			col.list[i].Category = clean.Category
			col.list[i].Description = clean.Description

			if err := s.repo.Save(col.name, col.list); err != nil {
				return err
			}
			logger.InfoWithFields("update_post succeeded", logger.Fields{"id": id, "collection": string(col.name)})
			return nil
		}
	}

	logger.WarnWithFields("update_post target missing", logger.Fields{"id": id})
	return ErrPostNotFound
}

// Delete removes the post with the given id from its collection, preserving
// the order of the remaining posts. Same locate-then-gate sequence as Update.
func (s *PostService) Delete(id int64, requesterID string) error {
	board, err := s.repo.NormalizeAndLoad()
	if err != nil {
		return err
	}

	for _, col := range []struct {
		name models.Collection
		list []models.Post
	}{
		{models.CollectionOffers, board.Offers},
		{models.CollectionRequests, board.Requests},
	} {
		for i := range col.list {
			if col.list[i].ID != id {
				continue
			}

			if err := authorizeOwner(col.list[i], requesterID); err != nil {
				logger.WarnWithFields("delete_post denied", logger.Fields{"id": id, "reason": err.Error()})
				return err
			}

			remaining := append(col.list[:i:i], col.list[i+1:]...)
			if err := s.repo.Save(col.name, remaining); err != nil {
				return err
			}
			logger.InfoWithFields("delete_post succeeded", logger.Fields{"id": id, "collection": string(col.name)})
			return nil
		}
	}

	logger.WarnWithFields("delete_post target missing", logger.Fields{"id": id})
	return ErrPostNotFound
}

// Create appends a new post to the given collection. The record is written
// without an id; the normalizer assigns one on the next read, keeping id
// numbering in a single place. Anonymous callers may create posts (the
// resulting record is ownerless and therefore immutable).
func (s *PostService) Create(c models.Collection, ownerID, displayName string, in PostInput) error {
	clean, err := validatePostInput(in)
	if err != nil {
		logger.WarnWithFields("create_post validation failed", logger.Fields{"collection": string(c), "reason": err.Error()})
		return err
	}

	post := models.Post{
		OwnerID:     strings.TrimSpace(ownerID),
		DisplayName: strings.TrimSpace(displayName),
		Skill:       clean.Skill,
		Category:    clean.Category,
		Description: clean.Description,
	}
	if err := s.repo.AppendRaw(c, post); err != nil {
		return err
	}
	logger.InfoWithFields("create_post succeeded", logger.Fields{"collection": string(c)})
	return nil
}
