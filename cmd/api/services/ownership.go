package services

import (
	"errors"
	"strings"

	"skilllink/models"
)

var (
	// ErrNotLoggedIn means the caller presented no usable identity (401).
	ErrNotLoggedIn = errors.New("not_logged_in")
	// ErrMissingOwner means the post has no owner id, so nobody may mutate
	// it (403).
	ErrMissingOwner = errors.New("missing_owner_id")
	// ErrNotOwner means the caller is authenticated but does not own the
	// post (403).
	ErrNotOwner = errors.New("not_owner")
)

// authorizeOwner decides whether requesterID may mutate post. Checks run in
// a fixed order with the first failure winning, so an unauthenticated caller
// always sees ErrNotLoggedIn even against an ownerless post. Identity is an
// opaque token compared as a trimmed string, never as a number.
func authorizeOwner(post models.Post, requesterID string) error {
	requester := strings.TrimSpace(requesterID)
	owner := strings.TrimSpace(post.OwnerID)

	if requester == "" {
		return ErrNotLoggedIn
	}
	if owner == "" {
		return ErrMissingOwner
	}
	if owner != requester {
		return ErrNotOwner
	}
	return nil
}
