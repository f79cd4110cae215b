package repositories

import (
	"strings"

	"skilllink/models"
)

// Store is the persistence surface PostRepository runs on. *FileStore is the
// production implementation; tests substitute counting fakes.
type Store interface {
	Load(c models.Collection) (records []RawRecord, coerced bool)
	Save(c models.Collection, posts []models.Post) error
}

// PostRepository is the sole authority for the canonical post shape. Every
// read path goes through NormalizeAndLoad so that legacy records are healed
// exactly once and the fix is persisted.
type PostRepository struct {
	store Store
}

func NewPostRepository(store Store) *PostRepository {
	return &PostRepository{store: store}
}

// NormalizeAndLoad loads both collections and reconciles each record into the
// canonical post shape:
//
//   - display name: "username" else legacy "name" else ""
//   - skill/category/description default to ""
//   - missing ids are assigned max(id)+1 in offers-then-requests order, with
//     the max taken across the union of both collections
//
// If a collection had to be coerced back into an array, or any id was
// assigned, both collections are persisted so id numbering stays consistent
// across restarts. The returned error is a write-back failure.
func (r *PostRepository) NormalizeAndLoad() (models.Board, error) {
	rawOffers, offersCoerced := r.store.Load(models.CollectionOffers)
	rawRequests, requestsCoerced := r.store.Load(models.CollectionRequests)

	offers := canonicalize(rawOffers)
	requests := canonicalize(rawRequests)

	var maxID int64
	for _, p := range offers {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	for _, p := range requests {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	changed := offersCoerced || requestsCoerced
	for _, list := range [][]models.Post{offers, requests} {
		for i := range list {
			if list[i].ID == 0 {
				maxID++
				list[i].ID = maxID
				changed = true
			}
		}
	}

	board := models.Board{Offers: offers, Requests: requests}
	if changed {
		if err := r.store.Save(models.CollectionOffers, offers); err != nil {
			return models.Board{}, err
		}
		if err := r.store.Save(models.CollectionRequests, requests); err != nil {
			return models.Board{}, err
		}
	}
	return board, nil
}

// Save persists one collection in canonical shape.
func (r *PostRepository) Save(c models.Collection, posts []models.Post) error {
	return r.store.Save(c, posts)
}

func canonicalize(records []RawRecord) []models.Post {
	posts := make([]models.Post, 0, len(records))
	for _, rec := range records {
		name := rec.Username
		if name == "" {
			name = rec.Name
		}
		posts = append(posts, models.Post{
			ID:          rec.ID,
			OwnerID:     rec.OwnerString(),
			DisplayName: name,
			Skill:       rec.Skill,
			Category:    rec.Category,
			Description: rec.Description,
		})
	}
	return posts
}

// AppendRaw appends a newly created post to a collection without assigning an
// id; the normalizer assigns one on the next read. The rest of the collection
// is written back in canonical shape.
func (r *PostRepository) AppendRaw(c models.Collection, post models.Post) error {
	board, err := r.NormalizeAndLoad()
	if err != nil {
		return err
	}
	list := board.Offers
	if c == models.CollectionRequests {
		list = board.Requests
	}
	post.Skill = strings.TrimSpace(post.Skill)
	post.Category = strings.TrimSpace(post.Category)
	post.Description = strings.TrimSpace(post.Description)
	return r.store.Save(c, append(list, post))
}
