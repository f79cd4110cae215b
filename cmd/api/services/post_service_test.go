package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skilllink/models"
	"skilllink/repositories"
)

func seedBoard(t *testing.T, offers, requests string) *PostService {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "offers.json"), []byte(offers), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "requests.json"), []byte(requests), 0o644))
	return NewPostService(repositories.NewPostRepository(repositories.NewFileStore(dir)))
}

const seededOffer = `[{"id": 11, "userId": "u1", "username": "pavian", "skill": "OldSkill", "category": "OldCat", "description": "Old description text"}]`

func validInput() PostInput {
	return PostInput{
		Skill:       "Python",
		Category:    "Programming",
		Description: "This is a valid description.",
	}
}

func TestUpdateValidationOrder(t *testing.T) {
	svc := seedBoard(t, seededOffer, `[]`)

	testCases := []struct {
		name  string
		input PostInput
		want  string
	}{
		{
			name:  "all blank reports skill first",
			input: PostInput{},
			want:  "Skill is required.",
		},
		{
			name:  "blank category",
			input: PostInput{Skill: "Python", Description: "Long enough description"},
			want:  "Category is required.",
		},
		{
			name:  "blank description",
			input: PostInput{Skill: "Python", Category: "Programming"},
			want:  "Description is required.",
		},
		{
			name:  "skill too long",
			input: PostInput{Skill: strings.Repeat("A", 31), Category: "Programming", Description: "Valid long enough description"},
			want:  "Skill must be 30 characters or less.",
		},
		{
			name:  "description too short",
			input: PostInput{Skill: "Python", Category: "Programming", Description: "short"},
			want:  "Description must be at least 10 characters.",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			err := svc.Update(11, "u1", testCase.input)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, testCase.want, validationErr.Message)
		})
	}
}

func TestUpdateHappyPath(t *testing.T) {
	svc := seedBoard(t, seededOffer, `[]`)

	require.NoError(t, svc.Update(11, "u1", validInput()))

	board, err := svc.View()
	require.NoError(t, err)
	require.Len(t, board.Offers, 1)
	got := board.Offers[0]
	assert.Equal(t, "Python", got.Skill)
	assert.Equal(t, "Programming", got.Category)
	assert.Equal(t, "This is a valid description.", got.Description)
	assert.Equal(t, int64(11), got.ID)
	assert.Equal(t, "u1", got.OwnerID)
	assert.Equal(t, "pavian", got.DisplayName)
}

func TestUpdateTrimsFields(t *testing.T) {
	svc := seedBoard(t, seededOffer, `[]`)

	err := svc.Update(11, "u1", PostInput{
		Skill:       "  Python  ",
		Category:    " Programming ",
		Description: "  This is a valid description.  ",
	})
	require.NoError(t, err)

	board, err := svc.View()
	require.NoError(t, err)
	assert.Equal(t, "Python", board.Offers[0].Skill)
	assert.Equal(t, "This is a valid description.", board.Offers[0].Description)
}

func TestUpdateDeniedForNonOwner(t *testing.T) {
	svc := seedBoard(t, seededOffer, `[]`)

	err := svc.Update(11, "u2", validInput())
	assert.ErrorIs(t, err, ErrNotOwner)

	// post untouched on disk
	board, viewErr := svc.View()
	require.NoError(t, viewErr)
	assert.Equal(t, "OldSkill", board.Offers[0].Skill)
}

func TestUpdateAnonymousCaller(t *testing.T) {
	svc := seedBoard(t, seededOffer, `[]`)

	err := svc.Update(11, "", validInput())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestUpdateOwnerlessPostFailsClosed(t *testing.T) {
	svc := seedBoard(t, `[{"id": 22, "username": "someone", "skill": "X", "category": "Y", "description": "Long enough description"}]`, `[]`)

	err := svc.Update(22, "u1", validInput())
	assert.ErrorIs(t, err, ErrMissingOwner)
}

func TestUpdateAnonymousBeatsMissingOwner(t *testing.T) {
	svc := seedBoard(t, `[{"id": 22, "username": "someone", "skill": "X", "category": "Y", "description": "Long enough description"}]`, `[]`)

	// authentication is checked before ownership: 401, never 403
	err := svc.Update(22, "", validInput())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestUpdateNotFound(t *testing.T) {
	svc := seedBoard(t, seededOffer, `[]`)

	err := svc.Update(999999, "u1", validInput())
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestUpdateSearchesRequestsToo(t *testing.T) {
	svc := seedBoard(t, `[]`, `[{"id": 33, "userId": "u2", "username": "alex", "skill": "ReqSkill", "category": "ReqCat", "description": "Req description long enough"}]`)

	require.NoError(t, svc.Update(33, "u2", validInput()))

	board, err := svc.View()
	require.NoError(t, err)
	assert.Equal(t, "Python", board.Requests[0].Skill)
}

func TestDeleteHappyPath(t *testing.T) {
	svc := seedBoard(t,
		`[{"id": 11, "userId": "u1", "username": "pavian", "skill": "A", "category": "B", "description": "Long enough text"}, {"id": 12, "userId": "u1", "username": "pavian", "skill": "C", "category": "D", "description": "Long enough text"}]`,
		`[]`)

	require.NoError(t, svc.Delete(11, "u1"))

	board, err := svc.View()
	require.NoError(t, err)
	require.Len(t, board.Offers, 1)
	assert.Equal(t, int64(12), board.Offers[0].ID)
}

func TestDeletePreservesOrderOfRemaining(t *testing.T) {
	svc := seedBoard(t,
		`[{"id": 1, "userId": "u1", "username": "a", "skill": "s1", "category": "c", "description": "long enough one"},
		  {"id": 2, "userId": "u1", "username": "a", "skill": "s2", "category": "c", "description": "long enough two"},
		  {"id": 3, "userId": "u1", "username": "a", "skill": "s3", "category": "c", "description": "long enough three"}]`,
		`[]`)

	require.NoError(t, svc.Delete(2, "u1"))

	board, err := svc.View()
	require.NoError(t, err)
	require.Len(t, board.Offers, 2)
	assert.Equal(t, int64(1), board.Offers[0].ID)
	assert.Equal(t, int64(3), board.Offers[1].ID)
}

func TestDeleteDenials(t *testing.T) {
	seed := `[{"id": 11, "userId": "u1", "username": "pavian", "skill": "A", "category": "B", "description": "Long enough text"},
	          {"id": 22, "username": "someone", "skill": "X", "category": "Y", "description": "Long enough text"}]`

	t.Run("anonymous", func(t *testing.T) {
		svc := seedBoard(t, seed, `[]`)
		assert.ErrorIs(t, svc.Delete(11, ""), ErrNotLoggedIn)
	})

	t.Run("not owner", func(t *testing.T) {
		svc := seedBoard(t, seed, `[]`)
		assert.ErrorIs(t, svc.Delete(11, "u2"), ErrNotOwner)
	})

	t.Run("missing owner id", func(t *testing.T) {
		svc := seedBoard(t, seed, `[]`)
		assert.ErrorIs(t, svc.Delete(22, "u1"), ErrMissingOwner)
	})

	t.Run("not found leaves collections unchanged", func(t *testing.T) {
		svc := seedBoard(t, seed, `[]`)
		assert.ErrorIs(t, svc.Delete(999999, "u1"), ErrPostNotFound)

		board, err := svc.View()
		require.NoError(t, err)
		assert.Len(t, board.Offers, 2)
		assert.Empty(t, board.Requests)
	})
}

// brokenStore returns one mutable post but fails every write.
type brokenStore struct{}

func (brokenStore) Load(c models.Collection) ([]repositories.RawRecord, bool) {
	if c != models.CollectionOffers {
		return nil, false
	}
	return []repositories.RawRecord{{
		ID:          11,
		OwnerID:     []byte(`"u1"`),
		Username:    "pavian",
		Skill:       "A",
		Category:    "B",
		Description: "Long enough text",
	}}, false
}

func (brokenStore) Save(models.Collection, []models.Post) error {
	return errors.New("disk full")
}

func TestMutationsSurfaceStorageFailure(t *testing.T) {
	svc := NewPostService(repositories.NewPostRepository(brokenStore{}))

	updateErr := svc.Update(11, "u1", validInput())
	require.Error(t, updateErr)
	assert.NotErrorIs(t, updateErr, ErrPostNotFound)

	deleteErr := svc.Delete(11, "u1")
	require.Error(t, deleteErr)
	assert.NotErrorIs(t, deleteErr, ErrPostNotFound)
}

func TestCreateAppendsAndNormalizerAssignsID(t *testing.T) {
	svc := seedBoard(t, seededOffer, `[]`)

	err := svc.Create(models.CollectionRequests, "u2", "alex", PostInput{
		Skill:       "Piano",
		Category:    "Music",
		Description: "Looking for weekly lessons",
	})
	require.NoError(t, err)

	board, viewErr := svc.View()
	require.NoError(t, viewErr)
	require.Len(t, board.Requests, 1)
	got := board.Requests[0]
	assert.Equal(t, int64(12), got.ID)
	assert.Equal(t, "u2", got.OwnerID)
	assert.Equal(t, "alex", got.DisplayName)
}

func TestCreateValidatesInput(t *testing.T) {
	svc := seedBoard(t, `[]`, `[]`)

	err := svc.Create(models.CollectionOffers, "u1", "pavian", PostInput{})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Skill is required.", validationErr.Message)
}
