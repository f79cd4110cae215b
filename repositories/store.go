package repositories

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"skilllink/models"
)

// RawRecord is a stored post as it appears on disk, before normalization.
// Creation paths (including legacy ones) may omit the id, use "name" instead
// of "username", or store the owner id as a JSON number, so every field is
// decoded leniently.
type RawRecord struct {
	ID          int64           `json:"id"`
	OwnerID     json.RawMessage `json:"userId"`
	Username    string          `json:"username"`
	Name        string          `json:"name"`
	Skill       string          `json:"skill"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// OwnerString returns the record's owner id as a trimmed string, matching the
// string-based identity comparison used by the ownership gate. Absent and
// null owners map to "".
func (r RawRecord) OwnerString() string {
	if len(r.OwnerID) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(r.OwnerID, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n float64
	if err := json.Unmarshal(r.OwnerID, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return ""
}

// FileStore reads and writes each post collection as one JSON file under a
// data directory. It is the only component that touches the filesystem for
// posts; callers always see whole collections.
type FileStore struct {
	dataDir string
}

func NewFileStore(dataDir string) *FileStore {
	return &FileStore{dataDir: dataDir}
}

func (s *FileStore) path(c models.Collection) string {
	return filepath.Join(s.dataDir, string(c)+".json")
}

// Load reads one collection. A missing, unreadable, or unparseable file
// yields an empty slice; valid JSON that is not an array also yields an empty
// slice but reports coerced=true so the normalizer persists the correction.
// Load never fails: read problems are treated as an empty collection.
func (s *FileStore) Load(c models.Collection) (records []RawRecord, coerced bool) {
	data, err := os.ReadFile(s.path(c))
	if err != nil || len(data) == 0 {
		return nil, false
	}
	if err := json.Unmarshal(data, &records); err != nil {
		if json.Valid(data) {
			// parseable, but corrupted into something other than a post array
			return nil, true
		}
		return nil, false
	}
	return records, false
}

// Save overwrites one collection with the full canonical slice. This is a
// whole-file replacement; failures propagate to the caller, which reports
// them as a server error.
func (s *FileStore) Save(c models.Collection, posts []models.Post) error {
	if posts == nil {
		posts = []models.Post{}
	}
	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path(c), data, 0o644)
}
