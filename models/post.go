package models

// Collection names a physical post store. A post's kind (offer vs request)
// is implicit in the collection it lives in and never changes.
type Collection string

const (
	CollectionOffers   Collection = "offers"
	CollectionRequests Collection = "requests"
)

// Post represents one offer-to-teach or request-to-learn record.
//
// OwnerID is an opaque identity token compared as a trimmed string; legacy
// records may have an empty OwnerID, in which case the post can never be
// mutated by anyone. DisplayName is persisted under the legacy "username"
// key and may be healed from an even older "name" field by the normalizer.
type Post struct {
	ID          int64  `json:"id"`
	OwnerID     string `json:"userId"`
	DisplayName string `json:"username"`
	Skill       string `json:"skill"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Board is the canonical, id-complete view of both collections.
type Board struct {
	Offers   []Post `json:"offers"`
	Requests []Post `json:"requests"`
}
