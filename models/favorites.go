package models

// Favorite records one user following one artist. The profile's
// favorite_artists list is the fast read path; this collection is the
// audit trail behind it.
type Favorite struct {
	UserID     string `bson:"userid" json:"userid"`
	ArtistSlug string `bson:"artist_slug" json:"artistSlug"`
	CreatedAt  int64  `bson:"created_at" json:"createdAt"`
}
