package models

import "time"

type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	Username      string    `json:"username" bson:"username"`
	Email         string    `json:"email" bson:"email"`
	Password      string    `json:"-" bson:"password"`
	Role          []string  `json:"role" bson:"role"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
	LastLogin     time.Time `json:"last_login" bson:"last_login"`
	IsVerified    bool      `json:"is_verified" bson:"is_verified"`
	EmailVerified bool      `json:"email_verified" bson:"email_verified"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"refreshexp" bson:"refresh_expiry"`
}

// UserProfile carries the public profile plus one role-specific payload.
// Exactly one of the role payloads is non-nil, selected by Role.
type UserProfile struct {
	UserID          string            `json:"id" bson:"userid"`
	Email           string            `json:"email" bson:"email"`
	Role            string            `json:"role" bson:"role"`
	FullName        string            `json:"full_name" bson:"full_name"`
	IsVerified      bool              `json:"is_verified" bson:"is_verified"`
	AvatarURL       string            `json:"avatar_url" bson:"avatar_url"`
	Socials         map[string]string `json:"socials,omitempty" bson:"socials,omitempty"`
	FavoriteArtists []string          `json:"favorite_artists" bson:"favorite_artists"`
	Theme           string            `json:"theme" bson:"theme"`

	ArtistProfile   *ArtistProfile   `json:"artist_profile,omitempty" bson:"artist_profile,omitempty"`
	BookerProfile   *BookerProfile   `json:"booker_profile,omitempty" bson:"booker_profile,omitempty"`
	IndustryProfile *IndustryProfile `json:"industry_profile,omitempty" bson:"industry_profile,omitempty"`
	GuestProfile    *GuestProfile    `json:"guest_profile,omitempty" bson:"guest_profile,omitempty"`
}

type ArtistProfile struct {
	Alias           string            `json:"alias" bson:"alias"`
	PerformanceType string            `json:"performance_type" bson:"performance_type"`
	Location        string            `json:"location" bson:"location"`
	Genres          []string          `json:"genres" bson:"genres"`
	BPMMin          int               `json:"bpm_min" bson:"bpm_min"`
	BPMMax          int               `json:"bpm_max" bson:"bpm_max"`
	Socials         map[string]string `json:"socials,omitempty" bson:"socials,omitempty"`
}

type BookerProfile struct {
	Organization string `json:"organization" bson:"organization"`
	VenueType    string `json:"venue_type" bson:"venue_type"`
	Location     string `json:"location" bson:"location"`
	Capacity     int    `json:"capacity" bson:"capacity"`
	Website      string `json:"website" bson:"website"`
}

type IndustryProfile struct {
	Organization  string `json:"organization" bson:"organization"`
	Website       string `json:"website" bson:"website"`
	ContactEmail  string `json:"contact_email" bson:"contact_email"`
	DemoSubmitURL string `json:"demo_submit_url,omitempty" bson:"demo_submit_url,omitempty"` // label role only
}

type GuestProfile struct {
	PreferredGenres []string `json:"preferred_genres" bson:"preferred_genres"`
}

// ArtistRoles etc. group the nine role strings onto their payload shape.
var (
	ArtistRoles   = []string{"artist", "creative", "performer"}
	BookerRoles   = []string{"booker"}
	IndustryRoles = []string{"label", "manager", "provider"}
	GuestRoles    = []string{"guest", "fan"}
)
