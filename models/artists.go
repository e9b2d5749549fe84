package models

type BPMRange struct {
	Min int `bson:"min" json:"min"`
	Max int `bson:"max" json:"max"`
}

type Artist struct {
	ArtistID     string            `bson:"artistid,omitempty" json:"artistid"`
	Slug         string            `bson:"slug" json:"slug"`
	Name         string            `bson:"name" json:"name"`
	Type         string            `bson:"type" json:"type"` // dj, live, hybrid
	Genres       []string          `bson:"genres" json:"genres"`
	BPMRange     BPMRange          `bson:"bpmRange" json:"bpmRange"`
	Location     string            `bson:"location" json:"location"`
	Country      string            `bson:"country" json:"country"`
	Bio          string            `bson:"bio" json:"bio"`
	Image        string            `bson:"image" json:"image"`
	Socials      map[string]string `bson:"socials,omitempty" json:"socials,omitempty"`
	IsVerified   bool              `bson:"is_verified" json:"isVerified"`
	IsFeatured   bool              `bson:"is_featured" json:"isFeatured"`
	Availability string            `bson:"availability" json:"availability"` // available, limited, unavailable
	CreatorID    string            `bson:"creatorid,omitempty" json:"creatorid,omitempty"`
	Deleted      bool              `bson:"deleted,omitempty" json:"-"`
}

type Label struct {
	LabelID     string   `bson:"labelid,omitempty" json:"labelid"`
	Slug        string   `bson:"slug" json:"slug"`
	Name        string   `bson:"name" json:"name"`
	Location    string   `bson:"location" json:"location"`
	Country     string   `bson:"country" json:"country"`
	Genres      []string `bson:"genres" json:"genres"`
	Image       string   `bson:"image" json:"image"`
	IsVerified  bool     `bson:"is_verified" json:"isVerified"`
	ArtistCount int      `bson:"artist_count" json:"artistCount"`
	Founded     int      `bson:"founded" json:"founded"`
}
