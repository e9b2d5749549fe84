package models

type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

type Festival struct {
	FestivalID  string      `bson:"festivalid,omitempty" json:"festivalid"`
	Slug        string      `bson:"slug" json:"slug"`
	Name        string      `bson:"name" json:"name"`
	Location    string      `bson:"location" json:"location"`
	Country     string      `bson:"country" json:"country"`
	Date        string      `bson:"date" json:"date"` // "Month DD, YYYY" or "YYYY-MM-DD"
	DateEnd     string      `bson:"dateEnd,omitempty" json:"dateEnd,omitempty"`
	Type        string      `bson:"type" json:"type"`
	Capacity    int         `bson:"capacity" json:"capacity"`
	Description string      `bson:"description" json:"description"`
	ArtistSlugs []string    `bson:"artistSlugs" json:"artistSlugs"` // weak references to Artist.Slug
	Stages      []string    `bson:"stages,omitempty" json:"stages,omitempty"`
	Highlights  []string    `bson:"highlights,omitempty" json:"highlights,omitempty"`
	Coordinates Coordinates `bson:"coordinates" json:"coordinates"`
	CreatorID   string      `bson:"creatorid,omitempty" json:"creatorid,omitempty"`
}
