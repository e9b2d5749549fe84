package models

const (
	NotifNewEvent      = "new_event"
	NotifAvailability  = "availability"
	NotifNewTrack      = "new_track"
	NotifProfileUpdate = "profile_update"
	NotifFollow        = "follow"
)

type Notification struct {
	NotificationID string `bson:"notificationid,omitempty" json:"id"`
	UserID         string `bson:"userid" json:"-"`
	Type           string `bson:"type" json:"type"`
	ArtistSlug     string `bson:"artistSlug,omitempty" json:"artistSlug,omitempty"`
	ArtistName     string `bson:"artistName,omitempty" json:"artistName,omitempty"`
	Message        string `bson:"message" json:"message"`
	Timestamp      int64  `bson:"timestamp" json:"timestamp"`
	IsRead         bool   `bson:"is_read" json:"isRead"`
	Link           string `bson:"link,omitempty" json:"link,omitempty"`
}

// Index represents an indexing-related message to be emitted.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	ItemId     string `json:"item_id"`
	ItemType   string `json:"item_type"`
}
