package models

// Booking status vocabulary. The store keeps the admin vocabulary; the legacy
// seed vocabulary {confirmed, cancelled} is normalized on ingest and never
// written back.
const (
	BookingPending   = "pending"
	BookingApproved  = "approved"
	BookingRejected  = "rejected"
	BookingCompleted = "completed"
)

type Booking struct {
	BookingID   string  `bson:"bookingid,omitempty" json:"bookingid"`
	ArtistID    string  `bson:"artistid" json:"artistid"` // weak reference to Artist.ArtistID
	EventName   string  `bson:"eventName" json:"eventName"`
	Date        string  `bson:"date" json:"date"` // ISO string
	Location    string  `bson:"location" json:"location"`
	City        string  `bson:"city,omitempty" json:"city,omitempty"`
	Country     string  `bson:"country,omitempty" json:"country,omitempty"`
	Status      string  `bson:"status" json:"status"`
	OfferAmount float64 `bson:"offerAmount" json:"offerAmount"`
	CreatedAt   int64   `bson:"createdAt" json:"createdAt"`
}
