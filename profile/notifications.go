package profile

import (
	"context"
	"log"
	"net/http"
	"time"

	"cadenza/db"
	"cadenza/models"
	"cadenza/stores"
	"cadenza/utils"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Feed broadcasts every persisted notification to subscribers. Websocket
// connections filter by user id on their side of the subscription.
var Feed = stores.New(models.Notification{})

// Notify persists a notification and pushes it onto the feed. Failures are
// logged, not surfaced; notifications never fail the action that caused them.
func Notify(ctx context.Context, n models.Notification) {
	if n.NotificationID == "" {
		n.NotificationID = "n" + utils.GenerateRandomString(14)
	}
	if n.Timestamp == 0 {
		n.Timestamp = time.Now().Unix()
	}

	if _, err := db.NotificationsCollection.InsertOne(ctx, n); err != nil {
		log.Printf("[notify] insert failed for user %s: %v", n.UserID, err)
		return
	}
	Feed.Set(n)
}

// GetNotifications lists the caller's notifications, newest first.
//
// GET /api/profile/notifications
func GetNotifications(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	skip, limit := utils.ParsePagination(r, 20, 100)

	findOpts := options.Find().
		SetSort(bson.M{"timestamp": -1}).
		SetSkip(skip).
		SetLimit(limit)

	notifs, err := utils.FindAndDecode[models.Notification](ctx,
		db.NotificationsCollection, bson.M{"userid": userID}, findOpts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}

	unread, err := db.NotificationsCollection.CountDocuments(ctx,
		bson.M{"userid": userID, "is_read": false})
	if err != nil {
		unread = 0
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"notifications": notifs,
		"unread":        unread,
	})
}

// MarkNotificationRead marks one notification read, or all of them when the
// path id is "all".
//
// PUT /api/profile/notifications/:id/read
func MarkNotificationRead(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	filter := bson.M{"userid": userID}
	if id := ps.ByName("id"); id != "all" {
		filter["notificationid"] = id
	}

	res, err := db.NotificationsCollection.UpdateMany(ctx, filter,
		bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update notifications")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Notification not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "updated": res.ModifiedCount})
}

var notifUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// NotificationStream pushes the caller's notifications over a websocket as
// they are created.
//
// GET /ws/notifications
func NotificationStream(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := notifUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[notify] websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	send := make(chan models.Notification, 16)
	cancel := Feed.Subscribe(func(n models.Notification) {
		if n.UserID != userID {
			return
		}
		select {
		case send <- n:
		default:
			// slow consumer drops updates rather than blocking the notifier
		}
	})
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case n := <-send:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteJSON(n); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
