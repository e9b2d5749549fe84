package mq

import (
	"context"
	"encoding/json"
	"log"

	"cadenza/models"
	"cadenza/rdx"
	"cadenza/search"
)

// Emit publishes indexing events to Redis; the indexing worker consumes them.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	// Callers fire this from handler goroutines; detach from the request
	// lifetime so an early client disconnect cannot drop the event.
	if err := rdx.Conn.Publish(context.WithoutCancel(ctx), "indexing-events", data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s: %v", eventName, err)
	}
}

func StartIndexingWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, "indexing-events")
	ch := sub.Channel()

	log.Println("[IndexingWorker] Listening for indexing events...")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[IndexingWorker] Failed to parse event: %v", err)
			continue
		}

		if err := search.IndexEntity(ctx, event); err != nil {
			log.Printf("[IndexingWorker] IndexEntity error: %v", err)
		}
	}
}
