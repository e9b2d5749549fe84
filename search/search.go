package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"cadenza/db"
	"cadenza/models"
	"cadenza/rdx"

	"go.mongodb.org/mongo-driver/bson"
)

// Entry is one indexed directory entity.
type Entry struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
}

func tokenKey(token string) string   { return "idx:token:" + token }
func entityKey(t, id string) string  { return "idx:entity:" + t + ":" + id }
func entityRef(t, id string) string  { return t + ":" + id }
func entryKey() string               { return "idx:entries" }
func splitRef(ref string) (t, id string) {
	parts := strings.SplitN(ref, ":", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], parts[1]
}

// IndexEntity maintains the redis token index for one create/update/delete
// event. Tokens come from the entity's name, location and genres.
func IndexEntity(ctx context.Context, event models.Index) error {
	if event.Method == "DELETE" {
		return removeEntity(ctx, event.EntityType, event.EntityId)
	}

	name, slug, text, err := fetchIndexText(ctx, event.EntityType, event.EntityId)
	if err != nil {
		return err
	}

	// Re-indexing replaces the previous token set.
	if err := removeEntity(ctx, event.EntityType, event.EntityId); err != nil {
		return err
	}

	ref := entityRef(event.EntityType, event.EntityId)
	tokens := Tokenize(text)
	for _, token := range tokens {
		if err := rdx.RdxSAdd(tokenKey(token), ref); err != nil {
			return err
		}
		if err := rdx.RdxSAdd(entityKey(event.EntityType, event.EntityId), token); err != nil {
			return err
		}
	}

	entry := fmt.Sprintf("%s|%s", name, slug)
	return rdx.RdxHset(entryKey(), ref, entry)
}

func removeEntity(ctx context.Context, entityType, entityID string) error {
	tokens, err := rdx.RdxSMembers(entityKey(entityType, entityID))
	if err != nil {
		return err
	}
	ref := entityRef(entityType, entityID)
	for _, token := range tokens {
		if err := rdx.Conn.SRem(ctx, tokenKey(token), ref).Err(); err != nil {
			return err
		}
	}
	if _, err := rdx.RdxDel(entityKey(entityType, entityID)); err != nil {
		return err
	}
	_, err = rdx.RdxHdel(entryKey(), ref)
	return err
}

func fetchIndexText(ctx context.Context, entityType, entityID string) (name, slug, text string, err error) {
	switch entityType {
	case "artist":
		var a models.Artist
		if err = db.ArtistsCollection.FindOne(ctx, bson.M{"artistid": entityID}).Decode(&a); err != nil {
			return
		}
		return a.Name, a.Slug, strings.Join(append([]string{a.Name, a.Location, a.Country}, a.Genres...), " "), nil
	case "label":
		var l models.Label
		if err = db.LabelsCollection.FindOne(ctx, bson.M{"labelid": entityID}).Decode(&l); err != nil {
			return
		}
		return l.Name, l.Slug, strings.Join(append([]string{l.Name, l.Location, l.Country}, l.Genres...), " "), nil
	case "festival":
		var f models.Festival
		if err = db.FestivalsCollection.FindOne(ctx, bson.M{"festivalid": entityID}).Decode(&f); err != nil {
			return
		}
		return f.Name, f.Slug, strings.Join([]string{f.Name, f.Location, f.Country, f.Type}, " "), nil
	default:
		err = fmt.Errorf("unsupported entity type %q", entityType)
		return
	}
}

// Query intersects the ID sets of every token, smallest set first, the way
// multi-token lookups are cheapest.
func Query(ctx context.Context, query string, limit int) ([]Entry, error) {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil, nil
	}

	sets := make([][]string, len(tokens))
	for i, token := range tokens {
		ids, err := rdx.RdxSMembers(tokenKey(token))
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return nil, nil
		}
		sets[i] = ids
	}

	sort.Slice(sets, func(i, j int) bool { return len(sets[i]) < len(sets[j]) })

	base := sets[0]
	sort.Strings(base)
	others := make([]map[string]struct{}, len(sets)-1)
	for i := 1; i < len(sets); i++ {
		m := make(map[string]struct{}, len(sets[i]))
		for _, id := range sets[i] {
			m[id] = struct{}{}
		}
		others[i-1] = m
	}

	out := make([]Entry, 0, len(base))
	for _, ref := range base {
		match := true
		for _, s := range others {
			if _, ok := s[ref]; !ok {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		t, id := splitRef(ref)
		raw, err := rdx.RdxHget(entryKey(), ref)
		if err != nil {
			continue
		}
		parts := strings.SplitN(raw, "|", 2)
		entry := Entry{EntityType: t, EntityID: id, Name: parts[0]}
		if len(parts) == 2 {
			entry.Slug = parts[1]
		}
		out = append(out, entry)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
