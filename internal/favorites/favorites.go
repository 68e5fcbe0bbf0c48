// Package favorites maintains the candidate's favorite-offer ids with
// optimistic updates: the local list mutates immediately and reverts when
// the confirming server call fails.
package favorites

import (
	"context"
	"sort"
	"sync"

	"github.com/jonathan/forum-agent/internal/optimistic"
)

// API is the slice of the forum client the favorites list needs
type API interface {
	AddFavorite(ctx context.Context, offerID int) error
	RemoveFavorite(ctx context.Context, offerID int) error
}

// List tracks favorite offer ids for one candidate session
type List struct {
	mu     sync.Mutex
	api    API
	offers map[int]bool
}

// NewList creates a favorites list seeded with already-favorited offer ids
func NewList(api API, seed []int) *List {
	offers := make(map[int]bool, len(seed))
	for _, id := range seed {
		offers[id] = true
	}
	return &List{api: api, offers: offers}
}

// Contains reports whether an offer is currently favorited
func (l *List) Contains(offerID int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.offers[offerID]
}

// IDs returns the favorited offer ids in ascending order
func (l *List) IDs() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	ids := make([]int, 0, len(l.offers))
	for id := range l.offers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Toggle flips an offer's favorite state optimistically and confirms with
// the backend, reverting the local flip on failure.
func (l *List) Toggle(ctx context.Context, offerID int) error {
	l.mu.Lock()
	wasFavorite := l.offers[offerID]
	l.mu.Unlock()

	set := func(fav bool) func() {
		return func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			if fav {
				l.offers[offerID] = true
			} else {
				delete(l.offers, offerID)
			}
		}
	}

	confirm := l.api.AddFavorite
	if wasFavorite {
		confirm = l.api.RemoveFavorite
	}

	return optimistic.Update(ctx,
		set(!wasFavorite),
		set(wasFavorite),
		func(ctx context.Context) error { return confirm(ctx, offerID) },
	)
}
