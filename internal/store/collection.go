// Package store holds the product collection: the fetched product list, the
// session-local like overlay, the search filter and the single expanded-card
// slot. It is the one source of truth the grid, the gesture recognizer and
// the story controller all read from.
package store

import (
	"errors"
	"strings"
	"sync"

	"heartdrop/internal/domain"
)

var ErrUnknownProduct = errors.New("unknown product")

// LikeSink persists the like overlay for a session. Wired only when the
// likes persistence policy is "store"; nil means ephemeral overlay.
type LikeSink interface {
	Load(sessionID string) (map[int64]bool, error)
	Set(sessionID string, productID int64, liked bool) error
}

// Collection is one session's view of the catalog. The base product list is
// replaced wholesale on refetch; only the like overlay and the expansion slot
// mutate in place.
type Collection struct {
	sessionID string
	sink      LikeSink

	mu       sync.RWMutex
	products []domain.Product
	likes    map[int64]bool
	search   string
	expanded int64 // 0 = nothing expanded
}

func NewCollection(sessionID string, products []domain.Product, sink LikeSink) *Collection {
	c := &Collection{
		sessionID: sessionID,
		sink:      sink,
		products:  append([]domain.Product(nil), products...),
		likes:     make(map[int64]bool),
	}
	if sink != nil {
		if saved, err := sink.Load(sessionID); err == nil {
			c.likes = saved
		}
	}
	return c
}

// Replace swaps in a freshly fetched product list. The like overlay survives
// for ids that still exist; overlay entries for removed products are dropped.
func (c *Collection) Replace(products []domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append([]domain.Product(nil), products...)
	keep := make(map[int64]bool, len(c.likes))
	for _, p := range products {
		if c.likes[p.ID] {
			keep[p.ID] = true
		}
	}
	c.likes = keep
	if c.expanded != 0 && !c.hasLocked(c.expanded) {
		c.expanded = 0
	}
}

func (c *Collection) hasLocked(id int64) bool {
	for _, p := range c.products {
		if p.ID == id {
			return true
		}
	}
	return false
}

// ToggleLike flips the like state for one product. The displayed favorites
// counter moves with it, so toggling twice is a net no-op.
func (c *Collection) ToggleLike(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasLocked(id) {
		return ErrUnknownProduct
	}
	liked := !c.likes[id]
	if liked {
		c.likes[id] = true
	} else {
		delete(c.likes, id)
	}
	if c.sink != nil {
		if err := c.sink.Set(c.sessionID, id, liked); err != nil {
			return err
		}
	}
	return nil
}

// IsLiked reports the like state; ok is false if the product id is unknown.
func (c *Collection) IsLiked(id int64) (liked, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.hasLocked(id) {
		return false, false
	}
	return c.likes[id], true
}

func (c *Collection) SetSearch(q string) {
	c.mu.Lock()
	c.search = strings.TrimSpace(q)
	c.mu.Unlock()
}

func (c *Collection) Search() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.search
}

// Products returns the view models in original order, filtered by the active
// search term (case-insensitive substring over name and description).
func (c *Collection) Products() []domain.ProductWithFavorites {
	c.mu.RLock()
	defer c.mu.RUnlock()
	q := strings.ToLower(c.search)
	out := make([]domain.ProductWithFavorites, 0, len(c.products))
	for _, p := range c.products {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		out = append(out, c.viewLocked(p))
	}
	return out
}

// Get returns one product's view model.
func (c *Collection) Get(id int64) (domain.ProductWithFavorites, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return c.viewLocked(p), nil
		}
	}
	return domain.ProductWithFavorites{}, ErrUnknownProduct
}

func (c *Collection) viewLocked(p domain.Product) domain.ProductWithFavorites {
	v := domain.ProductWithFavorites{Product: p, Favorites: Favorites(p), IsLiked: c.likes[p.ID]}
	if v.IsLiked {
		v.Favorites++
	}
	return v
}

// Expand marks a product as the single expanded card, collapsing whatever was
// expanded before. Returns the previously expanded id (0 if none).
func (c *Collection) Expand(id int64) (prev int64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasLocked(id) {
		return 0, ErrUnknownProduct
	}
	prev = c.expanded
	c.expanded = id
	return prev, nil
}

// Collapse clears the expansion slot if the given product holds it.
func (c *Collection) Collapse(id int64) {
	c.mu.Lock()
	if c.expanded == id {
		c.expanded = 0
	}
	c.mu.Unlock()
}

func (c *Collection) Expanded() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.expanded
}
