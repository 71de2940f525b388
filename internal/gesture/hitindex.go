package gesture

import "sync"

// Rect is one rendered product card's screen-space box.
type Rect struct {
	ProductID int64   `json:"productId"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	W         float64 `json:"w"`
	H         float64 `json:"h"`
}

// HitIndex answers "which product is under this point". It is the spatial
// stand-in for document point queries against data-product-id markers: the
// client reports card rectangles whenever layout changes, and the recognizer
// queries them on every drag move.
type HitIndex struct {
	mu    sync.RWMutex
	rects []Rect
}

func NewHitIndex() *HitIndex { return &HitIndex{} }

// Rebuild replaces the rectangle set wholesale. Called on layout change,
// scroll and catalog refresh.
func (ix *HitIndex) Rebuild(rects []Rect) {
	ix.mu.Lock()
	ix.rects = append(ix.rects[:0:0], rects...)
	ix.mu.Unlock()
}

// At returns the product under the point, preferring the last-reported rect
// when boxes overlap (matches topmost-element point query semantics).
func (ix *HitIndex) At(x, y float64) (int64, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	for i := len(ix.rects) - 1; i >= 0; i-- {
		r := ix.rects[i]
		if x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H {
			return r.ProductID, true
		}
	}
	return 0, false
}
