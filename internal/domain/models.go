package domain

import "encoding/json"

type Product struct {
	ID            int64  `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	Price         int64  `db:"price" json:"price"`
	ImageURL      string `db:"image_url" json:"imageUrl"`
	GalleryJSON   string `db:"gallery_json" json:"-"`
	Description   string `db:"description" json:"description"`
	Condition     string `db:"condition" json:"condition,omitempty"` // NEAR_NEW | USED | WORN
	Donor         string `db:"donor" json:"donor,omitempty"`
	FavoritesSeed int    `db:"favorites_seed" json:"-"`
	Active        bool   `db:"active" json:"-"`
	CreatedAt     string `db:"created_at" json:"-"`
	UpdatedAt     string `db:"updated_at" json:"-"`
}

// Gallery decodes the ordered gallery image list. A product without a
// gallery falls back to its primary image as a single slide.
func (p Product) Gallery() []string {
	if p.GalleryJSON != "" {
		var urls []string
		if err := json.Unmarshal([]byte(p.GalleryJSON), &urls); err == nil && len(urls) > 0 {
			return urls
		}
	}
	return []string{p.ImageURL}
}

// ProductWithFavorites is the grid view model: the product plus the
// session-local like overlay and its display popularity counter.
type ProductWithFavorites struct {
	Product
	Favorites int  `json:"favorites"`
	IsLiked   bool `json:"isLiked"`
}

// ProductInput carries the mutable product fields for admin create/update.
type ProductInput struct {
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	Gallery     []string `json:"gallery,omitempty"`
	Description string   `json:"description"`
	Condition   string   `json:"condition,omitempty"`
	Donor       string   `json:"donor,omitempty"`

	// FavoritesSeed overrides the derived favorites count when > 0.
	FavoritesSeed int `json:"favoritesSeed,omitempty"`
}

type Announcement struct {
	Message   string `db:"message" json:"message"`
	Visible   bool   `db:"visible" json:"visible"`
	UpdatedAt string `db:"updated_at" json:"-"`
}
