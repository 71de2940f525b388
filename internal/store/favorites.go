package store

import (
	"github.com/brianvoe/gofakeit/v6"

	"heartdrop/internal/domain"
)

// Favorites derives a stable popularity counter for a product. The demo data
// layer used to roll a fresh random count on every render pass, which made
// counters fluctuate across refetches; seeding the generator from the product
// id keeps the numbers plausible but repeatable. A nonzero FavoritesSeed
// (server-assigned) wins outright.
func Favorites(p domain.Product) int {
	if p.FavoritesSeed > 0 {
		return p.FavoritesSeed
	}
	f := gofakeit.New(p.ID)
	return f.Number(12, 4200)
}
