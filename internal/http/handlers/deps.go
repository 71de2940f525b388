package handlers

import (
	"heartdrop/internal/config"
	"heartdrop/internal/repos"
	"heartdrop/internal/services"
	"heartdrop/internal/store"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	ProductHandler      *ProductHandler
	LayoutHandler       *LayoutHandler
	AnnouncementHandler *AnnouncementHandler
	AdminHandler        *AdminHandler

	Catalog  *services.CatalogService
	Sessions *store.Manager
	Announce *services.AnnouncementService
}

func NewDeps(db *sqlx.DB, cfg config.Config, hub services.Broadcaster) (*Deps, error) {
	prodRepo := repos.NewProductRepo(db)
	annRepo := repos.NewAnnouncementRepo(db)

	var sink store.LikeSink
	if cfg.LikesPersistence == "store" {
		sink = repos.NewLikeRepo(db)
	}

	base, err := prodRepo.List()
	if err != nil {
		return nil, err
	}
	sessions := store.NewManager(base, sink)

	catalogSvc := services.NewCatalogService(prodRepo, sessions)
	annSvc := services.NewAnnouncementService(annRepo, hub)

	return &Deps{
		ProductHandler:      &ProductHandler{Catalog: catalogSvc},
		LayoutHandler:       &LayoutHandler{},
		AnnouncementHandler: &AnnouncementHandler{Announce: annSvc},
		AdminHandler:        &AdminHandler{Catalog: catalogSvc, Announce: annSvc},

		Catalog:  catalogSvc,
		Sessions: sessions,
		Announce: annSvc,
	}, nil
}
