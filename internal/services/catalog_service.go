package services

import (
	"strings"

	"heartdrop/internal/domain"
	"heartdrop/internal/repos"
	"heartdrop/internal/store"
)

type CatalogService struct {
	Prods    *repos.ProductRepo
	Sessions *store.Manager
}

func NewCatalogService(prods *repos.ProductRepo, sessions *store.Manager) *CatalogService {
	return &CatalogService{Prods: prods, Sessions: sessions}
}

func (s *CatalogService) ListProducts() ([]domain.Product, error) {
	return s.Prods.List()
}

func (s *CatalogService) GetProduct(id int64) (domain.Product, error) {
	return s.Prods.Get(id)
}

func (s *CatalogService) Search(q string) ([]domain.Product, error) {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return s.Prods.List()
	}
	return s.Prods.Search(q)
}

// ListForSession decorates the catalog with the session's like overlay
// and each product's favorites count.
func (s *CatalogService) ListForSession(sid, q string) []domain.ProductWithFavorites {
	coll := s.Sessions.Session(sid)
	coll.SetSearch(q)
	return coll.Products()
}

func (s *CatalogService) ToggleLike(sid string, productID int64) (bool, error) {
	coll := s.Sessions.Session(sid)
	if err := coll.ToggleLike(productID); err != nil {
		return false, err
	}
	liked, _ := coll.IsLiked(productID)
	return liked, nil
}

func (s *CatalogService) CreateProduct(in domain.ProductInput) (domain.Product, error) {
	id, err := s.Prods.Create(in)
	if err != nil {
		return domain.Product{}, err
	}
	p, err := s.Prods.Get(id)
	if err != nil {
		return domain.Product{}, err
	}
	return p, s.refresh()
}

func (s *CatalogService) UpdateProduct(id int64, in domain.ProductInput) (domain.Product, error) {
	if _, err := s.Prods.Get(id); err != nil {
		return domain.Product{}, err
	}
	if err := s.Prods.Update(id, in); err != nil {
		return domain.Product{}, err
	}
	p, err := s.Prods.Get(id)
	if err != nil {
		return domain.Product{}, err
	}
	return p, s.refresh()
}

func (s *CatalogService) DeleteProduct(id int64) error {
	if _, err := s.Prods.Get(id); err != nil {
		return err
	}
	if err := s.Prods.Delete(id); err != nil {
		return err
	}
	return s.refresh()
}

// refresh pushes the current active catalog into every live session so
// like overlays and open expansions stay consistent with the DB.
func (s *CatalogService) refresh() error {
	ps, err := s.Prods.List()
	if err != nil {
		return err
	}
	s.Sessions.Refresh(ps)
	return nil
}
