package services_test

import (
	"testing"

	"heartdrop/internal/domain"
	"heartdrop/internal/repos"
	"heartdrop/internal/services"
	"heartdrop/internal/store"
)

func newCatalog(t *testing.T) (*services.CatalogService, *store.Manager) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	prods := repos.NewProductRepo(db)
	base, err := prods.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	mgr := store.NewManager(base, nil)
	return services.NewCatalogService(prods, mgr), mgr
}

func TestListForSessionAppliesOverlay(t *testing.T) {
	svc, _ := newCatalog(t)

	liked, err := svc.ToggleLike("s1", 2)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !liked {
		t.Fatal("first toggle should like")
	}

	items := svc.ListForSession("s1", "")
	if len(items) != 24 {
		t.Fatalf("want 24 items, got %d", len(items))
	}
	if !items[1].IsLiked {
		t.Fatal("overlay not applied")
	}

	// Another session sees a clean overlay.
	items = svc.ListForSession("s2", "")
	if items[1].IsLiked {
		t.Fatal("overlay leaked across sessions")
	}

	items = svc.ListForSession("s1", "camera")
	if len(items) != 3 {
		t.Fatalf("want 3 camera matches, got %d", len(items))
	}
}

func TestAdminMutationsRefreshSessions(t *testing.T) {
	svc, mgr := newCatalog(t)

	// A live session with a like.
	if _, err := svc.ToggleLike("s1", 1); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	p, err := svc.CreateProduct(domain.ProductInput{
		Name: "old radio", Price: 30000, ImageURL: "https://img.test/radio.jpg",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := mgr.Session("s1").Products(); len(got) != 25 {
		t.Fatalf("session not refreshed after create: %d", len(got))
	}

	if _, err := svc.UpdateProduct(p.ID, domain.ProductInput{
		Name: "old radio (works!)", Price: 32000, ImageURL: p.ImageURL,
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := mgr.Session("s1").Get(p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "old radio (works!)" {
		t.Fatalf("session sees stale product: %+v", got)
	}

	if err := svc.DeleteProduct(p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := mgr.Session("s1").Get(p.ID); err == nil {
		t.Fatal("deleted product still visible to sessions")
	}

	// The like from before the mutations survives.
	liked, _ := mgr.Session("s1").IsLiked(1)
	if !liked {
		t.Fatal("like lost during refresh")
	}
}
