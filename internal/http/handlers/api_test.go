package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"heartdrop/internal/config"
	"heartdrop/internal/http/handlers"
	"heartdrop/internal/repos"
	"heartdrop/internal/services"
	"heartdrop/internal/store"
)

func newApp(t *testing.T) (*fiber.App, *handlers.Deps) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	cfg := config.Config{LikesPersistence: "memory"}
	authSvc := &services.AuthService{Users: repos.NewUserRepo(db)}
	authH := &handlers.AuthHandler{Auth: authSvc}

	deps, err := handlers.NewDeps(db, cfg, nil)
	if err != nil {
		t.Fatalf("deps: %v", err)
	}

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Detail)
	api.Post("/products/:id/like", deps.ProductHandler.ToggleLike)
	api.Get("/layout", deps.LayoutHandler.Resolve)
	api.Get("/grid", deps.LayoutHandler.Grid)
	api.Get("/announcement", deps.AnnouncementHandler.Get)
	api.Post("/auth/login", authH.Login)
	admin := api.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Post("/products", deps.AdminHandler.CreateProduct)
	admin.Put("/announcement", deps.AdminHandler.SetAnnouncement)
	return app, deps
}

func cookieValue(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func decode(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(body, into); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
}

func TestListProductsSetsSessionCookie(t *testing.T) {
	app, _ := newApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/products", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if cookieValue(resp, "sid") == "" {
		t.Fatal("sid cookie not set")
	}

	var out struct {
		Count    int `json:"count"`
		Products []struct {
			ID        int64 `json:"id"`
			Favorites int   `json:"favorites"`
			IsLiked   bool  `json:"isLiked"`
		} `json:"products"`
	}
	decode(t, resp, &out)
	if out.Count != 24 || len(out.Products) != 24 {
		t.Fatalf("want 24 products, got %d", out.Count)
	}
	if out.Products[0].Favorites < 12 {
		t.Fatalf("favorites missing: %+v", out.Products[0])
	}
}

func TestSearchQueryFilters(t *testing.T) {
	app, _ := newApp(t)

	resp, _ := app.Test(httptest.NewRequest("GET", "/api/v1/products?q=camera", nil))
	var out struct {
		Count int `json:"count"`
	}
	decode(t, resp, &out)
	if out.Count != 3 {
		t.Fatalf("want 3 camera matches, got %d", out.Count)
	}

	// Disallowed characters are rejected, not passed through.
	resp, _ = app.Test(httptest.NewRequest("GET", "/api/v1/products?q=%3Cscript%3E", nil))
	if resp.StatusCode != 400 {
		t.Fatalf("want 400 for invalid query, got %d", resp.StatusCode)
	}
}

func TestToggleLikeRoundTrip(t *testing.T) {
	app, _ := newApp(t)

	// First request establishes the session.
	resp, _ := app.Test(httptest.NewRequest("GET", "/api/v1/products", nil))
	sid := cookieValue(resp, "sid")

	var base struct {
		Products []struct {
			Favorites int `json:"favorites"`
		} `json:"products"`
	}
	decode(t, resp, &base)

	like := func() (bool, int) {
		req := httptest.NewRequest("POST", "/api/v1/products/1/like", nil)
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != 200 {
			t.Fatalf("status %d", resp.StatusCode)
		}
		var out struct {
			Liked     bool `json:"liked"`
			Favorites int  `json:"favorites"`
		}
		decode(t, resp, &out)
		return out.Liked, out.Favorites
	}

	liked, favs := like()
	if !liked || favs != base.Products[0].Favorites+1 {
		t.Fatalf("like: liked=%v favs=%d base=%d", liked, favs, base.Products[0].Favorites)
	}
	liked, favs = like()
	if liked || favs != base.Products[0].Favorites {
		t.Fatalf("unlike should restore the counter: liked=%v favs=%d", liked, favs)
	}
}

func TestToggleLikeValidation(t *testing.T) {
	app, _ := newApp(t)

	resp, _ := app.Test(httptest.NewRequest("POST", "/api/v1/products/abc/like", nil))
	if resp.StatusCode != 400 {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
	resp, _ = app.Test(httptest.NewRequest("POST", "/api/v1/products/999/like", nil))
	if resp.StatusCode != 404 {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
}

func TestLayoutEndpoint(t *testing.T) {
	app, _ := newApp(t)

	resp, _ := app.Test(httptest.NewRequest("GET", "/api/v1/layout?w=1200&h=1400&touch=true", nil))
	var out struct {
		Device string `json:"device"`
		Config struct {
			Cols int `json:"cols"`
			Rows int `json:"rows"`
		} `json:"config"`
	}
	decode(t, resp, &out)
	if out.Device != "tabletLargePro" || out.Config.Rows != 5 {
		t.Fatalf("unexpected layout: %+v", out)
	}

	resp, _ = app.Test(httptest.NewRequest("GET", "/api/v1/layout", nil))
	if resp.StatusCode != 400 {
		t.Fatalf("want 400 without viewport, got %d", resp.StatusCode)
	}
}

func TestGridEndpointIncludesWindow(t *testing.T) {
	app, _ := newApp(t)

	resp, _ := app.Test(httptest.NewRequest("GET",
		"/api/v1/grid?w=1920&h=1080&count=24&containerW=880&containerH=500&cardW=200&cardH=250&gap=16", nil))
	var out struct {
		Grid struct {
			TemplateColumns string `json:"gridTemplateColumns"`
		} `json:"grid"`
		Window struct {
			Items       []any   `json:"items"`
			TotalHeight float64 `json:"totalHeight"`
		} `json:"window"`
		TotalDonations int64 `json:"totalDonations"`
	}
	decode(t, resp, &out)
	if out.Grid.TemplateColumns != "repeat(4, minmax(0, 1fr))" {
		t.Fatalf("grid style: %+v", out.Grid)
	}
	if len(out.Window.Items) == 0 || out.Window.TotalHeight == 0 {
		t.Fatalf("window missing: %+v", out.Window)
	}
	if out.TotalDonations != store.TotalDonations {
		t.Fatalf("totalDonations = %d", out.TotalDonations)
	}
}

func TestAdminRequiresLogin(t *testing.T) {
	app, _ := newApp(t)

	body := strings.NewReader(`{"name":"x","price":1,"imageUrl":"https://img.test/x.jpg"}`)
	req := httptest.NewRequest("POST", "/api/v1/admin/products", body)
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	if resp.StatusCode != 401 {
		t.Fatalf("want 401 without session, got %d", resp.StatusCode)
	}
}

func TestAdminProductCreateFlow(t *testing.T) {
	app, _ := newApp(t)

	// Login as the seeded admin.
	login := httptest.NewRequest("POST", "/api/v1/auth/login",
		strings.NewReader(`{"email":"admin@heartdrop.test","password":"Summer123!"}`))
	login.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(login)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("login status %d", resp.StatusCode)
	}
	sid := cookieValue(resp, "sid")
	if sid == "" {
		t.Fatal("login did not set sid")
	}

	create := httptest.NewRequest("POST", "/api/v1/admin/products",
		strings.NewReader(`{"name":"brass kettle","price":22000,"imageUrl":"https://img.test/kettle.jpg","condition":"WORN"}`))
	create.Header.Set("Content-Type", "application/json")
	create.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, _ = app.Test(create)
	if resp.StatusCode != 201 {
		t.Fatalf("create status %d", resp.StatusCode)
	}
	var p struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	decode(t, resp, &p)
	if p.ID == 0 || p.Name != "brass kettle" {
		t.Fatalf("unexpected product: %+v", p)
	}

	// The new product is live for everyone immediately.
	resp, _ = app.Test(httptest.NewRequest("GET", "/api/v1/products", nil))
	var out struct {
		Count int `json:"count"`
	}
	decode(t, resp, &out)
	if out.Count != 25 {
		t.Fatalf("want 25 products after create, got %d", out.Count)
	}

	// Bad payloads are rejected.
	bad := httptest.NewRequest("POST", "/api/v1/admin/products",
		strings.NewReader(`{"name":"","price":-5}`))
	bad.Header.Set("Content-Type", "application/json")
	bad.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, _ = app.Test(bad)
	if resp.StatusCode != 400 {
		t.Fatalf("want 400 for invalid product, got %d", resp.StatusCode)
	}
}

func TestAnnouncementFlow(t *testing.T) {
	app, _ := newApp(t)

	resp, _ := app.Test(httptest.NewRequest("GET", "/api/v1/announcement", nil))
	var a struct {
		Message string `json:"message"`
		Visible bool   `json:"visible"`
	}
	decode(t, resp, &a)
	if a.Visible || a.Message != "" {
		t.Fatalf("want hidden default, got %+v", a)
	}

	login := httptest.NewRequest("POST", "/api/v1/auth/login",
		strings.NewReader(`{"email":"admin@heartdrop.test","password":"Summer123!"}`))
	login.Header.Set("Content-Type", "application/json")
	resp, _ = app.Test(login)
	sid := cookieValue(resp, "sid")

	set := httptest.NewRequest("PUT", "/api/v1/admin/announcement",
		strings.NewReader(`{"message":"donation drive saturday","visible":true}`))
	set.Header.Set("Content-Type", "application/json")
	set.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, _ = app.Test(set)
	if resp.StatusCode != 200 {
		t.Fatalf("set status %d", resp.StatusCode)
	}

	resp, _ = app.Test(httptest.NewRequest("GET", "/api/v1/announcement", nil))
	decode(t, resp, &a)
	if !a.Visible || a.Message != "donation drive saturday" {
		t.Fatalf("announcement not updated: %+v", a)
	}
}
