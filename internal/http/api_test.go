package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"circular/internal/config"
	"circular/internal/domain"
	"circular/internal/http/handlers"
	"circular/internal/repos"
	"circular/internal/services"
)

// newTestApp wires the same routes as cmd/circular, minus rate limiting.
func newTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := repos.SeedCredential(db, "admin", "Segredo1!"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	authSvc := &services.AuthService{Creds: repos.NewCredentialRepo(db)}
	authH := &handlers.AuthHandler{Auth: authSvc}
	adminH := &handlers.AdminHandler{Auth: authSvc}

	app := fiber.New()
	app.Use(requestid.New())
	app.Post("/login", authH.Login)
	app.Post("/logout", authH.Logout)

	cfg := config.Config{MatchMaxResults: 0, StaleAfterDays: 15, ReengageAfterDays: 30}
	deps := handlers.NewDeps(db, cfg)

	api := app.Group("/api/v1", handlers.RequireSession(authSvc))
	api.Get("/customers", deps.CustomerHandler.List)
	api.Post("/customers", deps.CustomerHandler.Register)
	api.Get("/customers/:id/matches", deps.MatchHandler.Candidates)
	api.Get("/items", deps.ItemHandler.List)
	api.Post("/items", deps.ItemHandler.Intake)
	api.Get("/sales", deps.SaleHandler.List)
	api.Post("/sales", deps.SaleHandler.Record)
	api.Get("/metrics", deps.MetricsHandler.Dashboard)
	api.Get("/reports/stale-stock", deps.MetricsHandler.StaleStock)
	api.Get("/reports/reengagement", deps.MetricsHandler.Reengagement)

	admin := app.Group("/admin", handlers.RequireSession(authSvc))
	admin.Post("/credential", adminH.RotateCredential)

	// login once and hand the session cookie to the caller
	resp, err := app.Test(jsonReq("POST", "/login", `{"username":"admin","password":"Segredo1!"}`))
	if err != nil {
		t.Fatal(err)
	}
	sid := extractCookie(resp, "sid")
	if sid == "" {
		t.Fatal("no session cookie from login")
	}
	return app, sid
}

func doJSON(t *testing.T, app *fiber.App, sid, method, target, body string) (*http.Response, []byte) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = jsonReq(method, target, body)
	}
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := io.ReadAll(resp.Body)
	return resp, b
}

func TestAPIRequiresLogin(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, "", "GET", "/api/v1/customers", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, app, "", "POST", "/admin/credential", `{"username":"x","password":"Whatever1!"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for admin without session, got %d", resp.StatusCode)
	}
}

func TestAPIFullSaleFlow(t *testing.T) {
	app, sid := newTestApp(t)

	// register customer
	resp, body := doJSON(t, app, sid, "POST", "/api/v1/customers",
		`{"name":"Ana","whatsapp":"5511999998888","gender_interest":"Ambos","clothing_size":"M"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register customer: %d %s", resp.StatusCode, body)
	}
	var ana domain.Customer
	if err := json.Unmarshal(body, &ana); err != nil {
		t.Fatal(err)
	}

	// intake item
	resp, body = doJSON(t, app, sid, "POST", "/api/v1/items",
		`{"name":"Jaqueta","size":"M","category":"Jaqueta","gender":"Unissex","price":50.0}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("intake item: %d %s", resp.StatusCode, body)
	}
	var jaqueta domain.Item
	if err := json.Unmarshal(body, &jaqueta); err != nil {
		t.Fatal(err)
	}

	// matches surface the item with a wa.me link
	resp, body = doJSON(t, app, sid, "GET", "/api/v1/customers/"+ana.ID+"/matches", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("matches: %d %s", resp.StatusCode, body)
	}
	var cands []domain.MatchCandidate
	if err := json.Unmarshal(body, &cands); err != nil {
		t.Fatal(err)
	}
	if len(cands) != 1 || cands[0].Item.ID != jaqueta.ID {
		t.Fatalf("expected one candidate (%s), got %s", jaqueta.ID, body)
	}

	// record the sale below list price
	resp, body = doJSON(t, app, sid, "POST", "/api/v1/sales",
		`{"customer_id":"`+ana.ID+`","item_id":"`+jaqueta.ID+`","final_price":45.0}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("record sale: %d %s", resp.StatusCode, body)
	}

	// sold item gone from available listings
	resp, body = doJSON(t, app, sid, "GET", "/api/v1/items?status=available", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list available: %d", resp.StatusCode)
	}
	var avail []domain.Item
	if err := json.Unmarshal(body, &avail); err != nil {
		t.Fatal(err)
	}
	for _, it := range avail {
		if it.ID == jaqueta.ID {
			t.Fatal("sold item still listed as available")
		}
	}

	// metrics reflect the sale
	resp, body = doJSON(t, app, sid, "GET", "/api/v1/metrics", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("metrics: %d", resp.StatusCode)
	}
	var m domain.Metrics
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatal(err)
	}
	if m.GrossRevenue != 45.0 {
		t.Fatalf("want gross_revenue 45.0, got %v", m.GrossRevenue)
	}

	// second sale of the same item -> 409
	resp, body = doJSON(t, app, sid, "POST", "/api/v1/sales",
		`{"customer_id":"`+ana.ID+`","item_id":"`+jaqueta.ID+`","final_price":45.0}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 on double sell, got %d %s", resp.StatusCode, body)
	}

	// still exactly one sale in the history
	resp, body = doJSON(t, app, sid, "GET", "/api/v1/sales", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list sales: %d", resp.StatusCode)
	}
	var sales []repos.SaleRow
	if err := json.Unmarshal(body, &sales); err != nil {
		t.Fatal(err)
	}
	if len(sales) != 1 || sales[0].CustomerName != "Ana" || sales[0].ItemName != "Jaqueta" {
		t.Fatalf("unexpected sales listing: %s", body)
	}
}

func TestAPIValidationRejects(t *testing.T) {
	app, sid := newTestApp(t)

	cases := []struct {
		name, target, body string
	}{
		{"empty customer name", "/api/v1/customers", `{"name":"","whatsapp":"5511999998888","gender_interest":"Ambos","clothing_size":"M"}`},
		{"bad whatsapp", "/api/v1/customers", `{"name":"Ana","whatsapp":"call me","gender_interest":"Ambos","clothing_size":"M"}`},
		{"bad interest", "/api/v1/customers", `{"name":"Ana","whatsapp":"5511999998888","gender_interest":"Outro","clothing_size":"M"}`},
		{"bad size", "/api/v1/items", `{"name":"Jaqueta","size":"XXL","category":"Jaqueta","gender":"Unissex","price":10}`},
		{"bad gender", "/api/v1/items", `{"name":"Jaqueta","size":"M","category":"Jaqueta","gender":"Ambos","price":10}`},
		{"negative price", "/api/v1/items", `{"name":"Jaqueta","size":"M","category":"Jaqueta","gender":"Unissex","price":-1}`},
		{"negative final price", "/api/v1/sales", `{"customer_id":"c1","item_id":"i1","final_price":-5}`},
	}
	for _, tc := range cases {
		resp, body := doJSON(t, app, sid, "POST", tc.target, tc.body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d %s", tc.name, resp.StatusCode, body)
		}
	}

	// unknown references -> 404
	resp, body := doJSON(t, app, sid, "POST", "/api/v1/sales", `{"customer_id":"ghost","item_id":"ghost","final_price":5}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown refs, got %d %s", resp.StatusCode, body)
	}
	resp, _ = doJSON(t, app, sid, "GET", "/api/v1/customers/ghost/matches", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown customer, got %d", resp.StatusCode)
	}
}

func TestAPICredentialRotation(t *testing.T) {
	app, sid := newTestApp(t)

	resp, body := doJSON(t, app, sid, "POST", "/admin/credential", `{"username":"dono","password":"NovaSenha2!"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("rotate: %d %s", resp.StatusCode, body)
	}

	// old credential no longer logs in, new one does
	respOld, _ := app.Test(jsonReq("POST", "/login", `{"username":"admin","password":"Segredo1!"}`))
	if respOld.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for rotated-out credential, got %d", respOld.StatusCode)
	}
	respNew, _ := app.Test(jsonReq("POST", "/login", `{"username":"dono","password":"NovaSenha2!"}`))
	if respNew.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for new credential, got %d", respNew.StatusCode)
	}
}
