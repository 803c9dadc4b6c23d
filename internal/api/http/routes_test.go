package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"pixelpet/internal/game"
	"pixelpet/internal/pet"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func newTestApp(t *testing.T) (*fiber.App, *game.Game, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Date(2024, 6, 1, 21, 0, 0, 0, time.Local)}
	g := game.New(game.Options{Now: clock.Now})
	return NewApp(g), g, clock
}

func do(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestHealth(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := do(t, app, http.MethodGet, "/health", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
}

func TestCreateAndGetPet(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := do(t, app, http.MethodPost, "/api/v1/pets", `{"name":"Mochi","kind":"dog"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, resp.StatusCode)
	}
	var created petView
	decode(t, resp, &created)
	if created.Name != "Mochi" || created.Kind != "dog" || created.Mood != pet.MoodHappy {
		t.Errorf("created = %+v", created.Pet)
	}
	if created.Status != "😸 Happy" || created.FormName != "Basic" {
		t.Errorf("Status/FormName = %q/%q", created.Status, created.FormName)
	}

	resp = do(t, app, http.MethodGet, "/api/v1/pets/"+created.ID, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	// Empty body falls back to defaults
	resp = do(t, app, http.MethodPost, "/api/v1/pets", "")
	var defaulted petView
	decode(t, resp, &defaulted)
	if defaulted.Name != pet.DefaultPetName {
		t.Errorf("Name = %q, want %q", defaulted.Name, pet.DefaultPetName)
	}

	resp = do(t, app, http.MethodGet, "/api/v1/pets", "")
	var list []petView
	decode(t, resp, &list)
	if len(list) != 2 || list[0].ID != created.ID {
		t.Errorf("list = %d pets", len(list))
	}
}

func TestUnknownPet(t *testing.T) {
	app, _, _ := newTestApp(t)

	targets := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/pets/missing"},
		{http.MethodGet, "/api/v1/pets/missing/cooldowns"},
		{http.MethodPost, "/api/v1/pets/missing/feed"},
		{http.MethodPost, "/api/v1/pets/missing/drink"},
		{http.MethodPost, "/api/v1/pets/missing/clean"},
		{http.MethodPost, "/api/v1/pets/missing/play"},
		{http.MethodPost, "/api/v1/pets/missing/care"},
	}

	for _, tt := range targets {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp := do(t, app, tt.method, tt.path, "")
			if resp.StatusCode != http.StatusNotFound {
				t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
			}
			var body struct {
				Error   bool   `json:"error"`
				Message string `json:"message"`
			}
			decode(t, resp, &body)
			if !body.Error || body.Message != "pet not found" {
				t.Errorf("body = %+v", body)
			}
		})
	}
}

func TestActionCooldown(t *testing.T) {
	app, g, clock := newTestApp(t)
	p := g.Registry().Create("Pixel", "cat")

	resp := do(t, app, http.MethodPost, "/api/v1/pets/"+p.ID+"/feed", `{"food":"fruit"}`)
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected status %d, got %d", http.StatusTooManyRequests, resp.StatusCode)
	}
	if got := resp.Header.Get("Retry-After"); got != "1800" {
		t.Errorf("Retry-After = %q, want 1800", got)
	}

	clock.now = clock.now.Add(pet.FeedCooldown)
	resp = do(t, app, http.MethodPost, "/api/v1/pets/"+p.ID+"/feed", `{"food":"fruit"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	var fed petView
	decode(t, resp, &fed)
	if fed.EvolutionProgress[pet.FormJelly] != 1 {
		t.Errorf("jelly progress = %v, want 1", fed.EvolutionProgress[pet.FormJelly])
	}

	resp = do(t, app, http.MethodGet, "/api/v1/pets/"+p.ID+"/cooldowns", "")
	var cooldowns map[string]int
	decode(t, resp, &cooldowns)
	if cooldowns["feed"] != 1800 || cooldowns["clean"] != 1800 || cooldowns["play"] != 1800 {
		t.Errorf("cooldowns = %v", cooldowns)
	}
}

func TestUngatedActions(t *testing.T) {
	app, g, _ := newTestApp(t)
	p := g.Registry().Create("Pixel", "cat")

	for _, action := range []string{"drink", "care", "drink"} {
		resp := do(t, app, http.MethodPost, "/api/v1/pets/"+p.ID+"/"+action, "")
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s: expected status %d, got %d", action, http.StatusOK, resp.StatusCode)
		}
	}
}

func TestRequestValidation(t *testing.T) {
	app, g, clock := newTestApp(t)
	p := g.Registry().Create("Pixel", "cat")
	clock.now = clock.now.Add(time.Hour)

	tests := []struct {
		name string
		path string
		body string
	}{
		{"unknown food", "/api/v1/pets/" + p.ID + "/feed", `{"food":"rock"}`},
		{"broken json", "/api/v1/pets/" + p.ID + "/feed", `{"food":`},
		{"missing amount", "/api/v1/pets/" + p.ID + "/exercise", `{}`},
		{"amount too large", "/api/v1/pets/" + p.ID + "/exercise", `{"amount":500}`},
		{"name too long", "/api/v1/pets", `{"name":"` + strings.Repeat("x", 40) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, app, http.MethodPost, tt.path, tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
			}
		})
	}

	resp := do(t, app, http.MethodPost, "/api/v1/pets/"+p.ID+"/exercise", `{"amount":20}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	var exercised petView
	decode(t, resp, &exercised)
	if exercised.Stats.ExerciseLevel != 70 {
		t.Errorf("ExerciseLevel = %v, want 70", exercised.Stats.ExerciseLevel)
	}
}

func TestWorldAndAlerts(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/v1/world", "")
	var world struct {
		Night   bool            `json:"night"`
		Period  string          `json:"period"`
		Weather json.RawMessage `json:"weather"`
		Effect  struct {
			EnergyConsumptionRate float64 `json:"energyConsumptionRate"`
		} `json:"effect"`
	}
	decode(t, resp, &world)
	if !world.Night || world.Period != "NIGHT" {
		t.Errorf("world = %+v", world)
	}
	if string(world.Weather) != "null" {
		t.Errorf("weather = %s, want null before the first fetch", world.Weather)
	}
	if world.Effect.EnergyConsumptionRate != 1 {
		t.Errorf("effect = %+v, want neutral", world.Effect)
	}

	resp = do(t, app, http.MethodGet, "/api/v1/alerts", "")
	var alerts []game.Alert
	decode(t, resp, &alerts)
	if len(alerts) != 0 {
		t.Errorf("alerts = %v", alerts)
	}

	resp = do(t, app, http.MethodDelete, "/api/v1/alerts", "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, resp.StatusCode)
	}
}
