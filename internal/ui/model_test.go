package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pixelpet/internal/game"
	"pixelpet/internal/pet"
	"pixelpet/internal/weather"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func newTestModel(t *testing.T) (Model, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Date(2024, 6, 1, 10, 0, 0, 0, time.Local)}
	g := game.New(game.Options{Now: clock.Now})
	p := g.Registry().Create("Pixel", "cat")
	return NewModel(g, p.ID), clock
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(Model)
	}
	return m, cmd
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMenuNavigation(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, keyUp)
	if m.Choice != 0 {
		t.Errorf("Choice = %d, want 0 at the top", m.Choice)
	}

	for i := 0; i < 10; i++ {
		m, _ = press(t, m, keyDown)
	}
	if m.Choice != choiceQuit {
		t.Errorf("Choice = %d, want %d at the bottom", m.Choice, choiceQuit)
	}

	m, cmd := press(t, m, keyEnter)
	if !m.Quitting || cmd == nil {
		t.Error("Expected Quit to quit")
	}
}

func TestFoodCyclesOnlyOnFeed(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, keyRight, keyRight)
	if pet.Foods[m.Food] != pet.FoodWater {
		t.Errorf("Food = %s, want %s", pet.Foods[m.Food], pet.FoodWater)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	if pet.Foods[m.Food] != pet.FoodCandy {
		t.Errorf("Food = %s, want %s after wrapping", pet.Foods[m.Food], pet.FoodCandy)
	}

	m, _ = press(t, m, keyDown, keyRight)
	if pet.Foods[m.Food] != pet.FoodCandy {
		t.Error("Expected food to stay put away from Feed")
	}
}

func TestFeedRespectsCooldown(t *testing.T) {
	m, clock := newTestModel(t)

	m, cmd := press(t, m, keyEnter)
	if cmd != nil || m.Animation.Type != AnimNone {
		t.Fatal("Expected feed to be refused right after adoption")
	}
	if !strings.Contains(m.Message, "30m") {
		t.Errorf("Message = %q, want remaining cooldown", m.Message)
	}

	clock.now = clock.now.Add(pet.FeedCooldown)
	m, cmd = press(t, m, keyRight, keyEnter)
	if cmd == nil || m.Animation.Type != AnimFeed {
		t.Fatal("Expected feed to start an animation")
	}

	p, _ := m.Game.Registry().Get(m.PetID)
	if p.EvolutionProgress[pet.FormJelly] != 1 {
		t.Errorf("Expected fruit to be fed, progress = %v", p.EvolutionProgress)
	}
}

func TestAnimationBlocksInput(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, keyDown, keyEnter) // Drink
	if m.Animation.Type != AnimDrink {
		t.Fatalf("Animation = %v, want drink", m.Animation.Type)
	}

	m, _ = press(t, m, keyDown)
	if m.Choice != choiceDrink {
		t.Error("Expected navigation to be ignored during an animation")
	}

	// Stale ticks are dropped
	next, _ := m.Update(animTickMsg{started: m.Animation.StartTime.Add(-time.Second)})
	if next.(Model).Animation.Frame != 0 {
		t.Error("Expected stale animation tick to be ignored")
	}

	for i := 0; i < AnimationTotalFrames(AnimDrink); i++ {
		next, _ = m.Update(animTickMsg{started: m.Animation.StartTime})
		m = next.(Model)
	}
	if m.Animation.Type != AnimNone {
		t.Error("Expected animation to finish")
	}
}

type failingFetcher struct{}

func (failingFetcher) Current(context.Context, weather.Coordinates) (weather.Data, error) {
	return weather.Data{}, context.DeadlineExceeded
}

func TestAlertsDismissWithX(t *testing.T) {
	clock := &testClock{now: time.Date(2024, 6, 1, 10, 0, 0, 0, time.Local)}
	g := game.New(game.Options{Now: clock.Now, Fetcher: failingFetcher{}, Locator: weather.DeniedLocator{}})
	p := g.Registry().Create("Pixel", "cat")
	m := NewModel(g, p.ID)

	_ = g.RefreshWeather(context.Background())
	if !strings.Contains(m.View(), "Location needed") {
		t.Fatal("Expected the alert to be shown")
	}

	m, _ = press(t, m, runeKey('x'))
	if strings.Contains(m.View(), "Location needed") {
		t.Error("Expected the alert to be dismissed")
	}
}

func TestViewShowsCooldownsAndWorld(t *testing.T) {
	m, clock := newTestModel(t)
	clock.now = clock.now.Add(10 * time.Minute)

	view := m.View()
	for _, want := range []string{"Pixel", "😸 Happy", "Day", "(20m)", "(50m)"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	m, _ = press(t, m, runeKey('q'))
	if m.View() != "Thanks for playing!\n" {
		t.Errorf("View() after quit = %q", m.View())
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{30 * time.Second, "30s"},
		{1500 * time.Millisecond, "2s"},
		{time.Minute, "1m"},
		{61 * time.Second, "2m"},
		{30 * time.Minute, "30m"},
	}

	for _, tt := range tests {
		if got := formatRemaining(tt.in); got != tt.want {
			t.Errorf("formatRemaining(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestStatsView(t *testing.T) {
	p := pet.Pet{Name: "Pixel", Kind: "cat", Form: pet.FormJelly, Mood: pet.MoodSad,
		Stats: pet.Stats{Energy: 40, Hydration: 10, Cleanliness: 70, Happiness: 52, Health: 100, Weight: 98}}
	view := StatsModel{Pet: p, Weather: &weather.Data{Type: weather.TypeRainy, Temperature: 12}}.View()

	for _, want := range []string{"Jelly", "😿 Sad", "RAINY", "[████░░░░░░]  40%", "[█░░░░░░░░░]  10%"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	_, cmd := StatsModel{Pet: p}.Update(runeKey('a'))
	if cmd == nil {
		t.Error("Expected any key to close the stats screen")
	}
}
