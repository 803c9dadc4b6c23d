// Package game wires the time oracle, the pet registry and the latest weather
// effect into one explicitly constructed context that owns the update loop.
package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"pixelpet/internal/gametime"
	"pixelpet/internal/pet"
	"pixelpet/internal/weather"
)

var (
	// ErrUnknownPet is returned by actions on an id the registry does not know.
	ErrUnknownPet = errors.New("game: unknown pet")
	// ErrCooldown is matched by every *CooldownError.
	ErrCooldown = errors.New("game: action on cooldown")
)

// CooldownError reports a gated action attempted too early.
type CooldownError struct {
	Action    pet.Action
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("game: %s on cooldown for %s", e.Action, e.Remaining.Round(time.Second))
}

// Is lets errors.Is match ErrCooldown.
func (e *CooldownError) Is(target error) bool {
	return target == ErrCooldown
}

// Fetcher reads current weather at a position.
type Fetcher interface {
	Current(ctx context.Context, coords weather.Coordinates) (weather.Data, error)
}

// Alert is a dismissable, user-facing notice about a non-fatal failure.
type Alert struct {
	Time    time.Time `json:"time"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
}

// Options holds the collaborators of a Game. Registry and Oracle are
// created when nil; Fetcher and Locator may be nil to run without weather.
type Options struct {
	Registry *pet.Registry
	Oracle   *gametime.Oracle
	Fetcher  Fetcher
	Locator  weather.Locator
	Now      func() time.Time
}

// Game is the context object passed to whatever drives the update loop.
type Game struct {
	registry *pet.Registry
	oracle   *gametime.Oracle
	fetcher  Fetcher
	locator  weather.Locator
	now      func() time.Time

	mu      sync.RWMutex
	reading *weather.Data
	effect  weather.Effect
	alerts  []Alert
}

// New creates a Game with a neutral weather effect.
func New(opts Options) *Game {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	registry := opts.Registry
	if registry == nil {
		registry = pet.NewRegistry(now)
	}
	oracle := opts.Oracle
	if oracle == nil {
		oracle = gametime.NewOracle(now)
	}
	return &Game{
		registry: registry,
		oracle:   oracle,
		fetcher:  opts.Fetcher,
		locator:  opts.Locator,
		now:      now,
		effect:   weather.NeutralEffect(),
	}
}

// Registry returns the pet registry.
func (g *Game) Registry() *pet.Registry { return g.registry }

// Now returns the game clock's current time.
func (g *Game) Now() time.Time { return g.now() }

// Tick refreshes the oracle and decays every pet with the current effect.
func (g *Game) Tick() {
	g.oracle.Refresh()
	g.registry.DecayAll(g.Effect())
}

// IsNight returns the oracle's last computed flag.
func (g *Game) IsNight() bool { return g.oracle.IsNight() }

// Period returns the oracle's current day period.
func (g *Game) Period() gametime.DayPeriod { return g.oracle.Period() }

// Effect returns the effect the next decay pass will use.
func (g *Game) Effect() weather.Effect {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.effect
}

// Weather returns the latest reading, or false before the first success.
func (g *Game) Weather() (weather.Data, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.reading == nil {
		return weather.Data{}, false
	}
	return *g.reading, true
}

// RefreshWeather locates the player, fetches current conditions and maps
// them to an effect. Failures are logged, raised as alerts and returned; the
// previous effect stays in place.
func (g *Game) RefreshWeather(ctx context.Context) error {
	if g.fetcher == nil || g.locator == nil {
		return nil
	}

	coords, err := g.locator.Locate(ctx)
	if err != nil {
		if errors.Is(err, weather.ErrPermissionDenied) {
			log.Printf("weather: location unavailable: %v", err)
			g.raise("Location needed", "Allow location access to get local weather.")
		} else {
			log.Printf("weather: locate failed: %v", err)
			g.raise("Weather unavailable", "Could not determine your location.")
		}
		return err
	}

	data, err := g.fetcher.Current(ctx, coords)
	if err != nil {
		log.Printf("weather: fetch failed: %v", err)
		g.raise("Weather unavailable", "Check your network connection.")
		return err
	}

	effect := weather.EffectFor(data.Type)

	g.mu.Lock()
	g.reading = &data
	g.effect = effect
	g.mu.Unlock()

	log.Printf("weather: %s (%s, %.1f°C), mood modifier %+.1f", data.Type, data.Description, data.Temperature, effect.MoodModifier)
	return nil
}

func (g *Game) raise(title, message string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.alerts = append(g.alerts, Alert{Time: g.now(), Title: title, Message: message})
}

// Alerts returns pending alerts without dismissing them.
func (g *Game) Alerts() []Alert {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Alert, len(g.alerts))
	copy(out, g.alerts)
	return out
}

// DismissAlerts clears pending alerts.
func (g *Game) DismissAlerts() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.alerts = nil
}

// gate returns the pet if the action's cooldown has elapsed.
func (g *Game) gate(id string, a pet.Action) error {
	p, ok := g.registry.Get(id)
	if !ok {
		return ErrUnknownPet
	}
	now := g.now()
	if !p.CanDo(a, now) {
		return &CooldownError{Action: a, Remaining: p.RemainingCooldown(a, now)}
	}
	return nil
}

func found(p pet.Pet, ok bool) (pet.Pet, error) {
	if !ok {
		return pet.Pet{}, ErrUnknownPet
	}
	return p, nil
}

// Feed gives the pet a meal if the feed cooldown has elapsed.
func (g *Game) Feed(id string, food pet.FoodType) (pet.Pet, error) {
	if err := g.gate(id, pet.ActionFeed); err != nil {
		return pet.Pet{}, err
	}
	return found(g.registry.FeedFood(id, food))
}

// Drink waters the pet. It is not gated.
func (g *Game) Drink(id string) (pet.Pet, error) {
	return found(g.registry.Drink(id))
}

// Clean bathes the pet if the clean cooldown has elapsed.
func (g *Game) Clean(id string) (pet.Pet, error) {
	if err := g.gate(id, pet.ActionClean); err != nil {
		return pet.Pet{}, err
	}
	return found(g.registry.Clean(id))
}

// Play plays with the pet if the play cooldown has elapsed.
func (g *Game) Play(id string) (pet.Pet, error) {
	if err := g.gate(id, pet.ActionPlay); err != nil {
		return pet.Pet{}, err
	}
	return found(g.registry.Play(id))
}

// Exercise trains the pet under the current weather; it shares the play
// cooldown.
func (g *Game) Exercise(id string, amount float64) (pet.Pet, error) {
	if err := g.gate(id, pet.ActionPlay); err != nil {
		return pet.Pet{}, err
	}
	return found(g.registry.Exercise(id, amount, g.Effect()))
}

// Care pets the pet. It is never gated.
func (g *Game) Care(id string) (pet.Pet, error) {
	return found(g.registry.Care(id))
}
