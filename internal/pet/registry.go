package pet

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"pixelpet/internal/weather"
)

// Registry owns every pet and is the only writer of their state. Unknown
// ids are ignored by all mutators.
type Registry struct {
	mu    sync.RWMutex
	pets  map[string]*Pet
	now   func() time.Time
	newID func() string
}

// NewRegistry creates an empty registry reading time from now. A nil clock
// falls back to the wall clock.
func NewRegistry(now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		pets:  make(map[string]*Pet),
		now:   now,
		newID: uuid.NewString,
	}
}

// Create allocates a new pet at the baseline and stores it.
func (r *Registry) Create(name, kind string) Pet {
	if name == "" {
		name = DefaultPetName
	}
	if kind == "" {
		kind = DefaultPetKind
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	for r.pets[id] != nil {
		id = r.newID()
	}
	p := newPet(id, name, kind, r.now())
	r.pets[id] = &p
	log.Printf("Created new pet: %s (%s, id %s)", p.Name, p.Kind, p.ID)
	return p.clone()
}

// Get returns a copy of the pet, or false if the id is unknown.
func (r *Registry) Get(id string) (Pet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.pets[id]
	if !ok {
		return Pet{}, false
	}
	return p.clone(), true
}

// List returns copies of all pets, oldest first.
func (r *Registry) List() []Pet {
	r.mu.RLock()
	out := make([]Pet, 0, len(r.pets))
	for _, p := range r.pets {
		out = append(out, p.clone())
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// modify applies f to the stored pet, recomputes mood and returns a copy.
func (r *Registry) modify(id string, f func(p *Pet, now time.Time)) (Pet, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pets[id]
	if !ok {
		return Pet{}, false
	}
	f(p, r.now())
	p.Mood = DeriveMood(p.Stats)
	return p.clone(), true
}

// Decay lowers each core gauge by its per-minute rate over the minutes since
// its own action, counted from no earlier than the previous decay. The
// effect scales energy loss and shifts happiness per hour; clamping happens
// after the effect is applied.
func (r *Registry) Decay(id string, effect weather.Effect) (Pet, bool) {
	return r.modify(id, func(p *Pet, now time.Time) {
		applyDecay(p, now, effect)
	})
}

// DecayAll decays every pet with the same effect.
func (r *Registry) DecayAll(effect weather.Effect) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for _, p := range r.pets {
		applyDecay(p, now, effect)
		p.Mood = DeriveMood(p.Stats)
	}
}

func applyDecay(p *Pet, now time.Time, effect weather.Effect) {
	energyMinutes := minutesSince(p.LastFed, p.DecayedAt, now)
	hydrationMinutes := minutesSince(p.LastDrank, p.DecayedAt, now)
	cleanlinessMinutes := minutesSince(p.LastCleaned, p.DecayedAt, now)
	happinessMinutes := minutesSince(p.LastPlayed, p.DecayedAt, now)

	p.Stats.Energy = clamp(p.Stats.Energy - energyMinutes*EnergyDecayPerMinute*effect.EnergyConsumptionRate)
	p.Stats.Hydration = clamp(p.Stats.Hydration - hydrationMinutes*HydrationDecayPerMinute)
	p.Stats.Cleanliness = clamp(p.Stats.Cleanliness - cleanlinessMinutes*CleanlinessDecayPerMinute)
	p.Stats.Happiness = clamp(p.Stats.Happiness - happinessMinutes*HappinessDecayPerMinute +
		effect.MoodModifier*happinessMinutes/60)

	hours := minutesSince(p.DecayedAt, p.DecayedAt, now) / 60
	if form, ok := weatherForm(effect.Type); ok {
		p.addProgress(form, hours*WeatherFormProgressPerHour)
	}

	advance(&p.DecayedAt, now)
}

// weatherForm returns the form a weather type nudges the pet toward.
func weatherForm(t weather.Type) (Form, bool) {
	switch t {
	case weather.TypeSunny:
		return FormSunnySprite, true
	case weather.TypeSnowy:
		return FormSnowMonster, true
	case weather.TypeRainy:
		return FormRainSpirit, true
	default:
		return "", false
	}
}

// minutesSince returns the minutes between the later of a and b and now,
// never negative.
func minutesSince(a, b, now time.Time) float64 {
	from := a
	if b.After(from) {
		from = b
	}
	if !now.After(from) {
		return 0
	}
	return now.Sub(from).Minutes()
}

// advance moves t forward to now; timestamps never go backwards.
func advance(t *time.Time, now time.Time) {
	if now.After(*t) {
		*t = now
	}
}

// Feed gives the pet bread.
func (r *Registry) Feed(id string) (Pet, bool) {
	return r.FeedFood(id, FoodBread)
}

// FeedFood restores energy by food type; fruit and water also feed the
// jelly and rain spirit forms.
func (r *Registry) FeedFood(id string, food FoodType) (Pet, bool) {
	return r.modify(id, func(p *Pet, now time.Time) {
		p.Stats.Energy = clamp(p.Stats.Energy + FoodEnergy(food))
		switch food {
		case FoodFruit:
			p.addProgress(FormJelly, FruitJellyProgress)
		case FoodWater:
			p.addProgress(FormRainSpirit, WaterRainSpiritProgress)
		}
		advance(&p.LastFed, now)
		log.Printf("Fed %s %s. Energy is now %.1f", p.Name, food, p.Stats.Energy)
	})
}

// FoodEnergy returns the energy a food restores; unknown food restores none.
func FoodEnergy(food FoodType) float64 {
	switch food {
	case FoodBread:
		return 30
	case FoodFruit:
		return 20
	case FoodWater:
		return 10
	case FoodCandy:
		return 40
	default:
		return 0
	}
}

// Drink restores hydration.
func (r *Registry) Drink(id string) (Pet, bool) {
	return r.modify(id, func(p *Pet, now time.Time) {
		p.Stats.Hydration = clamp(p.Stats.Hydration + DrinkHydrationIncrease)
		advance(&p.LastDrank, now)
		log.Printf("%s drank. Hydration is now %.1f", p.Name, p.Stats.Hydration)
	})
}

// Clean resets cleanliness to full and cheers the pet up.
func (r *Registry) Clean(id string) (Pet, bool) {
	return r.modify(id, func(p *Pet, now time.Time) {
		p.Stats.Cleanliness = MaxStat
		p.Stats.Happiness = clamp(p.Stats.Happiness + CleanHappinessIncrease)
		advance(&p.LastCleaned, now)
		log.Printf("Cleaned %s. Happiness is now %.1f", p.Name, p.Stats.Happiness)
	})
}

// Play raises happiness at the cost of energy.
func (r *Registry) Play(id string) (Pet, bool) {
	return r.modify(id, func(p *Pet, now time.Time) {
		p.Stats.Happiness = clamp(p.Stats.Happiness + PlayHappinessIncrease)
		p.Stats.Energy = clamp(p.Stats.Energy - PlayEnergyDecrease)
		advance(&p.LastPlayed, now)
		log.Printf("Played with %s. Happiness is now %.1f, Energy is now %.1f",
			p.Name, p.Stats.Happiness, p.Stats.Energy)
	})
}

// Exercise trains the pet; the weather effect scales the amount.
func (r *Registry) Exercise(id string, amount float64, effect weather.Effect) (Pet, bool) {
	return r.modify(id, func(p *Pet, now time.Time) {
		effective := amount * effect.ExerciseEfficiency
		p.Stats.ExerciseLevel = clamp(p.Stats.ExerciseLevel + effective)
		p.Stats.Energy = clamp(p.Stats.Energy - effective*ExerciseEnergyCost)
		p.Stats.Weight = max(p.Stats.Weight-effective*ExerciseWeightLoss, MinWeight)
		advance(&p.LastPlayed, now)
		log.Printf("%s exercised (%.1f). Weight is now %.1f", p.Name, effective, p.Stats.Weight)
	})
}

// Care pets the pet. It is never gated and stamps no timestamp.
func (r *Registry) Care(id string) (Pet, bool) {
	return r.modify(id, func(p *Pet, _ time.Time) {
		p.Stats.Happiness = clamp(p.Stats.Happiness + CareHappinessIncrease)
	})
}
