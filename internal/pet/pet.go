package pet

import (
	"log"
	"time"
)

// Stats holds the pet's gauges. Every gauge lives in [0,100] except Weight,
// which has a floor of 50 and no ceiling.
type Stats struct {
	Energy        float64 `json:"energy"`
	Hydration     float64 `json:"hydration"`
	Cleanliness   float64 `json:"cleanliness"`
	Happiness     float64 `json:"happiness"`
	Health        float64 `json:"health"`
	Weight        float64 `json:"weight"`
	ExerciseLevel float64 `json:"exerciseLevel"`
}

// Pet represents one virtual pet's state
type Pet struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Mood  Mood   `json:"mood"`
	Form  Form   `json:"form"`
	Stats Stats  `json:"stats"`

	LastFed     time.Time `json:"lastFed"`
	LastDrank   time.Time `json:"lastDrank"`
	LastCleaned time.Time `json:"lastCleaned"`
	LastPlayed  time.Time `json:"lastPlayed"`
	CreatedAt   time.Time `json:"createdAt"`

	// DecayedAt is the instant the gauges were last decayed up to.
	DecayedAt time.Time `json:"decayedAt"`

	EvolutionProgress map[Form]float64 `json:"evolutionProgress"`
}

// newPet builds a pet at the documented baseline.
func newPet(id, name, kind string, now time.Time) Pet {
	progress := make(map[Form]float64, len(Forms))
	for _, f := range Forms {
		progress[f] = 0
	}
	p := Pet{
		ID:   id,
		Name: name,
		Kind: kind,
		Form: FormBasic,
		Stats: Stats{
			Energy:        MaxStat,
			Hydration:     MaxStat,
			Cleanliness:   MaxStat,
			Happiness:     MaxStat,
			Health:        MaxStat,
			Weight:        InitialWeight,
			ExerciseLevel: InitialExerciseLevel,
		},
		LastFed:           now,
		LastDrank:         now,
		LastCleaned:       now,
		LastPlayed:        now,
		CreatedAt:         now,
		DecayedAt:         now,
		EvolutionProgress: progress,
	}
	p.Mood = DeriveMood(p.Stats)
	return p
}

// clone returns a copy that shares no mutable state with p.
func (p Pet) clone() Pet {
	progress := make(map[Form]float64, len(p.EvolutionProgress))
	for k, v := range p.EvolutionProgress {
		progress[k] = v
	}
	p.EvolutionProgress = progress
	return p
}

// addProgress increments the accumulator for a form and evolves if a form
// crossed the threshold.
func (p *Pet) addProgress(form Form, amount float64) {
	if amount <= 0 {
		return
	}
	if p.EvolutionProgress == nil {
		p.EvolutionProgress = make(map[Form]float64)
	}
	p.EvolutionProgress[form] += amount
	p.evolve()
}

// evolve switches to the non-basic form with the highest progress once it
// reaches EvolutionThreshold. Ties keep the current form.
func (p *Pet) evolve() {
	best, bestProgress := p.Form, 0.0
	if p.Form != FormBasic {
		bestProgress = p.EvolutionProgress[p.Form]
	}
	for _, f := range Forms {
		if f == FormBasic {
			continue
		}
		if v := p.EvolutionProgress[f]; v >= EvolutionThreshold && v > bestProgress {
			best, bestProgress = f, v
		}
	}
	if best != p.Form {
		p.Form = best
		log.Printf("Pet %s evolved to %s", p.Name, p.GetFormName())
	}
}

// GetFormName returns the display name for the pet's current form
func (p *Pet) GetFormName() string {
	switch p.Form {
	case FormBasic:
		return "Basic"
	case FormSunnySprite:
		return "Sunny Sprite"
	case FormSnowMonster:
		return "Snow Monster"
	case FormJelly:
		return "Jelly"
	case FormRainSpirit:
		return "Rain Spirit"
	default:
		return "Unknown"
	}
}

// GetFormEmoji returns the emoji for the pet's current form
func (p *Pet) GetFormEmoji() string {
	switch p.Form {
	case FormBasic:
		return "🐣"
	case FormSunnySprite:
		return "🌞"
	case FormSnowMonster:
		return "☃️"
	case FormJelly:
		return "🪼"
	case FormRainSpirit:
		return "💧"
	default:
		return "❓"
	}
}

// clamp keeps a gauge inside [MinStat, MaxStat].
func clamp(v float64) float64 {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}
