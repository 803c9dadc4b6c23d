package weather

// NeutralEffect leaves decay untouched. It stands in until the first
// successful weather fetch.
func NeutralEffect() Effect {
	return Effect{
		Type:                  TypeCloudy,
		MoodModifier:          0,
		EnergyConsumptionRate: 1,
		ExerciseEfficiency:    1,
	}
}

// EffectFor maps a weather type to its fixed modifier bundle.
func EffectFor(t Type) Effect {
	effect := NeutralEffect()
	effect.Type = t

	switch t {
	case TypeSunny:
		effect.MoodModifier = 2
		effect.ExerciseEfficiency = 1.2
		effect.EnergyConsumptionRate = 1.1
	case TypeRainy:
		effect.MoodModifier = -1
		effect.ExerciseEfficiency = 0.8
		effect.EnergyConsumptionRate = 0.9
		effect.SpecialEvents = []string{EventRaindropCollecting}
	case TypeSnowy:
		effect.MoodModifier = 1
		effect.ExerciseEfficiency = 0.7
		effect.EnergyConsumptionRate = 1.2
		effect.SpecialEvents = []string{EventSnowmanBuilding}
	case TypeWindy:
		effect.MoodModifier = 0
		effect.ExerciseEfficiency = 0.9
		effect.EnergyConsumptionRate = 1.1
	case TypeStormy:
		effect.MoodModifier = -2
		effect.ExerciseEfficiency = 0.5
		effect.EnergyConsumptionRate = 1.3
	}

	return effect
}

// TypeFromCode maps an OpenWeather condition code to a weather type.
// Codes outside every band fall back to sunny.
func TypeFromCode(code int) Type {
	switch {
	case code >= 200 && code < 300:
		return TypeStormy
	case code >= 300 && code < 600:
		return TypeRainy
	case code >= 600 && code < 700:
		return TypeSnowy
	case code >= 700 && code < 800:
		return TypeCloudy
	case code == 800:
		return TypeSunny
	case code > 800:
		return TypeCloudy
	default:
		return TypeSunny
	}
}

// Emoji returns an icon for the weather type.
func (t Type) Emoji() string {
	switch t {
	case TypeSunny:
		return "☀️"
	case TypeCloudy:
		return "☁️"
	case TypeRainy:
		return "🌧️"
	case TypeSnowy:
		return "❄️"
	case TypeWindy:
		return "💨"
	case TypeStormy:
		return "⛈️"
	default:
		return "❓"
	}
}
