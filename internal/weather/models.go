package weather

// Type is the normalized weather condition the game reacts to.
type Type string

const (
	TypeSunny  Type = "SUNNY"
	TypeCloudy Type = "CLOUDY"
	TypeRainy  Type = "RAINY"
	TypeSnowy  Type = "SNOWY"
	TypeWindy  Type = "WINDY"
	TypeStormy Type = "STORMY"
)

// Special event tags attached to an Effect.
const (
	EventRaindropCollecting = "raindrop_collecting"
	EventSnowmanBuilding    = "snowman_building"
)

// Coordinates locate the player for the weather lookup.
type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// Data is a single reading from the weather provider.
type Data struct {
	Type        Type    `json:"type"`
	Code        int     `json:"code"`
	Temperature float64 `json:"temperature"` // Celsius
	Humidity    float64 `json:"humidity"`    // Percent
	WindSpeed   float64 `json:"windSpeed"`   // m/s
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// Effect is the modifier bundle a reading applies to the next decay pass.
// It is derived, passed by value and never retained past its pass.
type Effect struct {
	Type                  Type     `json:"type"`
	MoodModifier          float64  `json:"moodModifier"`          // Happiness per hour
	EnergyConsumptionRate float64  `json:"energyConsumptionRate"` // Multiplier on energy decay
	ExerciseEfficiency    float64  `json:"exerciseEfficiency"`    // Multiplier on exercise
	SpecialEvents         []string `json:"specialEvents,omitempty"`
}
