package pet

import "time"

// Game constants
const (
	DefaultPetName = "Pixel Pet"
	DefaultPetKind = "cat"
	MaxStat        = 100.0
	MinStat        = 0.0
	MinWeight      = 50.0 // Weight floor, no ceiling

	// Baseline gauges for a new pet
	InitialWeight        = 100.0
	InitialExerciseLevel = 50.0

	// Decay rates (per minute since the matching action)
	EnergyDecayPerMinute      = 0.1
	HydrationDecayPerMinute   = 0.15
	CleanlinessDecayPerMinute = 0.05
	HappinessDecayPerMinute   = 0.08

	// Action effects
	DrinkHydrationIncrease = 30.0
	CleanHappinessIncrease = 10.0
	PlayHappinessIncrease  = 20.0
	PlayEnergyDecrease     = 10.0
	CareHappinessIncrease  = 5.0
	ExerciseEnergyCost     = 0.5 // Energy lost per exercise point
	ExerciseWeightLoss     = 0.1 // Weight lost per exercise point
	PlayExerciseAmount     = 20.0

	// Mood thresholds over the average of the four core gauges
	HappyMoodThreshold  = 75.0
	NormalMoodThreshold = 50.0
	SadMoodThreshold    = 25.0

	// Evolution
	EvolutionThreshold         = 10.0 // Progress needed to take a form
	FruitJellyProgress         = 1.0
	WaterRainSpiritProgress    = 0.5
	WeatherFormProgressPerHour = 0.5
)

// Cooldowns between repeated actions
const (
	FeedCooldown  = 30 * time.Minute
	CleanCooldown = 60 * time.Minute
	PlayCooldown  = 60 * time.Minute

	CleaningReminderAfter = 2 * time.Hour
)

// Mood is derived from the gauges and never set directly.
type Mood string

const (
	MoodHappy  Mood = "HAPPY"
	MoodNormal Mood = "NORMAL"
	MoodSad    Mood = "SAD"
	MoodAngry  Mood = "ANGRY"
)

// Form represents evolution forms
type Form string

const (
	FormBasic       Form = "BASIC"
	FormSunnySprite Form = "SUNNY_SPRITE"
	FormSnowMonster Form = "SNOW_MONSTER"
	FormJelly       Form = "JELLY"
	FormRainSpirit  Form = "RAIN_SPIRIT"
)

// Forms lists every form in display order.
var Forms = []Form{FormBasic, FormSunnySprite, FormSnowMonster, FormJelly, FormRainSpirit}

// FoodType selects how much energy a meal restores.
type FoodType string

const (
	FoodBread FoodType = "bread"
	FoodFruit FoodType = "fruit"
	FoodWater FoodType = "water"
	FoodCandy FoodType = "candy"
)

// Foods lists every food in menu order.
var Foods = []FoodType{FoodBread, FoodFruit, FoodWater, FoodCandy}

// Status emojis
const (
	StatusEmojiHappy  = "😸"
	StatusEmojiNormal = "🙂"
	StatusEmojiSad    = "😿"
	StatusEmojiAngry  = "😾"
)
