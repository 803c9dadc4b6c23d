package pet

// DeriveMood classifies the average of the four core gauges. Health, weight
// and exercise level do not count.
func DeriveMood(s Stats) Mood {
	avg := (s.Energy + s.Hydration + s.Cleanliness + s.Happiness) / 4

	switch {
	case avg >= HappyMoodThreshold:
		return MoodHappy
	case avg >= NormalMoodThreshold:
		return MoodNormal
	case avg >= SadMoodThreshold:
		return MoodSad
	default:
		return MoodAngry
	}
}

// GetMoodEmoji returns the emoji for a mood
func GetMoodEmoji(m Mood) string {
	switch m {
	case MoodHappy:
		return StatusEmojiHappy
	case MoodSad:
		return StatusEmojiSad
	case MoodAngry:
		return StatusEmojiAngry
	default:
		return StatusEmojiNormal
	}
}

// GetStatusWithLabel returns the mood emoji with a text label for the UI
func GetStatusWithLabel(p Pet) string {
	switch p.Mood {
	case MoodHappy:
		return StatusEmojiHappy + " Happy"
	case MoodSad:
		return StatusEmojiSad + " Sad"
	case MoodAngry:
		return StatusEmojiAngry + " Angry"
	default:
		return StatusEmojiNormal + " Normal"
	}
}
