package pet

import "time"

// Action names a gated or ungated player action.
type Action string

const (
	ActionFeed  Action = "feed"
	ActionDrink Action = "drink"
	ActionClean Action = "clean"
	ActionPlay  Action = "play"
	ActionCare  Action = "care"
)

// IsActionAllowed reports whether at least threshold has passed since last.
// The boundary is inclusive.
func IsActionAllowed(last, now time.Time, threshold time.Duration) bool {
	return now.Sub(last) >= threshold
}

// Cooldown returns the minimum wait between two uses of an action. Drink and
// care are never gated.
func Cooldown(a Action) time.Duration {
	switch a {
	case ActionFeed:
		return FeedCooldown
	case ActionClean:
		return CleanCooldown
	case ActionPlay:
		return PlayCooldown
	default:
		return 0
	}
}

// lastAction returns the timestamp the action's cooldown runs from.
func (p *Pet) lastAction(a Action) (time.Time, bool) {
	switch a {
	case ActionFeed:
		return p.LastFed, true
	case ActionClean:
		return p.LastCleaned, true
	case ActionPlay:
		return p.LastPlayed, true
	default:
		return time.Time{}, false
	}
}

// CanDo reports whether the action's cooldown has elapsed at now.
func (p *Pet) CanDo(a Action, now time.Time) bool {
	last, gated := p.lastAction(a)
	if !gated {
		return true
	}
	return IsActionAllowed(last, now, Cooldown(a))
}

// CanFeed reports whether the feed cooldown has elapsed.
func (p *Pet) CanFeed(now time.Time) bool { return p.CanDo(ActionFeed, now) }

// CanClean reports whether the clean cooldown has elapsed.
func (p *Pet) CanClean(now time.Time) bool { return p.CanDo(ActionClean, now) }

// CanPlay reports whether the play cooldown has elapsed.
func (p *Pet) CanPlay(now time.Time) bool { return p.CanDo(ActionPlay, now) }

// RemainingCooldown returns how long until the action is allowed again, or
// zero if it already is.
func (p *Pet) RemainingCooldown(a Action, now time.Time) time.Duration {
	last, gated := p.lastAction(a)
	if !gated {
		return 0
	}
	remaining := Cooldown(a) - now.Sub(last)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// NeedsCleaning reports whether the pet has gone too long without a bath.
func (p *Pet) NeedsCleaning(now time.Time) bool {
	return now.Sub(p.LastCleaned) > CleaningReminderAfter
}
