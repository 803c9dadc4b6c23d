package ui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pixelpet/internal/game"
	"pixelpet/internal/pet"
)

// Menu entries, in display order
const (
	choiceFeed = iota
	choiceDrink
	choiceClean
	choicePlay
	choiceCare
	choiceQuit
)

var menuChoices = []string{"Feed", "Drink", "Clean", "Play", "Care", "Quit"}

const messageDuration = 3 * time.Second

// Model represents the game state
type Model struct {
	Game           *game.Game
	PetID          string
	Choice         int
	Food           int // Index into pet.Foods
	Quitting       bool
	Message        string
	MessageExpires time.Time
	Animation      Animation
}

type tickMsg time.Time
type animTickMsg struct {
	started time.Time
}

// RefreshMsg asks the model to redraw after the game state changed outside
// of Update, e.g. on a scheduler tick.
type RefreshMsg struct{}

// NewModel creates a new game model for one pet
func NewModel(g *game.Game, petID string) Model {
	return Model{
		Game:  g,
		PetID: petID,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tick()
}

// tick repaints once a second so cooldown countdowns stay current.
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func animTick(start time.Time) tea.Cmd {
	return tea.Tick(AnimationFrameDuration, func(t time.Time) tea.Msg {
		return animTickMsg{started: start}
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// While an animation is playing, ignore inputs except quit keys
		if m.Animation.Type != AnimNone {
			switch msg.String() {
			case "ctrl+c", "q":
				m.Quitting = true
				return m, tea.Quit
			default:
				return m, nil
			}
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		case "x":
			m.Game.DismissAlerts()
		case "up", "k":
			if m.Choice > 0 {
				m.Choice--
			}
		case "down", "j":
			if m.Choice < len(menuChoices)-1 {
				m.Choice++
			}
		case "left", "h":
			if m.Choice == choiceFeed {
				m.Food = (m.Food + len(pet.Foods) - 1) % len(pet.Foods)
			}
		case "right", "l":
			if m.Choice == choiceFeed {
				m.Food = (m.Food + 1) % len(pet.Foods)
			}
		case "enter", " ":
			if m.Choice == choiceQuit {
				m.Quitting = true
				return m, tea.Quit
			}
			if m.act() {
				return m, animTick(m.Animation.StartTime)
			}
		}

	case tickMsg:
		return m, tick()

	case RefreshMsg:
		return m, nil

	case animTickMsg:
		// Drop ticks that belong to an older animation (e.g., if a new action started)
		if m.Animation.Type == AnimNone || !m.Animation.StartTime.Equal(msg.started) {
			return m, nil
		}

		m.Animation.Frame++
		if IsAnimationComplete(m.Animation) {
			m.Animation = Animation{}
			return m, nil
		}

		return m, animTick(m.Animation.StartTime)
	}

	return m, nil
}

// act runs the selected action and reports whether an animation started.
func (m *Model) act() bool {
	var (
		err     error
		anim    AnimationType
		message string
	)

	switch m.Choice {
	case choiceFeed:
		food := pet.Foods[m.Food]
		_, err = m.Game.Feed(m.PetID, food)
		anim, message = AnimFeed, fmt.Sprintf("%s Yum!", foodEmoji(food))
	case choiceDrink:
		_, err = m.Game.Drink(m.PetID)
		anim, message = AnimDrink, "🥛 Gulp!"
	case choiceClean:
		_, err = m.Game.Clean(m.PetID)
		anim, message = AnimClean, "🛁 Squeaky clean!"
	case choicePlay:
		_, err = m.Game.Play(m.PetID)
		anim, message = AnimPlay, "🎾 Wheee!"
	case choiceCare:
		_, err = m.Game.Care(m.PetID)
		anim, message = AnimCare, "💕 Purr..."
	default:
		return false
	}

	if err != nil {
		var cd *game.CooldownError
		switch {
		case errors.As(err, &cd):
			m.setMessage(fmt.Sprintf("⏳ %s again in %s", menuChoices[m.Choice], formatRemaining(cd.Remaining)))
		case errors.Is(err, game.ErrUnknownPet):
			m.setMessage("❓ Your pet wandered off...")
		default:
			m.setMessage("⚠️ " + err.Error())
		}
		return false
	}

	m.setMessage(message)
	m.startAnimation(anim)
	return true
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = m.Game.Now().Add(messageDuration)
}

func (m *Model) startAnimation(animType AnimationType) {
	m.Animation = Animation{
		Type:      animType,
		Frame:     0,
		StartTime: m.Game.Now(),
	}
}

// gatedAction maps a menu entry to the cooldown it waits on.
func gatedAction(choice int) (pet.Action, bool) {
	switch choice {
	case choiceFeed:
		return pet.ActionFeed, true
	case choiceClean:
		return pet.ActionClean, true
	case choicePlay:
		return pet.ActionPlay, true
	default:
		return "", false
	}
}

func foodEmoji(food pet.FoodType) string {
	switch food {
	case pet.FoodBread:
		return "🍞"
	case pet.FoodFruit:
		return "🍎"
	case pet.FoodWater:
		return "💧"
	case pet.FoodCandy:
		return "🍬"
	default:
		return "🍽️"
	}
}

// formatRemaining rounds a wait up to whole minutes, or seconds under one.
func formatRemaining(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int((d + time.Second - 1) / time.Second))
	}
	return fmt.Sprintf("%dm", int((d + time.Minute - 1) / time.Minute))
}
