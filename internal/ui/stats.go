package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pixelpet/internal/pet"
	"pixelpet/internal/weather"
)

// StatsModel is a simple Bubble Tea model for displaying stats
type StatsModel struct {
	Pet     pet.Pet
	Weather *weather.Data
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			return m, tea.Quit
		}
	}
	return m, nil
}

// makeBar draws a ten-segment gauge.
func makeBar(value float64) string {
	filled := min(max(int(value/10), 0), 10)
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

// View implements tea.Model
func (m StatsModel) View() string {
	p := m.Pet
	formEmoji := p.GetFormEmoji()

	weatherDisplay := "Unknown"
	if m.Weather != nil {
		weatherDisplay = fmt.Sprintf("%s %s %.0f°C", m.Weather.Type.Emoji(), m.Weather.Type, m.Weather.Temperature)
	}

	var s strings.Builder
	s.WriteString("╔══════════════════════════════════════╗\n")
	s.WriteString(fmt.Sprintf("║  %s %s %s\n", formEmoji, p.Name, formEmoji))
	s.WriteString("╠══════════════════════════════════════╣\n")
	s.WriteString(fmt.Sprintf("║  Form:      %-24s\n", p.GetFormName()))
	s.WriteString(fmt.Sprintf("║  Kind:      %-24s\n", p.Kind))
	s.WriteString(fmt.Sprintf("║  Status:    %-24s\n", pet.GetStatusWithLabel(p)))
	s.WriteString(fmt.Sprintf("║  Weather:   %-24s\n", weatherDisplay))
	s.WriteString("║\n")
	s.WriteString(fmt.Sprintf("║  Energy:    [%s] %3.0f%%\n", makeBar(p.Stats.Energy), p.Stats.Energy))
	s.WriteString(fmt.Sprintf("║  Water:     [%s] %3.0f%%\n", makeBar(p.Stats.Hydration), p.Stats.Hydration))
	s.WriteString(fmt.Sprintf("║  Clean:     [%s] %3.0f%%\n", makeBar(p.Stats.Cleanliness), p.Stats.Cleanliness))
	s.WriteString(fmt.Sprintf("║  Happiness: [%s] %3.0f%%\n", makeBar(p.Stats.Happiness), p.Stats.Happiness))
	s.WriteString(fmt.Sprintf("║  Health:    [%s] %3.0f%%\n", makeBar(p.Stats.Health), p.Stats.Health))
	s.WriteString(fmt.Sprintf("║  Exercise:  [%s] %3.0f%%\n", makeBar(p.Stats.ExerciseLevel), p.Stats.ExerciseLevel))
	s.WriteString(fmt.Sprintf("║  Weight:    %.1f\n", p.Stats.Weight))
	s.WriteString("║\n")
	s.WriteString("║  Evolution:\n")
	for _, f := range pet.Forms {
		if f == pet.FormBasic {
			continue
		}
		progress := p.EvolutionProgress[f]
		s.WriteString(fmt.Sprintf("║    %-13s %4.1f / %.0f\n", string(f), progress, pet.EvolutionThreshold))
	}
	s.WriteString("╚══════════════════════════════════════╝\n")
	s.WriteString("\nPress ESC, click, or any key to close...")

	return s.String()
}

// DisplayStats shows the stats display
func DisplayStats(p pet.Pet, w *weather.Data) error {
	program := tea.NewProgram(StatsModel{Pet: p, Weather: w}, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running stats display: %w", err)
	}
	return nil
}
