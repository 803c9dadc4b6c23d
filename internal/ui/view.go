package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pixelpet/internal/pet"
)

var gameStyles = struct {
	title    lipgloss.Style
	status   lipgloss.Style
	menu     lipgloss.Style
	menuBox  lipgloss.Style
	stats    lipgloss.Style
	alert    lipgloss.Style
	disabled lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(40),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(40),

	menu: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	alert: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFD700")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FFD700")).
		Padding(0, 1),

	disabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")),
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}

	p, ok := m.Game.Registry().Get(m.PetID)
	if !ok {
		return gameStyles.status.Render("No pet here. Press q to quit.") + "\n"
	}

	// Show animation if one is active
	if m.Animation.Type != AnimNone {
		return m.renderAnimation(p)
	}

	formEmoji := p.GetFormEmoji()
	title := gameStyles.title.Render(formEmoji + " " + p.Name + " " + formEmoji)

	sections := []string{
		title,
		gameStyles.status.Render(m.renderWorld()),
		"",
		m.renderStats(p),
		"",
		m.renderStatus(p),
	}

	if p.NeedsCleaning(m.Game.Now()) {
		sections = append(sections, gameStyles.status.Render("🧼 "+p.Name+" could use a bath"))
	}

	if alerts := m.renderAlerts(); alerts != "" {
		sections = append(sections, "", alerts)
	}

	if m.Message != "" && m.Game.Now().Before(m.MessageExpires) {
		sections = append(sections, "", gameStyles.status.Render(m.Message))
	}

	helpText := "arrows to move • ←/→ pick food • enter to select • q to quit"
	if len(m.Game.Alerts()) > 0 {
		helpText = "[X] dismiss alert • " + helpText
	}

	sections = append(sections,
		"",
		m.renderMenu(p),
		"",
		gameStyles.status.Render(helpText),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderWorld() string {
	period := m.Game.Period()
	dayNight := "Day"
	if m.Game.IsNight() {
		dayNight = "Night"
	}

	world := fmt.Sprintf("%s %s", period.Emoji(), dayNight)
	if w, ok := m.Game.Weather(); ok {
		world += fmt.Sprintf("  %s %s %.0f°C", w.Type.Emoji(), w.Description, w.Temperature)
	}
	return world
}

func (m Model) renderStats(p pet.Pet) string {
	stats := []struct {
		name, value string
	}{
		{"Form", p.GetFormName()},
		{"Kind", p.Kind},
		{"Energy", fmt.Sprintf("%.0f%%", p.Stats.Energy)},
		{"Water", fmt.Sprintf("%.0f%%", p.Stats.Hydration)},
		{"Clean", fmt.Sprintf("%.0f%%", p.Stats.Cleanliness)},
		{"Happiness", fmt.Sprintf("%.0f%%", p.Stats.Happiness)},
		{"Health", fmt.Sprintf("%.0f%%", p.Stats.Health)},
	}

	var lines []string
	for _, stat := range stats {
		lines = append(lines, fmt.Sprintf("%-10s %s", stat.name+":", stat.value))
	}

	return gameStyles.stats.Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatus(p pet.Pet) string {
	return gameStyles.status.Render(fmt.Sprintf("Status: %s", pet.GetStatusWithLabel(p)))
}

func (m Model) renderAlerts() string {
	alerts := m.Game.Alerts()
	if len(alerts) == 0 {
		return ""
	}
	var lines []string
	for _, a := range alerts {
		lines = append(lines, fmt.Sprintf("⚠️ %s: %s", a.Title, a.Message))
	}
	return gameStyles.alert.Render(strings.Join(lines, "\n"))
}

func (m Model) renderMenu(p pet.Pet) string {
	now := m.Game.Now()
	var menuItems []string

	for i, choice := range menuChoices {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}

		label := choice
		if i == choiceFeed {
			food := pet.Foods[m.Food]
			label = fmt.Sprintf("%s ‹%s %s›", choice, foodEmoji(food), food)
		}

		item := fmt.Sprintf("%s %s", cursor, label)
		if action, gated := gatedAction(i); gated && !p.CanDo(action, now) {
			item = gameStyles.disabled.Render(fmt.Sprintf("%s (%s)", item, formatRemaining(p.RemainingCooldown(action, now))))
		}
		menuItems = append(menuItems, item)
	}

	return gameStyles.menuBox.Render(strings.Join(menuItems, "\n"))
}

func (m Model) renderAnimation(p pet.Pet) string {
	frame := GetAnimationFrame(m.Animation)
	formEmoji := p.GetFormEmoji()
	title := gameStyles.title.Render(formEmoji + " " + p.Name + " " + formEmoji)

	animStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Bold(true).
		Padding(1, 2)

	var status string
	if m.Message != "" && m.Game.Now().Before(m.MessageExpires) {
		status = gameStyles.status.Render(m.Message)
	}

	sections := []string{
		title,
		"",
		animStyle.Render(frame),
	}

	if status != "" {
		sections = append(sections, "", status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
