package display

import "github.com/charmbracelet/lipgloss"

// Card styles for reminder windows
var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(30)

	focusedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("205"))

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	cardTextStyle = lipgloss.NewStyle()

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 2)
)
