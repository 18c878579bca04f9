package tui

import (
	"strings"

	"recipesearch/models"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#22c55e"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280"))

	chipStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#16a34a"))

	activeChipStyle = chipStyle.
			Background(lipgloss.Color("#2563eb")).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#374151")).
			Padding(0, 1).
			MarginBottom(1)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#e5e7eb"))

	cardLinkStyle = lipgloss.NewStyle().
			Faint(true).
			Underline(true)

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ca3af")).
			Italic(true)

	footerStyle = lipgloss.NewStyle().
			Faint(true).
			MarginTop(1)
)

const minCardWidth = 20

// RenderCard draws one recipe as a bordered card. The ingredient preview is
// wrapped to the card width and cut after two lines.
func RenderCard(r models.Recipe, width int) string {
	inner := width - cardStyle.GetHorizontalFrameSize()
	if inner < minCardWidth {
		inner = minCardWidth
	}

	preview := lipgloss.NewStyle().
		Width(inner).
		MaxHeight(2).
		Foreground(lipgloss.Color("#9ca3af")).
		Render(r.IngredientPreview())

	body := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Width(inner).Render(r.Label),
		preview,
		cardLinkStyle.Render(r.URL),
	)
	return cardStyle.Width(inner + cardStyle.GetHorizontalPadding()).Render(body)
}

// RenderCards draws recipes in upstream order, one card per recipe
func RenderCards(recipes []models.Recipe, width int) string {
	cards := make([]string, 0, len(recipes))
	for _, r := range recipes {
		cards = append(cards, RenderCard(r, width))
	}
	return strings.Join(cards, "\n")
}
