package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/amphipod/burrow"
)

// kindStyles colours each kind on terminals.
var kindStyles = [burrow.RoomCount]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // Amber
	lipgloss.NewStyle().Foreground(lipgloss.Color("137")).Bold(true), // Bronze
	lipgloss.NewStyle().Foreground(lipgloss.Color("166")).Bold(true), // Copper
	lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true), // Desert
}

var wallStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// render returns the diagram of b, coloured when color is set.
func render(b *burrow.Burrow, color bool) string {
	text := b.String()
	if !color {
		return text
	}

	var sb strings.Builder
	for _, r := range text {
		if k, ok := burrow.ParseKind(r); ok {
			sb.WriteString(kindStyles[k].Render(string(r)))
			continue
		}
		if r == '#' {
			sb.WriteString(wallStyle.Render("#"))
			continue
		}
		sb.WriteRune(r)
	}

	return sb.String()
}
