package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/seqboard/pkg/board"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary
	colorRed   = lipgloss.Color("167") // Soft red - hearts, diamonds
	colorWhite = lipgloss.Color("255") // Bright white - clubs, spades
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - corners, borders
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	styleIconInfo = lipgloss.NewStyle().Foreground(colorGray)
	styleKey      = lipgloss.NewStyle().Foreground(colorCyan).Width(4)

	styleRedSuit   = lipgloss.NewStyle().Foreground(colorRed).Padding(0, 1)
	styleBlackSuit = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
	styleCorner    = lipgloss.NewStyle().Foreground(colorDim).Padding(0, 1)
)

const (
	iconInfo  = "›"
	iconArrow = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printMapping prints one replacement as "KEY → VALUE".
func printMapping(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+StyleDim.Render(iconArrow)+" "+StyleValue.Render(value))
}

// =============================================================================
// Grid Output
// =============================================================================

// renderGrid draws b as a bordered table. Red suits are tinted and free
// corners are dimmed.
func renderGrid(b board.Board) string {
	rows := make([][]string, len(b))
	for i, r := range b {
		rows[i] = []string(r)
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		BorderRow(true).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 || row >= len(rows) || col >= len(rows[row]) {
				return styleBlackSuit
			}
			return cellStyle(rows[row][col])
		}).
		Render()
}

func cellStyle(cell string) lipgloss.Style {
	switch {
	case cell == board.CornerMarker:
		return styleCorner
	case strings.ContainsAny(cell, "♥♦"):
		return styleRedSuit
	default:
		return styleBlackSuit
	}
}
