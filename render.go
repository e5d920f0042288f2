package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// cellText returns the text shown in a grid cell for its known state.
func cellText(row, col int, state cellState) string {
	switch state {
	case cellShip:
		return "SHIP"
	case cellClear:
		return "clear"
	default:
		return coordLabel(row, col)
	}
}

// cellStyleFor picks the style for a cell's state.
func cellStyleFor(state cellState) lipgloss.Style {
	switch state {
	case cellShip:
		return shipCellStyle
	case cellClear:
		return clearCellStyle
	default:
		return unknownCellStyle
	}
}

// ──────────────────────────── Panel rendering ────────────────────────────

// renderGridPanel renders the 4×4 sector grid.
func (m Model) renderGridPanel() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("SECTOR GRID"))
	sb.WriteString("\n\n")

	// Column header
	sb.WriteString("   ")
	for col := 0; col < gridSize; col++ {
		sb.WriteString(dimStyle.Render(padCenter(fmt.Sprintf("%d", col+1), cellW)))
	}
	sb.WriteString("\n")

	for row := 0; row < gridSize; row++ {
		sb.WriteString(labelStyle.Render(fmt.Sprintf(" %c ", rowLabels[row])))
		for col := 0; col < gridSize; col++ {
			text := padCenter(cellText(row, col, m.cells[row][col]), cellW-2)
			if row == m.cursorRow && col == m.cursorCol {
				sb.WriteString(cursorCellStyle.Render("[" + text + "]"))
			} else {
				sb.WriteString(" " + cellStyleFor(m.cells[row][col]).Render(text) + " ")
			}
		}
		sb.WriteString("\n\n")
	}

	fmt.Fprintf(&sb, "Cursor: %s", coordLabel(m.cursorRow, m.cursorCol))
	if m.statusMsg != "" {
		sb.WriteString("  ")
		sb.WriteString(statusStyle.Render(m.statusMsg))
	}

	return gridStyle.Render(sb.String())
}

// renderScannerPanel renders the row/column counting-scan readouts.
func (m Model) renderScannerPanel() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("SCANNERS"))
	sb.WriteString("\n\n")

	sb.WriteString(labelStyle.Render("ROWS"))
	sb.WriteString("\n")
	for row := 0; row < gridSize; row++ {
		if m.rowCounts[row] == lineUnscanned {
			fmt.Fprintf(&sb, " %s\n", scannerReadyStyle.Render(fmt.Sprintf("%c: ?", rowLabels[row])))
		} else {
			fmt.Fprintf(&sb, " %s\n", scannerUsedStyle.Render(fmt.Sprintf("%c: %d ship(s)", rowLabels[row], m.rowCounts[row])))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("COLS"))
	sb.WriteString("\n")
	for col := 0; col < gridSize; col++ {
		if m.colCounts[col] == lineUnscanned {
			fmt.Fprintf(&sb, " %s\n", scannerReadyStyle.Render(fmt.Sprintf("%d: ?", col+1)))
		} else {
			fmt.Fprintf(&sb, " %s\n", scannerUsedStyle.Render(fmt.Sprintf("%d: %d ship(s)", col+1, m.colCounts[col])))
		}
	}

	return scannerStyle.Render(sb.String())
}

// renderLogPanel renders the scrolling command log.
func (m Model) renderLogPanel() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("COMMAND LOG"))
	sb.WriteString("\n")
	sb.WriteString(m.logView.View())
	return logStyle.Width(max(m.width-2, 24)).Render(sb.String())
}

// renderControlsPanel renders the bottom help bar.
func (m Model) renderControlsPanel() string {
	var sb strings.Builder

	sb.WriteString(statusStyle.Render("Navigate: "))
	sb.WriteString("↑↓←→/hjkl Move    ")
	sb.WriteString(statusStyle.Render("⏎/Space"))
	sb.WriteString(" Ping sector\n")

	sb.WriteString(statusStyle.Render("Scans:    "))
	sb.WriteString("r Scan row  c Scan column    ")
	sb.WriteString(statusStyle.Render("n"))
	sb.WriteString(" New game  ")
	sb.WriteString(statusStyle.Render("q/^C"))
	sb.WriteString(" Quit")

	return controlsStyle.Width(max(m.width-2, 24)).Render(sb.String())
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, m.renderGridPanel(), m.renderScannerPanel())
	return lipgloss.JoinVertical(lipgloss.Left,
		topRow,
		m.renderLogPanel(),
		m.renderControlsPanel(),
	)
}
