package main

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := Config{Ships: 4, Shots: 1, LogFile: "unused"}
	return initialModel(cfg, 42, zerolog.Nop())
}

func lastLogLine(m Model) string {
	if len(m.logLines) == 0 {
		return ""
	}
	return m.logLines[len(m.logLines)-1]
}

func TestBootCheckPasses(t *testing.T) {
	m := newTestModel(t)

	joined := strings.Join(m.logLines, "\n")
	for _, want := range []string{
		"(WATER): 0 (EXPECT 0)",
		"(SHIP): 1 (EXPECT 1)",
		"(2 SHIPS): 2 (EXPECT 2)",
		"(3 SHIPS): 3 (EXPECT 3)",
		"ENGINE STATUS: NOMINAL",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("boot log missing %q:\n%s", want, joined)
		}
	}
}

func TestPingMarksCells(t *testing.T) {
	m := newTestModel(t)

	// Ping every sector; detections must exactly match the hidden layout.
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			m.cursorRow, m.cursorCol = r, c
			m.pingCell()
			want := cellClear
			if m.board.HasShip(r, c) {
				want = cellShip
			}
			if m.cells[r][c] != want {
				t.Errorf("sector %s: state %d, want %d", coordLabel(r, c), m.cells[r][c], want)
			}
		}
	}

	if m.found != m.board.ShipCount {
		t.Errorf("found %d ships, want %d", m.found, m.board.ShipCount)
	}
	if !strings.Contains(strings.Join(m.logLines, "\n"), "ALL ENEMY SHIPS LOCATED") {
		t.Error("victory line missing after locating every ship")
	}
}

func TestPingOnlyOncePerCell(t *testing.T) {
	m := newTestModel(t)
	m.pingCell()
	linesAfterFirst := len(m.logLines)

	m.pingCell()
	if len(m.logLines) != linesAfterFirst {
		t.Error("second ping on the same sector should not fire the probe")
	}
	if !strings.Contains(m.statusMsg, "already pinged") {
		t.Errorf("statusMsg = %q, want already-pinged notice", m.statusMsg)
	}
}

func TestScanRowMatchesLayout(t *testing.T) {
	m := newTestModel(t)

	for r := 0; r < gridSize; r++ {
		m.cursorRow = r
		m.scanRow()
		want := 0
		for c := 0; c < gridSize; c++ {
			if m.board.HasShip(r, c) {
				want++
			}
		}
		if m.rowCounts[r] != want {
			t.Errorf("row %c: count %d, want %d", rowLabels[r], m.rowCounts[r], want)
		}
	}
}

func TestScanColMatchesLayout(t *testing.T) {
	m := newTestModel(t)

	total := 0
	for c := 0; c < gridSize; c++ {
		m.cursorCol = c
		m.scanCol()
		want := 0
		for r := 0; r < gridSize; r++ {
			if m.board.HasShip(r, c) {
				want++
			}
		}
		if m.colCounts[c] != want {
			t.Errorf("col %d: count %d, want %d", c+1, m.colCounts[c], want)
		}
		total += m.colCounts[c]
	}
	if total != m.board.ShipCount {
		t.Errorf("column scans sum to %d, want %d", total, m.board.ShipCount)
	}
}

func TestScanOnlyOncePerLine(t *testing.T) {
	m := newTestModel(t)
	m.scanRow()
	first := m.rowCounts[0]

	m.statusMsg = ""
	m.scanRow()
	if !strings.Contains(m.statusMsg, "already scanned") {
		t.Errorf("statusMsg = %q, want already-scanned notice", m.statusMsg)
	}
	if m.rowCounts[0] != first {
		t.Error("re-scan overwrote the stored count")
	}
}

func TestResetGameClearsKnowledge(t *testing.T) {
	m := newTestModel(t)
	m.pingCell()
	m.scanRow()
	m.scanCol()

	m.resetGame()
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			if m.cells[r][c] != cellUnknown {
				t.Errorf("sector %s still known after reset", coordLabel(r, c))
			}
		}
	}
	for i := 0; i < gridSize; i++ {
		if m.rowCounts[i] != lineUnscanned || m.colCounts[i] != lineUnscanned {
			t.Errorf("scanner %d not re-armed after reset", i)
		}
	}
	if m.found != 0 {
		t.Errorf("found = %d after reset, want 0", m.found)
	}
	if got := lastLogLine(m); got != "" && strings.Contains(got, "SHIP DETECTED") {
		t.Errorf("stale detection line after reset: %q", got)
	}
}
