package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"qwarroom/quantum"
)

// cellState is what the player knows about one grid sector.
type cellState int

const (
	cellUnknown cellState = iota
	cellClear
	cellShip
)

// lineUnscanned marks a row/column scanner that has not been fired yet.
const lineUnscanned = -1

// Model represents the war-room TUI state.
type Model struct {
	cfg Config
	log zerolog.Logger
	src rand.Source

	board     *Board
	cells     [gridSize][gridSize]cellState
	rowCounts [gridSize]int
	colCounts [gridSize]int
	found     int

	cursorRow int
	cursorCol int

	logLines []string
	logView  viewport.Model

	width     int
	height    int
	statusMsg string
}

func initialModel(cfg Config, seed uint64, log zerolog.Logger) Model {
	m := Model{
		cfg:     cfg,
		log:     log,
		src:     rand.NewPCG(seed, seed),
		logView: viewport.New(60, 10),
	}
	m.resetGame()
	m.bootCheck()
	return m
}

// resetGame places a fresh board and clears everything the player learned.
func (m *Model) resetGame() {
	m.board = NewBoard(m.cfg.Ships, m.src)
	m.cells = [gridSize][gridSize]cellState{}
	for i := 0; i < gridSize; i++ {
		m.rowCounts[i] = lineUnscanned
		m.colCounts[i] = lineUnscanned
	}
	m.found = 0
	m.cursorRow, m.cursorCol = 0, 0
	m.statusMsg = ""
}

// bootCheck exercises both circuit families against known inputs before the
// first command, the way the sonar hardware would self-test: a water ping,
// a ship ping, and counting scans over two known patterns.
func (m *Model) bootCheck() {
	m.appendLog("QUANTUM SONAR SYSTEM BOOT CHECK")

	water, err := quantum.RunProbe(false, 1, m.src)
	if err != nil {
		m.bootFault(err)
		return
	}
	m.appendLog(fmt.Sprintf("  [TEST 1] SINGLE PING (WATER): %d (EXPECT 0)", water.Outcomes[0]))

	ship, err := quantum.RunProbe(true, 1, m.src)
	if err != nil {
		m.bootFault(err)
		return
	}
	m.appendLog(fmt.Sprintf("  [TEST 2] SINGLE PING (SHIP): %d (EXPECT 1)", ship.Outcomes[0]))

	two, err := quantum.RunCount([]bool{false, true, false, true}, 1, m.src)
	if err != nil {
		m.bootFault(err)
		return
	}
	m.appendLog(fmt.Sprintf("  [TEST 3] COUNTING SCAN (2 SHIPS): %d (EXPECT 2)", two.Count))

	three, err := quantum.RunCount([]bool{true, true, true, false}, 1, m.src)
	if err != nil {
		m.bootFault(err)
		return
	}
	m.appendLog(fmt.Sprintf("  [TEST 4] COUNTING SCAN (3 SHIPS): %d (EXPECT 3)", three.Count))

	m.appendLog("ENGINE STATUS: NOMINAL (ALL SYSTEMS)")
	m.appendLog(fmt.Sprintf("%d ENEMY SIGNATURES PLACED ON GRID", m.board.ShipCount))
	m.appendLog("AWAITING COMMANDS")
	m.log.Info().Msg("boot check passed")
}

func (m *Model) bootFault(err error) {
	m.log.Error().Err(err).Msg("boot check failed")
	m.appendLog("!!! ENGINE FAULT: " + err.Error())
}

// appendLog adds a line to the command log and scrolls the viewport to it.
func (m *Model) appendLog(line string) {
	m.logLines = append(m.logLines, line)
	m.refreshLogView()
}

func (m *Model) refreshLogView() {
	var content string
	for i, l := range m.logLines {
		if i > 0 {
			content += "\n"
		}
		content += l
	}
	m.logView.SetContent(content)
	m.logView.GotoBottom()
}

// pingCell runs the interaction-free probe against the cursor's sector.
func (m *Model) pingCell() {
	r, c := m.cursorRow, m.cursorCol
	label := coordLabel(r, c)
	if m.cells[r][c] != cellUnknown {
		m.statusMsg = "Sector " + label + " already pinged"
		return
	}

	scanID := uuid.NewString()
	m.appendLog(fmt.Sprintf(">>> [SINGLE PING] PINGING SECTOR %s...", label))

	res, err := quantum.RunProbe(m.board.HasShip(r, c), m.cfg.Shots, m.src)
	if err != nil {
		m.log.Error().Err(err).Str("scan_id", scanID).Str("sector", label).Msg("ping failed")
		m.appendLog("    !!! PROBE FAULT: " + err.Error())
		return
	}
	m.log.Info().
		Str("scan_id", scanID).
		Str("kind", "ping").
		Str("sector", label).
		Bool("occupied", res.Occupied).
		Ints("outcomes", res.Outcomes).
		Msg("single ping")

	if res.Occupied {
		m.cells[r][c] = cellShip
		m.found++
		m.appendLog(fmt.Sprintf("    >>> SHIP DETECTED AT %s! <<<", label))
		if m.found == m.board.ShipCount {
			m.appendLog("*** ALL ENEMY SHIPS LOCATED ***")
		}
	} else {
		m.cells[r][c] = cellClear
		m.appendLog(fmt.Sprintf("    ...Sector %s is clear.", label))
	}
}

// scanRow runs the counting circuit over the cursor's row.
func (m *Model) scanRow() {
	r := m.cursorRow
	if m.rowCounts[r] != lineUnscanned {
		m.statusMsg = rowName(r) + " already scanned"
		return
	}
	m.runLineScan(rowName(r), m.board.RowPattern(r), &m.rowCounts[r])
}

// scanCol runs the counting circuit over the cursor's column.
func (m *Model) scanCol() {
	c := m.cursorCol
	if m.colCounts[c] != lineUnscanned {
		m.statusMsg = colName(c) + " already scanned"
		return
	}
	m.runLineScan(colName(c), m.board.ColPattern(c), &m.colCounts[c])
}

func (m *Model) runLineScan(name string, pattern []bool, slot *int) {
	scanID := uuid.NewString()
	m.appendLog(fmt.Sprintf(">>> [COUNTING SCAN] SCANNING %s...", name))

	res, err := quantum.RunCount(pattern, m.cfg.Shots, m.src)
	if err != nil {
		m.log.Error().Err(err).Str("scan_id", scanID).Str("line", name).Msg("scan failed")
		m.appendLog("    !!! SCANNER FAULT: " + err.Error())
		return
	}
	m.log.Info().
		Str("scan_id", scanID).
		Str("kind", "count").
		Str("line", name).
		Int("count", res.Count).
		Interface("histogram", res.Histogram).
		Msg("counting scan")

	*slot = res.Count
	if res.Count > 0 {
		m.appendLog(fmt.Sprintf("    >>> %d SHIP(S) DETECTED IN %s!", res.Count, name))
	} else {
		m.appendLog(fmt.Sprintf("    ...%s is ALL CLEAR.", name))
	}
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logView.Width = max(m.width-6, 20)
		m.logView.Height = max(m.height-gridPanelHeight-controlsHeight-4, 4)
		m.refreshLogView()

	case tea.KeyMsg:
		key := msg.String()
		m.statusMsg = ""

		switch key {
		case "ctrl+c", "q":
			m.log.Info().Msg("war room shut down")
			return m, tea.Quit
		case "up", "k":
			if m.cursorRow > 0 {
				m.cursorRow--
			}
		case "down", "j":
			if m.cursorRow < gridSize-1 {
				m.cursorRow++
			}
		case "left", "h":
			if m.cursorCol > 0 {
				m.cursorCol--
			}
		case "right", "l":
			if m.cursorCol < gridSize-1 {
				m.cursorCol++
			}
		case "enter", " ":
			m.pingCell()
		case "r":
			m.scanRow()
		case "c":
			m.scanCol()
		case "n":
			m.resetGame()
			m.appendLog("NEW ENGAGEMENT: GRID REDEPLOYED")
			m.appendLog(fmt.Sprintf("%d ENEMY SIGNATURES PLACED ON GRID", m.board.ShipCount))
			m.log.Info().Msg("new game")
		case "pgup":
			m.logView.HalfViewUp()
		case "pgdown":
			m.logView.HalfViewDown()
		}
	}

	return m, nil
}
