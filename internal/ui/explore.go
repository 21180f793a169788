package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"fretwise/internal/fretboard"
	"fretwise/internal/theory"
)

// OverlayMode selects which note set is shown on the neck.
type OverlayMode uint8

const (
	// OverlayChord shows the resolved chord's tones.
	OverlayChord OverlayMode = iota
	// OverlayScale shows the full key scale.
	OverlayScale
	// OverlayPentatonic shows the key's pentatonic subset.
	OverlayPentatonic
)

func (m OverlayMode) String() string {
	switch m {
	case OverlayChord:
		return "chord"
	case OverlayScale:
		return "scale"
	case OverlayPentatonic:
		return "pentatonic"
	}
	return "?"
}

// LabelMode selects how overlay notes are labelled.
type LabelMode uint8

const (
	// LabelNames shows spelled note names.
	LabelNames LabelMode = iota
	// LabelDegrees shows positions within the active note set.
	LabelDegrees
)

// ExploreConfig is everything the explorer needs from the engine. The model
// never recomputes theory; it only combines these pure outputs with view
// state.
type ExploreConfig struct {
	Title       string
	Board       fretboard.Board
	KeyName     string
	KeyPC       theory.PitchClass
	Mode        theory.Mode
	Chord       *theory.Chord
	PreferFlats bool
}

type exploreModel struct {
	cfg     ExploreConfig
	regions []fretboard.Region
	overlay OverlayMode
	pos     int // -1 = whole neck, otherwise index into regions
	labels  LabelMode
	flats   bool
	width   int
}

// NewExploreModel returns a Bubble Tea model that renders the fretboard
// explorer for one key (and optionally one chord).
func NewExploreModel(cfg ExploreConfig) tea.Model {
	overlay := OverlayScale
	if cfg.Chord != nil {
		overlay = OverlayChord
	}
	return &exploreModel{
		cfg:     cfg,
		regions: fretboard.RegionsForKey(cfg.KeyPC, cfg.Mode, 0, cfg.Board.Frets),
		overlay: overlay,
		pos:     -1,
		flats:   cfg.PreferFlats,
		width:   80,
	}
}

func (m *exploreModel) Init() tea.Cmd {
	return nil
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, exploreKeys.quit):
			return m, tea.Quit
		case key.Matches(msg, exploreKeys.overlay):
			m.overlay = m.nextOverlay()
		case key.Matches(msg, exploreKeys.labels):
			if m.labels == LabelNames {
				m.labels = LabelDegrees
			} else {
				m.labels = LabelNames
			}
		case key.Matches(msg, exploreKeys.flats):
			m.flats = !m.flats
		case key.Matches(msg, exploreKeys.position):
			m.pos++
			if m.pos >= len(m.regions) {
				m.pos = -1
			}
		case key.Matches(msg, exploreKeys.wholeNeck):
			m.pos = -1
		case key.Matches(msg, exploreKeys.region):
			n, _ := strconv.Atoi(msg.String())
			if n <= len(m.regions) {
				m.pos = n - 1
			}
		}
		return m, nil
	}
	return m, nil
}

type exploreKeyMap struct {
	quit      key.Binding
	overlay   key.Binding
	labels    key.Binding
	flats     key.Binding
	position  key.Binding
	wholeNeck key.Binding
	region    key.Binding
}

var exploreKeys = exploreKeyMap{
	quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	overlay:   key.NewBinding(key.WithKeys("tab", "m")),
	labels:    key.NewBinding(key.WithKeys("l")),
	flats:     key.NewBinding(key.WithKeys("f")),
	position:  key.NewBinding(key.WithKeys("p")),
	wholeNeck: key.NewBinding(key.WithKeys("0")),
	region:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5")),
}

func (m *exploreModel) nextOverlay() OverlayMode {
	switch m.overlay {
	case OverlayChord:
		return OverlayScale
	case OverlayScale:
		return OverlayPentatonic
	}
	if m.cfg.Chord != nil {
		return OverlayChord
	}
	return OverlayScale
}

// activeSet returns the overlay pitch classes in degree order.
func (m *exploreModel) activeSet() []theory.PitchClass {
	switch m.overlay {
	case OverlayChord:
		if m.cfg.Chord != nil {
			return m.cfg.Chord.Tones()
		}
	case OverlayPentatonic:
		return theory.Pentatonic(m.cfg.KeyPC, m.cfg.Mode)
	}
	return theory.Scale(m.cfg.KeyPC, m.cfg.Mode)
}

// window returns the visible fret range for the selected position.
func (m *exploreModel) window() (int, int) {
	if m.pos >= 0 && m.pos < len(m.regions) {
		r := m.regions[m.pos]
		return r.FretStart, r.FretEnd
	}
	return 0, m.cfg.Board.Frets
}

var (
	exploreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	exploreRootStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	exploreNoteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	exploreDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	exploreHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (m *exploreModel) View() string {
	set := m.activeSet()
	inSet := map[theory.PitchClass]int{}
	for i, pc := range set {
		inSet[pc] = i
	}
	root := m.cfg.KeyPC
	if m.overlay == OverlayChord && m.cfg.Chord != nil {
		root = m.cfg.Chord.Root
	}
	winStart, winEnd := m.window()

	var b strings.Builder
	b.WriteString(exploreTitleStyle.Render(truncate(m.headerLine(), m.width)))
	b.WriteString("\n\n")

	// Strings render high to low, as on a chord chart.
	for s := fretboard.NumStrings - 1; s >= 0; s-- {
		open := m.cfg.Board.Tuning[s]
		b.WriteString(fmt.Sprintf("%-2s|", open.Name(m.flats)))
		for fret := 0; fret <= m.cfg.Board.Frets; fret++ {
			pc := m.cfg.Board.NoteAt(s, fret)
			idx, ok := inSet[pc]
			cell := "---"
			style := exploreDimStyle
			if ok && fret >= winStart && fret <= winEnd {
				switch {
				case m.labels == LabelDegrees:
					cell = fmt.Sprintf("-%d-", idx+1)
				default:
					cell = fmt.Sprintf("%-3s", pc.Name(m.flats))
				}
				style = exploreNoteStyle
				if pc == root {
					style = exploreRootStyle
				}
			}
			b.WriteString(style.Render(cell))
			b.WriteString("|")
		}
		b.WriteString("\n")
	}

	// Fret ruler.
	b.WriteString("   ")
	for fret := 0; fret <= m.cfg.Board.Frets; fret++ {
		b.WriteString(fmt.Sprintf("%-4d", fret))
	}
	b.WriteString("\n")

	b.WriteString(m.positionLine())
	b.WriteString("\n")
	b.WriteString(exploreHintStyle.Render("tab overlay · p/0-5 position · l labels · f flats · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *exploreModel) headerLine() string {
	head := fmt.Sprintf("%s — %s %s, %s overlay", m.cfg.Title, m.cfg.KeyName, m.cfg.Mode, m.overlay)
	if m.overlay == OverlayChord && m.cfg.Chord != nil {
		head += ": " + m.cfg.Chord.Name(m.flats)
	}
	return head
}

func (m *exploreModel) positionLine() string {
	if len(m.regions) == 0 {
		return exploreDimStyle.Render("no shape regions fit this neck")
	}
	parts := make([]string, 0, len(m.regions)+1)
	if m.pos < 0 {
		parts = append(parts, exploreRootStyle.Render("[whole neck]"))
	} else {
		parts = append(parts, "whole neck")
	}
	for i, r := range m.regions {
		label := fmt.Sprintf("%s %d-%d", r.Label, r.FretStart, r.FretEnd)
		if i == m.pos {
			label = exploreRootStyle.Render("[" + label + "]")
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ")
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
