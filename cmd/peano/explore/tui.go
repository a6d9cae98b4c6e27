package explorecmder

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/peanoworks/peano/pkg/peano"
	"github.com/peanoworks/peano/pkg/stepper"
)

func init() {
	// Force TrueColor profile to fix lipgloss color detection issue
	// See: https://github.com/charmbracelet/lipgloss/issues/439
	renderer := lipgloss.NewRenderer(os.Stdout, termenv.WithProfile(termenv.TrueColor))
	renderer.SetColorProfile(termenv.TrueColor)
	lipgloss.SetDefaultRenderer(renderer)
}

var (
	exploreTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	exploreMutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	exploreBadgeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	exploreResultStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	exploreWarnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	exploreDividerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("237"))
	exploreSectionStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	exploreHighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("214")).Bold(true)
)

type exploreKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Deeper   key.Binding
	Shallow  key.Binding
	Internal key.Binding
	Terms    key.Binding
	Quit     key.Binding
}

func (k exploreKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Deeper, k.Shallow, k.Internal, k.Terms, k.Quit}
}

func (k exploreKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Down, k.Up, k.Top, k.Bottom}, {k.Deeper, k.Shallow, k.Internal, k.Terms, k.Quit}}
}

func defaultKeyMap() exploreKeyMap {
	return exploreKeyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Deeper:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "deeper")),
		Shallow:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "shallower")),
		Internal: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "internals")),
		Terms:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "terms")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// exploreRow is one browsable step, whichever engine produced it.
type exploreRow struct {
	depth       int
	title       string
	badge       string
	term        string
	explanation string
}

type exploreModel struct {
	title      string
	resultLine string

	// steps holds the full, unfiltered derivation for refiltering.
	// Empty in construction mode, where rows are fixed.
	steps []peano.Step
	rows  []exploreRow

	derivation   bool
	totalSteps   int
	clamped      bool
	cursor       int
	maxDepth     int
	showInternal bool
	showTerms    bool
	width        int
	height       int
	keys         exploreKeyMap
	help         help.Model
}

type derivationInput struct {
	op           string
	operands     []int
	result       peano.Result
	steps        []peano.Step
	totalSteps   int
	clamped      bool
	maxDepth     int
	showInternal bool
	showTerms    bool
}

func runExploreTUI(ctx context.Context, model exploreModel) error {
	program := bubbletea.NewProgram(model,
		bubbletea.WithContext(ctx),
		bubbletea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}

func newConstructionModel(target string, t *stepper.Trace, showTerms bool) exploreModel {
	rows := make([]exploreRow, 0, len(t.Steps))
	for _, s := range t.Steps {
		rows = append(rows, exploreRow{
			title: s.Description,
			badge: string(s.Rule),
			term:  s.Term,
		})
	}

	var result string
	if t.Final.Kind == stepper.KindFraction {
		result = fmt.Sprintf("%d/%d", t.Final.Numerator, t.Final.Denominator)
	} else {
		result = strconv.Itoa(t.Final.Value)
	}

	return exploreModel{
		title:      "build " + target,
		resultLine: result,
		rows:       rows,
		totalSteps: len(t.Steps),
		showTerms:  showTerms,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
}

func newDerivationModel(in derivationInput) exploreModel {
	title := in.op
	for _, n := range in.operands {
		title += " " + strconv.Itoa(n)
	}

	var result string
	if in.result.IsBool {
		result = strconv.FormatBool(in.result.Bool)
	} else {
		result = strconv.Itoa(in.result.Nat.Int())
	}

	m := exploreModel{
		title:        title,
		resultLine:   result,
		steps:        in.steps,
		derivation:   true,
		totalSteps:   in.totalSteps,
		clamped:      in.clamped,
		maxDepth:     in.maxDepth,
		showInternal: in.showInternal,
		showTerms:    in.showTerms,
		keys:         defaultKeyMap(),
		help:         help.New(),
	}
	m.refilter()
	return m
}

// refilter rebuilds the visible rows from the full derivation using the
// current depth and internal-step settings.
func (m *exploreModel) refilter() {
	filtered := peano.FilterDisplay(m.steps, m.maxDepth, m.showInternal)
	rows := make([]exploreRow, 0, len(filtered))
	for _, s := range filtered {
		badge := s.Definition
		if s.Axiom != "" {
			badge = s.Axiom
		}
		rows = append(rows, exploreRow{
			depth:       s.Depth,
			title:       s.Meaning,
			badge:       badge,
			term:        s.MeaningPeano,
			explanation: s.Explanation,
		})
	}
	m.rows = rows
	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
}

func (m exploreModel) Init() bubbletea.Cmd {
	return nil
}

func (m exploreModel) Update(msg bubbletea.Msg) (bubbletea.Model, bubbletea.Cmd) {
	switch msg := msg.(type) {
	case bubbletea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case bubbletea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m exploreModel) handleKey(msg bubbletea.KeyMsg) (bubbletea.Model, bubbletea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, bubbletea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursor = clamp(m.cursor+1, len(m.rows)-1)
	case key.Matches(msg, m.keys.Up):
		m.cursor = clamp(m.cursor-1, len(m.rows)-1)
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(len(m.rows)-1, 0)
	case key.Matches(msg, m.keys.Deeper):
		if m.derivation {
			m.maxDepth++
			m.refilter()
		}
	case key.Matches(msg, m.keys.Shallow):
		if m.derivation && m.maxDepth > 0 {
			m.maxDepth--
			m.refilter()
		}
	case key.Matches(msg, m.keys.Internal):
		if m.derivation {
			m.showInternal = !m.showInternal
			m.refilter()
		}
	case key.Matches(msg, m.keys.Terms):
		m.showTerms = !m.showTerms
	}
	return m, nil
}

func (m exploreModel) View() string {
	headerLeft := exploreTitleStyle.Render("peano explore › " + m.title)
	headerRight := exploreMutedStyle.Render(m.headerStatus())
	lines := []string{
		renderHeaderLine(m.width, headerLeft, headerRight),
		renderRule(m.width),
		"",
	}

	result := exploreResultStyle.Render("= " + m.resultLine)
	if m.clamped {
		result += "  " + exploreWarnStyle.Render("(a subtraction clamped at zero)")
	}
	lines = append(lines, result, "")

	lines = append(lines, m.viewSteps()...)
	lines = append(lines, "")
	lines = append(lines, m.viewDetail()...)
	lines = append(lines, "", exploreMutedStyle.Render(m.help.View(m.keys)))

	return strings.Join(lines, "\n")
}

func (m exploreModel) headerStatus() string {
	if !m.derivation {
		return fmt.Sprintf("%d construction steps", m.totalSteps)
	}
	return fmt.Sprintf("%d/%d steps shown · depth ≤ %d", len(m.rows), m.totalSteps, m.maxDepth)
}

func (m exploreModel) viewSteps() []string {
	if len(m.rows) == 0 {
		return []string{exploreMutedStyle.Render("no steps at this depth")}
	}

	visible := m.visibleRows()
	start, end := visibleRange(len(m.rows), m.cursor, visible)

	lines := make([]string, 0, end-start+2)
	lines = append(lines, exploreSectionStyle.Render("steps"), renderRule(m.width))
	for i := start; i < end; i++ {
		row := m.rows[i]
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}

		indent := strings.Repeat("  ", row.depth)
		line := fmt.Sprintf("%s %s%s  %s",
			cursor,
			indent,
			row.title,
			exploreBadgeStyle.Render(row.badge),
		)
		if i == m.cursor {
			line = exploreHighlightStyle.Render(fmt.Sprintf("%s %s%s  %s", cursor, indent, row.title, row.badge))
		}
		lines = append(lines, line)
	}

	return lines
}

func (m exploreModel) viewDetail() []string {
	if len(m.rows) == 0 {
		return nil
	}

	row := m.rows[m.cursor]
	lines := []string{exploreSectionStyle.Render("step detail"), renderRule(m.width)}

	if row.explanation != "" {
		lines = append(lines, row.explanation)
	} else {
		lines = append(lines, row.title)
	}
	if m.showTerms && row.term != "" {
		lines = append(lines, exploreMutedStyle.Render(truncateText(row.term, max(m.lineWidth()-2, 20))))
	}
	return lines
}

// visibleRows is how many step lines fit between the fixed chrome.
func (m exploreModel) visibleRows() int {
	screenHeight := m.height
	if screenHeight <= 0 {
		screenHeight = 30
	}
	chrome := 13
	return max(screenHeight-chrome, 5)
}

func (m exploreModel) lineWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}

func clamp(value, upper int) int {
	if value < 0 {
		return 0
	}
	if value > upper {
		return upper
	}
	return value
}

func truncateText(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	if limit <= 3 {
		return value[:limit]
	}
	return value[:limit-3] + "..."
}

func renderHeaderLine(width int, left, right string) string {
	lineWidth := width
	if lineWidth <= 0 {
		lineWidth = 80
	}
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	if leftWidth+rightWidth+1 >= lineWidth {
		return strings.TrimSpace(left + " " + right)
	}
	spacing := lineWidth - leftWidth - rightWidth
	return left + strings.Repeat(" ", spacing) + right
}

func renderRule(width int) string {
	lineWidth := width
	if lineWidth <= 0 {
		lineWidth = 80
	}
	return exploreDividerStyle.Render(strings.Repeat("─", lineWidth))
}

func visibleRange(total, cursor, size int) (int, int) {
	if total <= 0 || size <= 0 {
		return 0, 0
	}
	if total <= size {
		return 0, total
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= total {
		cursor = total - 1
	}
	start := max(cursor-(size/2), 0)
	end := start + size
	if end > total {
		end = total
		start = max(end-size, 0)
	}
	return start, end
}
