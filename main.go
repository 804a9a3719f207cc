package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pagemark/pagemark/internal/doc"
	"github.com/pagemark/pagemark/internal/extract"
	"github.com/pagemark/pagemark/internal/highlight"
	"github.com/pagemark/pagemark/internal/nav"
	"github.com/pagemark/pagemark/internal/state"
)

// Version info (injected via ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	visitedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#3A3A5C")).
			Foreground(lipgloss.Color("#FFFFFF"))

	annotatedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#B58900")).
			Foreground(lipgloss.Color("#000000"))

	cursorStyle = lipgloss.NewStyle().
			Reverse(true).
			Bold(true)

	previewStyle = lipgloss.NewStyle().
			Underline(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)

	annotateBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFAA00")).
				Bold(true)
)

const frameInterval = time.Second / 60

type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type keyMap struct {
	Forward      key.Binding
	Back         key.Binding
	NextPhrase   key.Binding
	PrevPhrase   key.Binding
	SectionStart key.Binding
	NextSection  key.Binding
	Annotate     key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Forward:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next word")),
		Back:         key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev word")),
		NextPhrase:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next sentence")),
		PrevPhrase:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev sentence")),
		SectionStart: key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "restart section")),
		NextSection:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next section")),
		Annotate:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "annotate mode")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.Back, k.NextPhrase, k.NextSection, k.Annotate, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Back, k.NextPhrase, k.PrevPhrase},
		{k.SectionStart, k.NextSection, k.Annotate},
		{k.Help, k.Quit},
	}
}

type model struct {
	document *doc.Document
	store    *highlight.Store
	sched    *highlight.Scheduler
	ctrl     *nav.Controller
	sel      *nav.Selection

	keys keyMap
	help help.Model

	stateStore *state.Store
	fileHash   string

	width, height int
	scroll        int
	layout        *pageLayout
	layoutPage    int
	layoutWidth   int

	flushQueued bool
	quitting    bool
}

func newModel(document *doc.Document, stateStore *state.Store, fileHash string) model {
	store := highlight.NewStore(document)
	sched := highlight.NewScheduler(store, nil)
	ctrl := nav.NewController(document, store, sched)
	sel := nav.NewSelection(document, store, sched, ctrl)

	if stateStore != nil {
		pos := stateStore.GetPosition(fileHash)
		if _, ok := document.SectionOf(pos.Page, pos.Word); ok {
			ctrl.SetCursor(nav.Cursor{Page: pos.Page, Word: pos.Word})
		}
	}

	return model{
		document:   document,
		store:      store,
		sched:      sched,
		ctrl:       ctrl,
		sel:        sel,
		keys:       defaultKeyMap(),
		help:       help.New(),
		stateStore: stateStore,
		fileHash:   fileHash,
		width:      80,
		height:     24,
		layoutPage: -1,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.savePosition()
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Forward):
			m.ctrl.AdvanceWord()
		case key.Matches(msg, m.keys.Back):
			m.ctrl.RetreatWord()
		case key.Matches(msg, m.keys.NextPhrase):
			m.ctrl.AdvancePhrase()
		case key.Matches(msg, m.keys.PrevPhrase):
			m.ctrl.RetreatPhrase()
		case key.Matches(msg, m.keys.SectionStart):
			m.ctrl.JumpSectionStart()
		case key.Matches(msg, m.keys.NextSection):
			m.ctrl.JumpNextSection()
		case key.Matches(msg, m.keys.Annotate):
			m.ctrl.SetAnnotateMode(!m.ctrl.AnnotateMode())
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layoutPage = -1 // force re-layout

	case frameMsg:
		m.flushQueued = false
		m.sched.Flush()
	}

	m.ensureLayout()
	m.scrollTo(m.ctrl.Cursor().Word, m.availRows())

	// Exactly one flush per frame while requests are pending.
	if m.sched.Pending() && !m.flushQueued {
		m.flushQueued = true
		return m, frame()
	}
	return m, nil
}

func (m *model) availRows() int {
	avail := m.height - 2 - lipgloss.Height(m.help.View(m.keys))
	if avail < 1 {
		avail = 1
	}
	return avail
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	page := m.ctrl.Cursor().Page
	word, hit := m.hitWord(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !hit {
			return
		}
		if msg.Shift {
			m.sel.ClickWord(page, word, true)
		} else if m.ctrl.AnnotateMode() {
			m.sel.DragStart(page, word)
		} else {
			m.sel.ClickWord(page, word, false)
		}
	case tea.MouseActionMotion:
		if hit {
			m.sel.DragEnter(page, word)
		}
	case tea.MouseActionRelease:
		if m.sel.Dragging() {
			if hit {
				m.sel.DragEnter(page, word)
			}
			m.sel.DragCommit()
		}
	}
}

// hitWord maps terminal coordinates to a word on the cursor page. Row 0
// is the status line; the page view starts below it and is scrolled.
func (m *model) hitWord(x, y int) (int, bool) {
	if m.layout == nil {
		return 0, false
	}
	return m.layout.hitTest(x, y-1+m.scroll)
}

func (m *model) ensureLayout() {
	page := m.ctrl.Cursor().Page
	if m.layout != nil && m.layoutPage == page && m.layoutWidth == m.width {
		return
	}
	m.layout = layoutPage(m.document.Words(page), m.width)
	m.layoutPage = page
	m.layoutWidth = m.width
	m.scroll = 0
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if m.layout == nil {
		return "Loading..."
	}

	cur := m.ctrl.Cursor()
	words := m.document.Words(cur.Page)

	helpView := m.help.View(m.keys)
	avail := m.height - 2 - lipgloss.Height(helpView)
	if avail < 1 {
		avail = 1
	}

	var sb strings.Builder
	sb.WriteString(m.statusLine(cur, len(words)))
	sb.WriteString("\n")

	preview := m.sel.Preview()
	dragged := make(map[int]bool)
	for _, w := range preview[cur.Page] {
		dragged[w] = true
	}

	end := m.scroll + avail
	if end > len(m.layout.rows) {
		end = len(m.layout.rows)
	}
	for r := m.scroll; r < end; r++ {
		sb.WriteString(m.renderRow(r, cur, words, dragged))
		sb.WriteString("\n")
	}
	for r := end - m.scroll; r < avail; r++ {
		sb.WriteString("\n")
	}

	sb.WriteString(helpView)
	return sb.String()
}

func (m *model) scrollTo(word, avail int) {
	row := -1
	for r, spans := range m.layout.rows {
		for _, s := range spans {
			if s.index == word {
				row = r
				break
			}
		}
		if row != -1 {
			break
		}
	}
	if row == -1 {
		m.scroll = 0
		return
	}
	if row < m.scroll {
		m.scroll = row
	}
	if row >= m.scroll+avail {
		m.scroll = row - avail + 1
	}
}

func (m *model) renderRow(r int, cur nav.Cursor, words []doc.WordItem, dragged map[int]bool) string {
	var sb strings.Builder
	col := 0
	for _, span := range m.layout.rows[r] {
		for col < span.col {
			sb.WriteString(" ")
			col++
		}
		text := words[span.index].Text
		switch {
		case span.index == cur.Word:
			text = cursorStyle.Render(text)
		case dragged[span.index]:
			text = previewStyle.Render(text)
		case m.store.IsAnnotated(cur.Page, span.index):
			text = annotatedStyle.Render(text)
		case m.store.IsVisited(cur.Page, span.index):
			text = visitedStyle.Render(text)
		}
		sb.WriteString(text)
		col += span.width
	}
	return sb.String()
}

func (m model) statusLine(cur nav.Cursor, total int) string {
	badge := ""
	if m.ctrl.AnnotateMode() {
		badge = annotateBadgeStyle.Render(" [ANNOTATE]")
	}
	return statusStyle.Render(fmt.Sprintf("Page %d/%d | Word %d/%d%s",
		cur.Page+1, m.document.PageCount(), cur.Word+1, total, badge))
}

func (m model) savePosition() {
	if m.stateStore == nil {
		return
	}
	cur := m.ctrl.Cursor()
	m.stateStore.SetPosition(m.fileHash, state.Position{Page: cur.Page, Word: cur.Word})
}

func main() {
	showVersion := flag.Bool("v", false, "Show version information")
	showVersionLong := flag.Bool("version", false, "Show version information")
	noResume := flag.Bool("no-resume", false, "Start from the beginning instead of the saved position")
	annotate := flag.Bool("annotate", false, "Start in annotate mode")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Pagemark - Terminal Document Reader\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  pagemark [options] <file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nSupported formats:\n")
		for _, f := range extract.SupportedFormats() {
			fmt.Fprintf(os.Stderr, "  %s\n", f)
		}
		fmt.Fprintf(os.Stderr, "  plain text (anything else)\n")
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  ←/→      Previous/next word\n")
		fmt.Fprintf(os.Stderr, "  TAB      Next sentence (shift+TAB: previous)\n")
		fmt.Fprintf(os.Stderr, "  ↑/↓      Restart section / next section\n")
		fmt.Fprintf(os.Stderr, "  a        Toggle annotate mode\n")
		fmt.Fprintf(os.Stderr, "  click    Move cursor (shift-click twice: annotate range)\n")
		fmt.Fprintf(os.Stderr, "  drag     Annotate or erase a range (annotate mode)\n")
		fmt.Fprintf(os.Stderr, "  q        Quit\n")
	}
	flag.Parse()

	if *showVersion || *showVersionLong {
		fmt.Printf("pagemark %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: No input file. Try: pagemark -h")
		os.Exit(1)
	}
	filename := flag.Arg(0)

	pages, err := extract.Extract(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to read '%s': %v\n", filename, err)
		os.Exit(1)
	}

	document := doc.New(len(pages))
	empty := true
	for i, p := range pages {
		words := doc.Segment(p.Runs)
		document.SetPage(i, words)
		if len(words) > 0 {
			empty = false
		}
	}
	if empty {
		fmt.Fprintln(os.Stderr, "Error: No text to read.")
		os.Exit(1)
	}

	var stateStore *state.Store
	fileHash := ""
	if !*noResume {
		if hash, err := state.ComputeHash(filename); err == nil {
			fileHash = hash
			stateStore, _ = state.NewStore()
		}
	}

	m := newModel(document, stateStore, fileHash)
	m.ctrl.SetAnnotateMode(*annotate)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
