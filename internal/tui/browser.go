package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/egoavara/launchkit/internal/i18n"
	"github.com/egoavara/launchkit/snippet"
	"github.com/sahilm/fuzzy"
)

// BrowseResult holds the outcome of an interactive browse session
type BrowseResult struct {
	Selected  *snippet.Snippet
	Cancelled bool
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	keywordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34"))

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model for the snippet browser
type Model struct {
	collection *snippet.Collection
	filtered   []snippet.Snippet
	cursor     int
	width      int
	height     int
	search     textinput.Model
	quitting   bool
	selected   bool
}

// NewModel creates a new browser model over a collection
func NewModel(collection *snippet.Collection) Model {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.CharLimit = 50
	ti.Width = 30

	return Model{
		collection: collection,
		filtered:   collection.Snippets,
		search:     ti,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		// If search has text, clear it; otherwise quit
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.applyFilter()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}

	case "enter":
		if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
			m.selected = true
			m.quitting = true
			return m, tea.Quit
		}

	case "backspace":
		val := m.search.Value()
		if len(val) > 0 {
			m.search.SetValue(val[:len(val)-1])
			m.applyFilter()
		}

	default:
		// Any other printable character goes to search
		if len(msg.String()) == 1 && msg.String()[0] >= 32 && msg.String()[0] < 127 {
			m.search.SetValue(m.search.Value() + msg.String())
			m.applyFilter()
		}
	}

	return m, nil
}

func (m *Model) applyFilter() {
	query := m.search.Value()
	if query == "" {
		m.filtered = m.collection.Snippets
		if m.cursor >= len(m.filtered) {
			m.cursor = max(0, len(m.filtered)-1)
		}
		return
	}

	searchables := make([]string, len(m.collection.Snippets))
	for i, s := range m.collection.Snippets {
		searchables[i] = strings.ToLower(s.Name + " " + s.Keyword)
	}

	matches := fuzzy.Find(strings.ToLower(query), searchables)
	m.filtered = make([]snippet.Snippet, len(matches))
	for i, match := range matches {
		m.filtered[i] = m.collection.Snippets[match.Index]
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	header := titleStyle.Render(i18n.T("browse.header", map[string]any{
		"Name":  m.collection.Name,
		"Count": len(m.collection.Snippets),
	}))
	b.WriteString(header)
	b.WriteString("\n\n")

	listWidth := 36
	previewWidth := max(30, m.width-listWidth-6)
	listHeight := max(5, m.height-8)

	var listLines []string
	for i, s := range m.filtered {
		listLines = append(listLines, m.renderSnippet(i, s))
	}

	// Paginate if needed
	start := 0
	if m.cursor >= listHeight {
		start = m.cursor - listHeight + 1
	}
	end := min(start+listHeight, len(listLines))

	visibleList := strings.Join(listLines[start:end], "\n")
	preview := m.renderPreview()

	listBox := lipgloss.NewStyle().Width(listWidth).Render(visibleList)
	previewBox := previewStyle.Width(previewWidth).Height(listHeight).Render(preview)

	content := lipgloss.JoinHorizontal(lipgloss.Top, listBox, "  ", previewBox)
	b.WriteString(content)
	b.WriteString("\n\n")

	searchQuery := m.search.Value()
	if searchQuery != "" {
		b.WriteString("> " + searchQuery + "_")
	} else {
		b.WriteString(helpStyle.Render("> type to filter..."))
	}
	b.WriteString("\n")

	help := helpStyle.Render("↑/↓: move | Enter: select | Esc: clear/quit")
	b.WriteString(help)

	return b.String()
}

func (m Model) renderSnippet(idx int, s snippet.Snippet) string {
	cursor := "  "
	if idx == m.cursor {
		cursor = "> "
	}

	text := fmt.Sprintf("%s%s (%s)", cursor, s.Name, s.Keyword)
	if idx == m.cursor {
		return selectedStyle.Render(text)
	}
	return normalStyle.Render(text)
}

func (m Model) renderPreview() string {
	if len(m.filtered) == 0 || m.cursor >= len(m.filtered) {
		return i18n.T("browse.previewEmpty", nil)
	}

	s := m.filtered[m.cursor]
	var b strings.Builder
	b.WriteString(titleStyle.Render(s.Name))
	b.WriteString("\n")
	b.WriteString(keywordStyle.Render(m.collection.Prefix + s.Keyword + m.collection.Suffix))
	b.WriteString("\n\n")
	b.WriteString(s.Body)
	return b.String()
}

// Browse runs the interactive snippet browser and returns the selection
func Browse(collection *snippet.Collection) (*BrowseResult, error) {
	p := tea.NewProgram(NewModel(collection), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(Model)
	if !ok {
		return &BrowseResult{Cancelled: true}, nil
	}

	if !m.selected || m.cursor >= len(m.filtered) {
		return &BrowseResult{Cancelled: true}, nil
	}

	chosen := m.filtered[m.cursor]
	return &BrowseResult{Selected: &chosen}, nil
}
