package prompt

import (
	"errors"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/spm/internal/ui/styles"
)

// maxVisible is the number of options rendered at once.
const maxVisible = 10

// ErrNoOptions is returned by [Select] when there is nothing to choose from.
var ErrNoOptions = errors.New("nothing to choose from")

// Request describes a single-choice prompt.
type Request struct {
	Title     string
	Help      string // optional line under the title
	Options   []Option
	Filter    string // initial filter text
	Skippable bool   // esc skips instead of cancelling
}

// Result is the outcome of a single-choice prompt. Exactly one of a valid
// Index, Skipped or Cancelled is set.
type Result struct {
	Index     int // chosen option; -1 if skipped or cancelled
	Skipped   bool
	Cancelled bool
}

// Chosen reports whether an option was picked.
func (r Result) Chosen() bool {
	return !r.Skipped && !r.Cancelled && r.Index >= 0
}

type selectModel struct {
	req     Request
	input   textinput.Model
	matches []Match
	cursor  int // position in matches
	result  Result
	done    bool
}

func newSelectModel(req Request) selectModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "type to filter"
	ti.SetValue(req.Filter)
	ti.Focus()

	return selectModel{
		req:     req,
		input:   ti,
		matches: Rank(req.Filter, req.Options),
		result:  Result{Index: -1},
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c":
		return m.finish(Result{Index: -1, Cancelled: true})
	case "esc":
		if m.req.Skippable {
			return m.finish(Result{Index: -1, Skipped: true})
		}
		return m.finish(Result{Index: -1, Cancelled: true})
	case "enter":
		if len(m.matches) == 0 {
			return m, nil
		}
		return m.finish(Result{Index: m.matches[m.cursor].Index})
	case "up", "ctrl+p", "ctrl+k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "ctrl+n", "ctrl+j":
		if m.cursor < len(m.matches)-1 {
			m.cursor++
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.matches = Rank(m.input.Value(), m.req.Options)
		m.cursor = 0
	}
	return m, cmd
}

func (m selectModel) finish(r Result) (tea.Model, tea.Cmd) {
	m.result = r
	m.done = true
	return m, tea.Quit
}

func (m selectModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(m.render())
}

func (m selectModel) render() string {
	var b strings.Builder

	if m.req.Title != "" {
		b.WriteString(styles.TitleStyle.Render(m.req.Title) + "\n")
	}
	if m.req.Help != "" {
		b.WriteString(styles.MutedStyle.Render(m.req.Help) + "\n")
	}
	b.WriteString(m.input.View() + "\n\n")

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.matches))

	if start > 0 {
		b.WriteString(styles.MutedStyle.Render("  ↑ more above") + "\n")
	}
	for i := start; i < end; i++ {
		match := m.matches[i]
		opt := m.req.Options[match.Index]
		selected := i == m.cursor

		cursor := "  "
		if selected {
			cursor = "> "
		}
		b.WriteString(cursor + renderLabel(opt, match, selected))
		if opt.Detail != "" {
			b.WriteString(" " + styles.MutedStyle.Render(opt.Detail))
		}
		b.WriteString("\n")
	}
	if end < len(m.matches) {
		b.WriteString(styles.MutedStyle.Render("  ↓ more below") + "\n")
	}
	if len(m.matches) == 0 {
		b.WriteString(styles.MutedStyle.Render("  No matching items") + "\n")
	}

	b.WriteString("\n" + styles.MutedStyle.Render(m.helpLine()) + "\n")
	return b.String()
}

func (m selectModel) helpLine() string {
	if m.req.Skippable {
		return "↑/↓ move • enter select • esc skip • ctrl+c cancel"
	}
	return "↑/↓ move • enter select • esc cancel"
}

// renderLabel renders the label with matched characters highlighted.
// Highlighting only applies when the label is what was matched.
func renderLabel(opt Option, match Match, selected bool) string {
	style := styles.NormalStyle
	if selected {
		style = styles.AccentStyle
	}
	if len(match.MatchedIndexes) == 0 || opt.filterValue() != opt.Label {
		return style.Render(opt.Label)
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder
	for i, r := range []rune(opt.Label) {
		if matchSet[i] {
			b.WriteString(styles.HighlightStyle.Render(string(r)))
		} else {
			b.WriteString(style.Render(string(r)))
		}
	}
	return b.String()
}

// Select shows a fuzzy-filtered list and returns the user's choice.
// The prompt renders to stderr so stdout can be captured by the caller.
func Select(req Request) (Result, error) {
	if len(req.Options) == 0 {
		return Result{Index: -1}, ErrNoOptions
	}

	// Detect color profile for stderr (handles piped output, NO_COLOR, etc.)
	profile := colorprofile.Detect(os.Stderr, os.Environ())

	p := tea.NewProgram(newSelectModel(req),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	finalModel, err := p.Run()
	if err != nil {
		return Result{Index: -1}, err
	}

	m := finalModel.(selectModel)
	if !m.done {
		return Result{Index: -1, Cancelled: true}, nil
	}
	return m.result, nil
}
