package console

import (
	"bytes"
	"context"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/cobalt/internal/ui/style"
)

var builtins = []string{"exit", "help", "quit"}

// lineDoneMsg carries the output of a line run in the background.
type lineDoneMsg struct {
	output string
	quit   bool
}

type model struct {
	ctx     context.Context
	console *Console
	input   textinput.Model

	// hint lists completion candidates after an ambiguous Tab.
	hint     string
	running  bool
	quitting bool
}

func newModel(ctx context.Context, c *Console) model {
	ti := textinput.New()
	ti.Prompt = c.prompt
	ti.PromptStyle = style.PromptStyle()
	ti.CharLimit = 4096
	ti.Focus()

	return model{ctx: ctx, console: c, input: ti}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.Width = max(0, msg.Width-len(m.input.Prompt)-1)
		return m, nil

	case lineDoneMsg:
		m.running = false
		var cmds []tea.Cmd
		if out := strings.TrimRight(msg.output, "\n"); out != "" {
			cmds = append(cmds, tea.Println(out))
		}
		if msg.quit {
			m.quitting = true
			cmds = append(cmds, tea.Quit)
		}
		return m, tea.Sequence(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		if m.running {
			return m, nil
		}
		line := m.input.Value()
		m.console.history.Add(line)
		m.input.Reset()
		m.hint = ""
		m.running = true
		echo := tea.Println(m.input.Prompt + line)
		return m, tea.Sequence(echo, m.run(line))

	case tea.KeyUp:
		if line, ok := m.console.history.Prev(); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if line, ok := m.console.history.Next(); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyTab:
		m.complete()
		return m, nil

	case tea.KeyEsc:
		m.input.Reset()
		m.hint = ""
		m.console.history.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// run executes line off the event loop so async handlers do not freeze
// the prompt.
func (m model) run(line string) tea.Cmd {
	ctx, c := m.ctx, m.console
	return func() tea.Msg {
		var buf bytes.Buffer
		quit, _ := c.Handle(ctx, line, &buf)
		return lineDoneMsg{output: buf.String(), quit: quit}
	}
}

// complete extends the input to the longest common prefix of every command
// name it prefixes, ignoring case.
func (m *model) complete() {
	value := m.input.Value()
	candidates := Complete(value, append(m.console.dispatcher.Names(), builtins...))

	switch len(candidates) {
	case 0:
		m.hint = ""
	case 1:
		m.input.SetValue(candidates[0] + " ")
		m.input.CursorEnd()
		m.hint = ""
	default:
		if prefix := commonPrefix(candidates); len(prefix) > len(value) {
			m.input.SetValue(prefix)
			m.input.CursorEnd()
		}
		m.hint = strings.Join(candidates, "  ")
	}
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	view := m.input.View()
	if m.hint != "" {
		view += "\n" + style.Muted(m.hint)
	}
	return view
}

// Complete returns the names that start with prefix, ignoring case, sorted
// and without duplicates. An empty prefix matches nothing.
func Complete(prefix string, names []string) []string {
	if strings.TrimSpace(prefix) == "" {
		return nil
	}
	lower := strings.ToLower(prefix)

	seen := make(map[string]bool)
	var out []string
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		if strings.HasPrefix(strings.ToLower(name), lower) {
			seen[name] = true
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func commonPrefix(names []string) string {
	if len(names) == 0 {
		return ""
	}
	prefix := names[0]
	for _, name := range names[1:] {
		for !strings.HasPrefix(name, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}

// Interactive runs the bubbletea prompt until the user quits or ctx is done.
func (c *Console) Interactive(ctx context.Context, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(newModel(ctx, c), opts...)
	_, err := p.Run()
	return err
}
