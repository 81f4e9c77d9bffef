package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/drivekit-tools/cli/internal/conffile"
	"github.com/drivekit-tools/cli/internal/domain"
	"github.com/drivekit-tools/cli/internal/ui/style"
)

// NewEditCommand creates the edit command, an interactive editor over
// the settings file.
func NewEditCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit settings interactively",
		Long: `Open an interactive editor over the settings file. Arrow keys move
between entries, enter edits a value, q quits and saves. Comments,
ordering and unknown lines are preserved like everywhere else.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(opts)
		},
	}

	return cmd
}

func runEdit(opts *GlobalOptions) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("dk edit requires an interactive terminal")
	}

	path, err := opts.ResolveConfigPath()
	if err != nil {
		return err
	}

	cf, err := conffile.Create(path)
	if err != nil {
		return err
	}

	recordHist := historyEnabled(cf)

	p := tea.NewProgram(newEditModel(cf), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		_ = cf.Close()
		return err
	}

	fm := final.(editModel)

	if !cf.Dirty() {
		_ = cf.Close()
		fmt.Println(style.Muted("no changes"))
		return nil
	}

	if err := cf.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	if recordHist {
		for _, c := range fm.changes {
			recordChange(c)
		}
	}

	fmt.Println(style.Success(fmt.Sprintf("saved %d change(s) to %s", len(fm.changes), path)))
	return nil
}

// editRow is one display line of the editor: a section header or a
// named entry. Raw and comment lines are not editable and stay out of
// the way; they are still preserved on save.
type editRow struct {
	isHeader bool
	section  string
	entry    string
	value    string
}

type editKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func newEditKeyMap() editKeyMap {
	return editKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Edit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "save and quit")),
	}
}

type editModel struct {
	file    *conffile.File
	rows    []editRow
	cursor  int
	editing bool
	input   textinput.Model
	keys    editKeyMap
	changes []domain.Change
	status  string
	height  int
}

func newEditModel(cf *conffile.File) editModel {
	input := textinput.New()
	input.Prompt = ""

	m := editModel{
		file:   cf,
		rows:   buildEditRows(cf),
		keys:   newEditKeyMap(),
		input:  input,
		height: 24,
	}
	m.cursor = m.nextEntryRow(-1, 1)
	return m
}

func buildEditRows(cf *conffile.File) []editRow {
	var rows []editRow
	for _, name := range cf.SectionNames() {
		entries, _ := cf.Entries(name)

		hasNamed := false
		for _, e := range entries {
			if e.Name != "" {
				hasNamed = true
				break
			}
		}
		if name != "" {
			rows = append(rows, editRow{isHeader: true, section: name})
		} else if !hasNamed {
			continue
		}

		for _, e := range entries {
			if e.Name == "" {
				continue
			}
			rows = append(rows, editRow{section: name, entry: e.Name, value: e.Value})
		}
	}
	return rows
}

// nextEntryRow finds the next non-header row from index from in the
// given direction, or returns from's clamp if there is none.
func (m editModel) nextEntryRow(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.rows); i += dir {
		if !m.rows[i].isHeader {
			return i
		}
	}
	if from < 0 {
		return 0
	}
	return from
}

func (m editModel) Init() tea.Cmd {
	return nil
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateNavigation(msg)
	}

	return m, nil
}

func (m editModel) updateNavigation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Cancel):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = m.nextEntryRow(m.cursor, -1)
		m.status = ""

	case key.Matches(msg, m.keys.Down):
		m.cursor = m.nextEntryRow(m.cursor, 1)
		m.status = ""

	case key.Matches(msg, m.keys.Edit):
		if m.cursor < len(m.rows) && !m.rows[m.cursor].isHeader {
			m.editing = true
			m.input.SetValue(m.rows[m.cursor].value)
			m.input.CursorEnd()
			return m, m.input.Focus()
		}
	}

	return m, nil
}

func (m editModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		m.input.Blur()
		m.status = "edit cancelled"
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		row := &m.rows[m.cursor]
		newValue := m.input.Value()
		m.editing = false
		m.input.Blur()

		if newValue == row.value {
			m.status = "unchanged"
			return m, nil
		}

		if err := m.file.Set(row.section, row.entry, newValue); err != nil {
			m.status = "error: " + err.Error()
			return m, nil
		}

		m.changes = append(m.changes, domain.Change{
			Section:  row.section,
			Entry:    row.entry,
			OldValue: row.value,
			HadOld:   true,
			NewValue: newValue,
			Source:   domain.SourceEditor,
		})
		row.value = newValue
		m.status = "updated " + row.entry
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m editModel) View() string {
	if len(m.rows) == 0 {
		return style.Muted("empty settings file; add entries with dk set\n\nq quit")
	}

	var out string
	top, bottom := m.visibleRange()

	for i := top; i < bottom; i++ {
		row := m.rows[i]

		if row.isHeader {
			out += style.Header("["+row.section+"]") + "\n"
			continue
		}

		marker := "  "
		if i == m.cursor {
			marker = style.Success("> ")
		}

		if i == m.cursor && m.editing {
			out += marker + style.Key(row.entry) + " = " + m.input.View() + "\n"
			continue
		}

		out += marker + style.Key(row.entry) + " = " + style.Value(row.value) + "\n"
	}

	out += "\n"
	if m.status != "" {
		out += m.status + "\n"
	}
	if m.editing {
		out += style.Muted("enter apply · esc cancel")
	} else {
		out += style.Muted("↑/↓ move · enter edit · q save and quit")
	}
	return out
}

// visibleRange keeps the cursor inside the viewport on small terminals.
func (m editModel) visibleRange() (int, int) {
	visible := m.height - 4
	if visible < 1 {
		visible = 1
	}
	if len(m.rows) <= visible {
		return 0, len(m.rows)
	}

	top := m.cursor - visible/2
	if top < 0 {
		top = 0
	}
	if top+visible > len(m.rows) {
		top = len(m.rows) - visible
	}
	return top, top + visible
}
