// Package tui renders the list screen with Bubble Tea. It owns no list
// state of its own: every key press becomes a screen event and the rows are
// rebuilt from the screen state afterwards.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tally/internal/model"
	"github.com/Makepad-fr/tally/internal/screen"
)

// row adapts model.Item to bubbles/list.Item
type row struct {
	item model.Item
}

func (r row) FilterValue() string { return r.item.Title }

// Custom delegate to control how rows render (single line)
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	r, ok := li.(row)
	if !ok {
		return
	}
	sym := mutedStyle.Render(symItem)
	if r.item.IsEditing {
		sym = editingStyle.Render(symEditing)
	}
	qty := accentStyle.Render(fmt.Sprintf("Qty: %d", r.item.Quantity))
	line := fmt.Sprintf("%s %s  %s", sym, r.item.Title, qty)

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprint(w, prefix+line)
}

type mode int

const (
	modeList mode = iota
	modeAdding
	modeEditing
)

const (
	fieldName = iota
	fieldQuantity
)

// Model is the Bubble Tea model of the list screen.
type Model struct {
	state *screen.State
	keys  keyMap
	list  list.Model

	mode   mode
	editID int // row whose buffer the inputs are bound to in modeEditing

	name  textinput.Model
	qty   textinput.Model
	field int
	err   string // last validation message, cleared on the next key

	width, height int
}

// New builds the model over st.
func New(st *screen.State) Model {
	keys := defaultKeys()

	l := list.New(nil, rowDelegate{}, 0, 0)
	l.Title = "Items"
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetStatusBarItemName("item", "items")
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{keys.Add, keys.Edit, keys.Delete} }
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	name := textinput.New()
	name.Prompt = "> "
	name.Placeholder = "Item name..."
	name.CharLimit = 200

	qty := textinput.New()
	qty.Prompt = "> "
	qty.Placeholder = "1"
	qty.CharLimit = 9

	m := Model{
		state: st,
		keys:  keys,
		list:  l,
		name:  name,
		qty:   qty,
		width: 80, height: 24,
	}
	m.resize()
	m.sync()
	return m
}

// Run starts the program on the alternate screen and blocks until it quits.
func Run(st *screen.State) error {
	p := tea.NewProgram(New(st), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// Update and View implement Bubble Tea's Model on Model
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeAdding:
			return m.updateAdding(msg)
		case modeEditing:
			return m.updateEditing(msg)
		}
		return m.updateList(msg)
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		m.state.OpenAddDialog()
		d := m.state.Draft()
		m.name.SetValue(d.Name)
		m.qty.SetValue(d.Quantity)
		m.mode = modeAdding
		m.resize()
		cmd := m.focus(fieldName)
		return m, cmd

	case key.Matches(msg, m.keys.Edit):
		r, ok := m.list.SelectedItem().(row)
		if !ok {
			return m, nil
		}
		m.state.BeginEdit(r.item.ID)
		b, ok := m.state.Buffer(r.item.ID)
		if !ok {
			return m, nil
		}
		m.editID = b.ID
		m.name.SetValue(b.Title)
		m.qty.SetValue(b.Quantity)
		m.mode = modeEditing
		m.resize()
		cmd := tea.Batch(m.sync(), m.focus(fieldName))
		return m, cmd

	case key.Matches(msg, m.keys.Delete):
		r, ok := m.list.SelectedItem().(row)
		if !ok {
			return m, nil
		}
		m.state.Delete(r.item.ID)
		cmd := m.sync()
		return m, cmd
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = ""
	switch {
	case key.Matches(msg, m.keys.Submit):
		d := m.state.Draft()
		if _, err := m.state.ConfirmAdd(d.Name, d.Quantity); err != nil {
			m.err = err.Error()
			cmd := m.list.NewStatusMessage(errorStyle.Render(m.err))
			return m, cmd
		}
		m.closeInputs()
		cmd := m.sync()
		m.list.Select(len(m.list.Items()) - 1)
		return m, cmd

	case key.Matches(msg, m.keys.Cancel):
		m.state.CancelAddDialog()
		m.closeInputs()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		cmd := m.focus(1 - m.field)
		return m, cmd
	}
	cmd := m.updateInput(msg)
	m.state.SetDraftName(m.name.Value())
	m.state.SetDraftQuantity(m.qty.Value())
	return m, cmd
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.state.SaveBuffer(m.editID)
		m.closeInputs()
		cmd := m.sync()
		return m, cmd

	case key.Matches(msg, m.keys.Cancel):
		m.state.CancelEdit(m.editID)
		m.closeInputs()
		cmd := m.sync()
		return m, cmd

	case key.Matches(msg, m.keys.Next):
		cmd := m.focus(1 - m.field)
		return m, cmd
	}
	cmd := m.updateInput(msg)
	if b, ok := m.state.Buffer(m.editID); ok {
		b.Title = m.name.Value()
		b.Quantity = m.qty.Value()
	}
	return m, cmd
}

func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	if m.field == fieldName {
		m.name, cmd = m.name.Update(msg)
	} else {
		m.qty, cmd = m.qty.Update(msg)
	}
	return cmd
}

func (m *Model) focus(field int) tea.Cmd {
	m.field = field
	if field == fieldName {
		m.qty.Blur()
		m.name.CursorEnd()
		return m.name.Focus()
	}
	m.name.Blur()
	m.qty.CursorEnd()
	return m.qty.Focus()
}

func (m *Model) closeInputs() {
	m.mode = modeList
	m.err = ""
	m.name.Blur()
	m.qty.Blur()
	m.name.SetValue("")
	m.qty.SetValue("")
	m.resize()
}

// sync rebuilds the rows from the screen state and keeps the cursor in range.
func (m *Model) sync() tea.Cmd {
	items := m.state.Items()
	rows := make([]list.Item, 0, len(items))
	for _, it := range items {
		rows = append(rows, row{item: it})
	}
	idx := m.list.Index()
	cmd := m.list.SetItems(rows)
	if idx >= len(rows) {
		idx = len(rows) - 1
	}
	m.list.Select(max(idx, 0))
	m.list.Title = fmt.Sprintf("%s   %s %d", titleStyle.Render("Items"), accentStyle.Render("Total"), len(items))
	return cmd
}

func (m *Model) resize() {
	h := m.height - 2
	if m.mode != modeList {
		h -= 6
	}
	m.list.SetSize(max(m.width-4, 10), max(h, 3))
}

func (m Model) View() string {
	content := m.list.View()
	if m.mode != modeList {
		title := "Add item"
		if m.mode == modeEditing {
			title = fmt.Sprintf("Edit item #%d", m.editID)
		}
		if m.err != "" {
			title += " — " + errorStyle.Render(m.err)
		}
		lines := []string{
			title,
			labelStyle.Render("Name") + m.name.View(),
			labelStyle.Render("Quantity") + m.qty.View(),
			helpStyle.Render("tab switch field • enter save • esc cancel"),
		}
		content = lipgloss.JoinVertical(lipgloss.Left, content, frameStyle.Render(strings.Join(lines, "\n")))
	}
	return frameStyle.Render(content)
}
