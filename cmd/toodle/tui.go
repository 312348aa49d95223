package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/toodle-app/toodle"
)

// listItem adapts a managed toodle Item to bubbles/list.Item. It carries the
// uuid and resolves the item through the ListManager on every render, so the
// list never holds stale copies.
type listItem struct {
	uuid string
	mgr  *toodle.ListManager
}

func (i listItem) item() *toodle.Item { return i.mgr.Item(i.uuid) }

func (i listItem) Title() string {
	it := i.item()
	if it == nil {
		return ""
	}
	box := boxUnchecked
	if it.Completed() {
		box = boxChecked
	}
	return fmt.Sprintf("%s %s", box, it.Name)
}

func (i listItem) Description() string { return "" }

func (i listItem) FilterValue() string {
	if it := i.item(); it != nil {
		return it.Name
	}
	return ""
}

type inputMode int

const (
	modeNone inputMode = iota
	modeAdd
	modeEdit
	modeDue
)

type modelTUI struct {
	mgr  *toodle.ListManager
	list list.Model

	mode     inputMode
	ti       textinput.Model
	inputErr string
	editUUID string

	width, height int
}

// Custom delegate to control how items render (single line).
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	li, _ := item.(listItem)
	it := li.item()
	if it == nil {
		return
	}

	box := mutedStyle.Render(boxUnchecked)
	name := it.Name
	if it.Completed() {
		box = successStyle.Render(boxChecked)
		name = doneStyle.Render(name)
	}

	parts := []string{box, name}
	if sec, ok := it.DueDateSeconds(); ok {
		due := time.Unix(sec, 0)
		s := "due " + due.Format("2006-01-02")
		if !it.Completed() && due.Before(time.Now()) {
			parts = append(parts, overdueStyle.Render(s))
		} else {
			parts = append(parts, mutedStyle.Render(s))
		}
	}
	for _, l := range it.LabelsCopy() {
		parts = append(parts, labelChip(l.Name, l.Color))
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+strings.Join(parts, " "))
}

// runTUI starts the Bubble Tea program over the given list.
func runTUI(mgr *toodle.ListManager) error {
	items := mgr.Items()
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{uuid: it.UUID, mgr: mgr})
	}

	l := list.New(li, itemDelegate{}, 0, 0)
	l.Title = headerTitle(mgr)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	dueBind := key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "due date"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, editBind, dueBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind, editBind, dueBind} }

	m := modelTUI{
		mgr:  mgr,
		list: l,
	}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.CharLimit = 200

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func headerTitle(mgr *toodle.ListManager) string {
	done, pending := 0, 0
	for _, it := range mgr.Items() {
		if it.Completed() {
			done++
		} else {
			pending++
		}
	}
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Toodle"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), pending,
		accentStyle.Render("Total"), mgr.Len(),
	)
}

func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
	}

	if m.mode != modeNone {
		return m.updateInput(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			if it := m.selectedItem(); it != nil {
				if it.Completed() {
					it.ClearCompletionDate()
				} else {
					it.SetCompletionDate(time.Now().Unix())
				}
				m.list.Title = headerTitle(m.mgr)
			}
			return m, nil
		case "d":
			if it := m.selectedItem(); it != nil {
				m.mgr.RemoveItem(it.UUID)
				m.list.RemoveItem(m.list.Index())
				m.list.Title = headerTitle(m.mgr)
			}
			return m, nil
		case "a":
			m.mode = modeAdd
			m.inputErr = ""
			m.ti.SetValue("")
			m.ti.Placeholder = "New item name..."
			m.ti.Focus()
			return m, nil
		case "e":
			if it := m.selectedItem(); it != nil {
				m.mode = modeEdit
				m.inputErr = ""
				m.editUUID = it.UUID
				m.ti.SetValue(it.Name)
				m.ti.CursorEnd()
				m.ti.Placeholder = "Edit item name..."
				m.ti.Focus()
			}
			return m, nil
		case "t":
			if it := m.selectedItem(); it != nil {
				m.mode = modeDue
				m.inputErr = ""
				m.editUUID = it.UUID
				if sec, ok := it.DueDateSeconds(); ok {
					m.ti.SetValue(time.Unix(sec, 0).Format("2006-01-02"))
					m.ti.CursorEnd()
				} else {
					m.ti.SetValue("")
				}
				m.ti.Placeholder = "YYYY-MM-DD, unix seconds, or empty to clear"
				m.ti.Focus()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateInput handles key events while the inline text bar is open.
func (m modelTUI) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if err := m.commitInput(); err != nil {
				m.inputErr = err.Error()
				return m, nil
			}
			m.closeInput()
			return m, nil
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *modelTUI) commitInput() error {
	value := strings.TrimSpace(m.ti.Value())

	switch m.mode {
	case modeAdd:
		if value == "" {
			return fmt.Errorf("name cannot be empty")
		}
		it := m.mgr.CreateItem()
		it.Name = value
		m.list.InsertItem(m.list.Index()+1, listItem{uuid: it.UUID, mgr: m.mgr})

	case modeEdit:
		if value == "" {
			return fmt.Errorf("name cannot be empty")
		}
		if it := m.mgr.Item(m.editUUID); it != nil {
			it.Name = value
		}

	case modeDue:
		it := m.mgr.Item(m.editUUID)
		if it == nil {
			break
		}
		if value == "" {
			it.ClearDueDate()
			break
		}
		sec, err := parseDue(value)
		if err != nil {
			return err
		}
		it.SetDueDate(sec)
	}

	m.list.Title = headerTitle(m.mgr)
	return nil
}

func (m *modelTUI) closeInput() {
	m.mode = modeNone
	m.inputErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m modelTUI) selectedItem() *toodle.Item {
	i := m.list.Index()
	if i < 0 || i >= len(m.list.Items()) {
		return nil
	}
	li, ok := m.list.Items()[i].(listItem)
	if !ok {
		return nil
	}
	return li.item()
}

func (m modelTUI) View() string {
	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}
	listHeight := h - 4
	if m.mode != modeNone {
		listHeight = h - 6
	}
	m.list.SetSize(w-2, listHeight)

	content := m.list.View()
	if m.mode != modeNone {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		title := map[inputMode]string{
			modeAdd:  "Add item",
			modeEdit: "Edit item",
			modeDue:  "Set due date",
		}[m.mode]
		if m.inputErr != "" {
			title += " — " + errorStyle.Render(m.inputErr)
		}
		content = content + "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	return panelString(content)
}

// parseDue accepts either a calendar date or a raw unix timestamp in
// seconds.
func parseDue(s string) (int64, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t.Unix(), nil
	}
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		return sec, nil
	}
	return 0, fmt.Errorf("want YYYY-MM-DD or unix seconds")
}

// daysFromNow returns a whole-second unix timestamp n days from now.
func daysFromNow(n int) int64 {
	return time.Now().AddDate(0, 0, n).Unix()
}
