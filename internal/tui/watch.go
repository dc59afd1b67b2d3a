// Package tui holds the live watch screen for in-flight variant
// generation.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/samacademy/cohortgen/internal/content"
	"github.com/samacademy/cohortgen/internal/store"
)

const pollInterval = time.Second

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	failedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F8FAFC"))
)

// statusMsg carries one poll's snapshot of the parent and its variants.
type statusMsg struct {
	parent   *store.Task
	variants []*store.Task
	groups   []*store.Group
	err      error
}

// pollTickMsg schedules the next store poll.
type pollTickMsg time.Time

// WatchModel polls a parent task's variants until the parent reaches a
// terminal state.
type WatchModel struct {
	tasks    store.TaskRepo
	groups   store.GroupRepo
	parentID int

	spin     spinner.Model
	parent   *store.Task
	variants []*store.Task
	groupNum map[int]int // variant task id → group number
	errMsg   string
	done     bool
}

// NewWatch creates a watch model for a parent task.
func NewWatch(tasks store.TaskRepo, groups store.GroupRepo, parentID int) *WatchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#14B8A6"))
	return &WatchModel{
		tasks:    tasks,
		groups:   groups,
		parentID: parentID,
		spin:     sp,
		groupNum: make(map[int]int),
	}
}

func (m *WatchModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.poll())
}

func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case pollTickMsg:
		return m, m.poll()

	case statusMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.done = true
			return m, tea.Quit
		}
		m.parent = msg.parent
		m.variants = msg.variants
		for _, g := range msg.groups {
			if g.VariantTaskID != nil {
				m.groupNum[*g.VariantTaskID] = g.Number
			}
		}
		if msg.parent.Status.Terminal() {
			m.done = true
			return m, tea.Quit
		}
		return m, tea.Tick(pollInterval, func(t time.Time) tea.Msg { return pollTickMsg(t) })
	}
	return m, nil
}

func (m *WatchModel) poll() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		parent, err := m.tasks.Get(ctx, m.parentID)
		if err != nil {
			return statusMsg{err: fmt.Errorf("load task %d: %w", m.parentID, err)}
		}
		variants, err := m.tasks.VariantsOf(ctx, m.parentID)
		if err != nil {
			return statusMsg{err: fmt.Errorf("load variants: %w", err)}
		}
		groups, err := m.groups.ByTask(ctx, m.parentID)
		if err != nil {
			return statusMsg{err: fmt.Errorf("load groups: %w", err)}
		}
		return statusMsg{parent: parent, variants: variants, groups: groups}
	}
}

func (m *WatchModel) View() tea.View {
	var b strings.Builder

	if m.errMsg != "" {
		b.WriteString(failedStyle.Render("Error: "+m.errMsg) + "\n")
		return tea.NewView(b.String())
	}
	if m.parent == nil {
		b.WriteString(m.spin.View() + dimStyle.Render(" loading...") + "\n")
		return tea.NewView(b.String())
	}

	b.WriteString(titleStyle.Render(fmt.Sprintf("task %d  %s  %q", m.parent.ID, m.parent.Kind, m.parent.Topic)))
	b.WriteString("  " + statusLabel(m.parent.Status) + "\n\n")

	if len(m.variants) == 0 {
		b.WriteString(dimStyle.Render("  no variants yet") + "\n")
	}
	for _, v := range m.variants {
		marker := "  "
		if !v.Status.Terminal() {
			marker = m.spin.View()
		}
		num := m.groupNum[v.ID]
		line := fmt.Sprintf("%s group %d  %-24s %s", marker, num, v.Combo.Key(), statusLabel(v.Status))
		b.WriteString(line + "\n")
	}

	if m.done {
		b.WriteString("\n" + dimStyle.Render("done") + "\n")
	} else {
		b.WriteString("\n" + dimStyle.Render("q to quit") + "\n")
	}
	return tea.NewView(b.String())
}

func statusLabel(s content.Status) string {
	switch s {
	case content.StatusCompleted:
		return completedStyle.Render(string(s))
	case content.StatusFailed:
		return failedStyle.Render(string(s))
	case content.StatusGenerating:
		return pendingStyle.Render(string(s))
	default:
		return dimStyle.Render(string(s))
	}
}

// Run blocks until the watched parent reaches a terminal state or the
// user quits.
func Run(tasks store.TaskRepo, groups store.GroupRepo, parentID int) error {
	p := tea.NewProgram(NewWatch(tasks, groups, parentID))
	_, err := p.Run()
	return err
}
