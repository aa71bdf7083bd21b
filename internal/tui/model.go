package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryoumen0412/RollForge/internal/dnd"
	"github.com/ryoumen0412/RollForge/internal/roster"
	"github.com/ryoumen0412/RollForge/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *roster.Service

	width  int
	height int

	characters []*dnd.Character
	selected   int

	confirmDelete bool
	lastLog       string
	loading       bool
	err           error
}

type loadedMsg struct {
	characters []*dnd.Character
	err        error
}

type deletedMsg struct {
	name string
	err  error
}

func newBoardModel(ctx context.Context, svc *roster.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		chars, err := m.svc.List(m.ctx)
		return loadedMsg{characters: chars, err: err}
	}
}

func (m boardModel) deleteCmd(c *dnd.Character) tea.Cmd {
	return func() tea.Msg {
		return deletedMsg{name: c.Name(), err: m.svc.Delete(m.ctx, c.ID())}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.characters = msg.characters
		if m.selected >= len(m.characters) {
			m.selected = len(m.characters) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case deletedMsg:
		m.confirmDelete = false
		if msg.err != nil {
			m.lastLog = "Delete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Deleted %s.", msg.name)
		return m, m.loadCmd()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.confirmDelete {
		switch key {
		case "y":
			if c := m.current(); c != nil {
				m.lastLog = fmt.Sprintf("Deleting %s…", c.Name())
				return m, m.deleteCmd(c)
			}
			m.confirmDelete = false
			return m, nil
		default:
			m.confirmDelete = false
			m.lastLog = "Delete cancelled."
			return m, nil
		}
	}

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r":
		m.loading = true
		m.lastLog = "Refreshing…"
		return m, m.loadCmd()
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < len(m.characters)-1 {
			m.selected++
		}
		return m, nil
	case "d", "x":
		if c := m.current(); c != nil {
			m.confirmDelete = true
			m.lastLog = fmt.Sprintf("Delete %s? (y/n)", c.Name())
		}
		return m, nil
	}
	return m, nil
}

func (m boardModel) current() *dnd.Character {
	if m.selected < 0 || m.selected >= len(m.characters) {
		return nil
	}
	return m.characters[m.selected]
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderRoster()
	main := m.renderSheet()
	footer := "\n" + m.lastLog

	// Simple 2-column layout.
	leftW := 28
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	return ui.Title.Render(fmt.Sprintf("%s RollForge", ui.IconDie)) + ui.Muted.Render(fmt.Sprintf(" | %d characters", len(m.characters)))
}

func (m boardModel) renderRoster() string {
	lines := []string{"Roster"}
	if m.loading {
		lines = append(lines, "Loading…")
	} else if len(m.characters) == 0 {
		lines = append(lines, "(empty)")
	} else {
		for i, c := range m.characters {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
			}
			lines = append(lines, fmt.Sprintf("%s%s (%s)", cursor, c.Name(), c.Class()))
		}
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- d: delete")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderSheet() string {
	c := m.current()
	if c == nil {
		return "Sheet\n\n(no character selected)"
	}

	var out []string
	out = append(out, fmt.Sprintf("%s — %s", c.Name(), c.Class()))
	if c.PortraitPath() != "" {
		out = append(out, "Portrait: "+c.PortraitPath())
	}
	out = append(out, "")
	out = append(out, "Stats")
	for _, stat := range dnd.Stats() {
		score, _ := c.StatScore(stat)
		mod, _ := c.Modifier(stat)
		out = append(out, fmt.Sprintf("- %s %2d %s", stat, score, ui.Mod(mod)))
	}
	out = append(out, "")
	out = append(out, "Skills")
	for _, stat := range dnd.Stats() {
		skills, _ := dnd.SkillsByStat(stat)
		for _, skill := range skills {
			mark := ui.ProficiencyMark(c.HasProficiency(skill))
			out = append(out, fmt.Sprintf("%s %s (%s)", mark, skill, stat))
		}
	}
	return strings.Join(out, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
