package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/relationship-game/internal/engine"
	"github.com/tatianab/relationship-game/internal/models"
)

type screen int

const (
	screenMenu screen = iota
	screenTopic
	screenCharacter
	screenLocation
	screenEnded
)

type menuItem struct {
	key    string
	action engine.Action
}

var menuItems = []menuItem{
	{"1", engine.ActionTalk},
	{"2", engine.ActionHangOut},
	{"3", engine.ActionGiveGift},
	{"4", engine.ActionGiveSpace},
	{"5", engine.ActionPushTooFast},
	{"6", engine.ActionSwitchCharacter},
	{"7", engine.ActionChangeLocation},
	{"8", engine.ActionEndDay},
	{"s", engine.ActionSave},
	{"l", engine.ActionLoad},
	{"q", engine.ActionQuit},
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Select: key.NewBinding(key.WithKeys("enter")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c")),
}

type model struct {
	screen   screen
	session  *engine.Session
	cursor   int
	status   string
	gameLog  []string
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87D787"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingRight(2)

	logStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color("#FFFFFF"))
)

type moodStyle struct {
	icon  string
	color lipgloss.Color
}

var moodStyles = map[models.Mood]moodStyle{
	models.MoodHappy:   {"♥", lipgloss.Color("#FF79C6")},
	models.MoodNeutral: {"•", lipgloss.Color("#AAAAAA")},
	models.MoodGuarded: {"~", lipgloss.Color("#F1C40F")},
	models.MoodUpset:   {"✖", lipgloss.Color("#E74C3C")},
}

func NewModel(session *engine.Session) model {
	return model{
		screen:  screenMenu,
		session: session,
		status:  fmt.Sprintf("Day %d. Pick something to do.", session.Day()),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenTopic:
			n, _ := strconv.Atoi(msg.String())
			return m.dispatch(engine.Command{Action: engine.ActionTalk, Topic: engine.ParseTopic(n)})
		case screenCharacter:
			n, err := strconv.Atoi(msg.String())
			if err != nil {
				m.screen = screenMenu
				return m, nil
			}
			return m.dispatch(engine.Command{Action: engine.ActionSwitchCharacter, Target: n})
		case screenLocation:
			var loc models.Location
			if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(models.Locations) {
				loc = models.Locations[n-1]
			}
			return m.dispatch(engine.Command{Action: engine.ActionChangeLocation, Location: loc})
		case screenEnded:
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		logWidth := max(msg.Width-panelWidth-4, 20)
		if !m.ready {
			m.viewport = viewport.New(logWidth, msg.Height-4)
			m.ready = true
		} else {
			m.viewport.Width = logWidth
			m.viewport.Height = msg.Height - 4
		}
		m.refreshLog()
	}

	return m, nil
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		m.cursor = (m.cursor + len(menuItems) - 1) % len(menuItems)
		return m, nil
	case key.Matches(msg, keys.Down):
		m.cursor = (m.cursor + 1) % len(menuItems)
		return m, nil
	case key.Matches(msg, keys.Select):
		return m.choose(menuItems[m.cursor])
	}

	pressed := strings.ToLower(msg.String())
	for i, item := range menuItems {
		if item.key == pressed {
			m.cursor = i
			return m.choose(item)
		}
	}
	return m, nil
}

func (m model) choose(item menuItem) (tea.Model, tea.Cmd) {
	switch item.action {
	case engine.ActionTalk:
		m.screen = screenTopic
		return m, nil
	case engine.ActionSwitchCharacter:
		m.screen = screenCharacter
		return m, nil
	case engine.ActionChangeLocation:
		m.screen = screenLocation
		return m, nil
	}
	return m.dispatch(engine.Command{Action: item.action})
}

// dispatch runs the command to completion before the next frame.
func (m model) dispatch(cmd engine.Command) (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	out, err := m.session.Dispatch(context.Background(), cmd)
	if errors.Is(err, engine.ErrSessionEnded) {
		m.screen = screenEnded
		return m, nil
	}

	m.gameLog = append(m.gameLog, out.Lines...)
	if cmd.Action == engine.ActionEndDay {
		m.gameLog = append(m.gameLog, titleStyle.Render("Day summary"))
		if len(out.Summary) == 0 {
			m.gameLog = append(m.gameLog, "  Nothing memorable happened.")
		}
		for _, event := range out.Summary {
			m.gameLog = append(m.gameLog, "  - "+event)
		}
	}
	m.status = out.Status
	if m.status == "" {
		m.status = fmt.Sprintf("%s. Day %d.", cmd.Action, m.session.Day())
	}
	if out.Ended {
		m.screen = screenEnded
	}
	m.refreshLog()
	return m, nil
}

func (m *model) refreshLog() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(logStyle.Width(m.viewport.Width).Render(strings.Join(m.gameLog, "\n")))
	m.viewport.GotoBottom()
}

func (m model) View() string {
	if m.screen == screenEnded {
		return "\n" + m.renderEnding() + "\n"
	}

	panel := panelStyle.Width(panelWidth).Render(m.renderHeader() + "\n\n" + m.renderStats() + "\n\n" + m.renderChoices())

	logView := ""
	if m.ready {
		logView = m.viewport.View()
	}
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, panel, logView)

	help := helpStyle.Render("↑/↓ + enter or press a key. ctrl+c quits without saving.")
	return lipgloss.JoinVertical(lipgloss.Left,
		"\n"+mainView,
		"\n"+statusStyle.Render(m.status),
		help,
	)
}

const panelWidth = 44

func (m model) renderHeader() string {
	c := m.session.Active()
	return fmt.Sprintf("%s\nInteracting with: %s (%s)",
		titleStyle.Render(fmt.Sprintf("DAY %d - Location: %s", m.session.Day(), m.session.Location())),
		c.Name, c.Personality)
}

func (m model) renderStats() string {
	c := m.session.Active()
	var b strings.Builder
	fmt.Fprintf(&b, "Attraction %s\n", statBar(c.Attraction))
	fmt.Fprintf(&b, "Trust      %s\n", statBar(c.Trust))
	fmt.Fprintf(&b, "Comfort    %s\n", statBar(c.Comfort))
	b.WriteString("Mood       " + renderMood(c.Mood) + "\n")

	arc := models.ArcFor(c.Name)
	fmt.Fprintf(&b, "%s: %d/%d", arc, c.StoryProgress[arc], models.ArcMax)
	if models.ArcComplete(c) {
		b.WriteString(" (complete)")
	}
	b.WriteString("\nVisited: ")
	if len(c.QuestLog) == 0 {
		b.WriteString("(nowhere yet)")
	} else {
		b.WriteString(strings.Join(c.QuestLog, ", "))
	}
	return b.String()
}

func statBar(v int) string {
	filled := v / 10
	return fmt.Sprintf("%s%s %3d", strings.Repeat("█", filled), strings.Repeat("░", 10-filled), v)
}

func renderMood(mood models.Mood) string {
	style, ok := moodStyles[mood]
	if !ok {
		return string(mood)
	}
	return lipgloss.NewStyle().Foreground(style.color).Render(style.icon + " " + string(mood))
}

func (m model) renderChoices() string {
	var b strings.Builder
	switch m.screen {
	case screenTopic:
		b.WriteString(titleStyle.Render("Topics") + "\n")
		for _, t := range engine.Topics {
			fmt.Fprintf(&b, "%d. %s\n", int(t), t)
		}
	case screenCharacter:
		b.WriteString(titleStyle.Render("Choose") + "\n")
		for i, c := range m.session.Roster() {
			fmt.Fprintf(&b, "%d. %s\n", i+1, c.Name)
		}
	case screenLocation:
		b.WriteString(titleStyle.Render("Choose location") + "\n")
		for i, loc := range models.Locations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, loc)
		}
	default:
		for i, item := range menuItems {
			line := fmt.Sprintf("%s. %s", strings.ToUpper(item.key), item.action)
			if i == m.cursor {
				line = selectedStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

func (m model) renderEnding() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Your story with %s comes to an end.", m.session.Active().Name)))
	fmt.Fprintf(&b, "\n\nDays together: %d\n\n", m.session.Day())
	for _, s := range m.session.Summary() {
		fmt.Fprintf(&b, "%-8s attraction %3d  trust %3d  comfort %3d  %s  %s %d/%d\n",
			s.Name, s.Attraction, s.Trust, s.Comfort, renderMood(s.Mood), s.Arc, s.ArcStep, models.ArcMax)
	}
	b.WriteString("\n" + helpStyle.Render("Press any key to exit."))
	return b.String()
}

func Run(session *engine.Session) error {
	p := tea.NewProgram(NewModel(session), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
