package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wanjala-dev/duetrack/internal/api"
	"github.com/wanjala-dev/duetrack/internal/gateway"
	"github.com/wanjala-dev/duetrack/internal/model"
	"github.com/wanjala-dev/duetrack/internal/stats"
	"github.com/wanjala-dev/duetrack/internal/store"
)

type appState int

const (
	stateStartup appState = iota
	stateLogin
	stateRegister
	stateList
	stateForm
	stateConfirm
	stateAnalytics
)

var (
	appStyle     = lipgloss.NewStyle().Padding(1, 2)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	confirmStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	offlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	sideStyle    = lipgloss.NewStyle().
			Padding(1, 2).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241"))
)

type listKeyMap struct {
	Add       key.Binding
	Edit      key.Binding
	Complete  key.Binding
	Delete    key.Binding
	Copy      key.Binding
	Analytics key.Binding
	Refresh   key.Binding
	Logout    key.Binding
}

func newListKeyMap() listKeyMap {
	return listKeyMap{
		Add: key.NewBinding(
			key.WithKeys("a", "n"),
			key.WithHelp("a/n", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Complete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "complete"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		Analytics: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "analytics"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Logout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "logout"),
		),
	}
}

type noticeLevel int

const (
	noticeInfo noticeLevel = iota
	noticeSuccess
	noticeWarning
	noticeError
)

type notice struct {
	level noticeLevel
	title string
	text  string
	seq   int
}

type confirmKind int

const (
	confirmDelete confirmKind = iota
	confirmComplete
)

// Model is the top-level bubbletea model.
type Model struct {
	state appState

	client  *api.Client
	store   *store.Store
	gateway *gateway.Gateway
	loc     *time.Location
	now     func() time.Time

	list  list.Model
	keys  listKeyMap
	spin  spinner.Model
	form  assignmentForm
	auth  authForm

	confirmWhat  confirmKind
	confirmID    int
	confirmTitle string

	user      api.User
	serverAgg *stats.Aggregate
	offline   bool
	busy      bool
	note      notice
	noteSeq   int
	width     int
	height    int
}

type (
	profileMsg   struct {
		user api.User
		err  error
	}
	loggedInMsg struct {
		user api.User
		err  error
	}
	registeredMsg struct{ err error }
	loggedOutMsg  struct{ err error }
	reloadedMsg   struct{ err error }
	mutationMsg   struct {
		verb string
		err  error
	}
	editLoadedMsg struct {
		assignment model.Assignment
		err        error
	}
	statisticsMsg struct {
		agg stats.Aggregate
		err error
	}
	forgotMsg      struct{ err error }
	clearNoticeMsg struct{ seq int }
)

// NewModel builds the TUI over an authenticated-or-not API client.
func NewModel(client *api.Client, st *store.Store, gw *gateway.Gateway, loc *time.Location) Model {
	keys := newListKeyMap()

	delegate := list.NewDefaultDelegate()
	delegate.SetHeight(2)
	delegate.SetSpacing(0)
	l := list.New(nil, delegate, 0, 0)
	l.Title = "duetrack"
	l.Styles.Title = titleStyle
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("assignment", "assignments")
	extra := func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Complete, keys.Delete, keys.Copy, keys.Analytics, keys.Refresh, keys.Logout}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		state:   stateStartup,
		client:  client,
		store:   st,
		gateway: gw,
		loc:     loc,
		now:     time.Now,
		list:    l,
		keys:    keys,
		spin:    sp,
		form:    newAssignmentForm(loc),
		auth:    newAuthForm(false),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.checkProfile)
}

// Commands. Each resolves on its own goroutine and reports back as a message.

func (m Model) checkProfile() tea.Msg {
	user, err := m.client.Profile(context.Background())
	return profileMsg{user: user, err: err}
}

func (m Model) reload() tea.Msg {
	return reloadedMsg{err: m.store.Reload(context.Background())}
}

func (m Model) fetchStatistics() tea.Msg {
	s, err := m.client.Statistics(context.Background())
	if err != nil {
		return statisticsMsg{err: err}
	}
	return statisticsMsg{agg: s.Aggregate()}
}

func (m Model) doLogin(email, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := m.client.Login(context.Background(), email, password)
		return loggedInMsg{user: user, err: err}
	}
}

func (m Model) doRegister(first, last, email, password string) tea.Cmd {
	return func() tea.Msg {
		return registeredMsg{err: m.client.Register(context.Background(), first, last, email, password)}
	}
}

func (m Model) doLogout() tea.Msg {
	return loggedOutMsg{err: m.client.Logout(context.Background())}
}

func (m Model) doForgot(email string) tea.Cmd {
	return func() tea.Msg {
		return forgotMsg{err: m.client.ForgotPassword(context.Background(), email)}
	}
}

func (m Model) doCreate(in gateway.Input) tea.Cmd {
	return func() tea.Msg {
		_, err := m.gateway.Create(context.Background(), in)
		return mutationMsg{verb: "created", err: err}
	}
}

func (m Model) doUpdate(id int, in gateway.Input) tea.Cmd {
	return func() tea.Msg {
		_, err := m.gateway.Update(context.Background(), id, in)
		return mutationMsg{verb: "updated", err: err}
	}
}

func (m Model) doComplete(id int) tea.Cmd {
	return func() tea.Msg {
		err := m.gateway.SetStatus(context.Background(), id, model.StatusCompleted)
		return mutationMsg{verb: "completed", err: err}
	}
}

func (m Model) doDelete(id int) tea.Cmd {
	return func() tea.Msg {
		err := m.gateway.Delete(context.Background(), id, true)
		return mutationMsg{verb: "deleted", err: err}
	}
}

func (m Model) loadForEdit(id int) tea.Cmd {
	return func() tea.Msg {
		a, err := m.client.GetAssignment(context.Background(), id)
		return editLoadedMsg{assignment: a, err: err}
	}
}

func (m *Model) notify(level noticeLevel, title, text string) tea.Cmd {
	m.noteSeq++
	m.note = notice{level: level, title: title, text: text, seq: m.noteSeq}
	seq := m.noteSeq
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

func (m *Model) notifyErr(err error) tea.Cmd {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		return m.notify(noticeWarning, "Session expired", "Please log in again.")
	case api.IsNetwork(err):
		return m.notify(noticeWarning, "Connection error", "The server is unreachable. Please try again.")
	default:
		return m.notify(noticeError, "Error", err.Error())
	}
}

// syncList rebuilds the visible rows from the store snapshot so every view
// derives from the same state.
func (m *Model) syncList() {
	snapshot := m.store.Snapshot()
	now := m.now()
	items := make([]list.Item, len(snapshot))
	for i, a := range snapshot {
		items[i] = assignmentItem{assignment: a, now: now}
	}
	m.list.SetItems(items)
}

func (m *Model) selected() (model.Assignment, bool) {
	item, ok := m.list.SelectedItem().(assignmentItem)
	if !ok {
		return model.Assignment{}, false
	}
	return item.assignment, true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Any keypress dismisses the current notice; handlers below may set a
	// fresh one.
	if _, ok := msg.(tea.KeyMsg); ok && m.note.title != "" {
		m.note = notice{}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := appStyle.GetFrameSize()
		contentWidth := msg.Width - h
		leftWidth := contentWidth * 55 / 100
		m.list.SetSize(leftWidth, msg.Height-v-1)
		return m, nil

	case spinner.TickMsg:
		if !m.busy && m.state != stateStartup {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case clearNoticeMsg:
		if m.note.seq == msg.seq {
			m.note = notice{}
		}
		return m, nil

	case profileMsg:
		return m.onProfile(msg)

	case loggedInMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.notifyErr(msg.err)
		}
		m.user = msg.user
		m.state = stateList
		m.busy = true
		return m, tea.Batch(m.spin.Tick, m.reload)

	case registeredMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.notifyErr(msg.err)
		}
		m.auth = newAuthForm(false)
		m.state = stateLogin
		return m, m.notify(noticeSuccess, "Account created", "Check your email for a verification link, then log in.")

	case loggedOutMsg:
		m.busy = false
		m.store.Clear()
		m.user = api.User{}
		m.auth = newAuthForm(false)
		m.state = stateLogin
		if msg.err != nil {
			return m, m.notifyErr(msg.err)
		}
		return m, m.notify(noticeInfo, "Logged out", "See you next time.")

	case reloadedMsg:
		return m.onReloaded(msg)

	case mutationMsg:
		return m.onMutation(msg)

	case editLoadedMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.notifyErr(msg.err)
		}
		m.form = newAssignmentForm(m.loc)
		m.form.prefill(msg.assignment, m.loc)
		m.state = stateForm
		return m, m.form.focusCurrent()

	case statisticsMsg:
		m.busy = false
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrUnauthorized) {
				m.auth = newAuthForm(false)
				m.state = stateLogin
				return m, m.notify(noticeWarning, "Session expired", "Please log in again.")
			}
			// Fall back to the local aggregator over the snapshot.
			m.state = stateAnalytics
			return m, m.notify(noticeWarning, "Server statistics unavailable", "Showing locally computed numbers.")
		}
		m.state = stateAnalytics
		m.serverAgg = &msg.agg
		return m, nil

	case forgotMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.notifyErr(msg.err)
		}
		return m, m.notify(noticeSuccess, "Email sent", "Check your inbox for the reset link.")
	}

	switch m.state {
	case stateLogin, stateRegister:
		return m.updateAuth(msg)
	case stateList:
		return m.updateList(msg)
	case stateForm:
		return m.updateForm(msg)
	case stateConfirm:
		return m.updateConfirm(msg)
	case stateAnalytics:
		return m.updateAnalytics(msg)
	}
	return m, nil
}

func (m Model) onProfile(msg profileMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.err == nil:
		m.user = msg.user
		m.state = stateList
		m.busy = true
		return m, tea.Batch(m.spin.Tick, m.reload)
	case errors.Is(msg.err, api.ErrUnauthorized):
		m.state = stateLogin
		return m, nil
	case api.IsNetwork(msg.err):
		// Backend unreachable: fall back to the cached snapshot, read-only.
		if err := m.store.RestoreCached(); err == nil {
			m.offline = true
			m.state = stateList
			m.syncList()
			return m, m.notify(noticeWarning, "Offline mode", "Server unreachable; showing the last cached snapshot.")
		}
		m.state = stateLogin
		return m, m.notify(noticeWarning, "Connection error", "The server is unreachable. Please try again.")
	default:
		m.state = stateLogin
		return m, m.notifyErr(msg.err)
	}
}

func (m Model) onReloaded(msg reloadedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		if errors.Is(msg.err, api.ErrUnauthorized) {
			m.auth = newAuthForm(false)
			m.state = stateLogin
			return m, m.notify(noticeWarning, "Session expired", "Please log in again.")
		}
		return m, m.notifyErr(msg.err)
	}
	m.offline = false
	m.syncList()
	return m, nil
}

func (m Model) onMutation(msg mutationMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		var verr *gateway.ValidationError
		if errors.As(msg.err, &verr) {
			m.form.setErrors(verr.Fields)
			return m, nil
		}
		if errors.Is(msg.err, api.ErrUnauthorized) {
			m.auth = newAuthForm(false)
			m.state = stateLogin
			return m, m.notify(noticeWarning, "Session expired", "Please log in again.")
		}
		return m, m.notifyErr(msg.err)
	}
	m.state = stateList
	m.syncList()
	return m, m.notify(noticeSuccess, "Success", "Assignment "+msg.verb+".")
}

func (m Model) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			if m.busy {
				return m, nil
			}
			m.busy = true
			if m.state == stateRegister {
				return m, tea.Batch(m.spin.Tick, m.doRegister(
					m.auth.firstName.Value(), m.auth.lastName.Value(),
					m.auth.email.Value(), m.auth.password.Value(),
				))
			}
			return m, tea.Batch(m.spin.Tick, m.doLogin(m.auth.email.Value(), m.auth.password.Value()))
		case "ctrl+r":
			m.auth = newAuthForm(m.state != stateRegister)
			if m.state == stateRegister {
				m.state = stateLogin
			} else {
				m.state = stateRegister
			}
			return m, nil
		case "ctrl+f":
			if m.state == stateLogin {
				email := m.auth.email.Value()
				if email == "" {
					return m, m.notify(noticeWarning, "Email required", "Type your email first, then press ctrl+f.")
				}
				m.busy = true
				return m, tea.Batch(m.spin.Tick, m.doForgot(email))
			}
		}
	}
	var cmd tea.Cmd
	m.auth, cmd = m.auth.update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		if m.offline {
			// Read-only: allow navigation, refresh attempts and quit only.
			switch keyMsg.String() {
			case "r":
				m.busy = true
				return m, tea.Batch(m.spin.Tick, m.checkProfile)
			case "a", "n", "e", "x", "d":
				return m, m.notify(noticeWarning, "Offline mode", "Mutations need a server connection.")
			}
		}
		switch keyMsg.String() {
		case "a", "n":
			if m.busy {
				return m, nil
			}
			m.form = newAssignmentForm(m.loc)
			m.state = stateForm
			return m, m.form.focusCurrent()
		case "e":
			if a, ok := m.selected(); ok && !m.busy {
				m.busy = true
				return m, tea.Batch(m.spin.Tick, m.loadForEdit(a.ID))
			}
		case "x":
			if a, ok := m.selected(); ok && !m.busy {
				if a.Status == model.StatusCompleted {
					return m, m.notify(noticeInfo, "Already completed", a.Title)
				}
				m.confirmWhat = confirmComplete
				m.confirmID = a.ID
				m.confirmTitle = a.Title
				m.state = stateConfirm
			}
		case "d":
			if a, ok := m.selected(); ok && !m.busy {
				m.confirmWhat = confirmDelete
				m.confirmID = a.ID
				m.confirmTitle = a.Title
				m.state = stateConfirm
			}
		case "c":
			if a, ok := m.selected(); ok {
				if err := clipboard.WriteAll(assignmentText(a, m.loc)); err != nil {
					return m, m.notify(noticeError, "Clipboard error", err.Error())
				}
				return m, m.notify(noticeInfo, "Copied", a.Title)
			}
		case "g":
			if m.busy {
				return m, nil
			}
			if m.offline {
				m.state = stateAnalytics
				return m, nil
			}
			m.busy = true
			return m, tea.Batch(m.spin.Tick, m.fetchStatistics)
		case "r":
			if m.busy {
				return m, nil
			}
			m.busy = true
			return m, tea.Batch(m.spin.Tick, m.reload)
		case "L":
			if m.busy {
				return m, nil
			}
			m.busy = true
			return m, tea.Batch(m.spin.Tick, m.doLogout)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+s":
			if m.busy {
				return m, nil
			}
			if !m.form.due.IsEmpty() {
				if _, err := m.form.due.Value(); err != nil {
					m.form.setErrors(map[string]string{"due_date": err.Error()})
					return m, nil
				}
			}
			in := m.form.input()
			// Validate before dispatch so field errors paint immediately and
			// nothing is sent for invalid input.
			if err := gateway.Validate(in, m.now()); err != nil {
				var verr *gateway.ValidationError
				if errors.As(err, &verr) {
					m.form.setErrors(verr.Fields)
					return m, nil
				}
				return m, m.notifyErr(err)
			}
			m.form.setErrors(nil)
			m.busy = true
			if m.form.editID != 0 {
				return m, tea.Batch(m.spin.Tick, m.doUpdate(m.form.editID, in))
			}
			return m, tea.Batch(m.spin.Tick, m.doCreate(in))
		case "esc":
			m.state = stateList
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y":
			m.state = stateList
			m.busy = true
			if m.confirmWhat == confirmDelete {
				return m, tea.Batch(m.spin.Tick, m.doDelete(m.confirmID))
			}
			return m, tea.Batch(m.spin.Tick, m.doComplete(m.confirmID))
		case "n", "esc":
			m.state = stateList
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updateAnalytics(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q", "g":
			m.serverAgg = nil
			m.state = stateList
			return m, nil
		case "r":
			if m.busy || m.offline {
				return m, nil
			}
			m.busy = true
			return m, tea.Batch(m.spin.Tick, m.fetchStatistics)
		}
	}
	return m, nil
}

func assignmentText(a model.Assignment, loc *time.Location) string {
	due := "no due date"
	if a.DueDate != nil {
		due = a.DueDate.In(loc).Format("2006-01-02 15:04")
	}
	return fmt.Sprintf("%s\n%s\ndue: %s\npriority: %s\nstatus: %s", a.Title, a.Description, due, a.Priority, a.Status)
}

func (m Model) noticeView() string {
	if m.note.title == "" {
		return ""
	}
	style := statusStyle
	icon := "ℹ"
	switch m.note.level {
	case noticeSuccess:
		style, icon = successStyle, "✓"
	case noticeWarning:
		style, icon = warnStyle, "⚠"
	case noticeError:
		style, icon = errorStyle, "✕"
	}
	return "\n" + style.Render(fmt.Sprintf("%s %s: %s", icon, m.note.title, m.note.text))
}

func (m Model) busyView() string {
	if !m.busy {
		return ""
	}
	return "\n" + m.spin.View() + statusStyle.Render("working...")
}

func (m Model) View() string {
	switch m.state {
	case stateStartup:
		return appStyle.Render(m.spin.View() + " connecting..." + m.noticeView())
	case stateLogin:
		return appStyle.Render(
			m.auth.view("Log in to duetrack",
				"enter: log in • ctrl+r: register • ctrl+f: forgot password • ctrl+c: quit") +
				m.busyView() + m.noticeView(),
		)
	case stateRegister:
		return appStyle.Render(
			m.auth.view("Create your account",
				"enter: register • ctrl+r: back to login • ctrl+c: quit") +
				m.busyView() + m.noticeView(),
		)
	case stateForm:
		return appStyle.Render(m.form.view() + m.busyView() + m.noticeView())
	case stateConfirm:
		verb := "Delete"
		warning := "This cannot be undone."
		if m.confirmWhat == confirmComplete {
			verb = "Complete"
			warning = "The assignment will be marked as completed."
		}
		return appStyle.Render(
			confirmStyle.Render(verb+" this assignment?") + "\n\n" +
				"  " + m.confirmTitle + "\n  " + statusStyle.Render(warning) + "\n\n" +
				statusStyle.Render("y: confirm • n/esc: cancel") +
				m.noticeView(),
		)
	case stateAnalytics:
		return appStyle.Render(m.analyticsView() + m.busyView() + m.noticeView())
	default:
		return appStyle.Render(m.dashboardView() + m.noticeView())
	}
}

// dashboardView is the main screen: the assignment table on the left, the
// summary cards and both charts on the right, all derived from the same
// snapshot and aggregate.
func (m Model) dashboardView() string {
	agg := stats.Compute(m.store.Snapshot(), m.now())

	h, v := appStyle.GetFrameSize()
	contentWidth := m.width - h
	rightWidth := contentWidth - contentWidth*55/100
	if rightWidth < 30 {
		rightWidth = 30
	}

	header := ""
	if m.offline {
		header = offlineStyle.Render("OFFLINE — read-only cached snapshot") + "\n"
	}

	chartWidth := rightWidth - 6
	right := renderSummaryCards(agg) + "\n\n" +
		renderStatusChart(agg, chartWidth) + "\n\n" +
		renderPriorityChart(agg, chartWidth) + "\n\n" +
		renderDueBreakdown(agg)

	rightPane := sideStyle.
		Width(rightWidth).
		Height(m.height - v - 1).
		Render(right)

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), rightPane)
	return header + body + m.busyView()
}

func (m Model) analyticsView() string {
	source := "server statistics"
	var agg stats.Aggregate
	if m.serverAgg != nil {
		agg = *m.serverAgg
	} else {
		agg = stats.Compute(m.store.Snapshot(), m.now())
		source = "local snapshot"
	}

	width := m.width - 10
	if width > 60 {
		width = 60
	}

	return titleStyle.Render("Analytics") + statusStyle.Render("  ("+source+")") + "\n\n" +
		renderSummaryCards(agg) + "\n\n" +
		renderStatusChart(agg, width) + "\n\n" +
		renderPriorityChart(agg, width) + "\n\n" +
		renderDueBreakdown(agg) + "\n\n" +
		statusStyle.Render("r: refresh • esc: back")
}
