package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/tix/pkg/config"
	"github.com/vanderheijden86/tix/pkg/debug"
	"github.com/vanderheijden86/tix/pkg/feed"
	"github.com/vanderheijden86/tix/pkg/metrics"
	"github.com/vanderheijden86/tix/pkg/model"
	"github.com/vanderheijden86/tix/pkg/watcher"
	"github.com/vanderheijden86/tix/pkg/window"
)

// ConfigChangedMsg is sent when the config file changed on disk and was
// reloaded.
type ConfigChangedMsg struct {
	Config config.Config
	Err    error
}

// ScrollToMsg moves the list to an absolute scroll offset.
type ScrollToMsg struct {
	Offset int
}

// ConfigReloader re-reads the configuration after a file change.
type ConfigReloader func() (config.Config, error)

// WatchConfigCmd returns a command that waits for the next change of the
// watched file and reloads the configuration.
func WatchConfigCmd(w *watcher.Watcher, reload ConfigReloader) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Changed(); !ok {
			return nil
		}
		cfg, err := reload()
		return ConfigChangedMsg{Config: cfg, Err: err}
	}
}

const reloadingStatus = "Reloading…"

// Model is the Bubble Tea model of the ticket list.
type Model struct {
	feed  *feed.Feed
	cfg   config.Config
	theme Theme
	keys  KeyMap

	sizer  ViewportSizer
	scroll ScrollController

	width int
	ready bool

	// Height of the chrome above the list, for mouse hit testing.
	topHeight int

	cursor   int
	selected *model.Ticket
	dialog   *Dialog

	showHelp bool
	help     *helpOverlay
	helpBar  help.Model
	spinner  spinner.Model
	shimmer  int

	statusMsg     string
	statusIsError bool

	watcher *watcher.Watcher
	reload  ConfigReloader
}

// NewModel creates the list model over f. The feed is expected to be in
// the loading state; Init starts the first fetch.
func NewModel(f *feed.Feed, cfg config.Config) Model {
	theme := DefaultTheme(lipgloss.DefaultRenderer())
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(theme.PrimaryBold),
	)
	return Model{
		feed:    f,
		cfg:     cfg,
		theme:   theme,
		keys:    DefaultKeyMap,
		help:    &helpOverlay{},
		helpBar: help.New(),
		spinner: sp,
	}
}

// SetConfigWatcher makes the model follow changes of the config file.
func (m *Model) SetConfigWatcher(w *watcher.Watcher, reload ConfigReloader) {
	m.watcher = w
	m.reload = reload
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.feed.Fetch(), m.spinner.Tick}
	if m.watcher != nil && m.reload != nil {
		cmds = append(cmds, WatchConfigCmd(m.watcher, m.reload))
	}
	return tea.Batch(cmds...)
}

// geometry returns the row layout with the current container height.
func (m Model) geometry() window.Geometry {
	g := m.cfg.Geometry()
	g.ContainerHeight = m.sizer.ContainerHeight()
	return g.Normalized()
}

func (m Model) layout() Layout {
	return ComputeLayout(m.geometry(), m.scroll.Offset(), m.feed.Len(), m.feed.Loading(), m.cfg.UI.SkeletonRows)
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusIsError = isErr
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The dialog receives every message type, not only keys: huh.Form relies
	// on its own internal messages for field navigation. Messages the list
	// must still see are handled below.
	if m.dialog != nil {
		switch msg := msg.(type) {
		case feed.FetchedMsg, ConfigChangedMsg, spinner.TickMsg:
		case tea.WindowSizeMsg:
			m.resize(msg)
			return m, m.dialog.Update(msg)
		default:
			cmd := m.dialog.Update(msg)
			return m.finishDialog(cmd)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		return m, nil

	case feed.FetchedMsg:
		if !m.feed.Apply(msg) {
			return m, nil
		}
		m.afterDataChange()
		if m.statusMsg == reloadingStatus {
			m.setStatus("", false)
		}
		if msg.Err == nil {
			debug.Log("ui: showing %d tickets", m.feed.Len())
		}
		return m, nil

	case spinner.TickMsg:
		if !m.feed.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.shimmer++
		return m, cmd

	case ConfigChangedMsg:
		return m.applyConfig(msg)

	case ScrollToMsg:
		m.onScroll(msg.Offset)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) resize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.sizer.Resize(msg.Height)
	m.helpBar.Width = msg.Width
	m.measureChrome()
	m.ready = true
	m.scroll.Clamp(m.geometry(), m.feed.Len())
	m.keepCursorInView()
}

// measureChrome renders everything around the list at the current width
// and records its height.
func (m *Model) measureChrome() {
	top := lipgloss.Height(m.renderHeader()) + lipgloss.Height(HeaderLine(m.theme, m.width))
	bottom := lipgloss.Height(m.renderStatus(window.Window{}))
	if m.cfg.UI.ShowHelp {
		bottom += lipgloss.Height(m.helpBar.View(m.keys))
	}
	m.topHeight = top
	if m.sizer.MeasureChrome(top + bottom) {
		debug.Log("ui: chrome %d rows, container %d rows", top+bottom, m.sizer.ContainerHeight())
	}
}

// onScroll replaces the scroll offset with pos.
func (m *Model) onScroll(pos int) {
	if m.scroll.OnScroll(m.geometry(), m.feed.Len(), pos) {
		m.keepCursorInView()
	}
}

// keepCursorInView moves the cursor onto the nearest fully visible row after
// a scroll that left it off screen.
func (m *Model) keepCursorInView() {
	n := m.feed.Len()
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(m.cursor, 0), n-1)
	first, last, ok := m.layout().FullyVisible()
	if !ok {
		return
	}
	m.cursor = min(max(m.cursor, first), last)
}

func (m *Model) moveCursor(to int) {
	n := m.feed.Len()
	if n == 0 {
		return
	}
	m.cursor = min(max(to, 0), n-1)
	m.scroll.Reveal(m.geometry(), n, m.cursor)
}

// afterDataChange re-applies the scroll bounds and the cursor range after
// the collection changed size.
func (m *Model) afterDataChange() {
	m.scroll.Clamp(m.geometry(), m.feed.Len())
	m.keepCursorInView()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Back):
			m.showHelp = false
		case key.Matches(msg, m.keys.Quit):
			m.Stop()
			return m, tea.Quit
		}
		return m, nil
	}

	g := m.geometry()
	n := m.feed.Len()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Back):
		m.setStatus("", false)

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(m.cursor - 1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.cursor + 1)

	case key.Matches(msg, m.keys.LineUp):
		m.onScroll(m.scroll.Offset() - 1)
	case key.Matches(msg, m.keys.LineDown):
		m.onScroll(m.scroll.Offset() + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.onScroll(m.scroll.Offset() - max(g.ContainerHeight, 1))
	case key.Matches(msg, m.keys.PageDown):
		m.onScroll(m.scroll.Offset() + max(g.ContainerHeight, 1))
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
		m.onScroll(0)
	case key.Matches(msg, m.keys.End):
		m.cursor = max(n-1, 0)
		m.onScroll(window.MaxScrollOffset(g, n))

	case key.Matches(msg, m.keys.Select):
		return m.selectIndex(m.cursor)

	case key.Matches(msg, m.keys.Create):
		m.dialog = NewCreateDialog(m.theme)
		return m, m.dialog.Init()

	case key.Matches(msg, m.keys.Copy):
		m.copyTicket()

	case key.Matches(msg, m.keys.Refresh):
		cmd := m.feed.Fetch()
		if cmd == nil {
			return m, nil
		}
		m.setStatus(reloadingStatus, false)
		return m, tea.Batch(cmd, m.spinner.Tick)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.onScroll(m.scroll.Offset() - m.cfg.UI.WheelDelta)
	case msg.Button == tea.MouseButtonWheelDown:
		m.onScroll(m.scroll.Offset() + m.cfg.UI.WheelDelta)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		index, ok := m.layout().HitTest(msg.Y - m.topHeight)
		if !ok {
			return m, nil
		}
		m.cursor = index
		return m.selectIndex(index)
	}
	return m, nil
}

// selectIndex opens the edit dialog for the ticket at index.
func (m Model) selectIndex(index int) (tea.Model, tea.Cmd) {
	if m.feed.Loading() || index < 0 || index >= m.feed.Len() {
		return m, nil
	}
	tickets, err := m.feed.Slice(index, index+1)
	if err != nil || len(tickets) == 0 {
		m.setStatus(fmt.Sprintf("Cannot open ticket: %v", err), true)
		return m, nil
	}
	t := tickets[0]
	m.selected = &t
	m.dialog = NewEditDialog(t, m.theme)
	debug.Log("ui: selected ticket %d", t.ID)
	return m, m.dialog.Init()
}

// finishDialog closes the dialog once it was submitted or cancelled and
// applies the result.
func (m Model) finishDialog(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	d := m.dialog
	switch {
	case d.Cancelled():
		m.dialog = nil
		m.selected = nil
		m.setStatus("", false)
		return m, cmd

	case d.Submitted():
		m.dialog = nil
		if d.Mode() == DialogCreate {
			m.submitCreate(d)
		} else {
			m.submitEdit(d)
		}
		m.selected = nil
		return m, cmd
	}
	return m, cmd
}

func (m *Model) submitCreate(d *Dialog) {
	t, err := d.Ticket()
	if err != nil {
		m.setStatus(fmt.Sprintf("Invalid ticket: %v", err), true)
		return
	}
	created, err := m.feed.Create(t)
	if err != nil {
		m.setStatus(fmt.Sprintf("Create failed: %v", err), true)
		return
	}
	// The new ticket is prepended; keep the cursor on the same ticket.
	if m.feed.Len() > 1 {
		m.cursor++
	}
	m.afterDataChange()
	m.setStatus(fmt.Sprintf("Created #%d", created.ID), false)
}

func (m *Model) submitEdit(d *Dialog) {
	p, err := d.Patch()
	if err != nil {
		m.setStatus(fmt.Sprintf("Invalid ticket: %v", err), true)
		return
	}
	if p.IsEmpty() {
		m.setStatus("No changes", false)
		return
	}
	ok, err := m.feed.Update(p)
	switch {
	case err != nil:
		m.setStatus(fmt.Sprintf("Update failed: %v", err), true)
	case !ok:
		m.setStatus(fmt.Sprintf("Ticket #%d no longer exists", p.ID), true)
	default:
		m.setStatus(fmt.Sprintf("Updated #%d", p.ID), false)
	}
}

func (m Model) applyConfig(msg ConfigChangedMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.watcher != nil && m.reload != nil {
		cmd = WatchConfigCmd(m.watcher, m.reload)
	}
	if msg.Err != nil {
		debug.Log("ui: config reload failed: %v", msg.Err)
		m.setStatus(fmt.Sprintf("Config error: %v", msg.Err), true)
		return m, cmd
	}
	// Only presentation settings apply live; data settings need a restart.
	m.cfg.UI = msg.Config.UI
	m.measureChrome()
	m.afterDataChange()
	m.scroll.Reveal(m.geometry(), m.feed.Len(), m.cursor)
	debug.Log("ui: config reloaded (item height %d, gap %d)", m.cfg.UI.ItemHeight, m.cfg.UI.Gap)
	m.setStatus("Config reloaded", false)
	return m, cmd
}

func (m *Model) copyTicket() {
	if m.feed.Loading() || m.feed.Len() == 0 {
		return
	}
	tickets, err := m.feed.Slice(m.cursor, m.cursor+1)
	if err != nil || len(tickets) == 0 {
		m.setStatus(fmt.Sprintf("Clipboard error: %v", err), true)
		return
	}
	t := tickets[0]
	if err := clipboard.WriteAll(ticketMarkdown(t)); err != nil {
		m.setStatus(fmt.Sprintf("Clipboard error: %v", err), true)
		return
	}
	m.setStatus(fmt.Sprintf("Copied #%d to clipboard", t.ID), false)
}

func ticketMarkdown(t model.Ticket) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## #%d %s\n\n", t.ID, t.Subject)
	fmt.Fprintf(&sb, "- **Priority:** %s\n", t.Priority)
	fmt.Fprintf(&sb, "- **Status:** %s\n\n", t.Status)
	sb.WriteString(t.Description)
	sb.WriteString("\n")
	return sb.String()
}

// Stop cancels any pending fetch and stops the config watcher. Results that
// arrive afterwards are dropped.
func (m *Model) Stop() {
	m.feed.Close()
	if m.watcher != nil {
		m.watcher.Stop()
	}
}

// Cursor returns the index of the focused row.
func (m Model) Cursor() int {
	return m.cursor
}

// Selected returns the ticket whose edit dialog is open, if any.
func (m Model) Selected() *model.Ticket {
	return m.selected
}

// ScrollOffset returns the current scroll offset.
func (m Model) ScrollOffset() int {
	return m.scroll.Offset()
}

// ContainerHeight returns the height available to the list.
func (m Model) ContainerHeight() int {
	return m.sizer.ContainerHeight()
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	defer metrics.Timer(metrics.UIRender)()

	height := m.sizer.ViewportHeight()
	var body string
	switch {
	case m.dialog != nil:
		body = lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, m.dialog.View())
	case m.showHelp:
		body = m.help.View(m.width, height)
	default:
		body = m.renderList()
	}
	return lipgloss.NewStyle().
		Width(m.width).
		Height(height).
		MaxHeight(height).
		Render(body)
}

func (m Model) renderList() string {
	l := m.layout()
	parts := []string{
		m.renderHeader(),
		HeaderLine(m.theme, m.width),
	}
	if body := m.renderBody(l); body != "" {
		parts = append(parts, body)
	}
	parts = append(parts, m.renderStatus(l.Window))
	if m.cfg.UI.ShowHelp {
		parts = append(parts, m.helpBar.View(m.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	title := " tix"
	switch n := m.feed.Len(); {
	case m.feed.Loading():
		title += "  " + m.spinner.View() + " loading"
	case n == 1:
		title += "  1 ticket"
	default:
		title += fmt.Sprintf("  %d tickets", n)
	}
	return m.theme.Header.Width(max(m.width, 0)).MaxHeight(1).Render(title)
}

// renderBody draws the visible canvas rows of the list container.
func (m Model) renderBody(l Layout) string {
	c := l.Geometry.ContainerHeight
	if c <= 0 {
		return ""
	}
	rowWidth := max(m.width-1, 0)
	view := RowView{Theme: m.theme, Width: rowWidth, Height: l.Geometry.ItemHeight}

	var tickets []model.Ticket
	if !l.Loading && !l.Window.Empty() {
		var err error
		tickets, err = m.feed.Slice(l.Window.Start, l.Window.End)
		if err != nil {
			debug.Log("ui: reading rows [%d,%d): %v", l.Window.Start, l.Window.End, err)
			tickets = nil
		}
	}

	rendered := make(map[int][]string)
	slotLines := func(k int) []string {
		if lines, ok := rendered[k]; ok {
			return lines
		}
		slot := l.Slots[k]
		var lines []string
		switch i := slot.Index - l.Window.Start; {
		case slot.Skeleton:
			lines = view.RenderSkeleton(slot.Index, m.shimmer)
		case i >= 0 && i < len(tickets):
			lines = view.Render(tickets[i], slot.Index == m.cursor)
		default:
			lines = view.blank()
		}
		rendered[k] = lines
		return lines
	}

	blank := strings.Repeat(" ", rowWidth)
	bar := renderScrollbar(m.theme, l.Geometry, l.Offset, m.feed.Len())
	lines := make([]string, c)
	for y := range lines {
		line := blank
		if ref, ok := l.Line(y); ok {
			line = slotLines(ref.Slot)[ref.Sub]
		}
		if y < len(bar) {
			line += bar[y]
		}
		lines[y] = line
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatus(w window.Window) string {
	var left string
	switch {
	case m.feed.Loading():
		left = " Loading tickets…"
	case w.Empty():
		left = " No tickets"
	default:
		left = fmt.Sprintf(" Rows %d–%d of %d", w.Start+1, w.End, m.feed.Len())
	}
	left = m.theme.MutedText.Render(left)
	if m.statusMsg == "" {
		return padStyled(left, m.width)
	}
	right := m.theme.SecondaryText.Render(m.statusMsg + " ")
	if m.statusIsError {
		right = m.theme.ErrorText.Render(m.statusMsg + " ")
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.NewStyle().MaxWidth(max(m.width, 0)).Render(left + " " + right)
	}
	return left + strings.Repeat(" ", gap) + right
}
