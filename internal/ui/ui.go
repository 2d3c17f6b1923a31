package ui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/jukebox/internal/formatter"
	"github.com/desertthunder/jukebox/internal/models"
	"github.com/desertthunder/jukebox/internal/state"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	QueueView ViewState = iota
	CatalogView
)

// Model represents the TUI application state.
type Model struct {
	ctx        context.Context
	view       ViewState
	client     *state.Client
	refresher  *state.Refresher
	dispatcher *state.Dispatcher
	logger     *log.Logger

	catalogEvery time.Duration
	viewEvery    time.Duration

	width  int
	height int

	cursor  int
	grabbed *state.Grab

	catalogList  list.Model
	catalogReady bool

	err  error
	help help.Model
	keys keyMap
}

type catalogTickMsg time.Time

type viewTickMsg time.Time

type catalogRefreshedMsg struct{ err error }

type viewRefreshedMsg struct{ err error }

type autoplayFetchedMsg struct{ err error }

type mutationDoneMsg struct {
	op  string
	err error
}

// catalogItem wraps a catalog entry to implement list.Item.
type catalogItem struct {
	hash  string
	track models.Track
}

func (i catalogItem) FilterValue() string { return i.track.Name }
func (i catalogItem) Title() string       { return i.track.Name }
func (i catalogItem) Description() string {
	return fmt.Sprintf("%s • %s", formatter.Fingerprint(i.hash), formatter.Clock(i.track.Duration))
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, client *state.Client, refresher *state.Refresher, dispatcher *state.Dispatcher, catalogEvery, viewEvery time.Duration, logger *log.Logger) *Model {
	catalogList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	catalogList.Title = "Catalog"

	return &Model{
		ctx:          ctx,
		view:         QueueView,
		client:       client,
		refresher:    refresher,
		dispatcher:   dispatcher,
		logger:       logger,
		catalogEvery: catalogEvery,
		viewEvery:    viewEvery,
		catalogList:  catalogList,
		help:         help.New(),
		keys:         newKeyMap(),
	}
}

// Init kicks off both polling loops, the one-time autoplay read, and the
// initial refresh of every snapshot.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.refreshCatalog(),
		m.refreshView(),
		m.fetchAutoplay(),
		m.catalogTick(),
		m.viewTick(),
		tea.SetWindowTitle(state.DefaultTitle),
	)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.catalogList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case catalogTickMsg:
		return m, tea.Batch(m.refreshCatalog(), m.catalogTick())

	case viewTickMsg:
		return m, tea.Batch(m.refreshView(), m.viewTick())

	case catalogRefreshedMsg:
		// A failed poll is not surfaced: the view keeps its last snapshot and
		// the next tick self-heals.
		if msg.err != nil {
			m.logger.Warn("catalog refresh failed", "error", msg.err)
			return m, nil
		}
		m.rebuildCatalogList()
		return m, nil

	case viewRefreshedMsg:
		if msg.err != nil {
			m.logger.Warn("view refresh failed", "error", msg.err)
			return m, nil
		}
		m.clampCursor()
		return m, tea.SetWindowTitle(state.Title(m.client))

	case autoplayFetchedMsg:
		if msg.err != nil {
			m.logger.Warn("autoplay fetch failed", "error", msg.err)
		}
		return m, nil

	case mutationDoneMsg:
		m.err = msg.err
		if msg.err != nil {
			m.logger.Error("mutation failed", "op", msg.op, "error", msg.err)
			return m, nil
		}
		m.clampCursor()
		return m, tea.SetWindowTitle(state.Title(m.client))

	case tea.KeyMsg:
		switch m.view {
		case QueueView:
			return m.handleQueueKeys(msg)
		case CatalogView:
			return m.handleCatalogKeys(msg)
		}
	}

	if m.view == CatalogView {
		var cmd tea.Cmd
		m.catalogList, cmd = m.catalogList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case QueueView:
		return m.renderQueue()
	case CatalogView:
		return m.renderCatalog()
	default:
		return ""
	}
}

func (m *Model) handleQueueKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.down):
		if m.cursor < m.client.Queue().Len()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.grab):
		if m.grabbed == nil {
			if grab, ok := m.client.GrabRow(m.cursor); ok {
				m.grabbed = &grab
			}
			return m, nil
		}
		cmd := m.grabbed.DropAt(m.cursor)
		m.grabbed = nil
		return m, m.reorder(cmd)

	case key.Matches(msg, m.keys.back):
		m.grabbed = nil
		return m, nil

	case key.Matches(msg, m.keys.remove):
		queue := m.client.Queue()
		if queue.InBounds(m.cursor) {
			return m, m.delete(queue[m.cursor])
		}
		return m, nil

	case key.Matches(msg, m.keys.play):
		return m, m.play()

	case key.Matches(msg, m.keys.pause):
		return m, m.pause()

	case key.Matches(msg, m.keys.autoplay):
		return m, m.toggleAutoplay()

	case key.Matches(msg, m.keys.catalog):
		m.view = CatalogView
		return m, nil
	}
	return m, nil
}

func (m *Model) handleCatalogKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.catalogList.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.back), key.Matches(msg, m.keys.catalog):
			m.view = QueueView
			return m, nil

		case key.Matches(msg, m.keys.grab):
			if item, ok := m.catalogList.SelectedItem().(catalogItem); ok {
				m.view = QueueView
				return m, m.enqueue(item.hash)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.catalogList, cmd = m.catalogList.Update(msg)
	return m, cmd
}

func (m *Model) renderQueue() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("Queue"))
	b.WriteString("\n")

	rows := state.RenderQueue(m.client)
	if len(rows) == 0 {
		b.WriteString(styles.help.Render("queue is empty, press tab to browse the catalog"))
		b.WriteString("\n")
	}
	for _, row := range rows {
		marker := "  "
		if row.Index == m.cursor {
			marker = "▸ "
		}

		line := fmt.Sprintf("%s%2d. %s", marker, row.Index+1, row.Label)
		if m.grabbed != nil && row.Index == m.grabbed.From {
			line = styles.grabbed.Render(line + "  ⇅")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m *Model) renderCatalog() string {
	enqueueKey := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "enqueue"))
	helpView := m.help.ShortHelpView([]key.Binding{enqueueKey, m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n\n%s", m.catalogList.View(), helpView)
}

func (m *Model) renderStatusBar() string {
	status := state.RenderStatus(m.client)
	if status == state.NothingPlaying {
		status = styles.help.Render(status)
	} else {
		status = styles.ok.Render(status)
	}

	autoplay := "autoplay off"
	if m.client.Autoplay() {
		autoplay = "autoplay on"
	}

	bar := fmt.Sprintf("%s  ·  %s", status, styles.help.Render(autoplay))
	if m.err != nil {
		bar = fmt.Sprintf("%s\n%s", bar, styles.err.Render(m.err.Error()))
	}
	return bar
}

func (m *Model) rebuildCatalogList() {
	catalog := m.client.Catalog()

	hashes := make([]string, 0, catalog.Len())
	for hash := range catalog {
		hashes = append(hashes, hash)
	}
	sort.Slice(hashes, func(i, j int) bool {
		ti, _ := catalog.Get(hashes[i])
		tj, _ := catalog.Get(hashes[j])
		if ti.Name == tj.Name {
			return hashes[i] < hashes[j]
		}
		return ti.Name < tj.Name
	})

	items := make([]list.Item, len(hashes))
	for i, hash := range hashes {
		track, _ := catalog.Get(hash)
		items[i] = catalogItem{hash: hash, track: track}
	}
	m.catalogList.SetItems(items)
	if !m.catalogReady {
		m.catalogList.SetSize(m.width-4, m.height-8)
		m.catalogReady = true
	}
}

// clampCursor keeps the cursor inside the freshly replaced queue snapshot.
func (m *Model) clampCursor() {
	if n := m.client.Queue().Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) catalogTick() tea.Cmd {
	return tea.Tick(m.catalogEvery, func(t time.Time) tea.Msg { return catalogTickMsg(t) })
}

func (m *Model) viewTick() tea.Cmd {
	return tea.Tick(m.viewEvery, func(t time.Time) tea.Msg { return viewTickMsg(t) })
}

func (m *Model) refreshCatalog() tea.Cmd {
	return func() tea.Msg {
		return catalogRefreshedMsg{err: m.refresher.RefreshCatalog(m.ctx)}
	}
}

func (m *Model) refreshView() tea.Cmd {
	return func() tea.Msg {
		return viewRefreshedMsg{err: m.refresher.RefreshView(m.ctx)}
	}
}

func (m *Model) fetchAutoplay() tea.Cmd {
	return func() tea.Msg {
		return autoplayFetchedMsg{err: m.refresher.FetchAutoplay(m.ctx)}
	}
}

func (m *Model) enqueue(hash string) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{op: "enqueue", err: m.dispatcher.Enqueue(m.ctx, hash)}
	}
}

func (m *Model) delete(hash string) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{op: "delete", err: m.dispatcher.Delete(m.ctx, hash)}
	}
}

func (m *Model) reorder(cmd state.ReorderCommand) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{op: "reorder", err: m.dispatcher.Reorder(m.ctx, cmd)}
	}
}

func (m *Model) play() tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{op: "play", err: m.dispatcher.Play(m.ctx)}
	}
}

func (m *Model) pause() tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{op: "pause", err: m.dispatcher.Pause(m.ctx)}
	}
}

func (m *Model) toggleAutoplay() tea.Cmd {
	enabled := m.client.ToggleAutoplay()
	return func() tea.Msg {
		return mutationDoneMsg{op: "autoplay_set", err: m.dispatcher.SetAutoplay(m.ctx, enabled)}
	}
}
