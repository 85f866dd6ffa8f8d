// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/bnema/floatdesk/internal/application/port"
	"github.com/bnema/floatdesk/internal/application/usecase"
	"github.com/bnema/floatdesk/internal/cli/styles"
	"github.com/bnema/floatdesk/internal/desk"
	"github.com/bnema/floatdesk/internal/domain/entity"
	"github.com/bnema/floatdesk/internal/logging"
)

const (
	defaultNoticeTTL = 4 * time.Second
	notesContentType = "notes"
	helpContentType  = "help"
)

// LayoutLoader restores the stored layout onto the desk.
type LayoutLoader interface {
	Execute(ctx context.Context, desk port.LayoutApplier) (*usecase.LoadLayoutOutput, error)
}

// LayoutExporter writes a layout file.
type LayoutExporter interface {
	Execute(ctx context.Context, input usecase.ExportLayoutInput) (*usecase.ExportLayoutOutput, error)
}

// Snapshotter is the debounced layout saver.
type Snapshotter interface {
	SetReady()
	SaveNow(ctx context.Context) error
}

// DeskChangedMsg asks for a redraw after the engine changed on its own,
// such as a close fade finishing.
type DeskChangedMsg struct{}

// NoticeMsg shows a toast.
type NoticeMsg struct {
	ID       port.NotificationID
	Kind     port.NotificationType
	Text     string
	Duration time.Duration
}

// DismissNoticeMsg removes one toast.
type DismissNoticeMsg struct {
	ID port.NotificationID
}

// ClearNoticesMsg removes every toast.
type ClearNoticesMsg struct{}

// OptionsChangedMsg carries a reloaded configuration.
type OptionsChangedMsg struct {
	Options  desk.Options
	Geometry Geometry
	Theme    *styles.Theme
}

type layoutLoadedMsg struct {
	out *usecase.LoadLayoutOutput
	err error
}

type panelCreatedMsg struct {
	title string
	err   error
}

type savedMsg struct{ err error }

type exportedMsg struct {
	out *usecase.ExportLayoutOutput
	err error
}

type dialog int

const (
	dialogNone dialog = iota
	dialogReset
	dialogPicker
	dialogHelp
)

// DeskModelConfig holds the desk model's collaborators. Loader, Exporter
// and Snapshot are optional.
type DeskModelConfig struct {
	Manager      *desk.Manager
	Geometry     Geometry
	Slot         string
	ContentTypes []string
	Loader       LayoutLoader
	Exporter     LayoutExporter
	Snapshot     Snapshotter
	Trace        *logging.StartupTrace
	NoticeTTL    time.Duration
}

// DeskModel is the Bubble Tea model running the terminal desk.
type DeskModel struct {
	// UI components
	help    help.Model
	keys    styles.DeskKeyMap
	confirm styles.ConfirmModel
	picker  styles.PickerModel
	dialog  dialog
	canvas  *Canvas

	// State
	cols, rows int
	started    bool
	loaded     bool
	notices    []Notice
	swipeFrom  *entity.Point
	noteCount  int

	// Config
	geo          Geometry
	slot         string
	contentTypes []string
	noticeTTL    time.Duration

	// Dependencies
	ctx      context.Context
	mgr      *desk.Manager
	loader   LayoutLoader
	exporter LayoutExporter
	snapshot Snapshotter
	trace    *logging.StartupTrace
	theme    *styles.Theme
}

// NewDeskModel creates the desk model.
func NewDeskModel(ctx context.Context, theme *styles.Theme, cfg DeskModelConfig) DeskModel {
	ttl := cfg.NoticeTTL
	if ttl <= 0 {
		ttl = defaultNoticeTTL
	}
	slot := cfg.Slot
	if slot == "" {
		slot = usecase.DefaultLayoutSlot
	}
	return DeskModel{
		help:         styles.NewStyledHelp(theme),
		keys:         styles.DefaultDeskKeyMap(),
		cols:         80,
		rows:         24,
		geo:          cfg.Geometry.normalized(),
		slot:         slot,
		contentTypes: cfg.ContentTypes,
		noticeTTL:    ttl,
		ctx:          logging.WithComponent(ctx, "tui"),
		mgr:          cfg.Manager,
		loader:       cfg.Loader,
		exporter:     cfg.Exporter,
		snapshot:     cfg.Snapshot,
		trace:        cfg.Trace,
		theme:        theme,
	}
}

// Init implements tea.Model.
func (DeskModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DeskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cmd = m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		var quit bool
		cmd, quit = m.handleKey(msg)
		if quit {
			return m, tea.Quit
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case layoutLoadedMsg:
		cmd = m.handleLoaded(msg)
	case panelCreatedMsg:
		if msg.err != nil {
			cmd = m.notify(port.NotificationError, fmt.Sprintf("Could not open %s: %v", msg.title, msg.err))
		}
	case savedMsg:
		if msg.err != nil {
			cmd = m.notify(port.NotificationError, "Layout not saved: "+msg.err.Error())
		} else {
			cmd = m.notify(port.NotificationSuccess, "Layout saved")
		}
	case exportedMsg:
		if msg.err != nil {
			cmd = m.notify(port.NotificationError, "Export failed: "+msg.err.Error())
		}
	case NoticeMsg:
		cmd = m.addNotice(msg)
	case DismissNoticeMsg:
		m.dismiss(msg.ID)
	case ClearNoticesMsg:
		m.notices = nil
	case OptionsChangedMsg:
		m.applyOptions(msg)
	case DeskChangedMsg:
	}
	m.redraw()
	return m, cmd
}

// resize tracks the terminal size. The first size starts the desk: routing
// is switched on and the stored layout is loaded.
func (m *DeskModel) resize(cols, rows int) tea.Cmd {
	m.cols, m.rows = cols, rows
	m.help.Width = cols
	vp := m.geo.Viewport(cols, rows)
	m.mgr.SetViewport(vp.Width, vp.Height)
	if m.started {
		return nil
	}
	m.started = true
	m.mgr.InstallListeners()
	m.trace.Mark("listeners")
	return m.loadLayout()
}

func (m *DeskModel) loadLayout() tea.Cmd {
	ctx, mgr, loader := m.ctx, m.mgr, m.loader
	return func() tea.Msg {
		if loader == nil {
			return layoutLoadedMsg{out: &usecase.LoadLayoutOutput{}}
		}
		out, err := loader.Execute(ctx, mgr)
		return layoutLoadedMsg{out: out, err: err}
	}
}

// handleLoaded opens the help panel on an empty desk and then lets the
// snapshot service save. Saving before this point would overwrite the
// stored layout with the empty startup desk.
func (m *DeskModel) handleLoaded(msg layoutLoadedMsg) tea.Cmd {
	m.loaded = true
	log := logging.FromContext(m.ctx)
	if msg.err != nil {
		log.Warn().Err(msg.err).Msg("stored layout not restored")
	}
	m.trace.Mark("layout")

	var cmd tea.Cmd
	restored := msg.out != nil && msg.out.Applied
	if !restored && m.mgr.PanelCount() == 0 && m.hasType(helpContentType) {
		cmd = m.createPanel(helpContentType, "Help", nil)
	}
	if m.snapshot != nil {
		m.snapshot.SetReady()
	}
	m.trace.Finish()
	return cmd
}

func (m *DeskModel) hasType(contentType string) bool {
	for _, t := range m.contentTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

func (m *DeskModel) createPanel(contentType, title string, data map[string]any) tea.Cmd {
	ctx, mgr := m.ctx, m.mgr
	spec := desk.PanelSpec{Title: title, ContentType: contentType, ContentData: data}
	return func() tea.Msg {
		_, err := mgr.CreatePanel(ctx, spec)
		return panelCreatedMsg{title: title, err: err}
	}
}

// newPanelFor picks a title and starting data for a content type.
func (m *DeskModel) newPanelFor(contentType string) tea.Cmd {
	switch contentType {
	case notesContentType:
		m.noteCount++
		title := fmt.Sprintf("Note %d", m.noteCount)
		text := fmt.Sprintf("# %s\n\nCreated %s.", title, time.Now().Format("Jan 2 15:04"))
		return m.createPanel(contentType, title, map[string]any{"text": text})
	case helpContentType:
		return m.createPanel(contentType, "Help", nil)
	case desk.InlineContentType:
		return m.createPanel(contentType, "Scratch", map[string]any{"markup": "Empty panel"})
	default:
		return m.createPanel(contentType, titleFor(contentType), map[string]any{})
	}
}

func titleFor(contentType string) string {
	words := strings.FieldsFunc(contentType, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func (m *DeskModel) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch m.dialog {
	case dialogReset:
		m.confirm, _ = m.confirm.Update(msg)
		if m.confirm.Done() {
			m.dialog = dialogNone
			if m.confirm.Result() {
				m.mgr.Reset(m.ctx)
				return m.notify(port.NotificationInfo, "Desk cleared"), false
			}
		}
		return nil, false
	case dialogPicker:
		m.picker, _ = m.picker.Update(msg)
		if m.picker.Done() {
			m.dialog = dialogNone
			if t, ok := m.picker.Selected(); ok {
				return m.newPanelFor(t), false
			}
		}
		return nil, false
	case dialogHelp:
		m.dialog = dialogNone
		return nil, false
	}

	active := m.mgr.Active()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return nil, true
	case key.Matches(msg, m.keys.Help):
		m.dialog = dialogHelp
	case key.Matches(msg, m.keys.NewNote):
		return m.newPanelFor(notesContentType), false
	case key.Matches(msg, m.keys.NewHelp):
		return m.newPanelFor(helpContentType), false
	case key.Matches(msg, m.keys.NewPanel):
		m.picker = styles.NewPicker(m.theme, "New panel", m.contentTypes)
		m.dialog = dialogPicker
	case key.Matches(msg, m.keys.Close):
		if active != nil {
			active.Close()
		}
	case key.Matches(msg, m.keys.Maximize):
		if active != nil {
			active.Maximize()
		}
	case key.Matches(msg, m.keys.NextTab):
		if active != nil {
			active.SwitchTab(active.ActiveTab() + 1)
		}
	case key.Matches(msg, m.keys.PrevTab):
		if active != nil {
			active.SwitchTab(active.ActiveTab() - 1)
		}
	case key.Matches(msg, m.keys.Fit):
		m.mgr.FitAllToScreen()
	case key.Matches(msg, m.keys.MinimizeAll):
		m.mgr.MinimizeAll()
	case key.Matches(msg, m.keys.Save):
		return m.save(), false
	case key.Matches(msg, m.keys.Export):
		return m.export(), false
	case key.Matches(msg, m.keys.Reset):
		m.confirm = styles.NewConfirm(m.theme, "Remove every panel from the desk?")
		m.dialog = dialogReset
	default:
		m.mgr.HandleKey(msg.String())
	}
	return nil, false
}

func (m *DeskModel) save() tea.Cmd {
	if m.snapshot == nil || !m.loaded {
		return nil
	}
	ctx, snap := m.ctx, m.snapshot
	return func() tea.Msg {
		return savedMsg{err: snap.SaveNow(ctx)}
	}
}

func (m *DeskModel) export() tea.Cmd {
	if m.exporter == nil {
		return nil
	}
	ctx, exporter, layout := m.ctx, m.exporter, m.mgr.LayoutSnapshot()
	return func() tea.Msg {
		out, err := exporter.Execute(ctx, usecase.ExportLayoutInput{Layout: layout})
		return exportedMsg{out: out, err: err}
	}
}

func (m *DeskModel) handleMouse(msg tea.MouseMsg) {
	if m.canvas == nil || m.dialog != dialogNone {
		return
	}
	x, y := m.geo.Center(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.press(msg.X, msg.Y)
	case tea.MouseActionMotion:
		if m.mgr.InFlight() != nil {
			m.mgr.PointerMove(x, y)
		}
	case tea.MouseActionRelease:
		if !m.mgr.PointerUp(x, y) && m.swipeFrom != nil {
			m.mgr.HandleSwipe(*m.swipeFrom, entity.Point{X: x, Y: y})
		}
		m.swipeFrom = nil
	}
}

func (m *DeskModel) press(col, row int) {
	hit := m.canvas.At(col, row)
	switch hit.Part {
	case PartTray:
		m.mgr.RestoreTrayAt(hit.Index)
	case PartMobileTab:
		if err := m.mgr.ActivateTab(hit.Panel); err != nil {
			logging.FromContext(m.ctx).Debug().Err(err).Msg("tab vanished")
		}
	case PartNotice:
		if hit.Index < len(m.notices) {
			m.dismiss(m.notices[hit.Index].ID)
		}
	case PartTab:
		if p, ok := m.mgr.Panel(hit.Panel); ok {
			m.mgr.SetActivePanel(p)
			p.SwitchTab(hit.Index)
		}
	case PartDesk, PartBand:
	default:
		x, y := m.canvas.PointerAt(col, row, m.frameOf(hit.Panel))
		region := m.mgr.PointerDown(x, y)
		if m.mgr.Mobile() && (region == desk.RegionBody || region == desk.RegionHeader) {
			m.swipeFrom = &entity.Point{X: x, Y: y}
		}
	}
}

func (m *DeskModel) frameOf(id entity.PanelID) entity.Rect {
	if p, ok := m.mgr.Panel(id); ok {
		return p.View().Frame
	}
	return entity.Rect{}
}

func (m *DeskModel) notify(kind port.NotificationType, text string) tea.Cmd {
	return m.addNotice(NoticeMsg{ID: port.NotificationID(uuid.NewString()), Kind: kind, Text: text})
}

func (m *DeskModel) addNotice(msg NoticeMsg) tea.Cmd {
	if msg.ID == "" {
		msg.ID = port.NotificationID(uuid.NewString())
	}
	m.notices = append([]Notice{{ID: msg.ID, Kind: msg.Kind, Text: msg.Text}}, m.notices...)
	ttl := msg.Duration
	if ttl <= 0 {
		ttl = m.noticeTTL
	}
	id := msg.ID
	return tea.Tick(ttl, func(time.Time) tea.Msg { return DismissNoticeMsg{ID: id} })
}

func (m *DeskModel) dismiss(id port.NotificationID) {
	for i, n := range m.notices {
		if n.ID == id {
			m.notices = append(m.notices[:i], m.notices[i+1:]...)
			return
		}
	}
}

func (m *DeskModel) applyOptions(msg OptionsChangedMsg) {
	m.mgr.UpdateOptions(msg.Options)
	if msg.Theme != nil {
		m.theme = msg.Theme
		m.help = styles.NewStyledHelp(msg.Theme)
		m.help.Width = m.cols
	}
	geo := msg.Geometry.normalized()
	if geo != m.geo {
		m.geo = geo
		vp := geo.Viewport(m.cols, m.rows)
		m.mgr.SetViewport(vp.Width, vp.Height)
	}
}

func (m *DeskModel) redraw() {
	m.canvas = Draw(m.frame())
}

func (m *DeskModel) frame() Frame {
	mobile := m.mgr.Mobile()
	f := Frame{
		Cols:     m.cols,
		Rows:     m.rows,
		Geometry: m.geo,
		Options:  m.mgr.Options(),
		Panels:   m.mgr.PaintOrder(),
		Tray:     m.mgr.Tray(),
		Mobile:   mobile,
		Title:    fmt.Sprintf("%s floatdesk · %s · %d panels", desk.GenericIcon, m.slot, m.mgr.PanelCount()),
		Notices:  m.notices,
		Status:   m.status(),
	}
	if mobile {
		f.Tabs = m.mgr.MobileTabs()
	}
	return f
}

func (m *DeskModel) status() string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// View implements tea.Model.
func (m DeskModel) View() string {
	if m.canvas == nil {
		return ""
	}
	base := m.canvas.Render(m.theme)

	var box string
	switch m.dialog {
	case dialogReset:
		box = m.confirm.View()
	case dialogPicker:
		box = m.picker.View()
	case dialogHelp:
		box = m.helpView()
	default:
		return base
	}
	return lipgloss.Place(m.cols, m.rows, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(m.theme.Background))
}

func (m DeskModel) helpView() string {
	km := m.mgr.Options().Keymap
	engine := [][2]string{
		{strings.Join(km.Cycle, ", "), "next panel"},
		{strings.Join(km.CyclePrev, ", "), "previous panel"},
		{strings.Join(km.MinimizeToggle, ", "), "minimize / restore"},
		{km.QuickSelectPrefix + "1..9", "focus panel n"},
		{strings.Join(km.NudgeUp, ", ") + " …", "nudge"},
		{strings.Join(km.FastNudgeUp, ", ") + " …", "fast nudge"},
	}
	lines := make([]string, 0, len(engine))
	for _, e := range engine {
		lines = append(lines, m.theme.HelpKey.Render(fmt.Sprintf("%-22s", e[0]))+" "+m.theme.HelpDesc.Render(e[1]))
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Desk"),
		m.help.FullHelpView(m.keys.FullHelp()),
		"",
		m.theme.Title.Render("Panels"),
		strings.Join(lines, "\n"),
		"",
		m.theme.Subtle.Render("any key to close"),
	)
	return m.theme.Box.Render(content)
}
