package desk

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/floatdesk/internal/domain/entity"
	"github.com/bnema/floatdesk/internal/logging"
)

// ErrPanelNotFound is returned when an id does not name a live panel.
var ErrPanelNotFound = errors.New("panel not found")

// ErrManagerClosed is returned by operations on a closed manager.
var ErrManagerClosed = errors.New("desk manager closed")

// MutationListener is told about every change that should be persisted.
type MutationListener interface {
	MarkDirty()
}

// Deps are the Manager's collaborators. All fields are optional.
type Deps struct {
	Content  *ContentRegistry
	IDs      IDGenerator
	Listener MutationListener
	// OnChange is called after a deferred change (a close fade finishing)
	// was applied. It runs without the manager lock held.
	OnChange func()
	Viewport entity.Viewport
}

// PanelSpec describes a panel to create. Content is used as-is when set;
// otherwise ContentType (default "inline") and ContentData are handed to the
// content registry.
type PanelSpec struct {
	ID          entity.PanelID
	Title       string
	ContentType string
	ContentData map[string]any
	Content     *entity.Content
	Position    *entity.Point
	Size        *entity.Size
	ActiveTab   int
}

// Manager owns the panel collection and every cross-panel policy: focus,
// stacking, the minimized tray, keyboard and pointer routing, the mobile
// adapter and the layout snapshot.
type Manager struct {
	mu  sync.Mutex
	ctx context.Context

	opts  Options
	vp    entity.Viewport
	stack *Stacking

	panels   map[entity.PanelID]*Panel
	order    []entity.PanelID
	preMin   map[entity.PanelID]entity.PreMinimizeState
	fades    map[*Panel]*time.Timer
	active   *Panel
	inFlight *Panel

	listening bool
	closed    bool

	tray   trayState
	mobile mobileAdapter

	// batch defers tray refreshes and dirty marks until the outermost
	// batched operation ends.
	batch        int
	trayPending  bool
	dirtyPending bool

	content  *ContentRegistry
	ids      IDGenerator
	listener MutationListener
	onChange func()
}

// NewManager creates an empty desk.
func NewManager(ctx context.Context, opts Options, deps Deps) *Manager {
	opts = opts.normalized()
	if deps.Content == nil {
		deps.Content = NewContentRegistry()
	}
	if deps.IDs == nil {
		deps.IDs = NewIDGenerator()
	}
	vp := deps.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		vp = entity.Viewport{Width: 1280, Height: 800}
	}

	m := &Manager{
		ctx:      logging.WithComponent(ctx, "desk"),
		opts:     opts,
		vp:       vp,
		stack:    NewStacking(opts.BaseRank, opts.MaximizedRank, opts.ChromeRank),
		panels:   make(map[entity.PanelID]*Panel),
		preMin:   make(map[entity.PanelID]entity.PreMinimizeState),
		fades:    make(map[*Panel]*time.Timer),
		content:  deps.Content,
		ids:      deps.IDs,
		listener: deps.Listener,
		onChange: deps.OnChange,
	}
	m.mobile.enabled = m.isNarrow(vp)
	return m
}

func (m *Manager) log() *zerolog.Logger {
	return logging.FromContext(m.ctx)
}

// SetMutationListener replaces the persistence listener.
func (m *Manager) SetMutationListener(l MutationListener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listener = l
}

// Options returns the active options.
func (m *Manager) Options() Options {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.opts
}

// UpdateOptions swaps the tunables at runtime and re-fits every panel.
// Stacking bands are fixed at creation.
func (m *Manager) UpdateOptions(opts Options) {
	m.mu.Lock()
	defer m.mu.Unlock()
	opts = opts.normalized()
	opts.BaseRank, opts.MaximizedRank, opts.ChromeRank = m.opts.BaseRank, m.opts.MaximizedRank, m.opts.ChromeRank
	m.opts = opts
	m.fitAll()
	m.syncMobile()
}

// CreatePanel builds, registers and focuses a new panel. Content is resolved
// before anything is registered, so a failing provider leaves no trace.
func (m *Manager) CreatePanel(ctx context.Context, spec PanelSpec) (*Panel, error) {
	content, contentType, data, err := m.resolveContent(ctx, spec)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("title", spec.Title).Msg("panel creation failed")
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrManagerClosed
	}

	p := m.register(spec, content, contentType, data)
	m.activate(p)
	m.markDirty("create")
	m.log().Debug().Str("panel_id", string(p.id)).Str("title", p.title).Msg("panel created")
	return p, nil
}

func (m *Manager) resolveContent(ctx context.Context, spec PanelSpec) (entity.Content, string, map[string]any, error) {
	if spec.Content != nil {
		if spec.ContentType == "" || spec.ContentType == InlineContentType {
			return *spec.Content, InlineContentType, InlineData(*spec.Content), nil
		}
		return *spec.Content, spec.ContentType, copyData(spec.ContentData), nil
	}
	contentType := spec.ContentType
	if contentType == "" {
		contentType = InlineContentType
	}
	data := copyData(spec.ContentData)
	if data == nil {
		data = map[string]any{}
	}
	content, err := m.content.Provide(ctx, contentType, data)
	if err != nil {
		return entity.Content{}, "", nil, err
	}
	return content, contentType, data, nil
}

// register adds a panel at its spec'd or cascaded geometry. Lock held.
func (m *Manager) register(spec PanelSpec, content entity.Content, contentType string, data map[string]any) *Panel {
	id := spec.ID
	for id == "" || m.panels[id] != nil {
		id = m.ids()
	}

	size := m.opts.DefaultSize
	if spec.Size != nil {
		size = *spec.Size
	}
	var pos entity.Point
	if spec.Position != nil {
		pos = *spec.Position
	} else {
		pos = entity.CascadeOrigin(len(m.order), m.opts.CascadeStep, size, m.vp, m.opts.Bands)
	}
	rect := entity.ClampRect(entity.Rect{Point: pos, Size: size}, m.opts.MinSize, m.vp, m.opts.Bands)

	title := spec.Title
	if title == "" {
		title = "Untitled"
	}
	p := newPanel(m, id, title, rect)
	p.content = content
	p.contentType = contentType
	p.contentData = data
	if spec.ActiveTab > 0 && spec.ActiveTab < content.TabCount() {
		p.activeTab = spec.ActiveTab
	}

	m.panels[id] = p
	m.order = append(m.order, id)
	m.stack.BringToFront(p, m.list())

	if m.mobile.enabled {
		p.draggable, p.resizable = false, false
		p.hidden = true
		m.rebuildTabs()
	}
	return p
}

// RemovePanel destroys a panel immediately.
func (m *Manager) RemovePanel(ctx context.Context, id entity.PanelID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.panels[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPanelNotFound, id)
	}
	m.destroy(p)
	logging.FromContext(logging.WithPanelID(ctx, id)).Debug().Msg("panel removed")
	return nil
}

// Panel looks up a live panel.
func (m *Manager) Panel(id entity.PanelID) (*Panel, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.panels[id]
	return p, ok
}

// Panels returns the panels in creation order.
func (m *Manager) Panels() []*Panel {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.list()
}

// Views returns every panel's state in creation order.
func (m *Manager) Views() []PanelView {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]PanelView, 0, len(m.order))
	for _, p := range m.list() {
		out = append(out, p.view())
	}
	return out
}

// PaintOrder returns the visible panels bottom to top.
func (m *Manager) PaintOrder() []PanelView {
	m.mu.Lock()
	defer m.mu.Unlock()
	ordered := m.stack.Ordered(m.list())
	out := make([]PanelView, 0, len(ordered))
	for _, p := range ordered {
		out = append(out, p.view())
	}
	return out
}

// TopMost returns the highest visible panel, or nil.
func (m *Manager) TopMost() *Panel {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stack.TopMost(m.list())
}

// Active returns the focused panel, or nil.
func (m *Manager) Active() *Panel {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// SetActivePanel focuses p and brings it to the front unless it is minimized.
func (m *Manager) SetActivePanel(p *Panel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p == nil || m.panels[p.id] != p {
		return
	}
	m.activate(p)
}

// CyclePanel moves focus through the non-minimized panels in creation
// order, wrapping. Positive direction goes forward.
func (m *Manager) CyclePanel(direction int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cycle(direction)
}

// PanelCount returns how many live panels are on the desk.
func (m *Manager) PanelCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, p := range m.panels {
		if !p.closing {
			n++
		}
	}
	return n
}

// Viewport returns the current viewport.
func (m *Manager) Viewport() entity.Viewport {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.vp
}

// SetViewport records a new viewport size, re-fits every panel and switches
// mobile mode when the breakpoint is crossed.
func (m *Manager) SetViewport(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if width <= 0 || height <= 0 {
		return
	}
	vp := entity.Viewport{Width: width, Height: height}
	if vp == m.vp {
		return
	}
	m.vp = vp
	m.fitAll()
	m.syncMobile()
}

func (m *Manager) fitAll() {
	changed := false
	for _, p := range m.list() {
		before := p.rect
		p.fitViewport()
		if p.rect != before {
			changed = true
		}
	}
	if changed {
		m.markDirty("viewport")
	}
}

// InstallListeners enables keyboard and pointer routing.
func (m *Manager) InstallListeners() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.listening = true
	}
}

// RemoveListeners disables keyboard and pointer routing and drops any
// in-flight drag or resize.
func (m *Manager) RemoveListeners() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeListeners()
}

func (m *Manager) removeListeners() {
	m.listening = false
	if p := m.inFlight; p != nil {
		p.cancelInteraction()
	}
}

// Listening reports whether routing is enabled.
func (m *Manager) Listening() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listening
}

// Reset removes every panel without fading.
func (m *Manager) Reset(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.beginBatch()
	m.clear()
	m.markDirty("reset")
	m.endBatch()
	logging.FromContext(ctx).Info().Msg("desk reset")
}

func (m *Manager) clear() {
	for _, p := range m.list() {
		m.destroy(p)
	}
}

// Close tears the desk down: listeners off, timers stopped, panels dropped.
// Nothing is persisted.
func (m *Manager) Close(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.removeListeners()
	m.listener = nil
	m.clear()
	m.closed = true
	logging.FromContext(ctx).Debug().Msg("desk closed")
}

func (m *Manager) list() []*Panel {
	out := make([]*Panel, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.panels[id])
	}
	return out
}

func (m *Manager) isNarrow(vp entity.Viewport) bool {
	return vp.Width < m.opts.MobileBreakpoint
}

func (m *Manager) cycle(direction int) {
	var candidates []*Panel
	current := -1
	for _, p := range m.list() {
		if p.state == entity.PanelMinimized || p.closing {
			continue
		}
		if p == m.active {
			current = len(candidates)
		}
		candidates = append(candidates, p)
	}
	n := len(candidates)
	if n == 0 {
		return
	}

	var next int
	switch {
	case current < 0 && direction >= 0:
		next = 0
	case current < 0:
		next = n - 1
	case direction >= 0:
		next = (current + 1) % n
	default:
		next = (current - 1 + n) % n
	}
	m.activate(candidates[next])
}

func (m *Manager) beginBatch() { m.batch++ }

func (m *Manager) endBatch() {
	m.batch--
	if m.batch > 0 {
		return
	}
	if m.trayPending {
		m.trayPending = false
		m.refreshTray()
	}
	if m.dirtyPending {
		m.dirtyPending = false
		m.markDirty("batch")
	}
}

// panelHost implementation. The manager lock is held on every call.

func (m *Manager) lock()   { m.mu.Lock() }
func (m *Manager) unlock() { m.mu.Unlock() }

func (m *Manager) viewport() entity.Viewport { return m.vp }

func (m *Manager) options() *Options { return &m.opts }

func (m *Manager) storePreMinimize(id entity.PanelID, snap entity.PreMinimizeState) {
	m.preMin[id] = snap
}

func (m *Manager) takePreMinimize(id entity.PanelID) (entity.PreMinimizeState, bool) {
	snap, ok := m.preMin[id]
	if ok {
		delete(m.preMin, id)
	}
	return snap, ok
}

// PreMinimize returns the stored pre-minimize snapshot for a panel.
func (m *Manager) PreMinimize(id entity.PanelID) (entity.PreMinimizeState, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap, ok := m.preMin[id]
	return snap, ok
}

func (m *Manager) defaultRect() entity.Rect {
	size := m.opts.DefaultSize
	pos := entity.CascadeOrigin(len(m.order), m.opts.CascadeStep, size, m.vp, m.opts.Bands)
	return entity.ClampRect(entity.Rect{Point: pos, Size: size}, m.opts.MinSize, m.vp, m.opts.Bands)
}

func (m *Manager) activate(p *Panel) {
	if m.active != nil && m.active != p {
		m.active.focused = false
	}
	m.active = p
	p.focused = true
	if m.mobile.enabled {
		m.showOnly(p)
	}
	if p.state != entity.PanelMinimized {
		m.stack.BringToFront(p, m.list())
	}
}

// panelHidden moves focus off a panel that just left the screen.
func (m *Manager) panelHidden(p *Panel) {
	if m.active != p {
		return
	}
	p.focused = false
	m.active = nil
	if next := m.focusFallback(p, m.indexOf(p.id)+1); next != nil {
		m.activate(next)
	}
}

// focusFallback picks who gets focus after gone leaves the screen: the
// topmost visible panel, or in mobile mode the first eligible panel in
// creation order starting at index from.
func (m *Manager) focusFallback(gone *Panel, from int) *Panel {
	if !m.mobile.enabled {
		return m.stack.TopMost(m.list())
	}
	list := m.list()
	n := len(list)
	for i := 0; i < n; i++ {
		p := list[((from+i)%n+n)%n]
		if p != gone && p.state != entity.PanelMinimized && !p.closing {
			return p
		}
	}
	return nil
}

// indexOf returns the creation-order index of id, or -1.
func (m *Manager) indexOf(id entity.PanelID) int {
	for i, other := range m.order {
		if other == id {
			return i
		}
	}
	return -1
}

func (m *Manager) markDirty(reason string) {
	if m.batch > 0 {
		m.dirtyPending = true
		return
	}
	m.log().Trace().Str("reason", reason).Msg("layout changed")
	if m.listener != nil {
		m.listener.MarkDirty()
	}
}

// fadeOut destroys p once the close fade has played.
func (m *Manager) fadeOut(p *Panel) {
	d := m.opts.CloseFade
	if d <= 0 {
		m.destroy(p)
		return
	}
	m.fades[p] = time.AfterFunc(d, func() {
		m.mu.Lock()
		if m.closed {
			m.mu.Unlock()
			return
		}
		delete(m.fades, p)
		m.destroy(p)
		onChange := m.onChange
		m.mu.Unlock()
		if onChange != nil {
			onChange()
		}
	})
}

// destroy deregisters a panel. Safe to call for a panel that is already gone.
func (m *Manager) destroy(p *Panel) {
	if m.panels[p.id] != p {
		return
	}
	if t, ok := m.fades[p]; ok {
		t.Stop()
		delete(m.fades, p)
	}
	p.cancelInteraction()
	wasMinimized := p.state == entity.PanelMinimized

	// After removal the next panel in creation order takes index idx.
	idx := m.indexOf(p.id)
	delete(m.panels, p.id)
	delete(m.preMin, p.id)
	if idx >= 0 {
		m.order = append(m.order[:idx], m.order[idx+1:]...)
	}
	if m.mobile.enabled {
		m.rebuildTabs()
	}
	if m.active == p {
		m.active = nil
		p.focused = false
		if next := m.focusFallback(p, max(idx, 0)); next != nil {
			m.activate(next)
		}
	}
	if wasMinimized {
		m.refreshTray()
	}
	m.markDirty("remove")
}

func (m *Manager) claimInteraction(p *Panel) bool {
	if m.inFlight != nil && m.inFlight != p {
		return false
	}
	m.inFlight = p
	return true
}

func (m *Manager) releaseInteraction(p *Panel) {
	if m.inFlight == p {
		m.inFlight = nil
	}
}

func (m *Manager) mobileFrame() (entity.Rect, bool) {
	if !m.mobile.enabled {
		return entity.Rect{}, false
	}
	return entity.MaximizedRect(m.vp, m.opts.Bands), true
}
