package desk

import (
	"github.com/bnema/floatdesk/internal/domain/entity"
)

// Region is the part of a panel a pointer is over.
type Region int

const (
	RegionNone Region = iota
	RegionHeader
	RegionBody
	RegionMinimizeButton
	RegionMaximizeButton
	RegionCloseButton
	RegionResizeRight
	RegionResizeBottom
	RegionResizeCorner
)

// IsControl reports whether the region is a header button.
func (r Region) IsControl() bool {
	return r == RegionMinimizeButton || r == RegionMaximizeButton || r == RegionCloseButton
}

// Handle maps a resize region to its handle.
func (r Region) Handle() entity.ResizeHandle {
	switch r {
	case RegionResizeRight:
		return entity.HandleRight
	case RegionResizeBottom:
		return entity.HandleBottom
	case RegionResizeCorner:
		return entity.HandleCorner
	default:
		return entity.HandleNone
	}
}

// Pointer is a pointer event position plus the region it started on.
type Pointer struct {
	X, Y   int
	Target Region
}

// PanelView is a read-only copy of a panel for rendering.
type PanelView struct {
	ID          entity.PanelID
	Title       string
	Rect        entity.Rect
	Frame       entity.Rect
	State       entity.PanelState
	Rank        int
	Content     entity.Content
	ContentType string
	ActiveTab   int
	Focused     bool
	Visible     bool
	Draggable   bool
	Resizable   bool
	// Animated is off while a drag or resize is in flight so movement
	// tracks the pointer 1:1.
	Animated bool
	Closing  bool
	Dragging bool
	Resizing bool
}

// offscreen is where minimized panels are parked.
var offscreen = entity.Point{X: -10000, Y: -10000}

type interactionKind int

const (
	interactionNone interactionKind = iota
	interactionDrag
	interactionResize
)

type interaction struct {
	kind      interactionKind
	handle    entity.ResizeHandle
	offset    entity.Point
	start     entity.Point
	startSize entity.Size
}

// panelHost is the Manager side of a panel. Calls arrive with the manager's
// lock already held.
type panelHost interface {
	lock()
	unlock()
	viewport() entity.Viewport
	options() *Options
	storePreMinimize(id entity.PanelID, snap entity.PreMinimizeState)
	takePreMinimize(id entity.PanelID) (entity.PreMinimizeState, bool)
	defaultRect() entity.Rect
	activate(p *Panel)
	panelHidden(p *Panel)
	refreshTray()
	markDirty(reason string)
	fadeOut(p *Panel)
	claimInteraction(p *Panel) bool
	releaseInteraction(p *Panel)
	mobileFrame() (entity.Rect, bool)
}

// Panel is one window on the desk. It owns its geometry, state and content,
// and the drag or resize currently applied to it. Exported methods take the
// manager's lock; the unexported ones expect it held.
//
// Operations attempted in a state that does not allow them are silent no-ops:
// they usually come from input events that raced a state change.
type Panel struct {
	id          entity.PanelID
	title       string
	rect        entity.Rect
	restoreRect entity.Rect
	state       entity.PanelState
	rank        int

	content     entity.Content
	contentType string
	contentData map[string]any
	activeTab   int

	draggable bool
	resizable bool
	focused   bool
	hidden    bool
	animated  bool
	closing   bool

	interaction interaction
	host        panelHost
}

func newPanel(host panelHost, id entity.PanelID, title string, rect entity.Rect) *Panel {
	return &Panel{
		id:          id,
		title:       title,
		rect:        rect,
		restoreRect: rect,
		state:       entity.PanelNormal,
		draggable:   true,
		resizable:   true,
		animated:    true,
		host:        host,
	}
}

// ID returns the panel id.
func (p *Panel) ID() entity.PanelID { return p.id }

// Title returns the panel title.
func (p *Panel) Title() string { return p.title }

// Rect returns the current geometry.
func (p *Panel) Rect() entity.Rect {
	p.host.lock()
	defer p.host.unlock()
	return p.rect
}

// State returns the display state.
func (p *Panel) State() entity.PanelState {
	p.host.lock()
	defer p.host.unlock()
	return p.state
}

// Rank returns the stacking rank.
func (p *Panel) Rank() int {
	p.host.lock()
	defer p.host.unlock()
	return p.rank
}

// ActiveTab returns the selected tab index.
func (p *Panel) ActiveTab() int {
	p.host.lock()
	defer p.host.unlock()
	return p.activeTab
}

// Focused reports whether this is the active panel.
func (p *Panel) Focused() bool {
	p.host.lock()
	defer p.host.unlock()
	return p.focused
}

// Visible reports whether the panel should be drawn.
func (p *Panel) Visible() bool {
	p.host.lock()
	defer p.host.unlock()
	return p.visible()
}

// View returns a copy of the panel's current state.
func (p *Panel) View() PanelView {
	p.host.lock()
	defer p.host.unlock()
	return p.view()
}

// HitTest maps a viewport point to a region of this panel.
func (p *Panel) HitTest(x, y int) Region {
	p.host.lock()
	defer p.host.unlock()
	return p.hitTest(x, y)
}

// StartDrag begins moving the panel. It only starts from the header of a
// normal, draggable panel.
func (p *Panel) StartDrag(ptr Pointer) bool {
	p.host.lock()
	defer p.host.unlock()
	return p.startDrag(ptr)
}

// DragTo moves the panel so the grab point follows the pointer.
func (p *Panel) DragTo(x, y int) {
	p.host.lock()
	defer p.host.unlock()
	p.dragTo(x, y)
}

// EndDrag finishes the drag and requests a save.
func (p *Panel) EndDrag() {
	p.host.lock()
	defer p.host.unlock()
	p.endDrag()
}

// StartResize begins resizing from the given handle.
func (p *Panel) StartResize(handle entity.ResizeHandle, ptr Pointer) bool {
	p.host.lock()
	defer p.host.unlock()
	return p.startResize(handle, ptr)
}

// ResizeTo resizes by the pointer delta since StartResize.
func (p *Panel) ResizeTo(x, y int) {
	p.host.lock()
	defer p.host.unlock()
	p.resizeTo(x, y)
}

// EndResize finishes the resize and requests a save.
func (p *Panel) EndResize() {
	p.host.lock()
	defer p.host.unlock()
	p.endResize()
}

// Minimize hides the panel in the tray, or restores it if already minimized.
func (p *Panel) Minimize() {
	p.host.lock()
	defer p.host.unlock()
	p.minimize()
}

// Restore brings a minimized panel back.
func (p *Panel) Restore() {
	p.host.lock()
	defer p.host.unlock()
	p.restore()
}

// Maximize toggles between normal and maximized.
func (p *Panel) Maximize() {
	p.host.lock()
	defer p.host.unlock()
	p.maximize()
}

// Close fades the panel out and removes it from the desk.
func (p *Panel) Close() {
	p.host.lock()
	defer p.host.unlock()
	p.close()
}

// SwitchTab selects a tab. Out-of-range indexes are ignored.
func (p *Panel) SwitchTab(index int) {
	p.host.lock()
	defer p.host.unlock()
	p.switchTab(index)
}

// Nudge moves a normal panel by a small offset.
func (p *Panel) Nudge(dx, dy int) {
	p.host.lock()
	defer p.host.unlock()
	p.nudge(dx, dy)
}

func (p *Panel) visible() bool {
	return p.state != entity.PanelMinimized && !p.hidden
}

func (p *Panel) view() PanelView {
	return PanelView{
		ID:          p.id,
		Title:       p.title,
		Rect:        p.rect,
		Frame:       p.frame(),
		State:       p.state,
		Rank:        p.rank,
		Content:     p.content,
		ContentType: p.contentType,
		ActiveTab:   p.activeTab,
		Focused:     p.focused,
		Visible:     p.visible(),
		Draggable:   p.draggable,
		Resizable:   p.resizable,
		Animated:    p.animated,
		Closing:     p.closing,
		Dragging:    p.interaction.kind == interactionDrag,
		Resizing:    p.interaction.kind == interactionResize,
	}
}

// frame is where the panel is drawn. In mobile mode the shown panel fills
// the usable area without its own geometry changing.
func (p *Panel) frame() entity.Rect {
	if r, ok := p.host.mobileFrame(); ok {
		return r
	}
	return p.rect
}

func (p *Panel) floor() entity.Size {
	return p.host.options().MinSize
}

func (p *Panel) bands() entity.Bands {
	return p.host.options().Bands
}

func (p *Panel) hitTest(x, y int) Region {
	r := p.frame()
	if !p.visible() || p.closing || !r.Contains(x, y) {
		return RegionNone
	}
	opts := p.host.options()
	grip := opts.ResizeGrip

	if p.state == entity.PanelNormal && p.resizable {
		onRight := x >= r.Right()-grip
		onBottom := y >= r.Bottom()-grip
		switch {
		case onRight && onBottom:
			return RegionResizeCorner
		case onBottom:
			return RegionResizeBottom
		case onRight && y >= r.Y+opts.PanelHeaderHeight:
			return RegionResizeRight
		}
	}

	if y < r.Y+opts.PanelHeaderHeight {
		fromRight := r.Right() - x
		switch {
		case fromRight <= opts.ControlWidth:
			return RegionCloseButton
		case fromRight <= 2*opts.ControlWidth:
			return RegionMaximizeButton
		case fromRight <= 3*opts.ControlWidth:
			return RegionMinimizeButton
		}
		return RegionHeader
	}
	return RegionBody
}

func (p *Panel) startDrag(ptr Pointer) bool {
	if p.closing || p.state != entity.PanelNormal || !p.draggable {
		return false
	}
	if ptr.Target != RegionHeader || p.interaction.kind != interactionNone {
		return false
	}
	if !p.host.claimInteraction(p) {
		return false
	}
	p.interaction = interaction{
		kind:   interactionDrag,
		offset: entity.Point{X: ptr.X - p.rect.X, Y: ptr.Y - p.rect.Y},
	}
	p.animated = false
	return true
}

// Persistence waits for endDrag.
func (p *Panel) dragTo(x, y int) {
	if p.interaction.kind != interactionDrag {
		return
	}
	next := entity.Rect{
		Point: entity.Point{X: x - p.interaction.offset.X, Y: y - p.interaction.offset.Y},
		Size:  p.rect.Size,
	}
	p.rect = entity.ClampRect(next, p.floor(), p.host.viewport(), p.bands())
}

func (p *Panel) endDrag() {
	if p.interaction.kind != interactionDrag {
		return
	}
	p.finishInteraction()
	p.host.markDirty("drag")
}

func (p *Panel) startResize(handle entity.ResizeHandle, ptr Pointer) bool {
	if p.closing || p.state != entity.PanelNormal || !p.resizable || handle == entity.HandleNone {
		return false
	}
	if p.interaction.kind != interactionNone || !p.host.claimInteraction(p) {
		return false
	}
	p.interaction = interaction{
		kind:      interactionResize,
		handle:    handle,
		start:     entity.Point{X: ptr.X, Y: ptr.Y},
		startSize: p.rect.Size,
	}
	p.animated = false
	return true
}

// resizeTo grows or shrinks the panel by the pointer delta. The top-left
// stays put; the size is held between the floor and the space left before
// the viewport edge.
func (p *Panel) resizeTo(x, y int) {
	if p.interaction.kind != interactionResize {
		return
	}
	in := p.interaction
	size := in.startSize
	if in.handle == entity.HandleRight || in.handle == entity.HandleCorner {
		size.Width += x - in.start.X
	}
	if in.handle == entity.HandleBottom || in.handle == entity.HandleCorner {
		size.Height += y - in.start.Y
	}
	limit := entity.ResizeLimit(p.rect.Point, p.host.viewport(), p.bands())
	p.rect.Size = entity.ClampSize(size, p.floor(), entity.Rect{Size: limit})
}

func (p *Panel) endResize() {
	if p.interaction.kind != interactionResize {
		return
	}
	p.finishInteraction()
	p.host.markDirty("resize")
}

func (p *Panel) finishInteraction() {
	p.interaction = interaction{}
	p.animated = true
	p.host.releaseInteraction(p)
}

func (p *Panel) cancelInteraction() {
	if p.interaction.kind == interactionNone {
		return
	}
	p.finishInteraction()
}

// minimize hides the panel in the tray. Minimizing a minimized panel
// restores it instead.
func (p *Panel) minimize() {
	if p.closing {
		return
	}
	if p.state == entity.PanelMinimized {
		p.restore()
		return
	}
	next, err := p.state.Transition(entity.PanelMinimized)
	if err != nil {
		return
	}
	p.cancelInteraction()
	p.host.storePreMinimize(p.id, entity.PreMinimizeState{
		Position:      p.rect.Point,
		Size:          p.rect.Size,
		PreviousState: p.state,
	})
	p.state = next
	p.rect.Point = offscreen
	p.host.panelHidden(p)
	p.host.refreshTray()
	p.host.markDirty("minimize")
}

// restore brings a minimized panel back to its pre-minimize geometry and
// state. Without a stored snapshot it gets a fresh default geometry.
func (p *Panel) restore() {
	if p.closing || p.state != entity.PanelMinimized {
		return
	}
	target := entity.PanelNormal
	rect := p.host.defaultRect()
	if snap, ok := p.host.takePreMinimize(p.id); ok {
		rect = entity.Rect{Point: snap.Position, Size: snap.Size}
		target = snap.PreviousState
	}

	next, err := p.state.Transition(target)
	if err != nil {
		next = entity.PanelNormal
	}
	p.state = next
	if next == entity.PanelMaximized {
		p.rect = entity.MaximizedRect(p.host.viewport(), p.bands())
	} else {
		p.rect = entity.ClampRect(rect, p.floor(), p.host.viewport(), p.bands())
	}
	p.host.activate(p)
	p.host.refreshTray()
	p.host.markDirty("restore")
}

// maximize toggles between normal and maximized. The maximized rect is
// computed from the current viewport every time.
func (p *Panel) maximize() {
	if p.closing {
		return
	}
	switch p.state {
	case entity.PanelNormal:
		p.cancelInteraction()
		p.restoreRect = p.rect
		p.state = entity.PanelMaximized
		p.rect = entity.MaximizedRect(p.host.viewport(), p.bands())
	case entity.PanelMaximized:
		p.state = entity.PanelNormal
		p.rect = entity.ClampRect(p.restoreRect, p.floor(), p.host.viewport(), p.bands())
	default:
		return
	}
	p.host.activate(p)
	p.host.markDirty("maximize")
}

// close fades the panel out and then has the manager destroy it.
func (p *Panel) close() {
	if p.closing {
		return
	}
	p.cancelInteraction()
	p.closing = true
	p.animated = true
	p.host.fadeOut(p)
}

// switchTab selects a tab of a tabbed panel. Out-of-range indexes are ignored.
func (p *Panel) switchTab(index int) {
	if p.closing || !p.content.IsTabbed() {
		return
	}
	if index < 0 || index >= p.content.TabCount() || index == p.activeTab {
		return
	}
	p.activeTab = index
	p.host.markDirty("tab")
}

// nudge moves a normal panel by a small offset, staying inside the bounds.
func (p *Panel) nudge(dx, dy int) {
	if p.closing || p.state != entity.PanelNormal || p.interaction.kind != interactionNone {
		return
	}
	moved := p.rect
	moved.X += dx
	moved.Y += dy
	p.rect = entity.ClampRect(moved, p.floor(), p.host.viewport(), p.bands())
	p.host.markDirty("nudge")
}

// place sets the geometry of a normal panel directly, used by arrangement.
func (p *Panel) place(rect entity.Rect) {
	if p.state != entity.PanelNormal {
		return
	}
	p.rect = rect
}

// fitViewport re-applies geometry rules after the viewport changed.
func (p *Panel) fitViewport() {
	switch p.state {
	case entity.PanelNormal:
		p.rect = entity.ClampRect(p.rect, p.floor(), p.host.viewport(), p.bands())
	case entity.PanelMaximized:
		p.rect = entity.MaximizedRect(p.host.viewport(), p.bands())
	}
}

// record captures the panel for the layout snapshot.
func (p *Panel) record(pre *entity.PreMinimizeState) entity.PanelRecord {
	rect := p.rect
	switch {
	case p.state == entity.PanelMaximized:
		rect = p.restoreRect
	case p.state == entity.PanelMinimized && pre != nil && pre.PreviousState == entity.PanelMaximized:
		// The floating geometry to come back to after unmaximizing.
		rect = p.restoreRect
	case p.state == entity.PanelMinimized && pre != nil:
		rect = entity.Rect{Point: pre.Position, Size: pre.Size}
	}
	pos := rect.Point
	size := rect.Size
	return entity.PanelRecord{
		ID:          p.id,
		Title:       p.title,
		Position:    &pos,
		Size:        &size,
		State:       p.state,
		ActiveTab:   p.activeTab,
		ContentType: p.contentType,
		ContentData: copyData(p.contentData),
		PreMinimize: pre,
	}
}

func copyData(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
