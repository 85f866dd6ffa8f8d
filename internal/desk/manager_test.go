package desk

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/floatdesk/internal/domain/entity"
	"github.com/bnema/floatdesk/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type dirtyCounter struct {
	n atomic.Int32
}

func (d *dirtyCounter) MarkDirty() { d.n.Add(1) }

func (d *dirtyCounter) count() int { return int(d.n.Load()) }

func seqIDs() IDGenerator {
	n := 0
	return func() entity.PanelID {
		n++
		return entity.PanelID(fmt.Sprintf("p%d", n))
	}
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.CloseFade = 0
	return opts
}

func newTestManager(t *testing.T, opts Options) (*Manager, *dirtyCounter) {
	t.Helper()
	dirty := &dirtyCounter{}
	m := NewManager(testContext(), opts, Deps{
		IDs:      seqIDs(),
		Listener: dirty,
		Viewport: entity.Viewport{Width: 1280, Height: 800},
	})
	m.InstallListeners()
	t.Cleanup(func() { m.Close(testContext()) })
	return m, dirty
}

func createPanels(t *testing.T, m *Manager, titles ...string) []*Panel {
	t.Helper()
	out := make([]*Panel, 0, len(titles))
	for _, title := range titles {
		p, err := m.CreatePanel(testContext(), PanelSpec{
			Title:   title,
			Content: &entity.Content{Markup: title + " body"},
		})
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func usableArea(m *Manager) entity.Rect {
	return m.Options().Bands.Bounds(m.Viewport())
}

// assertFocusOnTop checks that the focused panel outranks every other
// non-minimized panel of its band and that ranks are unique.
func assertFocusOnTop(t *testing.T, m *Manager) {
	t.Helper()
	views := m.Views()
	seen := map[int]entity.PanelID{}
	var focused *PanelView
	for i := range views {
		v := views[i]
		if v.State == entity.PanelMinimized {
			continue
		}
		if other, dup := seen[v.Rank]; dup {
			t.Fatalf("rank %d shared by %s and %s", v.Rank, other, v.ID)
		}
		seen[v.Rank] = v.ID
		if v.Focused {
			focused = &views[i]
		}
	}
	if focused == nil {
		return
	}
	for _, v := range views {
		if v.ID == focused.ID || v.State == entity.PanelMinimized {
			continue
		}
		if (v.State == entity.PanelMaximized) != (focused.State == entity.PanelMaximized) {
			continue
		}
		assert.Greater(t, focused.Rank, v.Rank, "focused %s must outrank %s", focused.ID, v.ID)
	}
}

func TestCreatePanel_CascadesDefaultPositions(t *testing.T) {
	m, dirty := newTestManager(t, testOptions())
	panels := createPanels(t, m, "Dice", "Rules", "Loot")

	assert.Equal(t, entity.Point{X: 10, Y: 60}, panels[0].Rect().Point)
	assert.Equal(t, entity.Point{X: 40, Y: 90}, panels[1].Rect().Point)
	assert.Equal(t, entity.Point{X: 70, Y: 120}, panels[2].Rect().Point)
	for _, p := range panels {
		assert.Equal(t, entity.Size{Width: 400, Height: 300}, p.Rect().Size)
	}

	assert.Less(t, panels[0].Rank(), panels[1].Rank())
	assert.Less(t, panels[1].Rank(), panels[2].Rank())
	assert.Equal(t, panels[2], m.Active())
	assert.Equal(t, 3, m.PanelCount())
	assert.Equal(t, 3, dirty.count())
	assertFocusOnTop(t, m)
}

func TestCreatePanel_ClampsGivenPosition(t *testing.T) {
	m, _ := newTestManager(t, testOptions())

	p, err := m.CreatePanel(testContext(), PanelSpec{
		Title:    "Far away",
		Position: &entity.Point{X: 5000, Y: -300},
		Size:     &entity.Size{Width: 50, Height: 50},
	})
	require.NoError(t, err)

	r := p.Rect()
	assert.Equal(t, entity.Size{Width: 200, Height: 150}, r.Size, "size raised to the floor")
	assert.True(t, r.Within(usableArea(m)), "rect %+v outside usable area", r)
	assert.Equal(t, 1270-200, r.X)
	assert.Equal(t, 60, r.Y)
}

func TestCreatePanel_FailureLeavesNothingRegistered(t *testing.T) {
	m, dirty := newTestManager(t, testOptions())
	m.SetViewport(600, 800)
	require.True(t, m.Mobile())

	_, err := m.CreatePanel(testContext(), PanelSpec{Title: "Broken", ContentType: "does-not-exist"})
	require.ErrorIs(t, err, ErrUnknownContentType)

	assert.Equal(t, 0, m.PanelCount())
	assert.Empty(t, m.MobileTabs())
	assert.Nil(t, m.Active())
	assert.Equal(t, 0, dirty.count())
}

func TestCreatePanel_ProviderDataKeptForRestore(t *testing.T) {
	registry := NewContentRegistry()
	registry.Register("npc", providerFunc(func(_ context.Context, data map[string]any) (entity.Content, error) {
		data["seed"] = 42
		return entity.Content{Markup: "Valeria"}, nil
	}))
	m := NewManager(testContext(), testOptions(), Deps{Content: registry, IDs: seqIDs()})
	t.Cleanup(func() { m.Close(testContext()) })

	p, err := m.CreatePanel(testContext(), PanelSpec{Title: "NPC", ContentType: "npc"})
	require.NoError(t, err)
	assert.Equal(t, "Valeria", p.View().Content.Markup)

	layout := m.LayoutSnapshot()
	require.Len(t, layout.Panels, 1)
	assert.Equal(t, "npc", layout.Panels[0].ContentType)
	assert.Equal(t, 42, layout.Panels[0].ContentData["seed"])
}

func TestRemovePanel(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	panels := createPanels(t, m, "A", "B")
	panels[0].Minimize()
	require.Len(t, m.Tray(), 1)

	require.NoError(t, m.RemovePanel(testContext(), panels[0].ID()))

	_, ok := m.PreMinimize(panels[0].ID())
	assert.False(t, ok)
	assert.Empty(t, m.Tray())
	assert.Equal(t, 1, m.PanelCount())

	err := m.RemovePanel(testContext(), "missing")
	assert.ErrorIs(t, err, ErrPanelNotFound)
}

func TestScenario_DragSecondPanelToFront(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	panels := createPanels(t, m, "One", "Two", "Three")

	region := m.PointerDown(50, 100)
	require.Equal(t, RegionHeader, region)
	assert.Equal(t, panels[1], m.InFlight())

	assert.True(t, m.PointerMove(150, 200))
	assert.True(t, m.PointerUp(160, 210))
	assert.Nil(t, m.InFlight())

	assert.Equal(t, panels[1], m.TopMost())
	for _, p := range []*Panel{panels[0], panels[2]} {
		assert.Greater(t, panels[1].Rank(), p.Rank())
	}
	assert.Equal(t, entity.Point{X: 150, Y: 200}, panels[1].Rect().Point)
	assertFocusOnTop(t, m)
}

func TestDrag_StaysInsideBounds(t *testing.T) {
	targets := []struct {
		name string
		x, y int
	}{
		{"top-left beyond", -500, -500},
		{"bottom-right beyond", 5000, 5000},
		{"into header band", 400, 10},
		{"into footer band", 400, 790},
		{"inside", 600, 400},
	}

	for _, tt := range targets {
		t.Run(tt.name, func(t *testing.T) {
			m, dirty := newTestManager(t, testOptions())
			p := createPanels(t, m, "Drag me")[0]
			before := dirty.count()

			require.True(t, p.StartDrag(Pointer{X: 100, Y: 70, Target: RegionHeader}))
			assert.False(t, p.View().Animated)
			p.DragTo(tt.x, tt.y)
			assert.Equal(t, before, dirty.count(), "no persistence mid-drag")
			p.EndDrag()

			assert.True(t, p.View().Animated)
			assert.Equal(t, before+1, dirty.count())
			assert.True(t, p.Rect().Within(usableArea(m)), "rect %+v outside usable area", p.Rect())
		})
	}
}

func TestDrag_KeepsGrabOffset(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	p := createPanels(t, m, "Offset")[0]

	require.True(t, p.StartDrag(Pointer{X: 200, Y: 75, Target: RegionHeader}))
	p.DragTo(300, 175)
	p.EndDrag()

	assert.Equal(t, entity.Point{X: 110, Y: 160}, p.Rect().Point)
}

func TestResize_ClampedToFloorAndViewport(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	p := createPanels(t, m, "Resize")[0]
	start := p.Rect()

	require.Equal(t, RegionResizeCorner, m.PointerDown(start.Right()-2, start.Bottom()-2))
	m.PointerMove(start.Right()+5000, start.Bottom()+5000)
	r := p.Rect()
	assert.Equal(t, start.Point, r.Point, "top-left stays put")
	assert.Equal(t, 1270, r.Right())
	assert.Equal(t, 760, r.Bottom())

	m.PointerUp(start.X-1000, start.Y-1000)
	assert.Equal(t, entity.Size{Width: 200, Height: 150}, p.Rect().Size)
	assert.True(t, p.Rect().Within(usableArea(m)))
}

func TestResize_SingleEdgeHandles(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	p := createPanels(t, m, "Edges")[0]
	start := p.Rect()

	require.True(t, p.StartResize(entity.HandleRight, Pointer{X: start.Right(), Y: start.Y + 100}))
	p.ResizeTo(start.Right()+50, start.Y+400)
	p.EndResize()
	assert.Equal(t, entity.Size{Width: start.Width + 50, Height: start.Height}, p.Rect().Size)

	require.True(t, p.StartResize(entity.HandleBottom, Pointer{X: start.X + 10, Y: start.Bottom()}))
	p.ResizeTo(start.X+300, start.Bottom()+20)
	p.EndResize()
	assert.Equal(t, entity.Size{Width: start.Width + 50, Height: start.Height + 20}, p.Rect().Size)
}

func TestOnlyOneInteractionInFlight(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	panels := createPanels(t, m, "A", "B")

	require.True(t, panels[0].StartDrag(Pointer{X: 20, Y: 70, Target: RegionHeader}))
	assert.False(t, panels[1].StartDrag(Pointer{X: 50, Y: 100, Target: RegionHeader}))
	assert.False(t, panels[1].StartResize(entity.HandleCorner, Pointer{X: 430, Y: 380}))
	assert.Equal(t, RegionNone, m.PointerDown(50, 100), "pointer down ignored mid-drag")

	panels[0].EndDrag()
	assert.True(t, panels[1].StartDrag(Pointer{X: 50, Y: 100, Target: RegionHeader}))
}

func TestInvalidStateOperationsAreNoOps(t *testing.T) {
	m, dirty := newTestManager(t, testOptions())
	p := createPanels(t, m, "Quiet")[0]

	p.Minimize()
	before := dirty.count()
	rect := p.Rect()

	assert.False(t, p.StartDrag(Pointer{X: 20, Y: 70, Target: RegionHeader}))
	assert.False(t, p.StartResize(entity.HandleCorner, Pointer{}))
	p.DragTo(500, 500)
	p.EndDrag()
	p.ResizeTo(900, 900)
	p.EndResize()
	p.Nudge(10, 10)
	p.Maximize()
	p.SwitchTab(1)

	assert.Equal(t, rect, p.Rect())
	assert.Equal(t, entity.PanelMinimized, p.State())
	assert.Equal(t, before, dirty.count())

	p.Restore()
	p.Maximize()
	assert.False(t, p.StartDrag(Pointer{X: 20, Y: 70, Target: RegionHeader}), "no drag while maximized")

	p.Maximize()
	assert.False(t, p.StartDrag(Pointer{X: 400, Y: 70, Target: RegionCloseButton}), "no drag from a control")
}

func TestMinimizeRestore_RoundTripIsExact(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	panels := createPanels(t, m, "A", "B")
	p := panels[0]

	require.True(t, p.StartDrag(Pointer{X: 20, Y: 70, Target: RegionHeader}))
	p.DragTo(333, 222)
	p.EndDrag()
	before := p.Rect()

	p.Minimize()
	assert.Equal(t, entity.PanelMinimized, p.State())
	assert.False(t, p.Visible())
	assert.Equal(t, []TrayEntry{{ID: p.ID(), Title: "A"}}, m.Tray())
	snap, ok := m.PreMinimize(p.ID())
	require.True(t, ok)
	assert.Equal(t, entity.PanelNormal, snap.PreviousState)

	p.Minimize() // minimizing a minimized panel restores it
	assert.Equal(t, entity.PanelNormal, p.State())
	assert.Equal(t, before, p.Rect())
	assert.Empty(t, m.Tray())
	assert.Equal(t, p, m.Active())
	_, ok = m.PreMinimize(p.ID())
	assert.False(t, ok, "snapshot consumed")
	assertFocusOnTop(t, m)
}

func TestMinimizeRestore_MaximizedComesBackMaximized(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	p := createPanels(t, m, "Big")[0]
	normal := p.Rect()

	p.Maximize()
	p.Minimize()
	p.Restore()
	assert.Equal(t, entity.PanelMaximized, p.State())
	assert.Equal(t, entity.MaximizedRect(m.Viewport(), m.Options().Bands), p.Rect())

	p.Maximize()
	assert.Equal(t, normal, p.Rect())
}

func TestRestore_WithoutSnapshotUsesDefaultGeometry(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	p := createPanels(t, m, "Lost")[0]

	p.Minimize()
	m.mu.Lock()
	delete(m.preMin, p.ID())
	m.mu.Unlock()

	p.Restore()
	assert.Equal(t, entity.PanelNormal, p.State())
	r := p.Rect()
	assert.Equal(t, m.Options().DefaultSize, r.Size)
	assert.True(t, r.Within(usableArea(m)), "rect %+v outside usable area", r)
}

func TestMinimize_MovesFocusToTopmostRemaining(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	panels := createPanels(t, m, "A", "B", "C")

	panels[2].Minimize()
	assert.Equal(t, panels[1], m.Active())
	assert.True(t, panels[1].Focused())
	assert.False(t, panels[2].Focused())
	assertFocusOnTop(t, m)
}

func TestMaximize_UsesCurrentViewport(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	p := createPanels(t, m, "Wide")[0]

	p.Maximize()
	assert.Equal(t, entity.Rect{Point: entity.Point{X: 0, Y: 60}, Size: entity.Size{Width: 1280, Height: 700}}, p.Rect())
	assert.GreaterOrEqual(t, p.Rank(), m.Options().MaximizedRank)
	assert.Less(t, p.Rank(), m.Options().ChromeRank)

	m.SetViewport(1600, 1000)
	assert.Equal(t, entity.Rect{Point: entity.Point{X: 0, Y: 60}, Size: entity.Size{Width: 1600, Height: 900}}, p.Rect())
}

func TestMaximizedPanelStaysAboveNormalPanels(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	panels := createPanels(t, m, "A", "B")

	panels[0].Maximize()
	m.SetActivePanel(panels[1])

	assert.Equal(t, panels[1], m.Active())
	assert.Greater(t, panels[0].Rank(), panels[1].Rank())
	assert.Equal(t, panels[0], m.TopMost())
}

func TestClose_FadesThenRemoves(t *testing.T) {
	opts := testOptions()
	opts.CloseFade = 20 * time.Millisecond
	changed := make(chan struct{}, 1)
	m := NewManager(testContext(), opts, Deps{
		IDs:      seqIDs(),
		OnChange: func() { changed <- struct{}{} },
	})
	t.Cleanup(func() { m.Close(testContext()) })
	m.InstallListeners()
	panels := createPanels(t, m, "A", "B")

	panels[1].Close()
	assert.True(t, panels[1].View().Closing)
	assert.Equal(t, 1, m.PanelCount())
	assert.False(t, panels[1].StartDrag(Pointer{X: 50, Y: 100, Target: RegionHeader}))

	select {
	case <-changed:
	case <-time.After(time.Second):
		t.Fatal("close fade never finished")
	}
	_, ok := m.Panel(panels[1].ID())
	assert.False(t, ok)
	assert.Equal(t, panels[0], m.Active())
}

func TestCloseButton_RemovesImmediatelyWithoutFade(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	p := createPanels(t, m, "Bye")[0]
	r := p.Rect()

	assert.Equal(t, RegionCloseButton, m.PointerDown(r.Right()-10, r.Y+10))
	assert.Equal(t, 0, m.PanelCount())
	assert.Nil(t, m.Active())
}

func TestControlButtons(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	p := createPanels(t, m, "Buttons")[0]
	r := p.Rect()

	assert.Equal(t, RegionMaximizeButton, m.PointerDown(r.Right()-30, r.Y+10))
	assert.Equal(t, entity.PanelMaximized, p.State())

	mr := p.Rect()
	assert.Equal(t, RegionMaximizeButton, m.PointerDown(mr.Right()-30, mr.Y+10))
	assert.Equal(t, entity.PanelNormal, p.State())

	assert.Equal(t, RegionMinimizeButton, m.PointerDown(r.Right()-60, r.Y+10))
	assert.Equal(t, entity.PanelMinimized, p.State())

	id, ok := m.RestoreTrayAt(0)
	require.True(t, ok)
	assert.Equal(t, p.ID(), id)
	assert.Equal(t, r, p.Rect())
}

func TestHitTest_Regions(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	p := createPanels(t, m, "Hits")[0]
	r := p.Rect() // (10,60) 400x300

	tests := []struct {
		name string
		x, y int
		want Region
	}{
		{"outside", 5, 5, RegionNone},
		{"header", r.X + 20, r.Y + 5, RegionHeader},
		{"close", r.Right() - 5, r.Y + 5, RegionCloseButton},
		{"maximize", r.Right() - 30, r.Y + 5, RegionMaximizeButton},
		{"minimize", r.Right() - 60, r.Y + 5, RegionMinimizeButton},
		{"body", r.X + 50, r.Y + 100, RegionBody},
		{"right edge", r.Right() - 2, r.Y + 100, RegionResizeRight},
		{"bottom edge", r.X + 50, r.Bottom() - 2, RegionResizeBottom},
		{"corner", r.Right() - 2, r.Bottom() - 2, RegionResizeCorner},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.HitTest(tt.x, tt.y))
		})
	}
}

func TestSwitchTab(t *testing.T) {
	m, dirty := newTestManager(t, testOptions())
	p, err := m.CreatePanel(testContext(), PanelSpec{
		Title: "Tabs",
		Content: &entity.Content{Tabs: []entity.ContentTab{
			{Title: "One", Content: "1"},
			{Title: "Two", Content: "2"},
		}},
	})
	require.NoError(t, err)
	before := dirty.count()

	p.SwitchTab(1)
	assert.Equal(t, 1, p.ActiveTab())
	assert.Equal(t, before+1, dirty.count())

	p.SwitchTab(5)
	p.SwitchTab(-1)
	assert.Equal(t, 1, p.ActiveTab())
	assert.Equal(t, before+1, dirty.count())

	inline := createPanels(t, m, "Inline")[0]
	inline.SwitchTab(1)
	assert.Equal(t, 0, inline.ActiveTab())
}

func TestCyclePanel_WrapsAndSkipsMinimized(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	panels := createPanels(t, m, "A", "B", "C", "D")
	panels[1].Minimize()
	m.SetActivePanel(panels[0])

	m.CyclePanel(1)
	assert.Equal(t, panels[2], m.Active())
	m.CyclePanel(1)
	assert.Equal(t, panels[3], m.Active())
	m.CyclePanel(1)
	assert.Equal(t, panels[0], m.Active())
	m.CyclePanel(-1)
	assert.Equal(t, panels[3], m.Active())
	assertFocusOnTop(t, m)
}

func TestFitAllToScreen_Grid(t *testing.T) {
	for n := 1; n <= 10; n++ {
		t.Run(fmt.Sprintf("%d panels", n), func(t *testing.T) {
			m, _ := newTestManager(t, testOptions())
			titles := make([]string, n)
			for i := range titles {
				titles[i] = fmt.Sprintf("P%d", i)
			}
			panels := createPanels(t, m, titles...)
			panels[0].Maximize()

			grid := m.FitAllToScreen()

			cols := 1
			for cols*cols < n {
				cols++
			}
			rows := (n + cols - 1) / cols
			assert.Equal(t, cols, grid.Cols)
			assert.Equal(t, rows, grid.Rows)
			area := usableArea(m)
			for _, cell := range grid.Cells {
				assert.True(t, cell.Within(area), "cell %+v outside %+v", cell, area)
			}
			for _, p := range panels {
				assert.Equal(t, entity.PanelNormal, p.State())
				assert.True(t, p.Rect().Within(area))
				assert.LessOrEqual(t, p.Rect().Width, 800)
				assert.LessOrEqual(t, p.Rect().Height, 600)
			}
			assertFocusOnTop(t, m)
		})
	}
}

func TestFitAllToScreen_SkipsMinimized(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	panels := createPanels(t, m, "A", "B", "C")
	panels[2].Minimize()

	grid := m.FitAllToScreen()
	assert.Len(t, grid.Cells, 2)
	assert.Equal(t, entity.PanelMinimized, panels[2].State())
}

func TestMinimizeAll_RefreshesTrayOnce(t *testing.T) {
	m, dirty := newTestManager(t, testOptions())
	createPanels(t, m, "A", "B", "C")
	refreshes := m.TrayRefreshes()
	before := dirty.count()

	m.MinimizeAll()

	assert.Equal(t, refreshes+1, m.TrayRefreshes())
	assert.Equal(t, before+1, dirty.count())
	assert.Len(t, m.Tray(), 3)
	assert.Nil(t, m.TopMost())
	for _, v := range m.Views() {
		assert.Equal(t, entity.PanelMinimized, v.State)
	}
}

func TestListeners_RoutingOnlyWhileInstalled(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	p := createPanels(t, m, "A")[0]

	m.RemoveListeners()
	assert.Equal(t, RegionNone, m.PointerDown(50, 70))
	assert.False(t, m.HandleKey("alt+m"))
	assert.Equal(t, entity.PanelNormal, p.State())

	m.InstallListeners()
	require.Equal(t, RegionHeader, m.PointerDown(50, 70))
	m.RemoveListeners()
	assert.Nil(t, m.InFlight(), "removing listeners drops the in-flight drag")
	assert.False(t, m.PointerMove(500, 500))
}

func TestSetViewport_ReclampsNormalPanels(t *testing.T) {
	m, dirty := newTestManager(t, testOptions())
	p := createPanels(t, m, "A")[0]
	require.True(t, p.StartDrag(Pointer{X: 20, Y: 70, Target: RegionHeader}))
	p.DragTo(1000, 600)
	p.EndDrag()
	before := dirty.count()

	m.SetViewport(900, 600)

	assert.True(t, p.Rect().Within(usableArea(m)))
	assert.Equal(t, before+1, dirty.count())
}

func TestScenario_NarrowViewportEntersMobileMode(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	m.SetViewport(1024, 768)
	createPanels(t, m, "Dice Roller", "Rules Reference", "Scratch")
	require.False(t, m.Mobile())

	m.SetViewport(600, 768)

	require.True(t, m.Mobile())
	visible := 0
	for _, v := range m.Views() {
		if v.Visible {
			visible++
		}
		assert.False(t, v.Draggable)
		assert.False(t, v.Resizable)
	}
	assert.Equal(t, 1, visible)

	tabs := m.MobileTabs()
	require.Len(t, tabs, 3)
	assert.Equal(t, "⚄", tabs[0].Icon)
	assert.Equal(t, "§", tabs[1].Icon)
	assert.Equal(t, GenericIcon, tabs[2].Icon)

	m.SetViewport(1024, 768)
	assert.False(t, m.Mobile())
	assert.Empty(t, m.MobileTabs())
	for _, v := range m.Views() {
		assert.True(t, v.Visible)
		assert.True(t, v.Draggable)
		assert.True(t, v.Resizable)
	}
}

func TestMobile_ActivateShowsOnlySelected(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	panels := createPanels(t, m, "A", "B", "C")
	m.SetViewport(500, 800)

	require.NoError(t, m.ActivateTab(panels[0].ID()))

	for _, v := range m.Views() {
		assert.Equal(t, v.ID == panels[0].ID(), v.Visible, v.ID)
	}
	for _, tab := range m.MobileTabs() {
		assert.Equal(t, tab.ID == panels[0].ID(), tab.Active)
	}
	frame := panels[0].View().Frame
	assert.Equal(t, entity.MaximizedRect(m.Viewport(), m.Options().Bands), frame)

	assert.ErrorIs(t, m.ActivateTab("missing"), ErrPanelNotFound)
}

func TestMobile_Swipe(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	panels := createPanels(t, m, "A", "B", "C")
	m.SetViewport(500, 800)
	require.NoError(t, m.ActivateTab(panels[0].ID()))

	assert.False(t, m.HandleSwipe(entity.Point{X: 200, Y: 300}, entity.Point{X: 170, Y: 300}), "short swipe")
	assert.False(t, m.HandleSwipe(entity.Point{X: 200, Y: 300}, entity.Point{X: 120, Y: 500}), "vertical swipe")
	assert.Equal(t, panels[0], m.Active())

	assert.True(t, m.HandleSwipe(entity.Point{X: 300, Y: 300}, entity.Point{X: 100, Y: 310}))
	assert.Equal(t, panels[1], m.Active())

	assert.True(t, m.HandleSwipe(entity.Point{X: 100, Y: 300}, entity.Point{X: 300, Y: 300}))
	assert.True(t, m.HandleSwipe(entity.Point{X: 100, Y: 300}, entity.Point{X: 300, Y: 300}))
	assert.Equal(t, panels[2], m.Active(), "swiping right from the first panel wraps")
}

func TestMobile_NewPanelsJoinTabStrip(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	m.SetViewport(500, 800)
	panels := createPanels(t, m, "A", "B")

	require.Len(t, m.MobileTabs(), 2)
	assert.True(t, panels[1].Visible())
	assert.False(t, panels[0].Visible())
	assert.False(t, panels[1].View().Draggable)
}

func TestMobile_ClosingFocusesNextInCreationOrder(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	panels := createPanels(t, m, "A", "B", "C", "D")
	m.SetViewport(500, 800)

	require.NoError(t, m.ActivateTab(panels[1].ID()))
	require.NoError(t, m.RemovePanel(testContext(), panels[1].ID()))
	assert.Equal(t, panels[2], m.Active())
	assert.True(t, panels[2].Visible())

	require.NoError(t, m.ActivateTab(panels[3].ID()))
	require.NoError(t, m.RemovePanel(testContext(), panels[3].ID()))
	assert.Equal(t, panels[0], m.Active(), "closing the last panel wraps to the first")
	assert.Len(t, m.MobileTabs(), 2)
}

func TestReset_RemovesEverything(t *testing.T) {
	m, dirty := newTestManager(t, testOptions())
	panels := createPanels(t, m, "A", "B")
	panels[0].Minimize()
	before := dirty.count()

	m.Reset(testContext())

	assert.Equal(t, 0, m.PanelCount())
	assert.Empty(t, m.Tray())
	assert.Nil(t, m.Active())
	assert.Equal(t, before+1, dirty.count())
}

func TestClose_StopsRouting(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	createPanels(t, m, "A")

	m.Close(testContext())

	assert.False(t, m.Listening())
	assert.Equal(t, 0, m.PanelCount())
	_, err := m.CreatePanel(testContext(), PanelSpec{Title: "late"})
	assert.ErrorIs(t, err, ErrManagerClosed)
}

type providerFunc func(ctx context.Context, data map[string]any) (entity.Content, error)

func (f providerFunc) Provide(ctx context.Context, data map[string]any) (entity.Content, error) {
	return f(ctx, data)
}
