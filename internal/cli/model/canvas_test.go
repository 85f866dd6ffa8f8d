package model

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/floatdesk/internal/application/port"
	"github.com/bnema/floatdesk/internal/cli/styles"
	"github.com/bnema/floatdesk/internal/desk"
	"github.com/bnema/floatdesk/internal/domain/entity"
	"github.com/bnema/floatdesk/internal/infrastructure/config"
)

// The default cell size maps a 160x50 terminal onto a 1280x800 desk.
const (
	testCols = 160
	testRows = 50
)

func testGeometry() Geometry {
	return Geometry{CellWidth: 8, CellHeight: 16}
}

func testTheme() *styles.Theme {
	return styles.NewThemeFromPalette(config.DefaultConfig().Appearance.DarkPalette)
}

func newCanvasManager(t *testing.T) *desk.Manager {
	t.Helper()
	opts := desk.DefaultOptions()
	opts.CloseFade = 0
	m := desk.NewManager(context.Background(), opts, desk.Deps{Viewport: entity.Viewport{Width: 1280, Height: 800}})
	m.InstallListeners()
	t.Cleanup(func() { m.Close(context.Background()) })
	return m
}

func addPanel(t *testing.T, m *desk.Manager, title string, content entity.Content, at entity.Point) *desk.Panel {
	t.Helper()
	p, err := m.CreatePanel(context.Background(), desk.PanelSpec{
		Title:    title,
		Content:  &content,
		Position: &at,
		Size:     &entity.Size{Width: 400, Height: 300},
	})
	require.NoError(t, err)
	return p
}

func drawManager(m *desk.Manager, notices ...Notice) *Canvas {
	return Draw(Frame{
		Cols:     testCols,
		Rows:     testRows,
		Geometry: testGeometry(),
		Options:  m.Options(),
		Panels:   m.PaintOrder(),
		Tray:     m.Tray(),
		Mobile:   m.Mobile(),
		Tabs:     m.MobileTabs(),
		Title:    "floatdesk",
		Notices:  notices,
		Status:   "C-q quit",
	})
}

func canvasRow(c *Canvas, row int) string {
	return strings.Split(c.String(), "\n")[row]
}

func TestGeometry(t *testing.T) {
	g := testGeometry()
	assert.Equal(t, entity.Viewport{Width: 1280, Height: 800}, g.Viewport(testCols, testRows))

	x, y := g.Center(2, 3)
	assert.Equal(t, 20, x)
	assert.Equal(t, 56, y)

	x, y = Geometry{}.Center(0, 0)
	assert.Equal(t, 4, x, "zero geometry falls back to 8x16 cells")
	assert.Equal(t, 8, y)
}

func TestDraw_PanelParts(t *testing.T) {
	m := newCanvasManager(t)
	addPanel(t, m, "Dice roller", entity.Content{Markup: "d20 → 17"}, entity.Point{X: 10, Y: 60})
	c := drawManager(m)

	// The panel covers columns 1..50 and rows 4..21; rows 4 and 5 are its header.
	tests := []struct {
		col, row int
		want     Part
	}{
		{0, 10, PartDesk},
		{20, 4, PartHeader},
		{20, 5, PartHeader},
		{43, 4, PartMinimize},
		{46, 4, PartMaximize},
		{49, 4, PartClose},
		{50, 4, PartClose},
		{20, 10, PartBody},
		{50, 10, PartEdgeRight},
		{20, 21, PartEdgeBottom},
		{50, 21, PartEdgeCorner},
		{20, 22, PartDesk},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.At(tt.col, tt.row).Part, "cell %d,%d", tt.col, tt.row)
	}

	header := canvasRow(c, 4)
	assert.Contains(t, header, "Dice roller")
	assert.Contains(t, header, "_")
	assert.Contains(t, header, "□")
	assert.Contains(t, header, "×")
	assert.Contains(t, canvasRow(c, 6), "d20 → 17")
}

func TestDraw_CellsAgreeWithEngineHitTest(t *testing.T) {
	m := newCanvasManager(t)
	p := addPanel(t, m, "Rules", entity.Content{Markup: "body"}, entity.Point{X: 10, Y: 60})
	c := drawManager(m)
	frame := p.View().Frame

	toRegion := map[Part]desk.Region{
		PartHeader:     desk.RegionHeader,
		PartBody:       desk.RegionBody,
		PartMinimize:   desk.RegionMinimizeButton,
		PartMaximize:   desk.RegionMaximizeButton,
		PartClose:      desk.RegionCloseButton,
		PartEdgeRight:  desk.RegionResizeRight,
		PartEdgeBottom: desk.RegionResizeBottom,
		PartEdgeCorner: desk.RegionResizeCorner,
	}
	checked := 0
	for row := 0; row < testRows; row++ {
		for col := 0; col < testCols; col++ {
			hit := c.At(col, row)
			want, ok := toRegion[hit.Part]
			if !ok {
				continue
			}
			x, y := c.PointerAt(col, row, frame)
			require.Equal(t, want, p.HitTest(x, y), "cell %d,%d -> %d,%d", col, row, x, y)
			checked++
		}
	}
	assert.Equal(t, 50*18, checked)
}

func TestDraw_TabsAndStrippedBody(t *testing.T) {
	m := newCanvasManager(t)
	p := addPanel(t, m, "Loot", entity.Content{Tabs: []entity.ContentTab{
		{Title: "Coins", Content: "\x1b[1m42 gp\x1b[0m\tand change"},
		{Title: "Gear", Content: "rope"},
	}}, entity.Point{X: 10, Y: 60})
	c := drawManager(m)

	strip := canvasRow(c, 6)
	assert.Contains(t, strip, " Coins  Gear ")
	assert.Equal(t, Hit{Part: PartTab, Panel: p.ID(), Index: 1}, c.At(10, 6))
	assert.Equal(t, roleTabActive, c.at(3, 6).role)

	body := canvasRow(c, 7)
	assert.Contains(t, body, "42 gp    and change")
	assert.NotContains(t, body, "\x1b")

	p.SwitchTab(1)
	assert.Contains(t, canvasRow(drawManager(m), 7), "rope")
}

func TestDraw_LongBodyIsTruncated(t *testing.T) {
	m := newCanvasManager(t)
	addPanel(t, m, "Map", entity.Content{Markup: strings.Repeat("x", 200)}, entity.Point{X: 10, Y: 60})
	row := canvasRow(drawManager(m), 6)
	assert.Contains(t, row, "x…")
	assert.NotContains(t, row, strings.Repeat("x", 60))
}

func TestDraw_TopPanelWins(t *testing.T) {
	m := newCanvasManager(t)
	a := addPanel(t, m, "Below", entity.Content{}, entity.Point{X: 10, Y: 60})
	b := addPanel(t, m, "Above", entity.Content{}, entity.Point{X: 100, Y: 100})

	assert.Equal(t, b.ID(), drawManager(m).At(20, 10).Panel)

	m.SetActivePanel(a)
	assert.Equal(t, a.ID(), drawManager(m).At(20, 10).Panel)
}

func TestDraw_BandsTrayAndStatus(t *testing.T) {
	m := newCanvasManager(t)
	p := addPanel(t, m, "Dice", entity.Content{}, entity.Point{X: 10, Y: 60})
	addPanel(t, m, "Notes", entity.Content{}, entity.Point{X: 500, Y: 60})
	p.Minimize()

	c := drawManager(m, Notice{ID: "n1", Kind: port.NotificationSuccess, Text: "Layout saved"})

	assert.Equal(t, PartBand, c.At(0, 3).Part, "rows 0..3 are the header band")
	assert.Contains(t, canvasRow(c, 0), "floatdesk")
	assert.Contains(t, canvasRow(c, 0), "Layout saved")
	assert.Equal(t, PartNotice, c.At(testCols-3, 0).Part)

	// Footer band rows are 47..49: tray first, status last.
	tray := canvasRow(c, 47)
	assert.Contains(t, tray, "Dice")
	col := strings.Index(tray, "Dice")
	require.GreaterOrEqual(t, col, 0)
	assert.Equal(t, Hit{Part: PartTray, Index: 0}, c.At(3, 47))
	assert.Contains(t, canvasRow(c, 49), "C-q quit")
}

func TestDraw_MobileTabs(t *testing.T) {
	m := newCanvasManager(t)
	addPanel(t, m, "Dice", entity.Content{Markup: "roll"}, entity.Point{X: 10, Y: 60})
	b := addPanel(t, m, "Notes", entity.Content{Markup: "text"}, entity.Point{X: 500, Y: 60})
	m.SetViewport(600, 800)
	require.True(t, m.Mobile())

	c := Draw(Frame{
		Cols: 75, Rows: testRows, Geometry: testGeometry(), Options: m.Options(),
		Panels: m.PaintOrder(), Mobile: true, Tabs: m.MobileTabs(),
	})
	tabs := canvasRow(c, 3)
	assert.Contains(t, tabs, "Dice")
	assert.Contains(t, tabs, "Notes")

	found := false
	for col := 0; col < 75; col++ {
		if h := c.At(col, 3); h.Part == PartMobileTab && h.Panel == b.ID() {
			found = true
			break
		}
	}
	assert.True(t, found)
	assert.NotEqual(t, PartEdgeCorner, c.At(73, 46).Part, "mobile panels have no resize grips")
}

func TestCanvas_Render(t *testing.T) {
	m := newCanvasManager(t)
	addPanel(t, m, "Dice", entity.Content{Markup: "roll"}, entity.Point{X: 10, Y: 60})
	out := drawManager(m).Render(testTheme())
	assert.Len(t, strings.Split(out, "\n"), testRows)
	assert.Contains(t, out, "Dice")
}
