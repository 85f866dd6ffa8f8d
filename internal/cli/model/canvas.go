package model

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/floatdesk/internal/application/port"
	"github.com/bnema/floatdesk/internal/cli/styles"
	"github.com/bnema/floatdesk/internal/desk"
	"github.com/bnema/floatdesk/internal/domain/entity"
)

// Geometry maps terminal cells onto desk pixels. A cell stands for the
// pixel at its center.
type Geometry struct {
	CellWidth  int
	CellHeight int
}

func (g Geometry) normalized() Geometry {
	if g.CellWidth <= 0 {
		g.CellWidth = 8
	}
	if g.CellHeight <= 0 {
		g.CellHeight = 16
	}
	return g
}

// Viewport returns the desk size in pixels for a terminal size in cells.
func (g Geometry) Viewport(cols, rows int) entity.Viewport {
	g = g.normalized()
	return entity.Viewport{Width: cols * g.CellWidth, Height: rows * g.CellHeight}
}

// Center returns the pixel a cell stands for.
func (g Geometry) Center(col, row int) (x, y int) {
	g = g.normalized()
	return col*g.CellWidth + g.CellWidth/2, row*g.CellHeight + g.CellHeight/2
}

// Part is what a cell of the desk belongs to.
type Part int

const (
	PartDesk Part = iota
	PartBand
	PartHeader
	PartBody
	PartTab
	PartMinimize
	PartMaximize
	PartClose
	PartEdgeRight
	PartEdgeBottom
	PartEdgeCorner
	PartTray
	PartMobileTab
	PartNotice
)

// Hit is what a click on a cell lands on.
type Hit struct {
	Part  Part
	Panel entity.PanelID
	// Index is the tab, tray entry or mobile tab index.
	Index int
}

type role int

const (
	roleDesk role = iota
	roleBand
	roleHeader
	roleHeaderFocused
	roleHeaderMoving
	roleBody
	roleBodyFocused
	roleEdge
	roleClosing
	roleControl
	roleControlClose
	roleTray
	roleTab
	roleTabActive
	roleNoticeInfo
	roleNoticeSuccess
	roleNoticeError
	roleNoticeWarning
)

// cell holds one terminal cell. A zero ch marks the right half of a wide
// rune and is skipped when rendering.
type cell struct {
	ch   rune
	role role
	hit  Hit
}

// Notice is a toast shown in the header band.
type Notice struct {
	ID   port.NotificationID
	Kind port.NotificationType
	Text string
}

// Frame is everything one desk render needs.
type Frame struct {
	Cols, Rows int
	Geometry   Geometry
	Options    desk.Options
	// Panels are the panel views bottom to top.
	Panels  []desk.PanelView
	Tray    []desk.TrayEntry
	Mobile  bool
	Tabs    []desk.MobileTab
	Title   string
	Notices []Notice
	Status  string
}

// Canvas is a rendered desk: a grid of styled cells plus what each cell
// would hit when clicked.
type Canvas struct {
	cols, rows int
	geo        Geometry
	cells      []cell
}

// Draw lays out a frame on a fresh canvas.
func Draw(f Frame) *Canvas {
	c := &Canvas{cols: max(f.Cols, 0), rows: max(f.Rows, 0), geo: f.Geometry.normalized()}
	c.cells = make([]cell, c.cols*c.rows)
	for i := range c.cells {
		c.cells[i] = cell{ch: ' ', role: roleDesk, hit: Hit{Part: PartDesk}}
	}
	if c.cols == 0 || c.rows == 0 {
		return c
	}

	header, footer := c.bandRows(f.Options.Bands)
	for row := range header {
		c.fill(row, 0, c.cols, ' ', roleBand, Hit{Part: PartBand})
	}
	for _, row := range footer {
		c.fill(row, 0, c.cols, ' ', roleBand, Hit{Part: PartBand})
	}

	for _, v := range f.Panels {
		if v.Visible {
			c.drawPanel(v, f.Options)
		}
	}

	c.drawHeaderBand(f, header)
	c.drawFooterBand(f, footer)
	return c
}

// bandRows returns how many rows the header band covers and which rows
// belong to the footer band.
func (c *Canvas) bandRows(b entity.Bands) (header int, footer []int) {
	height := c.rows * c.geo.CellHeight
	for row := 0; row < c.rows; row++ {
		_, y := c.geo.Center(0, row)
		switch {
		case y < b.HeaderHeight:
			header = row + 1
		case y >= height-b.FooterHeight:
			footer = append(footer, row)
		}
	}
	return header, footer
}

// span returns the cells whose centers lie inside r, clipped to the grid.
func (c *Canvas) span(r entity.Rect) (c0, c1, r0, r1 int, ok bool) {
	c0, r0 = -1, -1
	for col := 0; col < c.cols; col++ {
		x, _ := c.geo.Center(col, 0)
		if x >= r.X && x < r.Right() {
			if c0 < 0 {
				c0 = col
			}
			c1 = col
		}
	}
	for row := 0; row < c.rows; row++ {
		_, y := c.geo.Center(0, row)
		if y >= r.Y && y < r.Bottom() {
			if r0 < 0 {
				r0 = row
			}
			r1 = row
		}
	}
	return c0, c1, r0, r1, c0 >= 0 && r0 >= 0
}

func (c *Canvas) drawPanel(v desk.PanelView, opts desk.Options) {
	r := v.Frame
	c0, c1, r0, r1, ok := c.span(r)
	if !ok {
		return
	}
	edges := v.State == entity.PanelNormal && v.Resizable && !v.Closing

	headerRole, bodyRole := roleHeader, roleBody
	switch {
	case v.Closing:
		headerRole, bodyRole = roleClosing, roleClosing
	case v.Dragging || v.Resizing:
		headerRole, bodyRole = roleHeaderMoving, roleBodyFocused
	case v.Focused:
		headerRole, bodyRole = roleHeaderFocused, roleBodyFocused
	}

	bodyStart := r1 + 1
	zones := map[Part][]int{}
	for row := r0; row <= r1; row++ {
		_, y := c.geo.Center(0, row)
		inHeader := y < r.Y+opts.PanelHeaderHeight
		if !inHeader && bodyStart > row {
			bodyStart = row
		}
		for col := c0; col <= c1; col++ {
			x, _ := c.geo.Center(col, 0)
			hit := Hit{Part: PartBody, Panel: v.ID}
			rl := bodyRole
			ch := ' '

			switch {
			case edges && col == c1 && row == r1:
				hit.Part, rl, ch = PartEdgeCorner, roleEdge, '◢'
			case edges && row == r1:
				hit.Part, rl, ch = PartEdgeBottom, roleEdge, '▁'
			case edges && col == c1 && !inHeader:
				hit.Part, rl, ch = PartEdgeRight, roleEdge, '▕'
			case inHeader:
				hit.Part, rl = PartHeader, headerRole
				if part := controlAt(r.Right()-x, opts.ControlWidth); part != PartHeader {
					hit.Part = part
					if !v.Closing {
						rl = roleControl
						if part == PartClose {
							rl = roleControlClose
						}
					}
					if row == r0 {
						zones[part] = append(zones[part], col)
					}
				}
			}
			c.set(col, row, cell{ch: ch, role: rl, hit: hit})
		}
	}

	c.drawControls(zones, r0, v.State)
	c.drawTitle(v.Title, r0, c0, c1)
	if bodyStart <= r1 {
		c.drawBody(v, bodyStart, r1, c0, c1)
	}
}

// controlAt mirrors the panel hit test: buttons are measured from the
// right edge of the header.
func controlAt(fromRight, width int) Part {
	switch {
	case fromRight <= width:
		return PartClose
	case fromRight <= 2*width:
		return PartMaximize
	case fromRight <= 3*width:
		return PartMinimize
	default:
		return PartHeader
	}
}

func (c *Canvas) drawControls(zones map[Part][]int, row int, state entity.PanelState) {
	glyphs := map[Part]rune{PartMinimize: '_', PartMaximize: '□', PartClose: '×'}
	if state == entity.PanelMaximized {
		glyphs[PartMaximize] = '❐'
	}
	for part, cols := range zones {
		c.setRune(cols[len(cols)/2], row, glyphs[part])
	}
}

// drawTitle writes the title over the header cells of the first row,
// stopping at the buttons.
func (c *Canvas) drawTitle(title string, row, c0, c1 int) {
	end := c0
	for col := c0; col <= c1; col++ {
		if c.at(col, row).hit.Part != PartHeader {
			break
		}
		end = col
	}
	c.text(row, c0+1, end-1, title)
}

// drawBody writes the tab strip and the body text, keeping clear of the
// resize edges.
func (c *Canvas) drawBody(v desk.PanelView, from, to, c0, c1 int) {
	row := from
	left, right := c0+1, c1-1
	edges := v.State == entity.PanelNormal && v.Resizable && !v.Closing
	if edges {
		right = c1 - 2
		to--
	}

	if v.Content.IsTabbed() && row <= to {
		col := left
		for i, tab := range v.Content.Tabs {
			label := " " + plain(tab.Title) + " "
			tr := roleTab
			if i == activeTab(v) {
				tr = roleTabActive
			}
			for _, ch := range label {
				if col > right {
					break
				}
				c.set(col, row, cell{ch: ch, role: tr, hit: Hit{Part: PartTab, Panel: v.ID, Index: i}})
				col++
			}
		}
		row++
	}

	lines := strings.Split(plain(v.Content.Body(v.ActiveTab)), "\n")
	for _, line := range lines {
		if row > to {
			break
		}
		c.text(row, left, right, line)
		row++
	}
}

func activeTab(v desk.PanelView) int {
	if v.ActiveTab < 0 || v.ActiveTab >= v.Content.TabCount() {
		return 0
	}
	return v.ActiveTab
}

// plain strips escape sequences and expands tabs.
func plain(s string) string {
	return strings.ReplaceAll(ansi.Strip(s), "\t", "    ")
}

func (c *Canvas) drawHeaderBand(f Frame, rows int) {
	col := 1
	if rows > 0 && f.Title != "" {
		col = c.text(0, col, c.cols-1, f.Title) + 2
	}

	// Mobile tabs take the last header row, or follow the title when the
	// band is one row high.
	if f.Mobile && rows > 0 {
		tabRow := rows - 1
		if tabRow > 0 {
			col = 1
		}
		for i, tab := range f.Tabs {
			label := " " + tab.Icon + " " + plain(tab.Title) + " "
			rl := roleTab
			if tab.Active {
				rl = roleTabActive
			}
			col = c.label(tabRow, col, label, rl, Hit{Part: PartMobileTab, Panel: tab.ID, Index: i}) + 1
			if col >= c.cols {
				break
			}
		}
	}

	for i, n := range f.Notices {
		if i > 0 && i >= rows {
			break
		}
		label := " " + styles.NoticeIcon(n.Kind) + " " + plain(n.Text) + " "
		start := max(c.cols-runewidth.StringWidth(label)-1, 0)
		c.label(i, start, label, noticeRole(n.Kind), Hit{Part: PartNotice, Index: i})
	}
}

func (c *Canvas) drawFooterBand(f Frame, rows []int) {
	trayRow := c.rows - 1
	if len(rows) > 0 {
		trayRow = rows[0]
	}
	statusRow := -1
	if len(rows) > 1 {
		statusRow = rows[len(rows)-1]
	}

	col := 1
	for i, entry := range f.Tray {
		label := " " + desk.IconFor(entry.Title) + " " + plain(entry.Title) + " "
		width := runewidth.StringWidth(label)
		if col+width >= c.cols-4 {
			more := "+" + strconv.Itoa(len(f.Tray)-i)
			c.text(trayRow, col, c.cols-1, more)
			break
		}
		col = c.label(trayRow, col, label, roleTray, Hit{Part: PartTray, Index: i}) + 1
	}

	if statusRow >= 0 && f.Status != "" {
		c.text(statusRow, 1, c.cols-2, f.Status)
	}
}

func noticeRole(kind port.NotificationType) role {
	switch kind {
	case port.NotificationSuccess:
		return roleNoticeSuccess
	case port.NotificationError:
		return roleNoticeError
	case port.NotificationWarning:
		return roleNoticeWarning
	default:
		return roleNoticeInfo
	}
}

// label writes s with its own role and hit, returning the column after it.
func (c *Canvas) label(row, col int, s string, rl role, hit Hit) int {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > c.cols {
			break
		}
		c.set(col, row, cell{ch: ch, role: rl, hit: hit})
		if w == 2 {
			c.set(col+1, row, cell{ch: 0, role: rl, hit: hit})
		}
		col += w
	}
	return col
}

// text writes s between from and to inclusive, keeping each cell's role
// and hit. Overflow ends with an ellipsis. It returns the column after the
// last written cell.
func (c *Canvas) text(row, from, to int, s string) int {
	if row < 0 || row >= c.rows || to < from {
		return from
	}
	to = min(to, c.cols-1)
	avail := to - from + 1
	if runewidth.StringWidth(s) > avail {
		s = runewidth.Truncate(s, avail, "…")
	}
	col := from
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w-1 > to {
			break
		}
		c.setRune(col, row, ch)
		if w == 2 {
			c.setRune(col+1, row, 0)
		}
		col += w
	}
	return col
}

func (c *Canvas) fill(row, from, to int, ch rune, rl role, hit Hit) {
	for col := from; col < to; col++ {
		c.set(col, row, cell{ch: ch, role: rl, hit: hit})
	}
}

func (c *Canvas) set(col, row int, v cell) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] = v
}

func (c *Canvas) setRune(col, row int, ch rune) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col].ch = ch
}

func (c *Canvas) at(col, row int) cell {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return cell{}
	}
	return c.cells[row*c.cols+col]
}

// At returns what a click on the cell lands on.
func (c *Canvas) At(col, row int) Hit {
	return c.at(col, row).hit
}

// PointerAt returns the desk pixel to send for a click on the cell. Edge
// cells snap onto the panel border so the engine sees a resize grip.
func (c *Canvas) PointerAt(col, row int, frame entity.Rect) (x, y int) {
	x, y = c.geo.Center(col, row)
	switch c.At(col, row).Part {
	case PartEdgeRight:
		x = frame.Right() - 1
	case PartEdgeBottom:
		y = frame.Bottom() - 1
	case PartEdgeCorner:
		x, y = frame.Right()-1, frame.Bottom()-1
	}
	return x, y
}

// String returns the canvas characters without styling.
func (c *Canvas) String() string {
	var sb strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < c.cols; col++ {
			if ch := c.at(col, row).ch; ch != 0 {
				sb.WriteRune(ch)
			}
		}
	}
	return sb.String()
}

// Render styles every run of same-role cells.
func (c *Canvas) Render(t *styles.Theme) string {
	roles := roleStyles(t)
	var sb strings.Builder
	var run strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		current := c.at(0, row).role
		for col := 0; col < c.cols; col++ {
			cl := c.at(col, row)
			if cl.role != current {
				sb.WriteString(roles[current].Render(run.String()))
				run.Reset()
				current = cl.role
			}
			if cl.ch != 0 {
				run.WriteRune(cl.ch)
			}
		}
		sb.WriteString(roles[current].Render(run.String()))
		run.Reset()
	}
	return sb.String()
}

func roleStyles(t *styles.Theme) map[role]lipgloss.Style {
	notice := func(kind port.NotificationType) lipgloss.Style {
		return t.NoticeStyle(kind).UnsetPadding()
	}
	return map[role]lipgloss.Style{
		roleDesk:          t.Desk,
		roleBand:          t.Band,
		roleHeader:        t.PanelHeader,
		roleHeaderFocused: t.PanelHeaderFocused,
		roleHeaderMoving:  t.PanelHeaderMoving,
		roleBody:          t.PanelBody,
		roleBodyFocused:   t.PanelBodyFocused,
		roleEdge:          t.PanelEdge,
		roleClosing:       t.PanelClosing,
		roleControl:       t.Control,
		roleControlClose:  t.ControlClose,
		roleTray:          t.TrayItem,
		roleTab:           t.PanelTab,
		roleTabActive:     t.PanelTabActive,
		roleNoticeInfo:    notice(port.NotificationInfo),
		roleNoticeSuccess: notice(port.NotificationSuccess),
		roleNoticeError:   notice(port.NotificationError),
		roleNoticeWarning: notice(port.NotificationWarning),
	}
}
