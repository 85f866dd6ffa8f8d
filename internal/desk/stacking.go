package desk

import (
	"slices"

	"github.com/bnema/floatdesk/internal/domain/entity"
)

// Stacking assigns paint-order ranks. Normal panels rank from the base rank
// up; maximized panels use a separate band that sits above every normal panel
// and below the reserved chrome rank. Minimized panels never take part.
type Stacking struct {
	base      int
	maximized int
	chrome    int
}

// NewStacking creates a stacking authority for the given rank bands.
func NewStacking(base, maximized, chrome int) *Stacking {
	return &Stacking{base: base, maximized: maximized, chrome: chrome}
}

// ChromeRank is the rank reserved for persistent top-level chrome.
func (s *Stacking) ChromeRank() int { return s.chrome }

func (s *Stacking) band(state entity.PanelState) (lo, hi int) {
	if state == entity.PanelMaximized {
		return s.maximized, s.chrome - 1
	}
	return s.base, s.maximized - 1
}

func (s *Stacking) inBand(p *Panel) bool {
	lo, hi := s.band(p.state)
	return p.rank >= lo && p.rank <= hi
}

// BringToFront gives p a rank above every other non-minimized panel of its
// band. A panel already on top of its band keeps its rank.
func (s *Stacking) BringToFront(p *Panel, panels []*Panel) {
	if p.state == entity.PanelMinimized {
		return
	}
	lo, hi := s.band(p.state)
	top := s.maxRank(p, panels, lo)
	if s.inBand(p) && p.rank > top {
		return
	}
	if top+1 > hi {
		s.Normalize(p.state, panels)
		top = s.maxRank(p, panels, lo)
	}
	p.rank = top + 1
}

func (s *Stacking) maxRank(p *Panel, panels []*Panel, lo int) int {
	top := lo - 1
	for _, q := range panels {
		if q == p || q.state == entity.PanelMinimized || !sameBand(q.state, p.state) {
			continue
		}
		if q.rank > top {
			top = q.rank
		}
	}
	return top
}

func sameBand(a, b entity.PanelState) bool {
	return (a == entity.PanelMaximized) == (b == entity.PanelMaximized)
}

// Normalize compacts the ranks of one band so they start at the band floor
// again, keeping their relative order.
func (s *Stacking) Normalize(state entity.PanelState, panels []*Panel) {
	lo, _ := s.band(state)
	var members []*Panel
	for _, p := range panels {
		if p.state != entity.PanelMinimized && sameBand(p.state, state) {
			members = append(members, p)
		}
	}
	slices.SortStableFunc(members, func(a, b *Panel) int { return a.rank - b.rank })
	for i, p := range members {
		p.rank = lo + i
	}
}

// Ordered returns the visible panels bottom to top.
func (s *Stacking) Ordered(panels []*Panel) []*Panel {
	out := make([]*Panel, 0, len(panels))
	for _, p := range panels {
		if p.visible() {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b *Panel) int { return a.rank - b.rank })
	return out
}

// TopMost returns the highest visible panel, or nil.
func (s *Stacking) TopMost(panels []*Panel) *Panel {
	ordered := s.Ordered(panels)
	if len(ordered) == 0 {
		return nil
	}
	return ordered[len(ordered)-1]
}

// PanelAt returns the topmost visible panel under the point and the region hit.
func (s *Stacking) PanelAt(panels []*Panel, x, y int) (*Panel, Region) {
	ordered := s.Ordered(panels)
	for i := len(ordered) - 1; i >= 0; i-- {
		if r := ordered[i].hitTest(x, y); r != RegionNone {
			return ordered[i], r
		}
	}
	return nil, RegionNone
}
