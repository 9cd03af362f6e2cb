// Package placement implements the interactive arrangement engine:
// hit-testing, dragging with snap and clamp, multi-select, alignment,
// distribution, z-ordering, and guideline editing. All positions are in
// wall-relative centimeters; only hit-testing and drag deltas touch pixels.
package placement

import (
	"math"
	"sort"

	"gallery-wall/internal/model"
	"gallery-wall/pkg/geometry"
	"gallery-wall/pkg/units"
)

// Mode is the engine's interaction state. Exactly one interaction runs at a
// time; item drags, guideline drags, and panning are mutually exclusive.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDraggingItems
	ModeDraggingGuideline
	ModePanning
)

// FootprintFunc resolves a placed artwork's outer footprint (artwork plus
// mat and frame) in cm. Placement math always works on the footprint, never
// the bare artwork size.
type FootprintFunc func(artworkID string) (widthCm, heightCm float64)

// Engine drives one workspace's arrangement. It mutates the workspace's
// placements directly; callers wrap mutations in history commands for undo.
type Engine struct {
	workspace *model.Workspace
	wall      *model.Wall
	footprint FootprintFunc

	mode      Mode
	selection map[*model.PlacedArtwork]struct{}

	// Index of the guideline being dragged while in ModeDraggingGuideline.
	dragGuideline int
}

// NewEngine creates an engine for a workspace and its wall.
func NewEngine(ws *model.Workspace, wall *model.Wall, footprint FootprintFunc) *Engine {
	return &Engine{
		workspace:     ws,
		wall:          wall,
		footprint:     footprint,
		selection:     make(map[*model.PlacedArtwork]struct{}),
		dragGuideline: -1,
	}
}

// Mode returns the current interaction state.
func (e *Engine) Mode() Mode { return e.mode }

// paintOrder returns placements sorted ascending by z index, stable so equal
// indices keep list order.
func (e *Engine) paintOrder() []*model.PlacedArtwork {
	ordered := append([]*model.PlacedArtwork(nil), e.workspace.PlacedArtworks...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ZIndex < ordered[j].ZIndex
	})
	return ordered
}

// HitTest finds the placement under a screen point, or nil. The point is
// tested against each item's footprint scaled to pixels and shifted by the
// pan offset; among overlapping items the topmost in paint order wins.
func (e *Engine) HitTest(screenX, screenY, scale, panX, panY float64) *model.PlacedArtwork {
	var hit *model.PlacedArtwork
	for _, pa := range e.paintOrder() {
		w, h := e.footprint(pa.ArtworkID)
		x0 := float64(units.RealToPixels(pa.X, scale)) + panX
		y0 := float64(units.RealToPixels(pa.Y, scale)) + panY
		x1 := x0 + float64(units.RealToPixels(w, scale))
		y1 := y0 + float64(units.RealToPixels(h, scale))
		if screenX >= x0 && screenX < x1 && screenY >= y0 && screenY < y1 {
			hit = pa
		}
	}
	return hit
}

// Select replaces the selection with a single item. A nil item clears it.
func (e *Engine) Select(pa *model.PlacedArtwork) {
	e.selection = make(map[*model.PlacedArtwork]struct{})
	if pa != nil {
		e.selection[pa] = struct{}{}
	}
}

// ToggleSelect flips an item's selection membership (modifier-click).
func (e *Engine) ToggleSelect(pa *model.PlacedArtwork) {
	if _, ok := e.selection[pa]; ok {
		delete(e.selection, pa)
	} else {
		e.selection[pa] = struct{}{}
	}
}

// ClearSelection empties the selection.
func (e *Engine) ClearSelection() {
	e.selection = make(map[*model.PlacedArtwork]struct{})
}

// IsSelected reports selection membership.
func (e *Engine) IsSelected(pa *model.PlacedArtwork) bool {
	_, ok := e.selection[pa]
	return ok
}

// Selected returns the selected placements in workspace list order.
func (e *Engine) Selected() []*model.PlacedArtwork {
	var out []*model.PlacedArtwork
	for _, pa := range e.workspace.PlacedArtworks {
		if _, ok := e.selection[pa]; ok {
			out = append(out, pa)
		}
	}
	return out
}

// footprintRect returns a placement's footprint rectangle in cm.
func (e *Engine) footprintRect(pa *model.PlacedArtwork) geometry.Rect {
	w, h := e.footprint(pa.ArtworkID)
	return geometry.NewRect(pa.X, pa.Y, w, h)
}

// SelectInRect replaces the selection with every placement whose footprint
// intersects the given wall-space rectangle (rubber-band selection).
func (e *Engine) SelectInRect(rect geometry.Rect) {
	e.selection = make(map[*model.PlacedArtwork]struct{})
	for _, pa := range e.workspace.PlacedArtworks {
		if e.footprintRect(pa).Intersects(rect) {
			e.selection[pa] = struct{}{}
		}
	}
}

// BeginDrag enters the item-drag state. No-op unless idle with a selection.
func (e *Engine) BeginDrag() {
	if e.mode == ModeIdle && len(e.selection) > 0 {
		e.mode = ModeDraggingItems
	}
}

// DragBy moves every selected item by a pixel delta converted to cm at the
// given render scale. Each item is snapped and then clamped independently,
// so a snap target near the wall edge survives unless it truly exceeds
// bounds.
func (e *Engine) DragBy(dxPx, dyPx, scale float64) {
	if e.mode != ModeDraggingItems {
		return
	}
	dx := units.PixelsToReal(dxPx, scale)
	dy := units.PixelsToReal(dyPx, scale)
	for _, pa := range e.Selected() {
		w, h := e.footprint(pa.ArtworkID)
		x, y := pa.X+dx, pa.Y+dy
		x, y = e.snap(x, y, w, h)
		pa.X, pa.Y = e.clamp(x, y, w, h)
	}
}

// EndDrag returns to idle.
func (e *Engine) EndDrag() {
	if e.mode == ModeDraggingItems {
		e.mode = ModeIdle
	}
}

// snap applies grid snap then guide snap to a candidate top-left position.
// Guide snap runs second and may override the grid result.
func (e *Engine) snap(x, y, w, h float64) (float64, float64) {
	ws := e.workspace

	if ws.SnapToGrid && ws.GridSpacingCm > 0 {
		x = math.Round(x/ws.GridSpacingCm) * ws.GridSpacingCm
		y = math.Round(y/ws.GridSpacingCm) * ws.GridSpacingCm
	}

	if ws.SnapToGuides {
		for _, g := range ws.Guidelines {
			switch g.Orientation {
			case model.GuidelineVertical:
				// Left, center, right edges against a vertical guide.
				for _, anchor := range [3]float64{0, w / 2, w} {
					if math.Abs(x+anchor-g.Position) <= ws.SnapToleranceCm {
						x = g.Position - anchor
						break
					}
				}
			case model.GuidelineHorizontal:
				for _, anchor := range [3]float64{0, h / 2, h} {
					if math.Abs(y+anchor-g.Position) <= ws.SnapToleranceCm {
						y = g.Position - anchor
						break
					}
				}
			}
		}
	}
	return x, y
}

// clamp bounds a position so the footprint stays within the wall, per axis.
func (e *Engine) clamp(x, y, w, h float64) (float64, float64) {
	maxX := e.wall.RealWidthCm - w
	maxY := e.wall.RealHeightCm - h
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	return clampTo(x, 0, maxX), clampTo(y, 0, maxY)
}

func clampTo(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Alignment modes.
const (
	AlignLeft    = "left"
	AlignRight   = "right"
	AlignTop     = "top"
	AlignBottom  = "bottom"
	AlignCenterH = "center_h"
	AlignCenterV = "center_v"
)

// Align aligns the selected items. Items keep their own sizes; only
// positions change. Fewer than two selected items is a no-op. Returns true
// when anything moved.
func (e *Engine) Align(mode string) bool {
	items := e.Selected()
	if len(items) < 2 {
		return false
	}

	switch mode {
	case AlignLeft:
		min := items[0].X
		for _, pa := range items[1:] {
			if pa.X < min {
				min = pa.X
			}
		}
		for _, pa := range items {
			pa.X = min
		}
	case AlignTop:
		min := items[0].Y
		for _, pa := range items[1:] {
			if pa.Y < min {
				min = pa.Y
			}
		}
		for _, pa := range items {
			pa.Y = min
		}
	case AlignRight:
		max := math.Inf(-1)
		for _, pa := range items {
			w, _ := e.footprint(pa.ArtworkID)
			if edge := pa.X + w; edge > max {
				max = edge
			}
		}
		for _, pa := range items {
			w, _ := e.footprint(pa.ArtworkID)
			pa.X = max - w
		}
	case AlignBottom:
		max := math.Inf(-1)
		for _, pa := range items {
			_, h := e.footprint(pa.ArtworkID)
			if edge := pa.Y + h; edge > max {
				max = edge
			}
		}
		for _, pa := range items {
			_, h := e.footprint(pa.ArtworkID)
			pa.Y = max - h
		}
	case AlignCenterH:
		mean := e.selectionCentroid(items).X
		for _, pa := range items {
			w, _ := e.footprint(pa.ArtworkID)
			pa.X = mean - w/2
		}
	case AlignCenterV:
		mean := e.selectionCentroid(items).Y
		for _, pa := range items {
			_, h := e.footprint(pa.ArtworkID)
			pa.Y = mean - h/2
		}
	default:
		return false
	}
	return true
}

// selectionCentroid is the mean of the items' footprint centers; center
// alignment moves every item's centerline onto it.
func (e *Engine) selectionCentroid(items []*model.PlacedArtwork) geometry.Point2D {
	centers := make([]geometry.Point2D, len(items))
	for i, pa := range items {
		centers[i] = e.footprintRect(pa).Center()
	}
	return geometry.Centroid(centers)
}

// Distribution axes.
const (
	DistributeHorizontal = "horizontal"
	DistributeVertical   = "vertical"
)

// Distribute spaces the selected items evenly along one axis: the extreme
// items stay put and the space between them is divided into equal gaps.
// Fewer than three selected items is a no-op. Returns true when anything
// moved.
func (e *Engine) Distribute(axis string) bool {
	items := e.Selected()
	if len(items) < 3 {
		return false
	}

	horizontal := axis == DistributeHorizontal
	if !horizontal && axis != DistributeVertical {
		return false
	}

	pos := func(pa *model.PlacedArtwork) float64 {
		if horizontal {
			return pa.X
		}
		return pa.Y
	}
	size := func(pa *model.PlacedArtwork) float64 {
		w, h := e.footprint(pa.ArtworkID)
		if horizontal {
			return w
		}
		return h
	}

	sort.SliceStable(items, func(i, j int) bool { return pos(items[i]) < pos(items[j]) })

	first, last := items[0], items[len(items)-1]
	span := pos(last) + size(last) - pos(first)
	var total float64
	for _, pa := range items {
		total += size(pa)
	}
	gap := (span - total) / float64(len(items)-1)

	cursor := pos(first)
	for _, pa := range items {
		if horizontal {
			pa.X = cursor
		} else {
			pa.Y = cursor
		}
		cursor += size(pa) + gap
	}
	return true
}

// BringToFront raises an item above every existing z index.
func (e *Engine) BringToFront(pa *model.PlacedArtwork) {
	max := math.MinInt
	for _, other := range e.workspace.PlacedArtworks {
		if other.ZIndex > max {
			max = other.ZIndex
		}
	}
	pa.ZIndex = max + 1
}

// SendToBack lowers an item below every existing z index.
func (e *Engine) SendToBack(pa *model.PlacedArtwork) {
	min := math.MaxInt
	for _, other := range e.workspace.PlacedArtworks {
		if other.ZIndex < min {
			min = other.ZIndex
		}
	}
	pa.ZIndex = min - 1
}

// BeginGuidelineDrag enters the guideline-drag state for one guide index.
func (e *Engine) BeginGuidelineDrag(index int) {
	if e.mode == ModeIdle && index >= 0 && index < len(e.workspace.Guidelines) {
		e.mode = ModeDraggingGuideline
		e.dragGuideline = index
	}
}

// DragGuideline repositions the dragged guide from the pointer's absolute
// cm coordinate (not delta-accumulated), clamped to the wall extent on the
// guide's axis.
func (e *Engine) DragGuideline(positionCm float64) {
	if e.mode != ModeDraggingGuideline {
		return
	}
	g := &e.workspace.Guidelines[e.dragGuideline]
	limit := e.wall.RealWidthCm
	if g.Orientation == model.GuidelineHorizontal {
		limit = e.wall.RealHeightCm
	}
	g.Position = clampTo(positionCm, 0, limit)
}

// EndGuidelineDrag returns to idle.
func (e *Engine) EndGuidelineDrag() {
	if e.mode == ModeDraggingGuideline {
		e.mode = ModeIdle
		e.dragGuideline = -1
	}
}

// BeginPan enters the pan state. Mutually exclusive with dragging.
func (e *Engine) BeginPan() {
	if e.mode == ModeIdle {
		e.mode = ModePanning
	}
}

// PanBy shifts the workspace's persisted view offset by a pixel delta.
func (e *Engine) PanBy(dxPx, dyPx float64) {
	if e.mode != ModePanning {
		return
	}
	e.workspace.PanOffsetX += dxPx
	e.workspace.PanOffsetY += dyPx
}

// EndPan returns to idle.
func (e *Engine) EndPan() {
	if e.mode == ModePanning {
		e.mode = ModeIdle
	}
}
