package main

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/mzen17/PDF-Page-Editor/internal/editor"
	"github.com/mzen17/PDF-Page-Editor/pkg/models"
)

// clickModifier maps the pressed keyboard modifiers onto a selection
// gesture. Cmd counts as Ctrl so macOS behaves like everywhere else.
func clickModifier(mod fyne.KeyModifier) editor.ClickModifier {
	switch {
	case mod&fyne.KeyModifierShift != 0:
		return editor.ClickRange
	case mod&(fyne.KeyModifierControl|fyne.KeyModifierSuper) != 0:
		return editor.ClickToggle
	default:
		return editor.ClickPlain
	}
}

func pluralPages(n int) string {
	if n == 1 {
		return "1 page"
	}
	return fmt.Sprintf("%d pages", n)
}

// pageStrip renders the session's records as a horizontal row of tiles and
// translates mouse gestures into session operations. All event handling
// runs on the Fyne event goroutine, so the session needs no locking.
type pageStrip struct {
	widget.BaseWidget

	session   *editor.Session
	box       models.ThumbnailSize
	setStatus func(string)

	tiles     []*pageTile
	row       *fyne.Container
	indicator *canvas.Rectangle
	content   *fyne.Container
}

func newPageStrip(session *editor.Session, box models.ThumbnailSize, setStatus func(string)) *pageStrip {
	s := &pageStrip{
		session:   session,
		box:       box,
		setStatus: setStatus,
	}

	s.row = container.NewHBox()
	s.indicator = canvas.NewRectangle(theme.PrimaryColor())
	s.indicator.Hide()
	s.content = container.NewStack(s.row, container.NewWithoutLayout(s.indicator))

	s.ExtendBaseWidget(s)
	s.Reload()
	return s
}

func (s *pageStrip) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}

// Reload rebuilds every tile from the session. Needed whenever records are
// added or reordered; selection-only changes go through refreshTiles.
func (s *pageStrip) Reload() {
	s.tiles = make([]*pageTile, s.session.Len())
	objects := make([]fyne.CanvasObject, s.session.Len())
	for i := range s.tiles {
		tile := newPageTile(s, i)
		s.tiles[i] = tile
		objects[i] = tile
	}

	s.row.Objects = objects
	s.row.Refresh()
	s.refreshTiles()
}

func (s *pageStrip) refreshTiles() {
	for _, tile := range s.tiles {
		tile.update()
	}
}

func (s *pageStrip) onTilePressed(index int, mod fyne.KeyModifier) {
	s.session.HandleClick(index, clickModifier(mod))
	s.session.BeginDrag(index)
	s.refreshTiles()
	s.setStatus(fmt.Sprintf("Selected %s of %d.", pluralPages(s.session.SelectionCount()), s.session.Len()))
}

func (s *pageStrip) onTileDragged(tile *pageTile, ev *fyne.DragEvent) {
	// Event positions are tile-relative; tiles and slots share the row's
	// coordinate space.
	x := tile.Position().X + ev.Position.X
	slot := s.session.DragTo(s.slotForPointer(x))
	if slot >= 0 {
		s.showIndicatorAt(slot)
	}
}

func (s *pageStrip) onTileDragEnd() {
	s.hideIndicator()

	moved := s.session.SelectionCount()
	if s.session.CompleteDrag() {
		s.Reload()
		s.setStatus(fmt.Sprintf("Moved %s.", pluralPages(moved)))
		return
	}
	s.refreshTiles()
}

func (s *pageStrip) onToggleInclude(index int, included bool) {
	s.session.SetIncluded(index, included)
	s.setStatus(fmt.Sprintf("%s of %d included in export.",
		pluralPages(s.session.IncludedCount()), s.session.Len()))
}

// slotForPointer converts a pointer x in row coordinates to the drop slot
// whose gap the pointer is over: the number of tiles whose midpoint lies
// left of the pointer.
func (s *pageStrip) slotForPointer(x float32) int {
	slot := 0
	for _, tile := range s.tiles {
		center := tile.Position().X + tile.Size().Width/2
		if x > center {
			slot++
		}
	}
	return slot
}

func (s *pageStrip) slotX(slot int) float32 {
	if len(s.tiles) == 0 {
		return 0
	}
	if slot >= len(s.tiles) {
		last := s.tiles[len(s.tiles)-1]
		return last.Position().X + last.Size().Width
	}
	return s.tiles[slot].Position().X
}

func (s *pageStrip) showIndicatorAt(slot int) {
	s.indicator.Move(fyne.NewPos(s.slotX(slot)-1, 0))
	s.indicator.Resize(fyne.NewSize(3, s.row.Size().Height))
	s.indicator.Show()
	s.indicator.Refresh()
}

func (s *pageStrip) hideIndicator() {
	s.indicator.Hide()
	s.indicator.Refresh()
}

var _ desktop.Mouseable = (*pageTile)(nil)
var _ fyne.Draggable = (*pageTile)(nil)

// pageTile is a single strip entry: thumbnail, caption, include checkbox,
// and a frame that lights up while the page is selected.
type pageTile struct {
	widget.BaseWidget

	strip *pageStrip
	index int

	thumb   *canvas.Image
	caption *widget.Label
	include *widget.Check
	frame   *canvas.Rectangle
}

func newPageTile(strip *pageStrip, index int) *pageTile {
	rec := strip.session.Record(index)

	t := &pageTile{strip: strip, index: index}

	t.thumb = canvas.NewImageFromImage(rec.Thumb)
	t.thumb.FillMode = canvas.ImageFillContain
	t.thumb.SetMinSize(fyne.NewSize(float32(strip.box.MaxWidth), float32(strip.box.MaxHeight)))

	t.caption = widget.NewLabel(fmt.Sprintf("%s (p.%d)", rec.Doc.Name(), rec.PageIndex+1))
	t.caption.Alignment = fyne.TextAlignCenter
	t.caption.Truncation = fyne.TextTruncateEllipsis

	t.include = widget.NewCheck("Include", nil)
	t.include.Checked = rec.Included
	t.include.OnChanged = func(checked bool) {
		strip.onToggleInclude(t.index, checked)
	}

	t.frame = canvas.NewRectangle(color.Transparent)
	t.frame.StrokeWidth = 3

	t.ExtendBaseWidget(t)
	return t
}

func (t *pageTile) CreateRenderer() fyne.WidgetRenderer {
	body := container.NewVBox(
		t.thumb,
		t.caption,
		container.NewHBox(layout.NewSpacer(), t.include, layout.NewSpacer()),
	)
	return widget.NewSimpleRenderer(container.NewStack(t.frame, container.NewPadded(body)))
}

func (t *pageTile) update() {
	rec := t.strip.session.Record(t.index)

	if t.strip.session.Selected(t.index) {
		t.frame.StrokeColor = theme.PrimaryColor()
	} else {
		t.frame.StrokeColor = color.Transparent
	}
	t.frame.Refresh()

	if t.include.Checked != rec.Included {
		t.include.Checked = rec.Included
		t.include.Refresh()
	}
}

func (t *pageTile) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	t.strip.onTilePressed(t.index, ev.Modifier)
}

func (t *pageTile) MouseUp(*desktop.MouseEvent) {}

func (t *pageTile) Dragged(ev *fyne.DragEvent) {
	t.strip.onTileDragged(t, ev)
}

func (t *pageTile) DragEnd() {
	t.strip.onTileDragEnd()
}
