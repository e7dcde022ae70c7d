package view

import (
	"testing"

	"github.com/go-drift/tweak/pkg/color"
	"github.com/go-drift/tweak/pkg/dom"
	"github.com/go-drift/tweak/pkg/errors"
	"github.com/go-drift/tweak/pkg/rendering"
	"github.com/go-drift/tweak/pkg/value"
)

func TestSvPaletteCellBoundaries(t *testing.T) {
	cells := SvPaletteCells(120, 128, 128)
	if len(cells) != PaletteCellCount*PaletteCellCount {
		t.Fatalf("len(cells) = %d, want %d", len(cells), PaletteCellCount*PaletteCellCount)
	}

	first := cells[0]
	if first.IX != 0 || first.IY != 0 {
		t.Fatalf("first cell = (%d, %d), want (0, 0)", first.IX, first.IY)
	}
	if first.Saturation != 0 || first.Value != 100 {
		t.Errorf("cell (0,0) s,v = %v,%v, want 0,100", first.Saturation, first.Value)
	}
	if first.Color != rendering.ColorWhite {
		t.Errorf("cell (0,0) color = %#x, want white", uint32(first.Color))
	}
	if want := rendering.RectFromLTWH(0, 0, 2, 2); first.Rect != want {
		t.Errorf("cell (0,0) rect = %v, want %v", first.Rect, want)
	}

	last := cells[len(cells)-1]
	if last.IX != PaletteCellCount-1 || last.IY != PaletteCellCount-1 {
		t.Fatalf("last cell = (%d, %d)", last.IX, last.IY)
	}
	if last.Saturation != 100 || last.Value != 0 {
		t.Errorf("cell (N-1,N-1) s,v = %v,%v, want 100,0", last.Saturation, last.Value)
	}
	if last.Color != rendering.ColorBlack {
		t.Errorf("cell (N-1,N-1) color = %#x, want black", uint32(last.Color))
	}
	if want := rendering.RectFromLTWH(126, 126, 2, 2); last.Rect != want {
		t.Errorf("cell (N-1,N-1) rect = %v, want %v", last.Rect, want)
	}

	topRight := cells[PaletteCellCount-1]
	if topRight.Color != rendering.ColorGreen {
		t.Errorf("top-right color at hue 120 = %#x, want green", uint32(topRight.Color))
	}
}

func TestSvPaletteCellsStayFlushWithEdges(t *testing.T) {
	cells := SvPaletteCells(0, 100, 30)
	last := cells[len(cells)-1]
	// ceil(100/64) = 2, ceil(30/64) = 1
	if last.Rect.Width() != 2 || last.Rect.Height() != 1 {
		t.Errorf("cell size = %vx%v, want 2x1", last.Rect.Width(), last.Rect.Height())
	}
	if last.Rect.Right != 100 || last.Rect.Bottom != 30 {
		t.Errorf("last cell ends at (%v, %v), want (100, 30)", last.Rect.Right, last.Rect.Bottom)
	}
	for _, c := range cells {
		if c.Rect.Left < 0 || c.Rect.Top < 0 || c.Rect.Right > 100 || c.Rect.Bottom > 30 {
			t.Fatalf("cell (%d, %d) overflows: %v", c.IX, c.IY, c.Rect)
		}
	}
}

func TestHuePaletteCells(t *testing.T) {
	cells := HuePaletteCells(128, 12)
	if len(cells) != PaletteCellCount {
		t.Fatalf("len(cells) = %d, want %d", len(cells), PaletteCellCount)
	}
	if cells[0].Color != rendering.ColorRed || cells[len(cells)-1].Color != rendering.ColorRed {
		t.Error("hue strip should start and end at red")
	}
	if cells[0].Rect.Height() != 12 {
		t.Errorf("cell height = %v, want 12", cells[0].Rect.Height())
	}
}

func markerPosition(t *testing.T, p *SvPalette) (left, top string) {
	t.Helper()
	m, err := p.MarkerElement()
	if err != nil {
		t.Fatal(err)
	}
	return m.Style("left"), m.Style("top")
}

func TestSvPaletteMarkerLaw(t *testing.T) {
	tests := []struct {
		s, v      float64
		left, top string
	}{
		{0, 100, "0%", "0%"},
		{100, 0, "100%", "100%"},
		{50, 50, "50%", "50%"},
		{25, 75, "25%", "25%"},
	}
	for _, tt := range tests {
		v := value.New(color.HSV(200, tt.s, tt.v))
		p := NewSvPalette(&dom.Document{}, SvPaletteConfig{Value: v})
		left, top := markerPosition(t, p)
		if left != tt.left || top != tt.top {
			t.Errorf("s=%v v=%v: marker = (%s, %s), want (%s, %s)", tt.s, tt.v, left, top, tt.left, tt.top)
		}
		p.Dispose()
	}
}

func TestSvPaletteScenario(t *testing.T) {
	recs := dom.NewRecorders()
	doc := dom.NewDocument(recs.Provide)
	v := value.New(color.HSV(120, 50, 50))
	p := NewSvPalette(doc, SvPaletteConfig{Value: v, Width: 128, Height: 128})

	if left, top := markerPosition(t, p); left != "50%" || top != "50%" {
		t.Fatalf("initial marker = (%s, %s), want (50%%, 50%%)", left, top)
	}
	canvas, err := p.CanvasElement()
	if err != nil {
		t.Fatal(err)
	}
	rec := recs.For(canvas)
	if rec == nil {
		t.Fatal("palette never acquired a surface")
	}
	if n := len(rec.Snapshot().Rects()); n != PaletteCellCount*PaletteCellCount {
		t.Errorf("initial render drew %d cells, want %d", n, PaletteCellCount*PaletteCellCount)
	}
	rec.Reset()

	notifications := 0
	v.Subscribe(func() { notifications++ })
	v.Set(color.HSV(120, 100, 0))

	if notifications != 1 {
		t.Errorf("notifications = %d, want 1", notifications)
	}
	if left, top := markerPosition(t, p); left != "100%" || top != "100%" {
		t.Errorf("marker after Set = (%s, %s), want (100%%, 100%%)", left, top)
	}
	if n := len(rec.Snapshot().Rects()); n != PaletteCellCount*PaletteCellCount {
		t.Errorf("re-render drew %d cells, want %d", n, PaletteCellCount*PaletteCellCount)
	}
}

func TestSvPaletteRastersHue(t *testing.T) {
	doc := dom.NewDocument(dom.RasterSurfaces)
	v := value.New(color.HSV(0, 10, 10))
	p := NewSvPalette(doc, SvPaletteConfig{Value: v, Width: 64, Height: 64})
	canvas, _ := p.CanvasElement()
	ctx, _ := canvas.Context()
	raster := ctx.(*rendering.RasterCanvas)

	if got := raster.At(63, 0); got != rendering.ColorRed {
		t.Errorf("top-right pixel = %#x, want red", uint32(got))
	}
	if got := raster.At(0, 0); got != rendering.ColorWhite {
		t.Errorf("top-left pixel = %#x, want white", uint32(got))
	}

	v.Set(color.HSV(240, 10, 10))
	if got := raster.At(63, 0); got != rendering.ColorBlue {
		t.Errorf("top-right pixel after hue change = %#x, want blue", uint32(got))
	}
}

func TestSvPaletteWithoutContextStillMovesMarker(t *testing.T) {
	var reported []*errors.ControlError
	old := errors.DefaultHandler
	errors.SetHandler(errorHandler(func(err *errors.ControlError) { reported = append(reported, err) }))
	defer errors.SetHandler(old)

	v := value.New(color.HSV(0, 0, 100))
	p := NewSvPalette(dom.NewDocument(dom.NoSurfaces), SvPaletteConfig{Value: v})
	v.Set(color.HSV(0, 100, 0))

	if left, top := markerPosition(t, p); left != "100%" || top != "100%" {
		t.Errorf("marker = (%s, %s), want (100%%, 100%%)", left, top)
	}
	if len(reported) == 0 {
		t.Fatal("expected the skipped fill to be reported")
	}
	for _, err := range reported {
		if err.Kind != errors.KindRender {
			t.Errorf("reported kind = %v, want render", err.Kind)
		}
	}
}

func TestSvPaletteDisposed(t *testing.T) {
	v := value.New(color.HSV(0, 0, 0))
	p := NewSvPalette(&dom.Document{}, SvPaletteConfig{Value: v})
	root := p.Element()

	p.Dispose()
	p.Dispose()

	if err := p.Update(); !errors.IsDisposed(err) {
		t.Errorf("Update() = %v, want already disposed", err)
	}
	if _, err := p.CanvasElement(); !errors.IsDisposed(err) {
		t.Errorf("CanvasElement() = %v, want already disposed", err)
	}
	if _, err := p.MarkerElement(); !errors.IsDisposed(err) {
		t.Errorf("MarkerElement() = %v, want already disposed", err)
	}
	if len(root.Children()) != 0 {
		t.Errorf("root still holds %d children", len(root.Children()))
	}
	if v.ListenerCount() != 0 {
		t.Errorf("ListenerCount() = %d, want 0", v.ListenerCount())
	}
	v.Set(color.HSV(10, 10, 10))
}

func TestHPaletteMarker(t *testing.T) {
	v := value.New(color.HSV(180, 50, 50))
	p := NewHPalette(&dom.Document{}, HPaletteConfig{Value: v})
	m := p.Element().Find("tw-hplv_m")
	if got := m.Style("left"); got != "50%" {
		t.Errorf("marker left = %q, want 50%%", got)
	}
	v.Set(color.HSV(0, 50, 50))
	if got := m.Style("left"); got != "0%" {
		t.Errorf("marker left = %q, want 0%%", got)
	}

	p.Dispose()
	if err := p.Update(); !errors.IsDisposed(err) {
		t.Errorf("Update() = %v, want already disposed", err)
	}
}

type errorHandler func(*errors.ControlError)

func (h errorHandler) HandleError(err *errors.ControlError) { h(err) }

func (h errorHandler) HandlePanic(*errors.PanicError) {}
