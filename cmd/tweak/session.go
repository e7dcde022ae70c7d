package main

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	"github.com/go-drift/tweak/cmd/tweak/internal/config"
	"github.com/go-drift/tweak/pkg/color"
	"github.com/go-drift/tweak/pkg/controller"
	"github.com/go-drift/tweak/pkg/dom"
	"github.com/go-drift/tweak/pkg/format"
	"github.com/go-drift/tweak/pkg/rendering"
	"github.com/go-drift/tweak/pkg/value"
	"github.com/go-drift/tweak/pkg/view"
)

const (
	stripHeight = 12
	gap         = 4
	labelHeight = 16
)

// session holds one slider/text control and one color picker rendered to
// raster canvases.
type session struct {
	title   string
	number  *value.Value[float64]
	color   *value.Value[color.Color]
	slider  *controller.SliderText
	picker  *controller.ColorPicker
	rasters map[*dom.Element]*rendering.RasterCanvas
}

func newSession(cfg *config.Resolved) *session {
	s := &session{
		title:   cfg.Title,
		number:  value.New(cfg.Number.Value),
		color:   value.New(cfg.Color),
		rasters: make(map[*dom.Element]*rendering.RasterCanvas),
	}
	doc := dom.NewDocument(s.provide)

	s.slider = controller.NewSliderText(doc, controller.SliderTextConfig{
		Formatter: format.NumberFormatter{Digits: cfg.Number.Digits},
		Parser:    format.NumberParser{},
		Value:     s.number,
		Min:       cfg.Number.Min,
		Max:       cfg.Number.Max,
		Step:      cfg.Number.Step,
	})
	s.picker = controller.NewColorPicker(doc, controller.ColorPickerConfig{
		Value:       s.color,
		PaletteSize: cfg.Width,
		StripHeight: stripHeight,
	})
	return s
}

func (s *session) provide(c *dom.Canvas) (rendering.Canvas, bool) {
	surface, ok := dom.RasterSurfaces(c)
	if ok {
		s.rasters[c.Element] = surface.(*rendering.RasterCanvas)
	}
	return surface, ok
}

// apply writes a reloaded config's values into the shared values. The
// controls' ranges and sizes stay as built.
func (s *session) apply(cfg *config.Resolved) {
	s.title = cfg.Title
	s.number.Set(cfg.Number.Value)
	s.color.Set(cfg.Color)
}

func (s *session) close() {
	s.slider.Dispose()
	s.picker.Dispose()
}

func (s *session) text(root *dom.Element, class string) string {
	if el := root.Find(class); el != nil {
		return el.Text()
	}
	return ""
}

func (s *session) style(root *dom.Element, class, prop string) string {
	if el := root.Find(class); el != nil {
		return el.Style(prop)
	}
	return ""
}

// writeSummary prints the state every control currently shows.
func (s *session) writeSummary(w io.Writer) {
	sliderRoot, pickerRoot := s.slider.Element(), s.picker.Element()
	fmt.Fprintf(w, "%s\n", s.title)
	fmt.Fprintf(w, "  value   %s (knob %s)\n",
		s.text(sliderRoot, "tw-txtv_i"), s.style(sliderRoot, "tw-sldv_k", "width"))
	fmt.Fprintf(w, "  color   %s %s (alpha %g)\n",
		s.text(pickerRoot, "tw-coltxtv_i"),
		format.ColorRGBFormatter{}.Format(s.color.RawValue()),
		s.color.RawValue().Alpha())
	fmt.Fprintf(w, "  marker  left %s top %s, hue %s\n",
		s.style(pickerRoot, "tw-svpv_m", "left"),
		s.style(pickerRoot, "tw-svpv_m", "top"),
		s.style(pickerRoot, "tw-hplv_m", "left"))
}

// writeTree prints both control trees as JSON.
func (s *session) writeTree(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode([]dom.Node{s.slider.Element().Snapshot(), s.picker.Element().Snapshot()})
}

// composite stacks the palette, the hue strip and a label into one image and
// marks the current color on both.
func (s *session) composite() (*rendering.RasterCanvas, error) {
	root := s.picker.Element()
	sv := s.rasters[root.Find("tw-svpv_c")]
	hue := s.rasters[root.Find("tw-hplv_c")]
	if sv == nil || hue == nil {
		return nil, fmt.Errorf("palette canvases have no raster surface")
	}

	svImg, hueImg := sv.Image(), hue.Image()
	w := svImg.Bounds().Dx()
	h := svImg.Bounds().Dy()
	out := rendering.NewRasterCanvas(w, h+gap+hueImg.Bounds().Dy()+labelHeight)
	out.Clear(rendering.ColorWhite)

	dst := out.Image()
	draw.Draw(dst, image.Rect(0, 0, w, h), svImg, image.Point{}, draw.Src)
	hueTop := h + gap
	draw.Draw(dst, image.Rect(0, hueTop, w, hueTop+hueImg.Bounds().Dy()), hueImg, image.Point{}, draw.Src)

	left, _ := view.ParsePercent(s.style(root, "tw-svpv_m", "left"))
	top, _ := view.ParsePercent(s.style(root, "tw-svpv_m", "top"))
	mark := rendering.Offset{X: left / 100 * float64(w-1), Y: top / 100 * float64(h-1)}
	// Dark half of the palette gets a light marker.
	markColor := rendering.ColorBlack
	if top > 50 {
		markColor = rendering.ColorWhite
	}
	out.DrawRect(rendering.RectFromLTWH(mark.X-3, mark.Y-3, 7, 7), rendering.StrokePaint(markColor, 1))

	hueLeft, _ := view.ParsePercent(s.style(root, "tw-hplv_m", "left"))
	hx := hueLeft / 100 * float64(w-1)
	out.DrawRect(rendering.RectFromLTWH(hx-1, float64(hueTop), 3, float64(hueImg.Bounds().Dy())), rendering.StrokePaint(rendering.ColorBlack, 1))

	label := s.text(root, "tw-coltxtv_i") + " " + s.text(s.slider.Element(), "tw-txtv_i")
	out.DrawText(label, rendering.Offset{X: 2, Y: float64(hueTop + hueImg.Bounds().Dy() + 2)}, rendering.ColorBlack)
	return out, nil
}

// writePNG encodes the composite image to path.
func (s *session) writePNG(path string) error {
	img, err := s.composite()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img.Image()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

// commit delivers text to the input carrying class as if the user typed it
// and pressed enter.
func (s *session) commit(root *dom.Element, class, text string) {
	if el := root.Find(class); el != nil {
		el.SetText(text)
		el.Dispatch(dom.Event{Type: dom.EventChange, Text: text})
	}
}
