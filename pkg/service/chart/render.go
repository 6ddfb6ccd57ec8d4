package chart

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/treeboard/pkg/domain/model"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 640
	DefaultHeight = 480

	paddingTop    = 60
	paddingBottom = 70
	paddingLeft   = 80
	paddingRight  = 20

	maxBarWidth = 80
	yTickCount  = 5

	titleFontSize = 14
	labelFontSize = 10
	noDataLabel   = "No data"
)

var (
	axisColor = drawing.ColorFromHex("666666")
	gridColor = drawing.ColorFromHex("e5e5e5")
	textColor = drawing.ColorFromHex("333333")
)

type options struct {
	width  int
	height int
}

// Option configures rendering
type Option func(*options)

// WithSize sets the chart size in pixels. Non-positive values keep the default.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// Segment is one health category of a bar, in pixel coordinates
type Segment struct {
	Health model.Health
	Value  float64
	Box    gochart.Box
}

// Bar is the stacked bar of one steward category
type Bar struct {
	Steward  model.Steward
	Segments []Segment
}

// Tick is a labelled position on the y axis
type Tick struct {
	Value float64
	Label string
	Y     int
}

// Plot is the pixel layout of a figure. Values are stacked as they are, so a
// count bar is as tall as its tree total relative to the tallest bar.
type Plot struct {
	Width  int
	Height int
	Area   gochart.Box
	Title  string
	XTitle string
	YTitle string
	YMax   float64
	YTicks []Tick
	Bars   []Bar
}

// NewPlot lays out fig as a stacked bar chart: one bar per steward, stacked in
// health order from the bottom.
func NewPlot(fig *model.Figure, opts ...Option) *Plot {
	o := options{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&o)
	}

	p := &Plot{
		Width:  o.width,
		Height: o.height,
		Area: gochart.Box{
			Top:    paddingTop,
			Left:   paddingLeft,
			Right:  o.width - paddingRight,
			Bottom: o.height - paddingBottom,
		},
		Title:  fig.Layout.Title,
		XTitle: fig.Layout.XAxisTitle,
		YTitle: fig.Layout.YAxisTitle,
	}

	stewards := fig.Stewards()
	var maxTotal float64
	for _, steward := range stewards {
		var total float64
		for _, health := range model.HealthLevels() {
			if v, ok := fig.Value(steward, health); ok {
				total += v
			}
		}
		maxTotal = math.Max(maxTotal, total)
	}

	step := niceStep(maxTotal, yTickCount)
	// Proportion totals may land a rounding error above 1
	p.YMax = step * math.Ceil(maxTotal/step-1e-9)
	if p.YMax <= 0 {
		p.YMax = step * yTickCount
	}
	decimals := int(math.Max(0, -math.Floor(math.Log10(step))))
	for i := 0; float64(i)*step <= p.YMax+step/2; i++ {
		v := float64(i) * step
		p.YTicks = append(p.YTicks, Tick{
			Value: v,
			Label: strconv.FormatFloat(v, 'f', decimals, 64),
			Y:     p.y(v),
		})
	}

	if len(stewards) == 0 {
		return p
	}

	slot := p.Area.Width() / len(stewards)
	barWidth := min(slot*3/5, maxBarWidth)
	for i, steward := range stewards {
		left := p.Area.Left + slot*i + (slot-barWidth)/2
		bar := Bar{Steward: steward}

		var cum float64
		for _, health := range model.HealthLevels() {
			v, ok := fig.Value(steward, health)
			if !ok {
				continue
			}
			bar.Segments = append(bar.Segments, Segment{
				Health: health,
				Value:  v,
				Box: gochart.Box{
					Left:   left,
					Right:  left + barWidth,
					Top:    p.y(cum + v),
					Bottom: p.y(cum),
				},
			})
			cum += v
		}
		p.Bars = append(p.Bars, bar)
	}

	return p
}

// y converts a value to a pixel row inside the plot area
func (p *Plot) y(v float64) int {
	return p.Area.Bottom - int(math.Round(v/p.YMax*float64(p.Area.Height())))
}

// niceStep returns a tick step of 1, 2 or 5 times a power of ten so that about
// n steps cover limit
func niceStep(limit float64, n int) float64 {
	if limit <= 0 {
		return 0.2
	}
	raw := limit / float64(n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch norm := raw / mag; {
	case norm <= 1:
		return mag
	case norm <= 2:
		return 2 * mag
	case norm <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// RenderSVG writes fig as a stacked bar chart in SVG format: one bar per steward,
// stacked in health order and coloured by health category.
func RenderSVG(w io.Writer, fig *model.Figure, opts ...Option) error {
	if fig == nil {
		return goerr.New("figure is nil")
	}

	p := NewPlot(fig, opts...)
	r, err := gochart.SVG(p.Width, p.Height)
	if err != nil {
		return goerr.Wrap(err, "failed to create SVG renderer")
	}
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return goerr.Wrap(err, "failed to load chart font")
	}
	r.SetFont(font)

	fillRect(r, gochart.Box{Right: p.Width, Bottom: p.Height}, drawing.ColorWhite)
	p.drawYAxis(r)
	p.drawBars(r)
	p.drawXAxis(r)
	p.drawTitles(r)

	if len(p.Bars) == 0 {
		drawText(r, noDataLabel, labelFontSize+2, centerX(r, noDataLabel, labelFontSize+2, p.Area), (p.Area.Top+p.Area.Bottom)/2)
	}

	if err := r.Save(w); err != nil {
		return goerr.Wrap(err, "failed to render chart",
			goerr.V("view", fig.View),
			goerr.V("bars", len(p.Bars)))
	}
	return nil
}

func (p *Plot) drawYAxis(r gochart.Renderer) {
	for _, tick := range p.YTicks {
		if tick.Value > 0 {
			drawLine(r, p.Area.Left, tick.Y, p.Area.Right, tick.Y, gridColor)
		}
		r.SetFontSize(labelFontSize)
		tb := r.MeasureText(tick.Label)
		drawText(r, tick.Label, labelFontSize, p.Area.Left-8-tb.Width(), tick.Y+tb.Height()/2)
	}
	drawLine(r, p.Area.Left, p.Area.Top, p.Area.Left, p.Area.Bottom, axisColor)
}

func (p *Plot) drawBars(r gochart.Renderer) {
	for _, bar := range p.Bars {
		for _, seg := range bar.Segments {
			fillRect(r, seg.Box, drawing.ColorFromHex(strings.TrimPrefix(seg.Health.Color(), "#")))
		}
	}
}

func (p *Plot) drawXAxis(r gochart.Renderer) {
	drawLine(r, p.Area.Left, p.Area.Bottom, p.Area.Right, p.Area.Bottom, axisColor)
	for _, bar := range p.Bars {
		if len(bar.Segments) == 0 {
			continue
		}
		box := bar.Segments[0].Box
		label := bar.Steward.String()
		drawText(r, label, labelFontSize, centerX(r, label, labelFontSize, box), p.Area.Bottom+18)
	}
}

func (p *Plot) drawTitles(r gochart.Renderer) {
	page := gochart.Box{Right: p.Width, Bottom: p.Height}
	drawText(r, p.Title, titleFontSize, centerX(r, p.Title, titleFontSize, page), paddingTop/2)
	drawText(r, p.XTitle, labelFontSize+1, centerX(r, p.XTitle, labelFontSize+1, p.Area), p.Height-paddingBottom/3)

	r.SetFontSize(labelFontSize + 1)
	tb := r.MeasureText(p.YTitle)
	r.SetTextRotation(gochart.DegreesToRadians(270))
	drawText(r, p.YTitle, labelFontSize+1, 20, (p.Area.Top+p.Area.Bottom)/2+tb.Width()/2)
	r.ClearTextRotation()
}

func centerX(r gochart.Renderer, text string, size float64, within gochart.Box) int {
	r.SetFontSize(size)
	tb := r.MeasureText(text)
	return within.Left + (within.Width()-tb.Width())/2
}

func fillRect(r gochart.Renderer, b gochart.Box, color drawing.Color) {
	r.SetFillColor(color)
	r.SetStrokeColor(color)
	r.SetStrokeWidth(1)
	r.MoveTo(b.Left, b.Top)
	r.LineTo(b.Right, b.Top)
	r.LineTo(b.Right, b.Bottom)
	r.LineTo(b.Left, b.Bottom)
	r.LineTo(b.Left, b.Top)
	r.Close()
	r.FillStroke()
}

func drawLine(r gochart.Renderer, x0, y0, x1, y1 int, color drawing.Color) {
	r.SetStrokeColor(color)
	r.SetStrokeWidth(1)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y1)
	r.Stroke()
}

func drawText(r gochart.Renderer, text string, size float64, x, y int) {
	r.SetFontSize(size)
	r.SetFontColor(textColor)
	r.Text(text, x, y)
}
