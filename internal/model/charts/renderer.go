// Package charts draws expense charts as PNG images.
package charts

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"max.ks1230/expense-tracker/internal/entity/record"
)

var ErrNoData = errors.New("no expenses to visualize")

const (
	width  = 800
	height = 600
	margin = 60
)

var palette = []color.NRGBA{
	{R: 0x1F, G: 0x77, B: 0xB4, A: 0xFF},
	{R: 0xFF, G: 0x7F, B: 0x0E, A: 0xFF},
	{R: 0x2C, G: 0xA0, B: 0x2C, A: 0xFF},
	{R: 0xD6, G: 0x27, B: 0x28, A: 0xFF},
	{R: 0x94, G: 0x67, B: 0xBD, A: 0xFF},
	{R: 0x8C, G: 0x56, B: 0x4B, A: 0xFF},
	{R: 0xE3, G: 0x77, B: 0xC2, A: 0xFF},
	{R: 0x7F, G: 0x7F, B: 0x7F, A: 0xFF},
	{R: 0xBC, G: 0xBD, B: 0x22, A: 0xFF},
	{R: 0x17, G: 0xBE, B: 0xCF, A: 0xFF},
}

type Renderer struct {
	font *truetype.Font
}

func NewRenderer() (*Renderer, error) {
	parsed, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse font")
	}
	return &Renderer{font: parsed}, nil
}

func (r *Renderer) face(size float64) font.Face {
	return truetype.NewFace(r.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// CategoryPie draws one slice per category labelled with its share of the total.
func (r *Renderer) CategoryPie(w io.Writer, totals []record.CategoryTotal) error {
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t.Amount)
	}
	if !sum.IsPositive() {
		return ErrNoData
	}

	dc := newCanvas()
	dc.SetFontFace(r.face(24))
	dc.SetColor(color.Black)
	dc.DrawStringAnchored("Expenses by Category", width/2, margin/2, 0.5, 0.5)

	cx, cy := float64(width-200)/2, float64(height+margin)/2
	radius := float64(height-2*margin) / 2
	angle := -math.Pi / 2

	labels := r.face(14)
	for i, t := range totals {
		share := t.Amount.Div(sum).InexactFloat64()
		next := angle + share*2*math.Pi

		dc.SetColor(palette[i%len(palette)])
		dc.MoveTo(cx, cy)
		dc.DrawArc(cx, cy, radius, angle, next)
		dc.ClosePath()
		dc.Fill()

		mid := (angle + next) / 2
		dc.SetFontFace(labels)
		dc.SetColor(color.White)
		dc.DrawStringAnchored(fmt.Sprintf("%.1f%%", share*100),
			cx+0.65*radius*math.Cos(mid), cy+0.65*radius*math.Sin(mid), 0.5, 0.5)

		legendY := float64(margin + 30 + i*24)
		dc.SetColor(palette[i%len(palette)])
		dc.DrawRectangle(width-190, legendY-8, 16, 16)
		dc.Fill()
		dc.SetColor(color.Black)
		dc.DrawStringAnchored(t.Category, width-166, legendY, 0, 0.5)

		angle = next
	}

	return errors.Wrap(dc.EncodePNG(w), "encode pie chart")
}

// MonthlyBars draws one bar per month, scaled to the largest month.
func (r *Renderer) MonthlyBars(w io.Writer, totals []record.MonthTotal) error {
	if len(totals) == 0 {
		return ErrNoData
	}
	top := decimal.Zero
	for _, t := range totals {
		top = decimal.Max(top, t.Amount)
	}

	dc := newCanvas()
	dc.SetFontFace(r.face(24))
	dc.SetColor(color.Black)
	dc.DrawStringAnchored("Monthly Expenses", width/2, margin/2, 0.5, 0.5)

	left, bottom := float64(margin+20), float64(height-margin-20)
	plotW, plotH := float64(width)-left-margin, bottom-margin
	dc.SetLineWidth(1)
	dc.DrawLine(left, margin, left, bottom)
	dc.DrawLine(left, bottom, left+plotW, bottom)
	dc.Stroke()

	dc.SetFontFace(r.face(12))
	dc.DrawStringAnchored(top.StringFixed(2), left-6, margin, 1, 0.5)
	dc.DrawStringAnchored("0", left-6, bottom, 1, 0.5)

	slot := plotW / float64(len(totals))
	for i, t := range totals {
		barH := 0.0
		if top.IsPositive() {
			barH = t.Amount.Div(top).InexactFloat64() * plotH
		}
		x := left + float64(i)*slot + slot*0.1

		dc.SetColor(palette[0])
		dc.DrawRectangle(x, bottom-barH, slot*0.8, barH)
		dc.Fill()

		dc.SetColor(color.Black)
		dc.Push()
		dc.RotateAbout(gg.Radians(-45), x+slot*0.4, bottom+8)
		dc.DrawStringAnchored(t.Month, x+slot*0.4, bottom+8, 1, 0.5)
		dc.Pop()
	}

	return errors.Wrap(dc.EncodePNG(w), "encode bar chart")
}

func newCanvas() *gg.Context {
	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()
	return dc
}
