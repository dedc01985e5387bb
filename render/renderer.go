// Package render draws the swipe deck onto a tcell screen.
//
// The card is drawn into its own buffer at rest and composited onto the
// screen with the live transform: translation becomes a column offset,
// rotation a per-row shear and card opacity a fade toward the background.
// Photos use upper half blocks so every cell carries two pixel rows.
package render

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"swipedeck/card"
	"swipedeck/constant"
	"swipedeck/profile"
	"swipedeck/vmath"
)

// Scene is everything drawn in one frame
type Scene struct {
	Profile    profile.Profile
	HasProfile bool
	Photo      *image.NRGBA // Scaled to Photo.W x Photo.H*2 pixels
	ImageIndex int
	Visual     card.Visual
	Filter     string
	Active     Control // Highlighted while pressed

	Match    profile.Profile
	HasMatch bool

	Status string
	Stats  string
}

// Renderer composes scenes through a reusable buffer
type Renderer struct {
	cellW, cellH float64
	buf          *Buffer
	cardBuf      *Buffer
}

// NewRenderer creates a renderer for the given cell pixel size
func NewRenderer(cellW, cellH float64) *Renderer {
	return &Renderer{
		cellW:   cellW,
		cellH:   cellH,
		buf:     NewBuffer(0, 0, RgbBackground),
		cardBuf: NewBuffer(0, 0, RgbBackground),
	}
}

// Layout computes the layout for a screen size
func (r *Renderer) Layout(w, h int) Layout {
	return Compute(w, h, r.cellW, r.cellH)
}

// PhotoSize returns the pixel size a photo must be scaled to for l
func PhotoSize(l Layout) (int, int) {
	return l.Photo.W, l.Photo.H * 2
}

// Buffer exposes the last composed frame
func (r *Renderer) Buffer() *Buffer {
	return r.buf
}

// Draw composes s and shows it on screen
func (r *Renderer) Draw(screen tcell.Screen, l Layout, s Scene) {
	r.Compose(l, s)
	r.buf.Flush(screen)
	screen.Show()
}

// Compose draws s into the internal buffer
func (r *Renderer) Compose(l Layout, s Scene) {
	r.buf.Resize(l.Width, l.Height)

	if s.HasProfile {
		r.drawCard(l, s)
	} else {
		r.buf.TextCentered(Box{X: 0, W: l.Width}, l.Height/2, "No profiles", RgbTextDim, false)
	}
	r.drawControls(l, s)
	r.drawStatus(l, s)
	if s.HasMatch {
		r.drawMatch(l, s)
	}
}

// === Card ===

func (r *Renderer) drawCard(l Layout, s Scene) {
	cb := r.cardBuf
	cb.Resize(l.Card.W, l.Card.H)

	photo := Box{W: l.Photo.W, H: l.Photo.H}
	r.drawPhoto(cb, photo, s.Photo)
	if s.Profile.ImageCount() == 0 {
		cb.TextCentered(photo, photo.H/2, "no photo", RgbTextDim, false)
	}
	drawDots(cb, photo, s.ImageIndex, s.Profile.ImageCount())
	drawStamp(cb, photo, s.Visual.Overlay)
	drawInfo(cb, Box{Y: l.Photo.H, W: l.Info.W, H: l.Info.H}, s.Profile)

	v := s.Visual
	shift := r.shear(v, l.Card.H)
	r.buf.Composite(cb, l.Card.X, l.Card.Y, shift, vmath.Clamp(v.Opacity, 0, 1))
}

// shear maps the transform to a column offset per card row
// Rotation pivots on the card centre, positive degrees lean the top to the right
func (r *Renderer) shear(v card.Visual, rows int) func(int) int {
	sin := math.Sin(vmath.DegToRad(v.RotationDeg))
	mid := float64(rows) / 2
	return func(row int) int {
		yPx := (float64(row) + 0.5 - mid) * r.cellH
		px := v.TranslateX - yPx*sin
		return int(math.Round(px / r.cellW))
	}
}

// drawPhoto renders img with upper half blocks, top pixel as foreground
func (r *Renderer) drawPhoto(b *Buffer, box Box, img *image.NRGBA) {
	if img == nil {
		b.Fill(box, RgbCardBg)
		return
	}
	bounds := img.Bounds()
	for y := 0; y < box.H; y++ {
		for x := 0; x < box.W; x++ {
			top := pixel(img, bounds.Min.X+x, bounds.Min.Y+2*y)
			bottom := pixel(img, bounds.Min.X+x, bounds.Min.Y+2*y+1)
			b.Set(box.X+x, box.Y+y, constant.UpperHalf, top, bottom)
		}
	}
}

func pixel(img *image.NRGBA, x, y int) RGB {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return RgbCardBg
	}
	c := img.NRGBAAt(x, y)
	return Blend(RgbCardBg, RGB{c.R, c.G, c.B}, float64(c.A)/255)
}

// drawDots renders the image progress indicator on the first photo row
func drawDots(b *Buffer, box Box, index, count int) {
	if count <= 1 {
		return
	}
	w := count*2 - 1
	x := box.X + (box.W-w)/2
	for i := range count {
		r, fg := constant.DotInactive, RgbDotInactive
		if i == index {
			r, fg = constant.DotActive, RgbDotActive
		}
		b.SetFg(x+i*2, box.Y, r, fg, false)
	}
}

// drawStamp renders the LIKE/NOPE label blended over the photo by its opacity
func drawStamp(b *Buffer, box Box, o card.Overlay) {
	if o.Label == card.LabelNone || o.Opacity <= 0 {
		return
	}
	text := " " + o.Label.String() + " "
	w := runewidth.StringWidth(text) + 2
	stamp := Box{X: box.X + (box.W-w)/2, Y: box.Y + max(box.H/5, 1), W: w, H: 3}
	accent := Hex(o.Label.Color())

	for y := stamp.Y; y < stamp.Y+stamp.H; y++ {
		for x := stamp.X; x < stamp.X+stamp.W; x++ {
			b.Dim(x, y, RgbBlack, 0.35*o.Opacity)
		}
	}
	// Border and text fade in over whatever is underneath
	fade := func(x, y int) RGB { return Blend(b.At(x, y).Bg, accent, o.Opacity) }
	b.Frame(stamp, accent)
	for y := stamp.Y; y < stamp.Y+stamp.H; y++ {
		for x := stamp.X; x < stamp.X+stamp.W; x++ {
			c := b.At(x, y)
			if c.Rune != ' ' && c.Rune != constant.UpperHalf {
				b.SetFg(x, y, c.Rune, fade(x, y), false)
			}
		}
	}
	tx := stamp.X + 1
	for _, r := range text {
		b.SetFg(tx, stamp.Y+1, r, fade(tx, stamp.Y+1), true)
		tx += runewidth.RuneWidth(r)
	}
}

// drawInfo renders name, age, intent and a wrapped bio
func drawInfo(b *Buffer, box Box, p profile.Profile) {
	b.Fill(box, RgbCardBg)
	inner := Box{X: box.X + 1, Y: box.Y, W: max(box.W-2, 1), H: box.H}

	title := p.Name
	if p.Age > 0 {
		title = fmt.Sprintf("%s, %d", p.Name, p.Age)
	}
	b.Text(inner.X, inner.Y, runewidth.Truncate(title, inner.W, "…"), RgbText, true)
	if p.Intent != "" {
		b.Text(inner.X, inner.Y+1, runewidth.Truncate("♡ "+p.Intent, inner.W, "…"), RgbLike, false)
	}
	for i, line := range wrap(p.Bio, inner.W, inner.H-2) {
		b.Text(inner.X, inner.Y+2+i, line, RgbTextDim, false)
	}
}

// wrap breaks s into at most lines rows of width columns, the last truncated
func wrap(s string, width, lines int) []string {
	if lines <= 0 || width <= 0 {
		return nil
	}
	var out []string
	var cur strings.Builder
	words := strings.Fields(s)
	for i, word := range words {
		next := word
		if cur.Len() > 0 {
			next = cur.String() + " " + word
		}
		if runewidth.StringWidth(next) <= width {
			cur.Reset()
			cur.WriteString(next)
			continue
		}
		if len(out) == lines-1 {
			rest := strings.Join(append([]string{cur.String()}, words[i:]...), " ")
			return append(out, runewidth.Truncate(strings.TrimSpace(rest), width, "…"))
		}
		if cur.Len() > 0 {
			out = append(out, cur.String())
		}
		cur.Reset()
		cur.WriteString(runewidth.Truncate(word, width, "…"))
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

// === Chrome ===

func (r *Renderer) drawControls(l Layout, s Scene) {
	for _, cb := range l.Controls {
		accent := cb.Control.Color()
		label := cb.Control.Glyph()
		if cb.Control == ControlFilter {
			f := s.Filter
			if f == "" {
				f = "All"
			}
			label = label + " " + f
			if cb.Control == s.Active {
				r.buf.Fill(cb.Box, Blend(RgbBackground, accent, 0.3))
			}
			r.buf.TextCentered(cb.Box, cb.Box.Y, label, accent, false)
			continue
		}
		if cb.Control == s.Active {
			r.buf.Fill(cb.Box, Blend(RgbBackground, accent, 0.3))
		}
		r.buf.Frame(cb.Box, accent)
		r.buf.TextCentered(cb.Box, cb.Box.Y+cb.Box.H/2, label, accent, true)
	}
}

func (r *Renderer) drawStatus(l Layout, s Scene) {
	r.buf.Fill(l.Status, RgbStatusBg)
	stats := runewidth.Truncate(s.Stats, l.Status.W, "")
	sw := runewidth.StringWidth(stats)
	msg := runewidth.Truncate(s.Status, max(l.Status.W-sw-2, 0), "…")
	r.buf.Text(l.Status.X+1, l.Status.Y, msg, RgbStatusText, false)
	r.buf.Text(l.Status.X+l.Status.W-sw, l.Status.Y, stats, RgbStatusText, false)
}

// drawMatch dims the screen and draws the match dialog on top
func (r *Renderer) drawMatch(l Layout, s Scene) {
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			r.buf.Dim(x, y, RgbBlack, 0.8)
		}
	}

	d := l.Dialog
	r.buf.Fill(d, RgbBackground)
	for x := d.X; x < d.X+d.W; x++ {
		t := 0.0
		if d.W > 1 {
			t = float64(x-d.X) / float64(d.W-1)
		}
		g := Gradient(RgbMatchFrom, RgbMatchTo, t)
		r.buf.SetFg(x, d.Y, '─', g, false)
		r.buf.SetFg(x, d.Y+d.H-1, '─', g, false)
	}

	title := "IT'S A MATCH!"
	tw := runewidth.StringWidth(title)
	tx := d.X + (d.W-tw)/2
	for i, ch := range []rune(title) {
		t := 0.0
		if tw > 1 {
			t = float64(i) / float64(tw-1)
		}
		r.buf.SetFg(tx+i, d.Y+2, ch, Gradient(RgbMatchFrom, RgbMatchTo, t), true)
	}
	r.buf.TextCentered(d, d.Y+4, fmt.Sprintf("You and %s liked each other.", s.Match.Name), RgbText, false)

	r.buf.Fill(l.SendMessage, RgbMatchFrom)
	r.buf.TextCentered(l.SendMessage, l.SendMessage.Y, "➤ "+DialogSendMessage.String(), RgbWhite, true)
	r.buf.TextCentered(l.KeepSwiping, l.KeepSwiping.Y, DialogKeepSwiping.String(), RgbWhite, false)
	r.buf.SetFg(l.KeepSwiping.X, l.KeepSwiping.Y, '[', RgbWhite, false)
	r.buf.SetFg(l.KeepSwiping.X+l.KeepSwiping.W-1, l.KeepSwiping.Y, ']', RgbWhite, false)
}
