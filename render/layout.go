package render

import (
	"github.com/mattn/go-runewidth"

	"swipedeck/constant"
	"swipedeck/gesture"
)

// Box is a cell rectangle
type Box struct {
	X, Y, W, H int
}

// Contains reports whether cell x, y lies inside the box
func (b Box) Contains(x, y int) bool {
	return x >= b.X && y >= b.Y && x < b.X+b.W && y < b.Y+b.H
}

// Pixels converts the box to pixel space for the gesture classifier
func (b Box) Pixels(cellW, cellH float64) gesture.Rect {
	return gesture.Rect{
		X: float64(b.X) * cellW,
		Y: float64(b.Y) * cellH,
		W: float64(b.W) * cellW,
		H: float64(b.H) * cellH,
	}
}

// Control is an on-screen button that swallows gestures released over it
type Control uint8

const (
	ControlNone Control = iota
	ControlDislike
	ControlArchive
	ControlLike
	ControlFavorite
	ControlComment
	ControlFilter
)

// actionControls are the row under the card, left to right
var actionControls = []Control{ControlDislike, ControlArchive, ControlLike, ControlFavorite, ControlComment}

// String returns human-readable control name
func (c Control) String() string {
	switch c {
	case ControlDislike:
		return "Dislike"
	case ControlArchive:
		return "Archive"
	case ControlLike:
		return "Like"
	case ControlFavorite:
		return "Favorite"
	case ControlComment:
		return "Comment"
	case ControlFilter:
		return "Filter"
	default:
		return "None"
	}
}

// Glyph returns the button face
func (c Control) Glyph() string {
	switch c {
	case ControlDislike:
		return "✕"
	case ControlArchive:
		return "▣"
	case ControlLike:
		return "♥"
	case ControlFavorite:
		return "★"
	case ControlComment:
		return "✎"
	case ControlFilter:
		return "☰"
	default:
		return ""
	}
}

// Color returns the button accent
func (c Control) Color() RGB {
	switch c {
	case ControlDislike:
		return RgbDislike
	case ControlArchive:
		return RgbArchive
	case ControlLike:
		return RgbLike
	case ControlFavorite:
		return RgbFavorite
	case ControlComment:
		return RgbComment
	case ControlFilter:
		return RgbFilter
	default:
		return RgbText
	}
}

// ControlBox is a control and where it is drawn
type ControlBox struct {
	Control Control
	Box     Box
}

// DialogButton is a match dialog choice
type DialogButton uint8

const (
	DialogNone DialogButton = iota
	DialogSendMessage
	DialogKeepSwiping
)

// String returns the button label
func (d DialogButton) String() string {
	switch d {
	case DialogSendMessage:
		return "Send message"
	case DialogKeepSwiping:
		return "Keep swiping"
	default:
		return ""
	}
}

// Layout places every element for one screen size
type Layout struct {
	Width, Height int

	Card     Box // Untransformed card region: photo then info block
	Photo    Box
	Info     Box
	Controls []ControlBox // Action row and filter control
	Status   Box

	Dialog      Box
	SendMessage Box
	KeepSwiping Box
}

// filterWidth is the filter control width in the top row
const filterWidth = 16

// Compute lays out a w x h screen
// The photo keeps a three by four pixel aspect, shrinking to fit short terminals
func Compute(w, h int, cellW, cellH float64) Layout {
	l := Layout{Width: w, Height: h}

	cols := min(constant.CardMaxWidth, max(w-2, 1))
	photoRows := photoRowsFor(cols, cellW, cellH)
	avail := h - 1 - constant.ControlRowHeight - constant.StatusBarHeight - constant.InfoBlockHeight
	if photoRows > avail {
		photoRows = max(avail, 1)
		cols = min(cols, max(int(float64(photoRows)*cellH*3/(4*cellW)), constant.CardMinWidth))
	}

	x0 := max((w-cols)/2, 0)
	l.Photo = Box{X: x0, Y: 1, W: cols, H: photoRows}
	l.Info = Box{X: x0, Y: 1 + photoRows, W: cols, H: constant.InfoBlockHeight}
	l.Card = Box{X: x0, Y: 1, W: cols, H: photoRows + constant.InfoBlockHeight}

	row := l.Card.Y + l.Card.H
	slot := max(cols/len(actionControls), 3)
	for i, c := range actionControls {
		l.Controls = append(l.Controls, ControlBox{
			Control: c,
			Box:     Box{X: x0 + i*slot, Y: row, W: slot, H: constant.ControlRowHeight},
		})
	}
	fw := min(filterWidth, w)
	l.Controls = append(l.Controls, ControlBox{
		Control: ControlFilter,
		Box:     Box{X: w - fw, Y: 0, W: fw, H: 1},
	})

	l.Status = Box{X: 0, Y: h - constant.StatusBarHeight, W: w, H: constant.StatusBarHeight}

	dw, dh := min(44, w), min(11, h)
	l.Dialog = Box{X: (w - dw) / 2, Y: (h - dh) / 2, W: dw, H: dh}
	bw := min(runewidth.StringWidth(DialogKeepSwiping.String())+6, max(dw-4, 1))
	bx := l.Dialog.X + (dw-bw)/2
	l.SendMessage = Box{X: bx, Y: l.Dialog.Y + dh - 5, W: bw, H: 1}
	l.KeepSwiping = Box{X: bx, Y: l.Dialog.Y + dh - 3, W: bw, H: 1}
	return l
}

func photoRowsFor(cols int, cellW, cellH float64) int {
	px := float64(cols) * cellW * 4 / 3
	return max(int(px/cellH), 1)
}

// ControlAt returns the control under cell x, y
func (l Layout) ControlAt(x, y int) (Control, bool) {
	for _, c := range l.Controls {
		if c.Box.Contains(x, y) {
			return c.Control, true
		}
	}
	return ControlNone, false
}

// DialogButtonAt returns the match dialog button under cell x, y
func (l Layout) DialogButtonAt(x, y int) (DialogButton, bool) {
	switch {
	case l.SendMessage.Contains(x, y):
		return DialogSendMessage, true
	case l.KeepSwiping.Contains(x, y):
		return DialogKeepSwiping, true
	}
	return DialogNone, false
}

// BoxOf returns where c is drawn
func (l Layout) BoxOf(c Control) (Box, bool) {
	for _, cb := range l.Controls {
		if cb.Control == c {
			return cb.Box, true
		}
	}
	return Box{}, false
}
