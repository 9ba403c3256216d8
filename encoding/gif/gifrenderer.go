// Package gif renders played games as animated GIFs, one frame per move.
package gif

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/gorgonia/reversi/game"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

var regular *truetype.Font

const (
	dpi             = 144.0
	fontsize        = 12.0
	lineheight      = 1.2
	dummyLongString = `Move 60: White@pass, Winner: White`

	// final frames linger for 3 seconds
	finalDelay = 300
)

func init() {
	var err error
	if regular, err = truetype.Parse(gomono.TTF); err != nil {
		panic(err)
	}
}

var globPalette = color.Palette{
	color.Gray{0},
	color.Gray{253},
}

// Encoder draws every state it is given into a frame. The animation is written to Writer on Flush.
type Encoder struct {
	H, W int
	font.Drawer

	out *gif.GIF
	io.Writer
	face font.Face

	maxH, maxW  int // maxHeight and maxWidth
	padH, padW  int // padding so everything don't start at the topleft
	initialized bool
}

// NewGifEncoder with height and width
func NewGifEncoder(h, w int) *Encoder {
	return &Encoder{
		H:    -1,
		W:    -1,
		maxH: h,
		maxW: w,
		padH: 10,
		padW: 10,

		Drawer: font.Drawer{
			Src: image.Black,
		},
		out: &gif.GIF{LoopCount: -1},
	}
}

// Frames returns the number of frames drawn so far.
func (enc *Encoder) Frames() int { return len(enc.out.Image) }

// Encode draws the current position of a game.
func (enc *Encoder) Encode(ms game.MetaState) error {
	g := ms.State()
	if g == nil {
		return errors.New("Nothing to encode")
	}
	var buf bytes.Buffer
	game.FormatBoard(&buf, g.Board())
	repr := strings.TrimRight(buf.String(), "\n")
	dy := int(math.Ceil(fontsize * lineheight * dpi / 72))

	if !enc.initialized {
		enc.face = truetype.NewFace(regular, &truetype.Options{
			Size:    fontsize,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
		enc.Drawer.Src = image.Black
		enc.Drawer.Face = enc.face

		splits := strings.Split(repr, "\n")
		maxW := maxInt(font.MeasureString(enc.Face, splits[0]).Ceil(), font.MeasureString(enc.Face, dummyLongString).Ceil())
		w := maxW + 2*enc.padW
		h := (len(splits)+4)*dy + 2*enc.padH // game name, move, winner and one spare line

		w = minInt(w, enc.maxW)
		h = minInt(h, enc.maxH)

		if w == enc.maxW {
			enc.padW = 0
		}
		if h == enc.maxH {
			enc.padH = 0
		}

		enc.H = h
		enc.W = w
		enc.initialized = true
	}

	im := image.NewPaletted(image.Rect(0, 0, enc.W, enc.H), globPalette)
	draw.Draw(im, im.Bounds(), image.White, image.Point{}, draw.Src)
	enc.Dst = im

	y := enc.padH + dy
	line := func(s string) {
		enc.Dot = fixed.P(enc.padW, y)
		enc.DrawString(s)
		y += dy
	}
	for _, s := range strings.Split(repr, "\n") {
		line(s)
	}
	line(ms.Name())
	if last := ms.LastMove(); game.IsValid(last.Player) {
		line(fmt.Sprintf("Move %d: %v", ms.MoveNumber(), last))
	} else {
		line(fmt.Sprintf("Move %d", ms.MoveNumber()))
	}

	var delay int
	if ended, winner := game.Ended(g); ended {
		delay = finalDelay
		if game.IsValid(winner) {
			line(fmt.Sprintf("Winner: %v", winner))
		} else {
			line("Draw")
		}
	}
	enc.out.Image = append(enc.out.Image, im)
	enc.out.Delay = append(enc.out.Delay, delay)
	return nil
}

// Flush writes the gif into the writer
func (enc *Encoder) Flush() error {
	if enc.Writer == nil {
		return errors.New("No writer to flush to")
	}
	if len(enc.out.Image) == 0 {
		return errors.New("No frames to flush")
	}
	return errors.Wrap(gif.EncodeAll(enc.Writer, enc.out), "Unable to encode gif")
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
