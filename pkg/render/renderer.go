// Package render composes finished images from parsed instructions.
//
// For each instruction the renderer resolves a background (or synthesizes a
// white canvas), draws dialogue bubbles or a caption panel in a fixed order
// (panel fill, border, glyphs), flattens the result over opaque white, and
// hands it to the injected writer. Backgrounds, fonts, and the writer are
// injected so the drawing logic has no filesystem or platform dependence.
package render

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/siragigame02/novel-image-generator/pkg/errors"
	"github.com/siragigame02/novel-image-generator/pkg/layout"
	"github.com/siragigame02/novel-image-generator/pkg/script"
	"github.com/siragigame02/novel-image-generator/pkg/style"
)

// borderWidth is the stroke width of dialogue bubble borders.
const borderWidth = 2

// Renderer draws one instruction at a time onto a fixed-size canvas.
type Renderer struct {
	Width  int
	Height int

	Backgrounds BackgroundResolver
	Fonts       FontResolver
	Writer      Writer
	Logger      *log.Logger

	calc *layout.Calculator
}

// New creates a renderer for the given canvas size. Nil resolvers default to
// no backgrounds and system fonts; a nil writer discards output.
func New(width, height int, backgrounds BackgroundResolver, fonts FontResolver, writer Writer, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.Default()
	}
	if backgrounds == nil {
		backgrounds = NoBackgrounds{}
	}
	if fonts == nil {
		fonts = NewSystemFonts(logger)
	}
	if writer == nil {
		writer = discardWriter{}
	}
	return &Renderer{
		Width:       width,
		Height:      height,
		Backgrounds: backgrounds,
		Fonts:       fonts,
		Writer:      writer,
		Logger:      logger,
		calc:        layout.NewCalculator(width, height),
	}
}

// Render draws one instruction and writes the result under its sequenced
// file name. It returns an error for the instruction without affecting any
// other; the caller decides whether to continue.
func (r *Renderer) Render(inst script.Instruction, s style.Settings, index int) error {
	var dc *gg.Context

	switch inst.Kind {
	case script.ImageOnly:
		// An image-only scene without its background has nothing to show.
		bg, err := r.Backgrounds.Resolve(inst.Scene)
		if err != nil {
			return err
		}
		dc = r.canvas(bg)

	case script.ImageWithSerifs:
		dc = r.canvas(r.optionalBackground(inst.Scene))
		if err := r.drawSerifs(dc, inst.Serifs, s); err != nil {
			return err
		}

	case script.Narration:
		dc = r.canvas(r.optionalBackground(inst.Scene))
		if err := r.drawNarration(dc, inst.Caption, s); err != nil {
			return err
		}

	default:
		return errors.New(errors.ErrCodeUnsupported, "unknown instruction kind %d", inst.Kind)
	}

	name := OutputFilename(SanitizeBaseName(s.BaseName), index, s.OutputFormat)
	if err := r.Writer.Write(name, flatten(dc.Image())); err != nil {
		return err
	}

	r.Logger.Debugf("wrote %s (scene %q, %s)", name, inst.Scene, inst.Kind)
	return nil
}

// canvas returns a white canvas with the background drawn over it, resized
// to the output dimensions with Lanczos resampling. A nil background leaves
// the canvas white.
func (r *Renderer) canvas(bg image.Image) *gg.Context {
	dc := gg.NewContext(r.Width, r.Height)
	dc.SetColor(color.White)
	dc.Clear()
	if bg != nil {
		dc.DrawImage(imaging.Resize(bg, r.Width, r.Height, imaging.Lanczos), 0, 0)
	}
	return dc
}

// optionalBackground resolves a scene background, degrading to nil (white
// canvas) with a warning when it is missing.
func (r *Renderer) optionalBackground(scene string) image.Image {
	bg, err := r.Backgrounds.Resolve(scene)
	if err != nil {
		if scene != "" {
			r.Logger.Warnf("scene %q: %v; using white background", scene, err)
		}
		return nil
	}
	return bg
}

// drawSerifs lays out every non-empty serif, resolves bubble overlaps, and
// draws each bubble: fill, border, then glyphs with vertical substitution.
func (r *Renderer) drawSerifs(dc *gg.Context, serifs []script.Serif, s style.Settings) error {
	bgColor, err := style.ParseHexAlpha(s.SerifBGColor, s.SerifBGAlpha)
	if err != nil {
		return err
	}
	borderColor, err := style.ParseHex(s.SerifBorderColor)
	if err != nil {
		return err
	}
	textColor, err := style.ParseHex(s.SerifFontColor)
	if err != nil {
		return err
	}

	var bubbles []layout.Bubble
	for _, serif := range serifs {
		if strings.TrimSpace(serif.Text) == "" {
			continue
		}
		bubbles = append(bubbles, r.calc.SerifBubble(serif.Text, s.FontSize, s.SerifMaxChars, serif.Slot))
	}
	bubbles = r.calc.ResolveOverlaps(bubbles)

	face := r.Fonts.Resolve(s.SerifFontPath, s.FontSize)
	dc.SetFontFace(face)
	ascent := faceAscent(face)

	for _, b := range bubbles {
		dc.SetColor(bgColor)
		dc.DrawRoundedRectangle(float64(b.X), float64(b.Y), float64(b.Width), float64(b.Height), layout.BubbleRadius)
		dc.Fill()

		dc.SetColor(borderColor)
		dc.SetLineWidth(borderWidth)
		dc.DrawRoundedRectangle(float64(b.X), float64(b.Y), float64(b.Width), float64(b.Height), layout.BubbleRadius)
		dc.Stroke()

		dc.SetColor(textColor)
		for _, p := range layout.Positions(b.Block, b.TextX, b.TextY) {
			dc.DrawString(string(verticalGlyph(p.Char)), float64(p.X), float64(p.Y+ascent))
		}
	}
	return nil
}

// drawNarration alpha-blends the caption panel onto the canvas and draws the
// wrapped lines at the alignment-resolved origin.
func (r *Renderer) drawNarration(dc *gg.Context, caption string, s style.Settings) error {
	bgColor, err := style.ParseHexAlpha(s.NarrationBGColor, s.NarrationBGAlpha)
	if err != nil {
		return err
	}
	textColor, err := style.ParseHex(s.FontColor)
	if err != nil {
		return err
	}
	align, err := layout.ParseAlignment(s.NarrationTextAlign)
	if err != nil {
		return err
	}
	orient, err := layout.ParseOrientation(s.NarrationOrientation)
	if err != nil {
		return err
	}

	panel := r.calc.NarrationPanel(caption, s.FontSize, s.NarrationMaxChars, align, orient)

	dc.SetColor(bgColor)
	dc.DrawRectangle(float64(panel.X), float64(panel.Y), float64(panel.Width), float64(panel.Height))
	dc.Fill()

	face := r.Fonts.Resolve(s.FontPath, s.FontSize)
	dc.SetFontFace(face)
	ascent := faceAscent(face)
	dc.SetColor(textColor)

	if orient == layout.Vertical {
		for _, p := range layout.Positions(panel.Block, panel.TextX, panel.TextY) {
			dc.DrawString(string(verticalGlyph(p.Char)), float64(p.X), float64(p.Y+ascent))
		}
		return nil
	}

	y := panel.TextY
	for _, line := range panel.Block.Lines {
		if strings.TrimSpace(line) != "" {
			dc.DrawString(line, float64(panel.TextX), float64(y+ascent))
		}
		y += panel.Block.LineHeight
	}
	return nil
}

// flatten composites the canvas over opaque white so the written file never
// carries an alpha channel.
func flatten(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	white := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	return imaging.Overlay(white, img, image.Pt(0, 0), 1.0)
}

// faceAscent converts the face's ascent to whole pixels. Glyph positions
// address the top-left of the character cell; DrawString wants a baseline.
func faceAscent(f font.Face) int {
	return f.Metrics().Ascent.Ceil()
}

// discardWriter drops output. Used when no writer is injected (dry runs).
type discardWriter struct{}

func (discardWriter) Write(string, image.Image) error { return nil }
