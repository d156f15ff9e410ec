package game

import "github.com/go-gl/gl/v4.1-core/gl"

// quad queues a solid rectangle in screen pixel space.
func (r *Renderer) quad(x, y, w, h float32, col RGB, alpha float32) {
	cr, cg, cb := col.F32()
	// Two triangles: TL, TR, BL then TR, BR, BL.
	r.textBuf = append(r.textBuf,
		x, y, cr, cg, cb, alpha,
		x+w, y, cr, cg, cb, alpha,
		x, y+h, cr, cg, cb, alpha,
		x+w, y, cr, cg, cb, alpha,
		x+w, y+h, cr, cg, cb, alpha,
		x, y+h, cr, cg, cb, alpha,
	)
}

// DrawRect queues a translucent panel.
func (r *Renderer) DrawRect(x, y, w, h int, col RGB, alpha float32) {
	r.quad(float32(x), float32(y), float32(w), float32(h), col, alpha)
}

// DrawChar queues a single character, one quad per lit glyph pixel.
func (r *Renderer) DrawChar(ch rune, sx, sy, scale float32, col RGB, alpha float32) {
	g, ok := Glyph(ch)
	if !ok {
		return
	}
	for y := 0; y < GlyphH; y++ {
		for x := 0; x < GlyphW; x++ {
			if glyphPixel(g, x, y) {
				r.quad(sx+float32(x)*scale, sy+float32(y)*scale, scale, scale, col, alpha)
			}
		}
	}
}

// DrawString queues a string at screen pixel position (sx, sy) with given scale.
func (r *Renderer) DrawString(text string, sx, sy int, scale float32, col RGB) {
	r.DrawStringAlpha(text, sx, sy, scale, col, 1)
}

func (r *Renderer) DrawStringAlpha(text string, sx, sy int, scale float32, col RGB, alpha float32) {
	advance := float32(GlyphAdvance) * scale
	lineAdvance := float32(LineAdvance) * scale
	baseX := float32(sx)
	x := float32(sx)
	y := float32(sy)
	for _, ch := range text {
		if ch == '\n' {
			x = baseX
			y += lineAdvance
			continue
		}
		r.DrawChar(ch, x, y, scale, col, alpha)
		x += advance
	}
}

// FlushText draws all buffered HUD quads and clears the buffer.
func (r *Renderer) FlushText(fbW, fbH int) {
	if len(r.textBuf) == 0 {
		return
	}

	gl.UseProgram(r.hudProg)
	gl.BindVertexArray(r.hudVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.hudVBO)

	gl.Uniform2f(r.hudURes, float32(fbW), float32(fbH))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.textBuf) / 6
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
	r.textBuf = r.textBuf[:0]
}
