package game

import "github.com/go-gl/gl/v4.1-core/gl"

// DrawSprites renders world-space point sprites.
// buf format: [x, y, z, size, r, g, b, a] * N (8 floats per sprite).
// additive: true = glow blend, false = standard alpha blend.
func (r *Renderer) DrawSprites(buf []float32, additive bool) {
	if len(buf) == 0 {
		return
	}

	count := len(buf) / 8
	if count > MaxParticleRender {
		count = MaxParticleRender
	}

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.UniformMatrix4fv(r.spUViewProj, 1, false, &r.viewProj[0])
	gl.Uniform1f(r.spUFbHeight, float32(r.fbH))

	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.BLEND)
	gl.DepthMask(false)
	if additive {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}
