package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Lighting for the mesh program.
var (
	lightDir     = mgl32.Vec3{0.4, 1.0, 0.6}
	ambientLight = float32(0.55)
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type meshBuffer struct {
	vao, vbo uint32
	count    int32
}

type Renderer struct {
	// Lit mesh program.
	meshProg  uint32
	uMVP      int32
	uModel    int32
	uColor    int32
	uLightDir int32
	uAmbient  int32
	meshes    [2]meshBuffer
	viewProj  mgl32.Mat4
	fbW, fbH  int

	// Point sprite program.
	spriteProg  uint32
	spriteVAO   uint32
	spriteVBO   uint32
	spUViewProj int32
	spUFbHeight int32

	// HUD quads and glyphs.
	hudProg uint32
	hudVAO  uint32
	hudVBO  uint32
	hudURes int32
	textBuf []float32

	// Reusable render buffers to avoid per-frame heap allocations.
	spriteBuf []float32
}

func uniform(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func NewRenderer() (*Renderer, error) {
	meshProg, err := linkProgram(meshVertSrc, meshFragSrc)
	if err != nil {
		return nil, fmt.Errorf("mesh program: %w", err)
	}
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		gl.DeleteProgram(meshProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	hudProg, err := linkProgram(hudVertSrc, hudFragSrc)
	if err != nil {
		gl.DeleteProgram(meshProg)
		gl.DeleteProgram(spriteProg)
		return nil, fmt.Errorf("hud program: %w", err)
	}

	r := &Renderer{
		meshProg:   meshProg,
		spriteProg: spriteProg,
		hudProg:    hudProg,
	}

	// Static meshes: position (vec3) + normal (vec3).
	r.meshes[MeshBox] = uploadMesh(boxMesh())
	r.meshes[MeshCylinder] = uploadMesh(cylinderMesh(CylinderSegments))

	gl.UseProgram(meshProg)
	r.uMVP = uniform(meshProg, "uMVP")
	r.uModel = uniform(meshProg, "uModel")
	r.uColor = uniform(meshProg, "uColor")
	r.uLightDir = uniform(meshProg, "uLightDir")
	r.uAmbient = uniform(meshProg, "uAmbient")
	gl.Uniform3f(r.uLightDir, lightDir.X(), lightDir.Y(), lightDir.Z())
	gl.Uniform1f(r.uAmbient, ambientLight)

	// Sprite VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 8 floats (x, y, z, size, r, g, b, a).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxParticleRender*int(stride), nil, gl.STREAM_DRAW)
	// aWorldPos (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(3*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(spriteProg)
	r.spUViewProj = uniform(spriteProg, "uViewProj")
	r.spUFbHeight = uniform(spriteProg, "uFbHeight")

	// HUD VAO/VBO: screen-space triangles, 6 floats per vertex (x, y, r, g, b, a).
	var hVAO, hVBO uint32
	gl.GenVertexArrays(1, &hVAO)
	gl.GenBuffers(1, &hVBO)
	gl.BindVertexArray(hVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, hVBO)
	hudStride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, hudStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, hudStride, glOffset(2*4))
	r.hudVAO = hVAO
	r.hudVBO = hVBO

	gl.UseProgram(hudProg)
	r.hudURes = uniform(hudProg, "uResolution")

	gl.BindVertexArray(0)
	return r, nil
}

func uploadMesh(verts []float32) meshBuffer {
	var m meshBuffer
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(&verts[0]), gl.STATIC_DRAW)

	stride := int32(meshStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	m.count = int32(len(verts) / meshStride)
	return m
}

func (r *Renderer) Destroy() {
	vbos := []uint32{r.spriteVBO, r.hudVBO}
	vaos := []uint32{r.spriteVAO, r.hudVAO}
	for _, m := range r.meshes {
		vbos = append(vbos, m.vbo)
		vaos = append(vaos, m.vao)
	}
	for _, id := range vbos {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range vaos {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.meshProg, r.spriteProg, r.hudProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// BeginFrame clears to the sky colour and caches the camera matrices.
func (r *Renderer) BeginFrame(cam *Camera, fbW, fbH int) {
	r.fbW, r.fbH = fbW, fbH
	r.viewProj = cam.ViewProj(fbW, fbH)

	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	sr, sg, sb := Palette.Sky.F32()
	gl.ClearColor(sr, sg, sb, 1)
	gl.Enable(gl.DEPTH_TEST)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawMesh draws one lit mesh with the given model matrix.
func (r *Renderer) DrawMesh(kind MeshKind, model mgl32.Mat4, col RGB) {
	m := r.meshes[kind]
	mvp := r.viewProj.Mul4(model)

	gl.UseProgram(r.meshProg)
	gl.BindVertexArray(m.vao)
	gl.UniformMatrix4fv(r.uMVP, 1, false, &mvp[0])
	gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
	cr, cg, cb := col.F32()
	gl.Uniform3f(r.uColor, cr, cg, cb)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
}
