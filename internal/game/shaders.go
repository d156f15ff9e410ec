package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh vertex shader: position + normal, one model matrix per draw.
const meshVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;

uniform mat4 uMVP;
uniform mat4 uModel;

out vec3 vNormal;

void main() {
    gl_Position = uMVP * vec4(aPos, 1.0);
    vNormal = mat3(uModel) * aNormal;
}
` + "\x00"

// Mesh fragment shader: flat colour with a single directional light.
const meshFragSrc = `#version 410 core

uniform vec3 uColor;
uniform vec3 uLightDir;
uniform float uAmbient;

in vec3 vNormal;
out vec4 FragColor;

void main() {
    float diffuse = max(dot(normalize(vNormal), normalize(uLightDir)), 0.0);
    float light = uAmbient + (1.0 - uAmbient) * diffuse;
    FragColor = vec4(uColor * light, 1.0);
}
` + "\x00"

// Sprite vertex shader: world-space point sprites, size in world units.
const spriteVertSrc = `#version 410 core

layout(location = 0) in vec3 aWorldPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;

uniform mat4 uViewProj;
uniform float uFbHeight;

out vec4 vColor;

void main() {
    vec4 clip = uViewProj * vec4(aWorldPos, 1.0);
    gl_Position = clip;
    gl_PointSize = max(1.0, aSize * uFbHeight / max(clip.w, 0.001));
    vColor = aColor;
}
` + "\x00"

// Sprite fragment shader: round soft-edged dots.
const spriteFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    vec2 d = gl_PointCoord - vec2(0.5);
    float r = length(d) * 2.0;
    if (r > 1.0) discard;
    float edge = 1.0 - smoothstep(0.7, 1.0, r);
    FragColor = vec4(vColor.rgb, vColor.a * edge);
}
` + "\x00"

// HUD vertex shader: screen-space pixels, origin top-left.
const hudVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec4 aColor;

uniform vec2 uResolution;

out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vColor = aColor;
}
` + "\x00"

const hudFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
` + "\x00"

// infoLog reads a shader or program log of logLen bytes.
func infoLog(id uint32, logLen int32, read func(uint32, int32, *int32, *uint8)) string {
	buf := make([]byte, logLen+1)
	read(id, logLen, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var ok, n int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &ok)
	if ok != gl.FALSE {
		return shader, nil
	}
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
	msg := infoLog(shader, n, gl.GetShaderInfoLog)
	gl.DeleteShader(shader)
	return 0, fmt.Errorf("compile shader: %s", msg)
}

// linkProgram compiles both stages and links them. The shader objects are
// released whether or not linking succeeds.
func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)

	var ok, n int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &ok)
	if ok != gl.FALSE {
		return program, nil
	}
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
	msg := infoLog(program, n, gl.GetProgramInfoLog)
	gl.DeleteProgram(program)
	return 0, fmt.Errorf("link program: %s", msg)
}
