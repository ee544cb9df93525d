package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove2d/engine/gfx"
	"github.com/hubastard/grove2d/engine/logging"
)

type Shader struct {
	name      string
	program   uint32
	locations map[string]int32
}

// NewShader compiles a combined "#type vertex" / "#type fragment" source.
func (a *API) NewShader(name, source string) (gfx.Shader, error) {
	stages, err := gfx.PreprocessShader(source)
	if err != nil {
		return nil, fmt.Errorf("glbackend: shader %q: %w", name, err)
	}
	vsSrc, ok := stages[gfx.StageVertex]
	if !ok {
		return nil, fmt.Errorf("glbackend: shader %q: missing vertex stage", name)
	}
	fsSrc, ok := stages[gfx.StageFragment]
	if !ok {
		return nil, fmt.Errorf("glbackend: shader %q: missing fragment stage", name)
	}
	prog, err := makeProgram(vsSrc+"\x00", fsSrc+"\x00")
	if err != nil {
		logging.Logger().Error("shader build failed", "shader", name, "err", err)
		return nil, fmt.Errorf("glbackend: shader %q: %w", name, err)
	}
	return &Shader{name: name, program: prog, locations: make(map[string]int32)}, nil
}

func (s *Shader) Name() string { return s.name }
func (s *Shader) Bind()        { gl.UseProgram(s.program) }
func (s *Shader) Unbind()      { gl.UseProgram(0) }

func (s *Shader) location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.program, gl.Str(name+"\x00"))
	if loc < 0 {
		logging.Logger().Debug("uniform not found", "shader", s.name, "uniform", name)
	}
	s.locations[name] = loc
	return loc
}

func (s *Shader) SetInt(name string, v int32) { gl.Uniform1i(s.location(name), v) }

func (s *Shader) SetIntArray(name string, values []int32) {
	if len(values) == 0 {
		return
	}
	gl.Uniform1iv(s.location(name), int32(len(values)), &values[0])
}

func (s *Shader) SetFloat(name string, v float32) { gl.Uniform1f(s.location(name), v) }

func (s *Shader) SetFloat2(name string, v mgl32.Vec2) {
	gl.Uniform2f(s.location(name), v[0], v[1])
}

func (s *Shader) SetFloat3(name string, v mgl32.Vec3) {
	gl.Uniform3f(s.location(name), v[0], v[1], v[2])
}

func (s *Shader) SetFloat4(name string, v mgl32.Vec4) {
	gl.Uniform4f(s.location(name), v[0], v[1], v[2], v[3])
}

func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &m[0])
}

func (s *Shader) Delete() {
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DetachShader(prog, vs)
	gl.DetachShader(prog, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}
