package gfx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Shader is a linked GPU program.
type Shader interface {
	Name() string
	Bind()
	Unbind()
	SetInt(name string, v int32)
	SetIntArray(name string, values []int32)
	SetFloat(name string, v float32)
	SetFloat2(name string, v mgl32.Vec2)
	SetFloat3(name string, v mgl32.Vec3)
	SetFloat4(name string, v mgl32.Vec4)
	SetMat4(name string, m mgl32.Mat4)
	Delete()
}

type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
)

func (s ShaderStage) String() string {
	if s == StageVertex {
		return "vertex"
	}
	return "fragment"
}

func stageFromString(s string) (ShaderStage, error) {
	switch s {
	case "vertex":
		return StageVertex, nil
	case "fragment", "pixel":
		return StageFragment, nil
	}
	return 0, fmt.Errorf("gfx: unknown shader type %q", s)
}

const typeToken = "#type"

// PreprocessShader splits a combined source on "#type <stage>" lines.
// Blank lines and lines before the first marker are dropped.
func PreprocessShader(source string) (map[ShaderStage]string, error) {
	out := make(map[ShaderStage]string, 2)
	var (
		cur     ShaderStage
		parsing bool
		b       strings.Builder
	)
	commit := func() {
		if parsing {
			out[cur] = b.String()
			b.Reset()
		}
	}
	for _, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, typeToken) {
			commit()
			stage, err := stageFromString(strings.TrimSpace(trimmed[len(typeToken):]))
			if err != nil {
				return nil, err
			}
			if _, dup := out[stage]; dup {
				return nil, fmt.Errorf("gfx: duplicate %s shader section", stage)
			}
			cur, parsing = stage, true
			continue
		}
		if parsing {
			b.WriteString(strings.TrimRight(line, "\r"))
			b.WriteByte('\n')
		}
	}
	commit()
	if len(out) == 0 {
		return nil, fmt.Errorf("gfx: shader source has no %s sections", typeToken)
	}
	return out, nil
}

// ShaderLibrary maps names to compiled shaders.
type ShaderLibrary struct {
	shaders map[string]Shader
}

func NewShaderLibrary() *ShaderLibrary {
	return &ShaderLibrary{shaders: make(map[string]Shader)}
}

// Add registers s under name, or under s.Name() when name is empty.
func (l *ShaderLibrary) Add(name string, s Shader) error {
	if name == "" {
		name = s.Name()
	}
	if l.Exists(name) {
		return fmt.Errorf("gfx: shader %q already exists", name)
	}
	l.shaders[name] = s
	return nil
}

// Load compiles the shader file at path and registers it. An empty name uses
// the file name without extension.
func (l *ShaderLibrary) Load(api API, name, path string) (Shader, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gfx: load shader %q: %w", path, err)
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	s, err := api.NewShader(name, string(src))
	if err != nil {
		return nil, err
	}
	if err := l.Add(name, s); err != nil {
		s.Delete()
		return nil, err
	}
	return s, nil
}

func (l *ShaderLibrary) Get(name string) (Shader, error) {
	s, ok := l.shaders[name]
	if !ok {
		return nil, fmt.Errorf("gfx: shader %q not found", name)
	}
	return s, nil
}

func (l *ShaderLibrary) Exists(name string) bool {
	_, ok := l.shaders[name]
	return ok
}

// Delete releases every shader and empties the library.
func (l *ShaderLibrary) Delete() {
	for name, s := range l.shaders {
		s.Delete()
		delete(l.shaders, name)
	}
}
