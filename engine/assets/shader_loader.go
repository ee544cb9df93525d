package assets

import (
	"fmt"
	"os"
)

// LoadShader reads a combined "#type" GLSL file. Backends add the NUL
// terminator themselves.
func LoadShader(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", path, err)
	}
	if len(b) == 0 {
		return "", fmt.Errorf("load shader %q: empty file", path)
	}
	return string(b), nil
}
