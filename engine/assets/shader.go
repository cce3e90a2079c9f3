package assets

import (
	"fmt"
	"os"
)

// LoadShader reads a GLSL stage. An empty path yields an empty source so
// callers can substitute their default stage.
func LoadShader(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", path, err)
	}
	return string(b), nil
}
