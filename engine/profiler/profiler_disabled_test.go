//go:build !profile

package profiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisabledIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.json")
	BeginSession("test", path)
	Start("scope")()
	assert.NoError(t, EndSession())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.False(t, Enabled)
}
