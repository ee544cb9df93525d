//go:build profile

package profiler

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionWritesTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.json")

	Start("before session")()

	BeginSession("test", path)
	BeginSession("ignored", filepath.Join(t.TempDir(), "other.json"))
	end := Start("Renderer2D.EndScene")
	end()
	require.NoError(t, EndSession())

	Start("after session")()

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc traceFile
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, "test", doc.OtherData["session"])
	require.Len(t, doc.TraceEvents, 1)
	assert.Equal(t, "Renderer2D.EndScene", doc.TraceEvents[0].Name)
	assert.Equal(t, "X", doc.TraceEvents[0].Ph)
	assert.GreaterOrEqual(t, doc.TraceEvents[0].Dur, int64(0))
}

func TestEndSessionWithoutBegin(t *testing.T) {
	assert.NoError(t, EndSession())
}
