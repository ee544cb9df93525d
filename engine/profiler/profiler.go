//go:build profile

package profiler

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/hubastard/grove2d/engine/logging"
)

// Enabled reports whether scopes are recorded in this build.
const Enabled = true

// traceEvent is one complete ("X") event of the Chrome trace event format.
type traceEvent struct {
	Cat  string `json:"cat"`
	Dur  int64  `json:"dur"`
	Name string `json:"name"`
	Ph   string `json:"ph"`
	PID  int    `json:"pid"`
	TID  int    `json:"tid"`
	TS   int64  `json:"ts"`
}

type traceFile struct {
	OtherData   map[string]string `json:"otherData"`
	TraceEvents []traceEvent      `json:"traceEvents"`
}

type session struct {
	name   string
	path   string
	base   time.Time
	events []traceEvent
}

var (
	mu      sync.Mutex
	current *session
)

// BeginSession starts recording scopes into a trace written to path by
// EndSession. A session already open is kept and the request is dropped.
func BeginSession(name, path string) {
	mu.Lock()
	defer mu.Unlock()
	if current != nil {
		logging.Logger().Warn("profiler session already open", "open", current.name, "requested", name)
		return
	}
	current = &session{name: name, path: path, base: time.Now(), events: make([]traceEvent, 0, 1<<12)}
}

// EndSession writes the open session as Chrome trace JSON and closes it.
func EndSession() error {
	mu.Lock()
	s := current
	current = nil
	mu.Unlock()
	if s == nil {
		return nil
	}
	return writeTrace(s)
}

// Start begins a scope and returns the func that ends it.
//
//	defer profiler.Start("Renderer2D.EndScene")()
func Start(name string) func() {
	mu.Lock()
	s := current
	mu.Unlock()
	if s == nil {
		return func() {}
	}
	begin := time.Now()
	return func() {
		end := time.Now()
		ev := traceEvent{
			Cat:  "function",
			Name: name,
			Ph:   "X",
			TS:   begin.Sub(s.base).Microseconds(),
			Dur:  end.Sub(begin).Microseconds(),
		}
		mu.Lock()
		if current == s {
			s.events = append(s.events, ev)
		}
		mu.Unlock()
	}
}

func writeTrace(s *session) error {
	doc := traceFile{
		OtherData:   map[string]string{"session": s.name},
		TraceEvents: s.events,
	}
	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("profiler: create %q: %w", tmp, err)
	}
	if err := json.NewEncoder(f).Encode(&doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("profiler: encode trace: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
