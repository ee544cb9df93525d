//go:build !profile

package profiler

// Stubbed no-op versions when the "profile" build tag is not set.

const Enabled = false

func BeginSession(name, path string) {}

func EndSession() error { return nil }

func Start(name string) func() { return func() {} }
