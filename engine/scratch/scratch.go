// Package scratch is a reusable byte arena for per-frame strings, such as
// overlay text, built without going through fmt.
package scratch

import (
	"strconv"
	"unicode/utf8"
	"unsafe"
)

// Buffer is single-threaded. Reset it once per frame; views taken from it
// are valid only until the next Reset.
type Buffer struct {
	buf []byte
}

// New returns a buffer with room for capacity bytes (1 KiB if <= 0).
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Reset clears the contents and keeps the memory.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

func (b *Buffer) Len() int { return len(b.buf) }
func (b *Buffer) Cap() int { return cap(b.buf) }

// Mark returns the current end; pass it to View after appending a line.
func (b *Buffer) Mark() int { return len(b.buf) }

// View returns the bytes appended since mark as a string sharing the buffer.
//
// Appending may grow the buffer, which leaves earlier views pointing at the
// old backing array. They stay readable but no longer alias the buffer.
func (b *Buffer) View(mark int) string {
	if mark >= len(b.buf) {
		return ""
	}
	return unsafe.String(&b.buf[mark], len(b.buf)-mark)
}

// String copies the whole contents.
func (b *Buffer) String() string { return string(b.buf) }

func (b *Buffer) S(s string) *Buffer {
	b.buf = append(b.buf, s...)
	return b
}

func (b *Buffer) C(c byte) *Buffer {
	b.buf = append(b.buf, c)
	return b
}

func (b *Buffer) R(r rune) *Buffer {
	b.buf = utf8.AppendRune(b.buf, r)
	return b
}

// I appends a base-10 integer.
func (b *Buffer) I(v int) *Buffer {
	b.buf = strconv.AppendInt(b.buf, int64(v), 10)
	return b
}

func (b *Buffer) U(v uint64) *Buffer {
	b.buf = strconv.AppendUint(b.buf, v, 10)
	return b
}

// F appends v with prec digits after the decimal point.
func (b *Buffer) F(v float64, prec int) *Buffer {
	b.buf = strconv.AppendFloat(b.buf, v, 'f', prec, 64)
	return b
}

// Pad appends n copies of c.
func (b *Buffer) Pad(n int, c byte) *Buffer {
	for ; n > 0; n-- {
		b.buf = append(b.buf, c)
	}
	return b
}
