package tensor

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

// Ref addresses externally owned memory: a buffer plus a byte offset.
// A Ref cannot be rebound; use MutableRef for that.
type Ref struct {
	buf    []byte
	offset int
}

// NewRef creates a Ref over buf starting offset bytes in.
func NewRef(buf []byte, offset int) Ref {
	return Ref{buf: buf, offset: offset}
}

// Bytes returns the buffer starting at the offset.
func (r Ref) Bytes() []byte {
	if r.offset >= len(r.buf) {
		return nil
	}
	return r.buf[r.offset:]
}

// Buffer returns the whole referenced buffer, ignoring the offset.
func (r Ref) Buffer() []byte {
	return r.buf
}

// Offset returns the byte offset applied on top of the buffer.
func (r Ref) Offset() int {
	return r.offset
}

// MutableRef is a rebindable reference cell. Views built over the same
// MutableRef observe every Reset.
//
// The cell remembers the largest byte span and the strictest alignment of
// the views attached to it, and Reset refuses bindings that cannot serve
// all of them.
type MutableRef struct {
	cur atomic.Pointer[Ref]

	mu    sync.Mutex // serializes attach and Reset
	need  int
	align int
}

// NewMutableRef creates a MutableRef bound to buf at offset.
func NewMutableRef(buf []byte, offset int) *MutableRef {
	m := &MutableRef{align: 1}
	m.cur.Store(&Ref{buf: buf, offset: offset})
	return m
}

// Reset atomically rebinds the cell to buf at offset. It fails, keeping the
// current binding, when buf[offset:] is too short or misaligned for any view
// attached to the cell.
func (m *MutableRef) Reset(buf []byte, offset int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := checkSpan(buf, offset, m.need, m.align); err != nil {
		return err
	}
	m.cur.Store(&Ref{buf: buf, offset: offset})
	return nil
}

// Ref returns the current binding.
func (m *MutableRef) Ref() Ref {
	return *m.cur.Load()
}

// attach registers a view needing need bytes aligned to align, after checking
// that the current binding serves it.
func (m *MutableRef) attach(need, align int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur := m.cur.Load()
	if err := checkSpan(cur.buf, cur.offset, need, align); err != nil {
		return err
	}
	m.need = max(m.need, need)
	m.align = max(m.align, align)
	return nil
}

// checkSpan validates that buf[offset:] holds need bytes starting at an
// address aligned to align.
func checkSpan(buf []byte, offset, need, align int) error {
	if offset < 0 || offset%align != 0 {
		return fmt.Errorf("offset %d is not aligned to %d bytes", offset, align)
	}
	if offset+need > len(buf) {
		return fmt.Errorf("buffer of %d bytes cannot hold %d bytes at offset %d", len(buf), need, offset)
	}
	if need > 0 {
		//nolint:gosec // address inspection only
		if addr := uintptr(unsafe.Pointer(&buf[offset])); addr%uintptr(align) != 0 {
			return fmt.Errorf("address %#x is not aligned to %d bytes", addr, align)
		}
	}
	return nil
}
