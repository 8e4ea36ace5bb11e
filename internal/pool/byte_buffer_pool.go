package pool

import (
	"io"
	"sync"
)

const (
	// FileBufferDefaultSize is the starting capacity of file buffers.
	FileBufferDefaultSize = 64 << 10
	// FileBufferMaxThreshold is the capacity above which a file buffer is not pooled.
	FileBufferMaxThreshold = 8 << 20
)

// ByteBuffer is a growable byte slice that can be recycled through a ByteBufferPool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
//
// Small buffers grow by FileBufferDefaultSize, larger ones by 25% of their capacity,
// whichever is at least requiredBytes.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	if cap(bb.B)-len(bb.B) >= requiredBytes {
		return
	}

	growBy := FileBufferDefaultSize
	if cap(bb.B) > 4*FileBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// ReadFrom reads from r until EOF and appends the data to the buffer.
func (bb *ByteBuffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		if cap(bb.B)-len(bb.B) < 512 {
			bb.Grow(512)
		}
		n, err := r.Read(bb.B[len(bb.B):cap(bb.B)])
		if n > 0 {
			bb.B = bb.B[:len(bb.B)+n]
			total += int64(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// WriteTo writes the buffered bytes to w. The buffer is left unchanged.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)

	return int64(n), err
}

// ByteBufferPool recycles ByteBuffers used to hold whole dataset and report files.
//
// A buffer that grew past maxThreshold is not returned to the pool. A maxThreshold
// of 0 keeps every buffer.
type ByteBufferPool struct {
	buffers      sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose new buffers start with defaultSize bytes of capacity.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	p := &ByteBufferPool{maxThreshold: maxThreshold}
	p.buffers.New = func() any { return NewByteBuffer(defaultSize) }

	return p
}

// Get returns an empty buffer.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.buffers.Get().(*ByteBuffer)
	return bb
}

// Put resets bb and makes it available to Get. Nil and oversized buffers are dropped.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	switch {
	case bb == nil:
		return
	case p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold:
		return
	}

	bb.Reset()
	p.buffers.Put(bb)
}

var files = NewByteBufferPool(FileBufferDefaultSize, FileBufferMaxThreshold)

// GetFileBuffer returns an empty buffer for reading or encoding one file.
func GetFileBuffer() *ByteBuffer {
	return files.Get()
}

// PutFileBuffer releases a buffer obtained from GetFileBuffer.
// The caller must not keep references to its bytes.
func PutFileBuffer(bb *ByteBuffer) {
	files.Put(bb)
}
