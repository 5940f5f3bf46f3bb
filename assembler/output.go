package assembler

import "io"

// flushMargin is the headroom kept free for the longest possible line.
const flushMargin = 256

// MinBufferSize is the smallest accepted output buffer.
const MinBufferSize = 512

// outBuffer collects emitted bytes and hands them to the sink in chunks.
// Offsets keep counting across flushes.
type outBuffer struct {
	buf      []byte
	capacity int
	flushed  int
	sink     io.Writer
}

func newOutBuffer(capacity int) *outBuffer {
	return &outBuffer{buf: make([]byte, 0, capacity), capacity: capacity}
}

// reset empties the buffer for a new pass. A nil sink discards output.
func (o *outBuffer) reset(sink io.Writer) {
	o.buf = o.buf[:0]
	o.flushed = 0
	o.sink = sink
}

// Offset returns the number of bytes emitted so far.
func (o *outBuffer) Offset() int {
	return o.flushed + len(o.buf)
}

func (o *outBuffer) write(b ...byte) {
	o.buf = append(o.buf, b...)
}

// mark returns the buffer position; since returns what was emitted after it.
// Both only make sense within one line, as flushes happen between lines.
func (o *outBuffer) mark() int {
	return len(o.buf)
}

func (o *outBuffer) since(mark int) []byte {
	if mark > len(o.buf) {
		return nil
	}
	return o.buf[mark:]
}

// maybeFlush flushes once the buffer is within flushMargin of capacity.
func (o *outBuffer) maybeFlush() error {
	if len(o.buf) < o.capacity-flushMargin {
		return nil
	}
	return o.flush()
}

func (o *outBuffer) flush() error {
	if o.sink != nil && len(o.buf) > 0 {
		if _, err := o.sink.Write(o.buf); err != nil {
			return err
		}
	}
	o.flushed += len(o.buf)
	o.buf = o.buf[:0]
	return nil
}
