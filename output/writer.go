package output

import (
	"fmt"
	"io"
)

// Writer wraps a file with the layout of a format. The image is streamed
// through Write; Finish appends the export table and fills in the header.
type Writer struct {
	w      io.WriteSeeker
	format Format
	size   int
}

// NewWriter writes a placeholder header when the format has one.
func NewWriter(w io.WriteSeeker, f Format) (*Writer, error) {
	ow := &Writer{w: w, format: f}
	if f.HasHeader() {
		if _, err := w.Write(make([]byte, HeaderSize)); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}
	return ow, nil
}

// Write streams image bytes.
func (ow *Writer) Write(p []byte) (int, error) {
	n, err := ow.w.Write(p)
	ow.size += n
	return n, err
}

// Size returns the image bytes written so far.
func (ow *Writer) Size() int {
	return ow.size
}

// Finish completes the file for the given entry point and exports.
func (ow *Writer) Finish(entry uint16, exports []Export) error {
	if ow.format.HasExports() {
		if _, err := ow.w.Write(ExportTable(exports)); err != nil {
			return fmt.Errorf("writing export table: %w", err)
		}
	}

	if !ow.format.HasHeader() {
		return nil
	}
	if _, err := ow.w.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seeking to header: %w", err)
	}
	if _, err := ow.w.Write(Header(ow.format, entry, uint16(ow.size), 0)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := ow.w.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seeking to end: %w", err)
	}
	return nil
}
