package network

import (
	"errors"
	"fmt"
	"io"
)

// ErrShortRead is returned when the stream ends before a frame is complete.
var ErrShortRead = errors.New("connection closed before frame was complete")

// ReadExactly reads exactly n bytes from r.
// It never consumes more than n bytes. If the stream ends first, the bytes
// collected so far are returned together with ErrShortRead; any other read
// failure is returned wrapped, also with the partial bytes.
func ReadExactly(r io.Reader, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid frame length %d", n)
	}
	buf := make([]byte, n)
	read := 0
	for read < n {
		m, err := r.Read(buf[read:])
		read += m
		if read == n {
			break
		}
		if errors.Is(err, io.EOF) {
			return buf[:read], ErrShortRead
		}
		if err != nil {
			return buf[:read], fmt.Errorf("read %d of %d bytes: %w", read, n, err)
		}
	}
	return buf, nil
}
