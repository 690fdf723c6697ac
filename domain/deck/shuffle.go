package deck

import (
	"crypto/cipher"
	"encoding/binary"
	"math/rand/v2"
)

// streamSource adapts a kyber random stream to a math/rand source.
type streamSource struct {
	stream cipher.Stream
	buf    [8]byte
}

// NewStreamSource returns a rand.Source reading 64-bit values from stream.
// The returned source is not safe for concurrent use.
func NewStreamSource(stream cipher.Stream) rand.Source {
	return &streamSource{stream: stream}
}

func (s *streamSource) Uint64() uint64 {
	clear(s.buf[:])
	s.stream.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}
