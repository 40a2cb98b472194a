package sandbox

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"sync"
)

const passCodeDigits = 6

// codeSource draws one-time transfer codes from a cryptographic entropy source
type codeSource struct {
	mu      sync.Mutex
	entropy io.Reader
}

func newCodeSource(entropy io.Reader) *codeSource {
	if entropy == nil {
		entropy = rand.Reader
	}
	return &codeSource{entropy: entropy}
}

// intn returns a uniform integer in [0, n). Values above the largest
// multiple of n are rejected so there is no modulo bias.
func (c *codeSource) intn(n uint64) (uint64, error) {
	if n == 0 {
		return 0, fmt.Errorf("n must be positive")
	}
	threshold := ^uint64(0) - (^uint64(0) % n)

	c.mu.Lock()
	defer c.mu.Unlock()

	var buf [8]byte
	for {
		if _, err := io.ReadFull(c.entropy, buf[:]); err != nil {
			return 0, fmt.Errorf("failed to read entropy: %w", err)
		}
		v := binary.BigEndian.Uint64(buf[:])
		if v < threshold {
			return v % n, nil
		}
	}
}

// passCode returns a zero-padded numeric code of passCodeDigits digits
func (c *codeSource) passCode() (string, error) {
	limit := uint64(1)
	for i := 0; i < passCodeDigits; i++ {
		limit *= 10
	}
	v, err := c.intn(limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", passCodeDigits, v), nil
}
