package generator

import (
	"errors"
	"io"
	"strings"
)

// Drain consumes a stream to exhaustion, invoking onChunk for every delta,
// and returns the accumulated full text. onChunk may be nil.
func Drain(stream Stream, onChunk func(chunk string)) (string, error) {
	defer stream.Close()

	var b strings.Builder
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if len(chunk) == 0 {
			continue
		}
		b.WriteString(chunk)
		if onChunk != nil {
			onChunk(chunk)
		}
	}

	return b.String(), nil
}
