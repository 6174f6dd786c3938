package generator_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/w-h-a/rdbrain/generator"
)

type scriptedStream struct {
	chunks []string
	err    error
	next   int
	closed bool
}

func (s *scriptedStream) Recv() (string, error) {
	if s.next >= len(s.chunks) {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	chunk := s.chunks[s.next]
	s.next++
	return chunk, nil
}

func (s *scriptedStream) Close() error {
	s.closed = true
	return nil
}

func TestDrainAccumulatesAndObserves(t *testing.T) {
	stream := &scriptedStream{chunks: []string{"Hel", "", "lo ", "world"}}

	var observed []string
	text, err := generator.Drain(stream, func(chunk string) {
		observed = append(observed, chunk)
	})
	require.NoError(t, err)

	assert.Equal(t, "Hello world", text)
	// Empty deltas are skipped.
	assert.Equal(t, []string{"Hel", "lo ", "world"}, observed)
	assert.True(t, stream.closed)
}

func TestDrainNilObserver(t *testing.T) {
	stream := &scriptedStream{chunks: []string{"ok"}}

	text, err := generator.Drain(stream, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestDrainPropagatesStreamError(t *testing.T) {
	stream := &scriptedStream{chunks: []string{"partial"}, err: errors.New("connection reset")}

	_, err := generator.Drain(stream, nil)
	assert.Error(t, err)
	assert.True(t, stream.closed)
}
