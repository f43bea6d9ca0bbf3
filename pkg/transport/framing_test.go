package transport

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewFrameWriter(&buf)
	r := NewFrameReader(&buf)

	payload := []byte{0xa1, 0x01, 0x01}
	require.NoError(t, w.WriteFrame(payload))

	got, err := r.ReadFrame()
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	// Buffer drained: next read hits EOF.
	_, err = r.ReadFrame()
	assert.Equal(t, io.EOF, err)
}

func TestWriteFrame_RejectsEmpty(t *testing.T) {
	w := NewFrameWriter(&bytes.Buffer{})
	assert.ErrorIs(t, w.WriteFrame(nil), ErrMessageEmpty)
}

func TestWriteFrame_RejectsTooLarge(t *testing.T) {
	w := NewFrameWriterWithMaxSize(&bytes.Buffer{}, 8)
	assert.ErrorIs(t, w.WriteFrame(make([]byte, 9)), ErrMessageTooLarge)
}

func TestReadFrame_RejectsTooLarge(t *testing.T) {
	var buf bytes.Buffer
	w := NewFrameWriter(&buf)
	require.NoError(t, w.WriteFrame(make([]byte, 64)))

	r := NewFrameReaderWithMaxSize(&buf, 8)
	_, err := r.ReadFrame()
	assert.ErrorIs(t, err, ErrMessageTooLarge)
}

func TestReadFrame_Truncated(t *testing.T) {
	var buf bytes.Buffer
	w := NewFrameWriter(&buf)
	require.NoError(t, w.WriteFrame(make([]byte, 16)))

	// Cut the stream mid-payload.
	data := buf.Bytes()[:LengthPrefixSize+8]
	r := NewFrameReader(bytes.NewReader(data))

	_, err := r.ReadFrame()
	assert.ErrorIs(t, err, ErrFrameTruncated)
}

func TestFramer_Bidirectional(t *testing.T) {
	var buf bytes.Buffer
	f := NewFramer(&buf)

	require.NoError(t, f.WriteFrame([]byte("abc")))
	got, err := f.ReadFrame()
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

func TestFrameSize(t *testing.T) {
	assert.Equal(t, LengthPrefixSize+10, FrameSize(10))
}
