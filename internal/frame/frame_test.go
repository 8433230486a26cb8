package frame

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, []byte(`{"type":0}`)))

	got, err := ReadFrame(bufio.NewReader(&buf))
	require.NoError(t, err)
	assert.Equal(t, `{"type":0}`, string(got))
}

func TestReadFrameMultiChunk(t *testing.T) {
	input := "\n#3\nabc\n#3\ndef\n##\n"
	got, err := ReadFrame(bufio.NewReader(bytes.NewReader([]byte(input))))
	require.NoError(t, err)
	assert.Equal(t, "abcdef", string(got))
}

func TestReadFrameMissingLeadingHash(t *testing.T) {
	_, err := ReadFrame(bufio.NewReader(bytes.NewReader([]byte("not a frame"))))
	assert.Error(t, err)
}

func TestReadFrameLengthTooWide(t *testing.T) {
	_, err := ReadFrame(bufio.NewReader(bytes.NewReader([]byte("\n#12345678901\n"))))
	assert.Error(t, err)
}

func TestReadFrameShortRead(t *testing.T) {
	_, err := ReadFrame(bufio.NewReader(bytes.NewReader([]byte("\n#10\nabc"))))
	assert.Error(t, err)
}

func TestReadFrameEmptyIsEOF(t *testing.T) {
	_, err := ReadFrame(bufio.NewReader(bytes.NewReader(nil)))
	assert.Error(t, err)
}
