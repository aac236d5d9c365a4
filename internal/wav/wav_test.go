package wav

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoderHeader(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, 44100, 2)
	require.NoError(t, err)

	require.NoError(t, enc.Write([]int16{0, 0, 1000, -1000}))
	require.NoError(t, enc.Close())

	out := buf.Bytes()
	require.GreaterOrEqual(t, len(out), 44+8)

	assert.Equal(t, "RIFF", string(out[0:4]))
	assert.Equal(t, "WAVE", string(out[8:12]))
	assert.Equal(t, "fmt ", string(out[12:16]))
	assert.Equal(t, "data", string(out[36:40]))

	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(out[20:22]), "PCM format tag")
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(out[22:24]), "channel count")
	assert.Equal(t, uint32(44100), binary.LittleEndian.Uint32(out[24:28]), "sample rate")
	assert.Equal(t, uint32(44100*4), binary.LittleEndian.Uint32(out[28:32]), "byte rate")
	assert.Equal(t, uint16(4), binary.LittleEndian.Uint16(out[32:34]), "block align")
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(out[34:36]), "bit depth")

	dataSize := binary.LittleEndian.Uint32(out[40:44])
	assert.Equal(t, uint32(8), dataSize)
	assert.Equal(t, uint32(36+8), binary.LittleEndian.Uint32(out[4:8]), "RIFF size")
	assert.Len(t, out, 44+8)
}

func TestEncoderSampleData(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, 8000, 1)
	require.NoError(t, err)

	samples := []int16{0, 32767, -32768, 42}
	require.NoError(t, enc.Write(samples))
	assert.Equal(t, 4, enc.SampleCount())
	require.NoError(t, enc.Close())

	out := buf.Bytes()[44:]
	for i, want := range samples {
		got := int16(binary.LittleEndian.Uint16(out[i*2 : i*2+2]))
		assert.Equal(t, want, got, "sample %d", i)
	}
}

func TestEncoderStereoFrames(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, 8000, 2)
	require.NoError(t, err)

	require.NoError(t, enc.WriteStereo([][2]int16{{1, -1}, {2, -2}}))
	assert.Equal(t, 4, enc.SampleCount())

	assert.Error(t, enc.Write([]int16{7}), "odd stereo write must fail")
	require.NoError(t, enc.Close())
}

func TestEncoderValidation(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewEncoder(&buf, 0, 1)
	assert.Error(t, err)
	_, err = NewEncoder(&buf, 44100, 5)
	assert.Error(t, err)

	mono, err := NewEncoder(&buf, 44100, 1)
	require.NoError(t, err)
	assert.Error(t, mono.WriteStereo([][2]int16{{0, 0}}))

	require.NoError(t, mono.Close())
	assert.Error(t, mono.Write([]int16{1}), "write after close must fail")
	assert.NoError(t, mono.Close(), "double close is fine")
}
