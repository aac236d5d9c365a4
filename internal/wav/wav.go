// Package wav encodes 16-bit PCM wave files. Samples are buffered in
// memory and the finished file, header first, is emitted on Close, so the
// destination only needs to be an io.Writer.
package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

const bytesPerSample = 2

// Encoder accumulates interleaved int16 samples for one wave file.
type Encoder struct {
	w          io.Writer
	sampleRate int
	channels   int
	data       bytes.Buffer
	closed     bool
}

// NewEncoder creates an encoder writing a file with the given sample rate
// and channel count (1 or 2). Close must be called to emit anything.
func NewEncoder(w io.Writer, sampleRate, channels int) (*Encoder, error) {
	if sampleRate <= 0 {
		return nil, errors.New("wav: sample rate must be positive")
	}
	if channels != 1 && channels != 2 {
		return nil, errors.New("wav: channel count must be 1 or 2")
	}
	return &Encoder{w: w, sampleRate: sampleRate, channels: channels}, nil
}

// Write appends interleaved samples. For stereo the slice must hold
// complete frames (even length).
func (e *Encoder) Write(samples []int16) error {
	if e.closed {
		return errors.New("wav: encoder is closed")
	}
	if e.channels == 2 && len(samples)%2 != 0 {
		return errors.New("wav: stereo write with incomplete frame")
	}
	for _, s := range samples {
		var b [bytesPerSample]byte
		binary.LittleEndian.PutUint16(b[:], uint16(s))
		e.data.Write(b[:])
	}
	return nil
}

// WriteStereo appends one buffer of left/right pairs.
func (e *Encoder) WriteStereo(frames [][2]int16) error {
	if e.channels != 2 {
		return errors.New("wav: WriteStereo on a mono encoder")
	}
	flat := make([]int16, 0, len(frames)*2)
	for _, f := range frames {
		flat = append(flat, f[0], f[1])
	}
	return e.Write(flat)
}

// SampleCount returns the number of samples written so far (frames times
// channels).
func (e *Encoder) SampleCount() int {
	return e.data.Len() / bytesPerSample
}

// Close emits the header and the buffered sample data. The encoder cannot
// be reused afterwards.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	if _, err := e.w.Write(e.header()); err != nil {
		return err
	}
	_, err := e.w.Write(e.data.Bytes())
	return err
}

func (e *Encoder) header() []byte {
	dataSize := e.data.Len()
	frameSize := bytesPerSample * e.channels

	var h bytes.Buffer
	h.WriteString("RIFF")
	binary.Write(&h, binary.LittleEndian, uint32(36+dataSize))
	h.WriteString("WAVE")

	h.WriteString("fmt ")
	binary.Write(&h, binary.LittleEndian, uint32(16))                       // fmt chunk size
	binary.Write(&h, binary.LittleEndian, uint16(1))                        // PCM
	binary.Write(&h, binary.LittleEndian, uint16(e.channels))               //
	binary.Write(&h, binary.LittleEndian, uint32(e.sampleRate))             //
	binary.Write(&h, binary.LittleEndian, uint32(e.sampleRate*frameSize))   // bytes/sec
	binary.Write(&h, binary.LittleEndian, uint16(frameSize))                // block align
	binary.Write(&h, binary.LittleEndian, uint16(bytesPerSample*8))         // bits/sample

	h.WriteString("data")
	binary.Write(&h, binary.LittleEndian, uint32(dataSize))
	return h.Bytes()
}
