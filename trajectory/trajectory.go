package trajectory

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"math"

	"github.com/hupe1980/rtc/projectile"
	"github.com/hupe1980/rtc/tuple"
)

const (
	// Magic identifies a trajectory file ("RTCT" little endian).
	Magic uint32 = 0x54435452
	// Version is the current format version.
	Version uint8 = 1

	headerSize = 16
	recordSize = 4 + 8*8
)

var (
	// ErrBadMagic is returned when the input is not a trajectory file.
	ErrBadMagic = errors.New("trajectory: bad magic")
	// ErrUnsupportedVersion is returned for files written by a newer format.
	ErrUnsupportedVersion = errors.New("trajectory: unsupported version")
	// ErrUnknownCompression is returned for an unknown compression id or name.
	ErrUnknownCompression = errors.New("trajectory: unknown compression")
	// ErrChecksum is returned when the body does not match the header checksum.
	ErrChecksum = errors.New("trajectory: checksum mismatch")
	// ErrTruncated is returned when the body holds fewer records than the header declares.
	ErrTruncated = errors.New("trajectory: truncated body")
)

var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// Header is the fixed-size file header.
type Header struct {
	Magic       uint32
	Version     uint8
	Compression Compression
	Reserved    uint16
	Count       uint32
	Checksum    uint32
}

// Encode writes samples to w using compression c.
func Encode(w io.Writer, samples []projectile.Sample, c Compression) error {
	if uint64(len(samples)) > math.MaxUint32 {
		return fmt.Errorf("trajectory: too many samples: %d", len(samples))
	}

	body := make([]byte, 0, len(samples)*recordSize)
	for _, s := range samples {
		body = appendRecord(body, s)
	}

	h := Header{
		Magic:       Magic,
		Version:     Version,
		Compression: c,
		Count:       uint32(len(samples)),
		Checksum:    crc32.Checksum(body, crc32cTable),
	}

	if c > Zstd {
		return fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(c))
	}

	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("trajectory: write header: %w", err)
	}

	zw, err := compressor(w, c)
	if err != nil {
		return err
	}
	if _, err := zw.Write(body); err != nil {
		_ = zw.Close()
		return fmt.Errorf("trajectory: write body: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("trajectory: flush body: %w", err)
	}
	return nil
}

// Marshal encodes samples into a byte slice.
func Marshal(samples []projectile.Sample, c Compression) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, samples, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadHeader reads and validates the header from r.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return h, fmt.Errorf("%w: short header", ErrBadMagic)
		}
		return h, err
	}
	if h.Magic != Magic {
		return h, ErrBadMagic
	}
	if h.Version == 0 || h.Version > Version {
		return h, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	return h, nil
}

// Decode reads a trajectory written by Encode.
func Decode(r io.Reader) ([]projectile.Sample, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	zr, err := decompressor(r, h.Compression)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	// Count is untrusted; the buffer grows only as body bytes arrive.
	size := int64(h.Count) * recordSize
	body, err := io.ReadAll(io.LimitReader(zr, size))
	if err != nil {
		return nil, fmt.Errorf("trajectory: read body: %w", err)
	}
	if int64(len(body)) != size {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrTruncated, len(body), size)
	}
	if sum := crc32.Checksum(body, crc32cTable); sum != h.Checksum {
		return nil, fmt.Errorf("%w: got %08x, want %08x", ErrChecksum, sum, h.Checksum)
	}

	samples := make([]projectile.Sample, h.Count)
	for i := range samples {
		samples[i] = readRecord(body[i*recordSize:])
	}
	return samples, nil
}

// Unmarshal decodes a trajectory from data.
func Unmarshal(data []byte) ([]projectile.Sample, error) {
	return Decode(bytes.NewReader(data))
}

func appendRecord(dst []byte, s projectile.Sample) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, uint32(s.Tick))
	dst = appendTuple(dst, s.Position)
	return appendTuple(dst, s.Velocity)
}

func appendTuple(dst []byte, t tuple.Tuple) []byte {
	for _, f := range [4]tuple.Float{t.X, t.Y, t.Z, t.W} {
		dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(f.Float64()))
	}
	return dst
}

func readRecord(b []byte) projectile.Sample {
	return projectile.Sample{
		Tick:     int(binary.LittleEndian.Uint32(b)),
		Position: readTuple(b[4:]),
		Velocity: readTuple(b[4+32:]),
	}
}

func readTuple(b []byte) tuple.Tuple {
	f := func(i int) float64 {
		return math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return tuple.Of(f(0), f(1), f(2), f(3))
}
