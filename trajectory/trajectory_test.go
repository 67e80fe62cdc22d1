package trajectory

import (
	"bytes"
	"context"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rtc/projectile"
	"github.com/hupe1980/rtc/tuple"
)

func defaultTrajectory(t *testing.T) []projectile.Sample {
	t.Helper()
	env, p := projectile.Default()
	res, err := projectile.Simulate(context.Background(), env, p)
	require.NoError(t, err)
	return res.Trajectory
}

func TestEncodeDecode(t *testing.T) {
	samples := defaultTrajectory(t)

	for _, c := range []Compression{None, LZ4, Zstd} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, samples, c))

			h, err := ReadHeader(bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)
			assert.Equal(t, Magic, h.Magic)
			assert.Equal(t, Version, h.Version)
			assert.Equal(t, c, h.Compression)
			assert.Equal(t, uint32(len(samples)), h.Count)

			got, err := Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, samples, got)
		})
	}
}

func TestCompressionShrinks(t *testing.T) {
	// A long, smooth trajectory compresses well.
	env, _ := projectile.Default()
	p := projectile.Launch(tuple.Point(0, 1, 0), tuple.Vector(1, 1, 0), 1000)
	res, err := projectile.Simulate(context.Background(), env, p)
	require.NoError(t, err)

	raw, err := Marshal(res.Trajectory, None)
	require.NoError(t, err)
	assert.Len(t, raw, headerSize+len(res.Trajectory)*recordSize)

	zst, err := Marshal(res.Trajectory, Zstd)
	require.NoError(t, err)
	assert.Less(t, len(zst), len(raw))
}

func TestSpecialValuesRoundTrip(t *testing.T) {
	samples := []projectile.Sample{
		{Tick: 0, Position: tuple.Point(0, 1, 0), Velocity: tuple.Vector(0, 0, 0).Normalize()},
		{Tick: 1, Position: tuple.Of(math.Inf(1), math.Inf(-1), 0, 1), Velocity: tuple.Vector(1, 2, 3)},
	}

	data, err := Marshal(samples, LZ4)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, math.IsNaN(got[0].Velocity.X.Float64()))
	assert.True(t, math.IsInf(got[1].Position.X.Float64(), 1))
	assert.True(t, math.IsInf(got[1].Position.Y.Float64(), -1))
	assert.Equal(t, samples[1].Velocity, got[1].Velocity)
}

func TestEmpty(t *testing.T) {
	data, err := Marshal(nil, Zstd)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeErrors(t *testing.T) {
	valid, err := Marshal(defaultTrajectory(t), None)
	require.NoError(t, err)

	t.Run("Short", func(t *testing.T) {
		_, err := Unmarshal([]byte("RT"))
		assert.ErrorIs(t, err, ErrBadMagic)
	})

	t.Run("BadMagic", func(t *testing.T) {
		data := bytes.Clone(valid)
		copy(data, "NOPE")
		_, err := Unmarshal(data)
		assert.ErrorIs(t, err, ErrBadMagic)
	})

	t.Run("FutureVersion", func(t *testing.T) {
		data := bytes.Clone(valid)
		data[4] = Version + 1
		_, err := Unmarshal(data)
		assert.ErrorIs(t, err, ErrUnsupportedVersion)
	})

	t.Run("UnknownCompression", func(t *testing.T) {
		data := bytes.Clone(valid)
		data[5] = 9
		_, err := Unmarshal(data)
		assert.ErrorIs(t, err, ErrUnknownCompression)
	})

	t.Run("Checksum", func(t *testing.T) {
		data := bytes.Clone(valid)
		data[len(data)-1] ^= 0xFF
		_, err := Unmarshal(data)
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("Truncated", func(t *testing.T) {
		_, err := Unmarshal(valid[:len(valid)-10])
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("CountTooLarge", func(t *testing.T) {
		data := bytes.Clone(valid)
		binary.LittleEndian.PutUint32(data[8:], binary.LittleEndian.Uint32(data[8:])+1)
		_, err := Unmarshal(data)
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("CountHuge", func(t *testing.T) {
		// A forged header claiming 2^32-1 records followed by a single one.
		var buf bytes.Buffer
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, &Header{
			Magic:   Magic,
			Version: Version,
			Count:   math.MaxUint32,
		}))
		buf.Write(make([]byte, recordSize))
		require.Equal(t, headerSize+recordSize, buf.Len())

		_, err := Unmarshal(buf.Bytes())
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("CountHugeCompressed", func(t *testing.T) {
		data, err := Marshal(defaultTrajectory(t)[:2], Zstd)
		require.NoError(t, err)
		binary.LittleEndian.PutUint32(data[8:], math.MaxUint32)
		_, err = Unmarshal(data)
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("EncodeUnknownCompression", func(t *testing.T) {
		_, err := Marshal(nil, Compression(7))
		assert.ErrorIs(t, err, ErrUnknownCompression)
	})
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		in   string
		want Compression
	}{
		{"", None},
		{"none", None},
		{"LZ4", LZ4},
		{"zstd", Zstd},
		{" zst ", Zstd},
	}
	for _, tt := range tests {
		got, err := ParseCompression(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseCompression("gzip")
	assert.ErrorIs(t, err, ErrUnknownCompression)

	assert.Equal(t, "Unknown(9)", Compression(9).String())
	assert.Equal(t, ".rtct", None.Extension())
	assert.Equal(t, ".rtct.lz4", LZ4.Extension())
	assert.Equal(t, ".rtct.zst", Zstd.Extension())
}
