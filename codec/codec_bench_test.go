package codec

import (
	"testing"

	"github.com/hupe1980/kdgo/model"
	"github.com/hupe1980/kdgo/testutil"
)

func benchmarkDecodePoints(b *testing.B, c Codec, data []byte) {
	b.Helper()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	var sink []model.Point
	for b.Loop() {
		out, err := DecodePoints(c, data)
		if err != nil {
			b.Fatal(err)
		}
		sink = out
	}
	_ = sink
}

func BenchmarkDecodePoints(b *testing.B) {
	points := testutil.NewRNG(4711).UniformPoints(1000, 384)
	data, err := EncodePoints(JSON{}, points)
	if err != nil {
		b.Fatal(err)
	}

	b.Run("json", func(b *testing.B) { benchmarkDecodePoints(b, JSON{}, data) })
	b.Run("go-json", func(b *testing.B) { benchmarkDecodePoints(b, GoJSON{}, data) })
}
