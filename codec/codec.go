// Package codec decodes and encodes point sets exchanged with kdgo consumers.
//
// A point set document is a JSON array of coordinate arrays:
//
//	[[2, 3], [4, 7], [5, 4]]
//
// Two codecs are built in. GoJSON (the default) is backed by
// github.com/goccy/go-json; JSON uses encoding/json for the most portable,
// lowest-dependency option.
package codec

import (
	"fmt"

	"github.com/hupe1980/kdgo/model"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// DecodePoints decodes a point set document.
// If c is nil, Default is used. Dimensions are not checked here; building an
// index from the result does that.
func DecodePoints(c Codec, data []byte) ([]model.Point, error) {
	if c == nil {
		c = Default
	}
	var raw [][]float64
	if err := c.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("codec %s: decode points: %w", c.Name(), err)
	}
	points := make([]model.Point, len(raw))
	for i, p := range raw {
		points[i] = p
	}
	return points, nil
}

// EncodePoints encodes points as a point set document.
// If c is nil, Default is used.
func EncodePoints(c Codec, points []model.Point) ([]byte, error) {
	if c == nil {
		c = Default
	}
	raw := make([][]float64, len(points))
	for i, p := range points {
		raw[i] = p
	}
	b, err := c.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("codec %s: encode points: %w", c.Name(), err)
	}
	return b, nil
}
