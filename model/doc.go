// Package model defines core types used throughout kdgo.
//
// # Data Types
//
//   - Point: an ordered, fixed-length sequence of coordinates
//   - Neighbor: the result of a nearest-neighbor query (point, input index, distance)
//
// All points stored in one index share the same length, the index dimensionality D.
package model
