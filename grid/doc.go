// Package grid models a weighted, 4-connected grid as a graph of positions.
//
// What:
//
//   - Pos is an immutable integer coordinate, comparable and totally ordered.
//   - Node pairs a Pos with the cost of entering that cell.
//   - Map is an immutable Pos → Node lookup built once from a slice of nodes.
//   - Neighbors yields the orthogonal neighbors of a position that exist in
//     the Map, optionally gated by a cost threshold.
//   - ParseDigits, Tile and PathCost cover the usual plumbing around a map:
//     reading a digit grid, repeating it with cost wrap-around, and summing
//     the cost of a returned path.
//
// Why:
//
//   - A single read-only Map can be shared by any number of searches; no
//     search ever mutates it.
//   - Fixed neighbor order (north, west, east, south) and a total order on
//     Node keep every traversal deterministic.
//
// Complexity:
//
//   - NewMap:    O(N) time, O(N) memory (N = number of nodes).
//   - Neighbors: O(1).
//   - Tile:      O(N·f²) time and memory (f = tiling factor).
//
// Errors:
//
//   - ErrEmptyInput, ErrRaggedInput, ErrBadDigit: ParseDigits input problems.
//   - ErrBadFactor, ErrEmptyMap: invalid Tile arguments.
//   - ErrUnknownPosition: PathCost met a position absent from the Map.
package grid
