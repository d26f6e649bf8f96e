// Package gridpath finds routes across weighted 4-connected grids, from a
// cost map to a predecessor tree to the path itself.
//
// 🚀 What is gridpath?
//
//	A small, allocation-conscious library and command that brings together:
//		• Grid primitives: positions, costed cells, neighbor lookup with a cost threshold
//		• Input and shaping: digit-grid parsing, tiling with cost wrap-around, regions
//		• Four strategies: breadth-first, Dijkstra, greedy best-first and A*
//		• Hooks: observe every expansion and discovery of a search
//
// Under the hood, everything is organized under these packages:
//
//	grid/          : Pos, Node, Map, neighbors, Components, ParseDigits, Tile, PathCost
//	search/        : Search, the four strategy entry points, heuristics, predecessor Tree
//	internal/cli/  : the gridpath command: flags, YAML config, logging
//	cmd/gridpath/  : command entry point
//
// Quick ASCII example:
//
//	1 9 1
//	1 9 1     from (0,0) to (2,0): BFS crosses the 9 in 2 steps (cost 10),
//	1 1 1     Dijkstra and A* walk around it in 6 steps (cost 6).
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
