// Package gridkit is a toolkit for puzzles played on text grids: parse a
// map once, then flood it, route across it, shine light through it or
// measure the shape it outlines.
//
// 🚀 What is inside?
//
//	• geom/      : Coordinate, Direction (saturating moves), Point3D
//	• grid/      : generic Grid[T] built from text: lookups, neighbors, transpose
//	• reach/     : flood fill with an exact step budget, connected regions
//	• crucible/  : turn-limited Dijkstra (min/max straight run, no reversing)
//	• beam/      : mirror/splitter light propagation with cycle cut-off
//	• lagoon/    : shoelace area + Pick's theorem for dig plans
//	• bricks/    : falling-bricks settling and support graph
//	• dish/      : rock tilting and spin cycles
//	• reflection/: mirror lines with smudge repair
//	• pipes/     : closed pipe loop, farthest tile and enclosed tiles
//	• galaxy/    : expanding image, pairwise Manhattan distances
//
// Every algorithm is a pure function of its inputs: the same input always
// yields the same answer. Malformed text fails at the parsing boundary with a
// sentinel error; algorithms never see it.
//
// Quick ASCII example:
//
//	.|...\....
//	|.-.\.....
//
// is a beam contraption: '/' and '\' reflect, '|' and '-' split.
//
//	go get github.com/katalvlaran/gridkit
package gridkit
