// Package gridpath is a grid pathfinding and maze generation engine.
//
// The module is organized as small packages that build on each other:
//
//	grid/    the rectangular cell grid: walls, weights, start/end roles,
//	           4- or 8-connectivity, edit rules and region analysis
//	search/  BFS, DFS, Dijkstra, A*, Greedy Best-First and Bidirectional
//	           BFS behind one Searcher contract returning visit order, path
//	           and cost
//	maze/    recursive division and scatter generators streamed as lazy
//	           iter.Seq steps, guarded by a BFS solvability check
//	runner/  name-based dispatch, animation-free recomputation, playback
//	           frames and a Session that serializes runs
//	cmd/gridpath the command-line front end (viper/pflag config, zap logs)
//
// Every algorithm is synchronous and deterministic: searches break ties by
// insertion order and generators draw from one seeded *rand.Rand.
//
// Quick start
//
//	g := grid.Default()
//	g, _, _ = maze.Generate(maze.PatternHorizontal, g, maze.WithSeed(7))
//	res := search.Run(search.AlgAStar, g, g.Start(), g.End())
//	fmt.Println(res.Found(), len(res.Visited), res.Cost)
package gridpath
