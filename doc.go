// Package netpath is an in-memory toolkit for planning routes over weighted
// delivery networks — from the core graph primitives up to annotated
// Graphviz exports of the computed routes.
//
// What it does:
//
//   - Core primitives: declare vertices & directed weighted edges, query
//     them safely under locks (core/)
//   - Shortest paths: Dijkstra with deterministic tie-breaking and early
//     target exit (dijkstra/)
//   - Flow routing: shortest augmenting paths and max-flow via
//     Edmonds–Karp, Dinic and Ford–Fulkerson (flow/)
//   - Network descriptions: strict YAML loader for declarative network
//     files (graphfile/)
//   - Diagrams: deterministic Graphviz DOT export with the chosen route
//     highlighted (dot/)
//
// A small cobra CLI wrapping all of the above lives under cmd/netpath.
//
// Quick ASCII example — the package-delivery network the library grew up on:
//
//	S ──10──▶ A ──4──▶ D ──6──▶ T2
//	          │
//	          8──▶ C ──5──▶ F ──7──▶ T1
//
// The cheapest S→T2 route costs 20 and the only S→T1 route costs 30;
// `netpath route` prints either one and `netpath render` draws it in red.
package netpath
