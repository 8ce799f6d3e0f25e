package present

// PathEdgeIDs derives the set of on-path edge ids from a list of
// traversal paths. For each path carrying a node sequence of length
// two or more, every consecutive node pair contributes the edge id
// "{from}-{to}"; the result is the union across all paths.
//
// Paths that only carry Steps contribute nothing here: they are shown
// through the overlay panel instead. This mirrors the upstream query
// engine, which only guarantees edge-id coverage for node sequences.
func PathEdgeIDs(paths []Path) map[string]bool {
	ids := make(map[string]bool)
	for _, p := range paths {
		for i := 0; i+1 < len(p.Nodes); i++ {
			ids[EdgeID(p.Nodes[i], p.Nodes[i+1])] = true
		}
	}
	return ids
}
