package patterns

func init() {
	reg = buildRegistry(seedPatterns())
}

// seedPatterns returns the compiled-in pattern catalog.
func seedPatterns() []Pattern {
	return []Pattern{
		{
			ID:          "sliding-window",
			Name:        "Sliding Window",
			Category:    CategoryPointers,
			Description: "Maintain a moving range over a sequence, expanding and shrinking as a constraint allows.",
			KeySignals: []string{
				"contiguous subarray or substring",
				"longest/shortest window satisfying a condition",
				"at most K distinct / at most K changes",
			},
		},
		{
			ID:          "two-pointers",
			Name:        "Two Pointers",
			Category:    CategoryPointers,
			Description: "Walk two indices toward or away from each other to avoid a quadratic scan.",
			KeySignals: []string{
				"sorted input",
				"pair/triplet with a target sum",
				"in-place partitioning or dedup",
			},
		},
		{
			ID:          "fast-slow-pointers",
			Name:        "Fast & Slow Pointers",
			Category:    CategoryPointers,
			Description: "Two traversal speeds over a linked structure to detect cycles or find midpoints.",
			KeySignals: []string{
				"linked list",
				"cycle detection",
				"middle element in one pass",
			},
		},
		{
			ID:          "prefix-sum",
			Name:        "Prefix Sum",
			Category:    CategoryArray,
			Description: "Precompute running aggregates so any range query becomes O(1).",
			KeySignals: []string{
				"many range-sum queries",
				"subarray sum equals K",
				"difference between cumulative totals",
			},
		},
		{
			ID:          "hash-map-lookup",
			Name:        "Hash Map Lookup",
			Category:    CategoryArray,
			Description: "Trade memory for O(1) membership/complement checks.",
			KeySignals: []string{
				"have I seen this before",
				"complement search (target - x)",
				"frequency counting",
			},
		},
		{
			ID:          "monotonic-stack",
			Name:        "Monotonic Stack",
			Category:    CategoryArray,
			Description: "Stack kept sorted to answer next-greater/next-smaller element questions.",
			KeySignals: []string{
				"next greater/smaller element",
				"spans and ranges of dominance",
				"histogram-style areas",
			},
		},
		{
			ID:          "binary-search",
			Name:        "Binary Search",
			Category:    CategorySearch,
			Description: "Halve a sorted or monotonic search space each step.",
			KeySignals: []string{
				"sorted array",
				"monotonic predicate (first true / last false)",
				"minimize the maximum / maximize the minimum",
			},
		},
		{
			ID:          "bfs",
			Name:        "Breadth-First Search",
			Category:    CategoryGraph,
			Description: "Layer-by-layer traversal; the first time you reach a node is the shortest way there.",
			KeySignals: []string{
				"shortest path in unweighted graph",
				"minimum number of steps/moves",
				"level-order processing",
			},
		},
		{
			ID:          "dfs",
			Name:        "Depth-First Search",
			Category:    CategoryGraph,
			Description: "Exhaust one branch before the next; natural fit for connectivity and islands.",
			KeySignals: []string{
				"connected components / flood fill",
				"explore all paths",
				"grid or adjacency traversal",
			},
		},
		{
			ID:          "topological-sort",
			Name:        "Topological Sort",
			Category:    CategoryGraph,
			Description: "Order nodes so every edge points forward; detects cycles as a side effect.",
			KeySignals: []string{
				"prerequisites / dependency order",
				"build or course scheduling",
				"DAG processing order",
			},
		},
		{
			ID:          "union-find",
			Name:        "Union-Find",
			Category:    CategoryGraph,
			Description: "Merge disjoint sets with near-constant-time connectivity queries.",
			KeySignals: []string{
				"dynamic connectivity",
				"are these two in the same group",
				"redundant edge / cycle in undirected graph",
			},
		},
		{
			ID:          "tree-traversal",
			Name:        "Tree Traversal",
			Category:    CategoryTree,
			Description: "Pre/in/post-order recursion with per-node work; most tree problems reduce to it.",
			KeySignals: []string{
				"binary tree input",
				"aggregate over subtrees",
				"path from root / to leaf",
			},
		},
		{
			ID:          "backtracking",
			Name:        "Backtracking",
			Category:    CategorySearch,
			Description: "Build candidates incrementally, undoing steps that cannot lead to a solution.",
			KeySignals: []string{
				"enumerate all combinations/permutations",
				"constraint satisfaction (board, digits)",
				"small input bounds",
			},
		},
		{
			ID:          "dynamic-programming",
			Name:        "Dynamic Programming",
			Category:    CategoryDP,
			Description: "Optimal substructure plus overlapping subproblems, memoized or tabulated.",
			KeySignals: []string{
				"count the ways / optimal value",
				"decisions over a sequence with state",
				"greedy fails on counterexamples",
			},
		},
		{
			ID:          "greedy",
			Name:        "Greedy",
			Category:    CategoryDP,
			Description: "Commit to the locally best choice when an exchange argument proves it safe.",
			KeySignals: []string{
				"interval scheduling",
				"sort then sweep",
				"provable local choice",
			},
		},
		{
			ID:          "heap-top-k",
			Name:        "Heap / Top-K",
			Category:    CategoryHeap,
			Description: "Priority queue for streaming minima/maxima and K-largest selections.",
			KeySignals: []string{
				"K largest / K closest / K most frequent",
				"merge K sorted sources",
				"running median",
			},
		},
		{
			ID:          "merge-intervals",
			Name:        "Merge Intervals",
			Category:    CategoryHeap,
			Description: "Sort by start and sweep, merging or counting overlaps.",
			KeySignals: []string{
				"intervals with start/end",
				"overlap, gaps, or free slots",
				"minimum rooms/resources",
			},
		},
		{
			ID:          "bit-manipulation",
			Name:        "Bit Manipulation",
			Category:    CategoryOther,
			Description: "XOR tricks, masks, and shifts where arithmetic hides the structure.",
			KeySignals: []string{
				"every element appears twice except one",
				"subsets as bitmasks",
				"O(1) space parity tricks",
			},
		},
	}
}
