package problems

func init() {
	cat = buildCatalog(seedProblems())
}

// seedProblems returns the compiled-in starter catalog. These are classic
// interview problems with well-established canonical patterns.
func seedProblems() []Problem {
	return []Problem{
		{
			ID:         "longest-substring-without-repeats",
			Title:      "Longest Substring Without Repeating Characters",
			Difficulty: Medium,
			Patterns:   []string{"sliding-window", "hash-map-lookup"},
			KeySignals: []string{
				"asks for the longest contiguous substring",
				"a window stays valid until a repeat enters",
				"shrinking from the left restores validity",
			},
		},
		{
			ID:         "two-sum",
			Title:      "Two Sum",
			Difficulty: Easy,
			Patterns:   []string{"hash-map-lookup", "two-pointers"},
			KeySignals: []string{
				"find a pair hitting an exact target",
				"complement (target - x) lookups",
				"single pass suffices with extra memory",
			},
		},
		{
			ID:         "three-sum",
			Title:      "3Sum",
			Difficulty: Medium,
			Patterns:   []string{"two-pointers"},
			KeySignals: []string{
				"sorting the input does not hurt",
				"pair search inside a loop over anchors",
				"duplicate answers must be skipped",
			},
		},
		{
			ID:         "linked-list-cycle",
			Title:      "Linked List Cycle",
			Difficulty: Easy,
			Patterns:   []string{"fast-slow-pointers"},
			KeySignals: []string{
				"linked list with a possible loop",
				"O(1) space requirement",
				"two speeds must eventually meet inside a cycle",
			},
		},
		{
			ID:         "subarray-sum-equals-k",
			Title:      "Subarray Sum Equals K",
			Difficulty: Medium,
			Patterns:   []string{"prefix-sum", "hash-map-lookup"},
			KeySignals: []string{
				"count of contiguous subarrays with exact sum",
				"negatives rule out a sliding window",
				"running totals differ by exactly K",
			},
		},
		{
			ID:         "daily-temperatures",
			Title:      "Daily Temperatures",
			Difficulty: Medium,
			Patterns:   []string{"monotonic-stack"},
			KeySignals: []string{
				"next strictly greater element per position",
				"answers resolve in LIFO order",
				"each index pushed and popped once",
			},
		},
		{
			ID:         "search-rotated-array",
			Title:      "Search in Rotated Sorted Array",
			Difficulty: Medium,
			Patterns:   []string{"binary-search"},
			KeySignals: []string{
				"sorted input with one rotation point",
				"O(log n) requirement",
				"one half is always properly sorted",
			},
		},
		{
			ID:         "koko-eating-bananas",
			Title:      "Koko Eating Bananas",
			Difficulty: Medium,
			Patterns:   []string{"binary-search"},
			KeySignals: []string{
				"minimize a rate subject to a deadline",
				"feasibility is monotonic in the answer",
				"binary search over the answer space, not the array",
			},
		},
		{
			ID:         "word-ladder",
			Title:      "Word Ladder",
			Difficulty: Hard,
			Patterns:   []string{"bfs"},
			KeySignals: []string{
				"minimum number of transformations",
				"unweighted state graph",
				"first arrival is the shortest arrival",
			},
		},
		{
			ID:         "number-of-islands",
			Title:      "Number of Islands",
			Difficulty: Medium,
			Patterns:   []string{"dfs", "bfs", "union-find"},
			KeySignals: []string{
				"count connected components in a grid",
				"flood fill from each unvisited cell",
				"visited marking prevents recounting",
			},
		},
		{
			ID:         "course-schedule",
			Title:      "Course Schedule",
			Difficulty: Medium,
			Patterns:   []string{"topological-sort", "dfs"},
			KeySignals: []string{
				"prerequisite pairs form a directed graph",
				"feasible iff no cycle",
				"process zero in-degree nodes first",
			},
		},
		{
			ID:         "accounts-merge",
			Title:      "Accounts Merge",
			Difficulty: Medium,
			Patterns:   []string{"union-find", "dfs"},
			KeySignals: []string{
				"merge groups sharing any element",
				"transitive grouping",
				"connectivity queries dominate",
			},
		},
		{
			ID:         "binary-tree-max-path-sum",
			Title:      "Binary Tree Maximum Path Sum",
			Difficulty: Hard,
			Patterns:   []string{"tree-traversal"},
			KeySignals: []string{
				"aggregate computed from both subtrees",
				"per-node best differs from the value passed up",
				"post-order recursion",
			},
		},
		{
			ID:         "combination-sum",
			Title:      "Combination Sum",
			Difficulty: Medium,
			Patterns:   []string{"backtracking"},
			KeySignals: []string{
				"enumerate all combinations reaching a target",
				"small bounds invite exhaustive search",
				"prune branches exceeding the target",
			},
		},
		{
			ID:         "coin-change",
			Title:      "Coin Change",
			Difficulty: Medium,
			Patterns:   []string{"dynamic-programming"},
			KeySignals: []string{
				"minimum count over unbounded choices",
				"greedy fails (coin systems are not canonical)",
				"subproblem per remaining amount",
			},
		},
		{
			ID:         "jump-game",
			Title:      "Jump Game",
			Difficulty: Medium,
			Patterns:   []string{"greedy", "dynamic-programming"},
			KeySignals: []string{
				"reachability over a sequence",
				"a single furthest-reach variable suffices",
				"exchange argument makes the local choice safe",
			},
		},
		{
			ID:         "top-k-frequent",
			Title:      "Top K Frequent Elements",
			Difficulty: Medium,
			Patterns:   []string{"heap-top-k", "hash-map-lookup"},
			KeySignals: []string{
				"K most frequent, not a full sort",
				"frequency map then selection",
				"heap of size K beats sorting everything",
			},
		},
		{
			ID:         "meeting-rooms-ii",
			Title:      "Meeting Rooms II",
			Difficulty: Medium,
			Patterns:   []string{"merge-intervals", "heap-top-k"},
			KeySignals: []string{
				"intervals with starts and ends",
				"maximum simultaneous overlap",
				"sort by start, track earliest end",
			},
		},
		{
			ID:         "single-number",
			Title:      "Single Number",
			Difficulty: Easy,
			Patterns:   []string{"bit-manipulation", "hash-map-lookup"},
			KeySignals: []string{
				"every element appears twice except one",
				"O(1) space constraint",
				"XOR cancels pairs",
			},
		},
	}
}
