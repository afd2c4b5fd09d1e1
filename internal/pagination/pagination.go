// Package pagination implements keyset cursor connections over
// ordered collections. Cursors are absolute 0-based indices, stable
// under appends.
package pagination

// Edge wraps a node with its absolute index as cursor.
type Edge[T any] struct {
	Cursor int `json:"cursor"`
	Node   T   `json:"node"`
}

type PageInfo struct {
	HasPreviousPage bool `json:"has_previous_page"`
	HasNextPage     bool `json:"has_next_page"`
}

type Connection[T any] struct {
	Edges    []Edge[T] `json:"edges"`
	PageInfo PageInfo  `json:"page_info"`
}

// Window is a resolved page request: fetch Limit rows at Offset.
type Window struct {
	Limit       int
	Offset      int
	HasPrevious bool
	HasNext     bool
	Empty       bool
}

// ComputeWindow resolves forward/backward cursor arguments against the
// collection's total count. after and before are exclusive bounds;
// first and last trim the window from either end. before == 0 yields
// an empty, non-extendable page.
func ComputeWindow(after, before, first, last *int, total int) Window {
	start := 0
	if after != nil {
		start = *after + 1
		if start < 0 {
			start = 0
		}
	}
	end := total + 1
	if before != nil {
		if *before == 0 {
			return Window{Empty: true}
		}
		end = *before
		if end > total+1 {
			// stale cursor from a shrunken collection
			end = total + 1
		}
	}

	if first != nil && end > start+*first+1 {
		end = start + *first + 1
	}
	if last != nil && start < end-*last-1 {
		start = end - *last - 1
	}

	limit := end - start - 1
	if limit <= 0 {
		return Window{
			Offset:      start,
			HasPrevious: start > 0,
			HasNext:     end < total,
			Empty:       true,
		}
	}

	return Window{
		Limit:       limit,
		Offset:      start,
		HasPrevious: start > 0,
		HasNext:     end < total,
	}
}

// NewConnection wraps fetched rows with window cursors.
func NewConnection[T any](w Window, nodes []T) Connection[T] {
	edges := make([]Edge[T], 0, len(nodes))
	for i, node := range nodes {
		edges = append(edges, Edge[T]{Cursor: w.Offset + i, Node: node})
	}
	return Connection[T]{
		Edges:    edges,
		PageInfo: PageInfo{HasPreviousPage: w.HasPrevious, HasNextPage: w.HasNext},
	}
}
