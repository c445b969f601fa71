package search

import (
	"errors"
	"fmt"

	"catalog-service/internal/model"
)

// ErrCategoryCycle reports a cycle in the category parent graph. The forest
// is assumed acyclic upstream but nothing enforces it, so the aggregator
// checks instead of recursing forever on corrupt data.
var ErrCategoryCycle = errors.New("category parent graph contains a cycle")

// CategoryNode is one aggregated category: its direct product count and the
// cumulative count over itself plus all descendants.
type CategoryNode struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	ParentID    *uint  `json:"parent_id"`
	Level       int    `json:"level"`
	CountDirect int64  `json:"count_direct"`
	CountTotal  int64  `json:"count_with_descendants"`
}

// node states for the back-edge check
const (
	nodeUnvisited = iota
	nodeVisiting
	nodeDone
)

// AggregateCategoryCounts folds per-category direct counts into cumulative
// counts over the category forest. directCounts comes from one grouped count
// of active products; ids absent from the map count as zero. A category
// whose parent id is not in the list is treated as a root.
//
// Output order follows the input order, but consumers should index by id
// rather than rely on it. The memo table lives only for this call.
func AggregateCategoryCounts(categories []model.Category, directCounts map[uint]int64) ([]CategoryNode, error) {
	children := make(map[uint][]uint, len(categories))
	for _, c := range categories {
		if c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], c.ID)
		}
	}

	totals := make(map[uint]int64, len(categories))
	state := make(map[uint]int, len(categories))

	var total func(id uint) (int64, error)
	total = func(id uint) (int64, error) {
		switch state[id] {
		case nodeDone:
			return totals[id], nil
		case nodeVisiting:
			return 0, fmt.Errorf("%w: category %d", ErrCategoryCycle, id)
		}
		state[id] = nodeVisiting

		sum := directCounts[id]
		for _, child := range children[id] {
			t, err := total(child)
			if err != nil {
				return 0, err
			}
			sum += t
		}

		state[id] = nodeDone
		totals[id] = sum
		return sum, nil
	}

	// Traverse from every node, not only the roots: a cycle detached from
	// any root would otherwise never be visited. Memoization keeps each
	// node's subtree computed once.
	nodes := make([]CategoryNode, 0, len(categories))
	for _, c := range categories {
		t, err := total(c.ID)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, CategoryNode{
			ID:          c.ID,
			Name:        c.Name,
			ParentID:    c.ParentID,
			Level:       c.Level,
			CountDirect: directCounts[c.ID],
			CountTotal:  t,
		})
	}
	return nodes, nil
}
