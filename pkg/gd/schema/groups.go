package schema

import "sort"

// Groups is a set of group IDs kept sorted and free of duplicates.
type Groups []int

func NewGroups(ids ...int) Groups {
	return Groups{}.Union(ids...)
}

// Union returns a new set containing both g and ids. g is not modified.
func (g Groups) Union(ids ...int) Groups {
	seen := make(map[int]struct{}, len(g)+len(ids))
	result := make(Groups, 0, len(g)+len(ids))
	for _, list := range [][]int{g, ids} {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			result = append(result, id)
		}
	}
	sort.Ints(result)
	return result
}

func (g Groups) Has(id int) bool {
	index := sort.SearchInts(g, id)
	return index < len(g) && g[index] == id
}

func (g Groups) Clone() Groups {
	if g == nil {
		return nil
	}
	return append(Groups{}, g...)
}
