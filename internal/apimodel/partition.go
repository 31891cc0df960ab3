package apimodel

import (
	"fmt"
	"sort"

	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
)

// Groups holds the exports of a module split by variant. Each group keeps the
// relative order the exports had in the module.
type Groups struct {
	Typeclasses []Typeclass
	Datas       []Data
	Instances   []Instance
	Funcs       []Func
}

// Partition classifies exports by variant. A nil export, a pointer, or any
// other value that is not one of the four variant values fails the whole
// partition.
func Partition(exports []Export) (Groups, error) {
	var g Groups
	for i, e := range exports {
		switch v := e.(type) {
		case Typeclass:
			g.Typeclasses = append(g.Typeclasses, v)
		case Data:
			g.Datas = append(g.Datas, v)
		case Instance:
			g.Instances = append(g.Instances, v)
		case Func:
			g.Funcs = append(g.Funcs, v)
		default:
			return Groups{}, errors.ValidationError("unrecognized export variant").
				WithContext("index", i).
				WithContext("type", fmt.Sprintf("%T", e)).
				Build()
		}
	}
	return g, nil
}

// SortByName returns a copy of xs ordered by name using plain byte-wise string
// comparison, so "Zeta" sorts before "alpha". Equal names keep their order.
func SortByName[T Named](xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExportName() < out[j].ExportName()
	})
	return out
}
