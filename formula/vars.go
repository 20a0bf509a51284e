package formula

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// CollectVariables returns the distinct letters of all atomic propositions
// in a formula, in ascending order.
func CollectVariables(f Node) []rune {
	set := treeset.NewWith(utils.RuneComparator)
	collect(f, set)
	letters := make([]rune, 0, set.Size())
	for _, v := range set.Values() {
		letters = append(letters, v.(rune))
	}
	return letters
}

func collect(f Node, set *treeset.Set) {
	switch n := f.(type) {
	case Var:
		set.Add(n.Letter)
	case Not:
		collect(n.Child, set)
	case Bin:
		collect(n.Left, set)
		collect(n.Right, set)
	default:
		panic(fmt.Sprintf("invalid formula node type %T", f))
	}
}
