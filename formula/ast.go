package formula

import "fmt"

// Node is a node of a formula's abstract syntax tree. The set of node types
// is closed: Var, Not and Bin.
type Node interface {
	String() string
	isNode()
}

// Op is a binary connective.
type Op int

// Binary connectives
const (
	And Op = iota + 1
	Or
	Implies
	Iff
)

func (op Op) String() string {
	switch op {
	case And:
		return "∧"
	case Or:
		return "∨"
	case Implies:
		return "→"
	case Iff:
		return "↔"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Var is an atomic proposition, named by an uppercase letter.
type Var struct {
	Letter rune
}

// Not is the negation of a sub-formula.
type Not struct {
	Child Node
}

// Bin connects two sub-formulas with a binary connective.
type Bin struct {
	Op          Op
	Left, Right Node
}

func (Var) isNode() {}
func (Not) isNode() {}
func (Bin) isNode() {}

func (v Var) String() string {
	return string(v.Letter)
}

func (n Not) String() string {
	return "¬" + n.Child.String()
}

// String returns a fully parenthesized form of the formula, which may be
// parsed again.
func (b Bin) String() string {
	return "(" + b.Left.String() + " " + b.Op.String() + " " + b.Right.String() + ")"
}

// Equal reports whether two trees are structurally identical.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		return ok && x.Letter == y.Letter
	case Not:
		y, ok := b.(Not)
		return ok && Equal(x.Child, y.Child)
	case Bin:
		y, ok := b.(Bin)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case nil:
		return b == nil
	}
	panic(fmt.Sprintf("invalid formula node type %T", a))
}

// Depth returns the height of a tree, where a single variable has depth 1.
func Depth(n Node) int {
	switch x := n.(type) {
	case Var:
		return 1
	case Not:
		return 1 + Depth(x.Child)
	case Bin:
		l, r := Depth(x.Left), Depth(x.Right)
		if r > l {
			l = r
		}
		return 1 + l
	}
	panic(fmt.Sprintf("invalid formula node type %T", n))
}
