package menu

import "context"

// Action is the effect bound to a leaf
type Action func(ctx context.Context) (Outcome, error)

// ExpandFunc computes a node's children each time the node is shown
type ExpandFunc func(ctx context.Context) ([]*Node, error)

// Node is a screen (Children or Expand) or a leaf (Action)
type Node struct {
	Label    string
	Children []*Node
	Expand   ExpandFunc
	Action   Action
}

// IsLeaf reports whether selecting the node runs an action
func (n *Node) IsLeaf() bool { return n.Action != nil }

// Leaf creates a selectable leaf
func Leaf(label string, action Action) *Node {
	return &Node{Label: label, Action: action}
}

// Branch creates a screen with fixed children
func Branch(label string, children ...*Node) *Node {
	return &Node{Label: label, Children: children}
}

// Lazy creates a screen whose children are recomputed whenever it is shown
func Lazy(label string, expand ExpandFunc) *Node {
	return &Node{Label: label, Expand: expand}
}

func (n *Node) resolve(ctx context.Context) ([]*Node, error) {
	if n.Expand == nil {
		return n.Children, nil
	}
	return n.Expand(ctx)
}

// Transition names where the navigator goes after a leaf runs
type Transition int

const (
	// Stay redisplays the current screen
	Stay Transition = iota
	// Back pops one breadcrumb, exiting when there is none
	Back
	// Root clears the breadcrumbs and shows the root
	Root
	// Exit closes the navigator
	Exit
	// Push shows Outcome.Target on top of the current screen
	Push
	// ReturnTo pops breadcrumbs until Outcome.Target is showing, or shows the root
	ReturnTo
)

var transitionNames = map[Transition]string{
	Stay:     "stay",
	Back:     "back",
	Root:     "root",
	Exit:     "exit",
	Push:     "push",
	ReturnTo: "return_to",
}

func (t Transition) String() string {
	if name, ok := transitionNames[t]; ok {
		return name
	}
	return "unknown"
}

// Outcome is what a leaf action reports back
type Outcome struct {
	// Applied is false when the action was rejected, e.g. unaffordable
	Applied bool
	// Mutated asks the navigator to commit persistent state
	Mutated bool
	Next    Transition
	Target  *Node
}

// Rejected is the outcome of a refused selection: nothing changes and the screen stays
func Rejected() Outcome { return Outcome{Next: Stay} }

// Entry is one line of a rendered screen
type Entry struct {
	Label  string `json:"label"`
	Leaf   bool   `json:"leaf"`
	Cancel bool   `json:"cancel,omitempty"`
}

// Committer persists state after a mutating action
type Committer interface {
	Commit(ctx context.Context) error
}

// CommitFunc adapts a function to Committer
type CommitFunc func(ctx context.Context) error

// Commit implements Committer
func (f CommitFunc) Commit(ctx context.Context) error { return f(ctx) }
