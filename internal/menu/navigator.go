package menu

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/RogueMods_Go/internal/domain"
	"github.com/osse101/RogueMods_Go/internal/logger"
)

// State is the navigator's state machine position
type State int

const (
	Showing State = iota
	Applying
	Exited
)

func (s State) String() string {
	switch s {
	case Showing:
		return "showing"
	case Applying:
		return "applying"
	case Exited:
		return "exited"
	default:
		return "unknown"
	}
}

// Navigator walks a node tree with a breadcrumb stack.
// It is not safe for concurrent use.
type Navigator struct {
	root      *Node
	current   *Node
	children  []*Node
	stack     []*Node
	state     State
	committer Committer
}

// Option configures a Navigator
type Option func(*Navigator)

// WithCommitter commits after every action that reports a mutation
func WithCommitter(c Committer) Option {
	return func(n *Navigator) { n.committer = c }
}

// New opens a navigator on root
func New(ctx context.Context, root *Node, opts ...Option) (*Navigator, error) {
	n := &Navigator{root: root}
	for _, opt := range opts {
		opt(n)
	}
	if err := n.show(ctx, root); err != nil {
		return nil, err
	}
	return n, nil
}

// State returns the current state
func (n *Navigator) State() State { return n.state }

// Current returns the node being shown
func (n *Navigator) Current() *Node { return n.current }

// Depth is the number of breadcrumbs below the current screen
func (n *Navigator) Depth() int { return len(n.stack) }

// Breadcrumbs lists labels from the root down to the current screen
func (n *Navigator) Breadcrumbs() []string {
	out := make([]string, 0, len(n.stack)+1)
	for _, node := range n.stack {
		out = append(out, node.Label)
	}
	if n.current != nil {
		out = append(out, n.current.Label)
	}
	return out
}

// Screen lists the current entries in assembly order followed by Cancel.
// An exited navigator has no screen.
func (n *Navigator) Screen() []Entry {
	if n.state == Exited {
		return nil
	}
	out := make([]Entry, 0, len(n.children)+1)
	for _, c := range n.children {
		out = append(out, Entry{Label: c.Label, Leaf: c.IsLeaf()})
	}
	return append(out, Entry{Label: CancelLabel, Leaf: true, Cancel: true})
}

// Select acts on the entry at index. The last index is Cancel.
func (n *Navigator) Select(ctx context.Context, index int) (Outcome, error) {
	if n.state == Exited {
		return Outcome{}, domain.ErrMenuExited
	}
	if index < 0 || index > len(n.children) {
		return Outcome{}, fmt.Errorf("%w: "+ErrMsgSelectionRangeFormat, domain.ErrInvalidSelection, index, len(n.children))
	}

	if index == len(n.children) {
		out := Outcome{Next: Back}
		if err := n.back(ctx); err != nil {
			return out, err
		}
		if n.state == Exited {
			out.Next = Exit
		}
		return out, nil
	}

	child := n.children[index]
	if !child.IsLeaf() {
		return Outcome{Next: Push, Target: child}, n.push(ctx, child)
	}
	return n.apply(ctx, child)
}

func (n *Navigator) apply(ctx context.Context, leaf *Node) (Outcome, error) {
	log := logger.FromContext(ctx)

	n.state = Applying
	out, err := leaf.Action(ctx)
	if err != nil {
		n.state = Showing
		log.Warn(LogMsgActionFailed, "label", leaf.Label, "error", err)
		return out, err
	}

	if out.Mutated && n.committer != nil {
		if err := n.committer.Commit(ctx); err != nil {
			n.exit(ctx)
			log.Error(LogMsgCommitFailed, "label", leaf.Label, "error", err)
			return out, fmt.Errorf("%w: %w", domain.ErrCommitFailed, err)
		}
	}

	n.state = Showing
	return out, n.transition(ctx, out)
}

func (n *Navigator) transition(ctx context.Context, out Outcome) error {
	switch out.Next {
	case Stay:
		return n.show(ctx, n.current)
	case Back:
		return n.back(ctx)
	case Root:
		n.stack = n.stack[:0]
		return n.show(ctx, n.root)
	case Exit:
		n.exit(ctx)
		return nil
	case Push:
		if out.Target == nil {
			return n.show(ctx, n.current)
		}
		return n.push(ctx, out.Target)
	case ReturnTo:
		return n.returnTo(ctx, out.Target)
	default:
		return n.show(ctx, n.current)
	}
}

func (n *Navigator) push(ctx context.Context, node *Node) error {
	prev := n.current
	n.stack = append(n.stack, prev)
	if err := n.show(ctx, node); err != nil {
		n.stack = n.stack[:len(n.stack)-1]
		n.current = prev
		return err
	}
	return nil
}

func (n *Navigator) back(ctx context.Context) error {
	if len(n.stack) == 0 {
		n.exit(ctx)
		return nil
	}
	prev := n.stack[len(n.stack)-1]
	n.stack = n.stack[:len(n.stack)-1]
	return n.show(ctx, prev)
}

func (n *Navigator) returnTo(ctx context.Context, target *Node) error {
	if target == nil || target == n.current {
		return n.show(ctx, n.current)
	}
	i := slices.Index(n.stack, target)
	if i < 0 {
		n.stack = n.stack[:0]
		return n.show(ctx, n.root)
	}
	n.stack = n.stack[:i]
	return n.show(ctx, target)
}

func (n *Navigator) show(ctx context.Context, node *Node) error {
	children, err := node.resolve(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgExpandFailedFormat, node.Label, err)
	}
	n.current = node
	n.children = children
	n.state = Showing
	return nil
}

func (n *Navigator) exit(ctx context.Context) {
	n.state = Exited
	n.stack = nil
	n.children = nil
	logger.FromContext(ctx).Debug(LogMsgMenuExited, "root", n.root.Label)
}
