package menu

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RogueMods_Go/internal/domain"
)

func outcome(out Outcome) Action {
	return func(context.Context) (Outcome, error) { return out, nil }
}

func labels(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Label)
	}
	return out
}

// deepTree is Root > A > B > C, with a leaf at the bottom
func deepTree() *Node {
	return Branch("Root",
		Branch("A",
			Branch("B",
				Branch("C", Leaf("leaf", outcome(Outcome{Applied: true, Next: Stay}))),
			),
		),
		Leaf("sibling", outcome(Outcome{Applied: true, Next: Stay})),
	)
}

func open(t *testing.T, root *Node, opts ...Option) *Navigator {
	t.Helper()
	nav, err := New(context.Background(), root, opts...)
	require.NoError(t, err)
	return nav
}

func selectOK(t *testing.T, nav *Navigator, index int) Outcome {
	t.Helper()
	out, err := nav.Select(context.Background(), index)
	require.NoError(t, err)
	return out
}

func cancel(t *testing.T, nav *Navigator) Outcome {
	t.Helper()
	return selectOK(t, nav, len(nav.Screen())-1)
}

func TestNavigator_ScreenAppendsCancel(t *testing.T) {
	nav := open(t, deepTree())

	screen := nav.Screen()
	assert.Equal(t, []string{"A", "sibling", CancelLabel}, labels(screen))
	assert.False(t, screen[0].Leaf)
	assert.True(t, screen[1].Leaf)
	assert.True(t, screen[2].Cancel)
}

func TestNavigator_CancelPopsBreadcrumbs(t *testing.T) {
	nav := open(t, deepTree())

	selectOK(t, nav, 0)
	selectOK(t, nav, 0)
	selectOK(t, nav, 0)
	require.Equal(t, []string{"Root", "A", "B", "C"}, nav.Breadcrumbs())
	require.Equal(t, 3, nav.Depth())

	want := []string{"B", "A", "Root"}
	for _, label := range want {
		out := cancel(t, nav)
		assert.Equal(t, Back, out.Next)
		assert.Equal(t, label, nav.Current().Label)
		assert.Equal(t, Showing, nav.State())
	}

	out := cancel(t, nav)
	assert.Equal(t, Exit, out.Next)
	assert.Equal(t, Exited, nav.State())
	assert.Nil(t, nav.Screen())

	_, err := nav.Select(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrMenuExited)
}

func TestNavigator_InvalidSelection(t *testing.T) {
	nav := open(t, deepTree())

	for _, index := range []int{-1, 3} {
		_, err := nav.Select(context.Background(), index)
		assert.ErrorIs(t, err, domain.ErrInvalidSelection)
	}
	assert.Equal(t, Showing, nav.State())
}

func TestNavigator_LeafTransitions(t *testing.T) {
	target := Branch("Target", Leaf("x", outcome(Outcome{Next: Stay})))

	tests := []struct {
		name      string
		out       Outcome
		wantLabel string
		wantDepth int
		wantState State
	}{
		{"stay", Outcome{Applied: true, Next: Stay}, "B", 2, Showing},
		{"back", Outcome{Applied: true, Next: Back}, "A", 1, Showing},
		{"root", Outcome{Applied: true, Next: Root}, "Root", 0, Showing},
		{"exit", Outcome{Applied: true, Next: Exit}, "B", 0, Exited},
		{"push", Outcome{Applied: true, Next: Push, Target: target}, "Target", 3, Showing},
		{"rejected", Rejected(), "B", 2, Showing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := Branch("Root", Branch("A", Branch("B", Leaf("act", outcome(tt.out)))))
			nav := open(t, root)
			selectOK(t, nav, 0)
			selectOK(t, nav, 0)

			out := selectOK(t, nav, 0)
			assert.Equal(t, tt.out.Applied, out.Applied)
			assert.Equal(t, tt.wantState, nav.State())
			assert.Equal(t, tt.wantDepth, nav.Depth())
			if tt.wantState == Showing {
				assert.Equal(t, tt.wantLabel, nav.Current().Label)
			}
		})
	}
}

func TestNavigator_ReturnTo(t *testing.T) {
	var category *Node
	pick := Branch("Pick member", Leaf("Bulbasaur", func(context.Context) (Outcome, error) {
		return Outcome{Applied: true, Next: ReturnTo, Target: category}, nil
	}))
	category = Branch("Healing", Leaf("Potion", outcome(Outcome{Next: Push, Target: pick})))
	root := Branch("Items", category)

	nav := open(t, root)
	selectOK(t, nav, 0)
	selectOK(t, nav, 0)
	require.Equal(t, "Pick member", nav.Current().Label)

	out := selectOK(t, nav, 0)
	assert.True(t, out.Applied)
	assert.Equal(t, "Healing", nav.Current().Label)
	assert.Equal(t, []string{"Items", "Healing"}, nav.Breadcrumbs())
}

func TestNavigator_LazyChildrenRefresh(t *testing.T) {
	unlocked := false
	root := Lazy("Shop", func(context.Context) ([]*Node, error) {
		if unlocked {
			return nil, nil
		}
		return []*Node{Leaf("Unlock", func(context.Context) (Outcome, error) {
			unlocked = true
			return Outcome{Applied: true, Next: Stay}, nil
		})}, nil
	})

	nav := open(t, root)
	require.Equal(t, []string{"Unlock", CancelLabel}, labels(nav.Screen()))

	selectOK(t, nav, 0)
	assert.Equal(t, []string{CancelLabel}, labels(nav.Screen()))
}

func TestNavigator_ExpandError(t *testing.T) {
	boom := errors.New("boom")
	root := Branch("Root", Lazy("Broken", func(context.Context) ([]*Node, error) { return nil, boom }))
	nav := open(t, root)

	_, err := nav.Select(context.Background(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "Root", nav.Current().Label)
	assert.Equal(t, 0, nav.Depth())
}

func TestNavigator_Commit(t *testing.T) {
	mutate := Leaf("buy", outcome(Outcome{Applied: true, Mutated: true, Next: Root}))
	readOnly := Leaf("look", outcome(Outcome{Applied: true, Next: Stay}))

	t.Run("commits mutations only", func(t *testing.T) {
		commits := 0
		nav := open(t, Branch("Root", mutate, readOnly), WithCommitter(CommitFunc(func(context.Context) error {
			commits++
			return nil
		})))

		selectOK(t, nav, 1)
		assert.Equal(t, 0, commits)
		selectOK(t, nav, 0)
		assert.Equal(t, 1, commits)
		assert.Equal(t, Showing, nav.State())
	})

	t.Run("failure exits", func(t *testing.T) {
		nav := open(t, Branch("Root", mutate), WithCommitter(CommitFunc(func(context.Context) error {
			return errors.New("disk full")
		})))

		out, err := nav.Select(context.Background(), 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCommitFailed)
		assert.True(t, out.Applied)
		assert.Equal(t, Exited, nav.State())
	})
}

func TestNavigator_ActionError(t *testing.T) {
	boom := errors.New("boom")
	nav := open(t, Branch("Root", Leaf("fail", func(context.Context) (Outcome, error) {
		return Outcome{}, boom
	})))

	_, err := nav.Select(context.Background(), 0)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Showing, nav.State())
}
