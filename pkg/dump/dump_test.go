package dump

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/waozixyz/kir"
)

// node builds a detached component with a fixed id so tree output is stable.
func node(kind kir.Kind, id uint32, children ...*kir.Component) *kir.Component {
	c := &kir.Component{Kind: kind, ID: id, Children: children}
	c.Adopt()
	return c
}

func TestTreeBranchPrefixes(t *testing.T) {
	button := node(kir.KindButton, 4)
	button.Text = "Go"
	text := node(kir.KindText, 2)
	text.Text = "hello"
	root := node(kir.KindColumn, 1, text, node(kir.KindRow, 3, button))
	root.Tag = "app"

	got := Tree(root, Options{})
	want := strings.Join([]string{
		`Column #1 <app>`,
		`├── Text #2 "hello"`,
		`└── Row #3`,
		`    └── Button #4 "Go"`,
		``,
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeHiddenElision(t *testing.T) {
	hidden := node(kir.KindText, 2)
	hidden.Style = kir.NewStyle()
	hidden.Style.Visible = false
	root := node(kir.KindContainer, 1, hidden, node(kir.KindText, 3))

	got := Tree(root, Options{})
	want := "Container #1 …\n└── Text #3\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("default tree mismatch (-want +got):\n%s", diff)
	}

	got = Tree(root, Options{ShowHidden: true})
	want = "Container #1\n├── Text #2\n└── Text #3\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ShowHidden tree mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeMaxDepth(t *testing.T) {
	root := node(kir.KindContainer, 1,
		node(kir.KindContainer, 2,
			node(kir.KindContainer, 3)))

	got := Tree(root, Options{MaxDepth: 1})
	want := "Container #1\n└── Container #2\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("depth-limited tree mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeStyleAndBounds(t *testing.T) {
	root := node(kir.KindContainer, 1)
	root.Style = kir.NewStyle()
	root.Style.Width = kir.Px(100)
	root.Style.Background = kir.Solid(0xFF, 0, 0, 0xFF)
	root.Style.Opacity = 0.5
	root.Bounds = kir.Bounds{X: 10, Y: 20, Width: 100, Height: 30, Valid: true}

	got := Tree(root, Options{ShowStyle: true, ShowBounds: true})
	want := "Container #1 {w=100px bg=#ff0000 opacity=0.5} [10,20 100x30]\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("annotated tree mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeTruncatesLongText(t *testing.T) {
	root := node(kir.KindText, 1)
	root.Text = strings.Repeat("a", 40)

	got := Tree(root, Options{})
	want := `Text #1 "` + strings.Repeat("a", 32) + `…"` + "\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("truncated tree mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeNil(t *testing.T) {
	if got := Tree(nil, Options{}); got != "" {
		t.Errorf("Tree(nil) = %q, want empty", got)
	}
}
