package dump

import (
	"strings"
	"testing"

	"github.com/waozixyz/kir"
)

func TestDiffIdenticalTrees(t *testing.T) {
	build := func() *kir.Component {
		text := node(kir.KindText, 2)
		text.Text = "hello"
		text.Style = kir.NewStyle()
		text.Style.Width = kir.Px(50)
		return node(kir.KindColumn, 1, text)
	}

	differ, report := Diff(build(), build())
	if differ {
		t.Errorf("identical trees reported as different:\n%s", report)
	}
	if report != "" {
		t.Errorf("report not empty: %q", report)
	}
}

func TestDiffReportsFieldChanges(t *testing.T) {
	a := node(kir.KindText, 1)
	a.Text = "before"
	a.Style = kir.NewStyle()

	b := node(kir.KindText, 1)
	b.Text = "after"
	b.Style = kir.NewStyle()
	b.Style.Opacity = 0.5

	differ, report := Diff(a, b)
	if !differ {
		t.Fatal("differing trees reported as equal")
	}
	for _, want := range []string{`text "before" != "after"`, "opacity 1 != 0.5"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestDiffKindMismatchStopsDescent(t *testing.T) {
	a := node(kir.KindContainer, 1, node(kir.KindText, 2))
	b := node(kir.KindRow, 1, node(kir.KindButton, 2))

	differ, report := Diff(a, b)
	if !differ {
		t.Fatal("trees with different root kinds reported as equal")
	}
	if want := "root: type Container != Row\n"; report != want {
		t.Errorf("report = %q, want %q (no descent past a kind mismatch)", report, want)
	}
}

func TestDiffAsymmetricChildren(t *testing.T) {
	a := node(kir.KindContainer, 1, node(kir.KindText, 2), node(kir.KindText, 3))
	b := node(kir.KindContainer, 1, node(kir.KindText, 2))

	differ, report := Diff(a, b)
	if !differ {
		t.Fatal("trees with different child counts reported as equal")
	}
	if !strings.Contains(report, "child count 2 != 1") {
		t.Errorf("report missing child count line:\n%s", report)
	}
	if !strings.Contains(report, "only in left: Text #3") {
		t.Errorf("report missing extra-child line:\n%s", report)
	}
}

func TestDiffNilSides(t *testing.T) {
	if differ, _ := Diff(nil, nil); differ {
		t.Error("Diff(nil, nil) reported a difference")
	}

	a := node(kir.KindContainer, 7)
	differ, report := Diff(a, nil)
	if !differ {
		t.Fatal("Diff(tree, nil) reported equal")
	}
	if !strings.Contains(report, "only in left: Container #7") {
		t.Errorf("report = %q", report)
	}
}

func TestDiffStylePresenceMismatch(t *testing.T) {
	a := node(kir.KindContainer, 1)
	a.Style = kir.NewStyle()
	b := node(kir.KindContainer, 1)

	differ, report := Diff(a, b)
	if !differ {
		t.Fatal("style-presence mismatch reported as equal")
	}
	if !strings.Contains(report, "style present on one side only") {
		t.Errorf("report = %q", report)
	}
}
