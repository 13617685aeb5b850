package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LizeLing/JSONVisualizer/pkg/jsontree"
)

func newTestModel(t *testing.T, src string) TreeModel {
	t.Helper()
	value, err := jsontree.ParseBytes([]byte(src))
	if err != nil {
		t.Fatalf("ParseBytes(%q) failed: %v", src, err)
	}
	root, err := jsontree.Build(value, jsontree.BuildOptions{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return NewTreeModel(value, root)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m TreeModel, msg tea.Msg) TreeModel {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(TreeModel)
	if !ok {
		t.Fatalf("Update returned %T, want TreeModel", next)
	}
	return model
}

func TestTreeModelPaths(t *testing.T) {
	m := newTestModel(t, `{"a": 1, "b": {"c": 2}, "list": [10, 20]}`)

	for _, path := range []string{"", "a", "b", "b.c", "list", "list[0]", "list[1]"} {
		if _, ok := m.byPath[path]; !ok {
			t.Errorf("missing item for path %q", path)
		}
	}
}

func TestTreeModelDefaultVisibility(t *testing.T) {
	// Depth 0 and 1 containers start expanded, deeper ones collapsed.
	m := newTestModel(t, `{"outer": {"inner": {"leaf": 1}}}`)

	// root, outer, inner visible; inner starts collapsed so leaf is hidden
	if len(m.visible) != 3 {
		t.Fatalf("visible = %d items, want 3", len(m.visible))
	}
}

func TestTreeModelToggle(t *testing.T) {
	m := newTestModel(t, `{"outer": {"inner": {"leaf": 1}}}`)

	// Move to "inner" (index 2) and expand it.
	m = update(t, m, keyMsg("j"))
	m = update(t, m, keyMsg("j"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	if len(m.visible) != 4 {
		t.Fatalf("after expand: visible = %d items, want 4", len(m.visible))
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if len(m.visible) != 3 {
		t.Fatalf("after collapse: visible = %d items, want 3", len(m.visible))
	}
}

func TestTreeModelExpandCollapseAll(t *testing.T) {
	m := newTestModel(t, `{"a": {"b": {"c": {"d": 1}}}}`)

	m = update(t, m, keyMsg("E"))
	if len(m.visible) != 5 {
		t.Errorf("after E: visible = %d items, want 5", len(m.visible))
	}

	m = update(t, m, keyMsg("C"))
	// Root stays expanded so its children remain reachable.
	if len(m.visible) != 2 {
		t.Errorf("after C: visible = %d items, want 2", len(m.visible))
	}
}

func TestTreeModelSearchJumpExpandsAncestors(t *testing.T) {
	m := newTestModel(t, `{"outer": {"inner": {"target": 1}}}`)

	m = update(t, m, keyMsg("/"))
	m = update(t, m, keyMsg("t"))
	m = update(t, m, keyMsg("a"))
	m = update(t, m, keyMsg("r"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if len(m.matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(m.matches))
	}
	selected := m.visible[m.cursor]
	if selected.path != "outer.inner.target" {
		t.Errorf("selected path = %q, want %q", selected.path, "outer.inner.target")
	}
}

func TestTreeModelSearchBlankQuery(t *testing.T) {
	m := newTestModel(t, `{"a": 1}`)

	m = update(t, m, keyMsg("/"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if len(m.matches) != 0 {
		t.Errorf("blank query produced %d matches, want 0", len(m.matches))
	}
}

func TestTreeModelView(t *testing.T) {
	m := newTestModel(t, `{"name": "Alice", "age": 30}`)
	m.width = 80
	m.height = 24

	view := m.View()
	for _, want := range []string{"name", "age", "root"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
