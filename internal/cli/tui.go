package cli

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LizeLing/JSONVisualizer/pkg/jsontree"
)

// treeItem wraps a tree node with the mutable browse state the viewer needs.
// The expansion flag starts from the node's default and diverges as the user
// toggles subtrees.
type treeItem struct {
	node     *jsontree.Node
	parent   *treeItem
	children []*treeItem
	path     string
	expanded bool
}

// isContainer reports whether the item can be expanded or collapsed.
func (it *treeItem) isContainer() bool {
	return it.node.Kind == jsontree.KindObject || it.node.Kind == jsontree.KindArray
}

// =============================================================================
// TreeModel - Interactive JSON tree browser
// =============================================================================

// TreeModel is the bubbletea model for browsing a JSON document as a
// collapsible tree.
type TreeModel struct {
	value jsontree.Value
	root  *treeItem

	// Item lookup by search path, populated once at build time.
	byPath map[string]*treeItem

	// Flattened list of visible items (for rendering and navigation).
	visible []*treeItem

	cursor int
	offset int
	width  int
	height int

	searchMode  bool
	searchQuery string
	matches     []*treeItem
	matchIndex  int
	matchSet    map[*treeItem]bool

	status string
}

// NewTreeModel builds a browsable model from a parsed document and its
// prepared render tree.
func NewTreeModel(value jsontree.Value, root *jsontree.Node) TreeModel {
	m := TreeModel{
		value:  value,
		byPath: make(map[string]*treeItem),
		width:  80,
		height: 24,
	}
	m.root = m.buildItem(root, nil, "")
	m.rebuildVisible()
	return m
}

// buildItem wraps the node tree into items, recording each item's search path.
// Array element keys already carry their bracketed index, so they append to
// the parent path directly; object keys join with a dot.
func (m *TreeModel) buildItem(node *jsontree.Node, parent *treeItem, path string) *treeItem {
	item := &treeItem{
		node:     node,
		parent:   parent,
		path:     path,
		expanded: node.DefaultExpanded,
	}
	m.byPath[path] = item

	for _, child := range node.Children {
		childPath := child.Key
		if strings.HasPrefix(child.Key, "[") {
			childPath = path + child.Key
		} else if path != "" {
			childPath = path + "." + child.Key
		}
		item.children = append(item.children, m.buildItem(child, item, childPath))
	}
	return item
}

// rebuildVisible flattens the tree into the visible list, respecting the
// current expansion state.
func (m *TreeModel) rebuildVisible() {
	m.visible = m.visible[:0]
	m.flatten(m.root)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *TreeModel) flatten(item *treeItem) {
	m.visible = append(m.visible, item)
	if item.expanded {
		for _, child := range item.children {
			m.flatten(child)
		}
	}
}

func (m TreeModel) Init() tea.Cmd {
	return nil
}

func (m TreeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.searchMode {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

// updateSearch handles keys while the search prompt is active.
func (m TreeModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchMode = false
		m.clearSearch()
	case "enter":
		m.searchMode = false
		if len(m.matches) > 0 {
			m.jumpToMatch(0)
		}
	case "backspace":
		if len(m.searchQuery) > 0 {
			m.searchQuery = m.searchQuery[:len(m.searchQuery)-1]
			m.runSearch()
		}
	default:
		if len(msg.Runes) == 1 {
			m.searchQuery += string(msg.Runes)
			m.runSearch()
		}
	}
	return m, nil
}

// updateBrowse handles keys in normal navigation mode.
func (m TreeModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() != "y" {
		m.status = ""
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "esc":
		if len(m.matches) > 0 {
			m.clearSearch()
			return m, nil
		}
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.adjustScroll()
		}

	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
			m.adjustScroll()
		}

	case "g", "home":
		m.cursor = 0
		m.adjustScroll()

	case "G", "end":
		if len(m.visible) > 0 {
			m.cursor = len(m.visible) - 1
			m.adjustScroll()
		}

	case "pgdown", "ctrl+f":
		m.cursor += m.contentHeight()
		if m.cursor >= len(m.visible) {
			m.cursor = len(m.visible) - 1
		}
		m.adjustScroll()

	case "pgup", "ctrl+b":
		m.cursor -= m.contentHeight()
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.adjustScroll()

	case " ", "enter":
		if m.cursor < len(m.visible) {
			item := m.visible[m.cursor]
			if item.isContainer() {
				item.expanded = !item.expanded
				m.rebuildVisible()
				m.adjustScroll()
			}
		}

	case "E":
		m.setExpandedAll(m.root, true)
		m.rebuildVisible()
		m.adjustScroll()

	case "C":
		m.setExpandedAll(m.root, false)
		m.root.expanded = true
		m.rebuildVisible()
		m.adjustScroll()

	case "/":
		m.searchMode = true
		m.searchQuery = ""
		m.clearSearch()

	case "n":
		if len(m.matches) > 0 {
			m.jumpToMatch((m.matchIndex + 1) % len(m.matches))
		}

	case "N":
		if len(m.matches) > 0 {
			m.jumpToMatch((m.matchIndex - 1 + len(m.matches)) % len(m.matches))
		}

	case "y":
		m.copyPath()
	}

	return m, nil
}

func (m *TreeModel) setExpandedAll(item *treeItem, expanded bool) {
	if item.isContainer() {
		item.expanded = expanded
	}
	for _, child := range item.children {
		m.setExpandedAll(child, expanded)
	}
}

func (m *TreeModel) clearSearch() {
	m.searchQuery = ""
	m.matches = nil
	m.matchSet = nil
	m.matchIndex = 0
}

// runSearch maps document search hits onto browse items by path. A blank
// query clears the results instead of searching.
func (m *TreeModel) runSearch() {
	m.matches = nil
	m.matchSet = nil
	m.matchIndex = 0
	if strings.TrimSpace(m.searchQuery) == "" {
		return
	}

	hits, err := jsontree.Search(m.value, m.searchQuery, jsontree.SearchOptions{})
	if err != nil {
		return
	}
	m.matchSet = make(map[*treeItem]bool, len(hits))
	for _, hit := range hits {
		if item, ok := m.byPath[hit.Path]; ok && !m.matchSet[item] {
			m.matches = append(m.matches, item)
			m.matchSet[item] = true
		}
	}
	if len(m.matches) > 0 {
		m.jumpToMatch(0)
	}
}

// jumpToMatch selects the given match, expanding its ancestors so it is
// visible.
func (m *TreeModel) jumpToMatch(idx int) {
	if idx < 0 || idx >= len(m.matches) {
		return
	}
	m.matchIndex = idx
	target := m.matches[idx]

	for it := target.parent; it != nil; it = it.parent {
		it.expanded = true
	}
	m.rebuildVisible()

	for i, item := range m.visible {
		if item == target {
			m.cursor = i
			m.adjustScroll()
			return
		}
	}
}

// copyPath copies the selected item's search path to the clipboard.
func (m *TreeModel) copyPath() {
	if m.cursor >= len(m.visible) {
		return
	}
	item := m.visible[m.cursor]
	path := item.path
	if path == "" {
		path = item.node.Key
	}
	if err := clipboard.WriteAll(path); err != nil {
		m.status = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("copied %s", path)
}

func (m *TreeModel) contentHeight() int {
	h := m.height - 4 // title, hint line, status bar, padding
	if h < 1 {
		h = 1
	}
	return h
}

// adjustScroll keeps the cursor inside the viewport.
func (m *TreeModel) adjustScroll() {
	h := m.contentHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

func (m TreeModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("jsonviz"))
	b.WriteString("\n")

	switch {
	case m.searchMode:
		line := fmt.Sprintf("search: %s_", m.searchQuery)
		if len(m.matches) > 0 {
			line += fmt.Sprintf("  (%d matches)", len(m.matches))
		}
		b.WriteString(StyleDim.Render(line))
	case len(m.matches) > 0:
		b.WriteString(StyleDim.Render(fmt.Sprintf("search: %q (%d/%d)  n next  N prev  esc clear",
			m.searchQuery, m.matchIndex+1, len(m.matches))))
	default:
		b.WriteString(StyleDim.Render("↑/↓ move  ⏎ toggle  E/C expand/collapse all  / search  y copy path  q quit"))
	}
	b.WriteString("\n")

	h := m.contentHeight()
	end := m.offset + h
	if end > len(m.visible) {
		end = len(m.visible)
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderItem(m.visible[i], i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus())
	return b.String()
}

// renderItem renders one tree row with indentation and per-kind coloring.
func (m TreeModel) renderItem(item *treeItem, selected bool) string {
	node := item.node
	indent := strings.Repeat("  ", node.Depth)

	indicator := "  "
	if item.isContainer() {
		indicator = iconCollapsed
		if item.expanded {
			indicator = iconExpanded
		}
	}

	var valuePart string
	switch node.Kind {
	case jsontree.KindObject:
		valuePart = styleContainer.Render(fmt.Sprintf(" {%d keys}", len(node.Children)))
	case jsontree.KindArray:
		valuePart = styleContainer.Render(fmt.Sprintf(" [%d items]", len(node.Children)))
	case jsontree.KindString:
		valuePart = styleString.Render(": " + node.Display)
	case jsontree.KindNumber:
		valuePart = styleNumber.Render(": " + node.Display)
	case jsontree.KindBoolean:
		valuePart = styleBoolean.Render(": " + node.Display)
	case jsontree.KindNull:
		valuePart = styleNull.Render(": null")
	}

	line := indent + indicator + styleKey.Render(node.Key) + valuePart

	if selected {
		style := lipgloss.NewStyle().Reverse(true).Bold(true)
		return style.Render(line)
	}
	if m.matchSet[item] {
		return StyleHighlight.Render(line)
	}
	return line
}

func (m TreeModel) renderStatus() string {
	if len(m.visible) == 0 {
		return StyleDim.Render(" empty document")
	}
	item := m.visible[m.cursor]
	path := item.path
	if path == "" {
		path = item.node.Key
	}
	status := fmt.Sprintf(" %d/%d  %s", m.cursor+1, len(m.visible), path)
	if m.status != "" {
		status += "  |  " + m.status
	}
	return StyleDim.Render(status)
}

// runViewer starts the interactive tree browser and blocks until it exits.
func runViewer(value jsontree.Value, root *jsontree.Node) error {
	model := NewTreeModel(value, root)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
