// Package dom is the small element tree views render into.
//
// It stands in for a host UI toolkit: elements carry a tag, CSS-like classes,
// inline style properties and a text value, and canvas elements can hand out a
// drawing surface. Hosts decide what a surface is by supplying a
// SurfaceProvider to the Document.
package dom

import (
	"slices"
	"sort"
)

// Element is a node in the tree.
type Element struct {
	tag      string
	classes  []string
	style    map[string]string
	text     string
	children []*Element
	parent   *Element

	listeners []*eventListener
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.tag
}

// AddClass appends class names that are not already present.
func (e *Element) AddClass(names ...string) {
	for _, n := range names {
		if !slices.Contains(e.classes, n) {
			e.classes = append(e.classes, n)
		}
	}
}

// HasClass reports whether the element carries name.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// Classes returns a copy of the class list in insertion order.
func (e *Element) Classes() []string {
	return slices.Clone(e.classes)
}

// SetStyle sets an inline style property. An empty value removes it.
func (e *Element) SetStyle(prop, value string) {
	if value == "" {
		delete(e.style, prop)
		return
	}
	if e.style == nil {
		e.style = make(map[string]string)
	}
	e.style[prop] = value
}

// Style returns an inline style property, or "" when unset.
func (e *Element) Style(prop string) string {
	return e.style[prop]
}

// SetText sets the element's text value (the content of an input, a label).
func (e *Element) SetText(text string) {
	e.text = text
}

// Text returns the element's text value.
func (e *Element) Text() string {
	return e.text
}

// AppendChild attaches child as the last child, detaching it from any previous
// parent first.
func (e *Element) AppendChild(child *Element) {
	if child == nil {
		return
	}
	child.Remove()
	child.parent = e
	e.children = append(e.children, child)
}

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	return slices.Clone(e.children)
}

// Parent returns the parent element, or nil when detached.
func (e *Element) Parent() *Element {
	return e.parent
}

// Remove detaches the element from its parent. Detached elements are left
// alone.
func (e *Element) Remove() {
	p := e.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, e); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	e.parent = nil
}

// Find returns the first descendant (depth first, including e) carrying class.
func (e *Element) Find(class string) *Element {
	if e.HasClass(class) {
		return e
	}
	for _, c := range e.children {
		if found := c.Find(class); found != nil {
			return found
		}
	}
	return nil
}

// DisposeElement detaches e and returns nil so owners can write
//
//	v.marker = dom.DisposeElement(v.marker)
//
// Event listeners registered on e are dropped.
func DisposeElement(e *Element) *Element {
	if e != nil {
		e.Remove()
		e.listeners = nil
	}
	return nil
}

// Node is a plain snapshot of an element subtree, convenient for comparisons.
type Node struct {
	Tag      string
	Classes  []string          `json:",omitempty"`
	Style    map[string]string `json:",omitempty"`
	Text     string            `json:",omitempty"`
	Children []Node            `json:",omitempty"`
}

// Snapshot captures e and its descendants.
func (e *Element) Snapshot() Node {
	n := Node{Tag: e.tag, Text: e.text}
	if len(e.classes) > 0 {
		n.Classes = slices.Clone(e.classes)
	}
	if len(e.style) > 0 {
		n.Style = make(map[string]string, len(e.style))
		keys := make([]string, 0, len(e.style))
		for k := range e.style {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			n.Style[k] = e.style[k]
		}
	}
	for _, c := range e.children {
		n.Children = append(n.Children, c.Snapshot())
	}
	return n
}
