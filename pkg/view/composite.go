package view

import "github.com/go-drift/tweak/pkg/dom"

// Part is one child of a Composite: the child view and the element name used
// for its wrapper.
type Part struct {
	Name string
	View View
}

// Composite lays out pre-built child views side by side, each inside its own
// wrapper element, in the order given. It never builds its children; it only
// embeds their root elements.
type Composite struct {
	Base
	children []View
}

// NewComposite embeds parts under a root carrying ClassName(block)().
func NewComposite(doc *dom.Document, block string, parts ...Part) *Composite {
	cn := ClassName(block)
	v := &Composite{Base: NewBase(doc, cn())}
	for _, p := range parts {
		wrapper := doc.CreateElement("div")
		wrapper.AddClass(cn(p.Name))
		if el := p.View.Element(); el != nil {
			wrapper.AppendChild(el)
		}
		v.element.AppendChild(wrapper)
		v.children = append(v.children, p.View)
	}
	return v
}

// Dispose disposes every child in construction order, then releases the
// composite's own root.
func (v *Composite) Dispose() {
	if v.disposed {
		return
	}
	for _, c := range v.children {
		c.Dispose()
	}
	v.children = nil
	v.Base.Dispose()
}
