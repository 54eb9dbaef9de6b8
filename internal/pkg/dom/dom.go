// Package dom models the small part of a document the widgets need: finding
// an element by id and replacing its text content.
package dom

import "sync"

type Element interface {
	SetText(text string)
	Text() string
}

type Document interface {
	// ElementByID returns the element with the given id, or false when the
	// document has none.
	ElementByID(id string) (Element, bool)
}

// Page is an in-memory Document whose elements are declared up front.
// The HTTP host builds one per request and renders its texts into the
// page template.
type Page struct {
	mu       sync.RWMutex
	elements map[string]*Node
}

// Node is a Page element.
type Node struct {
	mu   sync.RWMutex
	id   string
	text string
}

func NewPage(ids ...string) *Page {
	p := &Page{elements: make(map[string]*Node, len(ids))}
	for _, id := range ids {
		p.Add(id, "")
	}
	return p
}

// Add declares an element with initial text, replacing any element with the same id.
func (p *Page) Add(id, text string) *Node {
	n := &Node{id: id, text: text}
	p.mu.Lock()
	p.elements[id] = n
	p.mu.Unlock()
	return n
}

func (p *Page) ElementByID(id string) (Element, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	n, ok := p.elements[id]
	if !ok {
		return nil, false
	}
	return n, true
}

// Text returns the text of id, or "" for unknown ids.
func (p *Page) Text(id string) string {
	el, ok := p.ElementByID(id)
	if !ok {
		return ""
	}
	return el.Text()
}

func (n *Node) ID() string {
	return n.id
}

func (n *Node) SetText(text string) {
	n.mu.Lock()
	n.text = text
	n.mu.Unlock()
}

func (n *Node) Text() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.text
}
