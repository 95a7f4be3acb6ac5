// Package ast holds the Parser's output data model: Document, Node, and the
// raw (pre-deserialization) NodeProperty, as described in spec §3.
package ast

import "github.com/hxlconf/hxl/internal/datatype"

// Inheritance is a node's "<= Parent" clause.
type Inheritance struct {
	From string
}

// NodeProperty is a single key under a Node, still in its raw, un-typed-value
// form: every value is the lexeme text that produced it, tagged with the
// DataType inferred at parse time.
type NodeProperty struct {
	Name     string
	Values   []string
	DataType datatype.DataType
}

// Node is a single `<Type> Name [ <= Parent ]` declaration and its indented
// properties.
type Node struct {
	Type        string
	Name        string
	Properties  []NodeProperty
	Inheritance *Inheritance
}

// Property looks up a property on the node by name.
func (n *Node) Property(name string) (*NodeProperty, bool) {
	for i := range n.Properties {
		if n.Properties[i].Name == name {
			return &n.Properties[i], true
		}
	}
	return nil, false
}

// HasProperty reports whether the node declares a property with the given
// name.
func (n *Node) HasProperty(name string) bool {
	_, ok := n.Property(name)
	return ok
}

// Document is the ordered sequence of Nodes produced by the Parser.
// Insertion order is the source declaration order and is preserved through
// every later stage (spec §3, invariant 5).
type Document struct {
	Nodes []Node
}

// NodeByName returns the first node with the given name, if any.
func (d *Document) NodeByName(name string) (*Node, bool) {
	for i := range d.Nodes {
		if d.Nodes[i].Name == name {
			return &d.Nodes[i], true
		}
	}
	return nil, false
}
