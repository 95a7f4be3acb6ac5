// Package deserialize implements the Deserializer (spec §4.6): the final
// stage that dispatches a validated Document's nodes into caller-provided
// handles, converting each raw NodeProperty into a typed Value along the way.
package deserialize

import (
	"fmt"
	"strconv"

	"github.com/hxlconf/hxl/internal/ast"
	"github.com/hxlconf/hxl/internal/datatype"
	"github.com/hxlconf/hxl/internal/hxlerr"
)

// ValueKind tags which field of a Value is populated, the way
// tunascript/syntax.ValueType tags a tunascript Value.
type ValueKind int

const (
	KindBool ValueKind = iota
	KindInt
	KindFloat
	KindString
	KindNodeRef
	KindIntArray
	KindFloatArray
	KindStringArray
)

// NodeRef is a deserialized reference to another node by name.
type NodeRef struct {
	References string
}

// Value is a deserialized property value. Exactly one of its fields is
// meaningful, selected by Kind.
type Value struct {
	kind ValueKind

	b   bool
	i   int
	f   float64
	s   string
	ref NodeRef

	ints    []int
	floats  []float64
	strings []string
}

func (v Value) Kind() ValueKind       { return v.kind }
func (v Value) Bool() bool            { return v.b }
func (v Value) Int() int              { return v.i }
func (v Value) Float() float64        { return v.f }
func (v Value) String() string        { return v.s }
func (v Value) NodeRef() NodeRef      { return v.ref }
func (v Value) IntArray() []int       { return v.ints }
func (v Value) FloatArray() []float64 { return v.floats }
func (v Value) StringArray() []string { return v.strings }

// Node is what a Node looks like once deserialized: a name and its
// properties, each reduced to a typed Value.
type Node struct {
	Name       string
	Properties map[string]Value
}

// Handle is a callback a Protocol registers for a given node type.
type Handle func(Node)

// ProtocolHandle binds a Handle to the node type it fires for.
type ProtocolHandle struct {
	NodeType string
	Handle   Handle
}

// Protocol is the caller-supplied registry of handles the Deserializer
// dispatches to. Multiple handles registered for the same node type all
// fire, in registration order, for every matching node.
type Protocol struct {
	Handles []ProtocolHandle
}

// Deserialize runs the Deserializer stage. Coverage is checked before any
// handle fires: if any node's type has no matching handle, dispatch is
// skipped entirely and only the coverage errors are returned (spec §4.6).
func Deserialize(doc *ast.Document, p *Protocol) hxlerr.List {
	var errs hxlerr.List

	for i := range doc.Nodes {
		n := &doc.Nodes[i]
		covered := false
		for _, h := range p.Handles {
			if h.NodeType == n.Type {
				covered = true
				break
			}
		}
		if !covered {
			errs = append(errs, &hxlerr.Error{
				Code:    hxlerr.CannotDeserializeNode,
				Message: fmt.Sprintf("Missing deserializer for: %s", n.Type),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	for i := range doc.Nodes {
		n := &doc.Nodes[i]
		deserialized := toNode(n)
		for _, h := range p.Handles {
			if h.NodeType == n.Type {
				h.Handle(deserialized)
			}
		}
	}

	return nil
}

func toNode(n *ast.Node) Node {
	props := make(map[string]Value, len(n.Properties))
	for i := range n.Properties {
		p := &n.Properties[i]
		props[p.Name] = toValue(p)
	}
	return Node{Name: n.Name, Properties: props}
}

// toValue converts a raw NodeProperty into its typed Value. The preceding
// pipeline stages guarantee every value token's text matches its inferred
// dataType, so the numeric conversions here cannot fail on well-formed
// input; a failure here is a programmer error, not a user-facing one (spec
// §4.6, §9).
func toValue(p *ast.NodeProperty) Value {
	if len(p.Values) > 1 {
		switch p.DataType {
		case datatype.Int:
			out := make([]int, len(p.Values))
			for i, s := range p.Values {
				out[i] = mustAtoi(s)
			}
			return Value{kind: KindIntArray, ints: out}
		case datatype.Float:
			out := make([]float64, len(p.Values))
			for i, s := range p.Values {
				out[i] = mustAtof(s)
			}
			return Value{kind: KindFloatArray, floats: out}
		case datatype.String:
			out := make([]string, len(p.Values))
			copy(out, p.Values)
			return Value{kind: KindStringArray, strings: out}
		default:
			panic(fmt.Sprintf("data type not allowed in arrays: %s", p.DataType))
		}
	}

	v := p.Values[0]
	switch p.DataType {
	case datatype.Bool:
		return Value{kind: KindBool, b: v == "true"}
	case datatype.Float:
		return Value{kind: KindFloat, f: mustAtof(v)}
	case datatype.Int:
		return Value{kind: KindInt, i: mustAtoi(v)}
	case datatype.NodeRef:
		return Value{kind: KindNodeRef, ref: NodeRef{References: v}}
	default:
		return Value{kind: KindString, s: v}
	}
}

func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(fmt.Sprintf("invalid integer literal reached the deserializer: %q", s))
	}
	return n
}

func mustAtof(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(fmt.Sprintf("invalid float literal reached the deserializer: %q", s))
	}
	return f
}
