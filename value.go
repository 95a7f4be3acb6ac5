package hxl

import "github.com/hxlconf/hxl/internal/deserialize"

// Value, ValueKind, NodeRef, and Node are aliased from internal/deserialize
// for the same reason Error is aliased from internal/hxlerr: the
// Deserializer and its callers need the same concrete type without the
// internal package importing the root one.
type Value = deserialize.Value
type ValueKind = deserialize.ValueKind
type NodeRef = deserialize.NodeRef
type Node = deserialize.Node

const (
	KindBool        = deserialize.KindBool
	KindInt         = deserialize.KindInt
	KindFloat       = deserialize.KindFloat
	KindString      = deserialize.KindString
	KindNodeRef     = deserialize.KindNodeRef
	KindIntArray    = deserialize.KindIntArray
	KindFloatArray  = deserialize.KindFloatArray
	KindStringArray = deserialize.KindStringArray
)
