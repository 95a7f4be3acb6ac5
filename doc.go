// Package hxl translates HXL source text into strongly-typed domain objects.
//
// HXL is a human-friendly, indentation-sensitive configuration language
// describing a flat collection of named, typed nodes with typed properties,
// inheritance between nodes, and references to nodes by name. Process drives
// the full pipeline: tokenize, parse, run semantic analysis, resolve
// inheritance, validate against a caller-supplied Schema, and dispatch
// deserialized nodes into a caller-supplied Protocol.
package hxl
