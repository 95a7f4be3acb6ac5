package hxl

import "github.com/hxlconf/hxl/internal/deserialize"

// Handle is a callback registered for a node type; it fires once per
// matching node, in the order its ProtocolHandle appears in Protocol.Handles.
type Handle = deserialize.Handle

// ProtocolHandle binds a Handle to the node type it fires for.
type ProtocolHandle = deserialize.ProtocolHandle

// Protocol is the caller-supplied registry of handles the Deserializer
// dispatches deserialized nodes to.
type Protocol = deserialize.Protocol
