package hxl

import "github.com/hxlconf/hxl/internal/hxlerr"

// Error and ErrorCode are aliased from internal/hxlerr rather than
// redeclared, the way tunascript.AST aliases syntax.AST: the type is owned
// by a dependency-free leaf package so every pipeline stage can use it
// without importing the root package, and re-exported here for callers.
type Error = hxlerr.Error
type ErrorCode = hxlerr.Code
type ErrorList = hxlerr.List

const (
	ErrEmpty                    = hxlerr.Empty
	ErrInvalidEOF               = hxlerr.InvalidEOF
	ErrUnexpectedToken          = hxlerr.UnexpectedToken
	ErrSyntaxError              = hxlerr.SyntaxError
	ErrIllegalWhitespace        = hxlerr.IllegalWhitespace
	ErrIllegalComment           = hxlerr.IllegalComment
	ErrNodeReferenceNotFound    = hxlerr.NodeReferenceNotFound
	ErrCircularNodeReference    = hxlerr.CircularNodeReference
	ErrIllegalInheritance       = hxlerr.IllegalInheritance
	ErrIllegalReference         = hxlerr.IllegalReference
	ErrNonUniqueNode            = hxlerr.NonUniqueNode
	ErrNonUniqueProperty        = hxlerr.NonUniqueProperty
	ErrUnknownNodeType          = hxlerr.UnknownNodeType
	ErrIllegalDataType          = hxlerr.IllegalDataType
	ErrRequiredPropertyNotFound = hxlerr.RequiredPropertyNotFound
	ErrUnknownProperty          = hxlerr.UnknownProperty
	ErrCannotDeserializeNode    = hxlerr.CannotDeserializeNode
)
