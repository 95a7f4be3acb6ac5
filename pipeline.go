package hxl

import (
	"time"

	"github.com/google/uuid"

	"github.com/hxlconf/hxl/internal/ast"
	"github.com/hxlconf/hxl/internal/cache"
	"github.com/hxlconf/hxl/internal/deserialize"
	"github.com/hxlconf/hxl/internal/hxlerr"
	"github.com/hxlconf/hxl/internal/lexer"
	"github.com/hxlconf/hxl/internal/parser"
	"github.com/hxlconf/hxl/internal/schema"
	"github.com/hxlconf/hxl/internal/semantic"
	"github.com/hxlconf/hxl/internal/token"
	"github.com/hxlconf/hxl/internal/transform"
)

// syntaxCache memoizes the post-Transformer Document produced by CheckSyntax,
// keyed by source text. Process itself never consults it: schema validation
// and deserialization depend on the caller-supplied Schema and Protocol, so
// their results aren't safe to reuse across calls with different arguments.
var syntaxCache = &cache.Cache{}

// StageDurations reports how long each present pipeline stage took. A zero
// value means the stage did not run, because an earlier stage short-circuited
// the pipeline.
type StageDurations struct {
	Tokenization     time.Duration
	Parsing          time.Duration
	SemanticAnalysis time.Duration
	Transformation   time.Duration
	SchemaValidation time.Duration
	Deserialization  time.Duration
}

// Total returns the sum of every stage duration that ran (invariant 6, spec
// §8).
func (d StageDurations) Total() time.Duration {
	return d.Tokenization + d.Parsing + d.SemanticAnalysis + d.Transformation +
		d.SchemaValidation + d.Deserialization
}

// ProcessResult is what Process returns: Durations for every stage that ran,
// and, on failure, a non-empty Errors from whichever stage failed first.
type ProcessResult struct {
	// RunID uniquely identifies this call to Process, for correlating log
	// lines or metrics emitted around a single run.
	RunID string

	Durations StageDurations
	Errors    ErrorList
}

// Process runs the full HXL pipeline over source: tokenize, parse, analyze,
// resolve inheritance, validate against schema, then deserialize into
// protocol's handles. It stops and returns at the first stage that produces
// errors (spec §2, §4.7): Tokenizer and Parser each return a single Error
// wrapped in a one-element ErrorList; Semantic Analyzer, Schema Validator,
// and Deserializer each return their full collected list.
//
// schema and protocol are borrowed, immutable for the duration of the call.
func Process(source string, s Schema, p Protocol) ProcessResult {
	result := ProcessResult{RunID: uuid.NewString()}

	var tokens []token.Token
	result.Durations.Tokenization = timeIt(func() {
		var err *hxlerr.Error
		tokens, err = lexer.Tokenize(source)
		if err != nil {
			result.Errors = hxlerr.List{err}
		}
	})
	if len(result.Errors) > 0 {
		return result
	}

	lines := splitLines(source)

	var doc ast.Document
	result.Durations.Parsing = timeIt(func() {
		var err *hxlerr.Error
		doc, err = parser.Parse(tokens, lines)
		if err != nil {
			result.Errors = hxlerr.List{err}
		}
	})
	if len(result.Errors) > 0 {
		return result
	}

	result.Durations.SemanticAnalysis = timeIt(func() {
		result.Errors = semantic.Analyze(&doc)
	})
	if len(result.Errors) > 0 {
		return result
	}

	result.Durations.Transformation = timeIt(func() {
		transform.Transform(&doc)
	})

	result.Durations.SchemaValidation = timeIt(func() {
		result.Errors = schema.Validate(&doc, &s)
	})
	if len(result.Errors) > 0 {
		return result
	}

	result.Durations.Deserialization = timeIt(func() {
		result.Errors = deserialize.Deserialize(&doc, &p)
	})
	if len(result.Errors) > 0 {
		return result
	}

	return result
}

// CheckSyntax runs the structural half of the pipeline only (Tokenizer,
// Parser, Semantic Analyzer, Transformer): no Schema or Protocol is
// consulted, so it can never report UNKNOWN_NODE_TYPE, UNKNOWN_PROPERTY,
// REQUIRED_PROPERTY_NOT_FOUND, or CANNOT_DESERIALIZE_NODE. ILLEGAL_DATA_TYPE
// appears only in its Parser form (braces on a property not marked "[]").
// It exists for tools like the CLI's "check" subcommand that have a source
// file but no schema to validate it against.
//
// A successful result (no errors) is cached by source text; an unchanged
// source re-checked later returns instantly with a zero StageDurations.
func CheckSyntax(source string) (StageDurations, ErrorList) {
	var d StageDurations

	if _, ok := syntaxCache.Get(source); ok {
		return d, nil
	}

	var tokens []token.Token
	var tokErr *hxlerr.Error
	d.Tokenization = timeIt(func() {
		tokens, tokErr = lexer.Tokenize(source)
	})
	if tokErr != nil {
		return d, hxlerr.List{tokErr}
	}

	lines := splitLines(source)

	var doc ast.Document
	var parseErr *hxlerr.Error
	d.Parsing = timeIt(func() {
		doc, parseErr = parser.Parse(tokens, lines)
	})
	if parseErr != nil {
		return d, hxlerr.List{parseErr}
	}

	var errs hxlerr.List
	d.SemanticAnalysis = timeIt(func() {
		errs = semantic.Analyze(&doc)
	})
	if len(errs) > 0 {
		return d, errs
	}

	d.Transformation = timeIt(func() {
		transform.Transform(&doc)
	})

	syntaxCache.Put(source, doc)
	return d, nil
}

func timeIt(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}

func splitLines(source string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			lines = append(lines, source[start:i])
			start = i + 1
		}
	}
	lines = append(lines, source[start:])
	return lines
}
