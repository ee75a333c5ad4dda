// Package model holds the error taxonomy shared across build-time tooling
// (spec ingest, code generation, coverage validation) and the runtime
// library (graph, parser, resolver).
package model

import (
	"encoding/json"
	"errors"
)

// Sentinel errors for programmer-error conditions (nil receivers, nil
// context, id collisions) that are never expected to reach a user.
var (
	ErrNilGraph         = errors.New("modelcore: nil graph")
	ErrNilElement       = errors.New("modelcore: nil element")
	ErrSchemaMismatch   = errors.New("modelcore: element kind not known to this graph's generated taxonomy")
	ErrIDCollision      = errors.New("modelcore: element id already present in graph")
	ErrMergeIDCollision = errors.New("modelcore: merge would collide identities between graphs")
)

// ErrorCode is a closed, stable string enum for build-time failures
// (§7 Error taxonomy: spec-artifact error, coverage error).
type ErrorCode string

const (
	ECNone ErrorCode = ""

	// Spec-artifact errors (C1).
	ECArtifactMissing     ErrorCode = "ERR_ARTIFACT_MISSING"
	ECArtifactMalformed   ErrorCode = "ERR_ARTIFACT_MALFORMED"
	ECArtifactContradicts ErrorCode = "ERR_ARTIFACT_CONTRADICTION"

	// Coverage errors (C2, build-fatal).
	ECTypeCoverageFailed ErrorCode = "ERR_TYPE_COVERAGE"
	ECEnumCoverageFailed ErrorCode = "ERR_ENUM_COVERAGE"
	ECRelConstraintBad   ErrorCode = "ERR_RELATIONSHIP_CONSTRAINT"

	// Structural errors (C3/C4, reportable via Diagnostic rather than
	// BuildError, but the same code space is reused for consistency).
	ECOrphanOwnership  ErrorCode = "ERR_ORPHAN_OWNERSHIP"
	ECOwnershipCycle   ErrorCode = "ERR_OWNERSHIP_CYCLE"
	ECDanglingMember   ErrorCode = "ERR_DANGLING_MEMBERSHIP"
	ECIDCollisionMerge ErrorCode = "ERR_MERGE_ID_COLLISION"

	// Resolution errors (C5, reportable via Diagnostic).
	ECUnresolvedReference ErrorCode = "ERR_UNRESOLVED_REFERENCE"
	ECAmbiguousReference  ErrorCode = "ERR_AMBIGUOUS_REFERENCE"
	ECInheritanceCycle    ErrorCode = "ERR_INHERITANCE_CYCLE"

	// Grammar errors (C4, reportable/recoverable via Diagnostic).
	ECGrammarError ErrorCode = "ERR_GRAMMAR"

	ECConfigError ErrorCode = "ERR_CONFIG"
	ECUnknown     ErrorCode = "ERR_UNKNOWN"
)

// BuildError is the uniform payload for build-time fatal failures (spec
// ingest, code generation, coverage validation). It carries a stable code
// so driver scripts can match on failure class without parsing prose.
type BuildError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Detail  string    `json:"detail,omitempty"`
}

func (e *BuildError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

func (e *BuildError) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// Wrap builds a BuildError with code and msg, folding inner's text into Detail.
func Wrap(code ErrorCode, msg string, inner error) error {
	if inner == nil {
		return &BuildError{Code: code, Message: msg}
	}
	return &BuildError{Code: code, Message: msg, Detail: inner.Error()}
}
