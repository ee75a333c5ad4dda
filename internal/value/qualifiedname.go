package value

import "strings"

// Separator is the SysML v2 qualified-name segment separator.
const Separator = "::"

// QualifiedName is an ordered sequence of identifier segments (§3).
// Parsing is total on valid identifier sequences: any non-empty,
// separator-free segment is accepted verbatim, including unicode
// identifiers, so display and re-parse round-trip exactly.
type QualifiedName struct {
	segments []string
}

// New builds a QualifiedName from already-split segments.
func New(segments ...string) QualifiedName {
	cp := make([]string, len(segments))
	copy(cp, segments)
	return QualifiedName{segments: cp}
}

// Parse splits s on "::" into a QualifiedName. An empty string yields a
// zero-segment name.
func Parse(s string) QualifiedName {
	if s == "" {
		return QualifiedName{}
	}
	return QualifiedName{segments: strings.Split(s, Separator)}
}

// String renders the qualified name joined by "::".
func (q QualifiedName) String() string {
	return strings.Join(q.segments, Separator)
}

// Segments returns the underlying segment slice (copy-on-read not
// required: callers treat it as read-only).
func (q QualifiedName) Segments() []string {
	return q.segments
}

// Len reports the number of segments.
func (q QualifiedName) Len() int {
	return len(q.segments)
}

// SimpleName returns the last segment, or "" if empty.
func (q QualifiedName) SimpleName() string {
	if len(q.segments) == 0 {
		return ""
	}
	return q.segments[len(q.segments)-1]
}

// Parent returns all but the last segment.
func (q QualifiedName) Parent() QualifiedName {
	if len(q.segments) <= 1 {
		return QualifiedName{}
	}
	return New(q.segments[:len(q.segments)-1]...)
}

// Child appends a segment and returns the new qualified name.
func (q QualifiedName) Child(segment string) QualifiedName {
	next := make([]string, len(q.segments)+1)
	copy(next, q.segments)
	next[len(q.segments)] = segment
	return QualifiedName{segments: next}
}

// IsEmpty reports whether the name has zero segments.
func (q QualifiedName) IsEmpty() bool {
	return len(q.segments) == 0
}
