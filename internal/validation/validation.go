// Package validation turns zog issue maps into a typed error that callers
// can inspect field by field.
package validation

import (
	"fmt"
	"sort"
	"strings"

	z "github.com/Oudwins/zog"
)

// firstIssueKey is the summary entry zog adds next to the per-field issues.
const firstIssueKey = "$first"

// Error reports a value that failed its schema before any request was sent.
type Error struct {
	// Subject names what was validated, e.g. "login request".
	Subject string
	// Issues maps a field path (e.g. "Username", "Products[0].Quantity")
	// to its messages.
	Issues map[string][]string
}

func (e *Error) Error() string {
	fields := e.Fields()
	if len(fields) == 0 {
		return fmt.Sprintf("invalid %s", e.Subject)
	}
	return fmt.Sprintf("invalid %s: %s", e.Subject, strings.Join(fields, ", "))
}

// Fields returns the failing field paths in stable order.
func (e *Error) Fields() []string {
	fields := make([]string, 0, len(e.Issues))
	for f := range e.Issues {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Has reports whether field (or one of its nested paths) failed. Field
// names are compared case-insensitively.
func (e *Error) Has(field string) bool {
	field = strings.ToLower(field)
	for f := range e.Issues {
		f = strings.ToLower(f)
		if f == field || strings.HasPrefix(f, field+".") || strings.HasPrefix(f, field+"[") {
			return true
		}
	}
	return false
}

// Struct validates v, which must be a pointer to a struct, against schema.
func Struct(subject string, schema *z.StructSchema, v any) error {
	issues := schema.Validate(v)
	if len(issues) == 0 {
		return nil
	}

	collected := z.Issues.SanitizeMapAndCollect(issues)
	delete(collected, firstIssueKey)
	return &Error{Subject: subject, Issues: collected}
}

// Field records a single failing field, for checks zog cannot express.
func Field(subject, field, msg string) error {
	return &Error{Subject: subject, Issues: map[string][]string{field: {msg}}}
}
