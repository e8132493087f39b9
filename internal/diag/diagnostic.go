package diag

import "solstice/internal/source"

// Note is a secondary span/message attached to a Diagnostic for extra context.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single reported finding.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// WithNote appends a note and returns the updated diagnostic.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
