package source

// FileID identifies the source file a Span points into. This core never
// loads or reads files itself; a FileID is an opaque tag supplied by the
// AST collaborator, useful only for grouping and ordering spans.
type FileID uint32
