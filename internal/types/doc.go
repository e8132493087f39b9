// Package types is the type interner: the compiler's single source of
// truth for type identity. It canonicalizes a recursive universe of
// structural and nominal types into de-duplicated TypeID handles, so that
// handle equality always implies semantic type equality.
//
// The package owns every type value. Name resolution, expression checking,
// and code generation (all out of scope here) call the factory methods
// below, receive a TypeID, and compare/hash types by that ID alone — never
// by re-deriving structural equality themselves.
//
// Atoms (bool, address, the 32 signed/unsigned integer widths, the 32
// fixed-bytes widths, the four magic namespaces, the empty tuple, the
// canonical bytes/string storage-and-memory arrays, and the inaccessible
// dynamic marker) are pre-populated by NewInterner and have process
// lifetime: Reset never invalidates them. Everything else lives in a
// content-keyed cache that Reset clears in one step.
package types
