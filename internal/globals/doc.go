// Package globals implements the Global Context: the small container that
// publishes the compiler's built-in declarations (block, msg, assert,
// require, keccak256, and the rest of spec.md §4.2's table) and lazily
// materializes the contextual "this"/"super" declarations for whichever
// contract is currently being analyzed.
//
// Construction uses an *types.Interner (injected, per spec.md §9's design
// note, rather than reached through a hidden global) to build every
// declaration's type exactly once.
package globals
