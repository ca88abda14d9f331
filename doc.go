// Package cinder is the root of a compiler code generation toolkit.
//
// This module holds the value-type layer of the IR and its boundary
// tooling:
//
//	cinder/
//	├── ir/types/     Packed value type codes for SSA values
//	├── wasmabi/      Type mapping across the WebAssembly boundary
//	├── errors/       Structured errors for the boundary layers
//	├── cmd/typegen/  Generator for the type constant catalog
//	└── cmd/typecat/  Catalog inspector and interactive browser
//
// The ir/types package is the core: a one-byte immutable encoding that
// every other stage treats as an opaque comparable token. All of its
// operations are pure functions, so types are safe to copy and share
// across goroutines without synchronization.
package cinder
