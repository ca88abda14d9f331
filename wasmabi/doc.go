// Package wasmabi maps value types across the WebAssembly boundary.
//
// The frontend direction turns wazero value types and WIT primitive
// types into IR value types; the emission direction picks the wazero
// carrier type for an IR scalar. Only type-level mapping lives here:
// instruction, function, and module representations belong to the
// stages that consume these types.
//
// Booleans have no wasm representation of their own, so emission places
// them in their integer carriers (b64 in i64, everything narrower in
// i32). Vector and void types have no carrier and are rejected.
package wasmabi
