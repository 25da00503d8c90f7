// Package fuzztests houses Go fuzz harnesses for the report pipeline
// (source decoding -> line classification -> ordering -> rendering). They
// guard against panics on arbitrary logs and check the plan invariants and
// output determinism on every input.
package fuzztests
