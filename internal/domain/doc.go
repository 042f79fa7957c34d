// Package domain contains the crate stacks, crane instructions and the
// simulator that applies them.
//
// The domain is format- and storage-agnostic: it does not parse text, read
// files or know about YAML. Infra adapters map into these types.
package domain
