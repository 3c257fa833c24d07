// Package archive persists coset lists and upgrades old encodings.
//
// A list is stored as the group it was built from, never as its
// representatives: decoding rebuilds the list, so two lists decoded from
// equal groups always compare equal.
//
// The wire format is a CBOR map with integer keys:
//
//	1: format version
//	2: level
//	3: generators of H
//	4: representatives as [u, v] arrays (version 1 only)
//
// Version 1 stored the full representative list next to the group. It
// is still accepted: the stored list is checked against the rebuilt one
// and the result is returned as a current list. [Upgrade] rewrites any
// supported encoding in the current version.
package archive
