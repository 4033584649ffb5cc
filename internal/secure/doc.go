// Package secure declares which secure storage backend holds the safety
// rules key material.
//
// Only the selection is modelled here: a [Backend] value names the variant
// and carries the settings an external implementation needs to open it.
// Nothing in this package reads or writes keys.
package secure
