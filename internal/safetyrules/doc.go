// Package safetyrules is the configuration contract of the safety rules
// component of a validator.
//
// A [Config] tells the consensus engine where safety rules run ([Service]),
// which secure backend holds its keys and, on test networks, which
// ephemeral keys to use ([TestConfig]). The package only declares these
// choices; spawning threads or processes, opening backends and speaking the
// RPC protocol belong to the engine.
//
// Decoding is strict: an unknown field at any level, an unknown variant
// discriminator or a missing required field is a [*ParseError]. Fields that
// are absent from the input keep the values of [DefaultConfig].
//
// Nothing in this package logs, retries or starts goroutines.
package safetyrules
