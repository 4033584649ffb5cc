// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package host implements the startup sequence of a process that owns a
// safety rules configuration.
//
// It resolves the declared remote endpoint when asked to, provisions
// ephemeral test keys from a seeded source and reports what the consensus
// engine is about to be handed. Every failure is returned to the caller,
// which is expected to abort boot.
package host
