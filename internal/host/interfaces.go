// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

import "context"

// Host defines the minimal lifecycle contract of a safety rules host.
type Host interface {
	// Boot runs the startup steps and returns what was decided.
	Boot(ctx context.Context) (Summary, error)
}
