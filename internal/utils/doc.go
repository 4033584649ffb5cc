// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across the
// configuration packages.
//
// It holds the strict JSON decoding shared by every configuration type:
// exact-key matching, rejection of unknown fields, repeated keys, misplaced
// nulls and trailing data, and the encoding of internally tagged objects
// whose "type" key selects a variant.
package utils
