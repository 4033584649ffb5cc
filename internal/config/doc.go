// Package config provides configuration loading, merging, and validation
// facilities for the safety rules host process.
//
// Host options ([HostConfig]) are assembled from multiple sources in the
// following priority order (later sources override earlier non-zero fields):
//  1. Environment variables prefixed with SAFETY_RULES_
//  2. Command-line flags
//
// The main entry points are [GetHostConfig] for the host options and
// [GetSafetyRulesConfig] for the safety rules configuration file they point
// at.
package config
