// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// VersionSnapshot is an immutable, timestamped copy of a document saved on
// explicit user action. CreatedAt is assigned at creation and never mutated.
type VersionSnapshot struct {
	VersionID   string    `json:"version_id"`
	VersionName string    `json:"version_name"`
	CreatedAt   time.Time `json:"created_at"`
	Document    Document  `json:"document"`
}

// VersionSummary is the listing view of a snapshot: identity and timestamp
// only, so listing stays cheap.
type VersionSummary struct {
	VersionID   string    `json:"version_id"`
	VersionName string    `json:"version_name"`
	CreatedAt   time.Time `json:"created_at"`
}
