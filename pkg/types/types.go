// Package types defines the core value types shared across the
// snapshot/restore engine: the archive manifest, the categorized content
// summary, and the profile metadata record.
package types

import "time"

// SnapshotMetadata describes one saved profile. It is created once at save
// time and treated as an immutable value afterwards; enrichment (publishing)
// produces a new record via Publish rather than mutating the stored one.
type SnapshotMetadata struct {
	Name            string         `json:"name"`
	Version         string         `json:"version"`
	Description     string         `json:"description"`
	Tags            []string       `json:"tags"`
	CreatedAt       time.Time      `json:"createdAt"`
	Platform        string         `json:"platform"`
	IncludesSecrets bool           `json:"includesSecrets"`
	Files           []string       `json:"files"`
	Contents        ContentSummary `json:"contents"`
	ClaudeVersion   string         `json:"claudeVersion"`

	// Set only on published copies, never on the original record.
	Author      string     `json:"author,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// Publish returns a copy of the metadata with author and publish timestamp
// attached. The receiver is not modified; slices are cloned so later edits
// to the copy cannot leak back into the original.
func (m SnapshotMetadata) Publish(author string, at time.Time) SnapshotMetadata {
	published := m
	published.Tags = append([]string(nil), m.Tags...)
	published.Files = append([]string(nil), m.Files...)
	published.Contents = m.Contents.Clone()
	published.Author = author
	published.PublishedAt = &at
	return published
}

// Profile pairs a metadata record with the directory it is stored under.
type Profile struct {
	Name     string
	Dir      string
	Metadata SnapshotMetadata
}

// SaveResult is returned by the save command.
type SaveResult struct {
	ProfileDir string
	Metadata   SnapshotMetadata
}

// LoadResult is returned by the load command.
type LoadResult struct {
	DestDir  string
	Metadata SnapshotMetadata
}

// PreviewResult is returned by the preview command: what a save would
// archive, without writing anything.
type PreviewResult struct {
	Files    []string
	Contents ContentSummary
}
