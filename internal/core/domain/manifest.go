package domain

import "time"

// Manifest records one installed package inside a prefix. It is what
// `protopack list` reads back and what makes re-builds idempotent: a build
// whose tree hash matches the stored manifest is a cache hit.
type Manifest struct {
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	BuildNumber int       `json:"build_number"`
	BuildString string    `json:"build_string"`
	TreeHash    string    `json:"tree_hash"`
	FileCount   int       `json:"file_count,omitzero"`
	BuildID     string    `json:"build_id,omitzero"`
	Home        string    `json:"home,omitzero"`
	License     string    `json:"license,omitzero"`
	InstalledAt time.Time `json:"installed_at,omitzero"`
}
