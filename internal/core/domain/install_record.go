package domain

import "time"

// InstallRecord describes a package installed by a run.
type InstallRecord struct {
	Name        string    `json:"name"`
	Version     string    `json:"version,omitzero"`
	Lane        string    `json:"lane,omitzero"`
	SourceHash  string    `json:"source_hash,omitzero"`
	Artifact    string    `json:"artifact,omitzero"`
	InstalledAt time.Time `json:"installed_at,omitzero"`
}
