package types

import "time"

// Packet is the instructor-facing pathway packet for one student and trade.
type Packet struct {
	ID              string            `json:"id"`
	Student         string            `json:"student"`
	Trade           string            `json:"trade"`
	ApplicationType ApplicationType   `json:"application_type"`
	Objectives      []string          `json:"objectives"`
	Badges          []CredentialBadge `json:"badges"`
	Artifacts       []ArtifactRecord  `json:"artifacts"`
	Sources         []string          `json:"sources,omitempty"`
	GeneratedAt     time.Time         `json:"generated_at"`
}

// ArtifactRecord is one row of the artifact tracker.
type ArtifactRecord struct {
	Template string            `json:"template"`
	Values   map[string]string `json:"values,omitempty"`
	Complete bool              `json:"complete"`
	Missing  []string          `json:"missing,omitempty"`
}
