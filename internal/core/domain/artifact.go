package domain

import "time"

// Artifact records a successfully built environment for one variant.
// Only a fully successful sequence of install steps yields an artifact;
// a failed build publishes nothing.
type Artifact struct {
	VariantID   string            `json:"variant_id"`
	Base        string            `json:"base,omitzero"`
	Fingerprint string            `json:"fingerprint"`
	Steps       int               `json:"steps"`
	Env         map[string]string `json:"env,omitempty"`
	Timestamp   time.Time         `json:"timestamp,omitzero"`
}
