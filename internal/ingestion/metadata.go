package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Metadata describes an ingested document (CV file or job posting)
type Metadata struct {
	Source    string `json:"source,omitempty"` // file path or URL
	Kind      string `json:"kind,omitempty"`   // "cv" or "job"
	Timestamp string `json:"timestamp"`        // RFC3339 format
	Hash      string `json:"hash"`             // SHA256 hex digest
	CharCount int    `json:"char_count"`
}

// NewMetadata creates a Metadata instance with the current timestamp
func NewMetadata(content, source, kind string) *Metadata {
	return &Metadata{
		Source:    source,
		Kind:      kind,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
		CharCount: len(content),
	}
}

func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
