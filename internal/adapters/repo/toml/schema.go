package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Session *sessionSchema `toml:"session,omitempty"`
	History []viewSchema   `toml:"history,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported state schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

// sessionSchema stores everything about the signed-in session except the
// token itself, which lives in the secret store under secret_ref.
type sessionSchema struct {
	DisplayName string `toml:"display_name,omitempty"`
	Email       string `toml:"email,omitempty"`
	SecretRef   string `toml:"secret_ref"`
	SavedAt     string `toml:"saved_at,omitempty"`
}

type viewSchema struct {
	PaperID  string `toml:"paper_id"`
	Title    string `toml:"title,omitempty"`
	ViewedAt string `toml:"viewed_at,omitempty"`
}
