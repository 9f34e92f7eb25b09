package toml

import (
	"fmt"
	"time"

	"github.com/solenne/whittle/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Results []resultSchema `toml:"results"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported results schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type resultSchema struct {
	SessionID      string `toml:"session_id"`
	Outcome        string `toml:"outcome"`
	ExclusionsUsed int    `toml:"exclusions_used"`
	Hint           string `toml:"hint,omitempty"`
	FinishedAt     string `toml:"finished_at"`
}

func toSchema(result domain.GameResult) resultSchema {
	return resultSchema{
		SessionID:      result.SessionID,
		Outcome:        string(result.Outcome),
		ExclusionsUsed: result.ExclusionsUsed,
		Hint:           result.Hint,
		FinishedAt:     formatTime(result.FinishedAt),
	}
}

func fromSchema(entry resultSchema) domain.GameResult {
	return domain.GameResult{
		SessionID:      entry.SessionID,
		Outcome:        domain.Outcome(entry.Outcome),
		ExclusionsUsed: entry.ExclusionsUsed,
		Hint:           entry.Hint,
		FinishedAt:     parseTime(entry.FinishedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
