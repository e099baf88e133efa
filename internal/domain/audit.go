package domain

import "time"

// ApiLog is one immutable record of a mutating API call. Operator is nil
// when the caller could not be resolved to a registered user.
type ApiLog struct {
	ID         int64     `json:"id"`
	Path       string    `json:"path"`
	Method     string    `json:"method"`
	Operator   *string   `json:"operator"`
	OperatedAt time.Time `json:"operatedAt"`
}

type MethodCount struct {
	Method string `json:"method"`
	Count  int    `json:"count"`
}

type PathCount struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

type ApiLogStats struct {
	ByMethod []MethodCount `json:"byMethod"`
	ByPath   []PathCount   `json:"byPath"`
}

// AuditEvent is the Kafka mirror of a persisted ApiLog record.
type AuditEvent struct {
	EventID    string    `json:"event_id"`
	Service    string    `json:"service"`
	Path       string    `json:"path"`
	Method     string    `json:"method"`
	Operator   string    `json:"operator,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
