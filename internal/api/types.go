package api

import (
	"time"

	"github.com/nauticalab/tsconfig-engine/pkg/tsconfig"
)

// ParseResponse is the response for a successful parse
type ParseResponse struct {
	Document     *tsconfig.Document     `json:"document"`
	Deprecations []tsconfig.Deprecation `json:"deprecations"`
}

// EnumsResponse represents the response for listing enum vocabularies
type EnumsResponse struct {
	Vocabularies []tsconfig.Vocabulary `json:"vocabularies"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// VersionResponse represents the version information
type VersionResponse struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion,omitempty"`
}

// ErrorResponse represents an error response. The parse fields are set
// only for 422 responses.
type ErrorResponse struct {
	Error    string   `json:"error"`
	Message  string   `json:"message"`
	Code     int      `json:"code"`
	Category string   `json:"category,omitempty"`
	Field    string   `json:"field,omitempty"`
	Token    string   `json:"token,omitempty"`
	Expected []string `json:"expected,omitempty"`
	Line     int      `json:"line,omitempty"`
	Column   int      `json:"column,omitempty"`
}
