package api

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/nauticalab/tsconfig-engine/pkg/tsconfig"
)

// MaxDocumentSize is the largest request body accepted by Parse.
const MaxDocumentSize = 1 << 20

// Handler holds dependencies for HTTP handlers
type Handler struct {
	// parsers holds one parser per trailing comma policy
	parsers map[tsconfig.TrailingCommaPolicy]*tsconfig.Parser
	// version is the application version
	version string
	// gitCommit is the git commit hash of the build
	gitCommit string
	// buildTime is the time when the application was built
	buildTime string
	// goVersion is the Go version used to build the application
	goVersion string
}

// NewHandler creates a new Handler instance
func NewHandler(version, gitCommit, buildTime, goVersion string) *Handler {
	return &Handler{
		parsers: map[tsconfig.TrailingCommaPolicy]*tsconfig.Parser{
			tsconfig.TrailingCommasObjects: tsconfig.NewParser(tsconfig.Options{TrailingCommas: tsconfig.TrailingCommasObjects}),
			tsconfig.TrailingCommasAll:     tsconfig.NewParser(tsconfig.Options{TrailingCommas: tsconfig.TrailingCommasAll}),
		},
		version:   version,
		gitCommit: gitCommit,
		buildTime: buildTime,
		goVersion: goVersion,
	}
}

// Health handles GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Version handles GET /api/v1/version
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, VersionResponse{
		Version:   h.version,
		GitCommit: h.gitCommit,
		BuildTime: h.buildTime,
		GoVersion: h.goVersion,
	})
}

// Enums handles GET /api/v1/enums
func (h *Handler) Enums(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, EnumsResponse{Vocabularies: tsconfig.Vocabularies()})
}

// Parse handles POST /api/v1/parse
// The body is the raw configuration text. The trailingCommas query
// parameter selects the trailing comma policy.
func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	policy := tsconfig.TrailingCommasObjects
	if v := r.URL.Query().Get("trailingCommas"); v != "" {
		policy = tsconfig.TrailingCommaPolicy(v)
	}
	parser, ok := h.parsers[policy]
	if !ok {
		respondBadRequest(w, fmt.Sprintf("Unknown trailingCommas policy %q (expected objects or all)", policy))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxDocumentSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondTooLarge(w, fmt.Sprintf("Document exceeds %d bytes", MaxDocumentSize))
			return
		}
		respondBadRequest(w, "Failed to read request body")
		return
	}

	result, err := parser.Parse(string(body))
	if err != nil {
		log.Printf("Parse rejected (%s): %v", tsconfig.CategoryOf(err), err)
		respondParseError(w, err)
		return
	}

	respondSuccess(w, ParseResponse{
		Document:     result.Document,
		Deprecations: result.Deprecations,
	})
}
