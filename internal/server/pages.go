package server

import (
	"fmt"
	"net/http"

	"loantracker/internal/utils"
	"loantracker/pkg/types"
)

const (
	statusSet    = "✅ Set"
	statusNotSet = "❌ Not Set"

	maxDiagnosticErrLen = 50
)

func (s *Service) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, types.RootResponse{Message: "Loan Utilization Tracker Backend Running"})
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleDiagnostics reports whether persistence is configured and reachable.
// It always answers 200; a degraded store shows up in the body.
func (s *Service) handleDiagnostics(w http.ResponseWriter, r *http.Request) {
	resp := types.DiagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      setOrNotSet(s.config.DatabaseURL),
		DatabaseName:     setOrNotSet(s.config.DatabaseName),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if s.store != nil {
		resp.Database = "✅ Available"
		resp.ConnectionStatus = "Connected"

		collections, err := s.store.Collections(r.Context())
		if err != nil {
			s.logger.WithError(err).Warn("failed to list collections")
			resp.Database = fmt.Sprintf("⚠️  Connected but Error: %s", utils.Truncate(err.Error(), maxDiagnosticErrLen))
		} else {
			resp.Collections = collections
			resp.Database = "✅ Connected & Working"
		}
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func setOrNotSet(v string) string {
	if v == "" {
		return statusNotSet
	}
	return statusSet
}
