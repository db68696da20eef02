package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"loantracker/internal/ai"
	"loantracker/internal/auth"
	"loantracker/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/sirupsen/logrus"
)

// DocumentStore is the persistence gateway the handlers write through. A
// nil store puts the service in degraded mode: reads and writes fail with
// types.ErrStoreUnavailable while the rest of the API keeps serving.
type DocumentStore interface {
	Insert(ctx context.Context, collection string, record any) (string, error)
	Query(ctx context.Context, collection string, filter map[string]any) ([]types.Document, error)
	Collections(ctx context.Context) ([]string, error)
}

const readHeaderTimeout = 10 * time.Second

type Service struct {
	logger *logrus.Logger
	config *types.Config
	store  DocumentStore

	authService *auth.Service
	aiValidator ai.Validator

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	store DocumentStore,
	authService *auth.Service,
	aiValidator ai.Validator,
) (*Service, error) {
	if authService == nil {
		return nil, fmt.Errorf("auth service is required")
	}
	if aiValidator == nil {
		return nil, fmt.Errorf("ai validator is required")
	}

	mux := flow.New()

	s := &Service{
		logger: logger,
		config: config,
		store:  store,

		authService: authService,
		aiValidator: aiValidator,
	}

	s.buildRouter(mux)

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", config.ServerPort),
		Handler:           s.LoggingMiddleware(s.CORS(s.StripTrailingSlash(mux))),
		ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler returns the fully wrapped HTTP handler.
func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.NotFound = http.HandlerFunc(s.handleNotFound)
	r.MethodNotAllowed = http.HandlerFunc(s.handleMethodNotAllowed)

	r.HandleFunc("/", s.handleRoot, http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)
	r.HandleFunc("/test", s.handleDiagnostics, http.MethodGet)

	r.HandleFunc("/auth/request-otp", s.handleRequestOTP, http.MethodPost)
	r.HandleFunc("/auth/verify-otp", s.handleVerifyOTP, http.MethodPost)

	r.HandleFunc("/beneficiaries", s.handleCreateBeneficiary, http.MethodPost)
	r.HandleFunc("/beneficiaries", s.handleListBeneficiaries, http.MethodGet)

	r.HandleFunc("/uploads", s.handleCreateUpload, http.MethodPost)
	r.HandleFunc("/sync", s.handleSyncUploads, http.MethodPost)

	r.HandleFunc("/reviews", s.handleCreateReview, http.MethodPost)
	r.HandleFunc("/reviews", s.handleListReviews, http.MethodGet)

	r.HandleFunc("/ai/validate", s.handleAIValidate, http.MethodPost)
}
