package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"simples/internal/simples/model"
	"simples/internal/simples/repository"

	"go.uber.org/zap"
)

var (
	ErrMissingParams = errors.New("missing parameters")
	ErrBadRequest    = errors.New("bad request")
	ErrNotFound      = errors.New("not found")
	ErrDatabase      = errors.New("database error")
)

// Lookup outcomes reported to the LookupObserver.
const (
	OutcomeFound      = "found"
	OutcomeNotFound   = "not_found"
	OutcomeBadRequest = "bad_request"
	OutcomeError      = "error"
)

type SystemService interface {
	GetSystem(ctx context.Context, req model.GetSystemReq) (*model.SystemRecord, error)
}

// LookupObserver receives one call per GetSystem.
type LookupObserver interface {
	ObserveLookup(outcome string, elapsed time.Duration)
}

type noopObserver struct{}

func (noopObserver) ObserveLookup(string, time.Duration) {}

type Service struct {
	Repo     repository.SystemRepository
	Logger   *zap.Logger
	Observer LookupObserver
}

func NewService(repo repository.SystemRepository, logger *zap.Logger, observer LookupObserver) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if observer == nil {
		observer = noopObserver{}
	}
	return &Service{Repo: repo, Logger: logger, Observer: observer}
}

// GetSystem validates the raw identifiers and looks the row up with them
// unchanged; "007" is queried as "007", not 7.
func (s *Service) GetSystem(ctx context.Context, req model.GetSystemReq) (*model.SystemRecord, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		s.Observer.ObserveLookup(OutcomeBadRequest, time.Since(start))
		if errors.Is(err, model.ErrMissingParams) {
			return nil, ErrMissingParams
		}
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	rec, err := s.Repo.FindSystem(ctx, req.MapID, req.SystemID)
	switch {
	case err == nil:
		s.Observer.ObserveLookup(OutcomeFound, time.Since(start))
		return rec, nil
	case errors.Is(err, repository.ErrNotFound):
		s.Observer.ObserveLookup(OutcomeNotFound, time.Since(start))
		return nil, ErrNotFound
	default:
		s.Observer.ObserveLookup(OutcomeError, time.Since(start))
		s.Logger.Error("Database error",
			zap.String("mapId", req.MapID),
			zap.String("systemId", req.SystemID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
}
