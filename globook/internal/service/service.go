package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/globook/globook-backend/globook/internal/errs"
	catchRepo "github.com/globook/globook-backend/globook/internal/repository"
	"github.com/globook/globook-backend/globook/model"
	"github.com/globook/globook-backend/pkg/circuit_breaker"
	"github.com/globook/globook-backend/pkg/validate"
)

type Service struct {
	log      *zap.Logger
	repo     catchRepo.Repository
	cb       circuit_breaker.CircuitBreaker
	validate *validate.CustomValidator
	now      func() time.Time
}

func NewService(repo catchRepo.Repository, log *zap.Logger, cbCfg circuit_breaker.Config) *Service {
	return &Service{
		log:      log.Named("service"),
		repo:     repo,
		cb:       circuit_breaker.New(cbCfg, circuit_breaker.WithFailurePredicate(isStoreFailure)),
		validate: validate.NewCustomValidator(),
		now:      time.Now,
	}
}

// isStoreFailure skips bad data and requests abandoned by the caller.
func isStoreFailure(err error) bool {
	switch {
	case err == nil,
		errors.Is(err, errs.ErrBrokenChain),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	}
	return true
}

func (s *Service) ListCatches(ctx context.Context) ([]model.CatchRecord, error) {
	var records []model.CatchRecord
	err := s.cb.Call(func() error {
		var err error
		records, err = s.repo.ListCatches(ctx)
		return err
	})
	if err != nil {
		if errors.Is(err, circuit_breaker.ErrOpenCB) {
			s.log.Warn("ListCatches rejected", zap.Stringer("breaker", s.cb.State()), zap.Error(err))
		}
		return nil, err
	}
	return records, nil
}

// ReportCatch stores a catch for a copy whose secret the finder knows.
func (s *Service) ReportCatch(ctx context.Context, report model.CatchReport) (int, error) {
	if err := s.validate.Validate(report); err != nil {
		return 0, errors.Wrap(errs.ErrInvalidCatch, err.Error())
	}

	cp, err := s.repo.GetCopy(ctx, report.CopyUID)
	if err != nil {
		return 0, err
	}
	if subtle.ConstantTimeCompare([]byte(cp.Secret), []byte(report.Secret)) != 1 {
		return 0, errs.ErrWrongSecret
	}

	date := s.now().UTC()
	if report.Date != nil {
		date = report.Date.Time
	}
	id, err := s.repo.CreateCatch(ctx, model.Catch{
		CopyUID:     cp.UID,
		Lat:         *report.Lat,
		Lon:         *report.Lon,
		Uncertainty: *report.Uncertainty,
		Date:        date,
		Message:     report.Message,
	})
	if err != nil {
		return 0, err
	}
	s.log.Info("catch reported", zap.Int("id", id), zap.Int("copy_uid", cp.UID))
	return id, nil
}

func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
