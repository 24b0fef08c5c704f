package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/globook/globook-backend/globook/internal/errs"
	repo_mocks "github.com/globook/globook-backend/globook/internal/repository/mocks"
	"github.com/globook/globook-backend/globook/model"
	"github.com/globook/globook-backend/pkg/circuit_breaker"
)

func ptr[T any](v T) *T { return &v }

var testCBConfig = circuit_breaker.Config{
	RecordLength:     4,
	Timeout:          time.Minute,
	Percentile:       0.5,
	RecoveryRequests: 1,
}

func newTestService(t *testing.T) (*Service, *repo_mocks.MockRepository) {
	c := gomock.NewController(t)
	repo := repo_mocks.NewMockRepository(c)
	svc := NewService(repo, zap.NewNop(), testCBConfig)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestService_ListCatches(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		want := []model.CatchRecord{{ID: 1, Title: "1984"}}
		repo.EXPECT().ListCatches(gomock.Any()).Return(want, nil)

		got, err := svc.ListCatches(context.Background())
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("store down opens breaker", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().ListCatches(gomock.Any()).Return(nil, errors.New("connection refused")).Times(2)

		for i := 0; i < 2; i++ {
			_, err := svc.ListCatches(context.Background())
			require.EqualError(t, err, "connection refused")
		}
		core, logs := observer.New(zap.WarnLevel)
		svc.log = zap.New(core)
		_, err := svc.ListCatches(context.Background())
		require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)

		entries := logs.FilterMessage("ListCatches rejected").All()
		require.Len(t, entries, 1)
		require.Equal(t, "open", entries[0].ContextMap()["breaker"])
	})

	t.Run("broken chain does not open breaker", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().ListCatches(gomock.Any()).Return(nil, errors.Wrap(errs.ErrBrokenChain, "catch 7")).Times(4)

		for i := 0; i < 4; i++ {
			_, err := svc.ListCatches(context.Background())
			require.ErrorIs(t, err, errs.ErrBrokenChain)
		}
	})
}

func TestService_ListCatches_AbandonedRequests(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
	}{
		{name: "canceled", err: context.Canceled},
		{name: "deadline", err: errors.Wrap(context.DeadlineExceeded, "db.Query")},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(t)
			gomock.InOrder(
				repo.EXPECT().ListCatches(gomock.Any()).Return(nil, tt.err).Times(4),
				repo.EXPECT().ListCatches(gomock.Any()).Return([]model.CatchRecord{}, nil),
			)

			for i := 0; i < 4; i++ {
				_, err := svc.ListCatches(context.Background())
				require.ErrorIs(t, err, tt.err)
			}
			got, err := svc.ListCatches(context.Background())
			require.NoError(t, err)
			require.Empty(t, got)
		})
	}
}

func TestService_ReportCatch(t *testing.T) {
	t.Parallel()

	validReport := func() model.CatchReport {
		return model.CatchReport{
			CopyUID:     1,
			Secret:      "abcde",
			Lat:         ptr(100.0),
			Lon:         ptr(200.0),
			Uncertainty: ptr(5.0),
			Message:     ptr("Found at park"),
		}
	}
	type mockBehavior func(r *repo_mocks.MockRepository)

	tests := []struct {
		name         string
		report       func() model.CatchReport
		mockBehavior mockBehavior
		wantID       int
		wantErr      error
	}{
		{
			name:   "ok, date defaults to now",
			report: validReport,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetCopy(gomock.Any(), 1).Return(model.Copy{UID: 1, BookID: 1, Secret: "abcde"}, nil)
				r.EXPECT().CreateCatch(gomock.Any(), model.Catch{
					CopyUID:     1,
					Lat:         100,
					Lon:         200,
					Uncertainty: 5,
					Date:        time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
					Message:     ptr("Found at park"),
				}).Return(42, nil)
			},
			wantID: 42,
		},
		{
			name: "ok, explicit date",
			report: func() model.CatchReport {
				r := validReport()
				ts := model.NewTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
				r.Date = &ts
				r.Message = nil
				return r
			},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetCopy(gomock.Any(), 1).Return(model.Copy{UID: 1, BookID: 1, Secret: "abcde"}, nil)
				r.EXPECT().CreateCatch(gomock.Any(), model.Catch{
					CopyUID:     1,
					Lat:         100,
					Lon:         200,
					Uncertainty: 5,
					Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				}).Return(43, nil)
			},
			wantID: 43,
		},
		{
			name: "negative uncertainty",
			report: func() model.CatchReport {
				r := validReport()
				r.Uncertainty = ptr(-1.0)
				return r
			},
			mockBehavior: func(r *repo_mocks.MockRepository) {},
			wantErr:      errs.ErrInvalidCatch,
		},
		{
			name: "missing lat",
			report: func() model.CatchReport {
				r := validReport()
				r.Lat = nil
				return r
			},
			mockBehavior: func(r *repo_mocks.MockRepository) {},
			wantErr:      errs.ErrInvalidCatch,
		},
		{
			name: "message too long",
			report: func() model.CatchReport {
				r := validReport()
				r.Message = ptr(string(make([]byte, 81)))
				return r
			},
			mockBehavior: func(r *repo_mocks.MockRepository) {},
			wantErr:      errs.ErrInvalidCatch,
		},
		{
			name:   "unknown copy",
			report: validReport,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetCopy(gomock.Any(), 1).Return(model.Copy{}, errs.ErrCopyNotFound)
			},
			wantErr: errs.ErrCopyNotFound,
		},
		{
			name:   "wrong secret",
			report: validReport,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetCopy(gomock.Any(), 1).Return(model.Copy{UID: 1, BookID: 1, Secret: "zzzzz"}, nil)
			},
			wantErr: errs.ErrWrongSecret,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(t)
			tt.mockBehavior(repo)

			id, err := svc.ReportCatch(context.Background(), tt.report())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, id)
		})
	}
}
