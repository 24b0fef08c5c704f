package handler

import (
	"context"

	"github.com/globook/globook-backend/globook/internal/service"
	"github.com/globook/globook-backend/globook/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatchService interface {
	ListCatches(ctx context.Context) ([]model.CatchRecord, error)
	ReportCatch(ctx context.Context, report model.CatchReport) (int, error)
	Ping(ctx context.Context) error
}

var _ CatchService = (*service.Service)(nil)
