package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gosoline-project/httpserver"
	"github.com/gosoline-project/sqlc"
	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/log"
)

type TableSelectInput struct {
	Table string `form:"table" uri:"table"`
}

type SnapshotRangeInput struct {
	Table string   `form:"table" uri:"table"`
	From  DateTime `form:"from"`
	To    DateTime `form:"to"`
}

func NewHandlerMetadata(ctx context.Context, config cfg.Config, logger log.Logger) (*HandlerMetadata, error) {
	var err error
	var service *ServiceMetadata
	var sqlClient sqlc.Client

	if service, err = NewServiceMetadata(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create metadata service: %w", err)
	}

	if sqlClient, err = sqlc.ProvideClient(ctx, config, logger, "default"); err != nil {
		return nil, fmt.Errorf("could not create sqlc client: %w", err)
	}

	return &HandlerMetadata{
		service:   service,
		sqlClient: sqlClient,
	}, nil
}

type HandlerMetadata struct {
	service   *ServiceMetadata
	sqlClient sqlc.Client
}

func (h *HandlerMetadata) ListTables(ctx context.Context) (httpserver.Response, error) {
	var err error
	var tables []TableDescription

	if tables, err = h.service.ListTables(ctx); err != nil {
		return nil, fmt.Errorf("could not list tables from db: %w", err)
	}

	return httpserver.NewJsonResponse(tables), nil
}

func (h *HandlerMetadata) GetTableSummary(ctx context.Context, input *TableSelectInput) (httpserver.Response, error) {
	var err error
	var desc *TableDescription
	var summary *TableSummary

	if desc, err = h.service.GetTable(ctx, input.Table); err != nil {
		return nil, fmt.Errorf("could not get table from db: %w", err)
	}

	if summary, err = h.service.GetTableSummary(ctx, *desc); err != nil {
		return nil, fmt.Errorf("could not get table summary: %w", err)
	}

	return httpserver.NewJsonResponse(summary), nil
}

func (h *HandlerMetadata) ListSnapshots(ctx context.Context, input *SnapshotRangeInput) (httpserver.Response, error) {
	result := make([]Snapshot, 0)
	sel := h.sqlClient.Q().From("snapshots").Where(sqlc.Col("table").Eq(input.Table))

	if err := sel.Select(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not list snapshots from db: %w", err)
	}

	result = filterSnapshotRange(result, input.From.Time, input.To.Time)

	return httpserver.NewJsonResponse(result), nil
}

func (h *HandlerMetadata) ListOperationMetrics(ctx context.Context, input *TableSelectInput) (httpserver.Response, error) {
	result := make([]OperationMetricRow, 0)
	sel := h.sqlClient.Q().From("operation_metrics").Where(sqlc.Col("table").Eq(input.Table))

	if err := sel.Select(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not list operation metrics from db: %w", err)
	}

	return httpserver.NewJsonResponse(result), nil
}

func (h *HandlerMetadata) ListIntervals(ctx context.Context, input *TableSelectInput) (httpserver.Response, error) {
	result := make([]SnapshotIntervalRow, 0)
	sel := h.sqlClient.Q().From("snapshot_intervals").Where(sqlc.Col("table").Eq(input.Table))

	if err := sel.Select(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not list snapshot intervals from db: %w", err)
	}

	return httpserver.NewJsonResponse(result), nil
}

func filterSnapshotRange(snapshots []Snapshot, from time.Time, to time.Time) []Snapshot {
	if from.IsZero() && to.IsZero() {
		return snapshots
	}

	filtered := make([]Snapshot, 0, len(snapshots))
	for _, snapshot := range snapshots {
		if snapshot.CommittedAt == nil {
			continue
		}

		if !from.IsZero() && snapshot.CommittedAt.Before(from) {
			continue
		}

		if !to.IsZero() && snapshot.CommittedAt.After(to) {
			continue
		}

		filtered = append(filtered, snapshot)
	}

	return filtered
}
