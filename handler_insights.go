package main

import (
	"context"
	"fmt"

	"github.com/gosoline-project/httpserver"
	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/log"
)

func NewHandlerInsights(ctx context.Context, config cfg.Config, logger log.Logger) (*HandlerInsights, error) {
	var err error
	var service *ServiceInsights

	if service, err = NewServiceInsights(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create insights service: %w", err)
	}

	return &HandlerInsights{
		service: service,
	}, nil
}

type HandlerInsights struct {
	service *ServiceInsights
}

type OperationMetricsResponse struct {
	Operations []OperationMetric `json:"operations"`
	Summary    OperationSummary  `json:"summary"`
}

type SnapshotIntervalsResponse struct {
	Intervals []SnapshotInterval `json:"intervals"`
	Summary   IntervalSummary    `json:"summary"`
}

func (h *HandlerInsights) AnalyzeTable(ctx context.Context, input *TableSelectInput) (httpserver.Response, error) {
	var err error
	var insights *TableInsights

	if insights, err = h.service.AnalyzeTable(ctx, input.Table); err != nil {
		return nil, fmt.Errorf("could not analyze table: %w", err)
	}

	return httpserver.NewJsonResponse(insights), nil
}

func (h *HandlerInsights) OperationMetrics(ctx context.Context, input *TableSelectInput) (httpserver.Response, error) {
	var err error
	var operations []OperationMetric

	if operations, err = h.service.OperationMetrics(ctx, input.Table); err != nil {
		return nil, fmt.Errorf("could not extract operation metrics: %w", err)
	}

	return httpserver.NewJsonResponse(OperationMetricsResponse{
		Operations: operations,
		Summary:    SummarizeOperations(operations),
	}), nil
}

func (h *HandlerInsights) SnapshotIntervals(ctx context.Context, input *TableSelectInput) (httpserver.Response, error) {
	var err error
	var intervals []SnapshotInterval

	if intervals, err = h.service.SnapshotIntervals(ctx, input.Table); err != nil {
		return nil, fmt.Errorf("could not calculate snapshot intervals: %w", err)
	}

	return httpserver.NewJsonResponse(SnapshotIntervalsResponse{
		Intervals: intervals,
		Summary:   SummarizeIntervals(intervals),
	}), nil
}
