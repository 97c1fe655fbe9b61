package main

import (
	"context"
	"fmt"

	"github.com/gosoline-project/httpserver"
	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/log"
)

func NewHandlerBrowse(ctx context.Context, config cfg.Config, logger log.Logger) (*HandlerBrowse, error) {
	var err error
	var trino *TrinoClient

	if trino, err = ProvideTrinoClient(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create trino client: %w", err)
	}

	return &HandlerBrowse{
		trino: trino,
	}, nil
}

// HandlerBrowse serves the uncached view of a table's metadata, read straight
// from the trino $snapshots and $manifests system tables.
type HandlerBrowse struct {
	trino *TrinoClient
}

type BrowseSnapshotsResponse struct {
	Snapshots []TrinoSnapshot `json:"snapshots"`
}

type BrowseManifestsResponse struct {
	Manifests []TrinoManifest `json:"manifests"`
}

func (h *HandlerBrowse) ListSnapshots(ctx context.Context, input *TableSelectInput) (httpserver.Response, error) {
	var err error
	var snapshots []TrinoSnapshot

	if snapshots, err = h.trino.ListSnapshots(ctx, input.Table); err != nil {
		return nil, fmt.Errorf("could not browse snapshots: %w", err)
	}

	return httpserver.NewJsonResponse(BrowseSnapshotsResponse{
		Snapshots: snapshots,
	}), nil
}

func (h *HandlerBrowse) ListManifests(ctx context.Context, input *TableSelectInput) (httpserver.Response, error) {
	var err error
	var manifests []TrinoManifest

	if manifests, err = h.trino.ListManifests(ctx, input.Table); err != nil {
		return nil, fmt.Errorf("could not browse manifests: %w", err)
	}

	return httpserver.NewJsonResponse(BrowseManifestsResponse{
		Manifests: manifests,
	}), nil
}
