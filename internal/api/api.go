package api

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/hiveden/sysfetch/internal/hw"
)

// SnapshotBuilder produces a fresh Snapshot on every call.
type SnapshotBuilder interface {
	Snapshot(ctx context.Context) *hw.Snapshot
}

// APIHandler serves hardware snapshots over HTTP.
type APIHandler struct {
	snapshots SnapshotBuilder
	inventory func() (*hw.HardwareInfo, error)
	logger    logr.Logger
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(snapshots SnapshotBuilder, logger logr.Logger) *APIHandler {
	return &APIHandler{
		snapshots: snapshots,
		inventory: hw.GetHardwareInfo,
		logger:    logger.WithName("api"),
	}
}
