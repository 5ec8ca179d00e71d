package lidar

import (
	"context"

	"github.com/amp-labs/arflow/paint"
)

// Handler performs lidar commands.
type Handler interface {
	StartLidarScan(ctx context.Context)
	SelectWall(ctx context.Context)
	PaintWall(ctx context.Context, color paint.Color)
	ShowOcclusionWizard(ctx context.Context)
	ShowLidarOcclusionWizard(ctx context.Context)
	SceneReset(ctx context.Context)
}

// NopHandler ignores every command.
type NopHandler struct{}

var _ Handler = NopHandler{}

func (NopHandler) StartLidarScan(context.Context)           {}
func (NopHandler) SelectWall(context.Context)               {}
func (NopHandler) PaintWall(context.Context, paint.Color)   {}
func (NopHandler) ShowOcclusionWizard(context.Context)      {}
func (NopHandler) ShowLidarOcclusionWizard(context.Context) {}
func (NopHandler) SceneReset(context.Context)               {}
