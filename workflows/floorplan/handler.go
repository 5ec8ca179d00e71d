package floorplan

import (
	"context"
	"time"

	"github.com/amp-labs/arflow/paint"
)

// Handler performs floorplan commands. Implementations usually embed
// NopHandler and override the methods they care about.
type Handler interface {
	StartScan(ctx context.Context, timeout time.Duration)
	FinishPlacingCorners(ctx context.Context, closedShape bool)
	FinishCeilingHeight(ctx context.Context)
	SelectSecondaryColor(ctx context.Context, color paint.Color)
	ShowOcclusionWizard(ctx context.Context)
	ShowLidarOcclusionWizard(ctx context.Context)
	SceneReset(ctx context.Context)
}

// NopHandler ignores every command.
type NopHandler struct{}

var _ Handler = NopHandler{}

func (NopHandler) StartScan(context.Context, time.Duration)          {}
func (NopHandler) FinishPlacingCorners(context.Context, bool)        {}
func (NopHandler) FinishCeilingHeight(context.Context)               {}
func (NopHandler) SelectSecondaryColor(context.Context, paint.Color) {}
func (NopHandler) ShowOcclusionWizard(context.Context)               {}
func (NopHandler) ShowLidarOcclusionWizard(context.Context)          {}
func (NopHandler) SceneReset(context.Context)                        {}
