package roomplan

import (
	"context"

	"github.com/amp-labs/arflow/paint"
)

// Handler performs roomplan commands.
type Handler interface {
	StartRoomCapture(ctx context.Context)
	StopRoomCapture(ctx context.Context)
	ShowScanReview(ctx context.Context)
	HideScanReview(ctx context.Context)
	PaintWalls(ctx context.Context, color paint.Color)
	ShowOcclusionWizard(ctx context.Context)
	ShowLidarOcclusionWizard(ctx context.Context)
	SceneReset(ctx context.Context)
}

// NopHandler ignores every command.
type NopHandler struct{}

var _ Handler = NopHandler{}

func (NopHandler) StartRoomCapture(context.Context)         {}
func (NopHandler) StopRoomCapture(context.Context)          {}
func (NopHandler) ShowScanReview(context.Context)           {}
func (NopHandler) HideScanReview(context.Context)           {}
func (NopHandler) PaintWalls(context.Context, paint.Color)  {}
func (NopHandler) ShowOcclusionWizard(context.Context)      {}
func (NopHandler) ShowLidarOcclusionWizard(context.Context) {}
func (NopHandler) SceneReset(context.Context)               {}
