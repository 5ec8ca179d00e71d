package legacy

import (
	"context"

	"github.com/amp-labs/arflow/paint"
)

// Handler performs swatch commands. Implementations usually embed
// NopHandler and override the methods they care about.
type Handler interface {
	StartWallDetection(ctx context.Context)
	PlaceWall(ctx context.Context)
	PlaceCorner(ctx context.Context, index int, distance, angle float64)
	ApplyColor(ctx context.Context, color paint.Color)
	ShowOcclusionWizard(ctx context.Context)
	ShowLidarOcclusionWizard(ctx context.Context)
	SceneReset(ctx context.Context)
}

// NopHandler ignores every command.
type NopHandler struct{}

var _ Handler = NopHandler{}

func (NopHandler) StartWallDetection(context.Context)                 {}
func (NopHandler) PlaceWall(context.Context)                          {}
func (NopHandler) PlaceCorner(context.Context, int, float64, float64) {}
func (NopHandler) ApplyColor(context.Context, paint.Color)            {}
func (NopHandler) ShowOcclusionWizard(context.Context)                {}
func (NopHandler) ShowLidarOcclusionWizard(context.Context)           {}
func (NopHandler) SceneReset(context.Context)                         {}
