package shaderpaint

import (
	"context"

	"github.com/amp-labs/arflow/paint"
)

// Handler performs shaderpaint commands.
type Handler interface {
	StartScan(ctx context.Context)
	SetShaderColor(ctx context.Context, color paint.Color)
	PaintSurface(ctx context.Context, color paint.Color)
	SetTolerance(ctx context.Context, tolerance float64)
	ShowOcclusionWizard(ctx context.Context)
	ShowLidarOcclusionWizard(ctx context.Context)
	SceneReset(ctx context.Context)
}

// NopHandler ignores every command.
type NopHandler struct{}

var _ Handler = NopHandler{}

func (NopHandler) StartScan(context.Context)                   {}
func (NopHandler) SetShaderColor(context.Context, paint.Color) {}
func (NopHandler) PaintSurface(context.Context, paint.Color)   {}
func (NopHandler) SetTolerance(context.Context, float64)       {}
func (NopHandler) ShowOcclusionWizard(context.Context)         {}
func (NopHandler) ShowLidarOcclusionWizard(context.Context)    {}
func (NopHandler) SceneReset(context.Context)                  {}
