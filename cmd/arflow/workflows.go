package main

import (
	"context"
	"time"

	"github.com/amp-labs/arflow/analytics"
	"github.com/amp-labs/arflow/optional"
	"github.com/amp-labs/arflow/workflows/floorplan"
	"github.com/amp-labs/arflow/workflows/legacy"
	"github.com/amp-labs/arflow/workflows/lidar"
	"github.com/amp-labs/arflow/workflows/roomplan"
	"github.com/amp-labs/arflow/workflows/shaderpaint"
)

const (
	// Simulated sensor readings.
	steadyAngle     = 0.5
	measuredAngle   = 90.0
	detectedPlanes  = 3
	capturedWalls   = 4
	metersPerWall   = 3.5
	maxCornerCount  = 64
	maxPlaneCount   = 20
	maxWallCount    = 50
	maxCornerMeters = 20.0
	maxDeviceAngle  = 90.0
)

// overlays is implemented by every workflow façade.
type overlays interface {
	ShowOcclusionWizard(ctx context.Context)
	HideOcclusionWizard(ctx context.Context)
	ShowLidarOcclusionWizard(ctx context.Context)
	HideLidarOcclusionWizard(ctx context.Context)
	Reset(ctx context.Context)
}

func simple(key, label string, do func(ctx context.Context)) action {
	return action{key: key, event: key, label: label, do: func(ctx context.Context, _ value) { do(ctx) }}
}

func overlayActions(w overlays) []action {
	return []action{
		simple("occlusion_wizard_shown", "Show occlusion wizard", w.ShowOcclusionWizard),
		simple("occlusion_wizard_hidden", "Hide occlusion wizard", w.HideOcclusionWizard),
		simple("lidar_occlusion_wizard_shown", "Show LiDAR occlusion wizard", w.ShowLidarOcclusionWizard),
		simple("lidar_occlusion_wizard_hidden", "Hide LiDAR occlusion wizard", w.HideLidarOcclusionWizard),
		simple("reset", "Reset", w.Reset),
	}
}

type floorplanSensors struct {
	floorplan.NopHandler

	env *simEnv
	w   *floorplan.Workflow
}

func (h *floorplanSensors) StartScan(context.Context, time.Duration) {
	h.env.bg.after(h.env.ctx, func() { h.w.ScanFinished(h.env.ctx) })
}

func simulateFloorplan(env *simEnv) *simulation {
	w := floorplan.New(floorplan.WithConfig(env.cfg), floorplan.WithMachineOptions(env.machine...))
	w.SetHandler(&floorplanSensors{env: env, w: w})

	actions := []action{
		simple("tutorial_done", "Finish tutorial", w.TutorialFinished),
		simple("scan_finished", "Finish floor scan", w.ScanFinished),
		{
			key:   "corner_count_updated",
			event: "corner_count_updated",
			label: "Corners placed",
			arg:   argInt,
			max:   maxCornerCount,
			do:    func(ctx context.Context, v value) { w.CornerCountUpdated(ctx, int(v.number)) },
		},
		{
			key:   "corners_finished",
			event: "corners_finished",
			label: "Is the shape closed",
			arg:   argBool,
			do:    func(ctx context.Context, v value) { w.FinishedPlacingCorners(ctx, v.flag) },
		},
		simple("height_set", "Confirm ceiling height", w.SetHeight),
		{
			key:   "secondary_color_selected",
			event: "secondary_color_selected",
			label: "Pick secondary color",
			arg:   argColor,
			do:    func(ctx context.Context, v value) { w.SelectSecondaryColor(ctx, v.color) },
		},
		simple("first_wall_painted", "Paint first wall", w.PaintFirstWall),
	}

	return &simulation{
		name:    floorplan.Name,
		actions: append(actions, overlayActions(w)...),
		state:   stateOf(w.State),
		tracker: analytics.Track[floorplan.State](env.ctx, floorplan.Name, w, env.track...),
	}
}

type legacySensors struct {
	legacy.NopHandler

	env *simEnv
	w   *legacy.Workflow
}

// StartWallDetection feeds readings steady enough to place the wall.
func (h *legacySensors) StartWallDetection(context.Context) {
	h.env.bg.after(h.env.ctx, func() {
		for range h.env.cfg.Legacy.SteadySamples + 1 {
			h.w.DeviceAngleUpdated(h.env.ctx, steadyAngle)
		}
	})
}

func simulateLegacy(env *simEnv) *simulation {
	w := legacy.New(legacy.WithConfig(env.cfg), legacy.WithMachineOptions(env.machine...))
	w.SetHandler(&legacySensors{env: env, w: w})

	actions := []action{
		simple("tutorial_done", "Finish tutorial", w.TutorialFinished),
		{
			key:   "device_angle_updated",
			event: "device_angle_updated",
			label: "Device angle (degrees)",
			arg:   argFloat,
			min:   -maxDeviceAngle,
			max:   maxDeviceAngle,
			do:    func(ctx context.Context, v value) { w.DeviceAngleUpdated(ctx, v.number) },
		},
		{
			key:   "corner_measured",
			event: "corner_measured",
			label: "Corner distance (meters)",
			arg:   argFloat,
			max:   maxCornerMeters,
			do: func(ctx context.Context, v value) {
				w.CornerMeasured(ctx, optional.Some(v.number), optional.Some(measuredAngle))
			},
		},
		simple("corner_placed", "Place corner", w.PlaceCorner),
		{
			key:   "color_selected",
			event: "color_selected",
			label: "Pick color",
			arg:   argColor,
			do:    func(ctx context.Context, v value) { w.SelectColor(ctx, v.color) },
		},
	}

	return &simulation{
		name:    legacy.Name,
		actions: append(actions, overlayActions(w)...),
		state:   stateOf(w.State),
		tracker: analytics.Track[legacy.State](env.ctx, legacy.Name, w, env.track...),
	}
}

type lidarSensors struct {
	lidar.NopHandler

	env *simEnv
	w   *lidar.Workflow
}

func (h *lidarSensors) StartLidarScan(context.Context) {
	h.env.bg.after(h.env.ctx, func() { h.w.PlanesDetected(h.env.ctx, detectedPlanes) })
}

func simulateLidar(env *simEnv) *simulation {
	w := lidar.New(lidar.WithConfig(env.cfg), lidar.WithMachineOptions(env.machine...))
	w.SetHandler(&lidarSensors{env: env, w: w})

	actions := []action{
		simple("tutorial_done", "Finish tutorial", w.TutorialFinished),
		{
			key:   "planes_detected",
			event: "planes_detected",
			label: "Planes detected",
			arg:   argInt,
			max:   maxPlaneCount,
			do:    func(ctx context.Context, v value) { w.PlanesDetected(ctx, int(v.number)) },
		},
		simple("wall_tapped", "Tap wall", w.TapWall),
		{
			key:   "color_selected",
			event: "color_selected",
			label: "Pick color",
			arg:   argColor,
			do:    func(ctx context.Context, v value) { w.SelectColor(ctx, v.color) },
		},
	}

	return &simulation{
		name:    lidar.Name,
		actions: append(actions, overlayActions(w)...),
		state:   stateOf(w.State),
		tracker: analytics.Track[lidar.State](env.ctx, lidar.Name, w, env.track...),
	}
}

type roomplanSensors struct {
	roomplan.NopHandler

	env *simEnv
	w   *roomplan.Workflow
}

func (h *roomplanSensors) StartRoomCapture(context.Context) {
	h.env.bg.after(h.env.ctx, func() {
		h.w.ScanProgress(h.env.ctx, capturedWalls, capturedWalls*metersPerWall)
	})
}

func (h *roomplanSensors) StopRoomCapture(context.Context) {
	h.env.bg.after(h.env.ctx, func() { h.w.ScanProcessed(h.env.ctx, true) })
}

func simulateRoomplan(env *simEnv) *simulation {
	w := roomplan.New(roomplan.WithConfig(env.cfg), roomplan.WithMachineOptions(env.machine...))
	w.SetHandler(&roomplanSensors{env: env, w: w})

	actions := []action{
		simple("tutorial_done", "Finish tutorial", w.TutorialFinished),
		{
			key:   "scan_progress",
			event: "scan_progress",
			label: "Walls captured",
			arg:   argInt,
			max:   maxWallCount,
			do: func(ctx context.Context, v value) {
				w.ScanProgress(ctx, int(v.number), v.number*metersPerWall)
			},
		},
		simple("done_scanning", "Stop capture", w.DoneScanning),
		{
			key:   "scan_processed",
			event: "scan_processed",
			label: "Did processing succeed",
			arg:   argBool,
			do:    func(ctx context.Context, v value) { w.ScanProcessed(ctx, v.flag) },
		},
		simple("review_accepted", "Accept scan", w.AcceptReview),
		simple("review_requested", "Review scan again", w.RequestReview),
		{
			key:   "color_selected",
			event: "color_selected",
			label: "Pick color",
			arg:   argColor,
			do:    func(ctx context.Context, v value) { w.SelectColor(ctx, v.color) },
		},
	}

	return &simulation{
		name:    roomplan.Name,
		actions: append(actions, overlayActions(w)...),
		state:   stateOf(w.State),
		tracker: analytics.Track[roomplan.State](env.ctx, roomplan.Name, w, env.track...),
	}
}

type shaderPaintSensors struct {
	shaderpaint.NopHandler

	env *simEnv
	w   *shaderpaint.Workflow
}

func (h *shaderPaintSensors) StartScan(context.Context) {
	h.env.bg.after(h.env.ctx, func() { h.w.SurfaceDetected(h.env.ctx) })
}

func simulateShaderPaint(env *simEnv) *simulation {
	w := shaderpaint.New(shaderpaint.WithConfig(env.cfg), shaderpaint.WithMachineOptions(env.machine...))
	w.SetHandler(&shaderPaintSensors{env: env, w: w})

	actions := []action{
		simple("tutorial_done", "Finish tutorial", w.TutorialFinished),
		simple("surface_detected", "Detect surface", w.SurfaceDetected),
		{
			key:   "color_selected",
			event: "color_selected",
			label: "Pick color",
			arg:   argColor,
			do:    func(ctx context.Context, v value) { w.SelectColor(ctx, v.color) },
		},
		simple("surface_tapped", "Tap surface", w.TapSurface),
		{
			key:   "tolerance_changed",
			event: "tolerance_changed",
			label: "Tolerance (0 to 1)",
			arg:   argFloat,
			max:   1,
			do:    func(ctx context.Context, v value) { w.SetTolerance(ctx, v.number) },
		},
		{
			key:   "reset_tolerance",
			event: "tolerance_changed",
			label: "Restore default tolerance",
			do:    func(ctx context.Context, _ value) { w.ResetTolerance(ctx) },
		},
	}

	return &simulation{
		name:    shaderpaint.Name,
		actions: append(actions, overlayActions(w)...),
		state:   stateOf(w.State),
		tracker: analytics.Track[shaderpaint.State](env.ctx, shaderpaint.Name, w, env.track...),
	}
}
