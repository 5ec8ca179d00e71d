package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/amp-labs/arflow/config"
	"github.com/amp-labs/arflow/statemachine"
	"github.com/amp-labs/arflow/workflows/floorplan"
	"github.com/amp-labs/arflow/workflows/legacy"
	"github.com/amp-labs/arflow/workflows/lidar"
	"github.com/amp-labs/arflow/workflows/roomplan"
	"github.com/amp-labs/arflow/workflows/shaderpaint"
)

// ErrUnknownWorkflow is returned for workflow names that are not registered.
var ErrUnknownWorkflow = errors.New("unknown workflow")

// workflow is one registered workflow and everything the subcommands need
// to work with it.
type workflow struct {
	name     string
	summary  string
	graph    func(cfg config.Config) (statemachine.Graph, error)
	simulate func(env *simEnv) *simulation
}

func graphOf[S statemachine.StateVariant, E statemachine.Variant, C statemachine.Variant](
	catalog statemachine.Catalog[S, E, C],
) (statemachine.Graph, error) {
	if err := catalog.Validate(); err != nil {
		return statemachine.Graph{}, err
	}

	return catalog.Graph(), nil
}

var registry = map[string]workflow{ //nolint:gochecknoglobals
	floorplan.Name: {
		name:    floorplan.Name,
		summary: "scan the floor, place corners, set the ceiling height, paint",
		graph: func(cfg config.Config) (statemachine.Graph, error) {
			return graphOf(floorplan.Catalog(cfg.Floorplan))
		},
		simulate: simulateFloorplan,
	},
	legacy.Name: {
		name:    legacy.Name,
		summary: "hold the device steady, measure two corners, apply a swatch",
		graph: func(cfg config.Config) (statemachine.Graph, error) {
			return graphOf(legacy.Catalog(cfg.Legacy))
		},
		simulate: simulateLegacy,
	},
	lidar.Name: {
		name:    lidar.Name,
		summary: "detect planes with the depth sensor, tap a wall, paint",
		graph: func(config.Config) (statemachine.Graph, error) {
			return graphOf(lidar.Catalog())
		},
		simulate: simulateLidar,
	},
	roomplan.Name: {
		name:    roomplan.Name,
		summary: "capture the room, review the scan, paint every wall",
		graph: func(config.Config) (statemachine.Graph, error) {
			return graphOf(roomplan.Catalog())
		},
		simulate: simulateRoomplan,
	},
	shaderpaint.Name: {
		name:    shaderpaint.Name,
		summary: "detect a surface, pick a color, paint with an adjustable tolerance",
		graph: func(config.Config) (statemachine.Graph, error) {
			return graphOf(shaderpaint.Catalog())
		},
		simulate: simulateShaderPaint,
	},
}

// workflowNames returns the registered names, sorted.
func workflowNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func lookup(name string) (workflow, error) {
	wf, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return workflow{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownWorkflow, name, strings.Join(workflowNames(), ", "))
	}

	return wf, nil
}
