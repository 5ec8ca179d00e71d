package envutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when the file extension is not recognized.
var ErrUnknownFileType = errors.New("env file doesn't have a known file suffix")

// envDocument is the shape of JSON and YAML env files:
//
//	env:
//	  ARFLOW_DEBUG_TRACE: "true"
type envDocument struct {
	Env map[string]string `json:"env" yaml:"env"`
}

// LoadEnvFile reads the variables defined in a .env, .json, .yml or .yaml
// file. The format is picked from the extension.
func LoadEnvFile(path string) (map[string]string, error) {
	name := strings.ToLower(filepath.Base(path))

	switch {
	case strings.HasSuffix(name, ".env"):
		return godotenv.Read(path)
	case strings.HasSuffix(name, ".json"):
		return loadDocument(path, json.Unmarshal)
	case strings.HasSuffix(name, ".yml"), strings.HasSuffix(name, ".yaml"):
		return loadDocument(path, yaml.Unmarshal)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, filepath.Base(path))
	}
}

func loadDocument(path string, unmarshal func([]byte, any) error) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	doc := &envDocument{}

	if err := unmarshal(bts, doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return doc.Env, nil
}

// Apply loads each file in order and exports its variables to the process.
// Later files win over earlier ones. Variables already present in the
// environment are left alone unless override is set.
func Apply(override bool, paths ...string) error {
	merged := make(map[string]string)

	for _, path := range paths {
		vars, err := LoadEnvFile(path)
		if err != nil {
			return fmt.Errorf("loading environment variables from file %q: %w", path, err)
		}

		for k, v := range vars {
			merged[k] = v
		}
	}

	for k, v := range merged {
		if old, exists := os.LookupEnv(k); exists && (!override || old == v) {
			continue
		}

		if err := os.Setenv(k, v); err != nil {
			return fmt.Errorf("setting environment variable %q: %w", k, err)
		}
	}

	return nil
}
