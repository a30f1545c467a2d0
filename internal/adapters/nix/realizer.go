package nix

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/shed/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// DefaultCacheDir is where realized environments are cached by env ID.
const DefaultCacheDir = ".shed/cache/environments"

// Realizer implements ports.EnvironmentRealizer using the Nix CLI.
type Realizer struct {
	cacheDir string
}

// NewRealizer creates a new Realizer with the default cache directory.
func NewRealizer() *Realizer {
	return NewRealizerWithCache(DefaultCacheDir)
}

// NewRealizerWithCache creates a new Realizer with a specific cache
// directory.
func NewRealizerWithCache(cacheDir string) *Realizer {
	return &Realizer{cacheDir: cacheDir}
}

// Realize materializes the declared shell into environment variables.
//
// The descriptor plus the pinned revisions form a deterministic env ID used
// as the cache key; a cache hit skips the evaluator entirely. On a miss the
// pinned expression is handed to `nix print-dev-env` and the exported
// variables are filtered, sorted, and cached.
func (r *Realizer) Realize(ctx context.Context, desc domain.EnvironmentDescriptor, inputs domain.ResolvedInputs) ([]string, error) {
	pin, err := shellPin(desc, inputs)
	if err != nil {
		return nil, err
	}

	envID := domain.GenerateEnvID(desc, inputs)
	cachePath := filepath.Join(r.cacheDir, envID+".json")
	if cachedEnv, err := LoadEnvFromCache(cachePath); err == nil {
		return cachedEnv, nil
	}

	expr := generatePinnedExpr(desc, pin)

	tmpPath, cleanupFn, err := createNixTempFile(expr)
	if err != nil {
		return nil, err
	}
	defer cleanupFn()

	//nolint:gosec // tmpPath is a trusted temp file created by us
	cmd := exec.CommandContext(ctx, "nix", "print-dev-env",
		"--extra-experimental-features", "nix-command flakes",
		"--json", "--file", tmpPath)
	output, err := cmd.Output()
	if err != nil {
		var stderr string
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = strings.TrimSpace(string(exitErr.Stderr))
		}
		realizeErr := zerr.Wrap(err, domain.ErrRealizeFailed.Error())
		realizeErr = zerr.With(realizeErr, "platform", desc.Platform.String())
		return nil, zerr.With(realizeErr, "stderr", stderr)
	}

	env, err := ParseDevEnv(output)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to parse nix output")
	}

	// Cache write failure is not fatal; the environment is still valid.
	_ = SaveEnvToCache(cachePath, env)

	return env, nil
}

// shellPin selects the pin the shell's packages are drawn from and verifies
// it is present.
func shellPin(desc domain.EnvironmentDescriptor, inputs domain.ResolvedInputs) (domain.PinnedSource, error) {
	names := make([]string, 0, len(inputs))
	for name := range inputs {
		names = append(names, name)
	}
	slices.Sort(names)

	if pin, ok := inputs["nixpkgs"]; ok && pin.Rev != "" {
		return pin, nil
	}
	for _, name := range names {
		if pin := inputs[name]; pin.Rev != "" {
			return pin, nil
		}
	}
	return domain.PinnedSource{}, zerr.With(domain.ErrInputNotPinned, "platform", desc.Platform.String())
}

// createNixTempFile creates a temporary file with the given Nix expression.
func createNixTempFile(expr string) (tmpPath string, cleanup func(), err error) {
	tmpFile, err := os.CreateTemp("", "shed-env-*.nix")
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to create temp nix file")
	}

	tmpPath = tmpFile.Name()
	cleanup = func() {
		_ = os.Remove(tmpPath)
	}

	if _, writeErr := tmpFile.WriteString(expr); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, zerr.Wrap(writeErr, "failed to write nix expression")
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, zerr.Wrap(closeErr, "failed to close temp nix file")
	}

	return tmpPath, cleanup, nil
}

// LoadEnvFromCache attempts to load a cached environment.
func LoadEnvFromCache(path string) ([]string, error) {
	//nolint:gosec // Path is constructed from trusted cache directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("cache miss")
		}
		return nil, zerr.Wrap(err, "failed to read cache file")
	}

	var env []string
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal cache")
	}

	return env, nil
}

// SaveEnvToCache saves an environment to the cache.
func SaveEnvToCache(path string, env []string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return zerr.Wrap(err, "failed to create cache directory")
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal environment")
	}

	//nolint:gosec // Path is constructed from trusted cache directory
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return zerr.Wrap(err, "failed to write cache file")
	}

	return nil
}

// devEnvOutput represents the JSON structure from `nix print-dev-env --json`.
type devEnvOutput struct {
	Variables map[string]devEnvVariable `json:"variables"`
}

type devEnvVariable struct {
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

// ParseDevEnv parses the JSON output from nix print-dev-env and extracts
// environment variables.
func ParseDevEnv(jsonData []byte) ([]string, error) {
	var output devEnvOutput
	if err := json.Unmarshal(jsonData, &output); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal nix output")
	}

	env := make([]string, 0, len(output.Variables))
	for key, variable := range output.Variables {
		if !ShouldIncludeVar(key) {
			continue
		}

		var valueStr string
		switch v := variable.Value.(type) {
		case string:
			valueStr = v
		case []interface{}:
			// For arrays, join with colons (common for PATH-like vars)
			parts := make([]string, len(v))
			for i, part := range v {
				if s, ok := part.(string); ok {
					parts[i] = s
				}
			}
			valueStr = strings.Join(parts, ":")
		default:
			// Skip other types
			continue
		}

		env = append(env, fmt.Sprintf("%s=%s", key, valueStr))
	}

	// Sort for deterministic output
	slices.Sort(env)
	return env, nil
}

// ShouldIncludeVar determines if an environment variable should be included
// in the realized shell. Build- and interpreter-related variables pass;
// interactive shell variables are left to the host.
func ShouldIncludeVar(key string) bool {
	include := []string{
		"PATH",
		"PYTHONPATH",
		"PYTHONHOME",
		"PKG_CONFIG_PATH",
		"LD_LIBRARY_PATH",
		"CC",
		"CXX",
		"LD",
		"AR",
		"CFLAGS",
		"CXXFLAGS",
		"LDFLAGS",
		"NIX_",
	}

	for _, prefix := range include {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}

	exclude := []string{
		"TERM",
		"SHELL",
		"EDITOR",
		"VISUAL",
		"PAGER",
		"LESS",
		"HOME",
		"USER",
		"LOGNAME",
		"PS1",
		"PS2",
	}

	for _, excluded := range exclude {
		if key == excluded {
			return false
		}
	}

	return false
}
