package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// fileName is the per-project config file looked up next to scenes.
const fileName = "meshdebug.yaml"

// Load loads configuration with priority: defaults < file < flags.
// Relative scene and output paths in a config file are taken relative to
// that file, so a meshdebug.yaml can travel with its scenes.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile(sceneHint())
	}

	if configPath != "" {
		defaults := *cfg
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
		resolveRelative(cfg, &defaults, filepath.Dir(configPath))
	}

	applyFlags(cfg)

	return cfg, nil
}

// sceneHint returns the scene named on the command line, if any.
func sceneHint() string {
	if *flagScene != "" {
		return *flagScene
	}
	if args := Args(); len(args) > 0 {
		return args[0]
	}
	return ""
}

// configCandidates lists config locations in lookup order: the working
// directory, the directory holding the scene, then the user config dir.
func configCandidates(scenePath string) []string {
	candidates := []string{fileName}
	if scenePath != "" {
		if dir := filepath.Dir(scenePath); dir != "." {
			candidates = append(candidates, filepath.Join(dir, fileName))
		}
	}
	return append(candidates, filepath.Join(ConfigDir(), "config.yaml"))
}

// findConfigFile returns the first existing candidate, or "".
func findConfigFile(scenePath string) string {
	for _, path := range configCandidates(scenePath) {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// resolveRelative anchors the relative file paths the config file set
// (those differing from prev) at dir.
func resolveRelative(cfg, prev *Config, dir string) {
	if dir == "." || dir == "" {
		return
	}
	paths := []struct{ cur, old *string }{
		{&cfg.Scene.Path, &prev.Scene.Path},
		{&cfg.Output.Dir, &prev.Output.Dir},
		{&cfg.Logging.LogFile, &prev.Logging.LogFile},
	}
	for _, p := range paths {
		if *p.cur != *p.old && *p.cur != "" && !filepath.IsAbs(*p.cur) {
			*p.cur = filepath.Join(dir, *p.cur)
		}
	}
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "MeshDebug")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "MeshDebug")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "meshdebug")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "meshdebug")
	}
}

// loadFromFile merges a YAML file over the values already in cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
