package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Bilal-AKAG/autogitignore/internal/app"
)

// ErrNotDirectory reports that the requested output target exists but is not
// a directory.
var ErrNotDirectory = errors.New("target path is not a directory")

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

// Overrides carries values set explicitly on the command line. Nil or empty
// fields fall through to the environment, the config file, then defaults.
type Overrides struct {
	ConfigFile string
	Dir        string
	URL        string
	CacheFile  string
	LogFile    string
	Trace      *bool
	Footer     *bool
	Verbose    *bool
	Width      *int
	Height     *int
	Args       []string
}

const (
	envConfigFile = "AUTOGITIGNORE_CONFIG"
	envURL        = "AUTOGITIGNORE_URL"
	envCacheFile  = "AUTOGITIGNORE_CACHE_FILE"
	envLogFile    = "AUTOGITIGNORE_LOG_FILE"
	envWidth      = "AUTOGITIGNORE_WIDTH"
	envHeight     = "AUTOGITIGNORE_HEIGHT"
	envShowFooter = "AUTOGITIGNORE_FOOTER"
	envVerbose    = "AUTOGITIGNORE_VERBOSE"
	envTrace      = "AUTOGITIGNORE_TRACE"
)

// fileConfig mirrors the optional TOML config file. Pointer fields
// distinguish absent keys from explicit zero values.
type fileConfig struct {
	URL       string `toml:"url"`
	CacheFile string `toml:"cache_file"`
	LogFile   string `toml:"log_file"`
	Width     *int   `toml:"width"`
	Height    *int   `toml:"height"`
	Footer    *bool  `toml:"footer"`
	Verbose   *bool  `toml:"verbose"`
	Trace     *bool  `toml:"trace"`
}

// Load resolves configuration from defaults, the config file, environment
// variables, and command-line overrides, in that order.
func Load(ov Overrides) (Config, error) {
	return LoadWith(ov, os.Environ())
}

// LoadWith allows tests to supply a specific environment.
func LoadWith(ov Overrides, environ []string) (Config, error) {
	env := parseEnv(environ)

	filePath, required := configFilePath(ov, env)
	file, err := loadFile(filePath, required)
	if err != nil {
		return Config{}, err
	}

	url := firstNonEmpty(ov.URL, envOrDefault(env, envURL, file.URL))
	cacheFile := firstNonEmpty(ov.CacheFile, envOrDefault(env, envCacheFile, file.CacheFile))
	logFile := firstNonEmpty(ov.LogFile, envOrDefault(env, envLogFile, file.LogFile))

	width := intValue(ov.Width, envOrInt(env, envWidth, intOrZero(file.Width)))
	height := intValue(ov.Height, envOrInt(env, envHeight, intOrZero(file.Height)))
	footer := boolValue(ov.Footer, envOrBool(env, envShowFooter, boolOr(file.Footer, true)))
	verbose := boolValue(ov.Verbose, envOrBool(env, envVerbose, boolOr(file.Verbose, false)))
	trace := boolValue(ov.Trace, envOrBool(env, envTrace, boolOr(file.Trace, false)))

	if width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", width)
	}
	if height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", height)
	}

	outputDir, err := ResolveOutputDir(ov.Dir)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			OutputDir:  outputDir,
			BaseURL:    url,
			CacheFile:  expandPath(cacheFile),
			Width:      width,
			Height:     height,
			ShowFooter: footer,
			Verbose:    verbose,
		},
		Logging: Logging{
			FilePath: expandPath(logFile),
			Trace:    trace,
		},
		Features: Features{
			Verbose: verbose,
		},
		Flags: map[string]string{
			"config":    filePath,
			"dir":       outputDir,
			"url":       url,
			"cacheFile": cacheFile,
			"width":     strconv.Itoa(width),
			"height":    strconv.Itoa(height),
			"footer":    strconv.FormatBool(footer),
			"trace":     strconv.FormatBool(trace),
			"verbose":   strconv.FormatBool(verbose),
			"logFile":   logFile,
		},
		Args: append([]string(nil), ov.Args...),
	}

	return cfg, nil
}

// configFilePath picks the config file to read. An explicit flag or
// environment value must exist; the default location is optional.
func configFilePath(ov Overrides, env map[string]string) (string, bool) {
	if ov.ConfigFile != "" {
		return expandPath(ov.ConfigFile), true
	}
	if v, ok := env[envConfigFile]; ok && strings.TrimSpace(v) != "" {
		return expandPath(v), true
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(base, "autogitignore", "config.toml"), false
}

func loadFile(path string, required bool) (fileConfig, error) {
	var file fileConfig
	if path == "" {
		return file, nil
	}
	if _, err := toml.DecodeFile(path, &file); err != nil {
		if os.IsNotExist(err) && !required {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return file, nil
}

// ResolveOutputDir turns the target directory argument into an absolute
// path, defaulting to the working directory. The directory must exist.
func ResolveOutputDir(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		return cwd, nil
	}
	abs, err := filepath.Abs(expandPath(dir))
	if err != nil {
		return "", fmt.Errorf("resolve target directory: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("target directory does not exist: %s", abs)
		}
		return "", fmt.Errorf("inspect target directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, abs)
	}
	return abs, nil
}

func expandPath(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func intValue(override *int, fallback int) int {
	if override != nil {
		return *override
	}
	return fallback
}

func boolValue(override *bool, fallback bool) bool {
	if override != nil {
		return *override
	}
	return fallback
}

func intOrZero(v *int) int {
	if v != nil {
		return *v
	}
	return 0
}

func boolOr(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}
