package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	setDefaults(viperConfig)
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1200)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.title", "bee sandbox")
	v.SetDefault("log.level", "info")
	v.SetDefault("sandbox.gravity", 400.0)
	v.SetDefault("sandbox.restitution", 0.75)
	v.SetDefault("sandbox.fade", 0.5)
	v.SetDefault("sandbox.spawninterval_ms", 250)
	v.SetDefault("sandbox.maxparticles", 256)
	v.SetDefault("sandbox.launchscale", 0.25)
	v.SetDefault("data.snapshotfilename", "bee_snapshot.json")
}

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}

	return windowTitle
}

func (c *Config) GetLogLevel() string {
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString("log.level")
	}

	return logLevel
}

// GetGravity is the downward acceleration in pixels per second squared.
func (c *Config) GetGravity() float64 {
	gravity := c.config.GetFloat64("GRAVITY")
	if gravity == 0 {
		gravity = c.config.GetFloat64("sandbox.gravity")
	}

	return gravity
}

func (c *Config) GetRestitution() float64 {
	restitution := c.config.GetFloat64("RESTITUTION")
	if restitution == 0 {
		restitution = c.config.GetFloat64("sandbox.restitution")
	}

	return restitution
}

// GetFade is the factor a particle's tint keeps after one second.
func (c *Config) GetFade() float64 {
	fade := c.config.GetFloat64("FADE")
	if fade == 0 {
		fade = c.config.GetFloat64("sandbox.fade")
	}

	return fade
}

func (c *Config) GetSpawnInterval() int {
	spawnIntervalMillis := c.config.GetInt("SPAWN_INTERVAL_MS")
	if spawnIntervalMillis == 0 {
		spawnIntervalMillis = c.config.GetInt("sandbox.spawninterval_ms")
	}

	return spawnIntervalMillis
}

func (c *Config) GetMaxParticles() int {
	maxParticles := c.config.GetInt("MAX_PARTICLES")
	if maxParticles == 0 {
		maxParticles = c.config.GetInt("sandbox.maxparticles")
	}

	return maxParticles
}

func (c *Config) GetLaunchScale() float64 {
	launchScale := c.config.GetFloat64("LAUNCH_SCALE")
	if launchScale == 0 {
		launchScale = c.config.GetFloat64("sandbox.launchscale")
	}

	return launchScale
}

func (c *Config) GetDataDir() string {
	dataDir := c.config.GetString("DATA_DIR")
	if len(dataDir) == 0 {
		dataDir = c.config.GetString("data.dir")
	}

	return dataDir
}

func (c *Config) GetSnapshotFilename() string {
	snapshotFilename := c.config.GetString("SNAPSHOT_FILENAME")
	if len(snapshotFilename) == 0 {
		snapshotFilename = c.config.GetString("data.snapshotfilename")
	}

	return snapshotFilename
}

// GetSnapshotPath joins the data dir and snapshot filename. An empty data dir
// resolves to the user's home directory, or the working directory if that is unknown.
func (c *Config) GetSnapshotPath() string {
	dataDir := c.GetDataDir()
	if len(dataDir) == 0 {
		if homeDir, err := os.UserHomeDir(); err == nil {
			dataDir = homeDir
		}
	}

	return filepath.Join(dataDir, c.GetSnapshotFilename())
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
