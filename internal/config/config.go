package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "SECTIONPAD"

// Config holds application configuration.
type Config struct {
	UI       UIConfig       `mapstructure:"ui"`
	Document DocumentConfig `mapstructure:"document"`
	Debug    DebugConfig    `mapstructure:"debug"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme         string        `mapstructure:"theme"`
	Glyphs        string        `mapstructure:"glyphs"`
	Mouse         bool          `mapstructure:"mouse"`
	ToastDuration time.Duration `mapstructure:"toast_duration"`
}

// DocumentConfig selects the starting document.
type DocumentConfig struct {
	Seed string `mapstructure:"seed"`
}

// DebugConfig holds diagnostics settings.
type DebugConfig struct {
	LogPath string `mapstructure:"log_path"`
}

// New returns a viper instance with defaults, config file lookup and env overrides
// wired up. Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	// Best-effort: a local .env may carry SECTIONPAD_* overrides.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("ui.theme", "auto")
	v.SetDefault("ui.glyphs", "unicode")
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.toast_duration", 3*time.Second)
	v.SetDefault("document.seed", "")
	v.SetDefault("debug.log_path", "")

	v.SetConfigType("toml")
	if p := os.Getenv(envPrefix + "_CONFIG"); p != "" {
		v.SetConfigFile(p)
	} else {
		v.AddConfigPath(filepath.Join(userConfigDir(), "sectionpad"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// SECTIONPAD_DEBUG_LOG is the short form; the automatic name also works.
	_ = v.BindEnv("debug.log_path", envPrefix+"_DEBUG_LOG", envPrefix+"_DEBUG_LOG_PATH")
	return v
}

// Load reads the config file (if present) and decodes v into a validated Config.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) normalize() {
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	c.UI.Glyphs = strings.ToLower(strings.TrimSpace(c.UI.Glyphs))
	c.Document.Seed = strings.TrimSpace(c.Document.Seed)
	c.Debug.LogPath = strings.TrimSpace(c.Debug.LogPath)
}

func (c Config) Validate() error {
	switch c.UI.Theme {
	case "", "auto", "light", "dark":
	default:
		return fmt.Errorf("invalid ui.theme %q (want auto|light|dark)", c.UI.Theme)
	}
	switch c.UI.Glyphs {
	case "", "unicode", "ascii":
	default:
		return fmt.Errorf("invalid ui.glyphs %q (want unicode|ascii)", c.UI.Glyphs)
	}
	if c.UI.ToastDuration <= 0 {
		return fmt.Errorf("invalid ui.toast_duration %s (must be positive)", c.UI.ToastDuration)
	}
	return nil
}

func userConfigDir() string {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return d
	}
	return filepath.Join(os.Getenv("HOME"), ".config")
}
