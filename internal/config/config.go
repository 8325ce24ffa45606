package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/create-react-app/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys.
const (
	KeyPackageManager        = "package_manager"
	KeyFallbackTemplate      = "template.fallback"
	KeyRuntimePackage        = "packages.runtime"
	KeyRendererPackage       = "packages.renderer"
	KeyScriptsPackage        = "packages.scripts"
	KeyInitializerRuntime    = "initializer.runtime"
	KeyInitializerEntry      = "initializer.entry"
	KeyInitializerExecutable = "initializer.executable"
	KeyInitializerStrict     = "initializer.strict"
	KeyPreflightNode         = "preflight.node"
	KeyPreflightYarn         = "preflight.yarn"
	KeyPreflightNpm          = "preflight.npm"
)

// Settings is the resolved configuration consumed by the create command.
type Settings struct {
	PackageManager        string
	FallbackTemplate      string
	RuntimePackage        string
	RendererPackage       string
	ScriptsPackage        string
	InitializerRuntime    string
	InitializerEntry      string
	InitializerExecutable string
	InitializerStrict     bool
	NodeConstraint        string
	YarnConstraint        string
	NpmConstraint         string
}

// Dir returns the path to the config directory (~/.create-react-app/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault(KeyPackageManager, "yarn")
	viper.SetDefault(KeyFallbackTemplate, "cra-template")
	viper.SetDefault(KeyRuntimePackage, "react")
	viper.SetDefault(KeyRendererPackage, "react-dom")
	viper.SetDefault(KeyScriptsPackage, "react-scripts")
	viper.SetDefault(KeyInitializerRuntime, "node")
	viper.SetDefault(KeyInitializerEntry, "scripts/init.js")
	viper.SetDefault(KeyInitializerExecutable, "")
	viper.SetDefault(KeyInitializerStrict, false)
	viper.SetDefault(KeyPreflightNode, ">=14.0.0")
	viper.SetDefault(KeyPreflightYarn, ">=1.12.0")
	viper.SetDefault(KeyPreflightNpm, ">=6.0.0")
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	setDefaults()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current returns the Settings resolved from defaults, the config file and
// the environment. Load must have been called first.
func Current() Settings {
	return Settings{
		PackageManager:        viper.GetString(KeyPackageManager),
		FallbackTemplate:      viper.GetString(KeyFallbackTemplate),
		RuntimePackage:        viper.GetString(KeyRuntimePackage),
		RendererPackage:       viper.GetString(KeyRendererPackage),
		ScriptsPackage:        viper.GetString(KeyScriptsPackage),
		InitializerRuntime:    viper.GetString(KeyInitializerRuntime),
		InitializerEntry:      viper.GetString(KeyInitializerEntry),
		InitializerExecutable: viper.GetString(KeyInitializerExecutable),
		InitializerStrict:     viper.GetBool(KeyInitializerStrict),
		NodeConstraint:        viper.GetString(KeyPreflightNode),
		YarnConstraint:        viper.GetString(KeyPreflightYarn),
		NpmConstraint:         viper.GetString(KeyPreflightNpm),
	}
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
