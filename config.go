package hello_world

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

const configFilename = "config.yml"

// Buses the service can be published on.
const (
	SessionBus = "session"
	SystemBus  = "system"
)

var ErrInvalidBus = errors.New("bus must be session or system")

// Config holds the settings of the service and the spokes. The defaults are read from
// config.yml in the resources box, a file given on the command line may override any
// of them.
type Config struct {
	// Sysroot is the root of the installed system.
	Sysroot string `yaml:"sysroot"`
	// Bus selects the message bus, unless BusAddress is set.
	Bus string `yaml:"bus"`
	// BusAddress is the address of a private bus, like the one Anaconda starts for
	// its modules.
	BusAddress string `yaml:"bus_address"`
	LogFile    string `yaml:"log_file"`
	Debug      bool   `yaml:"debug"`
	// Language overrides the language detected from the locale.
	Language string `yaml:"language"`
	// Variables are available to all translated strings as {{.name}}.
	Variables StringMap `yaml:"variables"`
}

// NewConfig returns the default configuration.
func NewConfig() (*Config, error) {
	configFile, err := GetResource(configFilename)
	if err != nil {
		return nil, err
	}
	config := &Config{Variables: make(StringMap)}
	if err := yaml.UnmarshalStrict([]byte(configFile), config); err != nil {
		return nil, fmt.Errorf("unable to parse config file %s: %w", configFilename, err)
	}
	return config, nil
}

// LoadConfig returns the default configuration overridden by the values in the file
// at path.
func LoadConfig(path string) (*Config, error) {
	config, err := NewConfig()
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.UnmarshalStrict(content, config); err != nil {
		return nil, fmt.Errorf("unable to parse config file %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return config, nil
}

// Validate checks the values that have a fixed set of choices.
func (c *Config) Validate() error {
	if c.BusAddress == "" && c.Bus != SessionBus && c.Bus != SystemBus {
		return fmt.Errorf("%w, not '%s'", ErrInvalidBus, c.Bus)
	}
	return nil
}
