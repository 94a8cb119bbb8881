package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/datanomy/datanomy/internal/validation"
)

// configSchema is the embedded JSON schema the config file must satisfy.
const configSchema = "datanomy-config.json"

// Profile is one named storage target from the config file.
type Profile struct {
	EndpointURL     string `yaml:"endpoint_url,omitempty" json:"endpoint_url,omitempty"`
	Region          string `yaml:"region,omitempty" json:"region,omitempty"`
	AccessKeyID     string `yaml:"access_key_id,omitempty" json:"access_key_id,omitempty"`
	SecretAccessKey string `yaml:"secret_access_key,omitempty" json:"secret_access_key,omitempty"`
	PathStyle       bool   `yaml:"path_style,omitempty" json:"path_style,omitempty"`
}

// File is the parsed configuration file with named storage profiles.
type File struct {
	DefaultProfile string             `yaml:"default_profile,omitempty" json:"default_profile,omitempty"`
	Profiles       map[string]Profile `yaml:"profiles,omitempty" json:"profiles,omitempty"`
}

// DefaultConfigPath returns the per-user location of the config file,
// ~/.config/datanomy/config.yaml on Linux.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "datanomy", "config.yaml"), nil
}

// LoadFile reads and validates the configuration file. An empty path loads
// the default location; a missing file yields an empty configuration.
func LoadFile(path string) (*File, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &File{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := validation.ValidateYAML(configSchema, content); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &f, nil
}

// Resolve returns the named profile, or the default profile when name is
// empty. An empty Profile is returned when nothing is configured.
func (f *File) Resolve(name string) (Profile, error) {
	if name == "" {
		name = f.DefaultProfile
	}
	if name == "" {
		return Profile{}, nil
	}

	p, ok := f.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q (available: %s)", name, strings.Join(f.ProfileNames(), ", "))
	}
	return p, nil
}

// ProfileNames returns the configured profile names, sorted.
func (f *File) ProfileNames() []string {
	names := make([]string, 0, len(f.Profiles))
	for name := range f.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
