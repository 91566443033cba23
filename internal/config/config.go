package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultTimeout applies when a profile does not set one.
const DefaultTimeout = 15 * time.Second

// Environment variables consulted by Resolve.
const (
	EnvBaseURL   = "WM_BASE_URL"
	EnvToken     = "WM_TOKEN"
	EnvWorkspace = "WM_WORKSPACE"
)

// Profile is one named Windmill instance in the config file.
type Profile struct {
	Name      string        `yaml:"name"`
	BaseURL   string        `yaml:"base_url"`
	Token     string        `yaml:"token,omitempty"`
	Workspace string        `yaml:"workspace,omitempty"`
	Insecure  bool          `yaml:"insecure,omitempty"`
	CACert    string        `yaml:"ca_cert,omitempty"` // path to a PEM bundle
	Timeout   time.Duration `yaml:"timeout,omitempty"`
}

// File is the on-disk config: a list of profiles and the active one.
type File struct {
	Active   string    `yaml:"active,omitempty"`
	Profiles []Profile `yaml:"profiles"`
}

// Overrides are values given on the command line. Empty fields are unset.
type Overrides struct {
	Profile   string
	BaseURL   string
	Token     string
	Workspace string
}

// DefaultPath returns $XDG_CONFIG_HOME/wmill/config.yaml, falling back to
// the user config dir.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			dir = "."
		}
	}
	return filepath.Join(dir, "wmill", "config.yaml")
}

// Load reads a YAML config file. A missing file yields an empty config.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &File{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &f, nil
}

// Save writes f to path with owner-only permissions, since profiles hold
// tokens.
func (f *File) Save(path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Profile returns the profile called name.
func (f *File) Profile(name string) (Profile, bool) {
	for _, p := range f.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Upsert replaces the profile with the same name or appends p.
func (f *File) Upsert(p Profile) {
	for i := range f.Profiles {
		if f.Profiles[i].Name == p.Name {
			f.Profiles[i] = p
			return
		}
	}
	f.Profiles = append(f.Profiles, p)
}

// Resolve picks the profile (flag, then the file's active one) and overlays
// env values and then flag values on it. getenv is os.Getenv outside tests.
func Resolve(f *File, o Overrides, getenv func(string) string) (Profile, error) {
	var p Profile
	name := o.Profile
	if name == "" {
		name = f.Active
	}
	if name != "" {
		var ok bool
		p, ok = f.Profile(name)
		if !ok && o.Profile != "" {
			return Profile{}, fmt.Errorf("profile %q not found", name)
		}
		p.Name = name
	}

	overlay(&p.BaseURL, getenv(EnvBaseURL), o.BaseURL)
	overlay(&p.Token, getenv(EnvToken), o.Token)
	overlay(&p.Workspace, getenv(EnvWorkspace), o.Workspace)

	if p.Timeout <= 0 {
		p.Timeout = DefaultTimeout
	}
	if p.BaseURL == "" {
		return p, fmt.Errorf("no base URL: pass --base-url, set %s or configure a profile", EnvBaseURL)
	}
	return p, nil
}

// overlay applies env over the file value, then flag over both.
func overlay(dst *string, env, flag string) {
	if env != "" {
		*dst = env
	}
	if flag != "" {
		*dst = flag
	}
}

// ReadCACert loads the profile's CA bundle, if any.
func (p Profile) ReadCACert() ([]byte, error) {
	if p.CACert == "" {
		return nil, nil
	}
	data, err := os.ReadFile(p.CACert)
	if err != nil {
		return nil, fmt.Errorf("reading CA cert %s: %w", p.CACert, err)
	}
	return data, nil
}
