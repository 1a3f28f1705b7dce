package binding

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/focusflow/internal/intent"
)

// ConfigVersion is the current on-disk format version.
const ConfigVersion = 1

// File is the persisted user configuration: binding overrides and the
// selected controller mapping profile. Absence of the file or of any
// field falls back to defaults.
type File struct {
	// Entries are the user's binding overrides.
	Entries []Binding

	// Profile is the preferred controller mapping profile name, or
	// empty for automatic selection.
	Profile string
}

// fileConfig is the TOML structure of the persisted blob.
type fileConfig struct {
	Version  int           `toml:"version"`
	Profile  string        `toml:"profile,omitempty"`
	Bindings []entryConfig `toml:"bindings,omitempty"`
}

type entryConfig struct {
	Source    string `toml:"source"`
	Code      string `toml:"code"`
	Intent    string `toml:"intent"`
	Direction string `toml:"direction,omitempty"`
	Repeat    string `toml:"repeat,omitempty"`
}

// Load reads a persisted configuration blob. A missing file is not an
// error: it returns an empty File. Malformed entries are dropped
// individually and reported in the second return value; only an
// unreadable file or unknown version fails the load wholesale.
func Load(path string) (File, []error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, nil, nil
		}
		return File{}, nil, fmt.Errorf("reading bindings file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a configuration blob from TOML bytes.
func Parse(data []byte) (File, []error, error) {
	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return File{}, nil, fmt.Errorf("decoding bindings: %w", err)
	}

	if cfg.Version > ConfigVersion {
		return File{}, nil, fmt.Errorf("%w: %d", ErrUnknownVersion, cfg.Version)
	}
	// Version 0 blobs predate the version field and parse as v1.

	f := File{Profile: cfg.Profile}
	var rejected []error

	for i, ec := range cfg.Bindings {
		b, err := ec.toBinding()
		if err == nil {
			err = b.Validate()
		}
		if err != nil {
			rejected = append(rejected, &EntryError{Index: i, Code: ec.Code, Err: err})
			continue
		}
		f.Entries = append(f.Entries, b)
	}

	return f, rejected, nil
}

// Save writes the configuration blob, creating parent directories as
// needed.
func Save(path string, f File) error {
	cfg := fileConfig{
		Version: ConfigVersion,
		Profile: f.Profile,
	}
	for _, b := range f.Entries {
		cfg.Bindings = append(cfg.Bindings, fromBinding(b))
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding bindings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing bindings file %s: %w", path, err)
	}

	return nil
}

func (ec entryConfig) toBinding() (Binding, error) {
	b := Binding{Code: ec.Code}

	switch ec.Source {
	case "keyboard":
		b.Source = intent.SourceKeyboard
	case "gamepad":
		b.Source = intent.SourceGamepad
	case "pointer":
		b.Source = intent.SourcePointer
	default:
		return b, fmt.Errorf("%w: unknown source %q", ErrInvalidBinding, ec.Source)
	}

	switch ec.Intent {
	case "move":
		b.Intent = intent.KindMove
	case "activate":
		b.Intent = intent.KindActivate
	case "back":
		b.Intent = intent.KindBack
	default:
		return b, fmt.Errorf("%w: unknown intent %q", ErrInvalidBinding, ec.Intent)
	}

	switch ec.Direction {
	case "":
		b.Direction = intent.DirNone
	case "up":
		b.Direction = intent.DirUp
	case "down":
		b.Direction = intent.DirDown
	case "left":
		b.Direction = intent.DirLeft
	case "right":
		b.Direction = intent.DirRight
	default:
		return b, fmt.Errorf("%w: unknown direction %q", ErrInvalidBinding, ec.Direction)
	}

	switch ec.Repeat {
	case "", "none":
		b.Repeat = RepeatNone
	case "accelerate":
		b.Repeat = RepeatAccelerate
	default:
		return b, fmt.Errorf("%w: unknown repeat policy %q", ErrInvalidBinding, ec.Repeat)
	}

	return b, nil
}

func fromBinding(b Binding) entryConfig {
	ec := entryConfig{
		Source: b.Source.String(),
		Code:   b.Code,
		Intent: b.Intent.String(),
	}
	if b.Direction != intent.DirNone {
		ec.Direction = b.Direction.String()
	}
	if b.Repeat == RepeatAccelerate {
		ec.Repeat = "accelerate"
	}
	return ec
}
