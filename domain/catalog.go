package domain

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

//go:embed data
var dataFS embed.FS

// Sentinel errors for catalog operations.
var (
	ErrDomainNotFound   = errors.New("domain not found")
	ErrMalformedProfile = errors.New("malformed domain profile")
)

// GenericDomain is the fallback profile returned when detection finds no
// keyword matches. CustomDomain is the reserved slot for user-authored
// profiles. Neither participates in keyword scoring.
const (
	GenericDomain = "generic"
	CustomDomain  = "custom"
)

// catalogOrder fixes the iteration order for List and Resolve. Detection
// ties are broken by this order: an equal score never displaces the
// current leader.
var catalogOrder = []string{
	GenericDomain,
	CustomDomain,
	"healthcare",
	"fintech",
	"ecommerce",
	"secure-communication",
	"blockchain",
	"malware-analysis",
	"iot",
}

// Catalog holds every domain profile parsed once at construction time.
// It is read-only after New returns and safe for concurrent use.
type Catalog struct {
	logger    *slog.Logger
	names     []string
	profiles  map[string]*Domain
	malformed map[string]error
}

// Option configures catalog construction.
type Option func(*catalogOptions)

type catalogOptions struct {
	logger     *slog.Logger
	overlayDir string
}

// WithLogger sets the logger used for skipped reference data warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *catalogOptions) { o.logger = logger }
}

// WithOverlayDir adds user-authored profiles discovered under dir
// (any **/*.yaml file holding a full Domain document). Overlay profiles
// with a name already in the embedded catalog replace it; new names are
// appended after the embedded set in discovery order.
func WithOverlayDir(dir string) Option {
	return func(o *catalogOptions) { o.overlayDir = dir }
}

// New parses the embedded catalog plus any overlay directory into an
// immutable Catalog. Malformed embedded profiles are a construction
// error; malformed overlay files are recorded so that Load fails for
// them by name while Resolve skips them.
func New(opts ...Option) (*Catalog, error) {
	options := catalogOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	c := &Catalog{
		logger:    options.logger,
		profiles:  make(map[string]*Domain),
		malformed: make(map[string]error),
	}

	for _, name := range catalogOrder {
		d, err := loadEmbedded(name)
		if err != nil {
			return nil, fmt.Errorf("embedded profile %s: %w", name, err)
		}
		c.names = append(c.names, name)
		c.profiles[name] = d
	}

	if options.overlayDir != "" {
		if err := c.loadOverlay(options.overlayDir); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// List returns every domain name in catalog order.
func (c *Catalog) List() []string {
	return append([]string(nil), c.names...)
}

// Load returns a copy of the named domain profile. It fails with
// ErrDomainNotFound for unknown names and ErrMalformedProfile when the
// name exists but its reference data failed to parse.
func (c *Catalog) Load(name string) (*Domain, error) {
	if err, ok := c.malformed[name]; ok {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedProfile, name, err)
	}
	d, ok := c.profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDomainNotFound, name)
	}
	return d.clone(), nil
}

// Resolve scores every non-reserved domain against the description by
// counting case-insensitive substring occurrences of its keywords. The
// highest total wins; a tie keeps the earlier catalog entry. Zero
// matches everywhere resolves to the generic domain. Malformed profiles
// are skipped during scoring, never fatal.
func (c *Catalog) Resolve(description string) string {
	lower := strings.ToLower(description)

	best := GenericDomain
	bestScore := 0
	for _, name := range c.names {
		if name == GenericDomain || name == CustomDomain {
			continue
		}
		if _, bad := c.malformed[name]; bad {
			c.logger.Warn("Skipping malformed profile during detection", slog.String("domain", name))
			continue
		}
		d := c.profiles[name]
		score := 0
		for _, kw := range d.Keywords {
			score += strings.Count(lower, strings.ToLower(kw))
		}
		if score > bestScore {
			best = name
			bestScore = score
		}
	}
	return best
}

// LoadAuto resolves the best-matching domain for the description and
// loads it.
func (c *Catalog) LoadAuto(description string) (*Domain, error) {
	return c.Load(c.Resolve(description))
}

// loadEmbedded reads the base profile plus the optional compliance and
// threats records for one embedded domain. The base record is required;
// the auxiliary records are merged in when present.
func loadEmbedded(name string) (*Domain, error) {
	base, err := dataFS.ReadFile(path(name, "profile.yaml"))
	if err != nil {
		return nil, fmt.Errorf("read base record: %w", err)
	}
	var d Domain
	if err := yaml.Unmarshal(base, &d); err != nil {
		return nil, fmt.Errorf("parse base record: %w", err)
	}
	if d.Name == "" {
		d.Name = name
	}

	if data, err := dataFS.ReadFile(path(name, "compliance.yaml")); err == nil {
		var aux struct {
			Regulations       []Regulation `yaml:"regulations"`
			AuditRequirements []string     `yaml:"audit_requirements"`
		}
		if err := yaml.Unmarshal(data, &aux); err != nil {
			return nil, fmt.Errorf("parse compliance record: %w", err)
		}
		d.Regulations = aux.Regulations
		d.AuditRequirements = aux.AuditRequirements
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if data, err := dataFS.ReadFile(path(name, "threats.yaml")); err == nil {
		var aux struct {
			Threats []KnownThreat `yaml:"threats"`
		}
		if err := yaml.Unmarshal(data, &aux); err != nil {
			return nil, fmt.Errorf("parse threats record: %w", err)
		}
		d.KnownThreats = aux.Threats
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return &d, nil
}

func path(name, file string) string {
	return "data/" + name + "/" + file
}

// loadOverlay discovers **/*.yaml files under dir and parses each as a
// full Domain document. Parse failures are recorded as malformed (and
// logged) rather than aborting construction, so a broken custom profile
// never blocks detection for the rest of the catalog.
func (c *Catalog) loadOverlay(dir string) error {
	matches, err := doublestar.Glob(os.DirFS(dir), "**/*.yaml")
	if err != nil {
		return fmt.Errorf("scan overlay dir %s: %w", dir, err)
	}

	for _, rel := range matches {
		full := filepath.Join(dir, rel)
		data, err := os.ReadFile(full)
		if err != nil {
			c.logger.Warn("Skipping unreadable overlay profile",
				slog.String("path", full), slog.String("error", err.Error()))
			continue
		}

		var d Domain
		if err := yaml.Unmarshal(data, &d); err != nil || d.Name == "" {
			if err == nil {
				err = errors.New("missing name field")
			}
			name := strings.TrimSuffix(filepath.Base(rel), ".yaml")
			c.recordMalformed(name, full, err)
			continue
		}

		if _, exists := c.profiles[d.Name]; !exists {
			c.names = append(c.names, d.Name)
		}
		c.profiles[d.Name] = &d
		delete(c.malformed, d.Name)
	}

	return nil
}

// recordMalformed remembers a broken overlay profile so an explicit Load
// by that name reports the parse error. The name never enters the listing
// order: every name List returns must load.
func (c *Catalog) recordMalformed(name, path string, err error) {
	c.logger.Warn("Skipping malformed overlay profile",
		slog.String("path", path), slog.String("error", err.Error()))
	if _, exists := c.profiles[name]; exists {
		// Keep the embedded profile rather than shadow it with a broken one.
		return
	}
	c.malformed[name] = err
}
