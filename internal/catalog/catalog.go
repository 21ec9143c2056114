// Package catalog holds the marketplace of integration templates and the
// search filter over it.
package catalog

import (
	"bytes"
	_ "embed"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mcphub/internal/errors"
	"github.com/thoreinstein/mcphub/internal/mcp"
)

//go:embed catalog.yaml
var embedded []byte

// Category groups templates in the marketplace.
type Category string

// Template categories.
const (
	CategoryDatabase     Category = "database"
	CategoryAnalytics    Category = "analytics"
	CategoryPayment      Category = "payment"
	CategoryAI           Category = "ai"
	CategoryProductivity Category = "productivity"
	CategoryDevelopment  Category = "development"
)

// allCategories lists every known category in display order.
var allCategories = []Category{
	CategoryDatabase,
	CategoryAnalytics,
	CategoryPayment,
	CategoryAI,
	CategoryProductivity,
	CategoryDevelopment,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return slices.Contains(allCategories, c)
}

// Label returns the display label: the category with its first letter upper-cased.
func (c Category) Label() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// InputKind is how a field is collected from the user.
type InputKind string

// Input kinds. Password fields are read without echo.
const (
	InputText     InputKind = "text"
	InputPassword InputKind = "password"
	InputURL      InputKind = "url"
)

// Field describes one value the user supplies when configuring a template.
type Field struct {
	Key         string    `yaml:"key"`
	Label       string    `yaml:"label"`
	Placeholder string    `yaml:"placeholder"`
	Kind        InputKind `yaml:"kind"`
	Required    bool      `yaml:"required"`
}

// Icon is display metadata for a template.
type Icon struct {
	Name       string `yaml:"name"`
	Color      string `yaml:"color"`
	Background string `yaml:"background"`
}

// Template is a predefined integration: a base server configuration and the
// fields needed to customize it. Templates are read-only reference data.
type Template struct {
	ID          string
	Name        string
	Description string
	Icon        Icon
	Category    Category
	Config      mcp.ServerConfig
	Fields      []Field
}

// Clone returns a deep copy of t.
func (t Template) Clone() Template {
	t.Config = t.Config.Clone()
	t.Fields = slices.Clone(t.Fields)
	return t
}

// yamlTemplate is the on-disk shape of a template.
type yamlTemplate struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Icon        Icon     `yaml:"icon"`
	Category    Category `yaml:"category"`
	Config      mcp.Raw  `yaml:"config"`
	Fields      []Field  `yaml:"fields"`
}

type yamlCatalog struct {
	Version   int            `yaml:"version"`
	Templates []yamlTemplate `yaml:"templates"`
}

// Sentinel errors for catalog loading.
var (
	// ErrInvalidTemplate indicates a template definition is malformed.
	ErrInvalidTemplate = errors.New("invalid template")
)

// Parse decodes a catalog document. Every template must have a unique ID, a
// known category, a valid base configuration and fields with keys and labels.
func Parse(data []byte) ([]Template, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc yamlCatalog
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decoding catalog")
	}

	seen := make(map[string]bool, len(doc.Templates))
	templates := make([]Template, 0, len(doc.Templates))
	for i, yt := range doc.Templates {
		if yt.ID == "" || yt.Name == "" {
			return nil, errors.Wrapf(ErrInvalidTemplate, "template %d: id and name are required", i)
		}
		if seen[yt.ID] {
			return nil, errors.Wrapf(ErrInvalidTemplate, "template %q: duplicate id", yt.ID)
		}
		seen[yt.ID] = true

		if !yt.Category.Valid() {
			return nil, errors.Wrapf(ErrInvalidTemplate, "template %q: unknown category %q", yt.ID, yt.Category)
		}

		cfg, err := yt.Config.Config()
		if err != nil {
			return nil, errors.Wrapf(err, "template %q", yt.ID)
		}

		for _, f := range yt.Fields {
			if f.Key == "" || f.Label == "" {
				return nil, errors.Wrapf(ErrInvalidTemplate, "template %q: field key and label are required", yt.ID)
			}
		}

		templates = append(templates, Template{
			ID:          yt.ID,
			Name:        yt.Name,
			Description: yt.Description,
			Icon:        yt.Icon,
			Category:    yt.Category,
			Config:      cfg,
			Fields:      yt.Fields,
		})
	}

	return templates, nil
}

var (
	defaultOnce      sync.Once
	defaultTemplates []Template
)

// Default returns the built-in catalog. Each call returns fresh copies, so
// callers cannot mutate the shared reference data.
func Default() []Template {
	defaultOnce.Do(func() {
		t, err := Parse(embedded)
		if err != nil {
			panic(errors.Wrap(err, "embedded catalog"))
		}
		defaultTemplates = t
	})

	out := make([]Template, len(defaultTemplates))
	for i, t := range defaultTemplates {
		out[i] = t.Clone()
	}
	return out
}

// Lookup finds a template by ID.
func Lookup(templates []Template, id string) (Template, error) {
	for _, t := range templates {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, errors.Wrapf(errors.ErrUnknownTemplate, "%q", id)
}

// Categories returns the distinct categories used by templates, in the order
// they first appear.
func Categories(templates []Template) []Category {
	var cats []Category
	for _, t := range templates {
		if !slices.Contains(cats, t.Category) {
			cats = append(cats, t.Category)
		}
	}
	return cats
}
