// Package template contains the template aggregate: a named template that
// owns a set of content versions, at most one of which is active per
// language at any time.
package template

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Template groups all versions that share a key, like "welcome_email".
type Template struct {
	id          string
	key         string
	description string
	versions    []*Version
	createdAt   time.Time
	updatedAt   time.Time
}

// NormalizeKey trims and lowercases a template key.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// NormalizeLanguage trims and lowercases a language code.
func NormalizeLanguage(language string) string {
	return strings.ToLower(strings.TrimSpace(language))
}

func NewTemplate(key, description string) (*Template, error) {
	key = NormalizeKey(key)
	if key == "" {
		return nil, fmt.Errorf("template key is required")
	}

	// Descriptions get the same trim+lowercase treatment as keys.
	now := time.Now()
	return &Template{
		id:          uuid.NewString(),
		key:         key,
		description: strings.ToLower(strings.TrimSpace(description)),
		versions:    []*Version{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTemplate(
	id string,
	key string,
	description string,
	versions []*Version,
	createdAt, updatedAt time.Time,
) (*Template, error) {
	if id == "" {
		return nil, fmt.Errorf("template ID cannot be empty")
	}
	if key == "" {
		return nil, fmt.Errorf("template key is required")
	}

	if versions == nil {
		versions = []*Version{}
	}

	return &Template{
		id:          id,
		key:         key,
		description: description,
		versions:    versions,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Template) ID() string {
	return t.id
}

func (t *Template) Key() string {
	return t.key
}

func (t *Template) Description() string {
	return t.description
}

// Versions returns the owned versions in creation order.
func (t *Template) Versions() []*Version {
	versions := make([]*Version, len(t.versions))
	copy(versions, t.versions)
	return versions
}

func (t *Template) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Template) UpdatedAt() time.Time {
	return t.updatedAt
}

// NextVersionNumber returns the version number the next created version
// must receive. The counter is shared across all languages of the template,
// not tracked per language.
func (t *Template) NextVersionNumber() int {
	max := 0
	for _, v := range t.versions {
		if v.Number() > max {
			max = v.Number()
		}
	}
	return max + 1
}

// ActiveVersion returns the currently active version for a language, or nil.
func (t *Template) ActiveVersion(language string) *Version {
	language = NormalizeLanguage(language)
	for _, v := range t.versions {
		if v.Language() == language && v.Active() {
			return v
		}
	}
	return nil
}
