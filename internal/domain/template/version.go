package template

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Version is one content revision of a template, scoped to a language.
// New versions are always created inactive; only an activation may flip
// the active flag.
type Version struct {
	id         string
	templateID string
	content    string
	language   string
	number     int
	active     bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewVersion(templateID, content, language string, number int) (*Version, error) {
	if templateID == "" {
		return nil, fmt.Errorf("template ID is required")
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}

	language = NormalizeLanguage(language)
	if language == "" {
		return nil, fmt.Errorf("language is required")
	}

	if number < 1 {
		return nil, fmt.Errorf("version number must be positive")
	}

	now := time.Now()
	return &Version{
		id:         uuid.NewString(),
		templateID: templateID,
		content:    content,
		language:   language,
		number:     number,
		active:     false,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructVersion(
	id string,
	templateID string,
	content string,
	language string,
	number int,
	active bool,
	createdAt, updatedAt time.Time,
) (*Version, error) {
	if id == "" {
		return nil, fmt.Errorf("version ID cannot be empty")
	}
	if templateID == "" {
		return nil, fmt.Errorf("template ID is required")
	}
	if number < 1 {
		return nil, fmt.Errorf("version number must be positive")
	}

	return &Version{
		id:         id,
		templateID: templateID,
		content:    content,
		language:   language,
		number:     number,
		active:     active,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (v *Version) ID() string {
	return v.id
}

func (v *Version) TemplateID() string {
	return v.templateID
}

func (v *Version) Content() string {
	return v.content
}

func (v *Version) Language() string {
	return v.language
}

// Number is the per-template sequence number, assigned at creation and
// never reused, even after deletions.
func (v *Version) Number() int {
	return v.number
}

func (v *Version) Active() bool {
	return v.active
}

func (v *Version) CreatedAt() time.Time {
	return v.createdAt
}

func (v *Version) UpdatedAt() time.Time {
	return v.updatedAt
}
