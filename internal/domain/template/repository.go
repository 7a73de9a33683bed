package template

import "context"

// Repository is the durable store for templates and their versions. It owns
// identity and the numbering invariant, and is the only writer of the active
// flag (through ActivateVersion).
type Repository interface {
	CreateTemplate(ctx context.Context, tpl *Template) error
	GetTemplateByKey(ctx context.Context, key string) (*Template, error)
	// CreateVersion assigns the next version number for the template (shared
	// across languages) and inserts the version as inactive.
	CreateVersion(ctx context.Context, templateKey, content, language string) (*Version, error)
	// GetActiveContent returns the content of the active version for the
	// (template, language) pair.
	GetActiveContent(ctx context.Context, templateKey, language string) (string, error)
	// ActivateVersion atomically deactivates every active version of the
	// target version's (template, language) pair and activates the target,
	// in a single transaction. It returns the version's language so the
	// caller can invalidate derived caches.
	ActivateVersion(ctx context.Context, templateKey, versionID string) (string, error)
	DeleteVersion(ctx context.Context, templateKey, versionID string) error
	// DeleteTemplate removes the template and cascades to all its versions.
	DeleteTemplate(ctx context.Context, templateKey string) error
}

// ActiveContentCache is a disposable key/value replica of active content,
// keyed by (template key, language), with TTL-bounded staleness. A nil or
// unreachable backend must degrade to direct store reads, never fail the
// request.
type ActiveContentCache interface {
	// Get returns the cached content and whether the key was present.
	Get(ctx context.Context, templateKey, language string) (string, bool, error)
	Set(ctx context.Context, templateKey, language, content string) error
	Invalidate(ctx context.Context, templateKey, language string) error
}
