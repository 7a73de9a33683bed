package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	domain "templar/internal/domain/template"
	"templar/internal/shared/logger"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateTemplate(ctx context.Context, tpl *domain.Template) error {
	args := m.Called(ctx, tpl)
	return args.Error(0)
}

func (m *mockRepository) GetTemplateByKey(ctx context.Context, key string) (*domain.Template, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Template), args.Error(1)
}

func (m *mockRepository) CreateVersion(ctx context.Context, templateKey, content, language string) (*domain.Version, error) {
	args := m.Called(ctx, templateKey, content, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Version), args.Error(1)
}

func (m *mockRepository) GetActiveContent(ctx context.Context, templateKey, language string) (string, error) {
	args := m.Called(ctx, templateKey, language)
	return args.String(0), args.Error(1)
}

func (m *mockRepository) ActivateVersion(ctx context.Context, templateKey, versionID string) (string, error) {
	args := m.Called(ctx, templateKey, versionID)
	return args.String(0), args.Error(1)
}

func (m *mockRepository) DeleteVersion(ctx context.Context, templateKey, versionID string) error {
	args := m.Called(ctx, templateKey, versionID)
	return args.Error(0)
}

func (m *mockRepository) DeleteTemplate(ctx context.Context, templateKey string) error {
	args := m.Called(ctx, templateKey)
	return args.Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, templateKey, language string) (string, bool, error) {
	args := m.Called(ctx, templateKey, language)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockCache) Set(ctx context.Context, templateKey, language, content string) error {
	args := m.Called(ctx, templateKey, language, content)
	return args.Error(0)
}

func (m *mockCache) Invalidate(ctx context.Context, templateKey, language string) error {
	args := m.Called(ctx, templateKey, language)
	return args.Error(0)
}

type mockRenderer struct {
	mock.Mock
}

func (m *mockRenderer) Render(content string, variables map[string]interface{}) (string, error) {
	args := m.Called(content, variables)
	return args.String(0), args.Error(1)
}

// nopLogger keeps use case tests focused on behavior rather than on log
// expectations.
type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) Fatal(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
