package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	cfgpkg "github.com/alexisbeaulieu97/stylepreview/internal/config"
	"github.com/alexisbeaulieu97/stylepreview/internal/domain/style"
	"github.com/alexisbeaulieu97/stylepreview/internal/ports"
	apperrors "github.com/alexisbeaulieu97/stylepreview/pkg/errors"
)

// YAMLLoader implements the StyleLoader port by reading YAML style documents from disk.
type YAMLLoader struct {
	logger ports.Logger
}

func NewYAMLLoader(logger ports.Logger) *YAMLLoader {
	return &YAMLLoader{logger: logger}
}

func (l *YAMLLoader) Load(ctx context.Context, path string) (*ports.LoadedStyle, error) {
	if err := contextCheck(ctx); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, domainError(style.ErrCodeInternal, "cannot resolve style path", err, map[string]interface{}{"path": path})
	}

	l.logDebug(ctx, "loading style document", map[string]interface{}{"path": abs})

	ext := strings.ToLower(filepath.Ext(abs))
	if ext != ".yaml" && ext != ".yml" {
		return nil, domainError(style.ErrCodeValidation, "unsupported style document extension", nil, map[string]interface{}{"path": abs, "extension": ext})
	}

	doc, err := cfgpkg.ParseDocument(abs)
	if err != nil {
		l.logError(ctx, "failed to parse style document", err, map[string]interface{}{"path": abs})
		return nil, convertError(err, abs)
	}

	if err := contextCheck(ctx); err != nil {
		return nil, err
	}

	built, err := cfgpkg.BuildStyle(doc, filepath.Dir(abs))
	if err != nil {
		l.logError(ctx, "failed to build style", err, map[string]interface{}{"path": abs})
		return nil, convertError(err, abs)
	}

	if err := built.Style.Validate(); err != nil {
		l.logError(ctx, "style failed domain validation", err, map[string]interface{}{"path": abs})
		return nil, err
	}

	for _, missing := range built.Missing {
		l.logWarn(ctx, "resource file not found; parts using it render without an image", map[string]interface{}{"path": abs, "resource": missing})
	}

	l.logDebug(ctx, "resource table ready", map[string]interface{}{"path": abs, "tokens": built.Table.Tokens()})
	l.logInfo(ctx, "style document loaded", map[string]interface{}{
		"path":      abs,
		"parts":     len(built.Style.Parts),
		"resources": built.Table.Len(),
		"overrides": built.Overrides.Len(),
	})

	return &ports.LoadedStyle{
		Style:     built.Style,
		Resources: built.Table,
		Overrides: built.Overrides,
		Path:      abs,
	}, nil
}

var _ ports.StyleLoader = (*YAMLLoader)(nil)

func convertError(err error, path string) error {
	if err == nil {
		return nil
	}
	var domainErr *style.DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	var parseErr *apperrors.ParseError
	if errors.As(err, &parseErr) {
		if errors.Is(parseErr.Err, os.ErrNotExist) {
			return domainError(style.ErrCodeNotFound, "style document not found", parseErr.Err, map[string]interface{}{"path": path})
		}
		return domainError(style.ErrCodeValidation, "invalid style document syntax", err, map[string]interface{}{"path": parseErr.Path, "line": parseErr.Line})
	}
	var valErr *apperrors.ValidationError
	if errors.As(err, &valErr) {
		context := map[string]interface{}{"path": path}
		if valErr.Field != "" {
			context["field"] = valErr.Field
		}
		code := style.ErrCodeValidation
		msg := strings.ToLower(valErr.Message)
		switch {
		case strings.Contains(msg, "duplicate"):
			code = style.ErrCodeDuplicate
		case errors.Is(err, cfgpkg.ErrInvalidValue), strings.Contains(msg, "is not a valid"):
			code = style.ErrCodeType
		}
		return domainError(code, valErr.Message, valErr.Err, context)
	}
	if os.IsNotExist(err) {
		return domainError(style.ErrCodeNotFound, "style document not found", err, map[string]interface{}{"path": path})
	}
	return domainError(style.ErrCodeInternal, "style document load failed", err, map[string]interface{}{"path": path})
}

func contextCheck(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return domainError(style.ErrCodeCancelled, "operation cancelled", err, nil)
	}
	return nil
}

func domainError(code style.ErrorCode, message string, cause error, ctx map[string]interface{}) *style.DomainError {
	return style.NewError(code, message, cause, ctx)
}

func (l *YAMLLoader) logDebug(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Debug(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Info(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader) logWarn(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Warn(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	payload := make(map[string]interface{}, len(fields)+2)
	for k, v := range fields {
		payload[k] = v
	}
	payload["error"] = err
	l.logger.Error(ctx, msg, flattenFields(payload)...)
}

func flattenFields(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}
