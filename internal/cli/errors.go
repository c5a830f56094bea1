package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"recordbook/internal/core"
	applog "recordbook/internal/log"
)

// Error categories shown to the user.
const (
	CategoryValidation = "입력 오류"
	CategoryNotFound   = "찾을 수 없음"
	CategoryStorage    = "저장 오류"
	CategoryUnexpected = "예기치 않은 오류"
)

const unexpectedMessage = "작업을 완료하지 못했습니다. 로그를 확인하세요."

// Categorize maps an error to its user-facing category and log error type.
func Categorize(err error) (category, errorType string) {
	switch {
	case errors.Is(err, core.ErrValidation):
		return CategoryValidation, applog.ErrorTypeValidation
	case errors.Is(err, core.ErrNotFound):
		return CategoryNotFound, applog.ErrorTypeNotFound
	case errors.Is(err, core.ErrStorage):
		return CategoryStorage, applog.ErrorTypeStorage
	default:
		return CategoryUnexpected, applog.ErrorTypeInternal
	}
}

// RenderError prints err under its category. Unexpected errors are logged in
// full, through the logger carried by ctx, and shown only generically.
func RenderError(ctx context.Context, w io.Writer, err error) {
	logger := applog.FromContext(ctx).WithComponent(applog.ComponentCLI)
	category, errorType := Categorize(err)
	label := color.New(color.FgRed, color.Bold).Sprintf("[%s]", category)

	if category == CategoryUnexpected {
		logger.ErrorContext(ctx, "Command failed", applog.FieldErrorType, errorType, applog.FieldError, err)
		fmt.Fprintf(w, "%s %s\n", label, unexpectedMessage)
		return
	}
	logger.DebugContext(ctx, "Command rejected", applog.FieldErrorType, errorType, applog.FieldError, err)
	fmt.Fprintf(w, "%s %v\n", label, err)
}
