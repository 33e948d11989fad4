// Package handlers はHTTPハンドラーを提供します。
package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindErrorMessage はバリデーションエラーから、最初に違反した制約のみを
// 人間が読める1つのメッセージに変換します。複数のエラーは集約しません。
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fieldErrorMessage(verrs[0])
	}
	return "Invalid request payload"
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "alphanum":
		return field + " must contain only alphanumeric characters"
	case "min":
		return field + " must be at least " + fe.Param() + " characters long"
	case "max":
		return field + " must be at most " + fe.Param() + " characters long"
	default:
		return field + " is invalid"
	}
}
