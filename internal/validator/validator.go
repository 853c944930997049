package validator

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

// IsStrongPassword 自定义校验函数：密码复杂度
// Requires at least 8 characters with a lower-case letter, an upper-case
// letter, a digit and a symbol.
func IsStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}
