package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)"),
	// JSON fields.
	regexp.MustCompile(`(?s)("[Pp]assword":\s?").+?(")`),
	regexp.MustCompile(`(?s)("accessToken":\s?").+?(")`),
	regexp.MustCompile(`(?s)("signature":\s?").+?(")`),
	regexp.MustCompile(`(?s)("signedTransaction":\s?").+?(")`),
	regexp.MustCompile(`(?s)("secretKey":\s?").+?(")`),
}

// SensitiveDataMasker скрывает токены и подписи в дампах HTTP.
type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}

type NopSensitiveDataMasker struct{}

func (NopSensitiveDataMasker) Mask(input []byte) []byte {
	return input
}

// Truncate обрезает дамп до maxLen байт; maxLen <= 0 без ограничения.
func Truncate(dump []byte, maxLen int) []byte {
	if maxLen > 0 && len(dump) > maxLen {
		return dump[:maxLen]
	}

	return dump
}
