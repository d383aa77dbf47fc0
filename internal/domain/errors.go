package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"nft_escrow/pkg/errcodes"
)

// ErrSignatureRejected is returned by a signing authority when the wallet
// owner declines to sign.
var ErrSignatureRejected = errors.New("signature request rejected by wallet owner")

// Повтор того же запроса может пройти: леджер или блокировка отпустят.
//
//nolint:gochecknoglobals
var retryableCodes = map[failure.ErrorCode]struct{}{
	errcodes.LedgerError:        {},
	errcodes.SubmissionInFlight: {},
	errcodes.TimeoutExceeded:    {},
}

// AppError доменная ошибка с кодом для клиента.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// WrapError сохраняет cause для errors.Is/As.
func WrapError(cause error, code failure.ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, cause: cause}
}

func (e *AppError) Error() string {
	if e.cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %v", e.Message, e.cause)
}

func (e *AppError) Unwrap() error { return e.cause }

// PublicMessage текст без причины, его можно отдавать клиенту.
func (e *AppError) PublicMessage() string { return e.Message }

func (e *AppError) ErrorCode() failure.ErrorCode { return e.Code }

func (e *AppError) Retryable() bool {
	_, ok := retryableCodes[e.Code]

	return ok
}

func IsAppError(err error) bool {
	_, ok := GetCode(err)

	return ok
}

// GetCode код первой AppError в цепочке.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return "", false
	}

	return appErr.Code, true
}

func HasCode(err error, code failure.ErrorCode) bool {
	got, ok := GetCode(err)

	return ok && got == code
}
