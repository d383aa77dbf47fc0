package reply

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"nft_escrow/pkg/contextx"
	"nft_escrow/pkg/errcodes"
	"nft_escrow/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
	Retryable bool   `json:"retryable"`
}

func (e *errorResponse) WithDefaultCode(code failure.ErrorCode) {
	if e.Code == "" {
		e.Code = code.String()
	}
}

// codedError is implemented by domain errors carrying their own error code.
type codedError interface {
	error
	ErrorCode() failure.ErrorCode
	Retryable() bool
	// PublicMessage is the message without the wrapped cause.
	PublicMessage() string
}

//nolint:gochecknoglobals
var statusByCode = map[failure.ErrorCode]int{
	errcodes.ValidationError:     http.StatusBadRequest,
	errcodes.InvalidAmount:       http.StatusBadRequest,
	errcodes.InvalidAddress:      http.StatusBadRequest,
	errcodes.InvalidOfferID:      http.StatusBadRequest,
	errcodes.NotAuthenticated:    http.StatusUnauthorized,
	errcodes.Forbidden:           http.StatusForbidden,
	errcodes.NotFound:            http.StatusNotFound,
	errcodes.OfferNotFound:       http.StatusNotFound,
	errcodes.AssetNotFound:       http.StatusNotFound,
	errcodes.OfferAlreadyActive:  http.StatusConflict,
	errcodes.IllegalTransition:   http.StatusConflict,
	errcodes.OfferRecorded:       http.StatusConflict,
	errcodes.SubmissionInFlight:  http.StatusConflict,
	errcodes.UserCancelled:       http.StatusConflict,
	errcodes.LedgerError:         http.StatusBadGateway,
	errcodes.TimeoutExceeded:     http.StatusGatewayTimeout,
	errcodes.RecordStoreError:    http.StatusInternalServerError,
	errcodes.InternalServerError: http.StatusInternalServerError,
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func Created(w http.ResponseWriter) {
	w.WriteHeader(http.StatusCreated)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	var coded codedError
	if errors.As(err, &coded) {
		codedErrorReply(ctx, w, coded)

		return
	}

	logger(ctx).Error("error", logx.Error(err))

	response := errorResponse{
		Code:      failure.Code(err).String(),
		Message:   failure.Description(err),
		SupportID: supportID(ctx),
	}

	switch {
	case failure.IsInvalidArgumentError(err):
		response.WithDefaultCode(errcodes.ValidationError)
		JSON(ctx, w, http.StatusBadRequest, response)
	case failure.IsNotFoundError(err):
		response.WithDefaultCode(errcodes.NotFound)
		JSON(ctx, w, http.StatusNotFound, response)
	case failure.IsUnauthorizedError(err):
		JSON(ctx, w, http.StatusUnauthorized, response)
	case failure.IsForbiddenError(err):
		response.WithDefaultCode(errcodes.Forbidden)
		JSON(ctx, w, http.StatusForbidden, response)
	case failure.IsConflictError(err):
		JSON(ctx, w, http.StatusConflict, response)
	case failure.IsUnprocessableEntityError(err):
		JSON(ctx, w, http.StatusUnprocessableEntity, response)
	default:
		response.WithDefaultCode(errcodes.InternalServerError)
		JSON(ctx, w, http.StatusInternalServerError, response)
	}
}

func codedErrorReply(ctx context.Context, w http.ResponseWriter, err codedError) {
	code := err.ErrorCode()

	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	message := err.Error()

	if status >= http.StatusInternalServerError {
		logger(ctx).Error("error", slog.String("code", code.String()), logx.Error(err))
		// причина 5xx остается в логе, клиенту только supportId
		message = err.PublicMessage()
	} else {
		logger(ctx).Warn("error", slog.String("code", code.String()), logx.Error(err))
	}

	JSON(ctx, w, status, errorResponse{
		Code:      code.String(),
		Message:   message,
		SupportID: supportID(ctx),
		Retryable: err.Retryable(),
	})
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
