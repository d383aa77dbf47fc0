package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Offer submission.
	NotAuthenticated   failure.ErrorCode = "NotAuthenticated"
	InvalidAmount      failure.ErrorCode = "InvalidAmount"
	InvalidAddress     failure.ErrorCode = "InvalidAddress"
	InvalidOfferID     failure.ErrorCode = "InvalidOfferID"
	OfferAlreadyActive failure.ErrorCode = "OfferAlreadyActive"
	OfferRecorded      failure.ErrorCode = "OfferRecorded"
	SubmissionInFlight failure.ErrorCode = "SubmissionInFlight"

	// Offer lifecycle.
	IllegalTransition failure.ErrorCode = "IllegalTransition"
	OfferNotFound     failure.ErrorCode = "OfferNotFound"
	UserCancelled     failure.ErrorCode = "UserCancelled"

	// Collaborators.
	LedgerError      failure.ErrorCode = "LedgerError"
	RecordStoreError failure.ErrorCode = "RecordStoreError"
	AssetNotFound    failure.ErrorCode = "AssetNotFound"
)
