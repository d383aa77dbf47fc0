package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldDrift           = "drift"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldEscrowAddress   = "escrow-address"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldNFTAddress      = "nft-address"
	FieldOfferID         = "offer-id"
	FieldOfferStatus     = "offer-status"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldStack           = "stack"
	FieldTaskType        = "task-type"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
	FieldWalletAddress   = "wallet-address"
)
