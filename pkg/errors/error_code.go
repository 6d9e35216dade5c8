package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidType          ErrorCode = 102
	ErrCodeInvalidPeriod        ErrorCode = 103
	ErrCodeMissingParameter     ErrorCode = 104
	ErrCodeInvalidThreshold     ErrorCode = 105
	ErrCodeInvalidBandWidth     ErrorCode = 106
	ErrCodeInsufficientData     ErrorCode = 107
	ErrCodeDegenerateInput      ErrorCode = 108

	// Data/Resource errors (200-299)
	ErrCodeDataNotFound          ErrorCode = 200
	ErrCodeDataSourceUnavailable ErrorCode = 201
	ErrCodeQueryFailed           ErrorCode = 202

	// Indicator errors (300-399)
	ErrCodeIndicatorNotFound      ErrorCode = 300
	ErrCodeIndicatorAlreadyExists ErrorCode = 301
	ErrCodeIndicatorCalculation   ErrorCode = 302

	// Strategy errors (400-499)
	ErrCodeStrategyNotFound    ErrorCode = 400
	ErrCodeStrategyConfigError ErrorCode = 401

	// Backtest errors (500-599)
	ErrCodeBacktestStateNil     ErrorCode = 500
	ErrCodeBacktestInitFailed   ErrorCode = 501
	ErrCodeBacktestConfigError  ErrorCode = 502
	ErrCodeBacktestNoDatasource ErrorCode = 503
	ErrCodeBacktestNoStrategies ErrorCode = 504
	ErrCodeLedgerWriteFailed    ErrorCode = 505
)
