package errors

import (
	"net/http"

	"store/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// The closed set of error conditions the services surface. The boundary
// layer matches on these instead of mapping exception types to statuses.
var (
	// Account-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"用戶不存在",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"用戶名被佔用",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusUnauthorized,
		"PASSWORD_MISMATCH",
		"用戶密碼錯誤",
		"",
	)

	// Shipping address errors
	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"收貨地址不存在",
		"",
	)

	ErrAddressAccessDenied = NewBaseError(
		http.StatusForbidden,
		"ADDRESS_ACCESS_DENIED",
		"非法的資料存取",
		"",
	)

	ErrAddressLimitExceeded = NewBaseError(
		http.StatusConflict,
		"ADDRESS_LIMIT_EXCEEDED",
		"收貨地址數量超出上限",
		"",
	)

	// Catalog and order errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"商品不存在",
		"",
	)

	ErrOrderCreateFailed = NewBaseError(
		http.StatusInternalServerError,
		"ORDER_CREATE_FAILED",
		"建立訂單失敗",
		"",
	)

	// ErrPersistenceConflict reports an expected-exactly-one-row write that
	// affected a different count. It signals a logic or concurrency bug, not
	// a business condition, and is never retried.
	ErrPersistenceConflict = NewBaseError(
		http.StatusInternalServerError,
		"PERSISTENCE_CONFLICT",
		"資料寫入時產生未知的異常",
		"",
	)

	// Avatar upload errors
	ErrFileEmpty = NewBaseError(
		http.StatusBadRequest,
		"FILE_EMPTY",
		"上傳的檔案為空",
		"",
	)

	ErrFileType = NewBaseError(
		http.StatusBadRequest,
		"FILE_TYPE",
		"不支援的檔案類型",
		"",
	)

	ErrFileSize = NewBaseError(
		http.StatusBadRequest,
		"FILE_SIZE",
		"檔案大小超出限制",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"請先登入",
		"",
	)
)

// FileIOError represents a storage I/O failure during an upload, implementing the AppError interface
type FileIOError struct {
	err     error
	details string
}

// NewFileIOError creates a file I/O error
func NewFileIOError(err error, details string) AppError {
	return &FileIOError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *FileIOError) Error() string {
	return errors.Wrap(e.err, "file io failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *FileIOError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *FileIOError) ErrorCode() string {
	return "FILE_IO"
}

// Message returns the user-friendly error message
func (e *FileIOError) Message() string {
	return "檔案讀寫異常"
}

// Details returns detailed error information
func (e *FileIOError) Details() string {
	return e.details
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
