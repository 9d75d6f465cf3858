package domain

import "fmt"

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeForbidden  = "FORBIDDEN"
	CodeConflict   = "CONFLICT"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrValidation - некорректные или отсутствующие входные данные
	ErrValidation = &DomainError{
		Code:    CodeValidation,
		Message: "invalid input",
	}

	// ErrNotFound - ресурс не найден или уже разрешён
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrForbidden - у команды нет прав на операцию
	ErrForbidden = &DomainError{
		Code:    CodeForbidden,
		Message: "operation not permitted for this team",
	}

	// ErrConflict - состояние сущности не допускает переход
	ErrConflict = &DomainError{
		Code:    CodeConflict,
		Message: "entity state does not allow this operation",
	}
)

// NewValidationError создает ошибку VALIDATION_ERROR с описанием
func NewValidationError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewForbiddenError(message string) *DomainError {
	return &DomainError{
		Code:    CodeForbidden,
		Message: message,
	}
}

func NewConflictError(message string) *DomainError {
	return &DomainError{
		Code:    CodeConflict,
		Message: message,
	}
}

// StorageError оборачивает непредвиденную ошибку хранилища.
// Запрос, получивший такую ошибку, считается проваленным целиком.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}
