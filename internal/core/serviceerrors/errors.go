package serviceerrors

import "errors"

type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindConflict
	KindUnprocessableEntity
	KindInvalidRequest
	// KindUnsupported marks calls that a component rejects by contract, such
	// as mutations on a query-side repository. Treated as a programming
	// error, not a user error.
	KindUnsupported
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnprocessableEntity:
		return "unprocessable_entity"
	case KindInvalidRequest:
		return "invalid_request"
	case KindUnsupported:
		return "unsupported_operation"
	default:
		return "internal"
	}
}

func IsOfKind(err error, kind ErrorKind) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind == kind
	}
	return false
}

type ServiceError struct {
	Kind    ErrorKind
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *ServiceError {
	return &ServiceError{Kind: KindConflict, Message: message}
}

func NewUnprocessableEntityError(message string) *ServiceError {
	return &ServiceError{Kind: KindUnprocessableEntity, Message: message}
}

func NewInvalidRequestError(message string) *ServiceError {
	return &ServiceError{Kind: KindInvalidRequest, Message: message}
}

func NewUnsupportedError(message string) *ServiceError {
	return &ServiceError{Kind: KindUnsupported, Message: message}
}
