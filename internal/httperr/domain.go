package httperr

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure. Messages are display-ready and
// propagate unmodified to the boundary.
type Kind int

const (
	KindNotFound Kind = iota
	KindBusinessRule
	KindSchedulingConflict
	KindAccessDenied
	KindLockContention
)

type DomainError struct {
	Kind    Kind
	Message string
}

func (e DomainError) Error() string {
	return e.Message
}

func NotFoundErr(entity string, id any) error {
	return DomainError{Kind: KindNotFound, Message: fmt.Sprintf("%s not found: %v", entity, id)}
}

func Business(format string, args ...any) error {
	return DomainError{Kind: KindBusinessRule, Message: fmt.Sprintf(format, args...)}
}

func SchedulingConflict(format string, args ...any) error {
	return DomainError{Kind: KindSchedulingConflict, Message: fmt.Sprintf(format, args...)}
}

func AccessDenied(format string, args ...any) error {
	return DomainError{Kind: KindAccessDenied, Message: fmt.Sprintf(format, args...)}
}

// LockContention is the only kind a caller may retry without re-validating
// input.
func LockContention(format string, args ...any) error {
	return DomainError{Kind: KindLockContention, Message: fmt.Sprintf(format, args...)}
}

func IsKind(err error, kind Kind) bool {
	var de DomainError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

func IsNotFound(err error) bool       { return IsKind(err, KindNotFound) }
func IsBusiness(err error) bool       { return IsKind(err, KindBusinessRule) }
func IsAccessDenied(err error) bool   { return IsKind(err, KindAccessDenied) }
func IsLockContention(err error) bool { return IsKind(err, KindLockContention) }
