package compactsize

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CS_ERR_TRUNCATED     ErrorCode = "CS_ERR_TRUNCATED"
	CS_ERR_INVALID_RANGE ErrorCode = "CS_ERR_INVALID_RANGE"
	CS_ERR_NON_MINIMAL   ErrorCode = "CS_ERR_NON_MINIMAL"
)

type Error struct {
	Code ErrorCode
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Msg == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func cserr(code ErrorCode, msg string) error {
	return &Error{Code: code, Msg: msg}
}

// ErrorCodeOf reports the code of the first *Error in err's chain.
func ErrorCodeOf(err error) (ErrorCode, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Code, true
	}
	return "", false
}
