package errorx

import "fmt"

type Error struct {
	Code    Code
	Message string
}

func (e Error) Error() string {
	return e.Message
}

// Unknown is returned when no backend message could be recovered at all.
var Unknown = Error{Code: 100000, Message: "Request failed"}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

// Message returns the presentable message of err. Raw transport errors are
// never surfaced; anything that is not an errorx.Error collapses to fallback.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}

	if xerr, ok := err.(Error); ok {
		return xerr.Message
	}

	return fallback
}
