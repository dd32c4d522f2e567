package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/el-rastro/constant"
)

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// IsType reports whether err carries a CustomError of the given type.
func IsType(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	if !stderrors.As(err, &ce) {
		return false
	}
	return ce.errType == errorType
}
