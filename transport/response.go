package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/el-rastro/constant"
	"github.com/muhammadheryan/el-rastro/utils/errors"
	"github.com/muhammadheryan/el-rastro/utils/logger"
	validatorx "github.com/muhammadheryan/el-rastro/utils/validator"
	"go.uber.org/zap"
)

// Response is the envelope of every JSON reply.
type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("[writeJSON] err encode response", zap.Int("status", status), zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

// writeError renders a CustomError with its HTTP status. Any other error is reported as internal.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		logger.Error("[writeError] unexpected error", zap.String("error", err.Error()))
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	writeJSON(w, ce.ErrorHTTPCode(), Response{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
	})
}

// decodeBody decodes a JSON request body and validates it when validate is set.
func decodeBody(r *http.Request, out interface{}, validate bool) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if validate {
		if err := validatorx.ValidateStruct(out); err != nil {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}
	return nil
}
