package types

import "github.com/plant-tracker/server/pkg/apperr"

// ErrorCode is the stable code/message pair returned in every error body.
type ErrorCode struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationIssue describes a single rejected field of a request payload.
type ValidationIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Rule    string `json:"rule,omitempty"`
}

// ErrorBody is the fixed shape of every non-2xx response.
type ErrorBody struct {
	ErrorCode        ErrorCode         `json:"errorCode"`
	ValidationErrors []ValidationIssue `json:"validationErrors,omitempty"`
}

// FromCode builds the wire representation of a taxonomy code.
func FromCode(code apperr.Code) ErrorCode {
	return ErrorCode{Code: string(code), Message: code.Message()}
}
