// Package web defines common components for the HTTP delivery layer.
package web

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response holds the common response envelope for all APIs.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Error wraps a given err into the response envelope.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg returns a human readable message for the first failed field.
func GetErrorMsg(ve validator.ValidationErrors) string {
	if len(ve) == 0 {
		return ""
	}

	fe := ve[0]
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " field is required"
	case "amount":
		return field + " must be a positive decimal number"
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "nefield":
		return field + " must differ from " + fe.Param()
	}

	return field + " is invalid"
}
