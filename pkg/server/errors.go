// Copyright (c) 2026, The mcdata Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	mcerrors "github.com/Melv1no/mcdata/pkg/errors"
	"github.com/Melv1no/mcdata/pkg/serializer"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes a structured error response using the standard ErrorResponse schema.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code mcerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes an error response derived from err.
// Structured errors keep their code, message and context; anything else
// is reported as an internal error with fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extraDetails map[string]any) {
	var se *mcerrors.StructuredError
	if stderrors.As(err, &se) {
		details := mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			if details == nil {
				details = map[string]any{}
			}
			details["error"] = se.Cause.Error()
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message, retryableFromCode(se.Code), details)
		return
	}

	details := mergeDetails(nil, extraDetails)
	if err != nil {
		if details == nil {
			details = map[string]any{}
		}
		details["error"] = err.Error()
	}
	WriteError(w, r, http.StatusInternalServerError, mcerrors.ErrCodeInternal, fallbackMessage, true, details)
}

// HTTPStatusFromCode maps an error code to the HTTP status returned to clients.
func HTTPStatusFromCode(code mcerrors.ErrorCode) int {
	switch code {
	case mcerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case mcerrors.ErrCodeNotFound,
		mcerrors.ErrCodeUnknownPlatform,
		mcerrors.ErrCodeUnknownVersion,
		mcerrors.ErrCodeItemNotFound,
		mcerrors.ErrCodeRecipeNotFound:
		return http.StatusNotFound
	case mcerrors.ErrCodeUnsupportedVersion:
		return http.StatusUnprocessableEntity
	case mcerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case mcerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case mcerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case mcerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		// Missing or malformed bundled data is a server-side fault.
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code mcerrors.ErrorCode) bool {
	switch code {
	case mcerrors.ErrCodeTimeout,
		mcerrors.ErrCodeUnavailable,
		mcerrors.ErrCodeRateLimitExceeded,
		mcerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
