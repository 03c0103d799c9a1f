/*
Copyright 2017 The Fission Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package classbook

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
)

type (
	errorCode int

	Error struct {
		Code    errorCode `json:"code"`
		Message string    `json:"message"`
	}
)

const (
	ErrorSuccess = iota
	ErrorNotFound
	ErrorNameExists
	ErrorInvalidArgument
	ErrorMethodNotAllowed
	ErrorUnsupportedMediaType
	ErrorInternal
)

// must match order and len of the above enum
var errorDescriptions = []string{
	"Success",
	"Not found",
	"Name already exists",
	"Invalid argument",
	"Method not allowed",
	"Unsupported media type",
	"Internal error",
}

func MakeError(code int, msg string) Error {
	return Error{Code: errorCode(code), Message: msg}
}

func (err Error) Error() string {
	return fmt.Sprintf("%v - %v", err.Description(), err.Message)
}

func (err Error) Description() string {
	idx := int(err.Code)
	if idx < 0 || idx >= len(errorDescriptions) {
		return "Unknown error"
	}
	return errorDescriptions[idx]
}

func (err Error) HTTPStatus() int {
	var code int
	switch err.Code {
	case ErrorSuccess:
		code = http.StatusOK
	case ErrorNotFound:
		code = http.StatusNotFound
	case ErrorNameExists:
		code = http.StatusConflict
	case ErrorInvalidArgument:
		code = http.StatusBadRequest
	case ErrorMethodNotAllowed:
		code = http.StatusMethodNotAllowed
	case ErrorUnsupportedMediaType:
		code = http.StatusUnsupportedMediaType
	default:
		code = http.StatusInternalServerError
	}
	return code
}

// Short category text carried in the "error" field of every error envelope.
func ErrorCategory(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Invalid request format or parameters."
	case http.StatusNotFound:
		return "The requested resource does not exist."
	case http.StatusMethodNotAllowed:
		return "This method is not supported on this route."
	case http.StatusConflict:
		return "Conflict: Resource already exists or is in use."
	case http.StatusUnsupportedMediaType:
		return "Unsupported media type - check content headers."
	case http.StatusInternalServerError:
		return "Oops! Something went wrong on our end."
	default:
		return http.StatusText(status)
	}
}

// GetHTTPError maps err to a status code and a message safe to return to
// callers. Errors outside the taxonomy become a 500 with a generic message.
func GetHTTPError(err error) (int, string) {
	fe, ok := err.(Error)
	if !ok {
		return http.StatusInternalServerError, "internal server error"
	}
	code := fe.HTTPStatus()
	if code == http.StatusInternalServerError {
		return code, "internal server error"
	}
	return code, fe.Message
}

func MakeErrorFromHTTP(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errCode int
	switch resp.StatusCode {
	case http.StatusBadRequest:
		errCode = ErrorInvalidArgument
	case http.StatusNotFound:
		errCode = ErrorNotFound
	case http.StatusConflict:
		errCode = ErrorNameExists
	case http.StatusMethodNotAllowed:
		errCode = ErrorMethodNotAllowed
	case http.StatusUnsupportedMediaType:
		errCode = ErrorUnsupportedMediaType
	default:
		errCode = ErrorInternal
	}

	msg := resp.Status
	body, err := ioutil.ReadAll(resp.Body)
	if err == nil {
		var env ErrorEnvelope
		if json.Unmarshal(body, &env) == nil && len(env.Message) > 0 {
			msg = env.Message
		}
	}

	return MakeError(errCode, msg)
}
