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
	"errors"
	"io/ioutil"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code   int
		status int
	}{
		{ErrorNotFound, http.StatusNotFound},
		{ErrorNameExists, http.StatusConflict},
		{ErrorInvalidArgument, http.StatusBadRequest},
		{ErrorMethodNotAllowed, http.StatusMethodNotAllowed},
		{ErrorUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{ErrorInternal, http.StatusInternalServerError},
		{42, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, MakeError(tt.code, "x").HTTPStatus(), "code %d", tt.code)
	}
}

func TestErrorDescriptionsMatchCodes(t *testing.T) {
	assert.Len(t, errorDescriptions, ErrorInternal+1)
	assert.Equal(t, "Unknown error", MakeError(99, "").Description())
}

func TestGetHTTPError(t *testing.T) {
	code, msg := GetHTTPError(MakeError(ErrorNotFound, "Class 'Yoga101' not found."))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Class 'Yoga101' not found.", msg)

	code, msg = GetHTTPError(errors.New("dial tcp: secret host"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "internal server error", msg)

	code, msg = GetHTTPError(MakeError(ErrorInternal, "stack details"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.NotContains(t, msg, "stack")
}

func TestMakeErrorFromHTTP(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusConflict,
		Status:     "409 Conflict",
		Body: ioutil.NopCloser(strings.NewReader(
			`{"status":409,"error":"Conflict: Resource already exists or is in use.","message":"Class 'Yoga101' already exists."}`)),
	}
	err := MakeErrorFromHTTP(resp)
	require.Error(t, err)
	fe, ok := err.(Error)
	require.True(t, ok)
	assert.Equal(t, errorCode(ErrorNameExists), fe.Code)
	assert.Equal(t, "Class 'Yoga101' already exists.", fe.Message)

	resp = &http.Response{
		StatusCode: http.StatusBadGateway,
		Status:     "502 Bad Gateway",
		Body:       ioutil.NopCloser(strings.NewReader("upstream down")),
	}
	fe = MakeErrorFromHTTP(resp).(Error)
	assert.Equal(t, errorCode(ErrorInternal), fe.Code)
	assert.Equal(t, "502 Bad Gateway", fe.Message)

	resp = &http.Response{StatusCode: http.StatusOK}
	assert.NoError(t, MakeErrorFromHTTP(resp))
}

func TestErrorCategory(t *testing.T) {
	assert.Equal(t, "The requested resource does not exist.", ErrorCategory(http.StatusNotFound))
	assert.Equal(t, "Oops! Something went wrong on our end.", ErrorCategory(http.StatusInternalServerError))
	assert.Equal(t, http.StatusText(http.StatusTeapot), ErrorCategory(http.StatusTeapot))
}
