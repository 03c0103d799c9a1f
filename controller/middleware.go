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

package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"mime"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/yqf3139/classbook"
)

type contextKey int

const requestIdKey contextKey = iota

const RequestIdHeader = "X-Request-Id"

func requestIdFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIdKey).(string)
	return id
}

// withRequestId keeps a caller supplied request id or mints a new one, and
// echoes it back on the response.
func (api *API) withRequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIdHeader)
		if len(id) == 0 {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIdHeader, id)
		ctx := context.WithValue(r.Context(), requestIdKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// panicGuard remembers whether a response has started, so a late panic does
// not write a second status line.
type panicGuard struct {
	http.ResponseWriter
	wroteHeader bool
}

func (pg *panicGuard) WriteHeader(code int) {
	pg.wroteHeader = true
	pg.ResponseWriter.WriteHeader(code)
}

func (pg *panicGuard) Write(b []byte) (int, error) {
	pg.wroteHeader = true
	return pg.ResponseWriter.Write(b)
}

func (api *API) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pg := &panicGuard{ResponseWriter: w}
		defer func() {
			if p := recover(); p != nil {
				entry := api.logger(r).WithFields(log.Fields{"stack": string(debug.Stack())})
				if pg.wroteHeader {
					entry.Errorf("Recovered from panic after response started: %v", p)
					return
				}
				entry.Errorf("Recovered from panic: %v", p)
				api.respondWithError(w, r, classbook.MakeError(classbook.ErrorInternal, fmt.Sprint(p)))
			}
		}()
		next.ServeHTTP(pg, r)
	})
}

// Largest request body the write routes will look at.
const maxBodyBytes = 64 << 10

// checkBody guards the write routes (create, book). They take no payload, but
// one that is sent must be bounded, JSON and well formed.
func (api *API) checkBody(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody {
			next(w, r)
			return
		}
		body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		r.Body.Close()
		if err != nil {
			api.respondWithError(w, r, classbook.MakeError(classbook.ErrorInvalidArgument,
				fmt.Sprintf("Failed to read request body: %v", err)))
			return
		}
		if len(body) > 0 {
			contentType := r.Header.Get("Content-Type")
			mediaType, _, err := mime.ParseMediaType(contentType)
			if err != nil || mediaType != "application/json" {
				api.respondWithError(w, r, classbook.MakeError(classbook.ErrorUnsupportedMediaType,
					fmt.Sprintf("Content-Type must be application/json, got '%v'", contentType)))
				return
			}
			if !json.Valid(body) {
				api.respondWithError(w, r, classbook.MakeError(classbook.ErrorInvalidArgument,
					"Request body is not valid JSON"))
				return
			}
		}
		r.Body = ioutil.NopCloser(bytes.NewReader(body))
		next(w, r)
	}
}
