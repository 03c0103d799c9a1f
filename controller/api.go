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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dchest/uniuri"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/yqf3139/classbook"
)

type API struct {
	ClassStore *ClassStore

	router     *mux.Router
	accessLog  io.Writer
	instanceId string
}

func MakeAPI(store *ClassStore, accessLog io.Writer) *API {
	api := &API{
		ClassStore: store,
		accessLog:  accessLog,
		instanceId: uniuri.NewLen(8),
	}
	api.router = api.makeRouter()
	return api
}

func (api *API) makeRouter() *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(api.notFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(api.methodNotAllowedHandler)

	r.HandleFunc("/health", api.HealthApi).Methods("GET")
	r.HandleFunc("/", api.HomeApi).Methods("GET")

	r.HandleFunc("/classes", api.ClassApiList).Methods("GET").Name("classList")
	r.HandleFunc("/classes/{class}", api.checkBody(api.ClassApiCreate)).Methods("POST").Name("class")
	r.HandleFunc("/classes/{class}", api.ClassApiGet).Methods("GET")
	r.HandleFunc("/classes/{class}", api.ClassApiDelete).Methods("DELETE")
	r.HandleFunc("/classes/{class}/book", api.checkBody(api.ClassApiBook)).Methods("PUT")
	return r
}

// GetHandler returns the router wrapped in the request pipeline: access log,
// metrics, request ids, tracing and panic recovery.
func (api *API) GetHandler() http.Handler {
	var h http.Handler = api.router
	h = api.recoverer(h)
	h = api.traced(h)
	h = api.withRequestId(h)
	h = instrument(h)
	return handlers.LoggingHandler(api.accessLog, h)
}

func (api *API) Serve(port int) {
	address := fmt.Sprintf(":%v", port)
	api.logger(nil).WithFields(log.Fields{"port": port}).Info("Starting classbook API")
	log.Fatal(http.ListenAndServe(address, api.GetHandler()))
}

// logger returns an entry carrying the instance id and, when r is non-nil,
// the request id and path.
func (api *API) logger(r *http.Request) *log.Entry {
	fields := log.Fields{"instance": api.instanceId}
	if r != nil {
		fields["request_id"] = requestIdFrom(r.Context())
		fields["path"] = r.URL.Path
		fields["method"] = r.Method
	}
	return log.WithFields(fields)
}

func (api *API) respondWithJSON(w http.ResponseWriter, r *http.Request, code int, v interface{}) {
	resp, err := json.Marshal(v)
	if err != nil {
		api.respondWithError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(resp)
}

func (api *API) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := classbook.GetHTTPError(err)

	entry := api.logger(r).WithFields(log.Fields{"status": code})
	if code >= http.StatusInternalServerError {
		entry.WithError(err).Error(classbook.ErrorCategory(code))
	} else {
		entry.Warn(msg)
	}

	env := classbook.ErrorEnvelope{
		Status:  code,
		Error:   classbook.ErrorCategory(code),
		Message: msg,
	}
	resp, _ := json.Marshal(env)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(resp)
}

func (api *API) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	api.respondWithError(w, r, classbook.MakeError(classbook.ErrorNotFound,
		fmt.Sprintf("The requested URL %v was not found on the server.", r.URL.Path)))
}

func (api *API) methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	allowed := api.allowedMethods(r)
	if len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}
	api.respondWithError(w, r, classbook.MakeError(classbook.ErrorMethodNotAllowed,
		fmt.Sprintf("The method %v is not allowed for the requested URL.", r.Method)))
}

func (api *API) allowedMethods(r *http.Request) []string {
	allowed := make([]string, 0)
	for _, method := range []string{"GET", "POST", "PUT", "DELETE"} {
		probe := r.Clone(r.Context())
		probe.Method = method
		var match mux.RouteMatch
		if api.router.Match(probe, &match) && match.MatchErr == nil {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

// absoluteURL turns a route path into a URL using the scheme and host the
// caller reached us on.
func absoluteURL(r *http.Request, u *url.URL) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); len(proto) > 0 {
		scheme = proto
	}
	abs := *u
	abs.Scheme = scheme
	abs.Host = r.Host
	return abs.String()
}
