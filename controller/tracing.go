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
	"fmt"
	"net/http"

	zipkinot "github.com/openzipkin-contrib/zipkin-go-opentracing"
	"github.com/openzipkin/zipkin-go"
	"github.com/openzipkin/zipkin-go/reporter"
	zipkinhttp "github.com/openzipkin/zipkin-go/reporter/http"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

// InitTracing ships spans to the zipkin collector at collectorUrl, e.g.
// http://zipkin:9411/api/v2/spans. Close the returned reporter on shutdown.
func InitTracing(svcName string, port int, collectorUrl string) (reporter.Reporter, error) {
	rep := zipkinhttp.NewReporter(collectorUrl)
	err := installTracer(rep, svcName, fmt.Sprintf("localhost:%v", port))
	if err != nil {
		rep.Close()
		return nil, err
	}
	return rep, nil
}

func installTracer(rep reporter.Reporter, svcName string, hostPort string) error {
	endpoint, err := zipkin.NewEndpoint(svcName, hostPort)
	if err != nil {
		return err
	}
	tracer, err := zipkin.NewTracer(rep, zipkin.WithLocalEndpoint(endpoint))
	if err != nil {
		return err
	}
	opentracing.SetGlobalTracer(zipkinot.Wrap(tracer))
	return nil
}

func startTracingFromHttpHeader(opName string, r *http.Request) opentracing.Span {
	var sp opentracing.Span
	wireContext, err := opentracing.GlobalTracer().Extract(
		opentracing.HTTPHeaders,
		opentracing.HTTPHeadersCarrier(r.Header))
	if err != nil {
		// Can't join the caller's trace, start a new root span.
		sp = opentracing.StartSpan(opName)
	} else {
		sp = opentracing.StartSpan(opName, opentracing.ChildOf(wireContext))
	}
	return sp
}

func (api *API) traced(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sp := startTracingFromHttpHeader(fmt.Sprintf("classbook::%v", r.Method), r)
		defer sp.Finish()
		ext.HTTPMethod.Set(sp, r.Method)
		ext.HTTPUrl.Set(sp, r.URL.String())
		sp.SetTag("request_id", requestIdFrom(r.Context()))

		ctx := opentracing.ContextWithSpan(r.Context(), sp)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
