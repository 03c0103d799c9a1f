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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classbook_requests_total",
			Help: "How many API requests were served, by status code and method.",
		},
		[]string{"code", "method"},
	)
	bookingCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "classbook_bookings_total",
			Help: "How many spots were booked across all classes.",
		},
	)
)

func init() {
	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(bookingCounter)
}

// ClassGauge reports how many classes cs holds, read at scrape time. A server
// registers the gauge of its one store.
func ClassGauge(cs *ClassStore) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "classbook_classes",
			Help: "Number of classes currently present.",
		},
		func() float64 { return float64(cs.Len()) },
	)
}

func instrument(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerCounter(requestCounter, next)
}

// ServeMetrics exposes the registered metrics on their own port, away from
// the API router.
func ServeMetrics(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	address := fmt.Sprintf(":%v", port)
	log.WithFields(log.Fields{"port": port}).Info("Serving metrics")
	log.Fatal(http.ListenAndServe(address, mux))
}
