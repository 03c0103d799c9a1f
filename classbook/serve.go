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

package main

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/yqf3139/classbook/controller"
)

func configureLogging(level string, json bool) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	if json {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}

func serve(c *cli.Context) error {
	err := configureLogging(c.String("log-level"), c.Bool("log-json"))
	checkErr(err, "configure logging")

	port := c.Int("port")
	if zipkinUrl := c.String("zipkin-url"); len(zipkinUrl) > 0 {
		rep, err := controller.InitTracing("classbook", port, zipkinUrl)
		checkErr(err, "set up tracing")
		defer rep.Close()
		log.WithFields(log.Fields{"collector": zipkinUrl}).Info("Reporting traces to zipkin")
	}

	store := controller.MakeClassStore()
	prometheus.MustRegister(controller.ClassGauge(store))
	api := controller.MakeAPI(store, os.Stdout)

	go controller.ServeMetrics(c.Int("metrics-port"))
	api.Serve(port)
	return nil
}
