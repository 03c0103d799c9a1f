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
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/yqf3139/classbook"
	"github.com/yqf3139/classbook/controller/client"
)

func fatal(msg string) {
	os.Stderr.WriteString(msg + "\n")
	os.Exit(1)
}

func checkErr(err error, msg string) {
	if err != nil {
		fatal(fmt.Sprintf("Failed to %v: %v", msg, err))
	}
}

func getClient(serverUrl string) *client.Client {
	if len(serverUrl) == 0 {
		fatal("Need --server or CLASSBOOK_SERVER set to your classbook server.")
	}
	return client.MakeClient(serverUrl)
}

func health(c *cli.Context) error {
	client := getClient(c.GlobalString("server"))

	h, err := client.Health()
	checkErr(err, "check health")
	info, err := client.Info()
	checkErr(err, "get server info")

	fmt.Printf("%v (version %v)\n", h.Status, info.Version)
	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "classbook"
	app.Usage = "Book spots in fitness classes"
	app.Version = classbook.Version

	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "server", Value: "http://localhost:8888", Usage: "classbook server url", EnvVar: "CLASSBOOK_SERVER"},
	}

	nameFlag := cli.StringFlag{Name: "name", Usage: "class name"}
	classSubcommands := []cli.Command{
		{Name: "create", Usage: "Create a class", Flags: []cli.Flag{nameFlag}, Action: classCreate},
		{Name: "get", Usage: "Show a class and its bookings", Flags: []cli.Flag{nameFlag}, Action: classGet},
		{Name: "book", Usage: "Book a spot in a class", Flags: []cli.Flag{nameFlag}, Action: classBook},
		{Name: "delete", Usage: "Cancel a class", Flags: []cli.Flag{nameFlag}, Action: classDelete},
		{Name: "list", Usage: "List all classes", Flags: []cli.Flag{}, Action: classList},
	}

	serveFlags := []cli.Flag{
		cli.IntFlag{Name: "port", Value: 8888, Usage: "API port", EnvVar: "CLASSBOOK_PORT"},
		cli.IntFlag{Name: "metrics-port", Value: 8080, Usage: "Prometheus metrics port", EnvVar: "CLASSBOOK_METRICS_PORT"},
		cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn or error", EnvVar: "CLASSBOOK_LOG_LEVEL"},
		cli.BoolFlag{Name: "log-json", Usage: "log as JSON", EnvVar: "CLASSBOOK_LOG_JSON"},
		cli.StringFlag{Name: "zipkin-url", Usage: "zipkin span collector, e.g. http://zipkin:9411/api/v2/spans", EnvVar: "CLASSBOOK_ZIPKIN_URL"},
	}

	app.Commands = []cli.Command{
		{Name: "serve", Usage: "Run the classbook API server", Flags: serveFlags, Action: serve},
		{Name: "class", Aliases: []string{"c"}, Usage: "Fitness class commands", Subcommands: classSubcommands},
		{Name: "health", Usage: "Check that the server is running", Action: health},
	}
	return app
}

func main() {
	newApp().Run(os.Args)
}
