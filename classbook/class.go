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
	"io"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli"

	"github.com/yqf3139/classbook"
)

func className(c *cli.Context) string {
	name := c.String("name")
	if len(name) == 0 {
		fatal("Need a class name, use --name")
	}
	return name
}

func classCreate(c *cli.Context) error {
	client := getClient(c.GlobalString("server"))
	name := className(c)

	_, err := client.ClassCreate(name)
	checkErr(err, "create class")

	fmt.Printf("class '%v' created\n", name)
	return nil
}

func classGet(c *cli.Context) error {
	client := getClient(c.GlobalString("server"))
	name := className(c)

	session, err := client.ClassGet(name)
	checkErr(err, "get class")

	printSessions(os.Stdout, []classbook.ClassSession{*session})
	return nil
}

func classBook(c *cli.Context) error {
	client := getClient(c.GlobalString("server"))
	name := className(c)

	session, err := client.ClassBook(name)
	checkErr(err, "book class")

	fmt.Printf("booked a spot in '%v', %v booked\n", name, session.Booked)
	return nil
}

func classDelete(c *cli.Context) error {
	client := getClient(c.GlobalString("server"))
	name := className(c)

	err := client.ClassDelete(name)
	checkErr(err, "delete class")

	fmt.Printf("class '%v' deleted\n", name)
	return nil
}

func classList(c *cli.Context) error {
	client := getClient(c.GlobalString("server"))

	sessions, err := client.ClassList()
	checkErr(err, "list classes")

	printSessions(os.Stdout, sessions)
	return nil
}

func printSessions(out io.Writer, sessions []classbook.ClassSession) {
	w := tabwriter.NewWriter(out, 0, 0, 1, ' ', 0)

	fmt.Fprintf(w, "%v\t%v\n", "NAME", "BOOKED")
	for _, s := range sessions {
		fmt.Fprintf(w, "%v\t%v\n", s.ClassName, s.Booked)
	}
	w.Flush()
}
