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

package client

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/jmoiron/jsonq"

	"github.com/yqf3139/classbook"
)

type (
	Client struct {
		Url        string
		HTTPClient *http.Client
	}

	// What the server says about itself on its home route.
	ServerInfo struct {
		Version       string
		Documentation string
	}
)

func MakeClient(serverUrl string) *Client {
	return &Client{
		Url:        strings.TrimSuffix(serverUrl, "/"),
		HTTPClient: http.DefaultClient,
	}
}

func (c *Client) url(tail string) string {
	return c.Url + tail
}

func (c *Client) classUrl(name string, suffix string) string {
	return c.url(fmt.Sprintf("/classes/%v%v", url.PathEscape(name), suffix))
}

func (c *Client) do(method string, u string) ([]byte, error) {
	req, err := http.NewRequest(method, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return c.handleResponse(resp)
}

func (c *Client) handleResponse(resp *http.Response) ([]byte, error) {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classbook.MakeErrorFromHTTP(resp)
	}
	return ioutil.ReadAll(resp.Body)
}

func (c *Client) classSession(method string, u string) (*classbook.ClassSession, error) {
	body, err := c.do(method, u)
	if err != nil {
		return nil, err
	}
	var session classbook.ClassSession
	err = json.Unmarshal(body, &session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) Health() (*classbook.Health, error) {
	body, err := c.do("GET", c.url("/health"))
	if err != nil {
		return nil, err
	}
	var h classbook.Health
	err = json.Unmarshal(body, &h)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Info reads the welcome payload loosely so that servers adding fields to it
// stay readable.
func (c *Client) Info() (*ServerInfo, error) {
	body, err := c.do("GET", c.url("/"))
	if err != nil {
		return nil, err
	}
	data := map[string]interface{}{}
	err = json.Unmarshal(body, &data)
	if err != nil {
		return nil, err
	}
	jq := jsonq.NewQuery(data)
	version, err := jq.String("version")
	if err != nil {
		return nil, err
	}
	docs, err := jq.String("documentation")
	if err != nil {
		return nil, err
	}
	return &ServerInfo{Version: version, Documentation: docs}, nil
}

func (c *Client) ClassList() ([]classbook.ClassSession, error) {
	body, err := c.do("GET", c.url("/classes"))
	if err != nil {
		return nil, err
	}
	sessions := make([]classbook.ClassSession, 0)
	err = json.Unmarshal(body, &sessions)
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (c *Client) ClassCreate(name string) (*classbook.ClassSession, error) {
	return c.classSession("POST", c.classUrl(name, ""))
}

func (c *Client) ClassGet(name string) (*classbook.ClassSession, error) {
	return c.classSession("GET", c.classUrl(name, ""))
}

func (c *Client) ClassBook(name string) (*classbook.ClassSession, error) {
	return c.classSession("PUT", c.classUrl(name, "/book"))
}

func (c *Client) ClassDelete(name string) error {
	_, err := c.do("DELETE", c.classUrl(name, ""))
	return err
}
