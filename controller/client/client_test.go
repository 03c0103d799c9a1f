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
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yqf3139/classbook"
	"github.com/yqf3139/classbook/controller"
)

func makeTestClient(t *testing.T) *Client {
	t.Helper()
	api := controller.MakeAPI(controller.MakeClassStore(), ioutil.Discard)
	srv := httptest.NewServer(api.GetHandler())
	t.Cleanup(srv.Close)
	return MakeClient(srv.URL + "/")
}

func requireCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	fe, ok := err.(classbook.Error)
	require.True(t, ok, "expected classbook.Error, got %T", err)
	assert.Equal(t, code, int(fe.Code))
}

func TestClientHealthAndInfo(t *testing.T) {
	c := makeTestClient(t)

	h, err := c.Health()
	require.NoError(t, err)
	assert.Equal(t, classbook.HealthRunning, h.Status)

	info, err := c.Info()
	require.NoError(t, err)
	assert.Equal(t, classbook.Version, info.Version)
	assert.Equal(t, c.Url+"/classes", info.Documentation)
}

func TestClientClassLifecycle(t *testing.T) {
	c := makeTestClient(t)

	sessions, err := c.ClassList()
	require.NoError(t, err)
	assert.Empty(t, sessions)

	session, err := c.ClassCreate("Yoga101")
	require.NoError(t, err)
	assert.Equal(t, 0, session.Booked)

	_, err = c.ClassCreate("Yoga101")
	requireCode(t, err, classbook.ErrorNameExists)
	assert.Contains(t, err.Error(), "Class 'Yoga101' already exists.")

	session, err = c.ClassBook("Yoga101")
	require.NoError(t, err)
	assert.Equal(t, 1, session.Booked)

	session, err = c.ClassGet("Yoga101")
	require.NoError(t, err)
	assert.Equal(t, classbook.ClassSession{ClassName: "Yoga101", Booked: 1}, *session)

	require.NoError(t, c.ClassDelete("Yoga101"))
	require.NoError(t, c.ClassDelete("Yoga101"))

	_, err = c.ClassGet("Yoga101")
	requireCode(t, err, classbook.ErrorNotFound)
	_, err = c.ClassBook("Yoga101")
	requireCode(t, err, classbook.ErrorNotFound)
}

func TestClientEscapesNames(t *testing.T) {
	c := makeTestClient(t)

	session, err := c.ClassCreate("Hot Yoga")
	require.NoError(t, err)
	assert.Equal(t, "Hot Yoga", session.ClassName)

	sessions, err := c.ClassList()
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Hot Yoga", sessions[0].ClassName)
}

func TestClientServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := MakeClient(srv.URL).ClassList()
	requireCode(t, err, classbook.ErrorInternal)
}
