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
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/yqf3139/classbook"
)

func (api *API) HealthApi(w http.ResponseWriter, r *http.Request) {
	api.respondWithJSON(w, r, http.StatusOK, classbook.Health{Status: classbook.HealthRunning})
}

func (api *API) HomeApi(w http.ResponseWriter, r *http.Request) {
	api.logger(r).Info("Accessed API home")

	docs, err := api.router.Get("classList").URL()
	if err != nil {
		api.respondWithError(w, r, err)
		return
	}
	api.respondWithJSON(w, r, http.StatusOK, classbook.Welcome{
		Status:        http.StatusOK,
		Message:       classbook.WelcomeMessage,
		Version:       classbook.Version,
		Documentation: absoluteURL(r, docs),
	})
}

func (api *API) ClassApiList(w http.ResponseWriter, r *http.Request) {
	api.logger(r).Info("Listing all fitness class sessions")
	api.respondWithJSON(w, r, http.StatusOK, api.ClassStore.List())
}

func (api *API) ClassApiCreate(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["class"]
	api.logger(r).WithFields(log.Fields{"class": name}).Info("Creating new class")

	session, err := api.ClassStore.Create(name)
	if err != nil {
		api.respondWithError(w, r, err)
		return
	}

	location, err := api.router.Get("class").URL("class", name)
	if err != nil {
		api.respondWithError(w, r, err)
		return
	}
	w.Header().Set("Location", absoluteURL(r, location))
	api.respondWithJSON(w, r, http.StatusCreated, session)
}

func (api *API) ClassApiGet(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["class"]
	api.logger(r).WithFields(log.Fields{"class": name}).Info("Fetching class info")

	session, err := api.ClassStore.Get(name)
	if err != nil {
		api.respondWithError(w, r, err)
		return
	}
	api.respondWithJSON(w, r, http.StatusOK, session)
}

func (api *API) ClassApiBook(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["class"]
	api.logger(r).WithFields(log.Fields{"class": name}).Info("Booking a spot")

	session, err := api.ClassStore.Book(name)
	if err != nil {
		api.respondWithError(w, r, err)
		return
	}
	api.respondWithJSON(w, r, http.StatusOK, session)
}

func (api *API) ClassApiDelete(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["class"]
	api.logger(r).WithFields(log.Fields{"class": name}).Info("Canceling class")

	api.ClassStore.Delete(name)
	w.WriteHeader(http.StatusNoContent)
}
