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
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/yqf3139/classbook"
)

type (
	// ClassStore maps class names to booking counters. One lock serializes
	// every mutation, so concurrent bookings never lose an update.
	ClassStore struct {
		sync.RWMutex
		counters map[string]int
		order    []string // insertion order of live names
		testMode bool
	}

	StoreOption func(*ClassStore)
)

// WithTestMode allows Reset to clear the store.
func WithTestMode() StoreOption {
	return func(cs *ClassStore) {
		cs.testMode = true
	}
}

func MakeClassStore(opts ...StoreOption) *ClassStore {
	cs := &ClassStore{
		counters: make(map[string]int),
		order:    make([]string, 0),
	}
	for _, opt := range opts {
		opt(cs)
	}
	return cs
}

func (cs *ClassStore) Exists(name string) bool {
	cs.RLock()
	defer cs.RUnlock()
	_, found := cs.counters[name]
	return found
}

func (cs *ClassStore) Create(name string) (*classbook.ClassSession, error) {
	cs.Lock()
	defer cs.Unlock()

	if _, found := cs.counters[name]; found {
		return nil, classbook.MakeError(classbook.ErrorNameExists,
			fmt.Sprintf("Class '%v' already exists.", name))
	}
	cs.counters[name] = 0
	cs.order = append(cs.order, name)

	return &classbook.ClassSession{ClassName: name, Booked: 0}, nil
}

func (cs *ClassStore) Get(name string) (*classbook.ClassSession, error) {
	cs.RLock()
	defer cs.RUnlock()

	booked, found := cs.counters[name]
	if !found {
		return nil, notFound(name)
	}
	return &classbook.ClassSession{ClassName: name, Booked: booked}, nil
}

// Book adds one booking to an existing class and returns the new count.
func (cs *ClassStore) Book(name string) (*classbook.ClassSession, error) {
	cs.Lock()
	defer cs.Unlock()

	booked, found := cs.counters[name]
	if !found {
		return nil, notFound(name)
	}
	booked++
	cs.counters[name] = booked
	bookingCounter.Inc()

	return &classbook.ClassSession{ClassName: name, Booked: booked}, nil
}

// Delete is idempotent; removing an absent class is not an error.
func (cs *ClassStore) Delete(name string) {
	cs.Lock()
	defer cs.Unlock()

	if _, found := cs.counters[name]; !found {
		return
	}
	delete(cs.counters, name)
	for i, n := range cs.order {
		if n == name {
			cs.order = append(cs.order[:i], cs.order[i+1:]...)
			break
		}
	}
}

func (cs *ClassStore) List() []classbook.ClassSession {
	cs.RLock()
	defer cs.RUnlock()

	sessions := make([]classbook.ClassSession, 0, len(cs.order))
	for _, name := range cs.order {
		sessions = append(sessions, classbook.ClassSession{
			ClassName: name,
			Booked:    cs.counters[name],
		})
	}
	return sessions
}

func (cs *ClassStore) Len() int {
	cs.RLock()
	defer cs.RUnlock()
	return len(cs.counters)
}

// Reset drops every class. It only works on stores built WithTestMode.
func (cs *ClassStore) Reset() {
	if !cs.testMode {
		log.Warn("Ignoring class store reset outside test mode")
		return
	}

	cs.Lock()
	defer cs.Unlock()
	cs.counters = make(map[string]int)
	cs.order = make([]string, 0)
}

func notFound(name string) error {
	return classbook.MakeError(classbook.ErrorNotFound,
		fmt.Sprintf("Class '%v' not found.", name))
}
