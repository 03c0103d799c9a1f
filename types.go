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

package classbook

const (
	Version        = "2.0.0"
	WelcomeMessage = "Welcome to the Fitness Class Booking System!"
	HealthRunning  = "Running"
)

type (
	// A named booking counter. Booked only ever goes up.
	ClassSession struct {
		ClassName string `json:"class_name"`
		Booked    int    `json:"booked"`
	}

	Health struct {
		Status string `json:"status"`
	}

	Welcome struct {
		Status        int    `json:"status"`
		Message       string `json:"message"`
		Version       string `json:"version"`
		Documentation string `json:"documentation"`
	}

	// Body of every non-2xx response.
	ErrorEnvelope struct {
		Status  int    `json:"status"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
)
