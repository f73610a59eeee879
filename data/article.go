// Copyright 2025
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package data

// Article is one news item in the shape the analysis pipeline ingests. All
// fields serialize even when empty; Impact is always "neutral" because
// sentiment classification happens downstream.
type Article struct {
	Title       string `json:"title"`
	Impact      string `json:"impact"`
	Source      string `json:"source"`
	PublishTime string `json:"publish_time"`
	Summary     string `json:"summary"`
	URL         string `json:"url"`
	Content     string `json:"content"`
	Author      string `json:"author"`
}
