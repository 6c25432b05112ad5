// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import (
	"time"
)

// Comment is a single entry in a changeset discussion.
type Comment struct {
	UID  UID
	User string
	Date time.Time
	Text string
}

// Changeset groups edits made by a single user over a short period of time.
// A changeset is metadata about edits, not map data itself; it never appears
// in change (.osc) documents.
type Changeset struct {
	ID          ID
	CreatedAt   time.Time
	ClosedAt    time.Time // zero while the changeset is still open
	UID         UID
	User        string
	Bounds      *BoundingBox
	NumChanges  int32
	NumComments int32
	Tags        TagList
	Discussion  []Comment
}

var _ Entity = Changeset{}

func (c Changeset) isEntity() {}

func (c Changeset) GetID() ID {
	return c.ID
}

func (c Changeset) GetTags() TagList {
	return c.Tags
}

// GetInfo returns nil; changesets carry their metadata inline.
func (c Changeset) GetInfo() *Info {
	return nil
}

// Open reports whether the changeset has not been closed yet.
func (c Changeset) Open() bool {
	return c.ClosedAt.IsZero()
}

// Anonymous reports whether the changeset was opened anonymously.
func (c Changeset) Anonymous() bool {
	return c.UID == 0
}
