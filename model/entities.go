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

// Package model contains the shared model for OpenStreetMap XML serialization.
package model

import (
	"time"
)

// UID is the primary key for a user.  A UID of zero denotes an anonymous
// user; serializers omit both the uid and user attributes for anonymous
// users.
type UID int32

// ID is the primary key of an entity.
type ID int64

// Tag is a key/value string pair attached to an entity.
type Tag struct {
	Key   string
	Value string
}

// TagList is an ordered list of tags.  Order is preserved on output, which
// keeps serialization deterministic.
type TagList []Tag

// Info represents information common to Node, Way, and Relation entities.
type Info struct {
	Version   int32
	UID       UID
	Timestamp time.Time
	Changeset int64
	User      string
	Visible   bool
}

// Anonymous reports whether the modifying user is anonymous.
func (i *Info) Anonymous() bool {
	return i.UID == 0
}

// Location is a point on the earth's surface.  Nodes that have been deleted
// carry no location.
type Location struct {
	Lat Degrees
	Lon Degrees
}

// Entity is one of Node, Way, Relation, or Changeset.  The set is closed.
type Entity interface {
	isEntity() // prevents extensions

	GetID() ID

	GetTags() TagList

	GetInfo() *Info
}

// Node represents a specific point on the earth's surface defined by its
// latitude and longitude. Each node comprises at least an id number and a
// pair of coordinates.
type Node struct {
	ID       ID
	Tags     TagList
	Info     *Info
	Location *Location
}

var _ Entity = Node{}

func (n Node) isEntity() {}

func (n Node) GetID() ID {
	return n.ID
}

func (n Node) GetTags() TagList {
	return n.Tags
}

func (n Node) GetInfo() *Info {
	return n.Info
}

// Way is an ordered list of between 2 and 2,000 nodes that define a polyline.
type Way struct {
	ID      ID
	Tags    TagList
	Info    *Info
	NodeIDs []ID
}

var _ Entity = Way{}

func (w Way) isEntity() {}

func (w Way) GetID() ID {
	return w.ID
}

func (w Way) GetTags() TagList {
	return w.Tags
}

func (w Way) GetInfo() *Info {
	return w.Info
}

// EntityType is an enumeration of OSM entity types.
type EntityType int32

const (
	// NODE denotes that the member is a node.
	NODE EntityType = iota

	// WAY denotes that the member is a way.
	WAY

	// RELATION denotes that the member is a relation.
	RELATION
)

// String returns the lowercase entity type name used in XML member elements.
func (t EntityType) String() string {
	switch t {
	case NODE:
		return "node"
	case WAY:
		return "way"
	case RELATION:
		return "relation"
	default:
		return "unknown"
	}
}

// Member represents an entity referenced by a relation.
type Member struct {
	ID   ID
	Type EntityType
	Role string
}

// Relation is a multipurpose data structure that documents a relationship
// between two or more data entities (nodes, ways, and/or other relations).
type Relation struct {
	ID      ID
	Tags    TagList
	Info    *Info
	Members []Member
}

var _ Entity = Relation{}

func (r Relation) isEntity() {}

func (r Relation) GetID() ID {
	return r.ID
}

func (r Relation) GetTags() TagList {
	return r.Tags
}

func (r Relation) GetInfo() *Info {
	return r.Info
}
