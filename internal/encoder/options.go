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

package encoder

// Options configures the rendered XML dialect.
type Options struct {
	// AddMetadata includes version, timestamp, uid, user, and changeset
	// attributes on objects.
	AddMetadata bool

	// AddVisibleFlag writes a visible attribute on objects carrying
	// metadata.  Meaningless in change format, where the operation groups
	// carry the same information.
	AddVisibleFlag bool

	// UseChangeOps selects the OsmChange (.osc) dialect: an osmChange root
	// element with objects grouped into create, modify, and delete
	// elements.
	UseChangeOps bool
}

// Normalize resolves the over-constrained combination of the visible flag
// with change format in favor of change-ops semantics.
func (o Options) Normalize() Options {
	if o.UseChangeOps {
		o.AddVisibleFlag = false
	}

	return o
}

// FromFileParams derives Options from generic file format parameters, the
// way a format factory would.  A file holding multiple versions of objects
// needs the visible flag to distinguish deletions.
func FromFileParams(params map[string]string, multipleVersions bool) Options {
	o := Options{
		AddMetadata:  params["add_metadata"] != "false",
		UseChangeOps: params["xml_change_format"] == "true",
	}

	o.AddVisibleFlag = multipleVersions || params["force_visible_flag"] == "true"

	return o.Normalize()
}

// indent returns the object indentation width for the dialect.
func (o Options) indent() int {
	if o.UseChangeOps {
		return 4
	}

	return 2
}
