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

// Header is the document-level metadata of an OSM XML file.
type Header struct {
	// BoundingBoxes are written as <bounds/> elements right after the root
	// element, one per box.
	BoundingBoxes []BoundingBox `json:"bounding_boxes,omitempty"`

	// Generator names the program that produced the file.
	Generator string `json:"generator,omitempty"`

	// JosmUpload controls the upload attribute JOSM honors on the root
	// element.  It is written only when set to exactly "true" or "false".
	JosmUpload string `json:"josm_upload,omitempty"`
}
