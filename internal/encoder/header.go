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

import (
	"m4o.io/osmxml/model"
)

// EncodeHeader renders the document prologue: XML declaration, root element,
// and one bounds element per header bounding box.
func EncodeHeader(hdr model.Header, opts Options) string {
	out := []byte("<?xml version='1.0' encoding='UTF-8'?>\n")

	if opts.UseChangeOps {
		out = append(out, `<osmChange version="0.6" generator="`...)
	} else {
		out = append(out, `<osm version="0.6"`...)

		if hdr.JosmUpload == "true" || hdr.JosmUpload == "false" {
			out = append(out, ` upload="`...)
			out = append(out, hdr.JosmUpload...)
			out = append(out, '"')
		}

		out = append(out, ` generator="`...)
	}

	out = AppendXMLEncoded(out, hdr.Generator)
	out = append(out, "\">\n"...)

	for _, box := range hdr.BoundingBoxes {
		out = append(out, `  <bounds minlon="`...)
		out = AppendCoordinate(out, float64(box.Left))
		out = append(out, `" minlat="`...)
		out = AppendCoordinate(out, float64(box.Bottom))
		out = append(out, `" maxlon="`...)
		out = AppendCoordinate(out, float64(box.Right))
		out = append(out, `" maxlat="`...)
		out = AppendCoordinate(out, float64(box.Top))
		out = append(out, "\"/>\n"...)
	}

	return string(out)
}

// EncodeTrailer renders the document epilogue.
func EncodeTrailer(opts Options) string {
	if opts.UseChangeOps {
		return "</osmChange>\n"
	}

	return "</osm>\n"
}
