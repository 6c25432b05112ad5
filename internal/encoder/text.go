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

// Package encoder renders OSM entities as OSM XML.  The append functions in
// this file are the textual primitives everything else builds on; they only
// ever grow dst and are independent of the process locale.
package encoder

import (
	"strconv"
	"time"

	"golang.org/x/exp/constraints"
)

// CoordinatePrecision is the number of fractional digits written for
// latitudes and longitudes.  Seven digits keep about one centimeter of
// resolution.
const CoordinatePrecision = 7

const iso8601 = "2006-01-02T15:04:05Z"

// AppendXMLEncoded appends s to dst, replacing the five predefined XML
// entities.  All other bytes, including control characters and multi-byte
// UTF-8 sequences, pass through verbatim; any further scrubbing is the
// producer's responsibility.
func AppendXMLEncoded(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '&':
			dst = append(dst, "&amp;"...)
		case '<':
			dst = append(dst, "&lt;"...)
		case '>':
			dst = append(dst, "&gt;"...)
		case '"':
			dst = append(dst, "&quot;"...)
		case '\'':
			dst = append(dst, "&apos;"...)
		default:
			dst = append(dst, c)
		}
	}

	return dst
}

// AppendCoordinate appends val in fixed-point notation with
// CoordinatePrecision fractional digits.  Trailing zeros are kept.
func AppendCoordinate(dst []byte, val float64) []byte {
	return strconv.AppendFloat(dst, val, 'f', CoordinatePrecision, 64)
}

// AppendInt appends the base-10 representation of v.
func AppendInt[T constraints.Signed](dst []byte, v T) []byte {
	return strconv.AppendInt(dst, int64(v), 10)
}

// AppendTimestamp appends t as ISO-8601 in UTC with second precision.
func AppendTimestamp(dst []byte, t time.Time) []byte {
	return t.UTC().AppendFormat(dst, iso8601)
}
