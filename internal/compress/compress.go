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

// Package compress wraps output sinks with the stream compressors commonly
// paired with OSM XML files.
package compress

import (
	"fmt"
	"io"
)

// Algorithm is an enumeration of supported output compressions.
type Algorithm int

const (
	// NONE writes the XML bytes through unchanged.
	NONE Algorithm = iota

	// GZIP produces .osm.gz style output.
	GZIP

	// ZSTD produces Zstandard compressed output.
	ZSTD

	// LZ4 produces LZ4 framed output.
	LZ4

	// XZ produces .osm.xz style output.
	XZ
)

func (a Algorithm) String() string {
	switch a {
	case NONE:
		return "none"
	case GZIP:
		return "gzip"
	case ZSTD:
		return "zstd"
	case LZ4:
		return "lz4"
	case XZ:
		return "xz"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps an algorithm name to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "none", "":
		return NONE, nil
	case "gzip":
		return GZIP, nil
	case "zstd":
		return ZSTD, nil
	case "lz4":
		return LZ4, nil
	case "xz":
		return XZ, nil
	default:
		return NONE, fmt.Errorf("unknown compression algorithm %q", name)
	}
}

// NewWriter wraps wrtr with the compressor for a.  The returned writer must
// be closed to flush the compressed stream; closing it does not close wrtr.
func NewWriter(wrtr io.Writer, a Algorithm) (io.WriteCloser, error) {
	switch a {
	case NONE:
		return newRawWriter(wrtr), nil
	case GZIP:
		return newGzipWriter(wrtr), nil
	case ZSTD:
		return newZstdWriter(wrtr)
	case LZ4:
		return newLz4Writer(wrtr), nil
	case XZ:
		return newXzWriter(wrtr)
	default:
		return nil, fmt.Errorf("unknown compression type: %v", a)
	}
}
