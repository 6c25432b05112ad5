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

package osmxml

import (
	"runtime"

	"m4o.io/osmxml/internal/compress"
	"m4o.io/osmxml/internal/encoder"
)

// DefaultCompression leaves the XML stream uncompressed.
const DefaultCompression = compress.NONE

// Compression algorithms accepted by WithCompression.
const (
	NONE = compress.NONE
	GZIP = compress.GZIP
	ZSTD = compress.ZSTD
	LZ4  = compress.LZ4
	XZ   = compress.XZ
)

// DefaultNCpu provides the default number of CPUs for block formatting.
func DefaultNCpu() uint16 {
	cpus := uint16(runtime.GOMAXPROCS(-1))

	return max(cpus-1, 1)
}

// writerOptions provides optional configuration parameters for Writer construction.
type writerOptions struct {
	encoding    encoder.Options
	compression compress.Algorithm
	nCPU        uint16 // the number of CPUs to use for background formatting
}

// WriterOption configures how we set up the writer.
type WriterOption func(*writerOptions)

// WithMetadata controls whether version, timestamp, uid, user, and changeset
// attributes are written on objects.  The default is to write them.
func WithMetadata(add bool) WriterOption {
	return func(o *writerOptions) {
		o.encoding.AddMetadata = add
	}
}

// WithVisibleFlag forces a visible attribute on every object carrying
// metadata.  Files holding multiple versions of objects need it to tell
// deletions apart.
func WithVisibleFlag(add bool) WriterOption {
	return func(o *writerOptions) {
		o.encoding.AddVisibleFlag = add
	}
}

// WithChangeFormat selects the OsmChange (.osc) dialect, with objects
// grouped into create, modify, and delete elements under an osmChange root.
func WithChangeFormat() WriterOption {
	return func(o *writerOptions) {
		o.encoding.UseChangeOps = true
	}
}

// WithCompression specifies the compression applied to the output stream.
// The default is NONE.
func WithCompression(compression compress.Algorithm) WriterOption {
	return func(o *writerOptions) {
		o.compression = compression
	}
}

// WithNCpus lets you set the number of CPUs to use for background formatting.
func WithNCpus(n uint16) WriterOption {
	return func(o *writerOptions) {
		o.nCPU = n
	}
}

// FromFileParams derives the dialect options from generic file format
// parameters, the way a format registry would: add_metadata defaults to on,
// xml_change_format selects the change dialect, and force_visible_flag or a
// file holding multiple object versions turns the visible flag on.  Change
// format always wins over the visible flag.
func FromFileParams(params map[string]string, multipleVersions bool) WriterOption {
	return func(o *writerOptions) {
		o.encoding = encoder.FromFileParams(params, multipleVersions)
	}
}

// defaultWriterConfig provides a default configuration for writers.
var defaultWriterConfig = writerOptions{
	encoding:    encoder.Options{AddMetadata: true},
	compression: DefaultCompression,
	nCPU:        DefaultNCpu(),
}
