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

package compress

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

const payload = "<osm version=\"0.6\" generator=\"test\">\n</osm>\n"

func newReader(t *testing.T, a Algorithm, r io.Reader) io.Reader {
	t.Helper()

	switch a {
	case NONE:
		return r
	case GZIP:
		zr, err := gzip.NewReader(r)
		require.NoError(t, err)

		return zr
	case ZSTD:
		zr, err := zstd.NewReader(r)
		require.NoError(t, err)

		return zr
	case LZ4:
		return lz4.NewReader(r)
	case XZ:
		xr, err := xz.NewReader(r)
		require.NoError(t, err)

		return xr
	default:
		t.Fatalf("unknown algorithm %v", a)

		return nil
	}
}

func TestRoundTrip(t *testing.T) {
	for _, a := range []Algorithm{NONE, GZIP, ZSTD, LZ4, XZ} {
		t.Run(a.String(), func(t *testing.T) {
			var buf bytes.Buffer

			w, err := NewWriter(&buf, a)
			require.NoError(t, err)

			_, err = io.WriteString(w, payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			got, err := io.ReadAll(newReader(t, a, &buf))
			require.NoError(t, err)

			assert.Equal(t, payload, string(got))
		})
	}
}

func TestRawWriterLeavesDelegateOpen(t *testing.T) {
	var buf strings.Builder

	w, err := NewWriter(&buf, NONE)
	require.NoError(t, err)

	_, err = io.WriteString(w, payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, payload, buf.String())
}

func TestParseAlgorithm(t *testing.T) {
	testCases := []struct {
		name     string
		expected Algorithm
	}{
		{"none", NONE},
		{"", NONE},
		{"gzip", GZIP},
		{"zstd", ZSTD},
		{"lz4", LZ4},
		{"xz", XZ},
	}

	for _, tc := range testCases {
		t.Run("name "+tc.name, func(t *testing.T) {
			a, err := ParseAlgorithm(tc.name)
			require.NoError(t, err)

			assert.Equal(t, tc.expected, a)
		})
	}

	_, err := ParseAlgorithm("brotli")
	assert.Error(t, err)
}

func TestAlgorithmString(t *testing.T) {
	assert.Equal(t, "gzip", GZIP.String())
	assert.Equal(t, "Algorithm(99)", Algorithm(99).String())
}
