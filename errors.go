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
	"errors"

	"m4o.io/osmxml/internal/encoder"
)

var (
	// ErrWriterClosed is returned when writing after WriteEnd or Close.
	ErrWriterClosed = errors.New("writer is closed")

	// ErrUnknownEntity is returned, via Close or Err, when a buffer held an
	// entity kind the serializer does not handle.
	ErrUnknownEntity = encoder.ErrUnknownEntity

	// ErrCannotClassify is returned, via Close or Err, when change format
	// output was requested for an object without metadata.
	ErrCannotClassify = encoder.ErrCannotClassify
)
