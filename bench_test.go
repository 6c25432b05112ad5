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

package osmxml_test

import (
	"fmt"
	"io"
	"testing"
	"time"

	"m4o.io/osmxml"
	"m4o.io/osmxml/model"
)

const benchBatchSize = 8000

func benchEntities() []model.Entity {
	ts := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	entities := make([]model.Entity, 0, benchBatchSize)
	for i := 0; i < benchBatchSize; i++ {
		entities = append(entities, model.Node{
			ID: model.ID(i),
			Info: &model.Info{
				Version:   int32(1 + i%5),
				UID:       model.UID(i % 100),
				Timestamp: ts,
				Changeset: int64(i),
				User:      fmt.Sprintf("user-%d", i%100),
				Visible:   true,
			},
			Location: &model.Location{
				Lat: model.Degrees(float64(i%180) - 90),
				Lon: model.Degrees(float64(i%360) - 180),
			},
			Tags: model.TagList{{Key: "name", Value: "bench"}},
		})
	}

	return entities
}

func benchWrite(b *testing.B, opts ...osmxml.WriterOption) {
	entities := benchEntities()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		w, err := osmxml.NewWriter(io.Discard, opts...)
		if err != nil {
			b.Fatal(err)
		}

		if err := w.WriteHeader(model.Header{Generator: "bench"}); err != nil {
			b.Fatal(err)
		}

		for j := 0; j < 4; j++ {
			if err := w.WriteBuffer(entities); err != nil {
				b.Fatal(err)
			}
		}

		if err := w.WriteEnd(); err != nil {
			b.Fatal(err)
		}

		if err := w.Close(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWriterSequential(b *testing.B) {
	benchWrite(b, osmxml.WithNCpus(1))
}

func BenchmarkWriterParallel(b *testing.B) {
	benchWrite(b, osmxml.WithNCpus(osmxml.DefaultNCpu()))
}

func BenchmarkWriterChangeFormat(b *testing.B) {
	benchWrite(b, osmxml.WithChangeFormat(), osmxml.WithNCpus(osmxml.DefaultNCpu()))
}
