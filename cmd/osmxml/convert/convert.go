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

// Package convert implements the convert command, which turns an
// Overpass-style JSON extract into an .osm or .osc XML file.
package convert

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"sort"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/osmxml"
	"m4o.io/osmxml/cmd/osmxml/cli"
	"m4o.io/osmxml/internal/compress"
	"m4o.io/osmxml/model"
)

var out *os.File

func init() {
	cli.RootCmd.AddCommand(convertCmd)

	flags := convertCmd.Flags()
	flags.VarP(cli.NewWriterValue(os.Stdout, &out, "file"), "output", "o", "output file, stdout if omitted")
	flags.BoolP("change", "c", false, "write OsmChange (.osc) format")
	flags.Bool("no-metadata", false, "omit object metadata")
	flags.Bool("visible", false, "force the visible flag on all objects")
	flags.Uint16P("cpu", "n", uint16(runtime.GOMAXPROCS(-1)), "number of CPUs to use for formatting")
	flags.StringP("compress", "z", "none", "output compression: none, gzip, zstd, lz4, or xz")
	flags.StringP("generator", "g", "osmxml", "generator recorded in the file header")
	flags.IntP("batch", "b", 8000, "number of entities formatted per block")
}

var convertCmd = &cobra.Command{
	Use:   "convert [<JSON extract>]",
	Short: "Convert a JSON extract to OSM XML",
	Long:  "Convert an Overpass-style JSON extract to an .osm or .osc XML file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {

		var f *os.File
		var err error
		if len(args) == 1 {
			f, err = os.Open(args[0])
			if err != nil {
				log.Fatal(err)
			}
		} else {
			f = os.Stdin
		}

		in, err := cli.WrapInputFile(f)
		if err != nil {
			log.Fatal(err)
		}

		flags := cmd.Flags()

		change, err := flags.GetBool("change")
		if err != nil {
			log.Fatal(err)
		}

		noMetadata, err := flags.GetBool("no-metadata")
		if err != nil {
			log.Fatal(err)
		}

		visible, err := flags.GetBool("visible")
		if err != nil {
			log.Fatal(err)
		}

		ncpu, err := flags.GetUint16("cpu")
		if err != nil {
			log.Fatal(err)
		}

		name, err := flags.GetString("compress")
		if err != nil {
			log.Fatal(err)
		}

		algorithm, err := compress.ParseAlgorithm(name)
		if err != nil {
			log.Fatal(err)
		}

		generator, err := flags.GetString("generator")
		if err != nil {
			log.Fatal(err)
		}

		batch, err := flags.GetInt("batch")
		if err != nil {
			log.Fatal(err)
		}

		entities, err := readExtract(in)
		if err != nil {
			log.Fatal(err)
		}

		if err := in.Close(); err != nil {
			log.Fatal(err)
		}

		opts := []osmxml.WriterOption{
			osmxml.WithMetadata(!noMetadata),
			osmxml.WithVisibleFlag(visible),
			osmxml.WithNCpus(ncpu),
			osmxml.WithCompression(algorithm),
		}
		if change {
			opts = append(opts, osmxml.WithChangeFormat())
		}

		w, err := osmxml.NewWriter(out, opts...)
		if err != nil {
			log.Fatal(err)
		}

		if err := w.WriteHeader(header(generator, entities)); err != nil {
			log.Fatal(err)
		}

		for len(entities) > 0 {
			n := min(batch, len(entities))

			if err := w.WriteBuffer(entities[:n]); err != nil {
				log.Fatal(err)
			}

			entities = entities[n:]
		}

		if err := w.WriteEnd(); err != nil {
			log.Fatal(err)
		}

		if err := w.Close(); err != nil {
			log.Fatal(err)
		}

		if err := out.Close(); err != nil {
			log.Fatal(err)
		}
	},
}

// header assembles the file header, with a bounding box covering the nodes
// of the extract when there are any.
func header(generator string, entities []model.Entity) model.Header {
	hdr := model.Header{Generator: generator}

	bbox := model.InitialBoundingBox()
	located := false

	var nc, wc, rc int64
	for _, entity := range entities {
		switch v := entity.(type) {
		case model.Node:
			nc++

			if v.Location != nil {
				bbox.ExpandWithLatLng(v.Location.Lat, v.Location.Lon)
				located = true
			}
		case model.Way:
			wc++
		case model.Relation:
			rc++
		}
	}

	if located {
		hdr.BoundingBoxes = append(hdr.BoundingBoxes, *bbox)
	}

	fmt.Fprintf(os.Stderr, "Nodes: %s, Ways: %s, Relations: %s\n",
		humanize.Comma(nc), humanize.Comma(wc), humanize.Comma(rc))

	return hdr
}

type member struct {
	Type string   `json:"type"`
	Ref  model.ID `json:"ref"`
	Role string   `json:"role"`
}

type element struct {
	Type      string            `json:"type"`
	ID        model.ID          `json:"id"`
	Lat       *float64          `json:"lat"`
	Lon       *float64          `json:"lon"`
	Timestamp string            `json:"timestamp"`
	Version   int32             `json:"version"`
	Changeset int64             `json:"changeset"`
	User      string            `json:"user"`
	UID       model.UID         `json:"uid"`
	Visible   *bool             `json:"visible"`
	Nodes     []model.ID        `json:"nodes"`
	Members   []member          `json:"members"`
	Tags      map[string]string `json:"tags"`
}

type extract struct {
	Elements []element `json:"elements"`
}

// readExtract decodes a whole JSON extract into model entities, preserving
// document order.
func readExtract(in io.Reader) ([]model.Entity, error) {
	var ex extract

	if err := json.NewDecoder(in).Decode(&ex); err != nil {
		return nil, fmt.Errorf("could not decode extract: %w", err)
	}

	entities := make([]model.Entity, 0, len(ex.Elements))

	for _, el := range ex.Elements {
		info, err := el.info()
		if err != nil {
			return nil, err
		}

		tags := tagList(el.Tags)

		switch el.Type {
		case "node":
			node := model.Node{ID: el.ID, Tags: tags, Info: info}
			if el.Lat != nil && el.Lon != nil {
				node.Location = &model.Location{
					Lat: model.Degrees(*el.Lat),
					Lon: model.Degrees(*el.Lon),
				}
			}

			entities = append(entities, node)
		case "way":
			entities = append(entities, model.Way{ID: el.ID, Tags: tags, Info: info, NodeIDs: el.Nodes})
		case "relation":
			members := make([]model.Member, 0, len(el.Members))

			for _, m := range el.Members {
				t, err := memberType(m.Type)
				if err != nil {
					return nil, err
				}

				members = append(members, model.Member{ID: m.Ref, Type: t, Role: m.Role})
			}

			entities = append(entities, model.Relation{ID: el.ID, Tags: tags, Info: info, Members: members})
		default:
			return nil, fmt.Errorf("unknown element type %q", el.Type)
		}
	}

	return entities, nil
}

func (el element) info() (*model.Info, error) {
	if el.Version == 0 && el.Timestamp == "" && el.UID == 0 && el.Changeset == 0 {
		return nil, nil
	}

	info := &model.Info{
		Version:   el.Version,
		UID:       el.UID,
		Changeset: el.Changeset,
		User:      el.User,
		Visible:   true,
	}

	if el.Visible != nil {
		info.Visible = *el.Visible
	}

	if el.Timestamp != "" {
		ts, err := time.Parse(time.RFC3339, el.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("could not parse timestamp of %s %d: %w", el.Type, el.ID, err)
		}

		info.Timestamp = ts
	}

	return info, nil
}

// tagList flattens a JSON tag map into a deterministically ordered list.
func tagList(tags map[string]string) model.TagList {
	if len(tags) == 0 {
		return nil
	}

	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	list := make(model.TagList, 0, len(keys))
	for _, k := range keys {
		list = append(list, model.Tag{Key: k, Value: tags[k]})
	}

	return list
}

func memberType(name string) (model.EntityType, error) {
	switch name {
	case "node":
		return model.NODE, nil
	case "way":
		return model.WAY, nil
	case "relation":
		return model.RELATION, nil
	default:
		return model.NODE, fmt.Errorf("unknown member type %q", name)
	}
}
