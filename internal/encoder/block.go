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
	"fmt"

	"m4o.io/osmxml/model"
)

const initialBlockSize = 16 * 1024

// blockEncoder renders one buffer of entities.  The operation-group state
// lives for a single block; a fresh block always starts outside any group.
type blockEncoder struct {
	opts   Options
	lastOp operation
	out    []byte
}

// EncodeBlock serializes entities, in order, into one XML fragment.  The
// fragment is produced whole or not at all.
func EncodeBlock(entities []model.Entity, opts Options) (string, error) {
	e := &blockEncoder{
		opts: opts,
		out:  make([]byte, 0, initialBlockSize),
	}

	for _, entity := range entities {
		var err error

		switch v := entity.(type) {
		case model.Node:
			err = e.node(v)
		case *model.Node:
			err = e.node(*v)
		case model.Way:
			err = e.way(v)
		case *model.Way:
			err = e.way(*v)
		case model.Relation:
			err = e.relation(v)
		case *model.Relation:
			err = e.relation(*v)
		case model.Changeset:
			e.changeset(v)
		case *model.Changeset:
			e.changeset(*v)
		default:
			err = fmt.Errorf("%w: %T", ErrUnknownEntity, entity)
		}

		if err != nil {
			return "", err
		}
	}

	if opts.UseChangeOps {
		e.openCloseOpTag(opNone)
	}

	return string(e.out), nil
}

func (e *blockEncoder) spaces(n int) {
	for ; n != 0; n-- {
		e.out = append(e.out, ' ')
	}
}

func (e *blockEncoder) prefix() {
	e.spaces(e.opts.indent())
}

// meta writes the id attribute and, if enabled, the object metadata.
// Zero-valued fields are left out, as is the user for anonymous edits.
func (e *blockEncoder) meta(id model.ID, info *model.Info) {
	e.out = append(e.out, ` id="`...)
	e.out = AppendInt(e.out, id)
	e.out = append(e.out, '"')

	if !e.opts.AddMetadata || info == nil {
		return
	}

	if info.Version != 0 {
		e.out = append(e.out, ` version="`...)
		e.out = AppendInt(e.out, info.Version)
		e.out = append(e.out, '"')
	}

	if !info.Timestamp.IsZero() {
		e.out = append(e.out, ` timestamp="`...)
		e.out = AppendTimestamp(e.out, info.Timestamp)
		e.out = append(e.out, '"')
	}

	if !info.Anonymous() {
		e.out = append(e.out, ` uid="`...)
		e.out = AppendInt(e.out, info.UID)
		e.out = append(e.out, `" user="`...)
		e.out = AppendXMLEncoded(e.out, info.User)
		e.out = append(e.out, '"')
	}

	if info.Changeset != 0 {
		e.out = append(e.out, ` changeset="`...)
		e.out = AppendInt(e.out, info.Changeset)
		e.out = append(e.out, '"')
	}

	if e.opts.AddVisibleFlag {
		if info.Visible {
			e.out = append(e.out, ` visible="true"`...)
		} else {
			e.out = append(e.out, ` visible="false"`...)
		}
	}
}

func (e *blockEncoder) tags(tags model.TagList, spaces int) {
	for _, tag := range tags {
		e.spaces(spaces)
		e.out = append(e.out, `  <tag k="`...)
		e.out = AppendXMLEncoded(e.out, tag.Key)
		e.out = append(e.out, `" v="`...)
		e.out = AppendXMLEncoded(e.out, tag.Value)
		e.out = append(e.out, "\"/>\n"...)
	}
}

func (e *blockEncoder) node(node model.Node) error {
	if e.opts.UseChangeOps {
		op, err := classify(node.Info)
		if err != nil {
			return fmt.Errorf("node %d: %w", node.ID, err)
		}

		e.openCloseOpTag(op)
	}

	e.prefix()
	e.out = append(e.out, "<node"...)
	e.meta(node.ID, node.Info)

	if loc := node.Location; loc != nil {
		e.out = append(e.out, ` lat="`...)
		e.out = AppendCoordinate(e.out, float64(loc.Lat))
		e.out = append(e.out, `" lon="`...)
		e.out = AppendCoordinate(e.out, float64(loc.Lon))
		e.out = append(e.out, '"')
	}

	if len(node.Tags) == 0 {
		e.out = append(e.out, "/>\n"...)

		return nil
	}

	e.out = append(e.out, ">\n"...)
	e.tags(node.Tags, e.opts.indent())
	e.prefix()
	e.out = append(e.out, "</node>\n"...)

	return nil
}

func (e *blockEncoder) way(way model.Way) error {
	if e.opts.UseChangeOps {
		op, err := classify(way.Info)
		if err != nil {
			return fmt.Errorf("way %d: %w", way.ID, err)
		}

		e.openCloseOpTag(op)
	}

	e.prefix()
	e.out = append(e.out, "<way"...)
	e.meta(way.ID, way.Info)

	if len(way.Tags) == 0 && len(way.NodeIDs) == 0 {
		e.out = append(e.out, "/>\n"...)

		return nil
	}

	e.out = append(e.out, ">\n"...)

	for _, ref := range way.NodeIDs {
		e.prefix()
		e.out = append(e.out, `  <nd ref="`...)
		e.out = AppendInt(e.out, ref)
		e.out = append(e.out, "\"/>\n"...)
	}

	e.tags(way.Tags, e.opts.indent())
	e.prefix()
	e.out = append(e.out, "</way>\n"...)

	return nil
}

func (e *blockEncoder) relation(relation model.Relation) error {
	if e.opts.UseChangeOps {
		op, err := classify(relation.Info)
		if err != nil {
			return fmt.Errorf("relation %d: %w", relation.ID, err)
		}

		e.openCloseOpTag(op)
	}

	e.prefix()
	e.out = append(e.out, "<relation"...)
	e.meta(relation.ID, relation.Info)

	if len(relation.Tags) == 0 && len(relation.Members) == 0 {
		e.out = append(e.out, "/>\n"...)

		return nil
	}

	e.out = append(e.out, ">\n"...)

	for _, member := range relation.Members {
		e.prefix()
		e.out = append(e.out, `  <member type="`...)
		e.out = append(e.out, member.Type.String()...)
		e.out = append(e.out, `" ref="`...)
		e.out = AppendInt(e.out, member.ID)
		e.out = append(e.out, `" role="`...)
		e.out = AppendXMLEncoded(e.out, member.Role)
		e.out = append(e.out, "\"/>\n"...)
	}

	e.tags(relation.Tags, e.opts.indent())
	e.prefix()
	e.out = append(e.out, "</relation>\n"...)

	return nil
}

// changeset writes a changeset element.  Changesets are metadata about
// edits; change files carry no changesets, so in change format they are
// dropped rather than forced into an operation group.
func (e *blockEncoder) changeset(cs model.Changeset) {
	if e.opts.UseChangeOps {
		return
	}

	e.out = append(e.out, ` <changeset id="`...)
	e.out = AppendInt(e.out, cs.ID)
	e.out = append(e.out, '"')

	if !cs.CreatedAt.IsZero() {
		e.out = append(e.out, ` created_at="`...)
		e.out = AppendTimestamp(e.out, cs.CreatedAt)
		e.out = append(e.out, '"')
	}

	if !cs.Open() {
		e.out = append(e.out, ` closed_at="`...)
		e.out = AppendTimestamp(e.out, cs.ClosedAt)
		e.out = append(e.out, `" open="false"`...)
	} else {
		e.out = append(e.out, ` open="true"`...)
	}

	if !cs.Anonymous() {
		e.out = append(e.out, ` user="`...)
		e.out = AppendXMLEncoded(e.out, cs.User)
		e.out = append(e.out, `" uid="`...)
		e.out = AppendInt(e.out, cs.UID)
		e.out = append(e.out, '"')
	}

	if b := cs.Bounds; b != nil {
		e.out = append(e.out, ` min_lat="`...)
		e.out = AppendCoordinate(e.out, float64(b.Bottom))
		e.out = append(e.out, `" min_lon="`...)
		e.out = AppendCoordinate(e.out, float64(b.Left))
		e.out = append(e.out, `" max_lat="`...)
		e.out = AppendCoordinate(e.out, float64(b.Top))
		e.out = append(e.out, `" max_lon="`...)
		e.out = AppendCoordinate(e.out, float64(b.Right))
		e.out = append(e.out, '"')
	}

	e.out = append(e.out, ` num_changes="`...)
	e.out = AppendInt(e.out, cs.NumChanges)
	e.out = append(e.out, `" comments_count="`...)
	e.out = AppendInt(e.out, cs.NumComments)
	e.out = append(e.out, '"')

	if len(cs.Tags) == 0 && cs.NumComments == 0 {
		e.out = append(e.out, "/>\n"...)

		return
	}

	e.out = append(e.out, ">\n"...)
	e.tags(cs.Tags, 0)

	if cs.NumComments > 0 {
		e.out = append(e.out, "  <discussion>\n"...)
		e.discussion(cs.Discussion)
	}

	e.out = append(e.out, " </changeset>\n"...)
}

func (e *blockEncoder) discussion(comments []model.Comment) {
	for _, comment := range comments {
		e.out = append(e.out, `   <comment uid="`...)
		e.out = AppendInt(e.out, comment.UID)
		e.out = append(e.out, `" user="`...)
		e.out = AppendXMLEncoded(e.out, comment.User)
		e.out = append(e.out, `" date="`...)
		e.out = AppendTimestamp(e.out, comment.Date)
		e.out = append(e.out, "\">\n    <text>"...)
		e.out = AppendXMLEncoded(e.out, comment.Text)
		e.out = append(e.out, "</text>\n   </comment>\n"...)
	}

	e.out = append(e.out, "  </discussion>\n"...)
}
