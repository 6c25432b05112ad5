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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/osmxml/model"
)

var snapshot = Options{AddMetadata: true}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()

	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)

	return ts
}

func testInfo(t *testing.T) *model.Info {
	t.Helper()

	return &model.Info{
		Version:   3,
		UID:       7,
		Timestamp: mustTime(t, "2020-01-02T03:04:05Z"),
		Changeset: 42,
		User:      "a&b",
		Visible:   true,
	}
}

func TestEncodeNode(t *testing.T) {
	node := model.Node{
		ID:       1,
		Info:     testInfo(t),
		Location: &model.Location{Lat: 10.5, Lon: -20.25},
		Tags:     model.TagList{{Key: "name", Value: "X"}},
	}

	out, err := EncodeBlock([]model.Entity{node}, snapshot)
	require.NoError(t, err)

	expected := `  <node id="1" version="3" timestamp="2020-01-02T03:04:05Z" uid="7" user="a&amp;b" changeset="42" lat="10.5000000" lon="-20.2500000">
    <tag k="name" v="X"/>
  </node>
`
	assert.Equal(t, expected, out)
}

func TestEncodeNodeBare(t *testing.T) {
	out, err := EncodeBlock([]model.Entity{model.Node{ID: 42}}, snapshot)
	require.NoError(t, err)

	assert.Equal(t, "  <node id=\"42\"/>\n", out)
}

func TestEncodeNodeAnonymous(t *testing.T) {
	info := testInfo(t)
	info.UID = 0
	info.User = "somebody"

	node := model.Node{ID: 1, Info: info}

	out, err := EncodeBlock([]model.Entity{node}, snapshot)
	require.NoError(t, err)

	expected := "  <node id=\"1\" version=\"3\" timestamp=\"2020-01-02T03:04:05Z\" changeset=\"42\"/>\n"
	assert.Equal(t, expected, out)
	assert.NotContains(t, out, "uid=")
	assert.NotContains(t, out, "user=")
}

func TestEncodeNodeWithoutMetadata(t *testing.T) {
	node := model.Node{
		ID:       1,
		Info:     testInfo(t),
		Location: &model.Location{Lat: 0, Lon: 0},
	}

	out, err := EncodeBlock([]model.Entity{node}, Options{})
	require.NoError(t, err)

	assert.Equal(t, "  <node id=\"1\" lat=\"0.0000000\" lon=\"0.0000000\"/>\n", out)
}

func TestEncodeNodeVisibleFlag(t *testing.T) {
	testCases := []struct {
		name     string
		visible  bool
		expected string
	}{
		{"visible", true, "  <node id=\"1\" version=\"3\" visible=\"true\"/>\n"},
		{"deleted", false, "  <node id=\"1\" version=\"3\" visible=\"false\"/>\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			node := model.Node{ID: 1, Info: &model.Info{Version: 3, Visible: tc.visible}}

			out, err := EncodeBlock([]model.Entity{node}, Options{AddMetadata: true, AddVisibleFlag: true})
			require.NoError(t, err)

			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestEncodeWay(t *testing.T) {
	way := model.Way{
		ID:      17,
		NodeIDs: []model.ID{1, 2, 3},
		Tags:    model.TagList{{Key: "highway", Value: "residential"}},
	}

	out, err := EncodeBlock([]model.Entity{way}, snapshot)
	require.NoError(t, err)

	expected := `  <way id="17">
    <nd ref="1"/>
    <nd ref="2"/>
    <nd ref="3"/>
    <tag k="highway" v="residential"/>
  </way>
`
	assert.Equal(t, expected, out)
}

func TestEncodeWayBare(t *testing.T) {
	out, err := EncodeBlock([]model.Entity{model.Way{ID: 17}}, snapshot)
	require.NoError(t, err)

	assert.Equal(t, "  <way id=\"17\"/>\n", out)
}

func TestEncodeRelation(t *testing.T) {
	relation := model.Relation{
		ID: 99,
		Members: []model.Member{
			{ID: 1, Type: model.NODE, Role: "stop"},
			{ID: 2, Type: model.WAY, Role: ""},
			{ID: 3, Type: model.RELATION, Role: `inner "ring"`},
		},
		Tags: model.TagList{{Key: "type", Value: "route"}},
	}

	out, err := EncodeBlock([]model.Entity{relation}, snapshot)
	require.NoError(t, err)

	expected := `  <relation id="99">
    <member type="node" ref="1" role="stop"/>
    <member type="way" ref="2" role=""/>
    <member type="relation" ref="3" role="inner &quot;ring&quot;"/>
    <tag k="type" v="route"/>
  </relation>
`
	assert.Equal(t, expected, out)
}

func TestEncodeRelationBare(t *testing.T) {
	out, err := EncodeBlock([]model.Entity{model.Relation{ID: 99}}, snapshot)
	require.NoError(t, err)

	assert.Equal(t, "  <relation id=\"99\"/>\n", out)
}

func TestEncodeChangeset(t *testing.T) {
	cs := model.Changeset{
		ID:        9000,
		CreatedAt: mustTime(t, "2021-03-04T05:06:07Z"),
		ClosedAt:  mustTime(t, "2021-03-04T06:06:07Z"),
		UID:       7,
		User:      "mapper",
		Bounds: &model.BoundingBox{
			Top:    51.69344,
			Left:   -0.511482,
			Bottom: 51.28554,
			Right:  0.335437,
		},
		NumChanges:  12,
		NumComments: 2,
		Tags:        model.TagList{{Key: "comment", Value: "survey"}},
		Discussion: []model.Comment{
			{UID: 8, User: "alice", Date: mustTime(t, "2021-03-05T00:00:00Z"), Text: "nice & tidy"},
			{UID: 9, User: "bob", Date: mustTime(t, "2021-03-06T00:00:00Z"), Text: "agreed"},
		},
	}

	out, err := EncodeBlock([]model.Entity{cs}, snapshot)
	require.NoError(t, err)

	expected := ` <changeset id="9000" created_at="2021-03-04T05:06:07Z" closed_at="2021-03-04T06:06:07Z" open="false" user="mapper" uid="7" min_lat="51.2855400" min_lon="-0.5114820" max_lat="51.6934400" max_lon="0.3354370" num_changes="12" comments_count="2">
  <tag k="comment" v="survey"/>
  <discussion>
   <comment uid="8" user="alice" date="2021-03-05T00:00:00Z">
    <text>nice &amp; tidy</text>
   </comment>
   <comment uid="9" user="bob" date="2021-03-06T00:00:00Z">
    <text>agreed</text>
   </comment>
  </discussion>
 </changeset>
`
	assert.Equal(t, expected, out)
}

func TestEncodeChangesetBare(t *testing.T) {
	cs := model.Changeset{ID: 9000}

	out, err := EncodeBlock([]model.Entity{cs}, snapshot)
	require.NoError(t, err)

	assert.Equal(t, " <changeset id=\"9000\" open=\"true\" num_changes=\"0\" comments_count=\"0\"/>\n", out)
}

func TestChangeOpsSegmentation(t *testing.T) {
	entities := []model.Entity{
		model.Node{ID: 1, Info: &model.Info{Version: 1, Visible: true}},
		model.Node{ID: 2, Info: &model.Info{Version: 2, Visible: true}},
		model.Node{ID: 3, Info: &model.Info{Version: 3, Visible: false}},
	}

	out, err := EncodeBlock(entities, Options{AddMetadata: true, UseChangeOps: true})
	require.NoError(t, err)

	expected := `  <create>
    <node id="1" version="1"/>
  </create>
  <modify>
    <node id="2" version="2"/>
  </modify>
  <delete>
    <node id="3" version="3"/>
  </delete>
`
	assert.Equal(t, expected, out)
}

func TestChangeOpsCoalescesRuns(t *testing.T) {
	entities := make([]model.Entity, 0, 5)
	for i := model.ID(1); i <= 5; i++ {
		entities = append(entities, model.Node{ID: i, Info: &model.Info{Version: 1, Visible: true}})
	}

	out, err := EncodeBlock(entities, Options{AddMetadata: true, UseChangeOps: true})
	require.NoError(t, err)

	expected := `  <create>
    <node id="1" version="1"/>
    <node id="2" version="1"/>
    <node id="3" version="1"/>
    <node id="4" version="1"/>
    <node id="5" version="1"/>
  </create>
`
	assert.Equal(t, expected, out)
}

func TestChangeOpsMixedKinds(t *testing.T) {
	entities := []model.Entity{
		model.Node{ID: 1, Info: &model.Info{Version: 1, Visible: true}},
		model.Way{ID: 2, Info: &model.Info{Version: 1, Visible: true}},
		model.Relation{ID: 3, Info: &model.Info{Version: 4, Visible: false}},
	}

	out, err := EncodeBlock(entities, Options{AddMetadata: true, UseChangeOps: true})
	require.NoError(t, err)

	expected := `  <create>
    <node id="1" version="1"/>
    <way id="2" version="1"/>
  </create>
  <delete>
    <relation id="3" version="4"/>
  </delete>
`
	assert.Equal(t, expected, out)
}

func TestChangeOpsUnclassifiable(t *testing.T) {
	entities := []model.Entity{model.Node{ID: 1}}

	out, err := EncodeBlock(entities, Options{AddMetadata: true, UseChangeOps: true})
	assert.ErrorIs(t, err, ErrCannotClassify)
	assert.Empty(t, out)
}

func TestChangeOpsSkipsChangesets(t *testing.T) {
	entities := []model.Entity{
		model.Node{ID: 1, Info: &model.Info{Version: 1, Visible: true}},
		model.Changeset{ID: 9000},
		model.Node{ID: 2, Info: &model.Info{Version: 1, Visible: true}},
	}

	out, err := EncodeBlock(entities, Options{AddMetadata: true, UseChangeOps: true})
	require.NoError(t, err)

	expected := `  <create>
    <node id="1" version="1"/>
    <node id="2" version="1"/>
  </create>
`
	assert.Equal(t, expected, out)
}

func TestEncodePointerEntities(t *testing.T) {
	node := &model.Node{ID: 1}

	out, err := EncodeBlock([]model.Entity{node}, snapshot)
	require.NoError(t, err)

	assert.Equal(t, "  <node id=\"1\"/>\n", out)
}

func TestEncodeUnknownEntity(t *testing.T) {
	out, err := EncodeBlock([]model.Entity{nil}, snapshot)
	assert.ErrorIs(t, err, ErrUnknownEntity)
	assert.Empty(t, out)
}

func TestEncodeEmptyBlock(t *testing.T) {
	out, err := EncodeBlock(nil, Options{AddMetadata: true, UseChangeOps: true})
	require.NoError(t, err)

	assert.Empty(t, out)
}
