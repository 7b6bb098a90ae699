package page

import (
	"encoding/json"
	"testing"

	"github.com/raykavin/uberdash/pkg/component"
	"github.com/raykavin/uberdash/pkg/dataset"
	"github.com/stretchr/testify/require"
)

func TestBuildLayout(t *testing.T) {
	records := dataset.Records()
	tree := BuildLayout(records)

	require.Equal(t, component.TypeDiv, tree.Type)
	children := tree.ChildNodes()
	require.Len(t, children, 3)

	require.Equal(t, component.TypeH1, children[0].Type)
	require.Equal(t, "Hey, this is my first dash app!", children[0].Text())

	require.Equal(t, component.TypeP, children[1].Type)
	require.Equal(t, "Still under construction... :)", children[1].Text())

	graph := children[2]
	require.Equal(t, component.TypeGraph, graph.Type)
	require.Equal(t, "uber_pricing_graph", graph.Props.ID)
	require.NotNil(t, graph.Props.Figure)
	require.Equal(t, records, graph.Props.Figure.Data)
	require.Equal(t, "Uber Pricing in Brooklyn and Manhattan", graph.Props.Figure.Layout.Title)
}

func TestBuildLayout_Serialized(t *testing.T) {
	raw, err := json.Marshal(BuildLayout(dataset.Records()))
	require.NoError(t, err)

	var tree struct {
		Props struct {
			Children []struct {
				Type  string `json:"type"`
				Props struct {
					ID       string `json:"id"`
					Children string `json:"children"`
					Figure   struct {
						Data   json.RawMessage `json:"data"`
						Layout struct {
							Title string `json:"title"`
						} `json:"layout"`
					} `json:"figure"`
				} `json:"props"`
			} `json:"children"`
		} `json:"props"`
	}
	require.NoError(t, json.Unmarshal(raw, &tree))

	children := tree.Props.Children
	require.Len(t, children, 3)
	require.Equal(t, "H1", children[0].Type)
	require.Equal(t, "P", children[1].Type)
	require.Equal(t, GraphTitle, children[2].Props.Figure.Layout.Title)

	expected, err := json.Marshal(dataset.Records())
	require.NoError(t, err)
	require.JSONEq(t, string(expected), string(children[2].Props.Figure.Data))
}

func TestBuildLayout_Deterministic(t *testing.T) {
	first, err := json.Marshal(BuildLayout(dataset.Records()))
	require.NoError(t, err)
	second, err := json.Marshal(BuildLayout(dataset.Records()))
	require.NoError(t, err)
	require.Equal(t, first, second)
}
