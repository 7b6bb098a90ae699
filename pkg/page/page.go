// Package page assembles the static display tree of the pricing page.
package page

import (
	"github.com/raykavin/uberdash/pkg/component"
	"github.com/raykavin/uberdash/pkg/dataset"
)

const (
	Heading    = "Hey, this is my first dash app!"
	Paragraph  = "Still under construction... :)"
	GraphID    = "uber_pricing_graph"
	GraphTitle = "Uber Pricing in Brooklyn and Manhattan"
)

// BuildLayout binds records into the page tree: a heading, a paragraph and
// the pricing chart, in that order.
func BuildLayout(records []dataset.Record) component.Node {
	return component.Div(
		component.H1(Heading),
		component.P(Paragraph),
		component.Graph(GraphID, component.Figure{
			Data: records,
			Layout: component.FigureLayout{
				Title: GraphTitle,
			},
		}),
	)
}
