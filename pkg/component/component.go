// Package component models the display tree served to the browser. Nodes
// serialize to the layout format understood by Dash renderers:
//
//	{"type": "H1", "namespace": "dash_html_components", "props": {"children": "..."}}
package component

const (
	HTMLNamespace = "dash_html_components"
	CoreNamespace = "dash_core_components"
)

// Node types
const (
	TypeDiv   = "Div"
	TypeH1    = "H1"
	TypeP     = "P"
	TypeGraph = "Graph"
)

// Node is one element of the display tree
type Node struct {
	Type      string `json:"type"`
	Namespace string `json:"namespace"`
	Props     Props  `json:"props"`
}

// Props holds the properties of a node. Children is either a string or a
// []Node; Figure is only set on graphs.
type Props struct {
	ID       string  `json:"id,omitempty"`
	Children any     `json:"children,omitempty"`
	Figure   *Figure `json:"figure,omitempty"`
}

// Figure is the chart configuration of a graph node
type Figure struct {
	Data   any          `json:"data"`
	Layout FigureLayout `json:"layout"`
}

// FigureLayout carries the presentation options of a figure
type FigureLayout struct {
	Title string `json:"title"`
	XAxis *Axis  `json:"xaxis,omitempty"`
	YAxis *Axis  `json:"yaxis,omitempty"`
}

// Axis configures a single chart axis
type Axis struct {
	Title string `json:"title"`
}

// Div groups children in order.
func Div(children ...Node) Node {
	return Node{
		Type:      TypeDiv,
		Namespace: HTMLNamespace,
		Props:     Props{Children: children},
	}
}

func H1(text string) Node {
	return textNode(TypeH1, text)
}

func P(text string) Node {
	return textNode(TypeP, text)
}

// Graph wraps a figure in a chart container identified by id.
func Graph(id string, figure Figure) Node {
	return Node{
		Type:      TypeGraph,
		Namespace: CoreNamespace,
		Props:     Props{ID: id, Figure: &figure},
	}
}

func textNode(typ, text string) Node {
	return Node{
		Type:      typ,
		Namespace: HTMLNamespace,
		Props:     Props{Children: text},
	}
}

// ChildNodes returns the nested nodes, or nil for leaf and text nodes.
func (n Node) ChildNodes() []Node {
	children, _ := n.Props.Children.([]Node)
	return children
}

// Text returns the text content of a text node.
func (n Node) Text() string {
	text, _ := n.Props.Children.(string)
	return text
}

// Find walks the tree depth first and returns the first node with the given id.
func (n Node) Find(id string) (Node, bool) {
	if id != "" && n.Props.ID == id {
		return n, true
	}
	for _, child := range n.ChildNodes() {
		if found, ok := child.Find(id); ok {
			return found, true
		}
	}
	return Node{}, false
}
