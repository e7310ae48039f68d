// SPDX-License-Identifier: MIT

package graphfile_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/hyperlath/dijkstra"
	"github.com/katalvlaran/hyperlath/graphfile"
)

func ExampleLoad() {
	src := `
nodes: [{label: depot}, {label: mill}, {label: port}]
edges:
  - {members: [depot, mill], weight: 2}
  - {members: [mill, port], weight: 3}
  - {members: [depot, mill, port], weight: 7}
`
	l, err := graphfile.Load(strings.NewReader(src), graphfile.FormatYAML)
	if err != nil {
		fmt.Println(err)

		return
	}
	depot, _ := l.Vertex("depot")
	port, _ := l.Vertex("port")
	path, err := dijkstra.ShortestPath(l.Graph, depot, port)
	if err != nil {
		fmt.Println(err)

		return
	}
	for _, v := range path.Vertices {
		fmt.Print(l.Label(v), " ")
	}
	fmt.Println(path.Cost)
	// Output: depot mill port 5
}

func ExampleEncode() {
	l, _ := graphfile.Load(strings.NewReader(`{"nodes":[{"label":"a"},{"label":"b"}],"edges":[{"members":["a","b"]}]}`), graphfile.FormatJSON)
	doc, _ := graphfile.Export(l.Graph, l.Labels)
	_ = graphfile.Encode(os.Stdout, doc, graphfile.FormatYAML)
	// Output:
	// nodes:
	//   - label: a
	//   - label: b
	// edges:
	//   - members: [a, b]
}
