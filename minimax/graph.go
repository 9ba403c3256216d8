package minimax

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/awalterschulze/gographviz"
	"github.com/gorgonia/reversi/game"
)

// treeNode is an explored position, kept for drawing.
type treeNode struct {
	ID     int
	Parent int
	Move   game.Move
	Player game.Player // player to move
	Depth  int
	Value  float32
	Alpha  float32
	Beta   float32
}

func (n *treeNode) Bounds() string {
	return fmt.Sprintf("[%s, %s]", formatValue(n.Alpha), formatValue(n.Beta))
}

func (n *treeNode) Score() string { return formatValue(n.Value) }

// recorder records the explored tree. A nil recorder records nothing.
type recorder struct {
	nodes []treeNode
	stack []int
}

func newRecorder() *recorder { return &recorder{} }

func (r *recorder) enter(m game.Move, p game.Player, depth int) int {
	if r == nil {
		return -1
	}
	parent := -1
	if len(r.stack) > 0 {
		parent = r.stack[len(r.stack)-1]
	}
	id := len(r.nodes)
	r.nodes = append(r.nodes, treeNode{ID: id, Parent: parent, Move: m, Player: p, Depth: depth})
	r.stack = append(r.stack, id)
	return id
}

func (r *recorder) leave(id int, value, alpha, beta float32) {
	if r == nil || id < 0 {
		return
	}
	n := &r.nodes[id]
	n.Value, n.Alpha, n.Beta = value, alpha, beta
	r.stack = r.stack[:len(r.stack)-1]
}

// ToDot draws the tree explored by the last search in the DOT language.
// Nothing is drawn unless RecordTree is set.
func (s *Searcher) ToDot() string {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		panic(err)
	}
	g.SetDir(true)
	if s.tree == nil {
		return g.String()
	}

	var buf bytes.Buffer
	for i := range s.tree.nodes {
		n := &s.tree.nodes[i]
		if err := tmpl.Execute(&buf, n); err != nil {
			panic(err)
		}
		attrs := map[string]string{
			"fontname": "Monaco",
			"shape":    "none",
			"label":    buf.String(),
		}
		g.AddNode("G", fmt.Sprintf("%d", n.ID), attrs)
		buf.Reset()
		if n.Parent >= 0 {
			g.AddEdge(fmt.Sprintf("%d", n.Parent), fmt.Sprintf("%d", n.ID), true, nil)
		}
	}
	return g.String()
}

const tmplRaw = `<
<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0">
<TR><TD>Move</TD><TD>{{.Move}}</TD></TR>
<TR><TD>To Move</TD><TD>{{printf "%v" .Player}}</TD></TR>
<TR><TD>Depth</TD><TD>{{.Depth}}</TD></TR>
<TR><TD>Value</TD><TD>{{.Score}}</TD></TR>
<TR><TD>Bounds</TD><TD>{{.Bounds}}</TD></TR>
</TABLE>
>
`

var tmpl *template.Template

func init() {
	tmpl = template.Must(template.New("name").Parse(tmplRaw))
}
