package snailfish

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/snailfish/flat"
)

// Number2Dot outputs the internal structure of a number in Graphviz DOT format
// (for debugging purposes).
//
// Every node is identified by its storage index. Pairs due to explode and
// regular numbers due to split are highlighted.
func Number2Dot(n *Number, w io.Writer) error {
	t := n.Tree()
	var nodelist, edgelist strings.Builder
	exploding, hasExplode := n.ExplodeTrigger()
	splitting, hasSplit := n.SplitTrigger()
	var walk func(i int) bool
	walk = func(i int) bool {
		node := t.At(i)
		if node.Literal {
			hl := hasSplit && i == splitting
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%d\" %s];\n", i, node.Value, nodeDotStyles(flat.Depth(i), true, hl))
			return true
		}
		if !t.HasLeft(i) {
			return false
		}
		rendered := false
		for _, child := range [2]int{flat.LeftIndex(i), flat.RightIndex(i)} {
			if child < t.Len() && walk(child) {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", i, child)
				rendered = true
			}
		}
		if rendered {
			hl := hasExplode && i == exploding
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"#%d\" %s];\n", i, i, nodeDotStyles(flat.Depth(i), false, hl))
		}
		return rendered
	}
	walk(0)
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		T().Errorf("snailfish DOT: %s", err.Error())
		return err
	}
	return nil
}

func nodeDotStyles(depth int, isleaf bool, highlight bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	depth = min(depth, len(hexcolors)-1)
	if highlight {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexhlcolors[depth])
	} else {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[depth])
	}
	return s
}

var hexhlcolors = [...]string{"#FFEEDD", "#FFDDCC", "#FFCCAA", "#FFBB88", "#FFAA66",
	"#FF9944", "#FF8822", "#FF7700", "#ff6600"}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
