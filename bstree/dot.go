package bstree

import (
	"fmt"
	"io"
)

type nodeids[T any] struct {
	idTable map[*Node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*Node[T]]int),
		max:     1,
	}
}

func (ids *nodeids[T]) alloc(node *Node[T]) int {
	if id := ids.idTable[node]; id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Payloads are labelled with their %v format.
// Missing children of inner nodes are drawn as small empty circles, making
// left and right children distinguishable.
func (t *Tree[T]) Dot(w io.Writer) error {
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	nilid := 0
	edge := func(from int, child *Node[T]) {
		if child == nil {
			nilid--
			nodelist += fmt.Sprintf("\"n%d\" %s;\n", -nilid, emptyNode())
			edgelist += fmt.Sprintf("\"%d\" -> \"n%d\";\n", from, -nilid)
			return
		}
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", from, ids.alloc(child))
	}
	err := t.PreOrder(false, func(node *Node[T], payload T) error {
		ID := ids.alloc(node)
		label := fmt.Sprintf("%v", payload)
		nodelist += fmt.Sprintf("\"%d\" [label=%q %s];\n", ID, label, nodeDotStyles(node))
		if !node.IsLeaf() {
			edge(ID, node.left)
			edge(ID, node.right)
		}
		return nil
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"+
		nodelist+edgelist+"}\n")
	if err != nil {
		tracer().Errorf("bstree DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles[T any](node *Node[T]) string {
	s := ",style=filled"
	if node.IsLeaf() {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
