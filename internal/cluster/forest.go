package cluster

// FirstLabel is the first label handed out to a cluster.
const FirstLabel = 2

// node is one label of the union-find forest.
type node struct {
	parent int32
	mass   int
	alive  bool
}

// forest is the per-call union-find arena. It is never shared between
// lattices.
type forest struct {
	nodes []node
}

func newForest(capacity int) *forest {
	f := &forest{nodes: make([]node, FirstLabel, FirstLabel+capacity)}
	for i := range f.nodes {
		f.nodes[i].parent = int32(i)
	}
	return f
}

// allocate creates a singleton cluster and returns its label.
func (f *forest) allocate() int32 {
	label := int32(len(f.nodes))
	f.nodes = append(f.nodes, node{parent: label, mass: 1, alive: true})
	return label
}

// find follows parent links to the root of label. Reserved labels are their
// own roots, so find(0) == 0.
func (f *forest) find(label int32) int32 {
	for f.nodes[label].parent != label {
		label = f.nodes[label].parent
	}
	return label
}

// grow adds n sites to the cluster rooted at root.
func (f *forest) grow(root int32, n int) {
	f.nodes[root].mass += n
}

// union merges the clusters rooted at a and b through one joining site and
// returns the surviving root. The smaller label always survives, which keeps
// the links acyclic without ranks.
func (f *forest) union(a, b int32) int32 {
	smaller, larger := a, b
	if larger < smaller {
		smaller, larger = larger, smaller
	}
	f.nodes[smaller].mass += f.nodes[larger].mass + 1
	f.nodes[larger].parent = f.nodes[smaller].parent
	f.nodes[larger].alive = false
	return smaller
}
