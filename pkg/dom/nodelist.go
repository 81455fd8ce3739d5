package dom

// NodeList is an ordered snapshot of mapped nodes, as returned by child
// and attribute enumeration.
type NodeList []Node

// Len reports the number of nodes in the list.
func (l NodeList) Len() int {
	return len(l)
}

// At returns the node at index i, or nil when i is out of range.
func (l NodeList) At(i int) Node {
	if i < 0 || i >= len(l) {
		return nil
	}
	return l[i]
}

// First returns the first node, or ErrEmptyList.
func (l NodeList) First() (Node, error) {
	if len(l) == 0 {
		return nil, newError(CodeEmptyList, "nodelist.first", "node list is empty")
	}
	return l[0], nil
}

// Last returns the last node, or ErrEmptyList.
func (l NodeList) Last() (Node, error) {
	if len(l) == 0 {
		return nil, newError(CodeEmptyList, "nodelist.last", "node list is empty")
	}
	return l[len(l)-1], nil
}
