package searcher

import "penguins/game"

// findRoot looks for state in the retained tree, one full round deep: the old
// root, its children (after our move) and its grandchildren (after the reply).
// The first match keeps its statistics and subtree; everything else becomes
// unreachable once the caller drops the old root.
func findRoot(tree *Node, state game.State) *Node {
	if tree == nil {
		return nil
	}
	if tree.state.Equal(state) {
		return tree
	}
	for _, child := range tree.children {
		if child.state.Equal(state) {
			return child
		}
	}
	for _, child := range tree.children {
		for _, grandChild := range child.children {
			if grandChild.state.Equal(state) {
				return grandChild
			}
		}
	}
	return nil
}
