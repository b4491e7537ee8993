package pyast

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// collectStores walks the whole tree for identifiers in store context:
// assignment targets, augmented-assignment targets, for-loop targets,
// with-as bindings, and walrus targets. These feed the variable naming
// checks; load-context identifiers never do.
func collectStores(node *sitter.Node, src []byte, out *[]StoreName) {
	switch node.Type() {
	case "assignment", "augmented_assignment":
		if left := node.ChildByFieldName("left"); left != nil {
			collectTargets(left, src, out)
		}
	case "for_statement":
		if left := node.ChildByFieldName("left"); left != nil {
			collectTargets(left, src, out)
		}
	case "as_pattern":
		if alias := node.ChildByFieldName("alias"); alias != nil {
			collectTargets(alias, src, out)
		}
	case "named_expression":
		if name := node.ChildByFieldName("name"); name != nil {
			collectTargets(name, src, out)
		}
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		collectStores(node.NamedChild(i), src, out)
	}
}

// collectTargets descends into a target expression, recording bare
// identifiers. Attribute and subscript targets are skipped: the stored name
// there is not a new binding.
func collectTargets(node *sitter.Node, src []byte, out *[]StoreName) {
	switch node.Type() {
	case "identifier":
		*out = append(*out, StoreName{
			Name: node.Content(src),
			Line: int(node.StartPoint().Row) + 1,
		})
	case "pattern_list", "tuple_pattern", "list_pattern", "tuple", "list", "as_pattern_target":
		for i := 0; i < int(node.NamedChildCount()); i++ {
			collectTargets(node.NamedChild(i), src, out)
		}
	}
}
