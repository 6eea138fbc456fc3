package skills

// Skill is a flat taxonomy node as stored; roots have no parent.
type Skill struct {
	ID       string `json:"id"        bson:"_id,omitempty"`
	Name     string `json:"name"      bson:"name"`
	ParentID string `json:"parent_id,omitempty" bson:"parent_id,omitempty"`
}

// Tree is a skill with its transitive children resolved.
type Tree struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
	Children []Tree `json:"children,omitempty"`
}

const (
	FieldName     = "name"
	FieldParentID = "parent_id"
)

// buildTrees assembles subtrees for the given roots from a flat node list.
// Children keep the relative order of the input slice.
func buildTrees(all []Skill, roots []Skill) []Tree {
	children := make(map[string][]Skill, len(all))
	for _, s := range all {
		if s.ParentID != "" {
			children[s.ParentID] = append(children[s.ParentID], s)
		}
	}

	var build func(node Skill) Tree
	build = func(node Skill) Tree {
		tree := Tree{ID: node.ID, Name: node.Name, ParentID: node.ParentID}
		for _, child := range children[node.ID] {
			tree.Children = append(tree.Children, build(child))
		}
		return tree
	}

	trees := make([]Tree, 0, len(roots))
	for _, root := range roots {
		trees = append(trees, build(root))
	}

	return trees
}
