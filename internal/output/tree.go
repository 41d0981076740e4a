package output

import (
	"path"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where file descriptions start.
	descriptionColumn = 36
)

// TreeNode represents a node in the file tree.
type TreeNode struct {
	Name        string
	Description string
	IsDir       bool
	Children    []*TreeNode
}

// child returns the named child, creating it when missing.
func (n *TreeNode) child(name string, isDir bool) *TreeNode {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	c := &TreeNode{Name: name, IsDir: isDir}
	n.Children = append(n.Children, c)
	return c
}

// BuildTree builds a tree from slash-separated paths relative to root.
// Paths ending in "/" are directories; values are descriptions.
func BuildTree(root string, files map[string]string) *TreeNode {
	rootNode := &TreeNode{Name: root, IsDir: true}

	for p, desc := range files {
		isDir := strings.HasSuffix(p, "/")
		parts := strings.Split(strings.Trim(path.Clean(p), "/"), "/")
		current := rootNode
		for i, part := range parts {
			last := i == len(parts)-1
			current = current.child(part, !last || isDir)
			if last {
				current.Description = desc
			}
		}
	}

	sortTree(rootNode)
	return rootNode
}

// RenderFileTree renders a project tree with descriptions aligned on a
// fixed column. Directories sort before files.
func RenderFileTree(root string, files map[string]string, styles *Styles) string {
	if len(files) == 0 {
		return styles.Bold.Render(root+"/") + "\n"
	}

	var sb strings.Builder
	tree := BuildTree(root, files)
	sb.WriteString(styles.Bold.Render(tree.Name + "/"))
	sb.WriteString("\n")
	for i, c := range tree.Children {
		renderNode(&sb, c, "", i == len(tree.Children)-1, styles)
	}
	return sb.String()
}

// sortTree recursively sorts tree nodes (directories first, then alphabetically).
func sortTree(node *TreeNode) {
	sort.Slice(node.Children, func(i, j int) bool {
		if node.Children[i].IsDir != node.Children[j].IsDir {
			return node.Children[i].IsDir
		}
		return node.Children[i].Name < node.Children[j].Name
	})
	for _, c := range node.Children {
		sortTree(c)
	}
}

func renderNode(sb *strings.Builder, node *TreeNode, prefix string, isLast bool, styles *Styles) {
	connector, childPrefix := treeEdge, prefix+treeVert
	if isLast {
		connector, childPrefix = treeLast, prefix+treeSpace
	}

	name := node.Name
	if node.IsDir {
		name += "/"
	}
	line := prefix + connector + name

	if node.Description != "" {
		padding := descriptionColumn - len([]rune(line))
		if padding < 2 {
			padding = 2
		}
		line += strings.Repeat(" ", padding) + styles.Muted.Render(node.Description)
	}

	sb.WriteString(line)
	sb.WriteString("\n")

	for i, c := range node.Children {
		renderNode(sb, c, childPrefix, i == len(node.Children)-1, styles)
	}
}
