// Package models imports node transforms from glTF files.
//
// Only the transform hierarchy is read: each node yields its local matrix
// and the world matrix obtained by multiplying along the parent chain.
// Meshes, materials and animations are ignored.
package models

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/rtcore/pkg/math3d"
	"github.com/taigrr/rtcore/pkg/transform"
)

// ErrInvalidHierarchy is returned when the node graph is not a forest.
var ErrInvalidHierarchy = errors.New("models: invalid node hierarchy")

// Node is one glTF node with its resolved transforms.
type Node struct {
	Index  int
	Name   string
	Parent int // -1 for roots

	Local math3d.Matrix4
	World math3d.Matrix4
}

// LoadNodes opens a .gltf or .glb file and returns its nodes in document
// order.
func LoadNodes(path string) ([]Node, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	nodes, err := NodesFromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return nodes, nil
}

// NodesFromDocument resolves the local and world transform of every node
// in doc.
func NodesFromDocument(doc *gltf.Document) ([]Node, error) {
	parents, err := parentIndices(doc.Nodes)
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, len(doc.Nodes))
	for i, n := range doc.Nodes {
		local, err := localMatrix(n)
		if err != nil {
			return nil, fmt.Errorf("node %d (%q): %w", i, n.Name, err)
		}
		nodes[i] = Node{
			Index:  i,
			Name:   n.Name,
			Parent: parents[i],
			Local:  local,
		}
	}

	resolved := make([]bool, len(nodes))
	var resolve func(i int) math3d.Matrix4
	resolve = func(i int) math3d.Matrix4 {
		if resolved[i] {
			return nodes[i].World
		}
		world := nodes[i].Local
		if p := nodes[i].Parent; p >= 0 {
			world = resolve(p).Mul(world)
		}
		nodes[i].World = world
		resolved[i] = true
		return world
	}
	for i := range nodes {
		resolve(i)
	}

	return nodes, nil
}

// parentIndices inverts the children lists and rejects anything that is
// not a forest.
func parentIndices(nodes []*gltf.Node) ([]int, error) {
	parents := make([]int, len(nodes))
	for i := range parents {
		parents[i] = -1
	}

	for i, n := range nodes {
		for _, c := range n.Children {
			if c < 0 || c >= len(nodes) {
				return nil, fmt.Errorf("node %d: child %d out of range: %w", i, c, ErrInvalidHierarchy)
			}
			if parents[c] != -1 {
				return nil, fmt.Errorf("node %d has parents %d and %d: %w", c, parents[c], i, ErrInvalidHierarchy)
			}
			parents[c] = i
		}
	}

	// With unique parents, a chain longer than the node count must loop.
	for i := range nodes {
		steps := 0
		for p := parents[i]; p != -1; p = parents[p] {
			steps++
			if steps > len(nodes) {
				return nil, fmt.Errorf("node %d: cycle: %w", i, ErrInvalidHierarchy)
			}
		}
	}

	return parents, nil
}

// localMatrix returns the node matrix, or T * R * S when the matrix is
// left at identity.
func localMatrix(n *gltf.Node) (math3d.Matrix4, error) {
	if m := columnMajor(n.MatrixOrDefault()); !m.IsIdentity() {
		return m, nil
	}

	t := n.TranslationOrDefault()
	r := n.RotationOrDefault()
	s := n.ScaleOrDefault()

	rot, err := transform.Quaternion(r[0], r[1], r[2], r[3])
	if err != nil {
		return math3d.Matrix4{}, fmt.Errorf("rotation: %w", err)
	}
	return transform.Compose(
		transform.Translation(t[0], t[1], t[2]),
		rot,
		transform.Scaling(s[0], s[1], s[2]),
	), nil
}

// columnMajor converts a glTF matrix to row-major form.
func columnMajor(v [16]float64) math3d.Matrix4 {
	var rows [4][4]float64
	for col := range 4 {
		for row := range 4 {
			rows[row][col] = v[col*4+row]
		}
	}
	return math3d.NewMatrix4(rows)
}
