package tree

import (
	"math/rand"

	"github.com/willbeason/mandelbrot/pkg/geometry"
	"github.com/willbeason/mandelbrot/pkg/transforms"
)

// LeftFrame maps coordinates of the Left branch into this junction's frame.
func (tree *Tree) LeftFrame() transforms.Linear {
	return transforms.Linear{
		Multiply: geometry.Rotation(tree.LeftAngle).Scale(tree.LeftP),
		Add:      tree.LeftOrigin(),
	}
}

// RightFrame maps coordinates of the Right branch into this junction's frame.
func (tree *Tree) RightFrame() transforms.Linear {
	return transforms.Linear{
		Multiply: geometry.Rotation(-tree.RightAngle).Scale(1.0 - tree.LeftP),
		Add:      tree.RightOrigin(),
	}
}

// Descend follows c from tree, whose coordinates frame maps into the plane.
// It returns the branch and its frame, or nil when c is None.
func (tree *Tree) Descend(c Continue, frame transforms.Linear) (*Tree, transforms.Linear) {
	switch c {
	case Left:
		return tree.Left, frame.Then(tree.LeftFrame())
	case Right:
		return tree.Right, frame.Then(tree.RightFrame())
	default:
		return nil, frame
	}
}

// Walk generates n random points of the fractal rooted at root, placed by
// base. Each point is drawn from the current junction before the walk either
// continues into a branch or restarts at root.
func Walk(root *Tree, base transforms.Linear, n int, r *rand.Rand, visit func(geometry.Complex)) {
	if root == nil {
		return
	}

	curNode, frame := root, base
	for p := 0; p < n; p++ {
		visit(frame.Next(curNode.RandomPoint(r)))

		curNode, frame = curNode.Descend(curNode.Continue(r), frame)
		if curNode == nil {
			curNode, frame = root, base
		}
	}
}
