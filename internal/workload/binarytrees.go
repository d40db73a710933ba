package workload

import (
	"fmt"
	"io"
)

const minTreeDepth = 4

type node struct {
	left, right *node
}

func bottomUp(depth int) *node {
	if depth <= 0 {
		return &node{}
	}
	return &node{left: bottomUp(depth - 1), right: bottomUp(depth - 1)}
}

func (n *node) check() int {
	if n.left == nil {
		return 1
	}
	return 1 + n.left.check() + n.right.check()
}

// RunBinarytrees allocates and walks perfect binary trees up to depth n.
func RunBinarytrees(w io.Writer, n int) error {
	if n < 0 || n > 30 {
		return fmt.Errorf("%w: binarytrees n=%d", ErrInvalidParam, n)
	}
	maxDepth := max(minTreeDepth+2, n)

	stretch := maxDepth + 1
	if _, err := fmt.Fprintf(w, "stretch tree of depth %d\t check: %d\n", stretch, bottomUp(stretch).check()); err != nil {
		return err
	}

	longLived := bottomUp(maxDepth)
	for depth := minTreeDepth; depth <= maxDepth; depth += 2 {
		iterations := 1 << (maxDepth - depth + minTreeDepth)
		check := 0
		for i := 0; i < iterations; i++ {
			check += bottomUp(depth).check()
		}
		if _, err := fmt.Fprintf(w, "%d\t trees of depth %d\t check: %d\n", iterations, depth, check); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "long lived tree of depth %d\t check: %d\n", maxDepth, longLived.check())
	return err
}
