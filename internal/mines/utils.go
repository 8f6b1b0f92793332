package mines

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// celltodo is a FIFO of cell indices threaded through a fixed next[] array.
// Each index may be queued at most once between resets.
type celltodo struct {
	next       []int
	head, tail int
}

func newCelltodo(size int) *celltodo {
	return &celltodo{next: make([]int, size), head: -1, tail: -1}
}

func (std *celltodo) add(i int) {
	if std.tail >= 0 {
		std.next[std.tail] = i
	} else {
		std.head = i
	}
	std.tail = i
	std.next[i] = -1
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
