package uploads

import (
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

const maxExtLen = 16

// Namer generates upload names from the current millisecond timestamp plus
// the original extension. Names are strictly increasing per process, so two
// uploads in the same millisecond never collide.
type Namer struct {
	last atomic.Int64
	now  func() time.Time
}

func NewNamer() *Namer {
	return &Namer{now: time.Now}
}

func (n *Namer) Next(originalName string) string {
	ms := n.now().UnixMilli()
	for {
		last := n.last.Load()
		next := ms
		if next <= last {
			next = last + 1
		}
		if n.last.CompareAndSwap(last, next) {
			return strconv.FormatInt(next, 10) + Ext(originalName)
		}
	}
}

// Ext returns the extension of a client-supplied file name, or "" when it
// would not be safe inside a flat directory.
func Ext(name string) string {
	ext := filepath.Ext(name)
	if len(ext) > maxExtLen || strings.ContainsAny(ext, `/\ `) {
		return ""
	}
	return ext
}
