package crawl

import (
	"strings"
	"sync"

	"github.com/fwojciec/docsmcp/bloom"
)

// Entry is a URL waiting to be crawled, with its link distance from the
// seed.
type Entry struct {
	URL   string
	Depth int
}

// Frontier is a FIFO crawl queue with Bloom filter deduplication. It
// belongs to a single crawl and is safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []Entry
	head  int
}

// NewFrontier creates a new Frontier sized for n expected URLs with the
// given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewFilter(n, fpRate),
	}
}

// Push appends an entry unless its URL was pushed before. URLs differing
// only by fragment are duplicates; the fragment is dropped.
func (f *Frontier) Push(e Entry) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	e.URL = stripFragment(e.URL)
	if f.seen.TestAndAdd(e.URL) {
		return false
	}
	f.queue = append(f.queue, e)
	return true
}

// Pop removes the oldest entry. The bool result is false if the frontier
// is empty.
func (f *Frontier) Pop() (Entry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.head == len(f.queue) {
		return Entry{}, false
	}
	e := f.queue[f.head]
	f.queue[f.head] = Entry{}
	f.head++
	if f.head == len(f.queue) {
		f.queue = f.queue[:0]
		f.head = 0
	}
	return e, true
}

func stripFragment(u string) string {
	if idx := strings.Index(u, "#"); idx != -1 {
		return u[:idx]
	}
	return u
}
