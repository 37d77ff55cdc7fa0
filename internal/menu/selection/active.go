package selection

// ActivePath records which branch is expanded at each depth. It is separate
// from the committed value: expanding and collapsing branches never changes
// what a later leaf commit reports.
type ActivePath struct {
	indices []int
}

// Expand sets the expanded branch at depth and drops anything deeper.
func (a *ActivePath) Expand(depth, index int) {
	if depth < 0 {
		return
	}
	if depth > len(a.indices) {
		depth = len(a.indices)
	}
	a.indices = append(a.indices[:depth], index)
}

// Truncate keeps the first depth entries.
func (a *ActivePath) Truncate(depth int) {
	if depth < 0 {
		depth = 0
	}
	if depth < len(a.indices) {
		a.indices = a.indices[:depth]
	}
}

// Reset collapses everything.
func (a *ActivePath) Reset() {
	a.indices = nil
}

// Set replaces the path.
func (a *ActivePath) Set(indices []int) {
	a.indices = append([]int(nil), indices...)
}

// Depth is the number of expanded levels.
func (a *ActivePath) Depth() int {
	return len(a.indices)
}

// At returns the expanded index at depth, or -1.
func (a *ActivePath) At(depth int) int {
	if depth < 0 || depth >= len(a.indices) {
		return -1
	}
	return a.indices[depth]
}

// Indices returns a copy of the expanded indices.
func (a *ActivePath) Indices() []int {
	return append([]int(nil), a.indices...)
}
