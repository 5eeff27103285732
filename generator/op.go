package generator

// Op identifies a forward puzzle operation.
type Op int

const (
	// OpGrow adds a leaf next to an existing node.
	OpGrow Op = iota
	// OpSplit cuts an edge and inserts a node into the gap.
	OpSplit
)

// String returns "grow" or "split".
func (o Op) String() string {
	switch o {
	case OpGrow:
		return "grow"
	case OpSplit:
		return "split"
	default:
		return "unknown"
	}
}
