package diff_state

type DiffState int

const (
	Added DiffState = iota
	Deleted
	Unchanged
	Modified
	BinaryModified
)

func (s DiffState) String() string {
	switch s {
	case Added:
		return "added"
	case Deleted:
		return "deleted"
	case Unchanged:
		return "unchanged"
	case Modified:
		return "modified"
	case BinaryModified:
		return "binary_modified"
	}
	return "unknown"
}
