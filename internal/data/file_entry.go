package data

// FileEntry describes a single regular file found below one of the two
// comparison roots. Entries are created by the tree walker and not modified
// afterwards.
type FileEntry struct {
	// RelativePath is the slash-separated path below the tree root. It is the
	// join key between the original and the modified tree.
	RelativePath string
	AbsolutePath string
	Size         int64
	// Type is the display category of the file, see diff.ClassifyFileType.
	Type string
}

func (entry *FileEntry) Equal(e FileEntry) bool {
	return entry.RelativePath == e.RelativePath && entry.AbsolutePath == e.AbsolutePath
}
