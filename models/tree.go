package models

// Tree entry kinds as reported by the upstream tree listing.
const (
	TreeItemBlob = "blob"
	TreeItemTree = "tree"
)

// TreeItem is one entry of a recursive repository tree listing. It is
// produced per sync run and never persisted.
type TreeItem struct {
	// Path is the slash-separated path from the repository root.
	Path string

	// Kind is either [TreeItemBlob] or [TreeItemTree].
	Kind string

	// ContentRef is the opaque handle (blob SHA) used to retrieve the
	// file's content.
	ContentRef string

	// URL is the API location of the blob as returned upstream.
	URL string

	// Size is the blob size in bytes; zero for trees.
	Size int
}

// IsBlob reports whether the item is a file.
func (t TreeItem) IsBlob() bool {
	return t.Kind == TreeItemBlob
}
