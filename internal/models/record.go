package models

// Record is the format-agnostic form of a node right before rendering.
// It is either a *ShortcutRecord or a *FolderRecord.
type Record interface {
	record()
}

// ShortcutRecord holds the fields of a bookmark that reach the output.
// Tags is nil when the source bookmark had no tags.
type ShortcutRecord struct {
	Name string
	URL  string
	Tags []string
}

func (*ShortcutRecord) record() {}

// FolderRecord holds a folder and its converted children.
// Toolbar is only ever set for the bookmarks toolbar folder.
type FolderRecord struct {
	Name      string
	Toolbar   bool
	Bookmarks []Record
}

func (*FolderRecord) record() {}
