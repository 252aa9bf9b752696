package models

import "time"

// NodeKind represents the type of node in a parsed bookmark tree
type NodeKind string

const (
	KindShortcut  NodeKind = "shortcut"
	KindFolder    NodeKind = "folder"
	KindSeparator NodeKind = "separator"
)

// Node is a single entry of a parsed bookmarks document
type Node interface {
	Kind() NodeKind
	Title() string
}

// Shortcut represents a bookmark entry (<A HREF=...>)
type Shortcut struct {
	Name        string
	URL         string
	Tags        []string
	Description string
	AddDate     time.Time
}

// Kind implements Node
func (s *Shortcut) Kind() NodeKind { return KindShortcut }

// Title implements Node
func (s *Shortcut) Title() string { return s.Name }

// Folder represents a bookmark folder (<H3> followed by <DL>)
type Folder struct {
	Name        string
	Toolbar     bool // PERSONAL_TOOLBAR_FOLDER="true"
	Children    []Node
	Description string
	AddDate     time.Time
}

// Kind implements Node
func (f *Folder) Kind() NodeKind { return KindFolder }

// Title implements Node
func (f *Folder) Title() string { return f.Name }

// Add appends a child, keeping document order
func (f *Folder) Add(n Node) {
	f.Children = append(f.Children, n)
}

// Separator represents an <HR> line between entries
type Separator struct{}

// Kind implements Node
func (s *Separator) Kind() NodeKind { return KindSeparator }

// Title implements Node
func (s *Separator) Title() string { return "" }

// Tree is a parsed bookmarks document
type Tree struct {
	Title string // <H1> heading, usually "Bookmarks" or "Bookmarks Menu"
	Root  *Folder
}

// Nodes returns the top-level entries of the document
func (t *Tree) Nodes() []Node {
	if t == nil || t.Root == nil {
		return nil
	}
	return t.Root.Children
}
