package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dastanaron/html2nix/internal/models"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parser parses NETSCAPE bookmark HTML files into a tree
type Parser struct{}

// NewParser creates a new parser
func NewParser() *Parser {
	return &Parser{}
}

// builder keeps the walk state while the HTML tree is traversed
type builder struct {
	tree        *models.Tree
	folderStack []*models.Folder
	pending     *models.Folder // folder whose <DL> has not been entered yet
	last        models.Node    // target for a following <DD> description
}

// ParseBookmarksHTML parses an HTML bookmark file
func (p *Parser) ParseBookmarksHTML(r io.Reader) (*models.Tree, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bookmarks HTML: %w", err)
	}

	root := &models.Folder{}
	b := &builder{
		tree:        &models.Tree{Root: root},
		folderStack: []*models.Folder{root},
	}
	b.walk(doc)
	return b.tree, nil
}

// ParseString is a convenience wrapper for in-memory documents
func (p *Parser) ParseString(s string) (*models.Tree, error) {
	return p.ParseBookmarksHTML(strings.NewReader(s))
}

func (b *builder) current() *models.Folder {
	return b.folderStack[len(b.folderStack)-1]
}

func (b *builder) walk(n *html.Node) {
	owned := false

	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.H1:
			// Document heading, names the root folder
			b.tree.Title = textContent(n)
			b.tree.Root.Name = b.tree.Title
			return

		case atom.H3:
			// Found folder header <H3 ...>
			folder := &models.Folder{
				Name:    textContent(n),
				Toolbar: strings.EqualFold(attr(n, "personal_toolbar_folder"), "true"),
				AddDate: unixAttr(n, "add_date"),
			}
			b.current().Add(folder)
			b.pending = folder
			b.last = folder
			return

		case atom.A:
			// Found bookmark <A HREF=...>
			shortcut := &models.Shortcut{
				Name:    textContent(n),
				URL:     attr(n, "href"),
				Tags:    splitTags(attr(n, "tags")),
				AddDate: unixAttr(n, "add_date"),
			}
			b.current().Add(shortcut)
			b.last = shortcut
			return

		case atom.Hr:
			b.current().Add(&models.Separator{})
			b.last = nil
			return

		case atom.Dd:
			setDescription(b.last, directText(n))
			b.last = nil

		case atom.Dl:
			// The first <DL> after a folder header holds its children
			if b.pending != nil {
				b.folderStack = append(b.folderStack, b.pending)
				b.pending = nil
				owned = true
			}
		}
	}

	// Recursively traverse children
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.walk(c)
	}

	// When exiting the folder's DL container - "close" the folder
	if owned {
		b.folderStack = b.folderStack[:len(b.folderStack)-1]
		b.last = nil
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func unixAttr(n *html.Node, key string) time.Time {
	v := attr(n, key)
	if v == "" {
		return time.Time{}
	}
	sec, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}

// splitTags splits the comma separated TAGS attribute. Empty entries are dropped.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// textContent concatenates every text node below n
func textContent(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.TrimSpace(sb.String())
}

// directText only looks at immediate text children. A folder's <DD> may
// contain the folder's <DL>, which must not leak into the description.
func directText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(sb.String())
}

func setDescription(n models.Node, desc string) {
	if desc == "" {
		return
	}
	switch v := n.(type) {
	case *models.Shortcut:
		v.Description = desc
	case *models.Folder:
		v.Description = desc
	}
}
