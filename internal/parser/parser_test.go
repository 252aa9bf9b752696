package parser

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dastanaron/html2nix/internal/models"
)

func TestParseBookmarksHTML_FirefoxExport(t *testing.T) {
	f, err := os.Open("testdata/bookmarks.html")
	require.NoError(t, err)
	defer f.Close()

	tree, err := NewParser().ParseBookmarksHTML(f)
	require.NoError(t, err)

	added := time.Unix(1700000000, 0).UTC()
	want := &models.Tree{
		Title: "Bookmarks Menu",
		Root: &models.Folder{
			Name: "Bookmarks Menu",
			Children: []models.Node{
				&models.Shortcut{Name: "NixOS", URL: "https://nixos.org/", Tags: []string{"nix", "linux"}, AddDate: added},
				&models.Shortcut{Name: "Recent Tags", URL: "place:type=6&sort=14&maxResults=10", AddDate: added},
				&models.Separator{},
				&models.Folder{
					Name:        "Dev",
					Description: "Things I read at work",
					AddDate:     added,
					Children: []models.Node{
						&models.Shortcut{Name: `The Go "Programming" Language`, URL: "https://go.dev/", Description: "Official site"},
						&models.Folder{Name: "Empty"},
						&models.Shortcut{Name: "Packages", URL: "https://pkg.go.dev/"},
					},
				},
				&models.Folder{
					Name:    "Bookmarks Toolbar",
					Toolbar: true,
					AddDate: added,
					Children: []models.Node{
						&models.Shortcut{Name: "GitHub", URL: "https://github.com/", Tags: []string{"code", "git"}},
					},
				},
				&models.Shortcut{Name: "Example", URL: "https://example.org/"},
			},
		},
	}

	if diff := cmp.Diff(want, tree, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("parsed tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBookmarksHTML_NestedFoldersReturnToParent(t *testing.T) {
	doc := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<H1>Bookmarks</H1>
<DL><p>
	<DT><H3>A</H3>
	<DL><p>
		<DT><H3>B</H3>
		<DL><p>
			<DT><A HREF="https://b.example/">in b</A>
		</DL><p>
		<DT><A HREF="https://a.example/">in a</A>
	</DL><p>
	<DT><A HREF="https://root.example/">in root</A>
</DL><p>`

	tree, err := NewParser().ParseString(doc)
	require.NoError(t, err)

	nodes := tree.Nodes()
	require.Len(t, nodes, 2)

	a, ok := nodes[0].(*models.Folder)
	require.True(t, ok, "first node should be a folder")
	assert.Equal(t, "A", a.Name)
	require.Len(t, a.Children, 2)
	assert.Equal(t, "B", a.Children[0].Title())
	assert.Equal(t, "in a", a.Children[1].Title())

	b := a.Children[0].(*models.Folder)
	require.Len(t, b.Children, 1)
	assert.Equal(t, "in b", b.Children[0].Title())

	assert.Equal(t, "in root", nodes[1].Title())
	assert.Equal(t, models.KindShortcut, nodes[1].Kind())
}

func TestParseBookmarksHTML_Empty(t *testing.T) {
	tree, err := NewParser().ParseString("")
	require.NoError(t, err)
	assert.Empty(t, tree.Nodes())
	assert.Equal(t, "", tree.Title)
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "single", raw: "nix", want: []string{"nix"}},
		{name: "trimmed", raw: " a , b ", want: []string{"a", "b"}},
		{name: "blank entries dropped", raw: "a,,b,", want: []string{"a", "b"}},
		{name: "only commas", raw: ",,", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitTags(tt.raw))
		})
	}
}
