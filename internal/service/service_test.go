package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dastanaron/html2nix/internal/logger"
	"github.com/dastanaron/html2nix/internal/models"
	"github.com/dastanaron/html2nix/internal/nix"
	"github.com/dastanaron/html2nix/internal/parser"
)

const sampleHTML = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks Menu</H1>
<DL><p>
    <DT><H3 PERSONAL_TOOLBAR_FOLDER="true">Bookmarks Toolbar</H3>
    <DL><p>
        <DT><A HREF="https://nixos.org/" TAGS="nix,linux">NixOS</A>
        <DT><A HREF="place:type=6&amp;sort=14">Recent Tags</A>
    </DL><p>
    <HR>
    <DT><H3>Other &quot;Stuff&quot;</H3>
    <DL><p>
        <DT><H3>Deep</H3>
        <DL><p>
            <DT><A HREF="https://go.dev/">Go</A>
        </DL><p>
    </DL><p>
    <DT><A HREF="http://a">A</A>
</DL>
`

func newService(t *testing.T, opts nix.Options) *ConvertService {
	t.Helper()
	r, err := nix.NewRenderer(opts)
	require.NoError(t, err)
	return NewConvertService(r, logger.NewNop())
}

func parse(t *testing.T, doc string) *models.Tree {
	t.Helper()
	tree, err := parser.NewParser().ParseString(doc)
	require.NoError(t, err)
	return tree
}

func TestConvert_EndToEnd(t *testing.T) {
	svc := newService(t, nix.DefaultOptions())

	res := svc.Convert(parse(t, sampleHTML), 0)

	want := `[
  {
    name = "Bookmarks Toolbar";
    toolbar = true;
    bookmarks = [
      {
        name = "NixOS";
        url = "https://nixos.org/";
        tags = [ "nix" "linux" ];
      }
    ];
  }
  {
    name = "Other Stuff";
    bookmarks = [
      {
        name = "Deep";
        bookmarks = [
          {
            name = "Go";
            url = "https://go.dev/";
          }
        ];
      }
    ];
  }
  {
    name = "A";
    url = "http://a";
  }
]
`
	assert.Equal(t, want, res.Nix)
	assert.Len(t, res.Records, 3)
	assert.Equal(t, Stats{
		Shortcuts:      3,
		Folders:        3,
		ToolbarFolders: 1,
		Skipped:        2,
		MaxFolderDepth: 2,
	}, res.Stats)
}

func TestConvert_ShortcutBlocksMatchNonRecentShortcuts(t *testing.T) {
	svc := newService(t, fourSpaces())
	res := svc.Convert(parse(t, sampleHTML), 0)

	assert.Equal(t, res.Stats.Shortcuts, strings.Count(res.Nix, "url = "))
	assert.NotContains(t, res.Nix, "Recent Tags")
	assert.NotContains(t, res.Nix, "toolbar = false")
}

func TestConvert_PreservesSiblingOrder(t *testing.T) {
	svc := newService(t, nix.DefaultOptions())
	res := svc.Convert(parse(t, sampleHTML), 0)

	toolbar := strings.Index(res.Nix, `"Bookmarks Toolbar"`)
	other := strings.Index(res.Nix, `"Other Stuff"`)
	a := strings.Index(res.Nix, `name = "A"`)
	require.True(t, toolbar >= 0 && other >= 0 && a >= 0)
	assert.Less(t, toolbar, other)
	assert.Less(t, other, a)
}

func TestConvert_EmptyTree(t *testing.T) {
	svc := newService(t, nix.DefaultOptions())

	res := svc.Convert(&models.Tree{}, 0)
	assert.Equal(t, "[\n]\n", res.Nix)
	assert.Empty(t, res.Records)
	assert.Equal(t, Stats{}, res.Stats)
}

func TestConvert_LogsStats(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r, err := nix.NewRenderer(nix.DefaultOptions())
	require.NoError(t, err)
	svc := NewConvertService(r, logger.FromZap(zap.New(core)))

	svc.Convert(parse(t, sampleHTML), 0)

	entries := logs.FilterMessage("bookmark tree converted").AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(3), entries[0].ContextMap()["shortcuts"])
	assert.Equal(t, int64(2), entries[0].ContextMap()["skipped"])
}

func TestRenderNode(t *testing.T) {
	svc := newService(t, nix.DefaultOptions())

	out := svc.RenderNode(&models.Shortcut{Name: "A", URL: "http://a"})
	assert.Equal(t, "{\n  name = \"A\";\n  url = \"http://a\";\n}\n", out)

	assert.Equal(t, "", svc.RenderNode(&models.Shortcut{Name: "Recent Tags"}))
	assert.Equal(t, "", svc.RenderNode(&models.Separator{}))
}

func fourSpaces() nix.Options {
	return nix.Options{IndentSize: 4, IndentStyle: nix.IndentSpace, Brackets: true}
}
