package service

import (
	"github.com/dastanaron/html2nix/internal/convert"
	"github.com/dastanaron/html2nix/internal/logger"
	"github.com/dastanaron/html2nix/internal/models"
	"github.com/dastanaron/html2nix/internal/nix"
)

// Stats describes the source tree of one conversion. Skipped counts the
// nodes the converter drops (Recent Tags, separators, unknown kinds); the
// other counters only include nodes that reach the output.
type Stats struct {
	Shortcuts      int
	Folders        int
	ToolbarFolders int
	Skipped        int
	MaxFolderDepth int
}

// Result is the outcome of converting one document
type Result struct {
	Nix     string
	Records []models.Record
	Stats   Stats
}

// ConvertService provides the parse tree -> Nix pipeline
type ConvertService struct {
	renderer *nix.Renderer
	log      logger.Logger
}

// NewConvertService creates a new conversion service
func NewConvertService(renderer *nix.Renderer, log logger.Logger) *ConvertService {
	if log == nil {
		log = logger.NewNop()
	}
	return &ConvertService{renderer: renderer, log: log}
}

// Convert filters and converts the tree, then renders the whole document
// starting at depth.
func (s *ConvertService) Convert(tree *models.Tree, depth int) Result {
	nodes := tree.Nodes()
	stats := CollectStats(nodes)

	records := convert.Convert(nodes)
	out := s.renderer.Document(records, depth)

	s.log.Debug("bookmark tree converted",
		logger.Int("shortcuts", stats.Shortcuts),
		logger.Int("folders", stats.Folders),
		logger.Int("toolbar_folders", stats.ToolbarFolders),
		logger.Int("skipped", stats.Skipped),
		logger.Int("max_depth", stats.MaxFolderDepth))

	return Result{Nix: out, Records: records, Stats: stats}
}

// RenderNode renders a single node as it would appear at the top level.
// Nodes dropped by the converter render as "".
func (s *ConvertService) RenderNode(n models.Node) string {
	rec, ok := convert.Node(n)
	if !ok {
		return ""
	}
	return s.renderer.Render([]models.Record{rec}, 0)
}

// CollectStats counts the nodes of a tree the way the converter sees them
func CollectStats(nodes []models.Node) Stats {
	var st Stats
	collect(nodes, 0, &st)
	return st
}

func collect(nodes []models.Node, depth int, st *Stats) {
	for _, n := range nodes {
		if convert.Skipped(n) {
			st.Skipped++
			continue
		}
		switch v := n.(type) {
		case *models.Shortcut:
			st.Shortcuts++
		case *models.Folder:
			st.Folders++
			if v.Toolbar {
				st.ToolbarFolders++
			}
			if depth+1 > st.MaxFolderDepth {
				st.MaxFolderDepth = depth + 1
			}
			collect(v.Children, depth+1, st)
		}
	}
}
