// Package convert turns a parsed bookmark tree into output records.
package convert

import (
	"strings"

	"github.com/dastanaron/html2nix/internal/models"
)

// RecentTagsName is the synthetic "smart bookmark" Firefox adds to its
// exports. It has no real target and is never converted.
const RecentTagsName = "Recent Tags"

// Convert converts sibling nodes into records, preserving order.
// Recent Tags entries and node kinds without a record form are skipped.
func Convert(nodes []models.Node) []models.Record {
	records := make([]models.Record, 0, len(nodes))

	for _, n := range nodes {
		switch v := n.(type) {
		case *models.Shortcut:
			if v == nil || v.Name == RecentTagsName {
				continue
			}
			records = append(records, convertShortcut(v))
		case *models.Folder:
			if v == nil {
				continue
			}
			records = append(records, convertFolder(v))
		}
	}

	return records
}

// Node converts a single node. The second result is false when the node
// would be dropped by Convert.
func Node(n models.Node) (models.Record, bool) {
	records := Convert([]models.Node{n})
	if len(records) == 0 {
		return nil, false
	}
	return records[0], true
}

// Skipped reports whether Convert drops the node.
func Skipped(n models.Node) bool {
	switch v := n.(type) {
	case *models.Shortcut:
		return v == nil || v.Name == RecentTagsName
	case *models.Folder:
		return v == nil
	default:
		return true
	}
}

// SanitizeName strips double quotes, which would terminate a Nix string.
func SanitizeName(name string) string {
	return strings.ReplaceAll(name, `"`, "")
}

func convertShortcut(s *models.Shortcut) *models.ShortcutRecord {
	rec := &models.ShortcutRecord{
		Name: SanitizeName(s.Name),
		URL:  s.URL,
	}
	if len(s.Tags) > 0 {
		rec.Tags = append([]string(nil), s.Tags...)
	}
	return rec
}

func convertFolder(f *models.Folder) *models.FolderRecord {
	return &models.FolderRecord{
		Name:      SanitizeName(f.Name),
		Toolbar:   f.Toolbar,
		Bookmarks: Convert(f.Children),
	}
}
