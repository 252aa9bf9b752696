package ui

import (
	"fmt"

	"github.com/dastanaron/html2nix/internal/convert"
	"github.com/dastanaron/html2nix/internal/models"
	"github.com/dastanaron/html2nix/internal/service"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// WriteFunc writes the full converted document and returns where it went
type WriteFunc func() (string, error)

// App is a read-only terminal preview of a parsed bookmarks file
type App struct {
	app         *tview.Application
	tree        *tview.TreeView
	detail      *tview.TextView
	status      *tview.TextView
	pages       *tview.Pages
	doc         *models.Tree
	svc         *service.ConvertService
	stats       service.Stats
	write       WriteFunc
	focusOnTree bool
	message     string // last result shown in the status bar
}

// NewApp creates a new preview for doc. write may be nil, which disables
// the write key.
func NewApp(doc *models.Tree, svc *service.ConvertService, write WriteFunc) *App {
	return &App{
		app:         tview.NewApplication(),
		tree:        tview.NewTreeView(),
		detail:      tview.NewTextView().SetDynamicColors(true).SetWrap(false),
		status:      tview.NewTextView().SetDynamicColors(true),
		pages:       tview.NewPages(),
		doc:         doc,
		svc:         svc,
		stats:       service.CollectStats(doc.Nodes()),
		write:       write,
		focusOnTree: true,
	}
}

// Run starts the application
func (a *App) Run() error {
	a.build()
	a.app.SetRoot(a.pages, true)
	a.app.SetInputCapture(a.globalInput)
	a.app.SetFocus(a.tree)
	return a.app.Run()
}

func (a *App) build() {
	a.tree.SetBorder(true).SetTitle("Bookmarks")
	a.detail.SetBorder(true).SetTitle("Nix")

	cols := tview.NewFlex().
		AddItem(a.tree, 0, 1, true).
		AddItem(a.detail, 0, 2, false)

	main := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(cols, 0, 1, true).
		AddItem(a.status, 1, 0, false)

	a.pages.AddPage("main", main, true, true)

	title := a.doc.Title
	if title == "" {
		title = "Bookmarks"
	}
	root := tview.NewTreeNode(title).SetColor(tcell.ColorYellow)
	a.addNodes(root, a.doc.Nodes())

	a.tree.SetRoot(root).SetCurrentNode(root)
	a.tree.SetChangedFunc(a.onChanged)
	a.tree.SetSelectedFunc(a.onSelected)

	a.onChanged(root)
	a.updateStatus()
}

func (a *App) addNodes(parent *tview.TreeNode, nodes []models.Node) {
	for _, n := range nodes {
		child := tview.NewTreeNode(nodeLabel(n)).SetReference(n)

		switch v := n.(type) {
		case *models.Folder:
			child.SetColor(tcell.ColorGreen)
			if v.Toolbar {
				child.SetColor(tcell.ColorAqua)
			}
			a.addNodes(child, v.Children)
			child.SetExpanded(v.Toolbar)
		case *models.Shortcut:
			child.SetColor(tcell.ColorWhite)
		}

		if convert.Skipped(n) {
			child.SetColor(tcell.ColorGray)
		}
		parent.AddChild(child)
	}
}

func nodeLabel(n models.Node) string {
	var label string
	switch v := n.(type) {
	case *models.Folder:
		label = v.Name + "/"
		if v.Toolbar {
			label += " (toolbar)"
		}
	case *models.Separator:
		label = "----"
	default:
		label = n.Title()
	}
	if convert.Skipped(n) {
		label += " (skipped)"
	}
	return label
}

// onChanged shows the Nix block of the highlighted node
func (a *App) onChanged(node *tview.TreeNode) {
	n, ok := node.GetReference().(models.Node)
	if !ok {
		// The root: the whole document
		res := a.svc.Convert(a.doc, 0)
		a.detail.SetText(tview.Escape(res.Nix))
		a.detail.ScrollToBeginning()
		return
	}

	text := a.svc.RenderNode(n)
	if text == "" {
		a.detail.SetText("[gray]This entry is not part of the generated Nix.[-]")
		return
	}

	header := ""
	if desc := description(n); desc != "" {
		header = "[::b]Description:[::-] " + tview.Escape(desc) + "\n\n"
	}
	a.detail.SetText(header + tview.Escape(text))
	a.detail.ScrollToBeginning()
}

// onSelected toggles folders open and closed
func (a *App) onSelected(node *tview.TreeNode) {
	if len(node.GetChildren()) > 0 {
		node.SetExpanded(!node.IsExpanded())
	}
}

func description(n models.Node) string {
	switch v := n.(type) {
	case *models.Shortcut:
		return v.Description
	case *models.Folder:
		return v.Description
	}
	return ""
}

func (a *App) updateStatus() {
	countText := fmt.Sprintf(" [::b]%d[::-] bookmarks, [::b]%d[::-] folders, %d skipped",
		a.stats.Shortcuts, a.stats.Folders, a.stats.Skipped)

	keys := "[::b]Tab[::-] switch  [::b]Enter[::-] expand  [::b]q[::-] quit"
	if a.write != nil {
		keys = "[::b]Tab[::-] switch  [::b]Enter[::-] expand  [::b]w[::-] write  [::b]q[::-] quit"
	}

	text := keys + countText
	if a.message != "" {
		text += "  " + a.message
	}
	a.status.SetText(text)
}

// toggleFocus moves focus between the tree and the Nix pane
func (a *App) toggleFocus() {
	a.focusOnTree = !a.focusOnTree
	if a.focusOnTree {
		a.app.SetFocus(a.tree)
	} else {
		a.app.SetFocus(a.detail)
	}
}

func (a *App) writeDocument() {
	dest, err := a.write()
	if err != nil {
		a.message = "[red]" + tview.Escape(err.Error()) + "[-]"
	} else {
		a.message = "[green]written to " + tview.Escape(dest) + "[-]"
	}
	a.updateStatus()
}

func (a *App) globalInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyTab:
		a.toggleFocus()
		return nil
	case tcell.KeyEscape:
		a.app.Stop()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			a.app.Stop()
			return nil
		case 'w':
			if a.write != nil {
				a.writeDocument()
				return nil
			}
		}
	}
	return event
}
