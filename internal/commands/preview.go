package commands

import (
	"fmt"
	"io"

	"github.com/dastanaron/html2nix/internal/logger"
	"github.com/dastanaron/html2nix/internal/parser"
	"github.com/dastanaron/html2nix/internal/service"
	"github.com/dastanaron/html2nix/internal/storage"
	"github.com/dastanaron/html2nix/internal/ui"
)

// PreviewCommand opens the terminal preview of a bookmarks file
type PreviewCommand struct {
	source storage.Source
	parser *parser.Parser
	svc    *service.ConvertService
	log    logger.Logger
	stdout io.Writer
	depth  int
}

// NewPreviewCommand creates a new preview command
func NewPreviewCommand(source storage.Source, svc *service.ConvertService, log logger.Logger, stdout io.Writer, depth int) *PreviewCommand {
	return &PreviewCommand{
		source: source,
		parser: parser.NewParser(),
		svc:    svc,
		log:    log,
		stdout: stdout,
		depth:  depth,
	}
}

// Execute parses inputPath and runs the preview. When outputPath is set the
// preview can write the converted document there.
func (c *PreviewCommand) Execute(inputPath, outputPath string) error {
	text, err := c.source.Read(inputPath)
	if err != nil {
		return err
	}

	tree, err := c.parser.ParseString(text)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", inputPath, err)
	}

	// stdout belongs to the terminal UI, so writing needs a real file
	var write ui.WriteFunc
	if outputPath != "" {
		write = func() (string, error) {
			return c.writeTo(outputPath, c.svc.Convert(tree, c.depth).Nix)
		}
	}

	c.log.Debug("starting preview", logger.String("input", inputPath))
	return ui.NewApp(tree, c.svc, write).Run()
}

func (c *PreviewCommand) writeTo(path, text string) (string, error) {
	sink, err := storage.OpenSink(path, c.stdout)
	if err != nil {
		return "", err
	}
	if err := sink.Write(text); err != nil {
		storage.Close(sink)
		return "", err
	}
	if err := sink.Close(); err != nil {
		return "", err
	}
	return sink.Name(), nil
}
