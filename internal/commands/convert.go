package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/dastanaron/html2nix/internal/logger"
	"github.com/dastanaron/html2nix/internal/parser"
	"github.com/dastanaron/html2nix/internal/service"
	"github.com/dastanaron/html2nix/internal/storage"
)

// ConvertCommand handles bookmark export to a Nix file or stdout
type ConvertCommand struct {
	source storage.Source
	parser *parser.Parser
	svc    *service.ConvertService
	log    logger.Logger
	stdout io.Writer
	depth  int
}

// NewConvertCommand creates a new convert command. depth is the starting
// indent depth of the generated document.
func NewConvertCommand(source storage.Source, svc *service.ConvertService, log logger.Logger, stdout io.Writer, depth int) *ConvertCommand {
	return &ConvertCommand{
		source: source,
		parser: parser.NewParser(),
		svc:    svc,
		log:    log,
		stdout: stdout,
		depth:  depth,
	}
}

// Execute converts the bookmarks at inputPath and writes the result to
// outputPath, or stdout when outputPath is empty.
func (c *ConvertCommand) Execute(inputPath, outputPath string) (err error) {
	c.log.Debug("reading input file", logger.String("path", inputPath))
	text, err := c.source.Read(inputPath)
	if err != nil {
		return err
	}

	c.log.Debug("checking output destination", logger.String("path", outputPath))
	sink, err := storage.OpenSink(outputPath, c.stdout)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, sink.Close())
	}()

	tree, err := c.parser.ParseString(text)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", inputPath, err)
	}

	res := c.svc.Convert(tree, c.depth)
	if len(res.Records) == 0 {
		c.log.Warn("no bookmarks found in input, writing an empty document",
			logger.String("input", inputPath))
	}

	if err := sink.Write(res.Nix); err != nil {
		return err
	}

	c.log.Info("bookmarks converted",
		logger.String("input", inputPath),
		logger.String("output", sink.Name()),
		logger.Int("shortcuts", res.Stats.Shortcuts),
		logger.Int("folders", res.Stats.Folders),
		logger.Int("skipped", res.Stats.Skipped))
	return nil
}
