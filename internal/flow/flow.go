package flow

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"image-converter/internal/logging"
	"image-converter/internal/model"
)

// ErrCancelled is returned by a Prompter when the user dismisses a prompt.
var ErrCancelled = errors.New("selection cancelled")

// Notification is the final message shown after a conversion attempt.
type Notification struct {
	Title  string
	Body   string
	Failed bool
}

// Prompter asks the user for input and shows the outcome.
type Prompter interface {
	SelectFile() (string, error)
	SelectFormat(formats []string, initial string) (string, error)
	Notify(n Notification) error
}

// Converter performs a single conversion.
type Converter interface {
	Convert(ctx context.Context, req model.Request) (string, error)
}

// Run walks the user through one conversion: pick a file, pick a format,
// convert, notify. Cancelling either prompt ends the flow with a nil error.
// Conversion failures are reported through Notify; only prompt errors are returned.
func Run(ctx context.Context, p Prompter, conv Converter, formats []string, logger *logging.Logger) error {
	if len(formats) == 0 {
		return fmt.Errorf("no target formats configured")
	}

	path, err := p.SelectFile()
	if errors.Is(err, ErrCancelled) || (err == nil && path == "") {
		logger.Infof("No file selected; exiting")
		return nil
	}
	if err != nil {
		return fmt.Errorf("select image: %w", err)
	}

	format, err := p.SelectFormat(formats, formats[0])
	if errors.Is(err, ErrCancelled) {
		logger.Infof("No format selected; exiting")
		return nil
	}
	if err != nil {
		return fmt.Errorf("select format: %w", err)
	}

	logger.Infof("Converting %s to %s", path, format)
	out, convErr := conv.Convert(ctx, model.Request{SourcePath: path, Format: format})

	var n Notification
	if convErr != nil {
		logger.Errorf("Conversion failed: %v", convErr)
		n = Notification{
			Title:  "Error",
			Body:   fmt.Sprintf("Conversion failed:\n%v", convErr),
			Failed: true,
		}
	} else {
		logger.Infof("Saved %s", out)
		if filepath.Clean(out) == filepath.Clean(path) {
			logger.Warnf("Source %s was replaced by the converted copy", path)
		}
		n = Notification{
			Title: "Success",
			Body:  fmt.Sprintf("Converted successfully!\nSaved to: %s", describeOutput(out)),
		}
	}

	if err := p.Notify(n); err != nil && !errors.Is(err, ErrCancelled) {
		return fmt.Errorf("show result: %w", err)
	}
	return nil
}

func describeOutput(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return path
	}
	return fmt.Sprintf("%s (%s)", path, humanize.IBytes(uint64(info.Size())))
}
