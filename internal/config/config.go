package config

import (
	"flag"
	"os"
	"strings"
)

// Config contains runtime options for the interactive converter.
type Config struct {
	StartDir   string
	Accessible bool
}

// Parse reads CLI flags into Config. flag.CommandLine is ExitOnError, so a
// bad flag normally exits before the error is returned.
func Parse() (Config, error) {
	return ParseArgs(flag.CommandLine, os.Args[1:])
}

// ParseArgs parses args into Config using fs.
func ParseArgs(fs *flag.FlagSet, args []string) (Config, error) {
	startDir := fs.String("dir", ".", "directory the file picker starts in")
	accessible := fs.Bool("accessible", false, "use plain accessible prompts instead of the terminal UI")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	dir := strings.TrimSpace(*startDir)
	if dir == "" {
		dir = "."
	}

	return Config{
		StartDir:   dir,
		Accessible: *accessible,
	}, nil
}
