package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/jsonmend"
	"github.com/jacoelho/jsonmend/internal/config"
	"github.com/jacoelho/jsonmend/internal/extract"
	"github.com/jacoelho/jsonmend/internal/output"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Parse(args)
	if err != nil {
		switch {
		case errors.Is(err, config.ErrHelp):
			fmt.Fprintln(stdout, config.Usage())
			return 0
		case errors.Is(err, config.ErrVersion):
			fmt.Fprintf(stdout, "jsonmend %s\n", version)
			return 0
		default:
			fmt.Fprintf(stderr, "Error: %v\n\n%s\n", err, config.Usage())
			return 1
		}
	}

	renderer := output.New(stdout, cfg.Format, cfg.Indent, cfg.Template)

	inputs := inputNames(cfg.InputFiles)

	exitCode := 0
	for _, name := range inputs {
		if err := process(name, stdin, renderer, cfg); err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", displayName(name), err)
			exitCode = 1
		}
	}

	return exitCode
}

// inputNames returns the inputs to process. No files means stdin, and
// stdin can only be drained once, so repeated "-" entries collapse.
func inputNames(files []string) []string {
	if len(files) == 0 {
		return []string{"-"}
	}

	names := make([]string, 0, len(files))
	seenStdin := false
	for _, name := range files {
		if name == "-" {
			if seenStdin {
				continue
			}
			seenStdin = true
		}
		names = append(names, name)
	}
	return names
}

// process parses one input and renders the selected value.
func process(name string, stdin io.Reader, renderer *output.Renderer, cfg *config.Config) error {
	data, err := readInput(name, stdin)
	if err != nil {
		return err
	}

	value, err := parseInput(string(data), cfg.Strict)
	if err != nil {
		return err
	}

	if cfg.Path != "" {
		value, err = selectPath(value, cfg)
		if err != nil {
			return err
		}
	}

	return renderer.Render(value)
}

func parseInput(input string, strict bool) (any, error) {
	if strict {
		var value any
		if err := json.Unmarshal([]byte(input), &value); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
		return value, nil
	}
	return jsonmend.Parse(input)
}

func selectPath(value any, cfg *config.Config) (any, error) {
	if cfg.All {
		results, err := extract.PathAll(value, cfg.Path)
		if err != nil {
			return nil, err
		}
		return results, nil
	}
	return extract.Path(value, cfg.Path)
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

func displayName(name string) string {
	if name == "-" {
		return "stdin"
	}
	return name
}
