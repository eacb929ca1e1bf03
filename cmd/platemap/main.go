// Command platemap prints how each level's tiles merge into collision rectangles.
//
//	platemap -dir assets -layer solid
//	platemap -level level_2 -view
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/Jokler/escape-my-basement/shared/leveldata"
)

type options struct {
	dir    string
	level  string
	layer  leveldata.Layer
	view   bool
	json   bool
	levels string
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.DirFS, os.Stdout); err != nil {
		log.Fatalf("platemap: %v", err)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options
	var layer string

	set := flag.NewFlagSet("platemap", flag.ContinueOnError)
	set.StringVar(&opts.dir, "dir", "assets", "Assets directory containing the levels directory")
	set.StringVar(&opts.levels, "levels", "levels", "Levels directory inside -dir")
	set.StringVar(&opts.level, "level", "", "Level name (empty = all levels)")
	set.StringVar(&layer, "layer", string(leveldata.LayerSolid), "Layer to show: solid or door")
	set.BoolVar(&opts.view, "view", false, "Show an interactive terminal preview")
	set.BoolVar(&opts.json, "json", false, "Print rectangles as JSON")
	if err := set.Parse(args); err != nil {
		return opts, err
	}

	switch leveldata.Layer(layer) {
	case leveldata.LayerSolid, leveldata.LayerDoor:
		opts.layer = leveldata.Layer(layer)
	default:
		return opts, fmt.Errorf("unknown layer %q (want solid or door)", layer)
	}
	return opts, nil
}

func run(ctx context.Context, args []string, openDir func(string) fs.FS, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	rep, err := buildReport(ctx, openDir(opts.dir), opts.levels, opts.layer)
	if err != nil {
		return err
	}
	if opts.level != "" {
		if rep, err = rep.only(opts.level); err != nil {
			return err
		}
	}

	switch {
	case opts.view:
		return runView(rep)
	case opts.json:
		return rep.writeJSON(stdout)
	default:
		return rep.writeText(stdout)
	}
}
