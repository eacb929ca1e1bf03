package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"slices"

	"github.com/Jokler/escape-my-basement/shared/collision"
	"github.com/Jokler/escape-my-basement/shared/leveldata"
	"github.com/Jokler/escape-my-basement/shared/platemerge"
)

// levelReport is the decomposition of one layer of one level.
type levelReport struct {
	Name    string            `json:"name"`
	Width   int               `json:"width"`
	Height  int               `json:"height"`
	Marked  int               `json:"marked"`
	Rects   []platemerge.Rect `json:"rects"`
	Objects map[string]int    `json:"objects"`

	grid *platemerge.CellSet
}

type report struct {
	Layer  leveldata.Layer `json:"layer"`
	Levels []levelReport   `json:"levels"`
}

// buildReport loads every level and decomposes the chosen layer of all of them at once,
// one partition per level.
func buildReport(ctx context.Context, fsys fs.FS, levelsDir string, layer leveldata.Layer) (*report, error) {
	levels, names, err := leveldata.LoadAllLevels(fsys, levelsDir)
	if err != nil {
		return nil, err
	}

	grids := leveldata.LayerGrids(levels, layer)
	rects, err := platemerge.DecomposeAllParallel(ctx, grids, 0)
	if err != nil {
		return nil, fmt.Errorf("decompose %s layer: %w", layer, err)
	}

	rep := &report{Layer: layer}
	for _, name := range names {
		data := levels[name]
		rep.Levels = append(rep.Levels, levelReport{
			Name:    name,
			Width:   data.GridWidth,
			Height:  data.GridHeight,
			Marked:  data.MarkedCells(layer),
			Rects:   rects[name],
			Objects: collision.NewLevelSpace(data).Stats(),
			grid:    grids[name],
		})
	}
	return rep, nil
}

func (r *report) only(name string) (*report, error) {
	i := slices.IndexFunc(r.Levels, func(l levelReport) bool { return l.Name == name })
	if i < 0 {
		return nil, fmt.Errorf("level %q not found", name)
	}
	return &report{Layer: r.Layer, Levels: r.Levels[i : i+1]}, nil
}

func (r *report) writeText(w io.Writer) error {
	for _, l := range r.Levels {
		if _, err := fmt.Fprintf(w, "%s: %dx%d, %d %s cells -> %d rects\n",
			l.Name, l.Width, l.Height, l.Marked, r.Layer, len(l.Rects)); err != nil {
			return err
		}
		for _, rect := range l.Rects {
			if _, err := fmt.Fprintf(w, "  %v\n", rect); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *report) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
