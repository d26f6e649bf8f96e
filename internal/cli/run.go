package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Run loads the grid, searches it and writes the report to o.Out.
func (o *Options) Run() error {
	m, err := o.loadMap()
	if err != nil {
		return err
	}

	if o.Tile > 1 {
		if m, err = grid.Tile(m, o.Tile, o.MaxCost); err != nil {
			return err
		}
		o.logger.WithFields(logrus.Fields{"factor": o.Tile, "cells": m.Len()}).Info("tiled grid")
	}

	lo, hi, _ := m.Bounds()
	start, goal := lo, hi
	if o.from != nil {
		start = *o.from
	}
	if o.to != nil {
		goal = *o.to
	}

	opts := []search.Option{search.WithHeuristic(o.heuristic)}
	if o.hasThreshold {
		opts = append(opts, search.WithThreshold(o.Threshold))
	}
	if o.logger.IsLevelEnabled(logrus.DebugLevel) {
		opts = append(opts, search.WithOnExpand(func(n grid.Node) {
			o.logger.WithFields(logrus.Fields{"pos": n.Position.String(), "priority": n.Cost}).Debug("expand")
		}))
	}

	log := o.logger.WithFields(logrus.Fields{
		"strategy": o.strategy.String(),
		"from":     start.String(),
		"to":       goal.String(),
	})
	log.Info("searching")

	res, err := search.Search(m, start, goal, o.strategy, opts...)
	if errors.Is(err, search.ErrNoPath) {
		o.explainNoPath(log, m, start, goal, res)
	}
	if err != nil {
		return err
	}

	cost, err := grid.PathCost(m, res.Path)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"expanded": res.Expanded, "reached": res.Tree.Len()}).Info("path found")

	fmt.Fprintf(o.Out, "%s: cost=%d steps=%d expanded=%d\n", o.strategy, cost, len(res.Path)-1, res.Expanded)
	if o.PrintPath {
		for _, p := range res.Path {
			fmt.Fprintln(o.Out, p)
		}
	}
	return nil
}

// loadMap parses the input file, or o.In when the input is "-".
func (o *Options) loadMap() (*grid.Map, error) {
	var r io.Reader = o.In
	if o.Input != "-" {
		f, err := os.Open(o.Input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	m, err := grid.ParseDigits(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", o.Input, err)
	}
	o.logger.WithFields(logrus.Fields{"input": o.Input, "cells": m.Len()}).Debug("parsed grid")
	return m, nil
}

// explainNoPath logs why the goal was not reached: a missing endpoint, or
// the regions the threshold splits the grid into.
func (o *Options) explainNoPath(log *logrus.Entry, m *grid.Map, start, goal grid.Pos, res *search.Result) {
	switch {
	case !m.Has(start):
		log.Warn("start is outside the grid")
		return
	case !m.Has(goal):
		log.Warn("goal is outside the grid")
		return
	}

	var nopts []grid.NeighborOption
	if o.hasThreshold {
		nopts = append(nopts, grid.WithThreshold(o.Threshold))
	}
	fields := logrus.Fields{"regions": len(m.Components(nopts...))}
	if res != nil {
		fields["reached"] = res.Tree.Len()
	}
	log.WithFields(fields).Warn("goal is not reachable from start")
}
