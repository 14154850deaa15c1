// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"cloudeng.io/datastructures/container/heap"
	"cloudeng.io/datastructures/container/list"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

type heapReport struct {
	Mode   string `yaml:"mode"`
	Values []int  `yaml:"values"`
	Valid  bool   `yaml:"valid"`
	Repr   string `yaml:"repr"`
}

type listReport struct {
	Values []int  `yaml:"values"`
	Len    int    `yaml:"len"`
	Repr   string `yaml:"repr"`
}

// write prints the report as YAML, or as its repr field for text output.
func write(out io.Writer, format string, repr string, report any) error {
	switch format {
	case "", "text":
		_, err := fmt.Fprintln(out, repr)
		return err
	case "yaml":
		buf, err := yaml.Marshal(report)
		if err != nil {
			return err
		}
		_, err = out.Write(buf)
		return err
	}
	return fmt.Errorf("unsupported output format: %q", format)
}

func heapCmd(ctx context.Context, out io.Writer, fv *heapFlags, args []string) error {
	ctx, err := fv.withLogger(ctx, os.Stderr)
	if err != nil {
		return err
	}
	values, err := parseInts(args)
	if err != nil {
		return err
	}
	h, err := heap.GenerateWithMode(values, fv.Mode)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("heap generated", "mode", h.Mode().String(), "len", h.Len())
	return write(out, fv.Output, h.String(), heapReport{
		Mode:   h.Mode().String(),
		Values: h.Values(),
		Valid:  h.CheckHeap(),
		Repr:   h.String(),
	})
}

// parseSliceSpec parses start:end[:step].
func parseSliceSpec(spec string) (start, end, step int, err error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, fmt.Errorf("invalid slice %q: must be start:end[:step]", spec)
	}
	step = 1
	nums := make([]int, len(parts))
	for i, p := range parts {
		if nums[i], err = strconv.Atoi(p); err != nil {
			return 0, 0, 0, fmt.Errorf("invalid slice %q: %q is not an integer", spec, p)
		}
	}
	if len(nums) == 3 {
		step = nums[2]
	}
	return nums[0], nums[1], step, nil
}

func listCmd(ctx context.Context, out io.Writer, fv *listFlags, args []string) error {
	ctx, err := fv.withLogger(ctx, os.Stderr)
	if err != nil {
		return err
	}
	values, err := parseInts(args)
	if err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx)
	ll := list.Generate(values...)
	if len(fv.Slice) > 0 {
		start, end, step, err := parseSliceSpec(fv.Slice)
		if err != nil {
			return err
		}
		if ll, err = ll.Slice(start, end, step); err != nil {
			return err
		}
		logger.Debug("sliced", "start", start, "end", end, "step", step)
	}
	if fv.Step != 0 {
		if err := ll.Step(fv.Step); err != nil {
			return err
		}
		logger.Debug("stepped", "step", fv.Step)
	}
	if fv.Reverse {
		ll.Reverse()
		logger.Debug("reversed")
	}
	return write(out, fv.Output, ll.String(), listReport{
		Values: slices.Collect(ll.Values()),
		Len:    ll.Len(),
		Repr:   ll.String(),
	})
}

func runCmd(ctx context.Context, out io.Writer, fv *runFlags, args []string) error {
	ctx, err := fv.withLogger(ctx, os.Stderr)
	if err != nil {
		return err
	}
	sc, err := loadScenario(ctx, args[0])
	if err != nil {
		return err
	}
	report, err := sc.Run(ctx)
	if err != nil {
		return err
	}
	return write(out, fv.Output, report.String(), report)
}
