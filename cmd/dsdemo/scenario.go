// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/datastructures/container/heap"
	"cloudeng.io/datastructures/container/list"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// Operation is a single step in a scenario. Only the fields used by
// the named operation need be set.
type Operation struct {
	Op     string `yaml:"op"`
	Index  *int   `yaml:"index,omitempty"`
	Value  *int   `yaml:"value,omitempty"`
	Values []int  `yaml:"values,omitempty"`
	Start  *int   `yaml:"start,omitempty"`
	End    *int   `yaml:"end,omitempty"`
	Step   *int   `yaml:"step,omitempty"`
}

// Scenario describes a container, its initial contents and the
// operations to apply to it. Mode is only used for heaps and may be
// either a boolean (true for max) or one of "max" or "min".
type Scenario struct {
	Container  string      `yaml:"container"`
	Mode       any         `yaml:"mode,omitempty"`
	Values     []int       `yaml:"values"`
	Operations []Operation `yaml:"operations"`
}

type fields uint8

const (
	needsIndex fields = 1 << iota
	needsValue
	needsValues
	needsStep
	needsRange
)

var heapOps = map[string]fields{
	"insert":     needsValue,
	"pop":        needsIndex,
	"remove":     needsValue,
	"replace":    needsIndex | needsValue,
	"key_change": needsIndex | needsValue,
	"delete":     needsIndex,
	"merge":      needsValues,
	"max":        0,
	"min":        0,
	"max_heap":   0,
	"min_heap":   0,
	"check":      0,
}

var listOps = map[string]fields{
	"index":   needsIndex,
	"insert":  needsIndex | needsValue,
	"append":  needsValue,
	"prepend": needsValue,
	"delete":  needsIndex,
	"slice":   needsRange | needsStep,
	"step":    needsStep,
	"reverse": 0,
}

func (op Operation) missing(f fields) []string {
	var m []string
	if f&needsIndex != 0 && op.Index == nil {
		m = append(m, "index")
	}
	if f&needsValue != 0 && op.Value == nil {
		m = append(m, "value")
	}
	if f&needsValues != 0 && op.Values == nil {
		m = append(m, "values")
	}
	if f&needsRange != 0 && (op.Start == nil || op.End == nil) {
		m = append(m, "start/end")
	}
	if f&needsStep != 0 && op.Step == nil {
		m = append(m, "step")
	}
	return m
}

// Validate reports all of the problems with the scenario.
func (sc Scenario) Validate() error {
	var ops map[string]fields
	errs := &errors.M{}
	switch sc.Container {
	case "heap":
		ops = heapOps
		if _, err := heap.ModeOf(sc.modeOrDefault()); err != nil {
			errs.Append(fmt.Errorf("mode: %w", err))
		}
	case "list":
		ops = listOps
	default:
		return fmt.Errorf("unsupported container: %q, must be one of 'heap' or 'list'", sc.Container)
	}
	for i, op := range sc.Operations {
		f, ok := ops[op.Op]
		if !ok {
			errs.Append(fmt.Errorf("operation %v: %q is not supported for a %v", i, op.Op, sc.Container))
			continue
		}
		if m := op.missing(f); len(m) > 0 {
			errs.Append(fmt.Errorf("operation %v: %v: missing %v", i, op.Op, strings.Join(m, ", ")))
		}
	}
	return errs.Err()
}

func (sc Scenario) modeOrDefault() any {
	if sc.Mode == nil {
		return true
	}
	return sc.Mode
}

func parseScenario(spec []byte) (Scenario, error) {
	var sc Scenario
	if err := cmdyaml.ParseConfigStrict(spec, &sc); err != nil {
		return Scenario{}, err
	}
	return sc, sc.Validate()
}

func loadScenario(ctx context.Context, filename string) (Scenario, error) {
	var sc Scenario
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &sc); err != nil {
		return Scenario{}, err
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, fmt.Errorf("%v: %w", filename, err)
	}
	return sc, nil
}

// StepResult records the outcome of a single operation.
type StepResult struct {
	Op     string `yaml:"op"`
	Result string `yaml:"result,omitempty"`
	Values []int  `yaml:"values"`
}

// Report records the outcome of replaying a scenario.
type Report struct {
	Container string       `yaml:"container"`
	Initial   []int        `yaml:"initial"`
	Steps     []StepResult `yaml:"steps"`
	Final     string       `yaml:"final"`
}

func (r Report) String() string {
	out := &strings.Builder{}
	fmt.Fprintf(out, "%v: %v\n", r.Container, r.Initial)
	for i, s := range r.Steps {
		fmt.Fprintf(out, "% 3d: %-10s %v", i, s.Op, s.Values)
		if len(s.Result) > 0 {
			fmt.Fprintf(out, " => %v", s.Result)
		}
		out.WriteString("\n")
	}
	out.WriteString(r.Final)
	return out.String()
}

// Run applies the scenario's operations in order, stopping at the first
// operation that fails.
func (sc Scenario) Run(ctx context.Context) (Report, error) {
	report := Report{Container: sc.Container, Initial: slices.Clone(sc.Values)}
	logger := ctxlog.Logger(ctx)
	var step func(Operation) (string, []int, error)
	var final func() string
	switch sc.Container {
	case "heap":
		mode, err := heap.ModeOf(sc.modeOrDefault())
		if err != nil {
			return report, err
		}
		h, err := heap.New(mode, heap.WithData(slices.Clone(sc.Values)))
		if err != nil {
			return report, err
		}
		step = func(op Operation) (string, []int, error) {
			res, err := applyHeap(h, op)
			return res, h.Values(), err
		}
		final = h.String
	case "list":
		ll := list.Generate(sc.Values...)
		step = func(op Operation) (string, []int, error) {
			res, err := applyList(ll, op)
			return res, slices.Collect(ll.Values()), err
		}
		final = ll.String
	default:
		return report, fmt.Errorf("unsupported container: %q", sc.Container)
	}
	for i, op := range sc.Operations {
		res, values, err := step(op)
		if err != nil {
			return report, errors.Annotate(fmt.Sprintf("operation %v: %v", i, op.Op), err)
		}
		logger.Debug("applied", "container", sc.Container, "op", op.Op, "result", res)
		report.Steps = append(report.Steps, StepResult{Op: op.Op, Result: res, Values: values})
	}
	report.Final = final()
	return report, nil
}

func applyHeap(h *heap.Heap[int], op Operation) (string, error) {
	switch op.Op {
	case "insert":
		h.Insert(*op.Value)
	case "pop":
		v, err := h.Pop(*op.Index)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v), nil
	case "remove":
		return "", h.Remove(*op.Value)
	case "replace":
		return "", h.Replace(*op.Index, *op.Value)
	case "key_change":
		return "", h.KeyChange(*op.Index, *op.Value)
	case "delete":
		return "", h.Delete(*op.Index)
	case "merge":
		other, _ := heap.New(h.Mode(), heap.WithData(slices.Clone(op.Values)))
		h.Merge(other)
	case "max":
		v, err := h.Max()
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v), nil
	case "min":
		v, err := h.Min()
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v), nil
	case "max_heap":
		h.MaxHeap()
	case "min_heap":
		h.MinHeap()
	case "check":
		return fmt.Sprint(h.CheckHeap()), nil
	default:
		return "", fmt.Errorf("unsupported heap operation: %q", op.Op)
	}
	return "", nil
}

func applyList(ll *list.LinkedList[int], op Operation) (string, error) {
	switch op.Op {
	case "index":
		n, err := ll.Index(*op.Index)
		if err != nil {
			return "", err
		}
		return n.String(), nil
	case "insert":
		return "", ll.Insert(*op.Value, *op.Index)
	case "append":
		ll.Append(*op.Value)
	case "prepend":
		ll.Prepend(*op.Value)
	case "delete":
		return "", ll.Delete(*op.Index)
	case "slice":
		sl, err := ll.Slice(*op.Start, *op.End, *op.Step)
		if err != nil {
			return "", err
		}
		return sl.String(), nil
	case "step":
		return "", ll.Step(*op.Step)
	case "reverse":
		ll.Reverse()
	default:
		return "", fmt.Errorf("unsupported list operation: %q", op.Op)
	}
	return "", nil
}
