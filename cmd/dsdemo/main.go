// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command dsdemo demonstrates the heap and linked list containers. It
// can build either container from integers given on the command line or
// replay a YAML scenario of operations against one.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

const cmdSpec = `name: dsdemo
summary: demonstrate the heap and linked list containers
commands:
  - name: heap
    summary: build a heap from the supplied integers and print it
    arguments:
      - <value>
      - ...
  - name: list
    summary: build a linked list from the supplied integers, optionally slice, step or reverse it and print it
    arguments:
      - <value>
      - ...
  - name: run
    summary: replay the operations in a YAML scenario file against a heap or linked list
    arguments:
      - <scenario.yaml>
`

// CommonFlags are shared by all commands.
type CommonFlags struct {
	LogLevel string `subcmd:"log-level,info,'log level: debug, info, warn or error'"`
	Output   string `subcmd:"output,text,'output format: text or yaml'"`
}

type heapFlags struct {
	CommonFlags
	Mode string `subcmd:"mode,max,'heap mode: max or min'"`
}

type listFlags struct {
	CommonFlags
	Slice   string `subcmd:"slice,,'slice the list as start:end[:step] before printing it'"`
	Step    int    `subcmd:"step,0,'if non-zero, keep only every step-th value'"`
	Reverse bool   `subcmd:"reverse,false,reverse the list in place"`
}

type runFlags struct {
	CommonFlags
}

var cmdSet *subcmd.CommandSetYAML

func init() {
	cmdSet = subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("heap").MustRunnerAndFlags(
		func(ctx context.Context, values any, args []string) error {
			return heapCmd(ctx, os.Stdout, values.(*heapFlags), args)
		},
		subcmd.MustRegisteredFlagSet(&heapFlags{}))
	cmdSet.Set("list").MustRunnerAndFlags(
		func(ctx context.Context, values any, args []string) error {
			return listCmd(ctx, os.Stdout, values.(*listFlags), args)
		},
		subcmd.MustRegisteredFlagSet(&listFlags{}))
	cmdSet.Set("run").MustRunnerAndFlags(
		func(ctx context.Context, values any, args []string) error {
			return runCmd(ctx, os.Stdout, values.(*runFlags), args)
		},
		subcmd.MustRegisteredFlagSet(&runFlags{}))
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}

// withLogger returns a context carrying a JSON logger, writing to w, at
// the requested level.
func (cf CommonFlags) withLogger(ctx context.Context, w io.Writer) (context.Context, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cf.LogLevel)); err != nil {
		return ctx, fmt.Errorf("invalid --log-level: %w", err)
	}
	return ctxlog.NewJSONLogger(ctx, w, &slog.HandlerOptions{Level: level}), nil
}

func parseInts(args []string) ([]int, error) {
	values := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %v: %q is not an integer", i, a)
		}
		values[i] = v
	}
	return values, nil
}
