package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/slowlang/bugs/analyze"
	"github.com/slowlang/bugs/statement"
)

func main() {
	countCmd := &cli.Command{
		Name:   "count",
		Action: countAct,
		Args:   cli.Args{},
	}

	statsCmd := &cli.Command{
		Name:   "stats",
		Action: statsAct,
		Args:   cli.Args{},
	}

	listCmd := &cli.Command{
		Name:   "list",
		Action: listAct,
	}

	app := &cli.Command{
		Name:        "bugs",
		Description: "bugs is a tool for analyzing BugsWorld robot programs",
		Commands: []*cli.Command{
			countCmd,
			statsCmd,
			listCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func countAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		s, err := sample(a)
		if err != nil {
			return errors.Wrap(err, "sample %v", a)
		}

		n := analyze.CountPrimitiveCalls(s)

		tlog.SpanFromContext(ctx).Printw("counted primitive calls", "sample", a, "count", n)

		fmt.Printf("%v: %d\n", a, n)
	}

	return nil
}

func statsAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		s, err := sample(a)
		if err != nil {
			return errors.Wrap(err, "sample %v", a)
		}

		n := analyze.CountPrimitiveCalls(s)
		d := analyze.Depth(s)

		tlog.SpanFromContext(ctx).Printw("stats", "sample", a, "primitive_calls", n, "depth", d)

		fmt.Printf("%v: primitive calls %d, depth %d\n", a, n, d)
	}

	return nil
}

func listAct(c *cli.Command) (err error) {
	names := make([]string, 0, len(samples))

	for name := range samples {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%v\n", name)
	}

	return nil
}

func sample(name string) (statement.Statement, error) {
	s, ok := samples[name]
	if !ok {
		return nil, errors.New("unknown sample (try list)")
	}

	tlog.V("samples").Printw("sample picked", "name", name, "kind", s.Kind(), "from", loc.Caller(1))

	// callers get their own copy, analyses are free to mutate it
	return statement.Clone(s), nil
}
