// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command divpow10bench tests the speed and correctness of the division of
// wide integers by powers of ten.
//
// Usage:
//
//    divpow10bench [flags] nInps [nIter]
//    divpow10bench [flags] div src n
//
// The first form runs three tests on nInps random inputs with different
// distributions of width and exponent. Each test checks the results against
// the reference divider, then reports the median time per call over nIter
// passes (default 17, always odd).
//
// The second form divides a single decimal number src by 10**n and prints
// the quotient and the remainder class.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"github.com/btcsuite/btclog"
	"github.com/davecgh/go-spew/spew"
	"github.com/db47h/divpow10"
	"github.com/pkg/errors"
)

var log = btclog.Disabled

type config struct {
	nInps   int
	nIter   int
	variant *divpow10.Variant
	seed    int64
	workers int
	level   btclog.Level

	// div mode
	div bool
	src divpow10.Uint256
	exp uint
}

const usage = `divpow10bench - test speed and correctness of division by powers of 10.
Usage:
divpow10bench [flags] nInps [nIter]
divpow10bench [flags] div src n
where
 nInps - # elements in test vector
 nIter - number of iterations. Default=17
 src   - decimal number to divide by 10**n
Flags:
`

func parseArgs(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("divpow10bench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	var (
		variant = fs.String("variant", divpow10.Uint224.String(), "division variant: uint224 or decimal68")
		seed    = fs.Int64("seed", 0, "random seed")
		workers = fs.Int("workers", runtime.GOMAXPROCS(0), "number of goroutines used to check results")
		level   = fs.String("log", "info", "log level: trace, debug, info, warn, error, critical or off")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	c := &config{nIter: 17, seed: *seed, workers: *workers}
	if c.variant = divpow10.VariantByName(*variant); c.variant == nil {
		return nil, errors.Errorf("unknown variant %q", *variant)
	}
	lvl, ok := btclog.LevelFromString(*level)
	if !ok {
		return nil, errors.Errorf("bad log level %q", *level)
	}
	c.level = lvl
	if c.workers < 1 {
		c.workers = 1
	}

	args = fs.Args()
	if len(args) == 0 {
		fs.Usage()
		return nil, flag.ErrHelp
	}
	if args[0] == "div" {
		return c, parseDiv(c, args[1:])
	}

	n, err := strconv.ParseInt(args[0], 0, 64)
	if err != nil {
		return nil, errors.Errorf("bad argument nInps=%q. Not a number", args[0])
	}
	if n < 1 || n > 1e8 {
		return nil, errors.Errorf("bad argument nInps=%q. Please specify number in range [1:100000000]", args[0])
	}
	c.nInps = int(n)
	if len(args) >= 2 {
		n, err = strconv.ParseInt(args[1], 0, 64)
		if err != nil {
			return nil, errors.Errorf("bad argument nIter=%q. Not a number", args[1])
		}
		if n < 3 || n > 1000 {
			return nil, errors.Errorf("bad argument nIter=%q. Please specify number in range [3:1000]", args[1])
		}
		c.nIter = int(n) | 1
	}
	return c, nil
}

func parseDiv(c *config, args []string) (err error) {
	if len(args) != 2 {
		return errors.New("div needs two arguments: src n")
	}
	c.div = true
	if c.src, err = divpow10.ParseUint256(args[0]); err != nil {
		return errors.Wrap(err, "bad argument src")
	}
	n, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil || n > divpow10.MaxExp {
		return errors.Errorf("bad argument n=%q. Please specify number in range [0:%d]", args[1], divpow10.MaxExp)
	}
	c.exp = uint(n)
	return nil
}

func main() {
	c, err := parseArgs(os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "divpow10bench: %v\n", err)
		os.Exit(1)
	}

	backend := btclog.NewBackend(os.Stderr)
	log = backend.Logger("DIVP")
	log.SetLevel(c.level)

	if c.div {
		err = divOne(os.Stdout, c)
	} else {
		err = run(context.Background(), os.Stdout, c)
	}
	if err != nil {
		log.Errorf("%+v", err)
		os.Exit(1)
	}
}

func divOne(w io.Writer, c *config) error {
	if !c.variant.Fits(&c.src, c.exp) {
		return errors.Errorf("%v / 10**%d: source out of range for %v", c.src, c.exp, c.variant)
	}
	q, cl := c.variant.Div(&c.src, c.exp)
	_, err := fmt.Fprintf(w, "%v %v\n", q, cl)
	return err
}

func run(ctx context.Context, w io.Writer, c *config) error {
	log.Infof("variant %v, %d inputs, %d iterations, seed %d", c.variant, c.nInps, c.nIter, c.seed)
	rng := newRand(c.seed)
	for i, gen := range generators {
		in := gen.fn(rng, c.variant, c.nInps)
		log.Debugf("test %d: %s", i+1, gen.name)
		if err := verify(ctx, c.variant, in, c.workers); err != nil {
			var m *mismatch
			if errors.As(err, &m) {
				log.Debugf("mismatch:\n%s", spew.Sdump(m))
			}
			return errors.Wrapf(err, "test %d (%s)", i+1, gen.name)
		}
		r := timeDiv(c.variant, in, c.nIter)
		fmt.Fprintf(w, "%.1f ns/call. %d usec total. Average scale %.2f.\n", r.nsPerCall, r.median.Microseconds(), r.avgExp)
		log.Debugf("ns/call p50 %.1f, p90 %.1f, max %.1f",
			float64(r.hist.ValueAtQuantile(50))/10, float64(r.hist.ValueAtQuantile(90))/10, float64(r.hist.Max())/10)
	}
	logCounters()
	return nil
}
