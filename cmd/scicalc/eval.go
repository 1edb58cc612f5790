package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/zephyrtronium/scicalc"
)

type evalCommand struct {
	in       string
	args     []string
	lines    bool
	rightPow bool
	lenient  bool
	rpn      bool
	verbose  bool
}

func (c *evalCommand) options() []scicalc.Option {
	var opts []scicalc.Option
	if c.rightPow {
		opts = append(opts, scicalc.RightAssociativePow())
	}
	if c.lenient {
		opts = append(opts, scicalc.LenientBrackets())
	}
	return opts
}

// run evaluates every expression and prints one result per line. A failed
// expression prints Error and evaluation continues.
func (c *evalCommand) run(stdin io.Reader, out io.Writer) error {
	exprs, err := c.expressions(stdin)
	if err != nil {
		return err
	}
	opts := c.options()
	w := bufio.NewWriter(out)
	defer w.Flush()
	for _, expr := range exprs {
		if c.rpn {
			if p, err := scicalc.Compile(expr, opts...); err == nil {
				fmt.Fprintf(w, "%v : ", p)
			}
		}
		r, err := scicalc.EvaluateExpression(expr, opts...)
		if err != nil {
			if c.verbose {
				fmt.Fprintf(w, "%v: %v\n", err, errors.Unwrap(err))
			} else {
				fmt.Fprintln(w, err)
			}
			continue
		}
		fmt.Fprintln(w, scicalc.FormatDisplay(r))
	}
	return nil
}

// expressions collects expressions from arguments and the input file.
func (c *evalCommand) expressions(stdin io.Reader) ([]string, error) {
	var in io.Reader
	switch {
	case c.in != "" && c.in != "-":
		f, err := os.Open(c.in)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	case c.in == "-", len(c.args) == 0:
		in = stdin
	}

	var exprs []string
	if in != nil {
		b, err := ioutil.ReadAll(in)
		if err != nil {
			return nil, err
		}
		if c.lines {
			for _, line := range strings.Split(string(b), "\n") {
				if strings.TrimSpace(line) != "" {
					exprs = append(exprs, line)
				}
			}
		} else {
			exprs = append(exprs, string(b))
		}
	}
	return append(exprs, c.args...), nil
}
