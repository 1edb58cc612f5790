package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/zephyrtronium/scicalc"
	"github.com/zephyrtronium/scicalc/keypad"
)

type keysCommand struct {
	args     []string
	rightPow bool
	degrees  bool
}

// run presses each key and prints the key and the display after it.
func (c *keysCommand) run(stdin io.Reader, out io.Writer) error {
	keys := c.args
	if len(keys) == 0 {
		sc := bufio.NewScanner(stdin)
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			keys = append(keys, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return err
		}
	}
	actions, err := keypad.Parse(keys)
	if err != nil {
		return err
	}

	var opts []scicalc.Option
	if c.rightPow {
		opts = append(opts, scicalc.RightAssociativePow())
	}
	st := keypad.New()
	st.Degrees = c.degrees
	w := bufio.NewWriter(out)
	defer w.Flush()
	for i, a := range actions {
		st = keypad.Reduce(st, a, opts...)
		fmt.Fprintf(w, "%s\t%s\n", keys[i], st.Display)
	}
	return nil
}
