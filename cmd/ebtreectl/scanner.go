package main

import (
	"bufio"
	"io"
)

// newLineScanner returns a closure that yields one line per call, the
// ok result false once the input is exhausted.
func newLineScanner(in io.Reader) func() (string, bool) {
	scanner := bufio.NewScanner(in)
	return func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}
}
