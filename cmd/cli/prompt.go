package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	sizeQuestion   = "Enter file size with unit (e.g. 1MB, 1024KB, 100GB, 512B): "
	formatQuestion = "Choose file format (txt/csv): "
)

// prompter asks questions on out and reads one answer line each from in.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints question and returns the trimmed answer. A closed input yields
// whatever was typed before it, possibly nothing.
func (p *prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	answer, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(answer), nil
}
