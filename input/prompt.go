package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Retry is printed after an answer that does not parse.
const Retry = "enter a number, e.g. 10000 or 1.5"

type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// AskLine prints prompt and returns the next line without surrounding space.
// io.EOF is returned once input is exhausted.
func (p *Prompter) AskLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// AskFloat keeps asking until the answer parses.
func (p *Prompter) AskFloat(prompt string) (float64, error) {
	for {
		line, err := p.AskLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := ParseFloat(line)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, Retry)
	}
}

// AskFloatDefault is AskFloat where an empty answer selects def.
func (p *Prompter) AskFloatDefault(prompt string, def float64) (float64, error) {
	for {
		line, err := p.AskLine(fmt.Sprintf("%s[%g] ", prompt, def))
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		if v, err := ParseFloat(line); err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, Retry)
	}
}
