package cli

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// prompter reads one answer per line. Malformed numbers are re-asked here so
// services only ever receive well-typed values.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{scanner: bufio.NewScanner(in), out: out}
}

// line returns the trimmed answer, or io.EOF once input is exhausted.
func (p *prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		fmt.Fprintln(p.out)
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

func (p *prompter) integer(label string) (int, error) {
	for {
		v, err := p.optionalInteger(label)
		if err != nil {
			return 0, err
		}
		if v != nil {
			return *v, nil
		}
		fmt.Fprintln(p.out, "A value is required.")
	}
}

// optionalInteger returns nil for an empty answer.
func (p *prompter) optionalInteger(label string) (*int, error) {
	for {
		answer, err := p.line(label)
		if err != nil {
			return nil, err
		}
		if answer == "" {
			return nil, nil
		}
		v, err := strconv.Atoi(answer)
		if err == nil {
			return &v, nil
		}
		fmt.Fprintln(p.out, "Please enter a whole number.")
	}
}

func (p *prompter) number(label string) (float64, error) {
	for {
		v, err := p.optionalNumber(label)
		if err != nil {
			return 0, err
		}
		if v != nil {
			return *v, nil
		}
		fmt.Fprintln(p.out, "A value is required.")
	}
}

func (p *prompter) optionalNumber(label string) (*float64, error) {
	for {
		answer, err := p.line(label)
		if err != nil {
			return nil, err
		}
		if answer == "" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(answer, 64)
		if err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return &v, nil
		}
		fmt.Fprintln(p.out, "Please enter a number.")
	}
}

func (p *prompter) optionalText(label string) (*string, error) {
	answer, err := p.line(label)
	if err != nil || answer == "" {
		return nil, err
	}
	return &answer, nil
}
