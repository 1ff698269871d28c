// Package prompt asks line-oriented questions on a reader/writer pair.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Prompter reads answers from in and writes questions to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	question *color.Color
	hint     *color.Color
	problem  *color.Color
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:       bufio.NewReader(in),
		out:      out,
		question: color.New(color.Bold),
		hint:     color.New(color.FgCyan),
		problem:  color.New(color.FgRed),
	}
}

// Input asks a free-form question. An empty answer yields def.
func (p *Prompter) Input(prompt, def string) (string, error) {
	p.ask(prompt, def)
	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Select lists items and returns the index of the chosen one. Answers are
// 1-based; an empty answer yields def.
func (p *Prompter) Select(prompt string, items []string, def int) (int, error) {
	if len(items) == 0 {
		return 0, errors.New("select: no items")
	}
	if def < 0 || def >= len(items) {
		return 0, fmt.Errorf("select: default %d out of range", def)
	}

	fmt.Fprintf(p.out, "%s %s\n", p.hint.Sprint("?"), p.question.Sprint(prompt))
	for i, item := range items {
		marker := " "
		if i == def {
			marker = p.hint.Sprint(">")
		}
		fmt.Fprintf(p.out, "%s %d) %s\n", marker, i+1, item)
	}

	for {
		fmt.Fprintf(p.out, "  Choice %s ", p.hint.Sprintf("[%d]", def+1))
		answer, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return def, nil
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(items) {
			return n - 1, nil
		}
		p.problem.Fprintf(p.out, "  Please enter a number between 1 and %d\n", len(items))
	}
}

// Confirm asks a yes/no question. An empty answer yields def.
func (p *Prompter) Confirm(prompt string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	for {
		p.ask(prompt, hint)
		answer, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.problem.Fprintln(p.out, "  Please answer y or n")
	}
}

func (p *Prompter) ask(prompt, hint string) {
	fmt.Fprintf(p.out, "%s %s %s ", p.hint.Sprint("?"), p.question.Sprint(prompt), p.hint.Sprintf("(%s)", hint))
}

// readLine returns the next trimmed line. Input that ends without a final
// newline still counts as an answer; EOF with nothing read does not.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return "", fmt.Errorf("reading answer: %w", io.ErrUnexpectedEOF)
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
