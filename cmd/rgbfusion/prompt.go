package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dev.acmcsuf.com/rgbfusion"
	"github.com/chzyer/readline"
)

var errAborted = errors.New("aborted")

// prompter asks the user for missing parameters on the terminal.
type prompter struct {
	rl *readline.Instance
}

func newPrompter() (*prompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          " > ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &prompter{rl: rl}, nil
}

func (p *prompter) Close() error {
	return p.rl.Close()
}

func (p *prompter) out() io.Writer {
	return p.rl.Stdout()
}

func (p *prompter) readLine() (string, error) {
	line, err := p.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return "", errAborted
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// selectOne asks the user to pick one of the options, either by its index
// or by its name.
func (p *prompter) selectOne(name string, options []string) (string, error) {
	for {
		fmt.Fprintf(p.out(), "[%s] Please select a number:\n", name)
		for i, opt := range options {
			fmt.Fprintf(p.out(), "  [%d] %s\n", i, opt)
		}

		input, err := p.readLine()
		if err != nil {
			return "", err
		}

		if choice, ok := matchOption(input, options); ok {
			fmt.Fprintln(p.out())
			return choice, nil
		}

		fmt.Fprintf(p.out(), "Variant '%s' does not exist, please try again.\n\n", input)
	}
}

func matchOption(input string, options []string) (string, bool) {
	if i, err := strconv.Atoi(input); err == nil {
		if i >= 0 && i < len(options) {
			return options[i], true
		}
		return "", false
	}

	for _, opt := range options {
		if strings.EqualFold(opt, input) {
			return opt, true
		}
	}
	return "", false
}

// color asks the user for a color until a valid one is entered.
func (p *prompter) color() (rgbfusion.Color, error) {
	for {
		fmt.Fprintln(p.out(), "Please select a color (format: 0xRRGGBB):")

		input, err := p.readLine()
		if err != nil {
			return rgbfusion.Color{}, err
		}

		c, err := rgbfusion.ParseColor(input)
		if err == nil {
			fmt.Fprintln(p.out())
			return c, nil
		}

		fmt.Fprintf(p.out(), "Color '%s' does not match format 0xRRGGBB, please try again.\n\n", input)
	}
}

// confirm asks a yes/no question. Anything but "y" or "yes" is a no.
func (p *prompter) confirm(question string) (bool, error) {
	fmt.Fprintln(p.out(), question)
	p.rl.SetPrompt(" [y/N] > ")
	defer p.rl.SetPrompt(" > ")

	input, err := p.readLine()
	if err != nil {
		if errors.Is(err, errAborted) {
			return false, nil
		}
		return false, err
	}

	switch strings.ToLower(input) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
