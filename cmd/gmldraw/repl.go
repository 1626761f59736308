package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const replHelp = `Each line is one GML command string; state carries over between lines.
  :state   show cursor and pen state
  :show    render the drawing so far
  :reset   clear the drawing and the state
  :quit    leave (the drawing is rendered on exit)`

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Type GML command strings interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			metricsPath, _ := cmd.Flags().GetString("metrics")
			s, err := newSession(cfg, log)
			if err != nil {
				return err
			}

			in := newLineReader(cmd.InOrStdin())
			defer in.Close()
			if err := repl(s, in, cmd.OutOrStdout()); err != nil {
				return err
			}
			if err := s.flush(cmd.OutOrStdout()); err != nil {
				return err
			}
			return s.writeMetrics(metricsPath)
		},
	}
}

type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(line string)
	Close() error
}

// newLineReader uses liner for line editing on a terminal and plain line
// reading for pipes.
func newLineReader(r io.Reader) lineReader {
	if f, ok := r.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		l := liner.NewLiner()
		l.SetCtrlCAborts(true)
		return l
	}
	return &plainReader{scanner: bufio.NewScanner(r)}
}

type plainReader struct {
	scanner *bufio.Scanner
}

func (p *plainReader) Prompt(string) (string, error) {
	if p.scanner.Scan() {
		return p.scanner.Text(), nil
	}
	if err := p.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (p *plainReader) AppendHistory(string) {}

func (p *plainReader) Close() error { return nil }

func repl(s *session, in lineReader, out io.Writer) error {
	for {
		line, err := in.Prompt("gml> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		in.AppendHistory(line)

		switch line {
		case ":quit", ":q":
			return nil
		case ":help", ":h":
			fmt.Fprintln(out, replHelp)
		case ":state":
			fmt.Fprintln(out, s.interp.Context())
		case ":show":
			if err := s.flush(out); err != nil {
				return err
			}
		case ":reset":
			s.reset()
		default:
			s.interp.Run(line)
		}
	}
}
