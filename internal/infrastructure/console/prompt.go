package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// readLines feeds lines from r to the returned channel until r is exhausted
// or done is closed. The channel is closed on exit. Each line read waits for
// a receiver, so lines are handed out in order across calls to Run.
func readLines(done <-chan struct{}, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		reader := bufio.NewReader(r)
		for {
			text, err := reader.ReadString('\n')
			if text != "" || err == nil {
				select {
				case <-done:
					return
				default:
				}
				select {
				case lines <- strings.TrimRight(text, "\r\n"):
				case <-done:
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return lines
}

// readLine waits for the next input line. It returns io.EOF once input is
// exhausted and the context error once ctx is done.
func (s *Shell) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

// ask prints a prompt and returns the trimmed answer
func (s *Shell) ask(ctx context.Context, format string, args ...any) (string, error) {
	s.palette.prompt.Fprintf(s.out, format, args...)
	line, err := s.readLine(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Shell) invalid(field string) {
	s.palette.errorText.Fprintf(s.out, "Invalid input for %s.\n", field)
}

// parseCount accepts a strictly positive integer
func parseCount(text string) (int, bool) {
	n, err := strconv.Atoi(text)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// parsePositive accepts a strictly positive finite number
func parsePositive(text string) (float64, bool) {
	f, ok := parseFinite(text)
	if !ok || f <= 0 {
		return 0, false
	}
	return f, true
}

// parseFinite accepts any finite number
func parseFinite(text string) (float64, bool) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
