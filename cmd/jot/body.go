package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readBody returns lines when given, otherwise reads stdin until EOF.
// An interactive terminal without lines yields an empty body.
func readBody(lines []string) ([]string, error) {
	if len(lines) > 0 {
		return lines, nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, nil
	}
	return scanLines(os.Stdin)
}

func scanLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// confirm asks a y/n question on stdout and reads the answer from stdin.
func confirm(message string) bool {
	fmt.Printf("%s (y/n): ", message)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		fmt.Println()
		return false
	}
	return strings.EqualFold(strings.TrimSpace(scanner.Text()), "y")
}
