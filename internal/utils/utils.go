package utils

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func ToInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("unable to convert %q to a number: %w", s, err)
	}

	return n, nil
}

// Fields parses a whitespace separated list of numbers. Runs of spaces are
// allowed, so "83 86  6 31" yields four numbers.
func Fields(s string) ([]int, error) {
	fields := strings.Fields(s)
	nums := make([]int, 0, len(fields))

	for _, field := range fields {
		n, err := ToInt(field)
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}

	return nums, nil
}

// ReadLines splits r into lines without their terminators. Windows line
// endings are accepted.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read input: %w", err)
	}

	return lines, nil
}
