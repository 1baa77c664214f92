package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Confirm asks a yes/no question. On a real terminal it reads a single key
// in raw mode; otherwise it falls back to a line prompt.
func Confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err == nil {
			defer term.Restore(fd, old)

			var buf [1]byte
			if _, err := os.Stdin.Read(buf[:]); err != nil {
				fmt.Print("\r\n")
				return false
			}
			fmt.Printf("%c\r\n", buf[0])
			return buf[0] == 'y' || buf[0] == 'Y'
		}
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}
