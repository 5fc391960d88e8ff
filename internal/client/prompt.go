package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"golang.org/x/term"
)

// terminalPrompter reads from stdin. Secrets are read with echo disabled
// when stdin is a terminal and as plain lines when it is piped.
type terminalPrompter struct {
	fd     int
	reader *bufio.Reader
	out    io.Writer
}

func newTerminalPrompter(in *os.File, out io.Writer) *terminalPrompter {
	return &terminalPrompter{
		fd:     int(in.Fd()),
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (p *terminalPrompter) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}
	return readLine(p.reader)
}

func (p *terminalPrompter) ReadSecret(prompt string) (string, error) {
	if !term.IsTerminal(p.fd) {
		return p.ReadLine(prompt)
	}

	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}
	secret, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return string(secret), nil
}

// readLine returns a partial last line on EOF.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
