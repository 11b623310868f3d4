/*
Package gtp talks to Go engines over the Go Text Protocol.

A command is a single line. The engine answers with "=" or "?", the
response text, and an empty line.*/
package gtp

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// ResponseError is a "?" answer from the engine
type ResponseError struct {
	Command string
	Message string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("gtp %q failed: %s", e.Command, e.Message)
}

// Client sends commands over a writer and reads answers from a reader.
// It is safe for concurrent use; commands are serialized.
type Client struct {
	mu sync.Mutex
	r  *bufio.Reader
	w  io.Writer
}

func NewClient(r io.Reader, w io.Writer) *Client {
	return &Client{r: bufio.NewReader(r), w: w}
}

// Query sends one command and returns the text of a successful response
func (c *Client) Query(command string, args ...string) (string, error) {
	line := strings.TrimSpace(strings.Join(append([]string{command}, args...), " "))
	if line == "" || strings.ContainsAny(line, "\r\n") {
		return "", errors.Errorf("gtp: bad command %q", line)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := io.WriteString(c.w, line+"\n"); err != nil {
		return "", errors.Wrapf(err, "gtp: write %q", command)
	}
	status, text, err := c.readResponse()
	if err != nil {
		return "", errors.Wrapf(err, "gtp: read %q", command)
	}
	if status == '?' {
		return "", &ResponseError{Command: line, Message: text}
	}
	return text, nil
}

// readResponse skips leading blank lines and reads up to the closing blank line
func (c *Client) readResponse() (byte, string, error) {
	var lines []string
	for {
		s, err := c.r.ReadString('\n')
		s = strings.TrimRight(s, "\r\n")
		if s == "" {
			if len(lines) > 0 {
				break
			}
			if err != nil {
				if err == io.EOF {
					err = io.ErrUnexpectedEOF
				}
				return 0, "", err
			}
			continue
		}
		lines = append(lines, s)
		if err == io.EOF {
			break
		} else if err != nil {
			return 0, "", err
		}
	}

	first := lines[0]
	status := first[0]
	if status != '=' && status != '?' {
		return 0, "", errors.Errorf("malformed response %q", first)
	}
	// drop the status and an optional command id
	first = strings.TrimLeft(first[1:], "0123456789")
	lines[0] = strings.TrimSpace(first)
	return status, strings.TrimSpace(strings.Join(lines, "\n")), nil
}
