package bumpversion

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime"
	"strings"
)

// Sink receives output records for the invoking pipeline.
type Sink interface {
	// Check reports whether outputs can be delivered at all. Run calls it
	// before writing any file.
	Check() error
	SetOutput(name string, value any) error
}

// NewSink returns a FileSink when cfg names an output file and a
// CommandSink writing to stdout otherwise.
func NewSink(cfg Config, stdout io.Writer) Sink {
	if cfg.OutputPath != "" {
		return &FileSink{Path: cfg.OutputPath}
	}
	return &CommandSink{W: stdout}
}

// FileSink appends heredoc style blocks to the file named by GITHUB_OUTPUT:
//
//	name<<delimiter_123
//	value
//	delimiter_123
type FileSink struct {
	Path string

	// Delimiter generates the heredoc marker. Defaults to randomDelimiter.
	Delimiter func() string
}

// Check fails with ErrEnvironment when no path is set or the file is missing.
func (s *FileSink) Check() error {
	if s.Path == "" {
		return fmt.Errorf("%w: unable to find environment variable for file command OUTPUT", ErrEnvironment)
	}
	if _, err := os.Stat(s.Path); err != nil {
		return fmt.Errorf("%w: missing file at path: %s", ErrEnvironment, s.Path)
	}
	return nil
}

func (s *FileSink) SetOutput(name string, value any) error {
	if err := s.Check(); err != nil {
		return err
	}

	gen := s.Delimiter
	if gen == nil {
		gen = randomDelimiter
	}
	msg, err := keyValueMessage(name, value, gen())
	if err != nil {
		return err
	}

	// Never create the file; the runner owns it.
	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("opening output file: %w", err)
	}
	if _, err := io.WriteString(f, msg+eol); err != nil {
		f.Close()
		return fmt.Errorf("writing output file: %w", err)
	}
	return f.Close()
}

// CommandSink writes the legacy "::set-output" workflow command.
type CommandSink struct {
	W io.Writer
}

func (s *CommandSink) Check() error { return nil }

func (s *CommandSink) SetOutput(name string, value any) error {
	v, err := commandValue(value)
	if err != nil {
		return err
	}
	cmd := fmt.Sprintf("::set-output name=%s::%s", escapeProperty(name), escapeData(v))
	if _, err := io.WriteString(s.W, eol+cmd+eol); err != nil {
		return fmt.Errorf("writing set-output command: %w", err)
	}
	return nil
}

var eol = lineEnding(runtime.GOOS)

func lineEnding(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

func randomDelimiter() string {
	return fmt.Sprintf("delimiter_%d", rand.Intn(100000))
}

// commandValue converts an output value to the string sent to the runner.
func commandValue(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("encoding output value: %w", err)
	}
	return string(data), nil
}

func keyValueMessage(name string, value any, delimiter string) (string, error) {
	v, err := commandValue(value)
	if err != nil {
		return "", err
	}
	if strings.Contains(name, delimiter) {
		return "", fmt.Errorf("%w: name should not contain the delimiter %q", ErrProtocolViolation, delimiter)
	}
	if strings.Contains(v, delimiter) {
		return "", fmt.Errorf("%w: value should not contain the delimiter %q", ErrProtocolViolation, delimiter)
	}
	return name + "<<" + delimiter + eol + v + eol + delimiter, nil
}

var (
	dataEscaper     = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")
	propertyEscaper = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A", ":", "%3A", ",", "%2C")
)

func escapeData(s string) string { return dataEscaper.Replace(s) }
func escapeProperty(s string) string { return propertyEscaper.Replace(s) }
