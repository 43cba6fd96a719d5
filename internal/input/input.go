package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

type Kind int

const (
	Standard Kind = iota
	File
)

// Source is where the lines to search come from. Reader backs Standard and
// is usually os.Stdin; Path backs File.
type Source struct {
	Kind   Kind
	Path   string
	Reader io.Reader
}

func StandardInput(r io.Reader) Source { return Source{Kind: Standard, Reader: r} }

func FileInput(path string) Source { return Source{Kind: File, Path: path} }

// ForPath picks File when path is set and Standard otherwise.
func ForPath(path string, stdin io.Reader) Source {
	if path == "" {
		return StandardInput(stdin)
	}
	return FileInput(path)
}

func (s Source) String() string {
	switch s.Kind {
	case Standard:
		return "stdin"
	case File:
		return s.Path
	}
	return fmt.Sprintf("source(%d)", int(s.Kind))
}

// Read consumes the whole source and returns its lines with terminators
// stripped. Any failure aborts the read; there is no partial result.
func (s Source) Read() ([]string, error) {
	switch s.Kind {
	case Standard:
		if s.Reader == nil {
			return nil, &IOError{Op: "read", Path: "stdin", Kind: Other, Err: errors.New("no reader")}
		}
		lines, err := readLines(s.Reader)
		if err != nil {
			return nil, &IOError{Op: "read", Path: "stdin", Kind: classify(err), Err: err}
		}
		return lines, nil
	case File:
		return readFile(s.Path)
	}
	return nil, fmt.Errorf("unknown input kind: %d", int(s.Kind))
}

func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Kind: classify(err), Err: err}
	}
	defer f.Close()
	lines, err := readLines(f)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Kind: classify(err), Err: err}
	}
	return lines, nil
}

func readLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		s, err := br.ReadString('\n')
		if len(s) > 0 {
			lines = append(lines, trimEOL(s))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

func classify(err error) ErrorKind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	}
	return Other
}
