package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// stdout carries search results, so every message goes to stderr.
var out io.Writer = os.Stderr
var logfile *os.File
var verbose bool

var (
	red  = color.New(color.FgRed)
	gray = color.New(color.FgHiBlack)
)

// Init mirrors messages into the file at path. An empty path disables the
// file log.
func Init(path string) error {
	Close()
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	logfile = f
	log.SetOutput(f)
	return nil
}

func Close() {
	if logfile != nil {
		_ = logfile.Close()
		logfile = nil
		log.SetOutput(io.Discard)
	}
}

// SetOutput redirects console messages, mainly for tests.
func SetOutput(w io.Writer) { out = w }

func Info(msg string) {
	_, _ = io.WriteString(out, msg+"\n")
	log.Println(msg)
}

func Error(msg string) {
	_, _ = red.Fprintln(out, msg)
	log.Println("[ERROR] " + msg)
}

// SetVerbose toggles debug output.
func SetVerbose(v bool) { verbose = v }

// Debug prints only when verbose mode is enabled.
func Debug(msg string) {
	if !verbose {
		return
	}
	_, _ = gray.Fprintln(out, msg)
	log.Println("[DEBUG] " + msg)
}
