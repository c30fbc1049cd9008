package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"ruspy/interpreter-go/pkg/interpreter"
	"ruspy/interpreter-go/pkg/parser"
	"ruspy/interpreter-go/pkg/runtime"
)

const (
	historyFile = ".ruspy_history"
	promptMain  = ">>> "
	promptCont  = "... "
)

func cmdRepl() int {
	fmt.Fprintf(os.Stdout, "%s (type :quit to exit, :env to list bindings)\n", cliToolVersion)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	interp := interpreter.New()
	interp.SetStdout(os.Stdout)
	interp.SetStderr(os.Stderr)
	session := interp.NewSession()

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Fprintln(os.Stdout)
			return 0
		}
		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if replCommand(os.Stdout, session, trimmed) {
				return 0
			}
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		evalLine(os.Stdout, os.Stderr, session, code)
	}
}

// replCommand handles a colon command and reports whether the REPL should
// exit.
func replCommand(out io.Writer, session *interpreter.Session, cmd string) bool {
	switch strings.ToLower(cmd) {
	case ":quit", ":q", ":exit":
		return true
	case ":env":
		for _, name := range session.Bindings() {
			fmt.Fprintln(out, name)
		}
	default:
		fmt.Fprintln(out, "unknown command. Type :quit to exit.")
	}
	return false
}

// evalLine evaluates one REPL input and echoes any non-unit result.
func evalLine(out, errOut io.Writer, session *interpreter.Session, code string) {
	val, err := session.Eval(code)
	if err != nil {
		fmt.Fprintf(errOut, "%v\n", err)
		return
	}
	if val == nil || val.Kind() == runtime.KindNil {
		return
	}
	fmt.Fprintln(out, interpreter.Repr(val))
}

// readByParseProbe keeps prompting while the accumulated input is a valid
// prefix that ends too early, so blocks can span several lines.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		current := prompt
		if b.Len() > 0 {
			current = cont
		}
		line, err := ln.Prompt(current)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, perr := parser.ParseExpression(src); parser.IsIncomplete(perr) && strings.TrimSpace(line) != "" {
			continue
		}
		return src, true
	}
}
