// Command autumn is the REPL and script runner.
// It is grounded on daios-ai-msg's cmd/msg/main.go: a liner-backed
// prompt loop with persistent history, plus a one-shot file-running
// mode, adapted to this language's parse/eval pair instead of
// daios-ai-msg's ParseSExpr/EvalPersistentSource.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/defined1007/autumn"
)

const (
	appName     = "autumn"
	historyFile = ".autumn_history"
	promptMain  = ">> "
)

var banner = "autumn REPL. Ctrl+C cancels input, Ctrl+D exits."

func main() {
	file := flag.String("file", "", "run a script file instead of starting the REPL")
	flag.Parse()

	if *file != "" {
		os.Exit(runFile(*file))
	}
	os.Exit(runRepl())
}

func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, path, err)
		return 1
	}

	text := string(src)
	prog, perrs := autumn.Parse(text)
	if len(perrs) > 0 {
		for _, pe := range perrs {
			fmt.Fprintln(os.Stderr, autumn.WrapErrorWithName(&pe, path, text))
		}
		return 1
	}

	env := autumn.NewEnvironment()
	result := autumn.Eval(prog, env)
	if result != nil && result.Type() == autumn.ERROR_OBJ {
		fmt.Fprintln(os.Stderr, result.Inspect())
		return 1
	}
	return 0
}

func runRepl() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	env := autumn.NewEnvironment()

	for {
		line, ok := readLine(ln)
		if !ok {
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		prog, perrs := autumn.Parse(line)
		if len(perrs) > 0 {
			for _, pe := range perrs {
				fmt.Fprintln(os.Stderr, autumn.WrapErrorWithSource(&pe, line))
			}
			ln.AppendHistory(line)
			continue
		}

		result := autumn.Eval(prog, env)
		fmt.Println(autumn.Inspect(result))
		ln.AppendHistory(line)
	}
}

func readLine(ln *liner.State) (string, bool) {
	line, err := ln.Prompt(promptMain)
	if errors.Is(err, io.EOF) {
		return "", false
	}
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", true
	}
	if err != nil {
		return "", false
	}
	return line, true
}
