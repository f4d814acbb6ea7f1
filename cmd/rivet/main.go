// Command rivet is a minimal REPL and file loader over the interp
// package, modeled on the teacher's own main()/ReadEvalPrintLoop. With
// no arguments it starts the interactive loop. With a file argument it
// loads that file and exits, unless a second argument "-" asks for the
// interactive loop afterwards.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rivet-scheme/rivet/interp"
	"github.com/rivet-scheme/rivet/parser"
)

func main() {
	it := interp.New()

	if len(os.Args) >= 2 {
		src, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if _, err := it.LoadString(string(src)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if len(os.Args) < 3 || os.Args[2] != "-" {
			return
		}
	}

	readEvalPrintLoop(it)
}

// readEvalPrintLoop reads one line at a time and evaluates it as soon
// as it forms a complete expression, printing the result unless it is
// void (matching the original's own "don't echo Void" REPL rule).
func readEvalPrintLoop(it *interp.Interpreter) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("rivet - an R5RS Scheme")
	var buf string
	fmt.Print("> ")
	for scanner.Scan() {
		buf += scanner.Text() + "\n"

		// Check completeness by parsing only, so a buffer spanning
		// several prompt lines is evaluated exactly once, not
		// re-evaluated (with duplicated side effects) on every retry.
		if incomplete, perr := stillReading(buf); perr != nil {
			fmt.Fprintln(os.Stderr, perr)
			buf = ""
			fmt.Print("> ")
			continue
		} else if incomplete {
			fmt.Print("| ")
			continue
		}

		result, err := it.LoadString(buf)
		buf = ""
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			fmt.Print("> ")
			continue
		}
		if !result.IsVoid() {
			fmt.Println(result)
		}
		fmt.Print("> ")
	}
	fmt.Println()
	fmt.Println("Goodbye")
}

// stillReading parses (but does not evaluate) every form in src. It
// reports incomplete=true when src ends in the middle of a list or
// vector, so the caller can keep collecting lines before ever handing
// the buffer to the evaluator.
func stillReading(src string) (incomplete bool, err error) {
	p := parser.New(src)
	for {
		expr, err := p.ReadExpression()
		if err != nil {
			if strings.Contains(err.Error(), "unexpected EOF inside") {
				return true, nil
			}
			return false, err
		}
		if expr.IsEof() {
			return false, nil
		}
	}
}
