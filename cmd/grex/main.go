// Command grex matches a single pattern against one line of stdin, in the
// style of the POSIX grep -E flag: it reads one line, reports whether the
// pattern matches anywhere in it, and sets its exit code accordingly.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/nelup20/grex/regex"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run reports its diagnostics on stdout and exits 1, not 0, whenever it
// cannot even attempt a match: a missing -E, an unparsable flag set, a
// pattern that fails to compile, or a stdin read error. Only an attempted,
// completed match distinguishes 0 (matched) from 1 (did not).
func run(args []string, stdin *os.File, stdout *os.File) int {
	fs := flag.NewFlagSet("grex", flag.ContinueOnError)
	fs.SetOutput(stdout)
	pattern := fs.String("E", "", "extended regular expression to match")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *pattern == "" {
		fmt.Fprintln(stdout, "grex: -E PATTERN is required")
		return 1
	}

	re, err := regex.Compile(*pattern)
	if err != nil {
		fmt.Fprintf(stdout, "grex: %v\n", err)
		return 1
	}

	line, err := readLine(stdin)
	if err != nil {
		fmt.Fprintf(stdout, "grex: %v\n", err)
		return 1
	}

	if re.MatchString(line) {
		return 0
	}
	return 1
}

func readLine(r *os.File) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", nil
	}
	return strings.TrimSuffix(scanner.Text(), "\n"), nil
}
