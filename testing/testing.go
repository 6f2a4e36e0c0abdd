// Command testing builds the shogi binary and smoke-tests it by piping
// a short USI command script through its stdin, checking that it comes
// back with a bestmove. cutechess-cli, the teacher's elo-match harness,
// only speaks UCI/xboard and has no USI support to match an engine
// against, so the opponent-vs-opponent tournament shape doesn't carry
// over; what's kept is the stage-then-drive-the-binary structure.
package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const smokeScript = `usi
isready
position startpos
go
d
quit
`

func main() {
	assert(stage())

	out, err := driveEngine(smokeScript)
	assert(err)

	if !strings.Contains(out, "bestmove") {
		fmt.Fprintln(os.Stderr, "testing: no bestmove in engine output")
		fmt.Fprintln(os.Stderr, out)
		os.Exit(1)
	}

	fmt.Println("testing: smoke test passed")
}

func stage() error {
	fmt.Print("info: staging engine... ")
	if err := run("go", "build", "-o", "./testing/stage/shogi", "."); err != nil {
		return err
	}
	fmt.Println("done.")
	return nil
}

func driveEngine(script string) (string, error) {
	cmd := exec.Command("./testing/stage/shogi")
	cmd.Stdin = strings.NewReader(script)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	return out.String(), err
}

func run(path string, args ...string) error {
	cmd := exec.Command(path, args...)

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

func assert(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
