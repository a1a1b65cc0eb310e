package main

import (
	"context"
	"fmt"
	"os"

	"github.com/keanyaoha/greenprint/internal/cli"
	"github.com/keanyaoha/greenprint/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps the result to an exit code.
// Split from main for testability.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
