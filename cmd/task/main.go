// Command task is the CLI entrypoint.
package main

import (
	"os"

	"github.com/nibzard/task-go/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args[1:], os.Stdout, os.Stderr))
}
