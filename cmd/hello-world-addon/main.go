// Command hello-world-addon runs the hello world addon: its D-Bus service, its spokes,
// and a silent installation for testing outside of the installer.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/grandchild/hello_world"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	config, err := hello_world.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	root := newRootCommand(newApp(config))
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		return 2
	}
	return 0
}
