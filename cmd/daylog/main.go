// Command daylog appends lines to daylog's daily log files from the shell,
// using the same configuration keys, file names and locking as the library.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	app := newApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "daylog: %v\n", err)
		os.Exit(1)
	}
}
