package main

import (
	"fmt"
	"os"

	"github.com/dately/dately-go/cmd/dately/app"
)

func main() {
	if err := app.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
