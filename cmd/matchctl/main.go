package main

import (
	"fmt"
	"os"

	"github.com/gdugdh24/roommate-backend/internal/cli"
)

func main() {
	if err := cli.Execute(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "matchctl:", err)
		os.Exit(1)
	}
}
