package main

import (
	"os"

	"github.com/defenseunicorns/uds-sarif-report/cmd"
)

// main function remains to call Execute.
func main() {
	cmd.Execute(os.Args[1:])
}
