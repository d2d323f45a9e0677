// The main package for the quran-apps-edge executable.
package main

import (
	"github.com/itqan-dev/quran-apps-edge/cmd"
)

func main() {
	cmd.Execute()
}
