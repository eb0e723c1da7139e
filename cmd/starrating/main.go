// Command starrating renders, previews and serves the star rating widget.
package main

import (
	"os"

	"github.com/gogpu/starrating/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
