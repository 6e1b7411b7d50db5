// Command rotatelog copies standard input to a file and rotates the file by size.
//
//	some-daemon 2>&1 | rotatelog --max-file-size 1048576 --max-rotations 3 /var/log/daemon.log
package main

import (
	"os"

	"github.com/kei2100/rotatelog/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
