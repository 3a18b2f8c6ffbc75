// Command javac-core is a thin CLI wrapper around pkg/driver: it forwards
// os.Args to Driver.Compile and exits with the resulting code.
package main

import (
	"os"

	"github.com/funvibe/javac-core/pkg/driver"
)

func main() {
	d := driver.Std()
	code := d.Compile(os.Args[1:])
	os.Exit(int(code))
}
