// Command slink clusters weighted graphs by single linkage.
package main

import "github.com/katalvlaran/slink/internal/cli"

func main() {
	cli.Execute()
}
