// Command neo parses and compiles JavaScript for the neo virtual machine.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
