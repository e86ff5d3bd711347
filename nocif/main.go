// Command nocif runs a network interface on the standalone fabric.
package main

import "github.com/sarchlab/nocif/nocif/cmd"

func main() {
	cmd.Execute()
}
