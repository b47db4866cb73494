// main.go
package main

import "github.com/markb/smg/cmd"

func main() {
	cmd.Execute()
}
