package main

import "github.com/khanhnv2901/deepscan/cmd"

var execCmd = cmd.Execute

func main() {
	execCmd()
}
