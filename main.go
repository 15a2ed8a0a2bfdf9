package main

import "github.com/cmmoran/dx12gen/cmd"

func main() {
	cmd.Execute()
}
