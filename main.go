package main

import "github.com/ethwu/rn/cmd"

func main() {
	cmd.Execute()
}
