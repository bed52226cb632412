package main

import "github.com/josephlewis42/batchsh/cmd"

func main() {
	cmd.Execute()
}
