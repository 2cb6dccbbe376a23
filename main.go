package main

import "github.com/smolder-dev/smolderctl/cmd"

func main() {
	cmd.Execute()
}
