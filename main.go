package main

import "github.com/jsphweid/midnote/cmd"

func main() {
	cmd.Execute()
}
