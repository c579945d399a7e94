package main

import "github.com/maxvaer/urlprobe/cmd"

func main() {
	cmd.Execute()
}
