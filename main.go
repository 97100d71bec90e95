package main

import "github.com/mouse-blink/knave/cmd"

func main() {
	cmd.Execute()
}
