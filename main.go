package main

import "github.com/mouse-blink/codedoc/cmd"

func main() {
	cmd.Execute()
}
