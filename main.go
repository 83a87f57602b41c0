package main

import "swipedeck/cmd"

func main() {
	cmd.Execute()
}
