package main

import "killshot/cmd"

func main() {
	cmd.Execute()
}
