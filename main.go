package main

import "a11yaudit/cmd"

func main() {
	cmd.Execute()
}
