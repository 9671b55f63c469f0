package main

import "github.com/Mohsinsiddi/fixgen/cmd"

func main() {
	cmd.Execute()
}
