package main

import "github.com/danyQe/mark2docx/cmd"

func main() {
	cmd.Execute()
}
