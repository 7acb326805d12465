package main

import (
	"github.com/karthickk/tmplutil/internal/commands"
)

var version = "dev"

func main() {
	commands.Execute(version)
}
