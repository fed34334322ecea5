package main

import (
	"github.com/outofforest/build"

	commands "github.com/outofforest/nvram/build"
)

func main() {
	build.Main("nvram", commands.Commands)
}
