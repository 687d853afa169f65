package main

import (
	"github.com/ffcommunity/banwatch/internal/cli"
)

func main() {
	cli.Execute()
}
