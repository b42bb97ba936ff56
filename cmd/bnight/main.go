package main

import (
	"github.com/mcoot/boardnight/internal/cli"
)

func main() {
	cli.Execute()
}
