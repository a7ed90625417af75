package main

import (
	"github.com/mcoot/auctionclerk/internal/cli"
)

func main() {
	cli.Execute()
}
