package main

import (
	"github.com/xgr-network/facetkit/command/root"
)

func main() {
	root.NewRootCommand().Execute()
}
