package main

import "github.com/ryoumen0412/RollForge/cmd/rf/root"

func main() {
	root.Execute()
}
