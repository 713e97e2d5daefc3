package main

import "github.com/hyperion-dev/hyperion-site/cmd"

func main() {
	cmd.Execute()
}
