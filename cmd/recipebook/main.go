// Command recipebook is an interactive console recipe manager
package main

import "github.com/alchemorsel/recipebook/internal/cli"

func main() {
	cli.Execute()
}
