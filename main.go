// Package main is the entry point for the lolcoach CLI tool, which analyzes
// League of Legends match timelines and coaches one player on their mistakes.
package main

import "github.com/pable/go-lol-coach/cmd"

func main() {
	cmd.Execute()
}
