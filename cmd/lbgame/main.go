package main

import "github.com/wavefall/leaderboard-go/internal/cli"

func main() {
	cli.Execute()
}
