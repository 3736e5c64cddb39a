package main

import (
	"flag"

	"github.com/faiface/mainthread"
)

var (
	configPath = flag.String("config", "", "path to a yaml config file")
	headless   = flag.Bool("headless", false, "run without a window, reading arrow keys from the terminal")
)

func main() {
	flag.Parse()
	mainthread.Run(runBridge)
}
