package main

import (
	"github.com/jxph/hls1024/cmd"
)

func main() {
	// Command-line flags are managed by Viper, so every flag can also be
	// set through the environment or a config file. Running:
	// $ ./hls1024 run --message "abc"
	// triggers the Run() function defined in cmd/run.go, where all of the
	// flags are defined as well.
	cmd.Execute()
}
