// main is the entry point of the samplerate CLI.
package main

import (
	"github.com/huangsam/samplerate/cmd"
	"github.com/huangsam/samplerate/internal/contract"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}
	if err != nil {
		contract.LogFatal("Cannot run samplerate", err)
	}
}
