// Command contentctl drives a running content engine server from the
// terminal and runs smoke checks against it.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
