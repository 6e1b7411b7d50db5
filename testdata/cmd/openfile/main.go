// Command openfile holds the file named by its argument open until it is killed.
package main

import (
	"os"
	"time"
)

func main() {
	f, err := os.Open(os.Args[1])
	if err != nil {
		os.Exit(1)
	}
	defer f.Close()
	time.Sleep(time.Minute)
}
