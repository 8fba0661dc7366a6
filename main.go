package main

import (
	"os"

	"github.com/socioshare/socioshare/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
