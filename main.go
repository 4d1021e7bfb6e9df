package main

import (
	"os"

	"github.com/GoSitesAdmin/GoSitesAdmin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
