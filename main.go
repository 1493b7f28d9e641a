package main

import (
	"os"

	"movies-api/cmd"
)

// @title			Movies API Documentation
// @version		1.0
// @description	API documentation for the Movies API
// @contact.name	API Support
// @contact.email	support@example.com
// @BasePath		/
func main() {
	os.Exit(cmd.Execute())
}
