/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package main

import (
	"os"

	"github.com/josephgoksu/task-cli/cmd"
	"github.com/josephgoksu/task-cli/internal/logger"
)

func main() {
	defer logger.HandlePanic()
	os.Exit(cmd.Execute())
}
