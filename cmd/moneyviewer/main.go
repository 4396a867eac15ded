package main

import (
	"os"

	"github.com/Yashuu213/MoneyViewer/internal/cli"
	"github.com/Yashuu213/MoneyViewer/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	cli.Execute()
}
