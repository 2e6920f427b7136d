package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/storyku/internal/client/cli"
	"github.com/dmitrijs2005/storyku/internal/client/config"
	"github.com/dmitrijs2005/storyku/internal/flagx"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	root := cli.NewRootCommand(app)
	// config flags are consumed by config.LoadConfig
	root.SetArgs(flagx.RemoveArgs(os.Args[1:], []string{"-a", "-t", "-c", "-config"}))

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

}
