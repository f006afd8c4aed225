package main

import (
	"flag"
	"strings"

	"go.uber.org/fx"

	"github.com/joshuarp/withdraw-review/internal/app"
)

var defaultBin string

func selectedModules(binValue string) []fx.Option {
	selected := strings.TrimSpace(strings.ToLower(binValue))

	switch selected {
	case "auth":
		return []fx.Option{
			app.AuthModule(),
		}
	case "review":
		return []fx.Option{
			app.ReviewModule(),
		}
	default:
		return []fx.Option{
			app.AuthModule(),
			app.ReviewModule(),
		}
	}
}

func main() {
	bin := flag.String("bin", defaultBin, "select module binary: auth|review (default: all)")
	flag.Parse()

	app.New(*bin, selectedModules(*bin)...).Run()
}
