package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/meghashyamc/bee/calc"
	"github.com/meghashyamc/bee/config"
	"github.com/meghashyamc/bee/logger"
	"github.com/meghashyamc/bee/sandbox"
)

var CLI struct {
	Env   string `help:"Configuration environment, selects config/config.<env>.yaml." env:"ENV"`
	Debug bool   `help:"Whether to enable debug logging."`

	Sandbox struct {
	} `cmd:"" default:"1" help:"Open the particle sandbox window."`

	Calc struct {
		Precision int      `help:"Float width in bits, 32 or 64." default:"64"`
		Op        string   `arg:"" name:"op" help:"One of neg, add, sub, mul, div, cmp."`
		Operands  []string `arg:"" name:"operands" help:"Scalars or comma separated vectors, e.g. 3,4. Put -- before negative operands."`
	} `cmd:"" help:"Evaluate one operation on scalars or vectors."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("bee"),
		kong.Description("immutable floating point scalars and vectors"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	cfg, err := config.Load(CLI.Env)
	if err != nil {
		writeError(fmt.Errorf("failed to load config: %w", err))
	}

	level := cfg.GetLogLevel()
	if CLI.Debug {
		level = "debug"
	}
	log := logger.New(level)

	switch {
	case strings.HasPrefix(ctx.Command(), "calc"):
		result, err := calc.Eval(CLI.Calc.Op, CLI.Calc.Precision, CLI.Calc.Operands)
		if err != nil {
			writeError(err)
		}
		fmt.Println(result)

	default:
		s, err := sandbox.NewSandbox(cfg, log)
		if err != nil {
			writeError(err)
		}
		if err := s.Run(); err != nil {
			slog.Error("error running sandbox", "err", err)
			os.Exit(1)
		}
	}
}
