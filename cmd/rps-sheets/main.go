package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Yogeshkumar786/All-RPS/commands"
)

var cli = []commands.Command{
	&commands.RunCmd,
	&commands.FetchCmd,
	&commands.PutCmd,
	&commands.VersionCmd,
}

var options = commands.Options{
	Debug: false,
}

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	// .env is optional - the scheduler supplies the environment directly
	godotenv.Load()

	cmd, err := parse(flag.Args())
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		usage()
		os.Exit(1)
	}

	if err := cmd.Execute(&options); err != nil {
		fmt.Fprintf(os.Stderr, "\n   ERROR: %v\n\n", err)
		os.Exit(1)
	}
}

// parse resolves the command line to a command. A scheduled invocation has no
// arguments and runs the full fetch/parse/upload pipeline.
func parse(args []string) (commands.Command, error) {
	if len(args) == 0 {
		return &commands.RunCmd, nil
	}

	if args[0] == "help" {
		if len(args) > 1 {
			for _, c := range cli {
				if c.Name() == args[1] {
					c.Help()
					os.Exit(0)
				}
			}

			return nil, fmt.Errorf("unknown command '%s'", args[1])
		}

		usage()
		os.Exit(0)
	}

	for _, c := range cli {
		if c.Name() == args[0] {
			if err := c.FlagSet().Parse(args[1:]); err != nil {
				return nil, err
			}

			return c, nil
		}
	}

	return nil, fmt.Errorf("unknown command '%s'", args[0])
}

func usage() {
	fmt.Println()
	fmt.Println("  Usage: rps-sheets [--debug] <command> [options]")
	fmt.Println()
	fmt.Println("  Commands:")
	fmt.Println()

	for _, c := range cli {
		fmt.Printf("    %-9s %s\n", c.Name(), c.Description())
	}

	fmt.Println()
	fmt.Println("  Invoked without a command, rps-sheets runs the full download/upload pipeline")
	fmt.Println("  ('rps-sheets run') - this is the form used by the scheduler.")
	fmt.Println()
}
