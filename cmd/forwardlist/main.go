// Command forwardlist replays a scenario script of list operations and prints
// the resulting trace. Without a script, it runs the built-in demonstration.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/segmentio/forwardlist/scenario"
)

var scriptPath string
var verbose bool

func main() {
	flag.StringVar(&scriptPath, "script", "", "path to a TOML scenario script (runs the demonstration when empty)")
	flag.BoolVar(&verbose, "v", false, "log every step")
	flag.Parse()

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors: !isatty.IsTerminal(os.Stderr.Fd()),
	})
	logrus.SetLevel(logrus.InfoLevel)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	s := scenario.Demo()
	if scriptPath != "" {
		var err error
		if s, err = scenario.Load(scriptPath); err != nil {
			logrus.Fatalf("unable to load script: %s", err)
		}
	}

	r, err := scenario.Run(s, scenario.Options{Log: logrus.StandardLogger()})
	if r != nil {
		for _, line := range r.Trace {
			fmt.Println(line)
		}
	}
	if err != nil {
		logrus.Fatalf("script %q failed: %s", s.Name, err)
	}
}
