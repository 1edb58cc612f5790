package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/zephyrtronium/scicalc/server"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	// logger instance
	log = logrus.New()
)

// config file name kingpin.Value
// parses server configuration on value set
type serverConfigValue struct {
	s *server.Server // server instance
	v string         // configuration path
}

// set server's configuration file
func (f *serverConfigValue) Set(s string) error {
	f.v = s
	return f.s.ParseConfig(f.v)
}

// get server's configuration file
func (f *serverConfigValue) String() string {
	return f.v
}

func main() {
	app := kingpin.New("scicalc", "Scientific calculator.")
	app.Version(server.Version)
	app.HelpFlag.Short('h')

	var ev evalCommand
	evalCmd := app.Command("eval", "Evaluate expressions given as arguments or read from input.")
	evalCmd.Flag("in", "Input file, - for stdin (default stdin if no args given).").StringVar(&ev.in)
	evalCmd.Flag("lines", "Evaluate separate input lines as separate expressions.").Short('n').BoolVar(&ev.lines)
	evalCmd.Flag("right-pow", "Make ^ right-associative.").BoolVar(&ev.rightPow)
	evalCmd.Flag("lenient", "Ignore unmatched parentheses.").BoolVar(&ev.lenient)
	evalCmd.Flag("rpn", "Print each expression in postfix form.").BoolVar(&ev.rpn)
	evalCmd.Flag("verbose", "Print the cause of errors.").Short('v').BoolVar(&ev.verbose)
	evalCmd.Arg("expression", "Expressions to evaluate.").StringsVar(&ev.args)

	var kc keysCommand
	keysCmd := app.Command("keys", "Press calculator keys and print the display after each.")
	keysCmd.Flag("right-pow", "Make ^ right-associative.").BoolVar(&kc.rightPow)
	keysCmd.Flag("degrees", "Start in degrees mode.").BoolVar(&kc.degrees)
	keysCmd.Arg("key", "Key or button names (default whitespace-separated stdin).").StringsVar(&kc.args)

	srv := server.NewServer()
	serveCmd := app.Command("serve", "Start the REST server.")
	serveCmd.Flag("config", "Server configuration in YML format.").SetValue(&serverConfigValue{s: srv})
	serveCmd.Flag("address", "Address:port to listen on.").Short('l').StringVar(&srv.Config.ListenAddress)
	serveCmd.Flag("debug", "Run server in debug mode (more log messages).").Short('d').BoolVar(&srv.Config.DebugMode)
	serveCmd.Flag("logging", "Logging profile from the configuration.").StringVar(&srv.Config.Logging)

	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case evalCmd.FullCommand():
		if err := ev.run(os.Stdin, os.Stdout); err != nil {
			log.WithError(err).Fatal("eval failed")
		}

	case keysCmd.FullCommand():
		if err := kc.run(os.Stdin, os.Stdout); err != nil {
			log.WithError(err).Fatal("keys failed")
		}

	case serveCmd.FullCommand():
		if err := srv.Prepare(); err != nil {
			log.WithError(err).Fatal("failed to prepare server configuration")
		}
		if err := srv.ListenAndServe(); err != nil {
			log.WithError(err).Fatal("server failed")
		}
	}
}
