package main

import (
	"flag"
	"io"
)

// Flags holds the command line settings of the server.
// ConfigPath names a YAML file; ListenAddr overrides server.listen_addr.
type Flags struct {
	ConfigPath string
	ListenAddr string
}

func parseFlags(args []string, output io.Writer) (*Flags, error) {
	fs := flag.NewFlagSet("carbon-compass", flag.ContinueOnError)
	fs.SetOutput(output)

	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to YAML configuration file")
	fs.StringVar(&f.ListenAddr, "listen", "", "Address to listen on (overrides configuration)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
