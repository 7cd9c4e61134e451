package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"libdb.so/ledsong"
	"libdb.so/ledsong/ledseq"
	"libdb.so/ledsong/songs"
)

var (
	config  = "ledsong.toml"
	device  = ""
	song    = ""
	dump    = ""
	list    = false
	once    = false
	verbose = false
)

func init() {
	pflag.StringVarP(&config, "config", "c", config, "configuration file")
	pflag.StringVarP(&device, "device", "d", device, "serial device, overrides the configuration")
	pflag.StringVarP(&song, "song", "s", song, "play only this song")
	pflag.StringVar(&dump, "dump", dump, "write the binary records of a song to stdout and exit")
	pflag.BoolVarP(&list, "list", "l", list, "list the built-in songs and exit")
	pflag.BoolVar(&once, "once", once, "play the playlist once even if looping is configured")
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "verbose output")
}

func main() {
	pflag.Parse()

	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	switch {
	case list:
		return listSongs()
	case dump != "":
		return dumpSong(dump)
	}

	cfg, err := readConfig()
	if err != nil {
		return err
	}

	if device != "" {
		cfg.Device = device
	}
	if song != "" {
		cfg.Playlist = []string{song}
	}
	if once {
		cfg.Loop = false
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	p, err := ledsong.NewPlayer(cfg, slog.Default())
	if err != nil {
		return errors.Wrap(err, "failed to create player")
	}

	if err := p.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "player failed")
	}

	return nil
}

func readConfig() (*ledsong.Config, error) {
	f, err := os.Open(config)
	if err != nil {
		// The default configuration file is optional.
		if errors.Is(err, fs.ErrNotExist) && !pflag.CommandLine.Changed("config") {
			slog.Debug("no configuration file, using defaults", "path", config)
			return &ledsong.Config{}, nil
		}
		return nil, errors.Wrap(err, "failed to open config file")
	}
	defer f.Close()

	return ledsong.ParseConfig(f)
}

func listSongs() error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEVENTS\tLENGTH\tSOURCE")
	for _, s := range songs.All() {
		length := time.Duration(s.Duration()) * time.Millisecond
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", s.Name, s.Len(), length, s.Source)
		for _, m := range s.Mapping {
			fmt.Fprintf(w, "\t\t\t  %s\n", m)
		}
	}
	return w.Flush()
}

func dumpSong(name string) error {
	s, ok := songs.Lookup(name)
	if !ok {
		return fmt.Errorf("no built-in song named %q", name)
	}
	return ledseq.WriteSequence(os.Stdout, s.Sequence())
}
