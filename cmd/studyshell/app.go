package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jrsteele09/studyshell/api"
	"github.com/jrsteele09/studyshell/internal/config"
	"github.com/jrsteele09/studyshell/navigation"
	"github.com/jrsteele09/studyshell/session"
	"github.com/jrsteele09/studyshell/storage"
	"github.com/jrsteele09/studyshell/storage/filestore"
	"github.com/jrsteele09/studyshell/storage/memstore"
	"github.com/jrsteele09/studyshell/storage/redisstore"
)

// app wires the session, route table and API client shared by every command
type app struct {
	config    config.Config
	out       io.Writer
	holder    *session.Holder
	table     *navigation.Table
	navigator *navigation.Navigator
	client    *api.Client
	closers   []io.Closer
}

func newApp(c config.Config, out io.Writer) (*app, error) {
	store, closer, err := openStore(c)
	if err != nil {
		return nil, err
	}

	a := &app{
		config: c,
		out:    out,
		holder: session.New(store),
		table:  navigation.DefaultTable(),
	}
	if closer != nil {
		a.closers = append(a.closers, closer)
	}
	a.navigator = navigation.NewNavigator(a.table, navigation.NewAuthorizer(a.holder).Guard())
	a.client = api.NewClient(c.GetAPIBaseURL(), a.holder, api.WithTimeout(c.GetAPITimeout()))
	return a, nil
}

func (a *app) Close() error {
	for _, c := range a.closers {
		_ = c.Close()
	}
	return nil
}

func openStore(c config.Config) (storage.Store, io.Closer, error) {
	switch c.GetSessionStore() {
	case config.SessionStoreFile:
		return filestore.New(c.GetSessionFile()), nil, nil
	case config.SessionStoreMemory:
		return memstore.New(), nil, nil
	case config.SessionStoreRedis:
		s, err := redisstore.Open(c.GetRedisURL(), c.GetRedisPrefix())
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("unknown SESSION_STORE %q (want file, redis or memory)", c.GetSessionStore())
	}
}

func run(ctx context.Context, c config.Config, args []string) error {
	if len(args) == 0 {
		usage(os.Stderr)
		return fmt.Errorf("no command given")
	}

	cmd, ok := commands[args[0]]
	if !ok {
		usage(os.Stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}

	a, err := newApp(c, os.Stdout)
	if err != nil {
		return err
	}
	defer a.Close()

	return cmd.run(ctx, a, args[1:])
}
