package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jrsteele09/studyshell/api"
	"github.com/jrsteele09/studyshell/internal/errors"
)

type command struct {
	name    string
	args    string
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

var commandList = []command{
	{name: "login", args: "-email E [-password P] [-redirect PATH]", summary: "sign in and store the token", run: loginCmd},
	{name: "signup", args: "-email E [-name N] [-password P]", summary: "create an account", run: signupCmd},
	{name: "logout", summary: "forget the stored token", run: logoutCmd},
	{name: "status", summary: "show the session state", run: statusCmd},
	{name: "open", args: "PATH", summary: "navigate to a page through the route guard", run: openCmd},
	{name: "routes", summary: "list the page routes", run: routesCmd},
	{name: "endpoints", summary: "list the API endpoints", run: endpointsCmd},
	{name: "header", summary: "print the authorization header as JSON", run: headerCmd},
	{name: "fetch", args: "stats|resources|resource|summary|cards [ID]", summary: "GET an API resource", run: fetchCmd},
	{name: "preview", summary: "serve the built frontend", run: previewCmd},
}

var commands = func() map[string]command {
	m := make(map[string]command, len(commandList))
	for _, c := range commandList {
		m[c.name] = c
	}
	return m
}()

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: studyshell <command> [arguments]")
	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range commandList {
		fmt.Fprintf(tw, "  %s %s\t%s\n", c.name, c.args, c.summary)
	}
	_ = tw.Flush()
}

func loginCmd(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (read from stdin when empty)")
	redirect := fs.String("redirect", "", "page to open after signing in")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pw, err := passwordOrStdin(*password)
	if err != nil {
		return err
	}
	if _, err := a.client.Login(ctx, api.Credentials{Email: *email, Password: pw}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed in")
	if err := a.holder.PersistError(); err != nil {
		fmt.Fprintf(a.out, "Warning: session kept for this run only: %s\n", err)
	}

	if *redirect == "" {
		return nil
	}
	return openCmd(ctx, a, []string{*redirect})
}

func signupCmd(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (read from stdin when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pw, err := passwordOrStdin(*password)
	if err != nil {
		return err
	}
	resp, err := a.client.Signup(ctx, api.SignupRequest{Name: *name, Email: *email, Password: pw})
	if err != nil {
		return err
	}
	if resp.Token != "" {
		fmt.Fprintln(a.out, "Account created, signed in")
		return nil
	}
	fmt.Fprintln(a.out, "Account created, run login to sign in")
	return nil
}

func logoutCmd(_ context.Context, a *app, _ []string) error {
	a.client.Logout()
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func statusCmd(_ context.Context, a *app, _ []string) error {
	if !a.holder.IsAuthenticated() {
		fmt.Fprintln(a.out, "Signed out")
		return nil
	}
	fmt.Fprintln(a.out, "Signed in")

	claims, err := a.holder.Claims()
	if err != nil {
		// opaque tokens carry nothing to show
		return nil
	}
	if claims.Subject != "" {
		fmt.Fprintf(a.out, "  subject: %s\n", claims.Subject)
	}
	if claims.ExpiresAt != nil {
		state := "valid until"
		if claims.Expired(time.Now()) {
			state = "expired at"
		}
		fmt.Fprintf(a.out, "  token %s %s (not verified, the API decides)\n", state, claims.ExpiresAt.Local().Format(time.RFC1123))
	}
	return nil
}

func openCmd(_ context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("open takes exactly one path")
	}
	res, err := a.navigator.Push(args[0])
	if err != nil {
		return err
	}
	if res.Redirected() {
		fmt.Fprintf(a.out, "redirect %s (%s)\n", res.Location.FullPath, res.Location.Route.Name)
		return nil
	}
	fmt.Fprintf(a.out, "allow %s (%s)\n", res.Location.FullPath, res.Location.Route.Name)
	return nil
}

func routesCmd(_ context.Context, a *app, _ []string) error {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPATH\tAUTH")
	for _, r := range a.table.Routes() {
		path := r.Path
		if r.OptionalTail {
			path += "?"
		}
		auth := "public"
		if r.RequiresAuth {
			auth = "required"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, path, auth)
	}
	return tw.Flush()
}

func endpointsCmd(_ context.Context, a *app, _ []string) error {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "BASE\t%s\n", a.client.BaseURL())
	for _, e := range api.Endpoints() {
		fmt.Fprintf(tw, "%s\t%s\n", e.Name, e.Path)
	}
	return tw.Flush()
}

func headerCmd(_ context.Context, a *app, _ []string) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(a.holder.AuthorizationHeader())
}

func fetchCmd(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("fetch needs a resource name")
	}
	id := ""
	if len(args) > 1 {
		id = args[1]
	}
	needID := func() error {
		if id == "" {
			return errors.Wrapf(errors.ErrInvalidRequest, "fetch %s needs an ID", args[0])
		}
		return nil
	}

	var (
		out json.RawMessage
		err error
	)
	switch args[0] {
	case "stats":
		out, err = a.client.Stats(ctx)
	case "resources":
		out, err = a.client.Resources(ctx, nil)
	case "resource":
		if err = needID(); err == nil {
			out, err = a.client.Resource(ctx, id)
		}
	case "summary":
		if err = needID(); err == nil {
			out, err = a.client.Summary(ctx, id)
		}
	case "cards":
		if err = needID(); err == nil {
			out, err = a.client.Cards(ctx, id)
		}
	default:
		return errors.Wrapf(errors.ErrUnknownEndpoint, "fetch %q", args[0])
	}
	if err != nil {
		return err
	}
	return printJSON(a.out, out)
}

func printJSON(w io.Writer, raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return errors.Wrapf(errors.ErrInvalidResponse, "print json: %v", err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func passwordOrStdin(pw string) (string, error) {
	if pw != "" {
		return pw, nil
	}
	fmt.Fprint(os.Stderr, "Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

