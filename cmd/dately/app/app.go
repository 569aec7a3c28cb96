package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	dately "github.com/dately/dately-go"
	"github.com/dately/dately-go/auth"
	"github.com/dately/dately-go/client"
	"github.com/dately/dately-go/mock"
)

// Options is the CLI surface; service options come from flags, a yaml config
// or the environment, in that order of precedence.
type Options struct {
	dately.Options
	ConfigURL string `short:"c" long:"config" description:"yaml config URL"`
	EnvFile   string `long:"env" description:".env file loaded before the environment is read"`
	Demo      bool   `long:"demo" description:"run against an in-process mock service"`
}

type App struct {
	client  *client.Client
	authCtx *auth.Context
}

// Run parses args and dispatches to the selected command.
func Run(args []string) error {
	options := &Options{}
	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	ctx := context.Background()

	app := &App{}
	commands := []struct {
		name, short string
		data        interface{ run(ctx context.Context, app *App) error }
	}{
		{"login", "log in and persist the session token", &loginCmd{}},
		{"register", "create a new account", &registerCmd{}},
		{"logout", "discard the local session", &logoutCmd{}},
		{"events", "list events by filter", &eventsCmd{}},
		{"discover", "list joinable events", &discoverCmd{}},
		{"create", "create an event", &createCmd{}},
		{"show", "show one event with attendees", &showCmd{}},
		{"attend", "request to join an event", &attendCmd{}},
		{"upload", "upload images to an event or the profile", &uploadCmd{}},
		{"profile", "update the profile", &profileCmd{}},
	}
	for i := range commands {
		cmd := commands[i]
		if _, err := parser.AddCommand(cmd.name, cmd.short, "", cmd.data); err != nil {
			return err
		}
	}
	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}
	if parser.Active == nil {
		return fmt.Errorf("no command given")
	}
	if err := app.init(ctx, options); err != nil {
		return err
	}
	for _, cmd := range commands {
		if cmd.name == parser.Active.Name {
			return cmd.data.run(ctx, app)
		}
	}
	return fmt.Errorf("unknown command %v", parser.Active.Name)
}

func (a *App) init(ctx context.Context, options *Options) error {
	if options.EnvFile != "" {
		if err := godotenv.Load(options.EnvFile); err != nil {
			return fmt.Errorf("failed to load %v: %w", options.EnvFile, err)
		}
	} else {
		_ = godotenv.Load()
	}
	serviceOptions := &options.Options
	if options.ConfigURL != "" {
		loaded, err := dately.LoadOptions(ctx, options.ConfigURL)
		if err != nil {
			return err
		}
		serviceOptions = loaded
	}
	if serviceOptions.BaseURL == "" {
		serviceOptions.BaseURL = os.Getenv("DATELY_URL")
	}
	if serviceOptions.Store.Location == "" {
		serviceOptions.Store.Location = os.Getenv("DATELY_TOKEN_FILE")
	}
	if options.Demo {
		baseURL, err := startDemoService()
		if err != nil {
			return err
		}
		serviceOptions.BaseURL = baseURL
	}
	cli, authCtx, err := dately.New(ctx, serviceOptions)
	if err != nil {
		return err
	}
	a.client, a.authCtx = cli, authCtx
	return nil
}

// startDemoService runs the mock service on a loopback port for the
// lifetime of the process.
func startDemoService() (string, error) {
	service := mock.NewService(mock.WithUser("demo", "demo", "Demo User"))
	service.AddEvent(service.UserID("demo"), "coffee downtown")
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", err
	}
	go func() {
		_ = http.Serve(listener, service.Handler())
	}()
	return "http://" + listener.Addr().String(), nil
}
