package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dately/dately-go/client"
	"github.com/dately/dately-go/schema"
)

type loginCmd struct {
	Username string `short:"U" long:"username" required:"true" description:"account name"`
	Password string `short:"P" long:"password" required:"true" description:"account password"`
}

func (c *loginCmd) run(ctx context.Context, app *App) error {
	if _, err := app.client.Login(ctx, c.Username, c.Password); err != nil {
		return err
	}
	fmt.Println("logged in")
	return nil
}

type registerCmd struct {
	Username string `short:"U" long:"username" required:"true" description:"account name"`
	Password string `short:"P" long:"password" required:"true" description:"account password"`
	Name     string `short:"n" long:"name" description:"display name"`
}

func (c *registerCmd) run(ctx context.Context, app *App) error {
	profile, err := app.client.Register(ctx, &schema.RegistrationRequest{
		Username: c.Username,
		Password: c.Password,
		Name:     c.Name,
	})
	if err != nil {
		return err
	}
	fmt.Printf("registered %v (%v)\n", profile.Username, profile.ID)
	return nil
}

type logoutCmd struct{}

func (c *logoutCmd) run(ctx context.Context, app *App) error {
	return app.client.Logout(ctx)
}

type eventsCmd struct {
	Filter string `short:"f" long:"filter" default:"all" description:"event filter" choice:"all" choice:"owned" choice:"requested"`
}

func (c *eventsCmd) run(ctx context.Context, app *App) error {
	events, err := app.client.ListEvents(ctx, schema.EventFilter(c.Filter))
	if err != nil {
		return describeExpiry(err)
	}
	printEvents(events)
	return nil
}

type discoverCmd struct {
	Radius int `short:"r" long:"radius" description:"max distance in km"`
}

func (c *discoverCmd) run(ctx context.Context, app *App) error {
	events, err := app.client.Discover(ctx, client.WithRadius(c.Radius))
	if err != nil {
		return describeExpiry(err)
	}
	printEvents(events)
	return nil
}

type createCmd struct {
	Title       string   `short:"t" long:"title" required:"true" description:"event title"`
	Description string   `short:"d" long:"description" description:"event description"`
	When        string   `long:"when" description:"start time, RFC3339"`
	Images      []string `short:"i" long:"image" description:"image file to attach, repeatable"`
}

func (c *createCmd) run(ctx context.Context, app *App) error {
	event := &schema.Event{Title: c.Title, Description: c.Description}
	if c.When != "" {
		startsAt, err := time.Parse(time.RFC3339, c.When)
		if err != nil {
			return fmt.Errorf("invalid --when: %w", err)
		}
		event.StartsAt = &startsAt
	}
	created, err := app.client.CreateEvent(ctx, event)
	if err != nil {
		return describeExpiry(err)
	}
	fmt.Printf("created event %v\n", created.ID)
	if files := openFiles(c.Images); len(files) > 0 {
		defer closeFiles(files)
		uploaded, err := app.client.UploadEventImages(ctx, created.ID, files)
		if err != nil {
			return describeExpiry(err)
		}
		fmt.Printf("uploaded %v image(s)\n", len(uploaded))
	}
	return nil
}

type showCmd struct {
	Args struct {
		ID string `positional-arg-name:"event-id" required:"true"`
	} `positional-args:"true"`
}

func (c *showCmd) run(ctx context.Context, app *App) error {
	event, err := app.client.GetEvent(ctx, c.Args.ID)
	if err != nil {
		return describeExpiry(err)
	}
	fmt.Printf("%v\t%v\n", event.ID, event.Title)
	if event.Description != "" {
		fmt.Println(event.Description)
	}
	attendees, err := app.client.ListAttendees(ctx, event.ID)
	if err != nil {
		return describeExpiry(err)
	}
	for _, attendee := range attendees {
		fmt.Printf("  %v (%v)\n", attendee.Username, attendee.Status)
	}
	return nil
}

type attendCmd struct {
	Cancel bool `long:"cancel" description:"withdraw instead of requesting"`
	Args   struct {
		ID string `positional-arg-name:"event-id" required:"true"`
	} `positional-args:"true"`
}

func (c *attendCmd) run(ctx context.Context, app *App) error {
	var err error
	if c.Cancel {
		err = app.client.CancelAttendance(ctx, c.Args.ID)
	} else {
		err = app.client.RequestAttendance(ctx, c.Args.ID)
	}
	return describeExpiry(err)
}

type uploadCmd struct {
	EventID string `short:"e" long:"event" description:"target event; profile upload when omitted"`
	Args    struct {
		Files []string `positional-arg-name:"file" required:"1"`
	} `positional-args:"true"`
}

func (c *uploadCmd) run(ctx context.Context, app *App) error {
	files := openFiles(c.Args.Files)
	if len(files) == 0 {
		return fmt.Errorf("no readable files")
	}
	defer closeFiles(files)
	var uploaded []schema.ImageAsset
	var err error
	if c.EventID != "" {
		uploaded, err = app.client.UploadEventImages(ctx, c.EventID, files)
	} else {
		uploaded, err = app.client.UploadProfileImages(ctx, files)
	}
	if err != nil {
		return describeExpiry(err)
	}
	fmt.Printf("uploaded %v image(s)\n", len(uploaded))
	return nil
}

type profileCmd struct {
	Name string `short:"n" long:"name" description:"display name"`
	Bio  string `short:"b" long:"bio" description:"bio text"`
}

func (c *profileCmd) run(ctx context.Context, app *App) error {
	profile, err := app.client.UpdateProfile(ctx, &schema.UserProfile{Name: c.Name, Bio: c.Bio})
	if err != nil {
		return describeExpiry(err)
	}
	fmt.Printf("updated profile of %v\n", profile.Username)
	return nil
}

// openFiles opens the readable subset; unreadable paths are reported inline
// and skipped, device-level trouble never aborts the command.
func openFiles(paths []string) []client.File {
	var ret []client.File
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %v: %v\n", path, err)
			continue
		}
		ret = append(ret, client.File{Name: filepath.Base(path), Content: f})
	}
	return ret
}

func closeFiles(files []client.File) {
	for _, file := range files {
		if closer, ok := file.Content.(*os.File); ok {
			_ = closer.Close()
		}
	}
}

// describeExpiry rewrites an auth-expired failure as a logged-out hint
// instead of a literal error message.
func describeExpiry(err error) error {
	if errors.Is(err, schema.ErrAuthExpired) {
		return fmt.Errorf("session expired, run login again")
	}
	return err
}
