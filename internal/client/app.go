// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/dev-connector/internal/adapter"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/models"
)

var _ Client = (*App)(nil)

type App struct {
	server   adapter.ServerAdapter
	out      io.Writer
	commands map[string]command
	logger   *logger.Logger
}

// command is one CLI verb. args lists the names of its positional arguments;
// the last one may be "..." to swallow the rest of the line.
type command struct {
	args []string
	run  func(ctx context.Context, args []string) (any, error)
}

func NewApp(server adapter.ServerAdapter, out io.Writer, logger *logger.Logger) (*App, error) {
	if server == nil {
		return nil, errNilAdapter
	}

	a := &App{server: server, out: out, logger: logger}
	a.commands = a.registerCommands()
	return a, nil
}

func (a *App) registerCommands() map[string]command {
	return map[string]command{
		"register": {args: []string{"name", "email", "password"}, run: a.register},
		"login":    {args: []string{"email", "password"}, run: a.login},
		"me": {run: func(ctx context.Context, _ []string) (any, error) {
			return a.server.CurrentUser(ctx)
		}},
		"whoami":  {run: a.whoami},
		"version": {run: func(ctx context.Context, _ []string) (any, error) { return a.server.Version(ctx) }},
		"posts":   {run: func(ctx context.Context, _ []string) (any, error) { return a.server.ListPosts(ctx) }},
		"post": {args: []string{"text..."}, run: func(ctx context.Context, args []string) (any, error) {
			return a.server.CreatePost(ctx, models.PostRequest{Text: args[0]})
		}},
		"like": {args: []string{"post_id"}, run: func(ctx context.Context, args []string) (any, error) {
			return a.server.LikePost(ctx, args[0])
		}},
		"unlike": {args: []string{"post_id"}, run: func(ctx context.Context, args []string) (any, error) {
			return a.server.UnlikePost(ctx, args[0])
		}},
		"comment": {args: []string{"post_id", "text..."}, run: func(ctx context.Context, args []string) (any, error) {
			return a.server.AddComment(ctx, args[0], models.CommentRequest{Text: args[1]})
		}},
		"delete-post": {args: []string{"post_id"}, run: func(ctx context.Context, args []string) (any, error) {
			if err := a.server.DeletePost(ctx, args[0]); err != nil {
				return nil, err
			}
			return models.MessageResponse{Message: "post removed"}, nil
		}},
		"profiles": {run: func(ctx context.Context, _ []string) (any, error) { return a.server.ListProfiles(ctx) }},
		"profile": {args: []string{"user_id"}, run: func(ctx context.Context, args []string) (any, error) {
			return a.server.GetProfileByUserID(ctx, args[0])
		}},
	}
}

// Run executes args[0] with the remaining arguments and prints the result.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrNoCommand, a.Usage())
	}

	name := args[0]
	cmd, ok := a.commands[name]
	if !ok {
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, name, a.Usage())
	}

	cmdArgs, err := cmd.bind(args[1:])
	if err != nil {
		return fmt.Errorf("%s: %w, usage: %s", name, err, cmd.usage(name))
	}

	a.logger.Debug().Str("command", name).Msg("running command")
	result, err := cmd.run(ctx, cmdArgs)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return a.print(result)
}

// Usage lists every command with its arguments.
func (a *App) Usage() string {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("commands:\n")
	for _, name := range names {
		b.WriteString("  " + a.commands[name].usage(name) + "\n")
	}
	return b.String()
}

// bind checks the argument count. A trailing "..." argument joins every
// remaining word with a space.
func (c command) bind(args []string) ([]string, error) {
	if n := len(c.args); n > 0 && strings.HasSuffix(c.args[n-1], "...") {
		if len(args) < n {
			return nil, ErrWrongArgs
		}
		bound := append(args[:n-1:n-1], strings.Join(args[n-1:], " "))
		return bound, nil
	}

	if len(args) != len(c.args) {
		return nil, ErrWrongArgs
	}
	return args, nil
}

func (c command) usage(name string) string {
	parts := []string{name}
	for _, arg := range c.args {
		parts = append(parts, "<"+arg+">")
	}
	return strings.Join(parts, " ")
}

func (a *App) register(ctx context.Context, args []string) (any, error) {
	token, err := a.server.Register(ctx, models.RegisterRequest{Name: args[0], Email: args[1], Password: args[2]})
	if err != nil {
		return nil, err
	}
	return models.TokenResponse{Message: "user registered successfully", Token: token}, nil
}

func (a *App) login(ctx context.Context, args []string) (any, error) {
	token, err := a.server.Login(ctx, models.LoginRequest{Email: args[0], Password: args[1]})
	if err != nil {
		return nil, err
	}
	return models.TokenResponse{Message: "logged in successfully", Token: token}, nil
}

// whoami decodes the configured token locally, without asking the server.
func (a *App) whoami(context.Context, []string) (any, error) {
	token := a.server.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return map[string]string{"user_id": userID}, nil
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
