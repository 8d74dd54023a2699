package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/standup/internal/client/services"
	"github.com/dmitrijs2005/standup/internal/common"
)

// Login signs in through a provider's device flow.
func (a *App) Login(ctx context.Context, args []string) error {
	if len(args) != 1 || !common.IsKnownProvider(args[0]) {
		return usage("login <github|google>")
	}
	s, err := a.session.SignIn(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Signed in as %s\n", displayName(s))
	if !a.isOnline() {
		fmt.Fprintln(a.out, "Server is unreachable; entries stay local until it is back.")
	}
	return nil
}

// Guest keeps entries on this machine without signing in.
func (a *App) Guest(ctx context.Context, _ []string) error {
	if err := a.session.StartGuest(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Guest mode: entries are stored on this machine.")
	return nil
}

// Logout ends the session. Local entries are kept.
func (a *App) Logout(ctx context.Context, _ []string) error {
	if !a.isSignedIn() {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	if err := a.session.SignOut(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

func (a *App) Status(_ context.Context, _ []string) error {
	s := a.session.State()
	fmt.Fprintf(a.out, "Session: %s\n", displayName(s))
	fmt.Fprintf(a.out, "Storage: %s\n", a.entries.Backend())
	fmt.Fprintf(a.out, "Server:  %s (%s)\n", a.config.ServerEndpointAddr, a.mode())
	fmt.Fprintf(a.out, "Entries: %d\n", len(a.entries.List()))
	if err := a.entries.StreamErr(); err != nil {
		fmt.Fprintf(a.out, "Sync:    %v (showing last known entries)\n", err)
	}
	return nil
}

func displayName(s services.Session) string {
	if s.Identity == nil {
		return string(s.State)
	}
	name := s.Identity.DisplayName
	if name == "" {
		name = s.Identity.Email
	}
	if s.Identity.Email != "" && s.Identity.Email != name {
		name += " <" + s.Identity.Email + ">"
	}
	return name
}
