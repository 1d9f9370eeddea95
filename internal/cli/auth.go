package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bookwise/bookwise-cli/internal/pages"
)

// LoginCommand signs in and stores the identity locally.
type LoginCommand struct {
	Username string
	Password string
}

func NewLoginCommand() *LoginCommand {
	return &LoginCommand{}
}

func (cmd *LoginCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	fs.StringVar(&cmd.Username, "username", "", "Account username")
	fs.StringVar(&cmd.Password, "password", "", "Account password (prompted if omitted)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s login [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Sign in to Bookwise and store the session locally.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *LoginCommand) Run() error {
	var err error
	if cmd.Username, err = requireValue(cmd.Username, "Username: "); err != nil {
		return err
	}
	if cmd.Password, err = requireValue(cmd.Password, "Password: "); err != nil {
		return err
	}

	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	user, err := pages.Login(context.Background(), env.client, env.sessions, cmd.Username, cmd.Password)
	if err != nil {
		return err
	}

	fmt.Printf("Signed in as %s <%s>\n", user.Username, user.Email)
	return nil
}

// RegisterCommand creates an account and signs in.
type RegisterCommand struct {
	Username string
	Email    string
	Password string
}

func NewRegisterCommand() *RegisterCommand {
	return &RegisterCommand{}
}

func (cmd *RegisterCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	fs.StringVar(&cmd.Username, "username", "", "Desired username")
	fs.StringVar(&cmd.Email, "email", "", "Account email")
	fs.StringVar(&cmd.Password, "password", "", "Account password (prompted if omitted)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s register [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create a Bookwise account and sign in.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *RegisterCommand) Run() error {
	var err error
	if cmd.Username, err = requireValue(cmd.Username, "Username: "); err != nil {
		return err
	}
	if cmd.Email, err = requireValue(cmd.Email, "Email: "); err != nil {
		return err
	}
	if cmd.Password, err = requireValue(cmd.Password, "Password: "); err != nil {
		return err
	}

	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	user, err := pages.Register(context.Background(), env.client, env.sessions, cmd.Username, cmd.Email, cmd.Password)
	if err != nil {
		return err
	}

	fmt.Printf("Account created. Signed in as %s <%s>\n", user.Username, user.Email)
	return nil
}

// LogoutCommand ends the session.
type LogoutCommand struct{}

func NewLogoutCommand() *LogoutCommand {
	return &LogoutCommand{}
}

func (cmd *LogoutCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("logout", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s logout\n\nSign out and clear the stored session.\n", os.Args[0])
	}
	return fs.Parse(args)
}

func (cmd *LogoutCommand) Run() error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if err := pages.Logout(context.Background(), env.client, env.sessions); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

// WhoamiCommand prints the stored identity.
type WhoamiCommand struct{}

func NewWhoamiCommand() *WhoamiCommand {
	return &WhoamiCommand{}
}

func (cmd *WhoamiCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s whoami\n\nShow the signed-in user, if any.\n", os.Args[0])
	}
	return fs.Parse(args)
}

func (cmd *WhoamiCommand) Run() error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	user, err := env.sessions.Load()
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Println("Not signed in.")
		return nil
	}
	fmt.Printf("%s <%s> (id %s)\n", user.Username, user.Email, user.UserID)
	return nil
}
