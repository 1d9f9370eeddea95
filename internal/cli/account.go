package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bookwise/bookwise-cli/internal/api"
	"github.com/bookwise/bookwise-cli/internal/pages"
)

// AccountUpdateCommand changes the profile and/or password of the signed-in
// user.
type AccountUpdateCommand struct {
	Username        string
	Email           string
	CurrentPassword string
	NewPassword     string
}

func NewAccountUpdateCommand() *AccountUpdateCommand {
	return &AccountUpdateCommand{}
}

func (cmd *AccountUpdateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("account-update", flag.ExitOnError)
	fs.StringVar(&cmd.Username, "username", "", "New username")
	fs.StringVar(&cmd.Email, "email", "", "New email")
	fs.StringVar(&cmd.NewPassword, "new-password", "", "New password")
	fs.StringVar(&cmd.CurrentPassword, "password", "", "Current password, required to confirm changes (prompted if omitted)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s account-update [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Update your profile. At least one of -username, -email or\n")
		fmt.Fprintf(os.Stderr, "-new-password must be given.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Username == "" && cmd.Email == "" && cmd.NewPassword == "" {
		return fmt.Errorf("at least one of -username, -email or -new-password is required")
	}
	return nil
}

func (cmd *AccountUpdateCommand) Run() error {
	var err error
	if cmd.CurrentPassword, err = requireValue(cmd.CurrentPassword, "Current password: "); err != nil {
		return err
	}

	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	params := api.UpdateUserParams{
		Username:        cmd.Username,
		Email:           cmd.Email,
		CurrentPassword: cmd.CurrentPassword,
	}
	if cmd.NewPassword != "" {
		params.OldPassword = cmd.CurrentPassword
		params.NewPassword = cmd.NewPassword
	}

	user, err := pages.UpdateProfile(context.Background(), env.client, env.sessions, params)
	if err != nil {
		return err
	}
	fmt.Printf("Profile updated: %s <%s>\n", user.Username, user.Email)
	return nil
}

// AccountDeleteCommand deletes the signed-in user's account.
type AccountDeleteCommand struct {
	Password string
	Yes      bool
}

func NewAccountDeleteCommand() *AccountDeleteCommand {
	return &AccountDeleteCommand{}
}

func (cmd *AccountDeleteCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("account-delete", flag.ExitOnError)
	fs.StringVar(&cmd.Password, "password", "", "Current password (prompted if omitted)")
	fs.BoolVar(&cmd.Yes, "yes", false, "Skip the confirmation prompt")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s account-delete [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Delete your account, including likes and ratings.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *AccountDeleteCommand) Run() error {
	if !cmd.Yes {
		answer, err := promptLine("This permanently deletes your account. Type 'yes' to continue: ")
		if err != nil {
			return err
		}
		if answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	var err error
	if cmd.Password, err = requireValue(cmd.Password, "Current password: "); err != nil {
		return err
	}

	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if err := pages.DeleteAccount(context.Background(), env.client, env.sessions, cmd.Password); err != nil {
		return err
	}
	fmt.Println("Account deleted.")
	return nil
}
