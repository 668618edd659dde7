package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skilllet/skilllet/internal/seed"
)

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in as a community user",
	Long: `Log in as one of the community users. There are no credentials;
login is a direct session assignment. Progress and bookmarks are global
across sessions and are not cleared on login or logout.`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the current session",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	user, ok := seed.UserByName(args[0])
	if !ok {
		names := make([]string, 0, len(seed.Users()))
		for _, u := range seed.Users() {
			names = append(names, u.Username)
		}
		return fmt.Errorf("unknown user %q (known users: %s)", args[0], strings.Join(names, ", "))
	}

	a.store.Login(user)
	fmt.Printf("Logged in as %s (%s)\n", user.Username, user.Email)
	if len(user.Badges) > 0 {
		fmt.Printf("Badges: %s\n", strings.Join(user.Badges, ", "))
	}
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if user, ok := a.store.CurrentUser(); ok {
		a.store.Logout()
		fmt.Printf("Logged out %s. Your progress and bookmarks are kept.\n", user.Username)
		return nil
	}
	fmt.Println("Not logged in.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	user, ok := a.store.CurrentUser()
	if !ok {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s (%s)\n", user.Username, user.Email)
	fmt.Printf("Member since %s\n", user.JoinedAt)
	if len(user.Badges) > 0 {
		fmt.Printf("Badges: %s\n", strings.Join(user.Badges, ", "))
	}
	return nil
}
