package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and sign in",
	RunE:  runRegister,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with an existing account",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored token",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE:  runWhoami,
}

func init() {
	registerCmd.Flags().String("name", "", "display name")
	registerCmd.Flags().String("email", "", "account email")
	registerCmd.Flags().String("password", "", "account password")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")

	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd)
}

func runRegister(cmd *cobra.Command, _ []string) error {
	container := newContainer(cmd.Context())

	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	creds, err := container.Auth.Register(cmd.Context(), name, email, password)
	if err != nil {
		return err
	}
	if err := container.Session.Login(creds.User, creds.Token); err != nil {
		return err
	}

	fmt.Printf("registered and signed in as %s <%s>\n", creds.User.Name, creds.User.Email)
	return nil
}

func runLogin(cmd *cobra.Command, _ []string) error {
	container := newContainer(cmd.Context())

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	creds, err := container.Auth.Login(cmd.Context(), email, password)
	if err != nil {
		return err
	}
	if err := container.Session.Login(creds.User, creds.Token); err != nil {
		return err
	}

	fmt.Printf("signed in as %s <%s>\n", creds.User.Name, creds.User.Email)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	container := newContainer(cmd.Context())
	container.Session.Logout(cmd.Context())

	fmt.Println("signed out")
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	container := newContainer(cmd.Context())

	current := container.Session.Session()
	if !current.IsAuthenticated() {
		fmt.Println("not signed in")
		return nil
	}

	fmt.Printf("%s <%s>\n", current.User.Name, current.User.Email)
	return nil
}
