package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/goliatone/go-print"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	freeconnect "github.com/freeconnect/freeconnect-go"
)

func (a *App) loginCommand() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				fmt.Print("email: ")
				if _, err := fmt.Fscanln(cmd.InOrStdin(), &email); err != nil {
					return fmt.Errorf("cannot read email: %w", err)
				}
			}
			if password == "" {
				var err error
				if password, err = promptPassword("password: "); err != nil {
					return err
				}
			}

			session, err := a.auth.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			fmt.Println(styleTitle.Render("Signed in as ") + session.User.Name + styleFaint.Render(" ("+session.User.Role.String()+")"))
			if !a.store.Available() {
				fmt.Println(styleWarn.Render("note: no durable storage; this session ends with the process"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return cmd
}

func (a *App) registerCommand() *cobra.Command {
	var reg freeconnect.Registration
	var role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a marketplace account",
		Long:  "Create a marketplace account. Missing fields are collected interactively; registering does not sign you in.",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg.Role = freeconnect.Role(strings.ToLower(role))
			if reg.Name == "" || reg.Email == "" || reg.Password == "" {
				if err := registrationForm(&reg); err != nil {
					return err
				}
			}
			if reg.ConfirmPassword == "" {
				reg.ConfirmPassword = reg.Password
			}

			if err := a.auth.Register(cmd.Context(), reg); err != nil {
				return err
			}

			fmt.Println(styleTitle.Render("Account created.") + " Sign in with: freeconnect login --email " + reg.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&reg.Name, "name", "", "display name")
	cmd.Flags().StringVar(&reg.Email, "email", "", "account email")
	cmd.Flags().StringVar(&role, "role", "", "account role: client, freelancer, or admin")
	cmd.Flags().StringVar(&reg.Password, "password", "", "account password")
	return cmd
}

// registrationForm collects the registration fields interactively, with the
// same checks the Authenticator will re-run before the network call.
func registrationForm(reg *freeconnect.Registration) error {
	roleOptions := make([]huh.Option[freeconnect.Role], 0, len(freeconnect.GetAllRoles()))
	for _, r := range freeconnect.GetAllRoles() {
		roleOptions = append(roleOptions, huh.NewOption(r.String(), r))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&reg.Name).
				Validate(requiredField("name")),
			huh.NewInput().
				Title("Email").
				Value(&reg.Email).
				Validate(requiredField("email")),
			huh.NewSelect[freeconnect.Role]().
				Title("Role").
				Options(roleOptions...).
				Value(&reg.Role),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&reg.Password).
				Validate(func(s string) error {
					if len(s) < 6 {
						return fmt.Errorf("must be at least 6 characters")
					}
					return nil
				}),
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Value(&reg.ConfirmPassword),
		),
	)
	return form.Run()
}

func requiredField(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and clear stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.auth.Logout(cmd.Context())
			if err != nil {
				// Local state is already cleared; the backend failure is
				// informational.
				fmt.Println(styleWarn.Render("backend logout failed: ") + err.Error())
			}
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func (a *App) whoamiCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			session := a.broadcaster.Current()
			if !session.Authenticated() {
				fmt.Println("Not signed in.")
				return nil
			}

			if asJSON {
				fmt.Println(print.MaybePrettyJSON(session.User))
				return nil
			}

			u := session.User
			fmt.Println(styleTitle.Render(u.Name) + styleFaint.Render(" <"+u.Email+">"))
			fmt.Printf("role: %s  id: %d\n", u.Role, u.ID)

			if claims, err := session.Claims(); err == nil && claims.ExpiresAt != nil {
				fmt.Println(styleFaint.Render("token expires " + claims.ExpiresAt.Local().String()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the cached profile as JSON")
	return cmd
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("cannot read password: %w", err)
	}
	return string(raw), nil
}
