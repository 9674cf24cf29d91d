package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tablefront/tablefront-go/client"
	"github.com/tablefront/tablefront-go/internal/config"
)

var apiURL string
var debug bool
var cfg config.Config

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tablefront",
		Short: "Tablefront CLI for the restaurant-management backend",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env (if any) feeds the env vars envconfig reads below.
			_ = godotenv.Load()

			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			config.InitLogger()

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				os.Setenv("TABLEFRONT_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				config.SetLogLevel(cfg.Level())
			}

			if apiURL != "" {
				cfg.APIURL = apiURL
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Base URL of the backend (overrides TABLEFRONT_API_URL)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	// Sub-commands
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newListTablesCmd())
	rootCmd.AddCommand(newCheckAvailabilityCmd())
	rootCmd.AddCommand(newListMenuCmd())
	rootCmd.AddCommand(newListReservationsCmd())
	rootCmd.AddCommand(newMarkNotificationsReadCmd())
	rootCmd.AddCommand(newPingCmd())

	return rootCmd
}

// newClient builds an SDK client backed by the CLI's file token store so a
// login survives across invocations.
func newClient() *client.Client {
	return client.New(cfg.APIURL,
		client.WithTokenStore(client.NewFileTokenStore(cfg.TokenFile)),
		client.WithTimeout(cfg.HTTPTimeout),
	)
}

func cmdContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), 15*time.Second)
}

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				fmt.Fprint(os.Stderr, "Password: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil {
					return err
				}
				password = strings.TrimRight(line, "\r\n")
			}

			c := newClient()
			ctx, cancel := cmdContext(cmd)
			defer cancel()

			start := time.Now()
			resp, err := c.Login(ctx, client.Credentials{Email: email, Password: password})
			if err != nil {
				log.Error().Err(err).Str("email", email).Dur("elapsed", time.Since(start)).Msg("login failed")
				return err
			}

			fmt.Printf("Logged in as %s (%s)\n", resp.User.Name, resp.User.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and discard the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			ctx, cancel := cmdContext(cmd)
			defer cancel()

			// The local token is gone either way; a network failure only
			// means the backend session lingers until it expires.
			if err := c.Logout(ctx); err != nil {
				log.Warn().Err(err).Msg("backend logout failed; local session cleared")
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated account and token expiry",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			ctx, cancel := cmdContext(cmd)
			defer cancel()

			me, err := c.GetMe(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s> role=%s status=%s\n", me.Name, me.Email, me.Role, me.Status)

			if tok, ok := c.Tokens().Token(); ok {
				if exp := tokenExpiry(tok); !exp.IsZero() {
					fmt.Printf("token expires %s\n", exp.Format(time.RFC3339))
				}
			}
			return nil
		},
	}
}

// tokenExpiry decodes the JWT exp claim without verifying the signature. The
// token stays opaque to the SDK; this is display-only.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

func newListTablesCmd() *cobra.Command {
	var status string
	var capacity int

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List dining tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			ctx, cancel := cmdContext(cmd)
			defer cancel()

			tables, err := c.ListTables(ctx, client.ListTablesParams{Status: status, Capacity: capacity})
			if err != nil {
				return err
			}
			for _, t := range tables {
				fmt.Printf("#%d\tseats %d\t%s\t%s\n", t.Number, t.Capacity, t.Status, t.Location)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (available|occupied|reserved)")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "Minimum seat count")

	return cmd
}

func newCheckAvailabilityCmd() *cobra.Command {
	var date, at string
	var partySize int

	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Check which tables are free for a slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			ctx, cancel := cmdContext(cmd)
			defer cancel()

			resp, err := c.CheckAvailability(ctx, client.AvailabilityRequest{
				Date:      date,
				Time:      at,
				PartySize: partySize,
			})
			if err != nil {
				return err
			}
			if !resp.Available {
				fmt.Println("No tables available")
				return nil
			}
			for _, t := range resp.Tables {
				fmt.Printf("#%d\tseats %d\t%s\n", t.Number, t.Capacity, t.Location)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&at, "time", "", "Time, HH:MM (required)")
	cmd.Flags().IntVar(&partySize, "party-size", 2, "Party size")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}

func newListMenuCmd() *cobra.Command {
	var categoryID string
	var availableOnly bool

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "List menu items",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			ctx, cancel := cmdContext(cmd)
			defer cancel()

			items, err := c.ListMenuItems(ctx, client.ListMenuItemsParams{
				CategoryID:    categoryID,
				AvailableOnly: availableOnly,
			})
			if err != nil {
				return err
			}
			for _, it := range items {
				mark := " "
				if !it.Available {
					mark = "x"
				}
				fmt.Printf("[%s] %s\t%d.%02d\n", mark, it.Name, it.Price/100, it.Price%100)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryID, "category", "", "Filter by category ID")
	cmd.Flags().BoolVar(&availableOnly, "available", false, "Only available items")

	return cmd
}

func newListReservationsCmd() *cobra.Command {
	var date, status string

	cmd := &cobra.Command{
		Use:   "reservations",
		Short: "List reservations",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			ctx, cancel := cmdContext(cmd)
			defer cancel()

			rs, err := c.ListReservations(ctx, client.ListReservationsParams{Date: date, Status: status})
			if err != nil {
				return err
			}
			for _, r := range rs {
				fmt.Printf("%s\t%s\tparty of %d\t%s\n",
					r.StartsAt.Format("2006-01-02 15:04"), r.GuestName, r.PartySize, r.Status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Filter by date, YYYY-MM-DD")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status")

	return cmd
}

func newMarkNotificationsReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notifications-read",
		Short: "Mark all notifications as read",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			ctx, cancel := cmdContext(cmd)
			defer cancel()

			if err := c.MarkAllNotificationsRead(ctx); err != nil {
				return err
			}
			fmt.Println("All notifications marked read")
			return nil
		},
	}
}

func newPingCmd() *cobra.Command {
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check that the backend is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()

			probe := func() error {
				ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
				defer cancel()
				_, err := c.ListMenuCategories(ctx)
				if client.IsTransportError(err) {
					return err
				}
				// Any HTTP response, including an auth error, proves the
				// backend is up.
				return nil
			}

			if wait <= 0 {
				if err := probe(); err != nil {
					return err
				}
				fmt.Println("OK")
				return nil
			}

			// Retry with exponential backoff until the backend answers or
			// the wait budget runs out. The SDK itself never retries.
			bo := backoff.NewExponentialBackOff()
			bo.MaxElapsedTime = wait
			start := time.Now()
			err := backoff.RetryNotify(probe, backoff.WithContext(bo, cmd.Context()),
				func(err error, next time.Duration) {
					log.Debug().Err(err).Dur("retry_in", next).Msg("backend not ready")
				})
			if err != nil {
				return err
			}
			fmt.Printf("OK after %s\n", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().DurationVar(&wait, "wait", 0, "Keep retrying until the backend answers or this duration elapses")

	return cmd
}
