package cli

import (
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"pet-adoption/internal/domain/stats"
	"pet-adoption/internal/platform/httpclient"
)

// StatsCmd inicia sesión contra la API y muestra los indicadores del panel.
func StatsCmd() *cobra.Command {
	var (
		baseURL  string
		username string
		password string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard statistics from a running API",
		Long: `Log in as a staff user and print GET /api/stats.
The password can also come from ADMINCTL_PASSWORD.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("ADMINCTL_PASSWORD")
			}

			c, err := httpclient.New(baseURL, timeout)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if err := c.Login(ctx, username, password); err != nil {
				return fmt.Errorf("login: %w", err)
			}

			var st stats.StatsResponse
			if err := c.DoJSON(ctx, http.MethodGet, "/api/stats", nil, &st); err != nil {
				return fmt.Errorf("get stats: %w", err)
			}
			// la sesión no se reutiliza
			_ = c.DoJSON(ctx, http.MethodPost, "/api/auth/logout", nil, nil)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			rows := []struct {
				label string
				value int
			}{
				{"Total adopted", st.TotalAdopted},
				{"Current pets", st.CurrentPets},
				{"Active pets", st.ActivePets},
				{"Happy families", st.HappyFamilies},
				{"Applications today", st.TodayApplications},
				{"Adoptions this month", st.MonthlyAdoptions},
				{"Pending applications", st.PendingApplications},
				{"Pets under review", st.PendingPets},
			}
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%d\n", r.label, r.value)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "API base URL")
	cmd.Flags().StringVarP(&username, "username", "u", "admin", "staff username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "staff password (default: ADMINCTL_PASSWORD)")
	cmd.Flags().DurationVar(&timeout, "timeout", httpclient.DefaultTimeout, "request timeout")
	return cmd
}
