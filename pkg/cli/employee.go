package cli

import (
	"context"
	"strings"

	"github.com/amirasaad/banking/pkg/domain/employee"
)

func (a *App) runEmployee(ctx context.Context, emp *employee.Employee) error {
	logger := a.logger.With("employee", emp.Username)
	search := func(ctx context.Context, args []string) bool {
		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			a.ui.hintf("Error. Please ensure you have searched according to the directions: search <username>")
			return false
		}
		found, err := a.svc.Directory.Search(ctx, query)
		if err != nil {
			a.ui.failure(err)
			a.ui.hintf("Error. The search could not be completed, please try again later.")
			return false
		}
		if len(found) == 0 {
			a.ui.println("No results found.")
			a.ui.println()
			return false
		}
		rows := make([][]string, 0, len(found))
		for _, ind := range found {
			rows = append(rows, []string{ind.ID.String(), ind.Username, ind.FirstName, ind.LastName, ind.Address})
		}
		a.ui.println("Found the following results:")
		a.ui.table([]string{"ID", "User name", "First name", "Last name", "Address"}, rows)
		a.ui.println()
		return false
	}

	sh := newShell("employee", a.prompt, a.ui, logger,
		command{
			name:    "search",
			usage:   "search <username>",
			summary: "Search for a member's details by username.",
			run:     search,
		},
		command{
			name:    "quit",
			usage:   "quit",
			summary: "Exit the program.",
			run:     func(context.Context, []string) bool { return true },
		},
	)

	a.ui.println(divider)
	a.ui.printf("Welcome to the employee dashboard. You are logged in as %s.\n", emp.Username)
	a.ui.println("Please type help to show available options.")
	sh.help(nil)
	return sh.loop(ctx)
}
