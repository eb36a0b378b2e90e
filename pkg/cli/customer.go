package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/session"
)

const historyLimit = 10

var errUsage = errors.New("expected <amount> <account>")

type customerShell struct {
	ledger LedgerService
	sess   *session.Context
	ui     *ui
	logger *slog.Logger
}

func (a *App) runCustomer(ctx context.Context, sess *session.Context) error {
	c := &customerShell{
		ledger: a.svc.Ledger,
		sess:   sess,
		ui:     a.ui,
		logger: a.logger.With("user", sess.User().Username),
	}
	sh := newShell("customer", a.prompt, a.ui, c.logger,
		command{
			name:    "statement",
			usage:   "statement",
			summary: "Get the balance statement on your accounts.",
			run:     c.statement,
		},
		command{
			name:    "deposit",
			usage:   "deposit <amount> <account>",
			summary: "Deposit money to an account (checking, savings or creditcard).",
			run:     c.deposit,
		},
		command{
			name:    "withdraw",
			usage:   "withdraw <amount> <account>",
			summary: "Withdraw money from an account (checking, savings or creditcard).",
			run:     c.withdraw,
		},
		command{
			name:    "history",
			usage:   "history <account>",
			summary: "Show the latest transactions of an account.",
			run:     c.history,
		},
		command{
			name:    "quit",
			usage:   "quit",
			summary: "Exit the program.",
			run:     func(context.Context, []string) bool { return true },
		},
	)

	a.ui.println(divider)
	a.ui.printf("Welcome to the customer dashboard. You are logged in as %s.\n", sess.User().Username)
	a.ui.println("Please type help to show available options.")
	sh.help(nil)
	return sh.loop(ctx)
}

func (c *customerShell) statement(context.Context, []string) bool {
	st := c.sess.Statement()
	c.ui.title("Assets")
	for _, l := range st.Assets {
		c.ui.printf("%s: %d\n", l.Kind, l.Balance)
	}
	c.ui.println()
	c.ui.title("Liabilities")
	for _, l := range st.Liabilities {
		c.ui.printf("%s: %d\n", l.Kind, l.Balance)
	}
	c.ui.println()
	return false
}

func (c *customerShell) deposit(ctx context.Context, args []string) bool {
	c.post(ctx, args, "depositing", c.ledger.Deposit)
	return false
}

func (c *customerShell) withdraw(ctx context.Context, args []string) bool {
	c.post(ctx, args, "withdrawing", c.ledger.Withdraw)
	return false
}

type postFunc func(ctx context.Context, sess *session.Context, kind string, amount int64) (*account.Transaction, error)

func (c *customerShell) post(ctx context.Context, args []string, verb string, fn postFunc) {
	amount, kind, err := parseAmountAccount(args)
	if err == nil {
		_, err = fn(ctx, c.sess, kind, amount)
	}
	if err != nil {
		c.ui.failure(err)
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, errUsage) {
			c.ui.hintf("Error. Please ensure you are %s an integer amount > 0 to an acceptable account.\n", verb)
		} else {
			c.ui.hintf("Error. The transaction was not saved, please try again later.\n")
		}
		return
	}
	acc, _ := c.sess.Account(kind)
	c.ui.success("Transaction successful. %s balance: %d\n", acc.Kind, acc.Balance())
}

func (c *customerShell) history(ctx context.Context, args []string) bool {
	if len(args) == 0 {
		c.ui.hintf("Usage: history <account>")
		return false
	}
	kind := strings.Join(args, " ")
	txs, err := c.ledger.History(ctx, c.sess, kind, historyLimit)
	if err != nil {
		c.ui.failure(err)
		c.ui.hintf("Acceptable accounts are checking, savings and creditcard.")
		return false
	}
	if len(txs) == 0 {
		c.ui.println("No transactions yet.")
		c.ui.println()
		return false
	}
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			tx.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			string(tx.Kind),
			strconv.FormatInt(tx.Amount, 10),
			tx.ID.String(),
		})
	}
	c.ui.table([]string{"Time", "Type", "Amount", "Transaction"}, rows)
	return false
}

// parseAmountAccount reads "<amount> <account>". The account name may
// contain spaces ("credit card").
func parseAmountAccount(args []string) (int64, string, error) {
	if len(args) < 2 {
		return 0, "", errUsage
	}
	amount, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("amount %q is not an integer: %w", args[0], errUsage)
	}
	return amount, strings.Join(args[1:], " "), nil
}
