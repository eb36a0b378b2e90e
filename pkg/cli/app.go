// Package cli is the interactive console: a start screen for login and
// signup, a customer shell and an employee shell.
package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/employee"
	"github.com/amirasaad/banking/pkg/domain/individual"
	"github.com/amirasaad/banking/pkg/session"
)

// App drives one console session.
type App struct {
	svc    Services
	prompt *Prompter
	ui     *ui
	logger *slog.Logger
}

func New(svc Services, in io.Reader, out io.Writer, logger *slog.Logger) *App {
	return &App{
		svc:    svc,
		prompt: NewPrompter(in, out),
		ui:     newUI(out),
		logger: logger,
	}
}

// Run shows the start screen until the user logs in, exits or input ends.
// After a login it runs the matching shell and returns when that shell quits.
// Invalid answers print a hint and re-prompt.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("Credential handler started")
	a.ui.println("Welcome to the Banking Customer Portal! Please choose an option.")
	a.ui.println()
	a.ui.println("1: Existing customer login")
	a.ui.println("2: New customer setup")
	a.ui.println("3: Employee login")
	a.ui.println("4: Exit")
	a.ui.println()

	for {
		option, err := a.prompt.Line("Choose an option: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch strings.TrimSpace(option) {
		case "1":
			sess, err := a.customerLogin(ctx)
			if err != nil {
				return err
			}
			if sess != nil {
				return a.runCustomer(ctx, sess)
			}
		case "2":
			if err := a.newCustomer(ctx); err != nil {
				return err
			}
		case "3":
			emp, err := a.employeeLogin(ctx)
			if err != nil {
				return err
			}
			if emp != nil {
				return a.runEmployee(ctx, emp)
			}
		case "4":
			a.ui.println("Goodbye!")
			return nil
		default:
			a.ui.hintf("Please enter a valid option.")
		}
	}
}

func (a *App) credentials() (string, string, error) {
	username, err := a.prompt.Line("Enter Username: ")
	if err != nil {
		return "", "", err
	}
	password, err := a.prompt.Password("Enter Password: ")
	if err != nil {
		return "", "", err
	}
	return strings.TrimSpace(username), password, nil
}

// customerLogin returns a nil session when the attempt failed but the
// start screen should continue. Only input errors are returned.
func (a *App) customerLogin(ctx context.Context) (*session.Context, error) {
	username, password, err := a.credentials()
	if err != nil {
		return nil, err
	}
	sess, ok, err := a.svc.Auth.Login(ctx, username, password)
	var cfgErr *domain.ConfigurationError
	switch {
	case errors.As(err, &cfgErr):
		a.ui.failure(err)
		a.ui.hintf("Your accounts are not set up correctly. Please contact the bank.")
		return nil, nil
	case err != nil:
		a.ui.failure(err)
		a.ui.hintf("Login is unavailable right now. Please try again later.")
		return nil, nil
	case !ok:
		a.ui.hintf("User not found/invalid credentials. Please try again or complete new customer setup.")
		return nil, nil
	}
	return sess, nil
}

func (a *App) employeeLogin(ctx context.Context) (*employee.Employee, error) {
	username, password, err := a.credentials()
	if err != nil {
		return nil, err
	}
	emp, ok, err := a.svc.Auth.EmployeeLogin(ctx, username, password)
	if err != nil {
		a.ui.failure(err)
		a.ui.hintf("Login is unavailable right now. Please try again later.")
		return nil, nil
	}
	if !ok {
		a.ui.hintf("Employee not found/invalid credentials. Please try again.")
		return nil, nil
	}
	return emp, nil
}

func (a *App) newCustomer(ctx context.Context) error {
	var p individual.Params
	var ageText string
	for _, q := range []struct {
		prompt string
		dst    *string
		secret bool
	}{
		{"Create Username: ", &p.Username, false},
		{"Create Password: ", &p.Password, true},
		{"First name: ", &p.FirstName, false},
		{"Last Name: ", &p.LastName, false},
		{"Age: ", &ageText, false},
		{"Address: ", &p.Address, false},
	} {
		read := a.prompt.Line
		if q.secret {
			read = a.prompt.Password
		}
		answer, err := read(q.prompt)
		if err != nil {
			return err
		}
		if q.secret {
			*q.dst = answer
		} else {
			*q.dst = strings.TrimSpace(answer)
		}
	}

	age, err := strconv.Atoi(ageText)
	if err != nil {
		a.ui.failure(domain.NewValidationError("age_num", "must be a whole number"))
		a.ui.hintf("Input error, please ensure all responses are filled and that you are 18 years of age or older.")
		return nil
	}
	p.Age = age

	if _, err := a.svc.Auth.Signup(ctx, p); err != nil {
		a.ui.failure(err)
		if errors.Is(err, domain.ErrAlreadyExists) {
			a.ui.hintf("That username is taken. Please choose another one.")
		} else {
			a.ui.hintf("Input error, please ensure all responses are filled and that you are 18 years of age or older.")
		}
		return nil
	}
	a.ui.success("Account created! Please login using your new credentials.")
	return nil
}
