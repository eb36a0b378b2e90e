package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strings"
)

// command is one verb of an interactive shell. run reports whether the
// shell should exit.
type command struct {
	name    string
	usage   string
	summary string
	run     func(ctx context.Context, args []string) bool
}

// shell is a line-oriented command loop in the spirit of a cmd.Cmd
// interpreter: a prompt, a help command and a set of verbs.
type shell struct {
	name     string
	commands map[string]command
	prompt   *Prompter
	ui       *ui
	logger   *slog.Logger
}

func newShell(name string, p *Prompter, u *ui, logger *slog.Logger, cmds ...command) *shell {
	s := &shell{
		name:     name,
		commands: make(map[string]command, len(cmds)+1),
		prompt:   p,
		ui:       u,
		logger:   logger,
	}
	for _, c := range cmds {
		s.commands[c.name] = c
	}
	s.commands["help"] = command{
		name:    "help",
		usage:   "help [command]",
		summary: "List available commands or show how to use one.",
		run: func(_ context.Context, args []string) bool {
			s.help(args)
			return false
		},
	}
	return s
}

// loop runs commands until one asks to exit or input ends.
func (s *shell) loop(ctx context.Context) error {
	s.logger.Info("Shell started", "shell", s.name)
	defer s.logger.Info("Shell ended", "shell", s.name)

	for {
		line, err := s.prompt.Line(">>")
		if errors.Is(err, io.EOF) {
			s.ui.println()
			return nil
		}
		if err != nil {
			return err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, ok := s.commands[strings.ToLower(fields[0])]
		if !ok {
			s.ui.hintf("*** Unknown command: %s. Type help to show available options.", fields[0])
			continue
		}
		if cmd.run(ctx, fields[1:]) {
			return nil
		}
	}
}

func (s *shell) help(args []string) {
	if len(args) > 0 {
		cmd, ok := s.commands[strings.ToLower(args[0])]
		if !ok {
			s.ui.hintf("*** No help on %s", args[0])
			return
		}
		s.ui.println(cmd.summary)
		s.ui.printf("Usage: %s\n\n", cmd.usage)
		return
	}
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	s.ui.println()
	s.ui.println("Documented commands (type help <command>):")
	s.ui.println(strings.Repeat("=", 42))
	for _, name := range names {
		s.ui.printf("  %-10s %s\n", name, s.commands[name].summary)
	}
	s.ui.println()
}
