package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Marketplace/internal/config"
)

// Dispatch выполняет команду из args (флаги уже разобраны config.NewConfig)
// и возвращает код выхода: 0 успех, 1 ошибка команды, 2 ошибка вызова.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	name := strings.ToLower(args[0])
	switch name {
	case "help", "-h", "--help":
		return help(args[1:])
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	rest := args[1:]
	if len(rest) == 1 && (rest[0] == "-h" || rest[0] == "--help") {
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return 0
	}

	err := c.Run(ctx, cfg, rest)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return 2
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return 1
	}
}

// help печатает общую справку или usage одной команды.
func help(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return 0
	}
	if c, ok := Get(args[0]); ok {
		fmt.Fprintf(Out, "%s\n\nUsage: %s\n", c.Description(), c.Usage())
		return 0
	}
	fmt.Fprintf(Out, "Unknown command: %s\n\n", args[0])
	fmt.Fprint(Out, FormatGlobalUsage())
	return 2
}
