package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/neuraplan/internal/calendar"
	"github.com/sandeepkv93/neuraplan/internal/model"
	"github.com/sandeepkv93/neuraplan/internal/schedule"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeMove   Type = "move"
	TypeDone   Type = "done"
	TypeDelete Type = "delete"
	TypeWeek   Type = "week"
	TypeGoto   Type = "goto"
)

var aliases = map[string]Type{
	"rm":     TypeDelete,
	"del":    TypeDelete,
	"toggle": TypeDone,
	"mv":     TypeMove,
	"go":     TypeGoto,
}

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func invalid(format string, args ...any) error {
	return &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// AddArgs is parsed from `add <title> [@date] [#domain] [!priority] [~slot]`.
// Date is empty for today, or a day reference for calendar.ResolveDay.
type AddArgs struct {
	Title    string
	Date     string
	Domain   model.DomainID
	Priority model.Priority
	Slot     string
}

// MoveArgs targets either a day reference (a date key or a word like
// tomorrow) or a day offset like +1.
type MoveArgs struct {
	Target string
	Date   string
	Shift  int
}

func (a MoveArgs) Relative() bool { return a.Date == "" }

type TargetArgs struct {
	Target string
}

// WeekArgs holds a zero-based week, or a delta when Relative is set.
type WeekArgs struct {
	Week     int
	Delta    int
	Relative bool
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Move   *MoveArgs
	Done   *TargetArgs
	Delete *TargetArgs
	Week   *WeekArgs
	Goto   *TargetArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]
	typ := Type(head)
	if alias, ok := aliases[head]; ok {
		typ = alias
	}

	switch typ {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeMove:
		return parseMove(input, args)
	case TypeDone, TypeDelete, TypeGoto:
		return parseTarget(typ, input, args)
	case TypeWeek:
		return parseWeek(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	out := AddArgs{Domain: model.DomainCoding, Priority: model.PriorityMedium}
	title := make([]string, 0, len(args))
	for _, arg := range args {
		switch {
		case len(arg) > 1 && arg[0] == '@':
			key := strings.ToLower(arg[1:])
			if !calendar.IsDayRef(key) {
				return Command{}, invalid("bad date %q, want YYYY-MM-DD, today, tomorrow or yesterday", arg[1:])
			}
			if key == "today" {
				key = ""
			}
			out.Date = key
		case len(arg) > 1 && arg[0] == '#':
			id, err := model.ParseDomainID(arg[1:])
			if err != nil {
				return Command{}, invalid("unknown domain %q", arg[1:])
			}
			out.Domain = id
		case len(arg) > 1 && arg[0] == '!':
			p, err := model.ParsePriority(arg[1:])
			if err != nil {
				return Command{}, invalid("unknown priority %q", arg[1:])
			}
			out.Priority = p
		case len(arg) > 1 && arg[0] == '~':
			out.Slot = arg[1:]
		default:
			title = append(title, arg)
		}
	}
	out.Title = strings.TrimSpace(strings.Join(title, " "))
	if out.Title == "" {
		return Command{}, invalid("add requires a title")
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &out}, nil
}

func parseMove(raw string, args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, invalid("move requires a task id and a date or +N/-N")
	}
	out := MoveArgs{Target: args[0]}
	when := args[1]
	if when[0] == '+' || when[0] == '-' {
		n, err := strconv.Atoi(when)
		if err != nil {
			return Command{}, invalid("bad day offset %q", when)
		}
		out.Shift = n
	} else {
		when = strings.ToLower(when)
		if !calendar.IsDayRef(when) {
			return Command{}, invalid("bad date %q, want YYYY-MM-DD, today, tomorrow or yesterday", when)
		}
		out.Date = when
	}
	return Command{Type: TypeMove, Raw: raw, Move: &out}, nil
}

func parseTarget(typ Type, raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, invalid("%s requires a task id", typ)
	}
	target := &TargetArgs{Target: args[0]}
	cmd := Command{Type: typ, Raw: raw}
	switch typ {
	case TypeDone:
		cmd.Done = target
	case TypeDelete:
		cmd.Delete = target
	case TypeGoto:
		cmd.Goto = target
	}
	return cmd, nil
}

func parseWeek(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, invalid("week requires 1-%d, next or prev", schedule.Weeks)
	}
	switch strings.ToLower(args[0]) {
	case "next", "+":
		return Command{Type: TypeWeek, Raw: raw, Week: &WeekArgs{Delta: 1, Relative: true}}, nil
	case "prev", "-":
		return Command{Type: TypeWeek, Raw: raw, Week: &WeekArgs{Delta: -1, Relative: true}}, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > schedule.Weeks {
		return Command{}, invalid("week must be 1-%d, got %q", schedule.Weeks, args[0])
	}
	return Command{Type: TypeWeek, Raw: raw, Week: &WeekArgs{Week: n - 1}}, nil
}
