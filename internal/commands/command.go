package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeSelect Type = "select"
	TypeAdd    Type = "add"
	TypeRemove Type = "remove"
	TypeRename Type = "rename"
	TypeClear  Type = "clear"
)

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

type SelectArgs struct {
	Name string
}

type AddArgs struct {
	Name string
}

type RenameArgs struct {
	Name string
}

type Command struct {
	Type   Type
	Raw    string
	Select *SelectArgs
	Add    *AddArgs
	Rename *RenameArgs
}

// Parse turns palette input into a command. Task names keep their interior
// spacing: everything after the verb is the argument.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	head, rest, _ := strings.Cut(raw, " ")
	rest = strings.TrimSpace(rest)

	switch Type(strings.ToLower(head)) {
	case TypeSelect:
		if rest == "" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "select needs a task name"}
		}
		return Command{Type: TypeSelect, Raw: raw, Select: &SelectArgs{Name: rest}}, nil
	case TypeAdd:
		if rest == "" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add needs a task name"}
		}
		return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Name: rest}}, nil
	case TypeRename:
		if rest == "" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "rename needs a new name"}
		}
		return Command{Type: TypeRename, Raw: raw, Rename: &RenameArgs{Name: rest}}, nil
	case TypeRemove:
		if rest != "" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "remove takes no argument"}
		}
		return Command{Type: TypeRemove, Raw: raw}, nil
	case TypeClear:
		if rest != "" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "clear takes no argument"}
		}
		return Command{Type: TypeClear, Raw: raw}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command: %s", head)}
	}
}
