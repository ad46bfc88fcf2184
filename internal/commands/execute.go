package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Select func(SelectArgs) (Result, error)
	Add    func(AddArgs) (Result, error)
	Remove func() (Result, error)
	Rename func(RenameArgs) (Result, error)
	Clear  func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeSelect:
		if handlers.Select == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "select handler not configured"}
		}
		return handlers.Select(*cmd.Select)
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeRemove:
		if handlers.Remove == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "remove handler not configured"}
		}
		return handlers.Remove()
	case TypeRename:
		if handlers.Rename == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "rename handler not configured"}
		}
		return handlers.Rename(*cmd.Rename)
	case TypeClear:
		if handlers.Clear == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "clear handler not configured"}
		}
		return handlers.Clear()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
