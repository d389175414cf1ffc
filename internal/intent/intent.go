// Package intent translates assistant actions into task store mutations.
package intent

import (
	"errors"
	"fmt"
	"strings"
)

const (
	ActionAdd    = "addtodo"
	ActionDelete = "deletetodo"
	ActionUpdate = "updatetodo"
)

var ErrUnknownAction = errors.New("unknown action")

// Intent is one of AddIntent, DeleteIntent or UpdateIntent.
type Intent interface {
	Action() string
}

type AddIntent struct {
	Name     string
	Info     string
	Date     string // YYYY-MM-DD
	Time     string // HH:MM
	Priority string
}

func (AddIntent) Action() string { return ActionAdd }

type DeleteIntent struct {
	Name string
}

func (DeleteIntent) Action() string { return ActionDelete }

// UpdateIntent: пустые поля означают "без изменений", NewDate и NewTime применяются только вместе
type UpdateIntent struct {
	CurrentName string
	NewName     string
	NewInfo     string
	NewDate     string
	NewTime     string
	NewPriority string
}

func (UpdateIntent) Action() string { return ActionUpdate }

// Decode builds an intent from the dispatcher's action name and loosely typed arguments.
func Decode(action string, args map[string]any) (Intent, error) {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case ActionAdd:
		return AddIntent{
			Name:     arg(args, "taskname"),
			Info:     arg(args, "taskinfo"),
			Date:     arg(args, "taskdate"),
			Time:     arg(args, "tasktime"),
			Priority: arg(args, "taskpriority"),
		}, nil
	case ActionDelete:
		return DeleteIntent{Name: arg(args, "taskname")}, nil
	case ActionUpdate:
		return UpdateIntent{
			CurrentName: arg(args, "currenttaskname"),
			NewName:     arg(args, "newtaskname"),
			NewInfo:     arg(args, "newtaskinfo"),
			NewDate:     arg(args, "newtaskdate"),
			NewTime:     arg(args, "newtasktime"),
			NewPriority: arg(args, "newtaskpriority"),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
}

func arg(args map[string]any, key string) string {
	switch v := args[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case bool:
		if !v {
			return ""
		}
		return "true"
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
