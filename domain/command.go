package domain

import (
	"context"
	"slices"
	"strings"
)

type Availability string

const (
	AvailabilityGroup   Availability = "group"
	AvailabilityPrivate Availability = "private"
	AvailabilityBoth    Availability = "both"
)

// Allows reports whether a command declared with this availability may run in the given chat kind.
func (a Availability) Allows(kind Availability) bool {
	switch a {
	case AvailabilityBoth, "":
		return true
	default:
		return a == kind
	}
}

// DryRunIdentity always counts as an administrator. It is used by internal and console invocations.
const DryRunIdentity = "dry-run"

// Replier sends a text back into the conversation a command was invoked from.
type Replier interface {
	Reply(ctx context.Context, message string) error
}

type ExecuteFunc func(ctx context.Context, cmd CommandContext) error

// CommandDefinition is loaded once into the registry and never mutated afterwards.
type CommandDefinition struct {
	Name         string
	Aliases      []string
	Description  string
	UsageExample string
	Enabled      bool
	AdminOnly    bool
	Availability Availability
	Execute      ExecuteFunc
}

// Key is the case-insensitive lookup key of the command.
func (c CommandDefinition) Key() string {
	return NormalizeCommandName(c.Name)
}

func (c CommandDefinition) Summary() CommandSummary {
	return CommandSummary{
		Name:         c.Key(),
		Aliases:      slices.Clone(c.Aliases),
		Description:  c.Description,
		UsageExample: c.UsageExample,
		AdminOnly:    c.AdminOnly,
		Availability: c.Availability,
	}
}

// CommandSummary is a CommandDefinition without its body, safe to hand to commands for introspection.
type CommandSummary struct {
	Name         string
	Aliases      []string
	Description  string
	UsageExample string
	AdminOnly    bool
	Availability Availability
}

// CommandContext is built fresh for each dispatch and discarded once the command returns.
type CommandContext struct {
	RawParams         string
	IsAdmin           bool
	AvailableCommands []CommandSummary
	RawEvent          InboundEvent
	Reply             Replier
}

func NormalizeCommandName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DispatchOutcome is the result of one dispatch. Denials are normal outcomes, not errors.
type DispatchOutcome string

const (
	OutcomeIgnored          DispatchOutcome = "ignored"
	OutcomeUnknownCommand   DispatchOutcome = "unknown_command"
	OutcomePermissionDenied DispatchOutcome = "permission_denied"
	OutcomeContextMismatch  DispatchOutcome = "context_mismatch"
	OutcomeExecuted         DispatchOutcome = "executed"
	OutcomeFailed           DispatchOutcome = "failed"
)
