package commands

import (
	"chatbot/contract"
	"chatbot/domain"
	"chatbot/errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/samber/lo"
)

// Registry holds the loaded command definitions keyed by lower-cased name and alias.
// It is written by Load and read concurrently by every dispatch afterwards.
type Registry struct {
	log      *slog.Logger
	mu       sync.RWMutex
	commands map[string]domain.CommandDefinition
	aliases  map[string]string
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		log:      log,
		commands: make(map[string]domain.CommandDefinition),
		aliases:  make(map[string]string),
	}
}

// Load validates every definition of the source and registers the valid ones.
// A faulty definition is reported in the joined error and does not stop the others.
// Loading again replaces the whole set.
func (r *Registry) Load(source contract.CommandSource) ([]domain.CommandDefinition, error) {
	commands := make(map[string]domain.CommandDefinition)
	aliases := make(map[string]string)
	var loaded []domain.CommandDefinition
	var errs []error

	for i, def := range source.Commands() {
		if err := validate(def); err != nil {
			errs = append(errs, fmt.Errorf("command #%d %q: %w", i, def.Name, err))
			continue
		}
		if !def.Enabled {
			r.log.Debug("Command disabled, skipped", "command", def.Key())
			continue
		}
		key := def.Key()
		if taken(key, commands, aliases) {
			errs = append(errs, fmt.Errorf("command %q: %w", key, errors.ErrDuplicateCommand))
			continue
		}
		names := lo.Uniq(lo.Compact(lo.Map(def.Aliases, func(alias string, _ int) string {
			return domain.NormalizeCommandName(alias)
		})))
		if clash, found := lo.Find(names, func(alias string) bool {
			return alias == key || taken(alias, commands, aliases)
		}); found {
			errs = append(errs, fmt.Errorf("alias %q of command %q: %w", clash, key, errors.ErrDuplicateCommand))
			continue
		}

		def.Name = key
		def.Aliases = names
		if def.Availability == "" {
			def.Availability = domain.AvailabilityBoth
		}
		commands[key] = def
		for _, alias := range names {
			aliases[alias] = key
		}
		loaded = append(loaded, def)
	}

	r.mu.Lock()
	r.commands = commands
	r.aliases = aliases
	r.mu.Unlock()

	r.log.Info("Commands loaded", "count", len(loaded), "failed", len(errs))
	return loaded, errors.Join(errs...)
}

// Lookup resolves a command by name or alias, case-insensitively.
func (r *Registry) Lookup(name string) (domain.CommandDefinition, bool) {
	key := domain.NormalizeCommandName(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if target, ok := r.aliases[key]; ok {
		key = target
	}
	def, ok := r.commands[key]
	return def, ok
}

// Summaries returns a snapshot of every loaded command sorted by name, without bodies.
func (r *Registry) Summaries() []domain.CommandSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]domain.CommandSummary, 0, len(r.commands))
	for _, def := range r.commands {
		summaries = append(summaries, def.Summary())
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	return summaries
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

func validate(def domain.CommandDefinition) error {
	if def.Key() == "" {
		return errors.ErrEmptyCommandName
	}
	if def.Execute == nil {
		return errors.ErrMissingExecute
	}
	switch def.Availability {
	case domain.AvailabilityGroup, domain.AvailabilityPrivate, domain.AvailabilityBoth, "":
		return nil
	default:
		return fmt.Errorf("unknown availability %q", def.Availability)
	}
}

func taken(name string, commands map[string]domain.CommandDefinition, aliases map[string]string) bool {
	_, isCommand := commands[name]
	_, isAlias := aliases[name]
	return isCommand || isAlias
}
