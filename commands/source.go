package commands

import "chatbot/domain"

// Table is a statically compiled command source.
type Table []domain.CommandDefinition

func (t Table) Commands() []domain.CommandDefinition {
	return t
}
