package moderation

import (
	"chatbot/errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestLoadDictionary(t *testing.T) {
	req := require.New(t)
	fsys := fstest.MapFS{
		"censored/en.txt":     {Data: []byte("badger\r\nsnake\n\n# comment\n")},
		"censored/fr.txt":     {Data: []byte("blaireau\nbadger\n")},
		"censored/README.md":  {Data: []byte("not a dictionary")},
		"censored/old/de.txt": {Data: []byte("dachs")},
	}

	dictionary, err := LoadDictionary(fsys, "censored")

	req.NoError(err)
	req.Equal([]string{"badger", "blaireau", "snake"}, dictionary.Words)
	req.Equal([]string{"en", "fr"}, dictionary.Languages)
}

func TestLoadDictionary_Empty(t *testing.T) {
	req := require.New(t)
	fsys := fstest.MapFS{"censored/en.txt": {Data: []byte("\n# nothing\n")}}

	_, err := LoadDictionary(fsys, "censored")
	req.ErrorIs(err, errors.ErrEmptyWords)

	_, err = LoadDictionary(fsys, "missing")
	req.Error(err)
}
