package main

import (
	"bytes"
	"chatbot/dispatch"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func runConsole(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONSOLE_COLOURS", "false")
	t.Setenv("COMMAND_PREFIX", "")
	var out bytes.Buffer
	err := run(context.Background(), args, &out)
	return out.String(), err
}

func TestConsole_Send_Ping(t *testing.T) {
	req := require.New(t)

	out, err := runConsole(t, "send", "ping")

	req.NoError(err)
	req.Contains(out, "-> dry-run (reply to ")
	req.Contains(out, "pong")
	req.Contains(out, "outcome=executed replies=1")
}

func TestConsole_Send_Admin_Command_From_Someone_Else(t *testing.T) {
	req := require.New(t)

	out, err := runConsole(t, "send", "-from", "33611111111", "status")

	req.NoError(err)
	req.Contains(out, dispatch.MsgPermissionDenied)
	req.Contains(out, "outcome=permission_denied")
}

func TestConsole_Send_In_Group_Prefixes_The_Name(t *testing.T) {
	req := require.New(t)

	out, err := runConsole(t, "send", "-group", "1203@g.us", "-from", "33611111111", "-name", "Alice", "ping")

	req.NoError(err)
	req.Contains(out, "Alice, pong")
}

func TestConsole_Commands(t *testing.T) {
	req := require.New(t)

	out, err := runConsole(t, "commands")

	req.NoError(err)
	for _, name := range []string{"help", "ping", "lang", "status", "admins", "addadmin", "deladmin"} {
		req.Contains(out, name)
	}
}

func TestConsole_Token(t *testing.T) {
	req := require.New(t)
	t.Setenv("GATEWAY_TOKEN_SECRET", "a_console_secret_for_tests")

	out, err := runConsole(t, "token")

	req.NoError(err)
	req.Contains(out, "session=default")
}

func TestConsole_Errors(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", "")

	_, err := runConsole(t, "locks")
	req.ErrorContains(err, "BADGER_FILEPATH")

	out, err := runConsole(t, "dance")
	req.Error(err)
	req.Contains(out, "usage: console")
}
