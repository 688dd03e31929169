package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Greet(ctx context.Context, args []string) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Users(ctx context.Context) error
	AddUser(ctx context.Context) error
	UpdateUser(ctx context.Context) error
	DeleteUser(ctx context.Context) error
	Messages(ctx context.Context) error
	AddMessage(ctx context.Context) error
	DeleteMessage(ctx context.Context) error
	Config(ctx context.Context) error
}

const helpText = "Available commands: greet <name>, register, login, logout, users, adduser, updateuser, deluser, " +
	"messages, addmessage, delmessage, config, help, exit"

// runREPL reads commands line by line from in and dispatches them to a.
// Handler errors are printed and the loop continues. It returns on EOF, on
// "exit"/"quit" or when ctx is cancelled.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("croissant%s> ", statusFn()))

		line, err := in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(helpText)
		case "greet":
			cmdErr = a.Greet(ctx, args)
		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "users":
			cmdErr = a.Users(ctx)
		case "adduser":
			cmdErr = a.AddUser(ctx)
		case "updateuser":
			cmdErr = a.UpdateUser(ctx)
		case "deluser":
			cmdErr = a.DeleteUser(ctx)
		case "messages":
			cmdErr = a.Messages(ctx)
		case "addmessage":
			cmdErr = a.AddMessage(ctx)
		case "delmessage":
			cmdErr = a.DeleteMessage(ctx)
		case "config":
			cmdErr = a.Config(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr.Error())
		}

		if err != nil {
			return
		}
	}
}
