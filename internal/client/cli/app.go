package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/croissant/internal/common"
	"github.com/dmitrijs2005/croissant/internal/server/commands"
	"github.com/dmitrijs2005/croissant/internal/server/models"
)

// Commands is the command surface; *commands.Dispatcher satisfies it.
type Commands interface {
	Greet(name string) string
	RegisterUser(ctx context.Context, email, password string) (bool, error)
	CheckLogin(ctx context.Context, email, password string) (bool, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	AddUser(ctx context.Context, name, email string) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, name, email string) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
	GetMessages(ctx context.Context) ([]models.Message, error)
	AddMessage(ctx context.Context, authorEmail, department, text, contentType string) (*models.Message, error)
	DeleteMessage(ctx context.Context, id int64) (bool, error)
	GetConfig() commands.AppConfig
}

const defaultContentType = "text/plain"

type App struct {
	commands Commands
	reader   *bufio.Reader
	out      io.Writer
	email    string
}

func NewApp(c Commands, in io.Reader, out io.Writer) *App {
	return &App{commands: c, reader: bufio.NewReader(in), out: out}
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintf(a.out, "Welcome to %s CLI (type 'help' for commands)\n", common.AppName)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) getStatus() string {
	if a.email == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", a.email)
}

func (a *App) Greet(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	if name == "" {
		var err error
		name, err = GetSimpleText(a.reader, "Enter your name", a.out)
		if err != nil {
			return err
		}
	}
	fmt.Fprintln(a.out, a.commands.Greet(name))
	return nil
}

func (a *App) credentials() (string, string, error) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", "", err
	}
	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return "", "", err
	}
	return email, password, nil
}

func (a *App) Register(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}
	if _, err := a.commands.RegisterUser(ctx, email, password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Registered", email)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}
	ok, err := a.commands.CheckLogin(ctx, email, password)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Invalid email or password")
		return nil
	}
	a.email = email
	fmt.Fprintln(a.out, "Logged in as", email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.email = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Users(ctx context.Context) error {
	users, err := a.commands.GetUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users")
		return nil
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "%d\t%s\t%s\n", u.ID, u.Name, u.Email)
	}
	return nil
}

func (a *App) AddUser(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	u, err := a.commands.AddUser(ctx, name, email)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added user %d\n", u.ID)
	return nil
}

func (a *App) UpdateUser(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter user id", a.out)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Enter new name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter new email", a.out)
	if err != nil {
		return err
	}
	u, err := a.commands.UpdateUser(ctx, id, name, email)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated user %d\n", u.ID)
	return nil
}

func (a *App) DeleteUser(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter user id to delete", a.out)
	if err != nil {
		return err
	}
	ok, err := a.commands.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	a.reportDeleted("user", id, ok)
	return nil
}

func (a *App) Messages(ctx context.Context) error {
	msgs, err := a.commands.GetMessages(ctx)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		fmt.Fprintln(a.out, "No messages")
		return nil
	}
	for _, m := range msgs {
		fmt.Fprintf(a.out, "#%d %s [%s] %s (%s)\n%s\n",
			m.ID, m.CreatedAt.Format("2006-01-02 15:04"), m.Department, m.AuthorEmail, m.ContentType, m.Text)
	}
	return nil
}

// AddMessage posts on behalf of the logged in account unless another author
// is entered.
func (a *App) AddMessage(ctx context.Context) error {
	prompt := "Enter author email"
	if a.email != "" {
		prompt += fmt.Sprintf(" (empty for %s)", a.email)
	}
	author, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if author == "" {
		author = a.email
	}

	department, err := GetSimpleText(a.reader, "Enter department", a.out)
	if err != nil {
		return err
	}
	contentType, err := GetSimpleText(a.reader, "Enter content type (empty for "+defaultContentType+")", a.out)
	if err != nil {
		return err
	}
	if contentType == "" {
		contentType = defaultContentType
	}
	text, err := GetMultiline(a.reader, "Enter text", a.out)
	if err != nil {
		return err
	}

	m, err := a.commands.AddMessage(ctx, author, department, text, contentType)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added message %d\n", m.ID)
	return nil
}

func (a *App) DeleteMessage(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter message id to delete", a.out)
	if err != nil {
		return err
	}
	ok, err := a.commands.DeleteMessage(ctx, id)
	if err != nil {
		return err
	}
	a.reportDeleted("message", id, ok)
	return nil
}

func (a *App) Config(ctx context.Context) error {
	c := a.commands.GetConfig()
	fmt.Fprintf(a.out, "mode: %s\ndemo: %t\nlocal_dev: %t\n", c.Mode, c.Demo, c.LocalDev)
	return nil
}

func (a *App) reportDeleted(kind string, id int64, ok bool) {
	if ok {
		fmt.Fprintf(a.out, "Deleted %s %d\n", kind, id)
	} else {
		fmt.Fprintf(a.out, "No %s with id %d\n", kind, id)
	}
}
