// Package commands is the command surface shared by the HTTP bridge and the
// interactive CLI. Each command returns a success payload or an error whose
// message is stage-prefixed, e.g. "Connection error: ...".
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/croissant/internal/common"
	"github.com/dmitrijs2005/croissant/internal/logging"
	"github.com/dmitrijs2005/croissant/internal/server/models"
	"github.com/google/uuid"
)

type AccountService interface {
	Register(ctx context.Context, email, password string) (bool, error)
	CheckLogin(ctx context.Context, email, password string) (bool, error)
}

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, name, email string) (*models.User, error)
	Update(ctx context.Context, id int64, name, email string) (*models.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type MessageService interface {
	List(ctx context.Context) ([]models.Message, error)
	Create(ctx context.Context, authorEmail, department, text, contentType string) (*models.Message, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// AppConfig is the payload of get_config.
type AppConfig struct {
	Demo     bool   `json:"demo"`
	LocalDev bool   `json:"local_dev"`
	Mode     string `json:"mode"`
}

// Dispatcher runs commands against the services chosen at startup. It holds
// no mutable state and is safe for concurrent use.
type Dispatcher struct {
	accounts AccountService
	users    UserService
	messages MessageService
	config   AppConfig
	logger   logging.Logger
}

func NewDispatcher(a AccountService, u UserService, m MessageService, cfg AppConfig, l logging.Logger) *Dispatcher {
	return &Dispatcher{
		accounts: a,
		users:    u,
		messages: m,
		config:   cfg,
		logger:   l.With("module", "commands"),
	}
}

// do runs fn under a fresh operation id and logs the outcome. args must never
// carry secrets.
func (d *Dispatcher) do(ctx context.Context, command string, fn func(ctx context.Context) error, args ...any) error {
	l := d.logger.With("command", command, "op_id", uuid.NewString())
	start := time.Now()

	l.Debug(ctx, "command started", args...)

	if err := fn(ctx); err != nil {
		l.Error(ctx, "command failed",
			"kind", common.KindOf(err).String(),
			"error", err.Error(),
			"duration", time.Since(start))
		return err
	}

	l.Info(ctx, "command completed", "duration", time.Since(start))
	return nil
}

func (d *Dispatcher) Greet(name string) string {
	return fmt.Sprintf("Hello, %s! Welcome to %s.", name, common.AppName)
}

func (d *Dispatcher) RegisterUser(ctx context.Context, email, password string) (bool, error) {
	var ok bool
	err := d.do(ctx, "register_user", func(ctx context.Context) error {
		var err error
		ok, err = d.accounts.Register(ctx, email, password)
		return err
	}, "email", email)
	return ok, err
}

// CheckLogin reports whether the credentials match. A wrong password and an
// unknown email both give (false, nil).
func (d *Dispatcher) CheckLogin(ctx context.Context, email, password string) (bool, error) {
	var ok bool
	err := d.do(ctx, "check_login", func(ctx context.Context) error {
		var err error
		ok, err = d.accounts.CheckLogin(ctx, email, password)
		return err
	}, "email", email)
	return ok, err
}

func (d *Dispatcher) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := d.do(ctx, "get_users", func(ctx context.Context) error {
		var err error
		users, err = d.users.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (d *Dispatcher) AddUser(ctx context.Context, name, email string) (*models.User, error) {
	var user *models.User
	err := d.do(ctx, "add_user", func(ctx context.Context) error {
		var err error
		user, err = d.users.Create(ctx, name, email)
		return err
	}, "email", email)
	return user, err
}

func (d *Dispatcher) UpdateUser(ctx context.Context, id int64, name, email string) (*models.User, error) {
	var user *models.User
	err := d.do(ctx, "update_user", func(ctx context.Context) error {
		var err error
		user, err = d.users.Update(ctx, id, name, email)
		return err
	}, "id", id)
	return user, err
}

func (d *Dispatcher) DeleteUser(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := d.do(ctx, "delete_user", func(ctx context.Context) error {
		var err error
		ok, err = d.users.Delete(ctx, id)
		return err
	}, "id", id)
	return ok, err
}

// GetMessages lists messages newest first.
func (d *Dispatcher) GetMessages(ctx context.Context) ([]models.Message, error) {
	var msgs []models.Message
	err := d.do(ctx, "get_messages", func(ctx context.Context) error {
		var err error
		msgs, err = d.messages.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []models.Message{}
	}
	return msgs, nil
}

func (d *Dispatcher) AddMessage(ctx context.Context, authorEmail, department, text, contentType string) (*models.Message, error) {
	var msg *models.Message
	err := d.do(ctx, "add_message", func(ctx context.Context) error {
		var err error
		msg, err = d.messages.Create(ctx, authorEmail, department, text, contentType)
		return err
	}, "author", authorEmail, "department", department)
	return msg, err
}

func (d *Dispatcher) DeleteMessage(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := d.do(ctx, "delete_message", func(ctx context.Context) error {
		var err error
		ok, err = d.messages.Delete(ctx, id)
		return err
	}, "id", id)
	return ok, err
}

func (d *Dispatcher) GetConfig() AppConfig {
	return d.config
}
