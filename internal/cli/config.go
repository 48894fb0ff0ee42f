package cli

import (
	"fmt"

	"github.com/julianstephens/habitr/internal/keyring"
)

type ConfigCmd struct {
	SetDb   ConfigSetDbCmd   `cmd:"" name:"set-db" help:"Store the PostgreSQL connection string in the OS keyring."`
	ClearDb ConfigClearDbCmd `cmd:"" name:"clear-db" help:"Remove the stored PostgreSQL connection string."`
}

type ConfigSetDbCmd struct {
	ConnStr string `arg:"" help:"PostgreSQL connection string (may include the password; it never touches disk)."`
}

func (c *ConfigSetDbCmd) Run(ctx *Context) error {
	if err := keyring.SetConnectionString(c.ConnStr); err != nil {
		return err
	}
	fmt.Println("Stored database connection string in the OS keyring.")
	fmt.Println("Run habitr with '--config postgres' to use it.")
	return nil
}

type ConfigClearDbCmd struct{}

func (c *ConfigClearDbCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		return err
	}
	fmt.Println("Removed database connection string from the OS keyring.")
	return nil
}
