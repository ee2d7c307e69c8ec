package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/studentworks/showcase/internal/core/domain"
	"github.com/studentworks/showcase/internal/core/ports"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	accounts ports.AccountAdmin
	migrate  func(ctx context.Context) error
	out      io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  adduser -username USERNAME [-admin]      - create an account; the password is prompted")
	fmt.Fprintln(cli.out, "  setrole -username USERNAME -role ROLE    - set the role of an account (student|admin)")
	fmt.Fprintln(cli.out, "  migrate                                  - apply the database schema")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ContinueOnError)
	addUserCmd.SetOutput(cli.out)
	addUserName := addUserCmd.String("username", "", "The new account's username. The password will be prompted next.")
	addUserAdmin := addUserCmd.Bool("admin", false, "Grant the admin role.")

	setRoleCmd := flag.NewFlagSet("setrole", flag.ContinueOnError)
	setRoleCmd.SetOutput(cli.out)
	setRoleName := setRoleCmd.String("username", "", "The account's username.")
	setRoleRole := setRoleCmd.String("role", "", "The new role: student or admin.")

	switch args[1] {
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *addUserName == "" {
			addUserCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			addUserCmd.Usage()
			return errHelp
		}
		role := domain.RoleStudent
		if *addUserAdmin {
			role = domain.RoleAdmin
		}
		return cli.addUser(ctx, *addUserName, string(pwd), role)

	case "setrole":
		if err := setRoleCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		role := domain.Role(*setRoleRole)
		if *setRoleName == "" || !role.Valid() {
			setRoleCmd.Usage()
			return errHelp
		}
		return cli.setRole(ctx, *setRoleName, role)

	case "migrate":
		if err := cli.migrate(ctx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		fmt.Fprintln(cli.out, "schema is up to date")
		return nil

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) addUser(ctx context.Context, username, pwd string, role domain.Role) error {
	usr, err := cli.accounts.CreateUser(ctx, username, pwd, role)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "created %s %q (id %d)\n", usr.Role, usr.Username, usr.ID)
	return nil
}

func (cli *commandLine) setRole(ctx context.Context, username string, role domain.Role) error {
	if err := cli.accounts.SetRole(ctx, username, role); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%q is now %s\n", username, role)
	return nil
}
