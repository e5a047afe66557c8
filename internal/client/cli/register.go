package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contactkeeper/internal/client/client"
	"github.com/dmitrijs2005/contactkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email and password and creates the account.
//
// On success it prints the session token. A rejected registration prints
// the server's messages, one per line, and returns the error. The password
// is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, name, email, password); err != nil {
		a.printRegisterError(err)
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	fmt.Fprintln(a.out, "Token:", a.authService.Token())
	return nil
}

func (a *App) printRegisterError(err error) {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, common.ErrorAlreadyExists):
		fmt.Fprintln(a.out, "A user with this email already exists")
	case errors.As(err, &apiErr) && len(apiErr.Errors) > 0:
		for _, fe := range apiErr.Errors {
			fmt.Fprintf(a.out, "  %s: %s\n", fe.Param, fe.Msg)
		}
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(a.out, "Server unavailable, try again later")
	default:
		fmt.Fprintln(a.out, err.Error())
	}
}
