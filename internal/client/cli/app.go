package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/contactkeeper/internal/client/client"
	"github.com/dmitrijs2005/contactkeeper/internal/client/config"
	"github.com/dmitrijs2005/contactkeeper/internal/client/services"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	reader      *bufio.Reader
	out         io.Writer
}

// NewApp builds the CLI on stdin/stdout against the configured server.
func NewApp(c *config.Config) *App {
	apiClient := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	as := services.NewAuthService(apiClient)

	return &App{config: c, authService: as, reader: bufio.NewReader(os.Stdin), out: os.Stdout}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
