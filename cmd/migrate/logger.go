package migrate

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/soldracula/dracula/pkg/logger"
	"github.com/soldracula/dracula/pkg/logger/slogx"
)

var _ migrate.Logger = (*migrationLogger)(nil)

// migrationLogger forwards golang-migrate output to the service logger.
type migrationLogger struct {
	source  string
	verbose bool
}

func (l *migrationLogger) Printf(format string, v ...interface{}) {
	msg := strings.TrimSpace(fmt.Sprintf(format, v...))
	logger.InfoContext(context.Background(), msg, slogx.String("source", l.source))
}

func (l *migrationLogger) Verbose() bool {
	return l.verbose
}
