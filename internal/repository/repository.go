package repository

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

// psql builds every query in this package with Postgres placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const queryTimeout = 5 * time.Second
