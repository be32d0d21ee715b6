package database

import sq "github.com/Masterminds/squirrel"

// psql is a squirrel builder preconfigured for Postgres placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func Select(columns ...string) sq.SelectBuilder {
	return psql.Select(columns...)
}

func Update(table string) sq.UpdateBuilder {
	return psql.Update(table)
}
