package generator

import (
	"fmt"

	"github.com/eduardo/initializr/internal/domain"
)

// databaseFragment holds the per-database pieces the build manifest and the
// runtime configuration are composed from.
type databaseFragment struct {
	GroupID string
	Dialect string
}

var databaseFragments = map[domain.DatabaseKind]databaseFragment{
	domain.DatabaseMySQL: {
		GroupID: "com.mysql",
		Dialect: "org.hibernate.dialect.MySQLDialect",
	},
	domain.DatabasePostgreSQL: {
		GroupID: "org.postgresql",
		Dialect: "org.hibernate.dialect.PostgreSQLDialect",
	},
	domain.DatabaseSQLServer: {
		GroupID: "com.microsoft.sqlserver",
		Dialect: "org.hibernate.dialect.SQLServerDialect",
	},
	domain.DatabaseOracle: {
		GroupID: "com.oracle.database.jdbc",
		Dialect: "org.hibernate.dialect.OracleDialect",
	},
}

func init() {
	for _, k := range domain.DatabaseKinds() {
		if _, ok := databaseFragments[k]; !ok {
			panic(fmt.Sprintf("generator: database kind %s has no template fragment", k))
		}
	}
}

func fragmentFor(k domain.DatabaseKind) (databaseFragment, domain.DatabaseFacts, error) {
	frag, ok := databaseFragments[k]
	facts, okFacts := k.Facts()
	if !ok || !okFacts {
		return databaseFragment{}, domain.DatabaseFacts{}, domain.NewConfigurationError("emit", fmt.Sprintf("unknown database type %q", k))
	}
	return frag, facts, nil
}
