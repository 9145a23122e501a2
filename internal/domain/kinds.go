package domain

import (
	"fmt"
	"strings"
)

// FrameworkKind identifies the target framework of a generated project.
type FrameworkKind string

// FrameworkSpringBoot is the only framework the generator can emit.
const FrameworkSpringBoot FrameworkKind = "SPRINGBOOT"

// Supported reports whether the generator can emit a project for k.
func (k FrameworkKind) Supported() bool {
	return k == FrameworkSpringBoot
}

// DatabaseKind identifies the database a generated project connects to.
type DatabaseKind string

const (
	DatabaseMySQL      DatabaseKind = "MYSQL"
	DatabasePostgreSQL DatabaseKind = "POSTGRESQL"
	DatabaseSQLServer  DatabaseKind = "SQLSERVER"
	DatabaseOracle     DatabaseKind = "ORACLE"
)

// DatabaseFacts are the fixed facts a generated project needs about its database.
type DatabaseFacts struct {
	Label              string
	DriverClassName    string
	URLPrefix          string
	DependencyArtifact string
}

var databaseKinds = []DatabaseKind{
	DatabaseMySQL,
	DatabasePostgreSQL,
	DatabaseSQLServer,
	DatabaseOracle,
}

var databaseFacts = map[DatabaseKind]DatabaseFacts{
	DatabaseMySQL: {
		Label:              "MySQL",
		DriverClassName:    "com.mysql.cj.jdbc.Driver",
		URLPrefix:          "jdbc:mysql://localhost:3306/",
		DependencyArtifact: "mysql-connector-j",
	},
	DatabasePostgreSQL: {
		Label:              "PostgreSQL",
		DriverClassName:    "org.postgresql.Driver",
		URLPrefix:          "jdbc:postgresql://localhost:5432/",
		DependencyArtifact: "postgresql",
	},
	DatabaseSQLServer: {
		Label:              "SQL Server",
		DriverClassName:    "com.microsoft.sqlserver.jdbc.SQLServerDriver",
		URLPrefix:          "jdbc:sqlserver://localhost:1433;databaseName=",
		DependencyArtifact: "mssql-jdbc",
	},
	DatabaseOracle: {
		Label:              "Oracle",
		DriverClassName:    "oracle.jdbc.driver.OracleDriver",
		URLPrefix:          "jdbc:oracle:thin:@localhost:1521:",
		DependencyArtifact: "ojdbc8",
	},
}

func init() {
	for _, k := range databaseKinds {
		if f, ok := databaseFacts[k]; !ok || f.Label == "" {
			panic(fmt.Sprintf("domain: database kind %s has no facts", k))
		}
	}
}

// DatabaseKinds returns every known database kind in declaration order.
func DatabaseKinds() []DatabaseKind {
	out := make([]DatabaseKind, len(databaseKinds))
	copy(out, databaseKinds)
	return out
}

// Facts returns the fixed facts for k.
func (k DatabaseKind) Facts() (DatabaseFacts, bool) {
	f, ok := databaseFacts[k]
	return f, ok
}

// Valid reports whether k is one of the known database kinds.
func (k DatabaseKind) Valid() bool {
	_, ok := databaseFacts[k]
	return ok
}

// ParseDatabaseKind parses a database kind case-insensitively.
func ParseDatabaseKind(s string) (DatabaseKind, error) {
	k := DatabaseKind(strings.ToUpper(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", NewConfigurationError("parse database", fmt.Sprintf("unknown database type %q", s))
	}
	return k, nil
}

// ParseFrameworkKind normalizes a framework kind. Unsupported kinds are
// returned as-is and rejected later by Validate.
func ParseFrameworkKind(s string) FrameworkKind {
	return FrameworkKind(strings.ToUpper(strings.TrimSpace(s)))
}
