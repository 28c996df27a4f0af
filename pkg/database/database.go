package database

import (
	"context"
	"time"

	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/util"
	"github.com/cenkalti/backoff/v4"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

var GlobalDriver neo4j.DriverWithContext

const defaultConnectionString = "neo4j://localhost:7687"
const defaultDatabase = "neo4j"
const defaultUsername = "neo4j"

// Connect dials the Neo4j server described by the TGV_NEO4J_* environment
// variables and verifies connectivity, retrying with exponential backoff so a
// freshly started database has time to come up.
func Connect() error {
	env := util.GetEnvironmentVariables()

	connectionString := defaultConnectionString
	username := defaultUsername
	password := ""

	if env["TGV_NEO4J_CONNECTION"] != "" {
		connectionString = env["TGV_NEO4J_CONNECTION"]
	}
	if env["TGV_NEO4J_USERNAME"] != "" {
		username = env["TGV_NEO4J_USERNAME"]
	}
	if env["TGV_NEO4J_PASSWORD"] != "" {
		password = env["TGV_NEO4J_PASSWORD"]
	}

	driver, err := neo4j.NewDriverWithContext(connectionString, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err = backoff.Retry(func() error {
		return driver.VerifyConnectivity(ctx)
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4))
	if err != nil {
		return err
	}

	GlobalDriver = driver

	return nil
}

// Database returns the Neo4j database name queries should run against.
func Database() string {
	env := util.GetEnvironmentVariables()

	if env["TGV_NEO4J_DATABASE"] != "" {
		return env["TGV_NEO4J_DATABASE"]
	}

	return defaultDatabase
}

func Disconnect(ctx context.Context) error {
	if GlobalDriver == nil {
		return nil
	}

	return GlobalDriver.Close(ctx)
}
