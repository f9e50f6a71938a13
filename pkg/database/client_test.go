package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/loom-agents/loom/ent"
	"github.com/loom-agents/loom/ent/sessionevent"
)

// newTestClient creates a test database client with CI/local detection.
// In CI (CI_DATABASE_URL set): connects to an external PostgreSQL service.
// Locally: spins up a PostgreSQL testcontainer.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	var connStr string
	if ciDatabaseURL := os.Getenv("CI_DATABASE_URL"); ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests; production uses the embedded SQL files.
	require.NoError(t, entClient.Schema.Create(ctx))
	require.NoError(t, CreateGINIndexes(ctx, drv))

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestSessionRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	state := map[string]interface{}{
		"steps": []interface{}{
			map[string]interface{}{"capability": "draft", "status": "completed"},
		},
		"facts": []interface{}{},
	}

	err := client.WorkflowSession.Create().
		SetID("sess-1").
		SetState(state).
		Exec(ctx)
	require.NoError(t, err)

	row, err := client.WorkflowSession.Get(ctx, "sess-1")
	require.NoError(t, err)
	steps, ok := row.State["steps"].([]interface{})
	require.True(t, ok)
	assert.Len(t, steps, 1)
	assert.WithinDuration(t, time.Now(), row.LastUpdated, time.Minute)
}

func TestSessionEventLogOrder(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.WorkflowSession.Create().
		SetID("sess-events").
		SetState(map[string]interface{}{}).
		Exec(ctx))

	for _, eventType := range []string{"plan-created", "step-completed", "step-completed"} {
		require.NoError(t, client.SessionEvent.Create().
			SetSessionID("sess-events").
			SetType(eventType).
			SetThreadID("sess-events").
			SetTimestamp(time.Now().UTC().Format(time.RFC3339Nano)).
			Exec(ctx))
	}

	rows, err := client.SessionEvent.Query().
		Where(sessionevent.SessionID("sess-events")).
		Order(ent.Asc(sessionevent.FieldID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "plan-created", rows[0].Type)
	assert.Equal(t, "step-completed", rows[1].Type)
}

func TestPRPRunWithEvidence(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.PRPRun.Create().
		SetID("prp-test-1").
		SetBlueprint(`{"service":"demo"}`).
		SetPhase("completed").
		SetHistory([]interface{}{map[string]interface{}{"phase": "strategy"}}).
		Exec(ctx)
	require.NoError(t, err)

	err = client.EvidenceRecord.Create().
		SetID("prp-test-1-ev-0001").
		SetRunID("prp-test-1").
		SetSeq(0).
		SetType("test").
		SetSource("tdd-gate").
		SetContent(`{"coverage":91.5}`).
		SetPhase("evaluation").
		SetTimestamp(time.Now().UTC().Format(time.RFC3339)).
		Exec(ctx)
	require.NoError(t, err)

	run, err := client.PRPRun.Get(ctx, "prp-test-1")
	require.NoError(t, err)
	assert.Equal(t, "completed", string(run.Phase))

	evidence, err := run.QueryEvidence().All(ctx)
	require.NoError(t, err)
	require.Len(t, evidence, 1)
	assert.Equal(t, "tdd-gate", evidence[0].Source)
}
