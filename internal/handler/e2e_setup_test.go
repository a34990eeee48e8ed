//go:build e2e

package handler_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"shareit/cmd/bootstrap/components"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/config"
	"shareit/migrations"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type containerInfo struct {
	Host string
	Port nat.Port
}

func setupE2EEnvironment(t *testing.T) (*pgxpool.Pool, *gin.Engine) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	startPostgreSQLContainerOnce(t)

	info, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "failed to read postgres container address")

	pool, dbConfig := prepareDatabase(t, info)
	router, app := buildTestApp(pool, dbConfig)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = app.Stop(ctx)
	})

	return pool, router
}

func prepareDatabase(t *testing.T, info containerInfo) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()

	// A fresh database per test process keeps parallel packages isolated.
	dbName := "testdb_" + uuid.New().String()[:8]

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, info.Host, info.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer adminPool.Close()

	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()
		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			return
		}
		defer cleanupPool.Close()
		_, _ = cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName)
	})

	dbConfig := config.DBConfig{
		Host:     info.Host,
		Port:     info.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
	}

	applyMigrations(t, dbConfig)

	pool, _, err := db.Connect(dbConfig)
	require.NoError(t, err, "database connection failed")

	return pool, dbConfig
}

func applyMigrations(t *testing.T, dbConfig config.DBConfig) {
	t.Helper()

	sqlDB, err := sql.Open("pgx", dbConfig.BuildDSN())
	require.NoError(t, err, "failed to open migration connection")
	defer sqlDB.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.FS)
	require.NoError(t, err, "failed to build migration provider")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err = provider.Up(ctx)
	require.NoError(t, err, "migrations failed")
}

func buildTestApp(pool *pgxpool.Pool, dbConfig config.DBConfig) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	testConfig := config.NewTestConfig()
	testConfig.DB = dbConfig

	app := fx.New(
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() config.Config { return testConfig },
			gin.New,
		),
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("failed to start test app: %v", err))
	}
	return router, app
}

func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=512m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "synchronous_commit=off",
				"-c", "full_page_writes=off",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
		}

		ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
		defer cancel()

		var err error
		postgresTestContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "failed to start postgres container")

		t.Cleanup(func() {
			if postgresTestContainer != nil {
				termCtx, termCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer termCancel()
				_ = postgresTestContainer.Terminate(termCtx)
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (containerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return containerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return containerInfo{}, err
	}
	return containerInfo{Host: host, Port: mappedPort}, nil
}

// -----------------------------------------------------------------------------
// Shared suite plumbing
// -----------------------------------------------------------------------------

type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
}

func (s *SharedSuite) SetupSuite() {
	pool, router := setupE2EEnvironment(s.T())
	s.DB = pool
	s.Router = router
}

func (s *SharedSuite) SetupSubTest() {
	s.resetDB()
}

func (s *SharedSuite) resetDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := s.DB.Exec(ctx, "TRUNCATE users, requests, items, bookings, comments CASCADE")
	require.NoError(s.T(), err, "failed to reset database state")
}

type apiResponse struct {
	Code int
	Body []byte
}

func (s *SharedSuite) request(method, path string, sharerID *uuid.UUID, body any) apiResponse {
	s.T().Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sharerID != nil {
		req.Header.Set("X-Sharer-User-Id", sharerID.String())
	}

	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return apiResponse{Code: rec.Code, Body: rec.Body.Bytes()}
}

func (s *SharedSuite) decode(resp apiResponse, out any) {
	s.T().Helper()
	require.NoError(s.T(), json.Unmarshal(resp.Body, out), "unexpected body: %s", resp.Body)
}

func (s *SharedSuite) createUser(name, email string) uuid.UUID {
	s.T().Helper()

	resp := s.request(http.MethodPost, "/users", nil, map[string]string{"name": name, "email": email})
	require.Equal(s.T(), http.StatusCreated, resp.Code, "body: %s", resp.Body)

	var created struct {
		ID uuid.UUID `json:"id"`
	}
	s.decode(resp, &created)
	return created.ID
}

func (s *SharedSuite) createItem(ownerID uuid.UUID, name, description string, available bool) uuid.UUID {
	s.T().Helper()

	resp := s.request(http.MethodPost, "/items", &ownerID, map[string]any{
		"name":        name,
		"description": description,
		"available":   available,
	})
	require.Equal(s.T(), http.StatusCreated, resp.Code, "body: %s", resp.Body)

	var created struct {
		ID uuid.UUID `json:"id"`
	}
	s.decode(resp, &created)
	return created.ID
}

// insertBooking writes a booking row directly so past periods, which the API
// rejects, can back aggregation and comment scenarios.
func (s *SharedSuite) insertBooking(itemID, bookerID uuid.UUID, start, end time.Time, status string) uuid.UUID {
	s.T().Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var id uuid.UUID
	err := s.DB.QueryRow(ctx,
		"INSERT INTO bookings (item_id, booker_id, start_at, end_at, status) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		itemID, bookerID, start, end, status,
	).Scan(&id)
	require.NoError(s.T(), err, "failed to insert booking fixture")
	return id
}
