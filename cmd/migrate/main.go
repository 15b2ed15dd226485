// Command migrate bootstraps the Spanner schema: it creates the instance and
// database when missing (emulator-friendly) and applies every DDL file under
// the migrations directory in name order.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type migrator struct {
	projectID  string
	instanceID string
	databaseID string
	dir        string
	logger     *zap.Logger
}

func main() {
	projectID := flag.String("project", envOr("SPANNER_PROJECT_ID", "test-project"), "GCP project ID")
	instanceID := flag.String("instance", envOr("SPANNER_INSTANCE_ID", "dev-instance"), "Spanner instance ID")
	databaseID := flag.String("database", envOr("SPANNER_DATABASE_ID", "storefront"), "Spanner database ID")
	dir := flag.String("migrations", "migrations", "directory containing migration SQL files")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if host := os.Getenv("SPANNER_EMULATOR_HOST"); host != "" {
		logger.Info("using spanner emulator", zap.String("host", host))
	}

	m := &migrator{
		projectID:  *projectID,
		instanceID: *instanceID,
		databaseID: *databaseID,
		dir:        *dir,
		logger:     logger,
	}

	ctx := context.Background()
	if err := m.run(ctx); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	logger.Info("schema up to date", zap.String("database", m.databasePath()))
}

func (m *migrator) run(ctx context.Context) error {
	if err := m.ensureInstance(ctx); err != nil {
		return fmt.Errorf("ensure instance: %w", err)
	}
	if err := m.ensureDatabase(ctx); err != nil {
		return fmt.Errorf("ensure database: %w", err)
	}
	if err := m.applyMigrations(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func (m *migrator) instancePath() string {
	return fmt.Sprintf("projects/%s/instances/%s", m.projectID, m.instanceID)
}

func (m *migrator) databasePath() string {
	return fmt.Sprintf("%s/databases/%s", m.instancePath(), m.databaseID)
}

func (m *migrator) ensureInstance(ctx context.Context) error {
	admin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("create instance admin client: %w", err)
	}
	defer admin.Close()

	_, err = admin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: m.instancePath()})
	if err == nil {
		m.logger.Info("instance exists", zap.String("instance", m.instanceID))
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("get instance: %w", err)
	}

	m.logger.Info("creating instance", zap.String("instance", m.instanceID))
	op, err := admin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     fmt.Sprintf("projects/%s", m.projectID),
		InstanceId: m.instanceID,
		Instance: &instancepb.Instance{
			Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", m.projectID),
			DisplayName: "Storefront Development Instance",
			NodeCount:   1,
		},
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("create instance: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		// The emulator sometimes reports the operation oddly after the
		// instance already landed.
		m.logger.Warn("instance creation reported an error", zap.Error(err))
	}
	return nil
}

func (m *migrator) ensureDatabase(ctx context.Context) error {
	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("create database admin client: %w", err)
	}
	defer admin.Close()

	_, err = admin.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: m.databasePath()})
	if err == nil {
		m.logger.Info("database exists", zap.String("database", m.databaseID))
		return nil
	}
	if status.Code(err) != codes.NotFound {
		if os.Getenv("SPANNER_EMULATOR_HOST") != "" {
			m.logger.Warn("proceeding despite database check error", zap.Error(err))
			return nil
		}
		return fmt.Errorf("get database: %w", err)
	}

	m.logger.Info("creating database", zap.String("database", m.databaseID))
	op, err := admin.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          m.instancePath(),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", m.databaseID),
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("create database: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("wait for database creation: %w", err)
	}
	return nil
}

func (m *migrator) applyMigrations(ctx context.Context) error {
	files, err := filepath.Glob(filepath.Join(m.dir, "*.sql"))
	if err != nil {
		return fmt.Errorf("list migration files: %w", err)
	}
	if len(files) == 0 {
		m.logger.Warn("no migration files found", zap.String("dir", m.dir))
		return nil
	}
	sort.Strings(files)

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("create database admin client: %w", err)
	}
	defer admin.Close()

	for _, file := range files {
		name := filepath.Base(file)
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}

		statements := splitDDL(string(content))
		m.logger.Info("applying migration",
			zap.String("file", name),
			zap.Int("statements", len(statements)),
		)

		op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   m.databasePath(),
			Statements: statements,
		})
		if err != nil {
			return fmt.Errorf("start DDL update for %s: %w", name, err)
		}
		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("apply DDL for %s: %w", name, err)
		}
	}
	return nil
}

// splitDDL breaks a migration file into individual statements. Spanner's
// UpdateDatabaseDdl rejects comments and empty statements, so both get
// stripped here.
func splitDDL(content string) []string {
	var kept []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		kept = append(kept, line)
	}

	var statements []string
	for _, stmt := range strings.Split(strings.Join(kept, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
