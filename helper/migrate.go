package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"summit/config"
	"summit/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

var ErrUnknownAction = errors.New("unknown migration action")

func connectionString(config *config.Config) string {
	extra := url.Values{}
	if config.DB.Postgres.MigrationTable != "" {
		extra.Set("x-migrations-table", config.DB.Postgres.MigrationTable)
	}

	return postgres.WriteEndpoint(config).DSN(extra)
}

var actions = map[string]struct {
	run  func(mig *migrate.Migrate) error
	done string
}{
	"up":      {run: func(mig *migrate.Migrate) error { return mig.Up() }, done: "Database migrations completed successfully"},
	"step-up": {run: func(mig *migrate.Migrate) error { return mig.Steps(1) }, done: "Database migrated one step up"},
	"down":    {run: func(mig *migrate.Migrate) error { return mig.Steps(-1) }, done: "Database migrations rolled back one step"},
	"drop":    {run: func(mig *migrate.Migrate) error { return mig.Down() }, done: "Database migrations rolled back completely"},
}

func Runner(config *config.Config, action string) error {
	step, ok := actions[action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	mig, err := migrate.New(migrationSource, connectionString(config))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err := step.run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Uint("version", version).Bool("dirty", dirty).Msg(step.done)

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, "up")
}

func StepUp(config *config.Config) error {
	return Runner(config, "step-up")
}

func Down(config *config.Config) error {
	return Runner(config, "down")
}

func Drop(config *config.Config) error {
	return Runner(config, "drop")
}
