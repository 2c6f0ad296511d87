package bankcore

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5"
)

// LocalHelper bootstraps a development or test database. It is an explicit
// step (seeder binary, test setup) rather than implicit process-wide init.
type LocalHelper struct {
	Conn   *pgx.Conn
	Owners map[string]snowflake.ID
}

func NewLocalHelper(cfg *Config) (*LocalHelper, error) {
	conn, err := pgx.Connect(context.Background(), cfg.Database.ConnStr)
	if err != nil {
		return nil, err
	}

	owners := make(map[string]snowflake.ID, len(cfg.Database.SeedOwners))
	for name, v := range cfg.Database.SeedOwners {
		id, err := snowflake.ParseString(v)
		if err != nil {
			return nil, err
		}
		owners[name] = id
	}
	return &LocalHelper{
		Conn:   conn,
		Owners: owners,
	}, nil
}

func (lh *LocalHelper) InitDB() (func(), error) {
	initSQLpath := filepath.Join("testdata", "init_db.sql")
	bits, err := os.ReadFile(initSQLpath)
	if err != nil {
		return nil, err
	}
	if _, err = lh.Conn.Exec(context.Background(), string(bits)); err != nil {
		return nil, err
	}
	return lh.teardownDB(), err
}

func (lh *LocalHelper) SeedOwners() error {
	seedPath := filepath.Join("testdata", "seed_owners.tmpl")
	bits, err := os.ReadFile(seedPath)
	if err != nil {
		return err
	}
	tmpl, err := template.New("seed_owners").Parse(string(bits))
	if err != nil {
		return err
	}

	input := make(map[string]string, len(lh.Owners))
	for name, id := range lh.Owners {
		input[name] = id.String()
	}
	buf := new(bytes.Buffer)
	if err = tmpl.Execute(buf, input); err != nil {
		return err
	}

	if _, err = lh.Conn.Exec(context.Background(), buf.String()); err != nil {
		return err
	}

	return err
}

func (lh *LocalHelper) teardownDB() func() {
	return func() {
		defer lh.Conn.Close(context.Background())

		tearSQLpath := filepath.Join("testdata", "teardown_db.sql")
		bits, err := os.ReadFile(tearSQLpath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "DB cleanup read teardown sql: %s", err.Error())
			return
		}
		if _, err = lh.Conn.Exec(context.Background(), string(bits)); err != nil {
			fmt.Fprintf(os.Stderr, "DB cleanup exec teardown sql: %s", err.Error())
			return
		}
	}
}
