package commands

import (
	"fmt"
	"log"

	"garage/backend/internal/pkg/repository/postgresql"

	"github.com/pkg/errors"
)

// ErrHelp provides context that help was given.
var ErrHelp = errors.New("provided help")

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{
	{
		Index:       1,
		Description: "CREATE TYPE \"account_role\" AS ENUM",
		Query: `
        CREATE TYPE "account_role" AS ENUM ('ADMIN', 'MECHANIC', 'DASHBOARD');`,
	},
	{
		Index:       2,
		Description: "Create table: accounts.",
		Query: `
        CREATE TABLE IF NOT EXISTS accounts (
            id serial primary key,
            login text not null,
            password text not null,
            role account_role,
            created_at timestamp default now(),
            created_by int references accounts(id),
            updated_at timestamp,
            updated_by int references accounts(id),
            deleted_at timestamp,
            deleted_by int references accounts(id)
        );`,
	},
	{
		Index:       3,
		Description: "Create account with login: Admin01, password: 1",
		Query: `
        INSERT INTO accounts(login, role, password)
        SELECT 'Admin01', 'ADMIN', '$2a$10$NKtnMwDPFSQLG6uOi4Zqheru5Ygbj9TWFHjpl478rRSaO5cJ9QuH2'
        WHERE NOT EXISTS (SELECT login FROM accounts WHERE login = 'Admin01');
        `,
	},
	{
		Index:       4,
		Description: "Create account with login: Dashboard01, password: 1",
		Query: `
        INSERT INTO accounts(login, role, password)
        SELECT 'Dashboard01', 'DASHBOARD', '$2a$10$NKtnMwDPFSQLG6uOi4Zqheru5Ygbj9TWFHjpl478rRSaO5cJ9QuH2'
        WHERE NOT EXISTS (SELECT login FROM accounts WHERE login = 'Dashboard01');
        `,
	},
	{
		Index:       5,
		Description: "Create table: mechanics.",
		Query: `
        CREATE TABLE IF NOT EXISTS mechanics (
            id serial primary key,
            name text not null unique,
            total_points int not null default 0,
            hours_reset_at timestamptz,
            created_at timestamp default now(),
            created_by int references accounts(id),
            updated_at timestamp,
            updated_by int references accounts(id),
            deleted_at timestamp,
            deleted_by int references accounts(id)
        );`,
	},
	{
		Index:       6,
		Description: "Seed the mechanic roster.",
		Query: `
        INSERT INTO mechanics(name)
        SELECT r.name FROM (VALUES ('Marco'), ('Luis'), ('Jorge'), ('Pedro')) AS r(name)
        WHERE NOT EXISTS (SELECT 1 FROM mechanics WHERE mechanics.name = r.name);
        `,
	},
	{
		Index:       7,
		Description: "Create table: vehicles.",
		Query: `
        CREATE TABLE IF NOT EXISTS vehicles (
            id serial primary key,
            brand text not null,
            model text not null,
            year int,
            license_plate text,
            status text not null default 'in_queue',
            sort_order int not null default 0,
            notes text,
            created_at timestamp default now(),
            created_by int references accounts(id),
            updated_at timestamp,
            updated_by int references accounts(id),
            deleted_at timestamp,
            deleted_by int references accounts(id)
        );`,
	},
	{
		Index:       8,
		Description: "Create table: punches.",
		Query: `
        CREATE TABLE IF NOT EXISTS punches (
            id serial primary key,
            mechanic_name text not null,
            punch_in timestamptz not null,
            punch_out timestamptz,
            work_day date not null,
            status text not null default 'active',
            total_hours numeric(10,4),
            paused_seconds int not null default 0,
            pause_started_at timestamptz,
            pause_reason text,
            created_at timestamp default now(),
            created_by int references accounts(id),
            updated_at timestamp,
            updated_by int references accounts(id),
            deleted_at timestamp,
            deleted_by int references accounts(id)
        );`,
	},
	{
		Index:       9,
		Description: "Create table: work_sessions.",
		Query: `
        CREATE TABLE IF NOT EXISTS work_sessions (
            id serial primary key,
            punch_id int references punches(id),
            vehicle_id int references vehicles(id),
            mechanic_name text not null,
            start_time timestamptz not null,
            end_time timestamptz,
            total_hours numeric(10,4),
            notes text,
            is_payment boolean not null default false,
            created_at timestamp default now(),
            created_by int references accounts(id),
            updated_at timestamp,
            updated_by int references accounts(id),
            deleted_at timestamp,
            deleted_by int references accounts(id)
        );`,
	},
	{
		Index:       10,
		Description: "Partial unique indexes backing the one-open-row invariants.",
		Query: `
        CREATE UNIQUE INDEX IF NOT EXISTS punches_one_active_per_mechanic
            ON punches (mechanic_name)
            WHERE punch_out IS NULL AND deleted_at IS NULL;
        CREATE UNIQUE INDEX IF NOT EXISTS work_sessions_one_open_per_mechanic
            ON work_sessions (mechanic_name)
            WHERE end_time IS NULL AND deleted_at IS NULL AND is_payment = false;`,
	},
	{
		Index:       11,
		Description: "Create table: shop_info.",
		Query: `
        CREATE TABLE IF NOT EXISTS shop_info (
            id serial primary key,
            shop_name varchar(250) not null,
            url varchar(100),
            open_time time,
            close_time time,
            vehicle_hours_reset_at timestamptz,
            created_at timestamp default now(),
            created_by int references accounts(id),
            updated_at timestamp,
            updated_by int references accounts(id),
            deleted_at timestamp,
            deleted_by int references accounts(id)
        );`,
	},
	{
		Index:       12,
		Description: "Insert data for table: shop_info.",
		Query: `
        INSERT INTO shop_info (id, shop_name, open_time, close_time, created_by, updated_by)
        SELECT 1, 'AstroBuild Garage', '08:00:00', '18:00:00', 1, 1
        WHERE NOT EXISTS (SELECT 1 FROM shop_info WHERE id = 1);
        `,
	},
}

// Migrate creates the scheme in the database.
func Migrate(db *postgresql.Database) {
	for _, s := range scheme {
		if _, err := db.Query(s.Query); err != nil {
			log.Fatalln("migrate error", err)
		}
	}
}

func MigrateUP(db *postgresql.Database) {
	var (
		version int
		dirty   bool
		er      *string
	)
	err := db.QueryRow("SELECT version, dirty, error FROM schema_migrations").Scan(&version, &dirty, &er)
	if err != nil {
		if err.Error() == `ERROR: relation "schema_migrations" does not exist (SQLSTATE=42P01)` {
			if _, err = db.Exec(`
				CREATE TABLE IF NOT EXISTS schema_migrations (version int not null, dirty bool not null, error text);
				DELETE FROM schema_migrations;
				INSERT INTO schema_migrations (version, dirty) values (0, false);
			`); err != nil {
				log.Fatalln("migrate schema_migrations create error", err)
			}
			version = 0
			dirty = false
		} else {
			log.Fatalln("migrate schema_migrations scan: ", err)
		}
	}

	if dirty {
		for _, v := range scheme {
			if v.Index == version {
				if _, err = db.Exec(v.Query); err != nil {
					if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s'`, err.Error())); err != nil {
						log.Fatalln("migrate error", err)
					}
					log.Fatalln(fmt.Sprintf("migrate error version: %d", version), err)
				}
				if _, err = db.Exec(`UPDATE schema_migrations SET dirty = false, error = null`); err != nil {
					log.Fatalln("migrate error", err)
				}
			}
		}
	}

	for _, s := range scheme {
		if s.Index > version {
			if _, err = db.Exec(s.Query); err != nil {
				if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s', version = %d, dirty = true`, err.Error(), s.Index)); err != nil {
					log.Fatalln("migrate error", err)
				}
				log.Fatalln(fmt.Sprintf("migrate error version: %d", s.Index), err)
			}
			if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET version = %d`, s.Index)); err != nil {
				log.Fatalln("migrate error", err)
			}
		}
	}
}
