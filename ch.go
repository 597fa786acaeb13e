package techocc

import (
	"database/sql"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// Optional ClickHouse sink for the classification table. The sink writes the
// same flat table as SaveClassification and nothing else.

// NewConnect establishes a new connection to ClickHouse.
// host is an IP address (assumes port 9000).
func NewConnect(host, user, password string) (db *sql.DB, err error) {
	db = clickhouse.OpenDB(
		&clickhouse.Options{
			Addr: []string{host + ":9000"},
			Auth: clickhouse.Auth{
				Database: "default",
				Username: user,
				Password: password,
			},
			DialTimeout: 300 * time.Second,
			Compression: &clickhouse.Compression{
				Method: clickhouse.CompressionLZ4,
				Level:  0,
			},
		})

	return db, db.Ping()
}

// chColumns pairs each output field with its ClickHouse type, mirroring the
// column order of classificationFields. Values and composites are Float64
// (NaN stores natively), ranks nullable ints so a missing rank stays missing
// like the CSV path, flags Int32, labels String.
func chColumns(cfg *Config) (names, types []string) {
	names = classificationFields(cfg)

	types = append(types, "String")
	for range cfg.Elements {
		types = append(types, "Float64", "Nullable(Int32)")
	}

	types = append(types, "Float64", "Float64", "Float64",
		"Int32", "String", "Int32", "String", "String")

	return names, types
}

// SaveCH creates tableName (dropping any prior version) and inserts one row
// per occupation.
func SaveCH(db *sql.DB, tableName string, rows []OccupationRankRow, cfg *Config) error {
	names, types := chColumns(cfg)

	flds := make([]string, len(names))
	for ind := range names {
		flds[ind] = fmt.Sprintf("`%s` %s", names[ind], types[ind])
	}

	if _, e := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)); e != nil {
		return e
	}

	create := fmt.Sprintf("CREATE TABLE %s (%s) ENGINE = MergeTree ORDER BY noc_title",
		tableName, strings.Join(flds, ","))
	if _, e := db.Exec(create); e != nil {
		return e
	}

	tx, e := db.Begin()
	if e != nil {
		return e
	}

	qs := strings.TrimSuffix(strings.Repeat("?,", len(names)), ",")
	stmt, e1 := tx.Prepare(fmt.Sprintf("INSERT INTO %s VALUES (%s)", tableName, qs))
	if e1 != nil {
		return e1
	}

	for _, row := range rows {
		if _, e2 := stmt.Exec(chValues(&row, cfg)...); e2 != nil {
			_ = tx.Rollback()
			return e2
		}
	}

	return tx.Commit()
}

func chValues(row *OccupationRankRow, cfg *Config) []any {
	vals := []any{row.NOCTitle}
	for _, el := range cfg.Elements {
		v, ok := row.Values[el]
		if !ok {
			v = math.NaN()
		}

		vals = append(vals, v)

		if rank, okR := row.Ranks[el]; okR {
			vals = append(vals, int32(rank))
		} else {
			vals = append(vals, nil)
		}
	}

	vals = append(vals, row.HarmRank, row.HarmRankDigital, row.HarmRankNoTel,
		int32(row.Tech), row.DigitalLabel, int32(row.TechNoTel), row.NOCCode, row.NOCName)

	return vals
}
