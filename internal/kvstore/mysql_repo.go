package kvstore

import (
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

type MySQLRepo struct {
	DB *sql.DB
}

var _ Store = (*MySQLRepo)(nil)

func NewMySQLRepo(db *sql.DB) *MySQLRepo {
	return &MySQLRepo{
		DB: db,
	}
}

func (r *MySQLRepo) Get(key string) (string, error) {
	row := r.DB.QueryRow(
		"SELECT v, expires_at FROM kv_items WHERE k = ?",
		key,
	)

	var value string
	var expiresAt sql.NullTime
	err := row.Scan(&value, &expiresAt)
	if err == sql.ErrNoRows {
		return "", ErrNotExist
	}
	if err != nil {
		return "", err
	}

	if expiresAt.Valid && time.Now().After(expiresAt.Time) {
		_, _ = r.DB.Exec("DELETE FROM kv_items WHERE k = ?", key)
		return "", ErrNotExist
	}

	return value, nil
}

func (r *MySQLRepo) Put(key string, value string, ttl time.Duration) error {
	var expiresAt interface{}
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	_, err := r.DB.Exec(
		"INSERT INTO kv_items (`k`, `v`, `expires_at`) VALUES (?, ?, ?) "+
			"ON DUPLICATE KEY UPDATE `v` = VALUES(`v`), `expires_at` = VALUES(`expires_at`)",
		key,
		value,
		expiresAt,
	)

	return err
}

func (r *MySQLRepo) Delete(key string) error {
	_, err := r.DB.Exec("DELETE FROM kv_items WHERE k = ?", key)

	return err
}
