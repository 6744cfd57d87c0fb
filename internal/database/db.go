package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
//
// Expected schema:
//
//	users(id PK AUTO_INCREMENT, first_name, last_name, email, mobile,
//	      gender ENUM('male','female'), password_hash, created_at, updated_at,
//	      UNIQUE KEY uq_users_email (email))
//	films(id PK AUTO_INCREMENT, title, description, release_year, genre,
//	      director, `cast`, rating DECIMAL(3,1), duration, poster_url,
//	      created_at)
//
// The unique key on users.email is load-bearing: it is what makes
// concurrent duplicate signups race at the database instead of in
// application code.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}
