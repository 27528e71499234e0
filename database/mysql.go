package database

import (
	"database/sql"

	"friendbook/config"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
)

var DB *sql.DB

func Connect() error {
	var err error
	DB, err = sql.Open("mysql", config.Cfg.MysqlDSN)
	if err != nil {
		return err
	}

	if err = DB.Ping(); err != nil {
		return err
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(5)

	logrus.Info("Database connected successfully")
	return nil
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}

func CreateTables() error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id          VARCHAR(36) PRIMARY KEY,
			username    VARCHAR(50) NOT NULL,
			first_name  VARCHAR(50) NOT NULL,
			last_name   VARCHAR(50) NOT NULL,
			password    VARCHAR(255) NOT NULL,
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at  DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uk_username (username)
		)`,
		`CREATE TABLE IF NOT EXISTS friendships (
			id           VARCHAR(36) PRIMARY KEY,
			requester_id VARCHAR(36) NOT NULL,
			recipient_id VARCHAR(36) NOT NULL,
			state        ENUM('pending', 'accepted') DEFAULT 'pending',
			created_at   DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at   DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uk_pair (requester_id, recipient_id),
			INDEX idx_recipient (recipient_id)
		)`,
	}

	for _, table := range tables {
		if _, err := DB.Exec(table); err != nil {
			return err
		}
	}

	logrus.Info("Database tables created successfully")
	return nil
}
