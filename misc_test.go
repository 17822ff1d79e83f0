package pagequery

import (
	"fmt"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type (
	tCompany struct {
		ID   uint
		Name string
	}

	tUser struct {
		ID        uint
		Name      string
		Age       int
		CompanyID *uint
		Company   *tCompany
		CreatedAt time.Time
	}
)

func (tCompany) TableName() string { return "companies" }

func (tUser) TableName() string { return "users" }

type sqlMockFn func() (string, *gorm.DB, sqlmock.Sqlmock, error)

var _sqlMockFnList = []sqlMockFn{
	newGORMMySQLMock,
	newGORMPostgresMock,
}

func newGORMMySQLMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return "", nil, nil, err
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return "", nil, nil, err
	}

	return "mysql", db.Debug(), mock, nil
}

func newGORMPostgresMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return "", nil, nil, err
	}

	dialector := postgres.New(postgres.Config{
		Conn: mockDB,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return "", nil, nil, err
	}

	return "postgres", db.Debug(), mock, nil
}

// newGORMSQLite opens an in-memory sqlite database. A single connection is
// kept open, otherwise every new connection would see an empty database.
func newGORMSQLite() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Regexp helpers for expected queries, tolerant to the quoting and
// placeholder style of every mocked dialect.
const (
	rxPlaceholder = "(?:\\$\\d+|\\?)"
)

func rxQuoted(name string) string {
	return fmt.Sprintf("[`'\"]%s[`'\"]", name)
}

func rxColumn(table, column string) string {
	return rxQuoted(table) + "\\." + rxQuoted(column)
}
