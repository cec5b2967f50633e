package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	entity "quickview.GO/model/entity"
	cartEntity "quickview.GO/model/entity/cart"
	catalogEntity "quickview.GO/model/entity/catalog"
)

// NewDB opens the database selected by DB_DRIVER (mysql by default, or
// sqlite at SQLITE_PATH).
func NewDB() (*gorm.DB, error) {
	logMode := logger.Info
	if os.Getenv("GORM_LOG") == "off" {
		logMode = logger.Silent
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // Use log.Logger for Printf support
		logger.Config{
			SlowThreshold: time.Second, // Slow SQL threshold
			LogLevel:      logMode,     // Log level
			Colorful:      true,        // Enable color
		},
	)

	var dialector gorm.Dialector
	switch driver := GetEnv("DB_DRIVER", "mysql"); driver {
	case "sqlite":
		dialector = sqlite.Open(GetEnv("SQLITE_PATH", "quickview.db"))
	case "mysql":
		dialector = mysql.Open(mysqlDSN())
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func mysqlDSN() string {
	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		return dsn
	}
	user := os.Getenv("MYSQL_USER")
	pass := os.Getenv("MYSQL_PASS")
	host := GetEnv("MYSQL_HOST", "127.0.0.1")
	port := GetEnv("MYSQL_PORT", "3306")
	db := os.Getenv("MYSQL_DB")
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=Local", user, pass, host, port, db)
}

// Migrate creates or updates the quick view tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalogEntity.Product{},
		&cartEntity.Cart{},
		&cartEntity.CartItem{},
		&entity.ApiToken{},
	)
}
