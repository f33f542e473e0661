// Package mysql implements the Entity Store ports on gorm + MySQL.
package mysql

import (
	"time"

	"gorm.io/gorm"
)

// Tables maps each entity to its physical table. Row types below carry no
// table binding of their own; every query names its table from here.
var Tables = struct {
	Articles string
	Comments string
	Users    string
}{
	Articles: "articles",
	Comments: "comments",
	Users:    "users",
}

type articleRow struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Author    string    `gorm:"column:author;type:varchar(255);not null"`
	Title     string    `gorm:"column:title;type:varchar(255);not null"`
	Body      *string   `gorm:"column:body;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;type:datetime(6);not null;autoCreateTime:false"`
}

// Comments deliberately carry no foreign key to articles.
type commentRow struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ArticleID int64     `gorm:"column:article_id;not null;index"`
	Author    string    `gorm:"column:author;type:varchar(255);not null"`
	Body      *string   `gorm:"column:body;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;type:datetime(6);not null;autoCreateTime:false"`
}

type userRow struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Username string `gorm:"column:username;type:varchar(255);not null;index"`
	Password string `gorm:"column:password;type:varchar(255);not null"`
	Role     string `gorm:"column:role;type:varchar(16);not null;default:user"`
}

// Migrate creates or updates the three tables.
func Migrate(db *gorm.DB) error {
	if err := db.Table(Tables.Articles).AutoMigrate(&articleRow{}); err != nil {
		return err
	}
	if err := db.Table(Tables.Comments).AutoMigrate(&commentRow{}); err != nil {
		return err
	}
	return db.Table(Tables.Users).AutoMigrate(&userRow{})
}
